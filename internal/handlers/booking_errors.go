package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/UnTrende/luxx-sub002/internal/httperr"
)

// mapBookingErrors traduz os códigos de negócio do fluxo de agendamento.
// Conflito de horário é distinguível: o cliente pode escolher outro slot.
func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_params"):
		httperr.BadRequest(c, "missing_params", "Barbeiro, data e hora são obrigatórios.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
	case httperr.IsBusiness(err, "invalid_phone"):
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário muito próximo ou no passado.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")
	case httperr.IsBusiness(err, "hidden_hour"):
		httperr.BadRequest(c, "hidden_hour", "Horário bloqueado pelo barbeiro.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Conflito de horário. Escolha outro slot.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
	default:
		httperr.Internal(c, "booking_failed", "Erro ao processar agendamento.")
	}
}
