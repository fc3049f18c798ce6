package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UnTrende/luxx-sub002/internal/audit"
	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/middleware"
	"github.com/UnTrende/luxx-sub002/internal/models"
	"github.com/UnTrende/luxx-sub002/internal/payments"
)

// ======================================================
// PAGAMENTOS (Mercado Pago)
// ======================================================

type PaymentHandler struct {
	db       *gorm.DB
	checkout *payments.Checkout
	audit    *audit.Dispatcher
}

func NewPaymentHandler(
	db *gorm.DB,
	checkout *payments.Checkout,
	auditDispatcher *audit.Dispatcher,
) *PaymentHandler {
	return &PaymentHandler{db: db, checkout: checkout, audit: auditDispatcher}
}

// Checkout cria a preference do agendamento e registra a transação pending.
// O valor cobrado é sempre a soma dos serviços no momento do checkout.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	if !h.checkout.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments_disabled"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Items.Service").
		Where("id = ? AND barber_id = ? AND barbershop_id = ?", id, barberID, barbershopID).
		First(&b).Error; err != nil {

		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	if !domain.Status(b.Status).Active() {
		httperr.BadRequest(c, "invalid_state", "Agendamento não está ativo.")
		return
	}

	var total float64
	names := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		total += item.Service.Price
		names = append(names, item.Service.Name)
	}

	if total <= 0 {
		httperr.BadRequest(c, "nothing_to_charge", "Agendamento sem valor a cobrar.")
		return
	}

	title := strings.Join(names, " + ")

	prefID, initPoint, err := h.checkout.CreatePreference(c.Request.Context(), &b, title, total)
	if err != nil {
		httperr.Internal(c, "checkout_failed", "Erro ao criar cobrança.")
		return
	}

	t := models.Transaction{
		BarbershopID: barbershopID,
		BookingID:    b.ID,
		ClientID:     b.ClientID,
		Amount:       total,
		Method:       "mercadopago",
		Status:       "pending",
		PaymentRef:   prefID,
	}
	if err := h.db.Create(&t).Error; err != nil {
		httperr.Internal(c, "transaction_failed", "Erro ao registrar transação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "checkout_created",
		Entity:       "transaction",
		EntityID:     &t.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"transaction_id": t.ID,
		"preference_id":  prefID,
		"init_point":     initPoint,
		"amount":         total,
	})
}

// ListTransactions devolve o extrato da barbearia (somente owner).
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	query := h.db.Where("barbershop_id = ?", barbershopID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var transactions []models.Transaction
	if err := query.Order("created_at DESC").Limit(200).Find(&transactions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_transactions", "Erro ao listar transações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  transactions,
		"total": len(transactions),
	})
}
