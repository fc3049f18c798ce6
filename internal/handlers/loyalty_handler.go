package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/middleware"
	"github.com/UnTrende/luxx-sub002/internal/models"
)

// Fidelidade: 1 ponto por real gasto, creditado na conclusão do corte.
type LoyaltyHandler struct {
	db *gorm.DB
}

func NewLoyaltyHandler(db *gorm.DB) *LoyaltyHandler {
	return &LoyaltyHandler{db: db}
}

// GetClientAccount devolve o saldo e o extrato recente de um cliente.
func (h *LoyaltyHandler) GetClientAccount(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var account models.LoyaltyAccount
	err = h.db.
		Where("barbershop_id = ? AND client_id = ?", barbershopID, clientID).
		First(&account).Error
	if err != nil {
		// cliente sem pontos ainda → saldo zero, não é erro
		c.JSON(http.StatusOK, gin.H{
			"client_id": clientID,
			"points":    0,
			"entries":   []models.LoyaltyEntry{},
		})
		return
	}

	var entries []models.LoyaltyEntry
	if err := h.db.
		Where("account_id = ?", account.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&entries).Error; err != nil {

		httperr.Internal(c, "failed_to_get_loyalty", "Erro ao buscar fidelidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id": clientID,
		"points":    account.Points,
		"entries":   entries,
	})
}
