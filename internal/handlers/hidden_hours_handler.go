package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UnTrende/luxx-sub002/internal/cache"
	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/middleware"
	"github.com/UnTrende/luxx-sub002/internal/models"
)

// Horários ocultos: inícios de slot bloqueados pelo barbeiro (almoço etc).
type HiddenHoursHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewHiddenHoursHandler(db *gorm.DB, availCache *cache.Availability) *HiddenHoursHandler {
	return &HiddenHoursHandler{db: db, cache: availCache}
}

type HiddenHoursUpdateRequest struct {
	Hours []string `json:"hours" binding:"required"`
}

func (h *HiddenHoursHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []models.HiddenHour
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&rows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_hidden_hours"})
		return
	}

	hours := make([]string, 0, len(rows))
	for _, r := range rows {
		hours = append(hours, r.Time)
	}

	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

// Update substitui o conjunto inteiro (mesma semântica do replace-all
// de working hours). Cada horário é validado e normalizado na borda.
func (h *HiddenHoursHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req HiddenHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.HiddenHour
	seen := map[string]struct{}{}

	for _, raw := range req.Hours {
		t, err := domain.ParseClock(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_time",
				"details": raw,
			})
			return
		}

		canonical := t.String()
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}

		toCreate = append(toCreate, models.HiddenHour{
			BarberID: barberID,
			Time:     canonical,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.HiddenHour{}).Error; err != nil {
			return err
		}
		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_hidden_hours"})
		return
	}

	// bloqueio vale para qualquer data
	h.cache.InvalidateBarber(c.Request.Context(), barberID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
