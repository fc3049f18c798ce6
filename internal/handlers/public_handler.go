package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/httpresp"
	"github.com/UnTrende/luxx-sub002/internal/models"
	ucBooking "github.com/UnTrende/luxx-sub002/internal/usecase/booking"
)

// ======================================================
// HANDLER PÚBLICO (página de agendamento do cliente)
// ======================================================

type PublicHandler struct {
	db       *gorm.DB
	createUC *ucBooking.CreateBooking
	availUC  *ucBooking.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	availUC *ucBooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{db: db, createUC: createUC, availUC: availUC}
}

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Barbershop, bool) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}

	return &shop, true
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       shop.ID,
		"name":     shop.Name,
		"slug":     shop.Slug,
		"phone":    shop.Phone,
		"address":  shop.Address,
		"timezone": shop.Timezone,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	q := h.db.Where("barbershop_id = ? AND active = ?", shop.ID, true)

	if category := strings.ToLower(strings.TrimSpace(c.Query("category"))); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("query"))); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var barbers []models.User
	if err := h.db.
		Select("id", "name", "role").
		Where("barbershop_id = ?", shop.ID).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	barberID, ok := parseUintQuery(c, "barber_id")
	if !ok {
		httperr.BadRequest(c, "missing_barber", "Barbeiro obrigatório.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	serviceIDs, ok := parseServiceIDs(c.Query("service_ids"))
	if !ok {
		httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
		return
	}

	slots, err := h.availUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		BarberID:     barberID,
		ServiceIDs:   serviceIDs,
		Date:         date,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// AGENDAMENTO (nasce pending)
// ======================================================

type PublicBookingRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceIDs  []uint `json:"service_ids"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarbershopID: shop.ID,
		BarberID:     req.BarberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceIDs:   req.ServiceIDs,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		ByBarber:     false,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	// resposta enxuta: o cliente acompanha pelo reference
	c.JSON(http.StatusCreated, gin.H{
		"reference":  b.Reference,
		"date":       b.Date,
		"start_time": b.StartTime,
		"status":     b.Status,
	})
}

func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
