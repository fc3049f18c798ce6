package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/middleware"
	ucBooking "github.com/UnTrende/luxx-sub002/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC      *ucBooking.CreateBooking
	confirmUC     *ucBooking.ConfirmBooking
	cancelUC      *ucBooking.CancelBooking
	completeUC    *ucBooking.CompleteBooking
	listByDateUC  *ucBooking.ListBookingsByDate
	listByMonthUC *ucBooking.ListBookingsByMonth
	availUC       *ucBooking.GetAvailability
	bookedUC      *ucBooking.GetBookedSlots
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listByDateUC *ucBooking.ListBookingsByDate,
	listByMonthUC *ucBooking.ListBookingsByMonth,
	availUC *ucBooking.GetAvailability,
	bookedUC *ucBooking.GetBookedSlots,
) *BookingHandler {
	return &BookingHandler{
		createUC:      createUC,
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		availUC:       availUC,
		bookedUC:      bookedUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceIDs  []uint `json:"service_ids"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // "9:00 AM"
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE (barbeiro → nasce confirmed)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceIDs:   req.ServiceIDs,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		ByBarber:     true,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// AVAILABILITY (agenda do próprio barbeiro)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

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
		BarbershopID: barbershopID,
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

func (h *BookingHandler) BookedSlots(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.bookedUC.Execute(c.Request.Context(), barbershopID, barberID, date)
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
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), barberID, barbershopID, date)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), barberID, barbershopID, year, month)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_month") {
			httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
			return
		}
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": out,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm")
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel")
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, "complete")
}

func (h *BookingHandler) transition(c *gin.Context, action string) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ctx := c.Request.Context()

	var b any
	switch action {
	case "confirm":
		b, err = h.confirmUC.Execute(ctx, barbershopID, barberID, uint(id))
	case "cancel":
		b, err = h.cancelUC.Execute(ctx, barbershopID, barberID, uint(id))
	default:
		b, err = h.completeUC.Execute(ctx, barbershopID, barberID, uint(id))
	}

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// parseServiceIDs aceita "1,2,3" (vazio é válido: duração padrão).
func parseServiceIDs(raw string) ([]uint, bool) {
	if raw == "" {
		return nil, true
	}

	var ids []uint
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ',' {
			part := raw[start:i]
			start = i + 1
			if part == "" {
				continue
			}
			n, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, false
			}
			ids = append(ids, uint(n))
		}
	}

	return ids, true
}
