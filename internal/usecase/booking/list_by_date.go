package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/dto"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/models"
)

type ListBookingsByDate struct {
	repo       domain.Repository
	defaultMin int
}

func NewListBookingsByDate(repo domain.Repository, defaultMin int) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo, defaultMin: defaultMin}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	barberID uint,
	barbershopID uint,
	date string,
) ([]dto.BookingListDTO, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	bookings, err := uc.repo.ListBookingsForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return uc.toDTOs(bookings), nil
}

// toDTOs deriva fim e nomes dos serviços a partir dos itens pré-carregados
// e ordena por início (a string de wire não ordena lexicograficamente).
func (uc *ListBookingsByDate) toDTOs(bookings []models.Booking) []dto.BookingListDTO {
	type row struct {
		dto   dto.BookingListDTO
		date  string
		start domain.ClockMinutes
	}

	rows := make([]row, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]

		start, err := domain.ParseClock(b.StartTime)
		if err != nil {
			continue
		}

		dur := 0
		names := make([]string, 0, len(b.Items))
		for _, it := range b.Items {
			dur += it.Service.DurationMin
			names = append(names, it.Service.Name)
		}
		if dur <= 0 {
			dur = uc.defaultMin
		}

		iv := domain.NewInterval(start, dur)
		rows = append(rows, row{
			dto: dto.BookingListDTO{
				ID:         b.ID,
				Reference:  b.Reference,
				Date:       b.Date,
				Start:      iv.Start.String(),
				End:        iv.End.String(),
				Status:     b.Status,
				ClientName: b.Client.Name,
				Services:   names,
			},
			date:  b.Date,
			start: start,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].date != rows[j].date {
			return rows[i].date < rows[j].date
		}
		return rows[i].start < rows[j].start
	})

	out := make([]dto.BookingListDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.dto)
	}

	return out
}
