package booking

import (
	"context"
	"sort"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
)

type GetBookedSlots struct {
	repo       domain.Repository
	defaultMin int
}

func NewGetBookedSlots(repo domain.Repository, defaultMin int) *GetBookedSlots {
	return &GetBookedSlots{repo: repo, defaultMin: defaultMin}
}

// Execute lista os horários ocupados (ativos) do barbeiro no dia, com
// status, em ordem crescente de início.
func (uc *GetBookedSlots) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
) ([]domain.BookedSlot, error) {

	if barberID == 0 || date == "" {
		return nil, httperr.ErrBusiness("missing_params")
	}

	bookings, err := uc.repo.ListActiveBookingsForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	durations, err := dayDurations(ctx, uc.repo, barbershopID, bookings)
	if err != nil {
		return nil, err
	}

	type slotWithStart struct {
		slot  domain.BookedSlot
		start domain.ClockMinutes
	}

	rows := make([]slotWithStart, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]

		start, err := domain.ParseClock(b.StartTime)
		if err != nil {
			continue
		}

		dur := durations.Total(domain.ServiceIDs(b), uc.defaultMin)
		if dur <= 0 {
			dur = uc.defaultMin
		}

		iv := domain.NewInterval(start, dur)
		rows = append(rows, slotWithStart{
			slot: domain.BookedSlot{
				Start:  iv.Start.String(),
				End:    iv.End.String(),
				Status: b.Status,
			},
			start: start,
		})
	}

	// StartTime é string de wire; ordenar exige os minutos internos
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].start < rows[j].start
	})

	out := make([]domain.BookedSlot, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.slot)
	}

	return out, nil
}
