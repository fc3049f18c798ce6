package booking

import (
	"context"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/dto"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
)

type ListBookingsByMonth struct {
	repo       domain.Repository
	defaultMin int
}

func NewListBookingsByMonth(repo domain.Repository, defaultMin int) *ListBookingsByMonth {
	return &ListBookingsByMonth{repo: repo, defaultMin: defaultMin}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	barbershopID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	bookings, err := uc.repo.ListBookingsForMonth(ctx, barberID, year, month)
	if err != nil {
		return nil, err
	}

	lister := ListBookingsByDate{repo: uc.repo, defaultMin: uc.defaultMin}
	return lister.toDTOs(bookings), nil
}
