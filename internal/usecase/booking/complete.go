package booking

import (
	"context"

	"github.com/UnTrende/luxx-sub002/internal/audit"
	"github.com/UnTrende/luxx-sub002/internal/cache"
	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/models"
	"github.com/UnTrende/luxx-sub002/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	availCache *cache.Availability,
	auditDispatcher *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
	}
}

// Execute conclui o atendimento: transição de status, crédito de pontos
// de fidelidade (1 ponto por real do total) e registro da transação.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, b.BarberID, b.Date)

	// preço total: mesma resolução em lote das durações
	total := 0.0
	if ids := domain.ServiceIDs(b); len(ids) > 0 {
		services, err := uc.repo.ListServicesByIDs(ctx, barbershopID, ids)
		if err == nil {
			for _, s := range services {
				total += s.Price
			}
		}
	}

	if points := int(total); points > 0 {
		if err := uc.repo.CreditLoyalty(ctx, barbershopID, b.ClientID, points, b.ID); err != nil {
			// fidelidade nunca derruba a conclusão do atendimento
			uc.audit.Dispatch(audit.Event{
				BarbershopID: barbershopID,
				UserID:       &barberID,
				Action:       "loyalty_credit_failed",
				Entity:       "booking",
				EntityID:     &b.ID,
			})
		}
	}

	if total > 0 {
		_ = uc.repo.CreateTransaction(ctx, &models.Transaction{
			BarbershopID: barbershopID,
			BookingID:    b.ID,
			ClientID:     b.ClientID,
			Amount:       total,
			Method:       "in_person",
			Status:       "paid",
		})
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "booking_completed",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}
