package booking

import (
	"context"

	"github.com/UnTrende/luxx-sub002/internal/cache"
	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
)

type GetAvailability struct {
	repo       domain.Repository
	cache      *cache.Availability
	day        domain.Workday
	defaultMin int
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.Availability,
	day domain.Workday,
	defaultMin int,
) *GetAvailability {
	return &GetAvailability{
		repo:       repo,
		cache:      availCache,
		day:        day,
		defaultMin: defaultMin,
	}
}

// Execute devolve os inícios de slot disponíveis, em ordem crescente.
// Determinístico para entradas fixas; leitura pura, sem mutação.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	// erro de input: rejeita antes de qualquer query
	if in.BarberID == 0 || in.Date == "" {
		return nil, httperr.ErrBusiness("missing_params")
	}

	if slots, ok := uc.cache.Get(ctx, in.BarberID, in.Date, in.ServiceIDs); ok {
		return slots, nil
	}

	// 1️⃣ duração total pedida
	totalDuration, err := resolveTotalDuration(
		ctx,
		uc.repo,
		in.BarbershopID,
		in.ServiceIDs,
		uc.defaultMin,
	)
	if err != nil {
		return nil, err
	}

	// 2️⃣ ocupação do dia (pending + confirmed)
	bookings, err := uc.repo.ListActiveBookingsForDay(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	durations, err := dayDurations(ctx, uc.repo, in.BarbershopID, bookings)
	if err != nil {
		return nil, err
	}

	busy := domain.BuildOccupancy(bookings, durations, uc.defaultMin)

	// sem configuração de horários ocultos → conjunto vazio, não é erro
	hidden, err := uc.repo.ListHiddenHours(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// 3️⃣ geração dos slots
	slots := domain.GenerateSlots(uc.day, totalDuration, busy, domain.HiddenSet(hidden))

	uc.cache.Set(ctx, in.BarberID, in.Date, in.ServiceIDs, slots)

	return slots, nil
}
