package booking

import (
	"context"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/models"
)

// resolveTotalDuration implementa a resolução de duração: uma única query
// em lote, id desconhecido contribui 0, lista vazia (ou soma degenerada)
// usa a duração padrão.
func resolveTotalDuration(
	ctx context.Context,
	repo domain.Repository,
	barbershopID uint,
	serviceIDs []uint,
	defaultMin int,
) (int, error) {

	if len(serviceIDs) == 0 {
		return defaultMin, nil
	}

	services, err := repo.ListServicesByIDs(ctx, barbershopID, serviceIDs)
	if err != nil {
		return 0, err
	}

	total := domain.DurationsOf(services).Total(serviceIDs, defaultMin)
	if total <= 0 {
		total = defaultMin
	}

	return total, nil
}

// dayDurations resolve, numa única ida ao banco, as durações de todos os
// serviços referenciados pelos agendamentos do dia (evita O(bookings) queries).
func dayDurations(
	ctx context.Context,
	repo domain.Repository,
	barbershopID uint,
	bookings []models.Booking,
) (domain.ServiceDurations, error) {

	seen := map[uint]struct{}{}
	var union []uint

	for i := range bookings {
		for _, id := range domain.ServiceIDs(&bookings[i]) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}

	if len(union) == 0 {
		return domain.ServiceDurations{}, nil
	}

	services, err := repo.ListServicesByIDs(ctx, barbershopID, union)
	if err != nil {
		return nil, err
	}

	return domain.DurationsOf(services), nil
}
