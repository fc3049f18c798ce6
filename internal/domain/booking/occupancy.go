package booking

import "github.com/UnTrende/luxx-sub002/internal/models"

// ServiceDurations indexa duração (minutos) por serviço.
type ServiceDurations map[uint]int

func DurationsOf(services []models.Service) ServiceDurations {
	d := make(ServiceDurations, len(services))
	for _, s := range services {
		d[s.ID] = s.DurationMin
	}
	return d
}

// Total soma as durações dos serviços pedidos. Lista vazia usa a duração
// padrão; id sem serviço resolvível contribui 0 (catálogo pode mudar,
// tolerante por design).
func (d ServiceDurations) Total(ids []uint, defaultMin int) int {
	if len(ids) == 0 {
		return defaultMin
	}

	total := 0
	for _, id := range ids {
		total += d[id]
	}
	return total
}

// BuildOccupancy converte os agendamentos ativos do dia em intervalos
// ocupados. Agendamento sem nenhum serviço ocupa a duração padrão, nunca
// zero (evita booking fantasma de largura zero).
func BuildOccupancy(
	bookings []models.Booking,
	durations ServiceDurations,
	defaultMin int,
) []Interval {

	busy := make([]Interval, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]

		start, err := ParseClock(b.StartTime)
		if err != nil {
			// valor persistido sempre passou pelo parse da borda
			continue
		}

		dur := durations.Total(ServiceIDs(b), defaultMin)
		if dur <= 0 {
			dur = defaultMin
		}

		busy = append(busy, NewInterval(start, dur))
	}

	return busy
}
