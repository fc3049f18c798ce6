package booking

// Interval é o intervalo meio-aberto [Start, End) ocupado por um agendamento,
// em minutos desde a meia-noite. Nunca é persistido: sempre derivado.
type Interval struct {
	Start ClockMinutes
	End   ClockMinutes
}

func NewInterval(start ClockMinutes, durationMin int) Interval {
	return Interval{Start: start, End: start + ClockMinutes(durationMin)}
}

// Overlaps: [a,b) cruza [c,d) sse a < d && c < b. Extremos encostados não conflitam.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func OverlapsAny(iv Interval, busy []Interval) bool {
	for _, b := range busy {
		if iv.Overlaps(b) {
			return true
		}
	}
	return false
}
