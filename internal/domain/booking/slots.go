package booking

// Workday delimita o expediente e o passo dos slots, em minutos.
type Workday struct {
	Open  ClockMinutes
	Close ClockMinutes
	Step  int
}

// NewWorkday monta o expediente a partir da configuração ("09:00", "18:00", 15).
// Valores inválidos caem nos padrões.
func NewWorkday(open, close string, stepMin int) Workday {
	o, err1 := ParseWall(open)
	c, err2 := ParseWall(close)

	if err1 != nil || err2 != nil || c <= o {
		o, c = 9*60, 18*60
	}
	if stepMin <= 0 {
		stepMin = 15
	}

	return Workday{Open: o, Close: c, Step: stepMin}
}

// GenerateSlots percorre o expediente em passos fixos e emite, em ordem
// crescente, todo início de slot cujo intervalo [t, t+duração):
//   - cabe inteiro antes do fechamento;
//   - não começa em horário oculto;
//   - não cruza nenhum intervalo ocupado.
//
// Função pura: mesmas entradas, mesma saída.
func GenerateSlots(
	day Workday,
	durationMin int,
	busy []Interval,
	hidden map[string]struct{},
) []string {

	if durationMin <= 0 || day.Step <= 0 || day.Close <= day.Open {
		return []string{}
	}

	slots := []string{}

	for t := day.Open; t < day.Close; t += ClockMinutes(day.Step) {
		iv := NewInterval(t, durationMin)

		// não cabe no resto do dia (e nenhum slot seguinte caberá)
		if iv.End > day.Close {
			break
		}

		if _, blocked := hidden[t.String()]; blocked {
			continue
		}

		if OverlapsAny(iv, busy) {
			continue
		}

		slots = append(slots, t.String())
	}

	return slots
}

// HiddenSet converte a lista persistida em conjunto de consulta O(1).
func HiddenSet(hours []string) map[string]struct{} {
	set := make(map[string]struct{}, len(hours))
	for _, h := range hours {
		set[h] = struct{}{}
	}
	return set
}
