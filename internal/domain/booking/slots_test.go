package booking

import (
	"reflect"
	"testing"
)

func defaultDay() Workday {
	return NewWorkday("09:00", "18:00", 15)
}

func TestNewWorkdayFallbacks(t *testing.T) {
	d := NewWorkday("zzz", "18:00", 0)
	if d.Open != 9*60 || d.Close != 18*60 || d.Step != 15 {
		t.Fatalf("fallback errado: %+v", d)
	}

	d = NewWorkday("18:00", "09:00", 15) // fechamento antes da abertura
	if d.Open != 9*60 || d.Close != 18*60 {
		t.Fatalf("close <= open deveria cair no padrão: %+v", d)
	}
}

func TestGenerateSlotsFullDay(t *testing.T) {
	// dia livre, 60 minutos: 9:00 AM até 5:00 PM, 33 inícios
	slots := GenerateSlots(defaultDay(), 60, nil, nil)

	if len(slots) != 33 {
		t.Fatalf("quer 33 slots, veio %d", len(slots))
	}
	if slots[0] != "9:00 AM" {
		t.Errorf("primeiro slot = %q", slots[0])
	}
	if slots[len(slots)-1] != "5:00 PM" {
		t.Errorf("último slot = %q (precisa caber inteiro até 18:00)", slots[len(slots)-1])
	}
}

func TestGenerateSlotsExcludesOverlaps(t *testing.T) {
	// ocupado [10:00, 11:00): bloqueia inícios de 9:15 até 10:45
	busy := []Interval{NewInterval(10*60, 60)}

	slots := GenerateSlots(defaultDay(), 60, busy, nil)

	if len(slots) != 33-7 {
		t.Fatalf("quer 26 slots, veio %d", len(slots))
	}

	got := map[string]struct{}{}
	for _, s := range slots {
		got[s] = struct{}{}
	}

	for _, blocked := range []string{"9:15 AM", "9:30 AM", "9:45 AM", "10:00 AM", "10:15 AM", "10:30 AM", "10:45 AM"} {
		if _, ok := got[blocked]; ok {
			t.Errorf("%s deveria estar bloqueado", blocked)
		}
	}

	// encostar no início ou no fim do ocupado é permitido
	for _, free := range []string{"9:00 AM", "11:00 AM"} {
		if _, ok := got[free]; !ok {
			t.Errorf("%s deveria estar livre", free)
		}
	}
}

func TestGenerateSlotsHiddenHours(t *testing.T) {
	hidden := HiddenSet([]string{"12:00 PM", "12:15 PM"})

	slots := GenerateSlots(defaultDay(), 30, nil, hidden)

	for _, s := range slots {
		if s == "12:00 PM" || s == "12:15 PM" {
			t.Errorf("slot oculto %s foi emitido", s)
		}
	}
	// oculto bloqueia só o início, não intervalos que passam por cima
	found := false
	for _, s := range slots {
		if s == "11:45 AM" {
			found = true
		}
	}
	if !found {
		t.Error("11:45 AM deveria continuar livre")
	}
}

func TestGenerateSlotsLongDuration(t *testing.T) {
	// 9 horas exatas cabem uma única vez
	slots := GenerateSlots(defaultDay(), 9*60, nil, nil)
	if !reflect.DeepEqual(slots, []string{"9:00 AM"}) {
		t.Fatalf("quer só 9:00 AM, veio %v", slots)
	}

	// mais que o expediente: nenhum
	slots = GenerateSlots(defaultDay(), 9*60+1, nil, nil)
	if len(slots) != 0 {
		t.Fatalf("duração maior que o dia deveria dar vazio, veio %v", slots)
	}
}

func TestGenerateSlotsDegenerateInputs(t *testing.T) {
	if got := GenerateSlots(defaultDay(), 0, nil, nil); len(got) != 0 {
		t.Errorf("duração 0 deveria dar vazio, veio %v", got)
	}
	if got := GenerateSlots(Workday{Open: 600, Close: 600, Step: 15}, 30, nil, nil); len(got) != 0 {
		t.Errorf("expediente vazio deveria dar vazio, veio %v", got)
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	busy := []Interval{NewInterval(10*60, 45), NewInterval(15*60, 90)}
	hidden := HiddenSet([]string{"1:00 PM"})

	first := GenerateSlots(defaultDay(), 30, busy, hidden)
	for i := 0; i < 10; i++ {
		again := GenerateSlots(defaultDay(), 30, busy, hidden)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("saída mudou entre execuções: %v vs %v", first, again)
		}
	}
}

func TestGenerateSlotsAscending(t *testing.T) {
	slots := GenerateSlots(defaultDay(), 30, []Interval{NewInterval(11*60, 60)}, nil)

	for i := 1; i < len(slots); i++ {
		a, _ := ParseClock(slots[i-1])
		b, _ := ParseClock(slots[i])
		if b <= a {
			t.Fatalf("slots fora de ordem: %s depois de %s", slots[i], slots[i-1])
		}
	}
}
