package booking

import "testing"

func TestOverlaps(t *testing.T) {
	base := NewInterval(10*60, 60) // [10:00, 11:00)

	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identico", NewInterval(10*60, 60), true},
		{"contido", NewInterval(10*60+15, 30), true},
		{"cruza o inicio", NewInterval(9*60+30, 60), true},
		{"cruza o fim", NewInterval(10*60+30, 60), true},
		{"engloba", NewInterval(9*60, 180), true},
		{"encosta antes", NewInterval(9*60, 60), false},
		{"encosta depois", NewInterval(11*60, 60), false},
		{"bem antes", NewInterval(8*60, 30), false},
		{"bem depois", NewInterval(12*60, 30), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, quer %v", base, tc.other, got, tc.want)
			}
			// simetria
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, quer %v", tc.other, base, got, tc.want)
			}
		})
	}
}

func TestOverlapsAny(t *testing.T) {
	busy := []Interval{
		NewInterval(10*60, 60),
		NewInterval(14*60, 30),
	}

	if !OverlapsAny(NewInterval(10*60+30, 60), busy) {
		t.Error("deveria cruzar o primeiro intervalo")
	}
	if OverlapsAny(NewInterval(11*60, 60), busy) {
		t.Error("encostar no fim do primeiro não é conflito")
	}
	if OverlapsAny(NewInterval(9*60, 30), nil) {
		t.Error("lista vazia nunca conflita")
	}
}
