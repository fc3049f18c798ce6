package booking

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want ClockMinutes
	}{
		{"9:00 AM", 9 * 60},
		{"12:00 PM", 12 * 60},
		{"12:00 AM", 0},
		{"2:30 PM", 14*60 + 30},
		{"5:45 PM", 17*60 + 45},
		{" 9:00 AM ", 9 * 60},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): erro inesperado %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, quer %d", tc.in, got, tc.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, in := range []string{"", "9:00", "25:00 PM", "abc", "9h00"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q): esperava erro", in)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	// a forma canônica precisa sobreviver a parse → format → parse
	for _, s := range []string{"9:00 AM", "12:00 PM", "12:30 AM", "5:45 PM"} {
		m, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if m.String() != s {
			t.Errorf("round trip de %q virou %q", s, m.String())
		}
	}
}

func TestParseWall(t *testing.T) {
	got, err := ParseWall("09:00")
	if err != nil || got != 9*60 {
		t.Fatalf("ParseWall(09:00) = %d, %v", got, err)
	}

	got, err = ParseWall("18:00")
	if err != nil || got != 18*60 {
		t.Fatalf("ParseWall(18:00) = %d, %v", got, err)
	}

	if _, err := ParseWall("6:00 PM"); err == nil {
		t.Error("ParseWall aceita só 24h")
	}
}
