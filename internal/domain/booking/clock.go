package booking

import (
	"strings"
	"time"

	"github.com/UnTrende/luxx-sub002/internal/httperr"
)

// Formato de wire dos horários ("9:00 AM", "2:30 PM").
const wireLayout = "3:04 PM"

// ClockMinutes é a unidade interna de horário: minutos desde a meia-noite.
// É construído uma única vez na borda (parse validado) e nunca re-parseado.
type ClockMinutes int

func ParseClock(s string) (ClockMinutes, error) {
	t, err := time.Parse(wireLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return ClockMinutes(t.Hour()*60 + t.Minute()), nil
}

// ParseWall interpreta horários de configuração no formato 24h ("09:00").
func ParseWall(s string) (ClockMinutes, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return ClockMinutes(t.Hour()*60 + t.Minute()), nil
}

func (m ClockMinutes) String() string {
	t := time.Date(0, 1, 1, int(m)/60%24, int(m)%60, 0, 0, time.UTC)
	return t.Format(wireLayout)
}
