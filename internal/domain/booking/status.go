package booking

import "github.com/UnTrende/luxx-sub002/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Apenas pending e confirmed ocupam horário na agenda.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ActiveStatuses é usado em cláusulas IN nas queries de ocupação.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

// ===============================
// Transições (sempre para frente)
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.Active() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Agendamento público nasce pending; criado pelo barbeiro nasce confirmed.
func InitialStatus(byBarber bool) Status {
	if byBarber {
		return StatusConfirmed
	}
	return StatusPending
}
