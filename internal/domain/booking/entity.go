package booking

import (
	"time"

	"github.com/UnTrende/luxx-sub002/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

// Cancelar libera o intervalo imediatamente: o status é o único gate.
func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// ServiceIDs devolve os serviços do agendamento na ordem escolhida.
func ServiceIDs(b *models.Booking) []uint {
	ids := make([]uint, 0, len(b.Items))
	for _, it := range b.Items {
		ids = append(ids, it.ServiceID)
	}
	return ids
}
