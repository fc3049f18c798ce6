package booking

import (
	"context"
	"testing"

	"github.com/UnTrende/luxx-sub002/internal/httperr"
)

func TestConfirmBooking(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(10, "2030-01-15", "10:00 AM", "pending")

	uc := NewConfirmBooking(repo, nil, nil)

	out, err := uc.Execute(context.Background(), 1, 10, b.ID)
	if err != nil {
		t.Fatal(err)
	}

	if out.Status != "confirmed" {
		t.Errorf("status = %s", out.Status)
	}
	if out.ConfirmedAt == nil {
		t.Error("confirmed_at não preenchido")
	}

	// segunda confirmação é invalid_state
	if _, err := uc.Execute(context.Background(), 1, 10, b.ID); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("quer invalid_state, veio %v", err)
	}
}

func TestConfirmBookingNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.addBooking(10, "2030-01-15", "10:00 AM", "pending")

	uc := NewConfirmBooking(repo, nil, nil)

	// booking de outro barbeiro não aparece
	if _, err := uc.Execute(context.Background(), 1, 99, 1); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("quer booking_not_found, veio %v", err)
	}
}

func TestCancelBookingFreesTheSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	b := repo.addBooking(10, "2030-01-15", "10:00 AM", "confirmed", 1)

	if _, err := NewCancelBooking(repo, nil, nil).Execute(context.Background(), 1, 10, b.ID); err != nil {
		t.Fatal(err)
	}

	// o horário volta a aparecer na disponibilidade
	slots, err := newAvailabilityUC(repo).Execute(context.Background(), availabilityInputFor(10, "2030-01-15", 1))
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, s := range slots {
		if s == "10:00 AM" {
			found = true
		}
	}
	if !found {
		t.Error("cancelamento deveria liberar 10:00 AM")
	}
}

func TestCompleteBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50.0)
	repo.addService(2, "Barba", 30, 35.9)
	b := repo.addBooking(10, "2030-01-15", "10:00 AM", "confirmed", 1, 2)

	uc := NewCompleteBooking(repo, nil, nil)

	out, err := uc.Execute(context.Background(), 1, 10, b.ID)
	if err != nil {
		t.Fatal(err)
	}

	if out.Status != "completed" || out.CompletedAt == nil {
		t.Errorf("status = %s, completed_at = %v", out.Status, out.CompletedAt)
	}

	// 1 ponto por real: floor(85.9) = 85
	if repo.loyalty[b.ClientID] != 85 {
		t.Errorf("pontos = %d, quer 85", repo.loyalty[b.ClientID])
	}

	if len(repo.transactions) != 1 {
		t.Fatalf("quer 1 transação, veio %d", len(repo.transactions))
	}
	tr := repo.transactions[0]
	if tr.Amount != 85.9 || tr.Method != "in_person" || tr.Status != "paid" {
		t.Errorf("transação errada: %+v", tr)
	}
}

func TestCompleteBookingRequiresConfirmed(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(10, "2030-01-15", "10:00 AM", "pending")

	_, err := NewCompleteBooking(repo, nil, nil).Execute(context.Background(), 1, 10, b.ID)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("pending não conclui direto: %v", err)
	}
}

func TestCompleteBookingSurvivesLoyaltyFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	repo.failLoyalty = true
	b := repo.addBooking(10, "2030-01-15", "10:00 AM", "confirmed", 1)

	out, err := NewCompleteBooking(repo, nil, nil).Execute(context.Background(), 1, 10, b.ID)
	if err != nil {
		t.Fatalf("fidelidade fora do ar não derruba a conclusão: %v", err)
	}
	if out.Status != "completed" {
		t.Errorf("status = %s", out.Status)
	}
	// a transação ainda é registrada
	if len(repo.transactions) != 1 {
		t.Errorf("quer 1 transação, veio %d", len(repo.transactions))
	}
}

func TestCompleteBookingWithoutServices(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(10, "2030-01-15", "10:00 AM", "confirmed")

	out, err := NewCompleteBooking(repo, nil, nil).Execute(context.Background(), 1, 10, b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != "completed" {
		t.Errorf("status = %s", out.Status)
	}

	// sem valor: nem pontos, nem transação
	if repo.loyalty[b.ClientID] != 0 {
		t.Errorf("pontos = %d", repo.loyalty[b.ClientID])
	}
	if len(repo.transactions) != 0 {
		t.Errorf("transações = %d", len(repo.transactions))
	}
}
