package booking

import (
	"context"
	"testing"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
)

func newCreateUC(repo *fakeRepo) *CreateBooking {
	return NewCreateBooking(repo, nil, nil, testWorkday(), 60)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		BarbershopID: 1,
		BarberID:     10,
		ClientName:   "João",
		ClientPhone:  "(11) 99999-0000",
		ServiceIDs:   []uint{1},
		Date:         "2030-01-15",
		Time:         "10:00 AM",
		ByBarber:     true,
	}
}

func TestCreateBookingByBarber(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)

	b, err := newCreateUC(repo).Execute(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	if b.Status != "confirmed" {
		t.Errorf("criado pelo barbeiro nasce confirmed, veio %s", b.Status)
	}
	if b.StartTime != "10:00 AM" {
		t.Errorf("start_time canônico = %q", b.StartTime)
	}
	if b.Reference == "" {
		t.Error("reference vazio")
	}
	if len(b.Items) != 1 || b.Items[0].ServiceID != 1 {
		t.Errorf("itens errados: %+v", b.Items)
	}
	if b.ClientID == 0 {
		t.Error("cliente não criado")
	}
}

func TestCreateBookingPublicIsPending(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)

	in := validInput()
	in.ByBarber = false

	b, err := newCreateUC(repo).Execute(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if b.Status != "pending" {
		t.Errorf("público nasce pending, veio %s", b.Status)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	uc := newCreateUC(repo)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
		code   string
	}{
		{"sem barbeiro", func(in *CreateBookingInput) { in.BarberID = 0 }, "missing_params"},
		{"sem data", func(in *CreateBookingInput) { in.Date = "" }, "missing_params"},
		{"sem hora", func(in *CreateBookingInput) { in.Time = "" }, "missing_params"},
		{"data inválida", func(in *CreateBookingInput) { in.Date = "15/01/2030" }, "invalid_date"},
		{"hora inválida", func(in *CreateBookingInput) { in.Time = "25:00" }, "invalid_time"},
		{"telefone inválido", func(in *CreateBookingInput) { in.ClientPhone = "123" }, "invalid_phone"},
		{"no passado", func(in *CreateBookingInput) { in.Date = "2020-01-15" }, "too_soon"},
		{"antes de abrir", func(in *CreateBookingInput) { in.Time = "8:00 AM" }, "outside_working_hours"},
		{"não cabe antes de fechar", func(in *CreateBookingInput) { in.Time = "5:30 PM" }, "outside_working_hours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(ctx, in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("quer %s, veio %v", tc.code, err)
			}
		})
	}
}

func TestCreateBookingHiddenHour(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	repo.hidden[10] = []string{"10:00 AM"}

	_, err := newCreateUC(repo).Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "hidden_hour") {
		t.Fatalf("quer hidden_hour, veio %v", err)
	}
}

func TestCreateBookingExactSlotConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	repo.addBooking(10, "2030-01-15", "10:00 AM", "confirmed", 1)

	_, err := newCreateUC(repo).Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("quer time_conflict, veio %v", err)
	}
}

// Conflito de sobreposição total: o início pedido é diferente de todos os
// existentes, mas o intervalo cruza um agendamento ativo.
func TestCreateBookingOverlapConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 30, 50)
	repo.addService(2, "Barba", 60, 35)
	repo.addBooking(10, "2030-01-15", "9:30 AM", "confirmed", 2)

	in := validInput()
	in.ServiceIDs = []uint{1, 2} // 90 minutos
	in.Time = "9:00 AM"          // [9:00, 10:30) cruza [9:30, 10:30)

	_, err := newCreateUC(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("quer time_conflict, veio %v", err)
	}
}

func TestCreateBookingAfterCancellationFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	repo.addBooking(10, "2030-01-15", "10:00 AM", "cancelled", 1)

	b, err := newCreateUC(repo).Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("cancelado libera o horário: %v", err)
	}
	if b.StartTime != "10:00 AM" {
		t.Errorf("start_time = %q", b.StartTime)
	}
}

func TestCreateBookingNormalizesPhone(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatal(err)
	}

	// mesmo telefone com máscara diferente reusa o cliente
	in := validInput()
	in.ClientPhone = "11999990000"
	in.Time = "2:00 PM"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatal(err)
	}

	if len(repo.clients) != 1 {
		t.Fatalf("quer 1 cliente, veio %d", len(repo.clients))
	}
}

func TestCreateBookingEmptyServicesUsesDefault(t *testing.T) {
	repo := newFakeRepo()

	in := validInput()
	in.ServiceIDs = nil
	in.Time = "5:15 PM" // 60min padrão: [17:15, 18:15) estoura o fechamento

	_, err := newCreateUC(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("duração padrão deveria valer: %v", err)
	}

	in.Time = "5:00 PM" // cabe exato
	if _, err := newCreateUC(newFakeRepo()).Execute(context.Background(), in); err != nil {
		t.Fatalf("5:00 PM com 60min cabe até 18:00: %v", err)
	}
}

func TestCreateBookingsBackToBack(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Corte", 60, 50)
	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatal(err)
	}

	// encostado no fim do anterior: [11:00, 12:00) não conflita
	in := validInput()
	in.Time = "11:00 AM"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("slots encostados não conflitam: %v", err)
	}

	// disponibilidade passa a excluir os dois
	slots, err := newAvailabilityUC(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     10,
		ServiceIDs:   []uint{1},
		Date:         "2030-01-15",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range slots {
		if s == "10:00 AM" || s == "11:00 AM" {
			t.Errorf("%s deveria estar ocupado", s)
		}
	}
}
