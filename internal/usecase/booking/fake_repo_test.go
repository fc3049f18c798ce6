package booking

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/models"
)

// fakeRepo reproduz em memória o contrato do repositório, inclusive a
// checagem de conflito dentro de CreateBookingGuarded.
type fakeRepo struct {
	shop     models.Barbershop
	services map[uint]models.Service
	hidden   map[uint][]string

	clients  []*models.Client
	bookings []*models.Booking

	loyalty      map[uint]int
	transactions []models.Transaction

	failLoyalty bool
	nextID      uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func availabilityInputFor(barberID uint, date string, serviceIDs ...uint) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     barberID,
		ServiceIDs:   serviceIDs,
		Date:         date,
	}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: models.Barbershop{
			ID:                1,
			Name:              "Barbearia Teste",
			Slug:              "barbearia-teste",
			Timezone:          "America/Sao_Paulo",
			MinAdvanceMinutes: 120,
		},
		services: map[uint]models.Service{},
		hidden:   map[uint][]string{},
		loyalty:  map[uint]int{},
	}
}

func (f *fakeRepo) addService(id uint, name string, durationMin int, price float64) {
	f.services[id] = models.Service{
		ID:           id,
		BarbershopID: f.shop.ID,
		Name:         name,
		DurationMin:  durationMin,
		Price:        price,
		Active:       true,
	}
}

func (f *fakeRepo) addBooking(barberID uint, date, start, status string, serviceIDs ...uint) *models.Booking {
	f.nextID++

	items := make([]models.BookingItem, 0, len(serviceIDs))
	for i, id := range serviceIDs {
		items = append(items, models.BookingItem{ServiceID: id, Position: i})
	}

	b := &models.Booking{
		ID:           f.nextID,
		Reference:    fmt.Sprintf("ref-%d", f.nextID),
		BarbershopID: f.shop.ID,
		BarberID:     barberID,
		ClientID:     1,
		Date:         date,
		StartTime:    start,
		Status:       status,
		Items:        items,
	}
	f.bookings = append(f.bookings, b)
	return b
}

func (f *fakeRepo) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	if id != f.shop.ID {
		return nil, errors.New("barbershop not found")
	}
	shop := f.shop
	return &shop, nil
}

func (f *fakeRepo) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	if slug != f.shop.Slug {
		return nil, errors.New("barbershop not found")
	}
	shop := f.shop
	return &shop, nil
}

func (f *fakeRepo) ListServicesByIDs(ctx context.Context, barbershopID uint, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := f.services[id]; ok && s.BarbershopID == barbershopID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Phone == phone {
			return c, nil
		}
	}

	f.nextID++
	c := &models.Client{ID: f.nextID, BarbershopID: barbershopID, Name: name, Phone: phone, Email: email}
	f.clients = append(f.clients, c)
	return c, nil
}

func (f *fakeRepo) CreateBookingGuarded(
	ctx context.Context,
	b *models.Booking,
	span domain.Interval,
	defaultDurationMin int,
) error {

	active, _ := f.ListActiveBookingsForDay(ctx, b.BarberID, b.Date)

	durations, err := dayDurations(ctx, f, b.BarbershopID, active)
	if err != nil {
		return err
	}

	busy := domain.BuildOccupancy(active, durations, defaultDurationMin)
	if domain.OverlapsAny(span, busy) {
		return httperr.ErrBusiness("time_conflict")
	}

	// índice único parcial (barber, date, start_time) sobre ativos
	for _, other := range active {
		if other.StartTime == b.StartTime {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeRepo) GetBookingForBarber(ctx context.Context, bookingID, barberID uint) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == bookingID && b.BarberID == barberID {
			return b, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	for i, stored := range f.bookings {
		if stored.ID == b.ID {
			f.bookings[i] = b
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeRepo) ListActiveBookingsForDay(ctx context.Context, barberID uint, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.Date == date && domain.Status(b.Status).Active() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForDay(ctx context.Context, barberID uint, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForMonth(ctx context.Context, barberID uint, year, month int) ([]models.Booking, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var out []models.Booking
	for _, b := range f.bookings {
		if b.BarberID == barberID && len(b.Date) >= len(prefix) && b.Date[:len(prefix)] == prefix {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListHiddenHours(ctx context.Context, barberID uint) ([]string, error) {
	return f.hidden[barberID], nil
}

func (f *fakeRepo) CreditLoyalty(ctx context.Context, barbershopID, clientID uint, points int, bookingID uint) error {
	if f.failLoyalty {
		return errors.New("loyalty down")
	}
	f.loyalty[clientID] += points
	return nil
}

func (f *fakeRepo) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	f.transactions = append(f.transactions, *t)
	return nil
}
