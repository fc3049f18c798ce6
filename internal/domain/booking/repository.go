package booking

import (
	"context"

	"github.com/UnTrende/luxx-sub002/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Services (sempre em lote, nunca N+1) --------
	ListServicesByIDs(
		ctx context.Context,
		barbershopID uint,
		ids []uint,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflito) --------
	// CreateBookingGuarded roda a checagem de sobreposição e o insert numa
	// única transação com lock das linhas ativas do dia. Perder a corrida
	// vira httperr time_conflict (inclusive via unique index parcial).
	CreateBookingGuarded(
		ctx context.Context,
		b *models.Booking,
		span Interval,
		defaultDurationMin int,
	) error

	// -------- Booking (mudança de estado) --------
	GetBookingForBarber(
		ctx context.Context,
		bookingID uint,
		barberID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	ListActiveBookingsForDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsForMonth(
		ctx context.Context,
		barberID uint,
		year int,
		month int,
	) ([]models.Booking, error)

	// Ausência de configuração devolve lista vazia, nunca erro.
	ListHiddenHours(
		ctx context.Context,
		barberID uint,
	) ([]string, error)

	// -------- Loyalty / Billing --------
	CreditLoyalty(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
		points int,
		bookingID uint,
	) error

	CreateTransaction(
		ctx context.Context,
		t *models.Transaction,
	) error
}
