package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Services (lote único, nunca N+1)
// --------------------------------------------------

func (r *BookingGormRepository) ListServicesByIDs(
	ctx context.Context,
	barbershopID uint,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND id IN ?", barbershopID, ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking (create guardado)
// --------------------------------------------------

// CreateBookingGuarded: numa única transação, trava as linhas ativas do
// dia (FOR UPDATE), reconstrói a ocupação e roda o teste de sobreposição
// meio-aberto contra todos os agendamentos do dia, não só o horário
// exato. O índice único parcial cobre a corrida de inserts simultâneos.
func (r *BookingGormRepository) CreateBookingGuarded(
	ctx context.Context,
	b *models.Booking,
	span domain.Interval,
	defaultDurationMin int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var day []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND status IN ?",
				b.BarberID, b.Date, domain.ActiveStatuses,
			).
			Find(&day).Error; err != nil {
			return err
		}

		if err := attachItems(tx, day); err != nil {
			return err
		}

		durations, err := dayDurationsTx(tx, b.BarbershopID, day)
		if err != nil {
			return err
		}

		busy := domain.BuildOccupancy(day, durations, defaultDurationMin)
		if domain.OverlapsAny(span, busy) {
			return httperr.ErrBusiness("time_conflict")
		}

		if err := tx.Create(b).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("time_conflict")
			}
			return err
		}

		return nil
	})
}

// attachItems carrega os itens de todos os bookings numa única query.
func attachItems(tx *gorm.DB, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(bookings))
	byID := make(map[uint]*models.Booking, len(bookings))
	for i := range bookings {
		ids = append(ids, bookings[i].ID)
		byID[bookings[i].ID] = &bookings[i]
	}

	var items []models.BookingItem
	if err := tx.
		Where("booking_id IN ?", ids).
		Order("booking_id ASC, position ASC").
		Find(&items).Error; err != nil {
		return err
	}

	for _, it := range items {
		if b, ok := byID[it.BookingID]; ok {
			b.Items = append(b.Items, it)
		}
	}

	return nil
}

func dayDurationsTx(
	tx *gorm.DB,
	barbershopID uint,
	bookings []models.Booking,
) (domain.ServiceDurations, error) {

	seen := map[uint]struct{}{}
	var union []uint
	for i := range bookings {
		for _, id := range domain.ServiceIDs(&bookings[i]) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}

	if len(union) == 0 {
		return domain.ServiceDurations{}, nil
	}

	var services []models.Service
	if err := tx.
		Where("barbershop_id = ? AND id IN ?", barbershopID, union).
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("resolve durations: %w", err)
	}

	return domain.DurationsOf(services), nil
}

// --------------------------------------------------
// Booking (mudança de estado)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForBarber(
	ctx context.Context,
	bookingID uint,
	barberID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND barber_id = ?", bookingID, barberID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"status":       b.Status,
			"confirmed_at": b.ConfirmedAt,
			"cancelled_at": b.CancelledAt,
			"completed_at": b.CompletedAt,
		}).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where(
			"barber_id = ? AND date = ? AND status IN ?",
			barberID, date, domain.ActiveStatuses,
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items.Service").
		Where("barber_id = ? AND date = ?", barberID, date).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForMonth(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]models.Booking, error) {

	// datas são strings YYYY-MM-DD: o mês é um prefixo
	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items.Service").
		Where("barber_id = ? AND date LIKE ?", barberID, prefix).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListHiddenHours(
	ctx context.Context,
	barberID uint,
) ([]string, error) {

	var rows []models.HiddenHour
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	// sem configuração → conjunto vazio, não é erro
	hours := make([]string, 0, len(rows))
	for _, row := range rows {
		hours = append(hours, row.Time)
	}

	return hours, nil
}

// --------------------------------------------------
// Loyalty / Billing
// --------------------------------------------------

func (r *BookingGormRepository) CreditLoyalty(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
	points int,
	bookingID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var account models.LoyaltyAccount
		err := tx.
			Where("barbershop_id = ? AND client_id = ?", barbershopID, clientID).
			First(&account).Error

		if err == gorm.ErrRecordNotFound {
			account = models.LoyaltyAccount{
				BarbershopID: barbershopID,
				ClientID:     clientID,
			}
			if err := tx.Create(&account).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.
			Model(&models.LoyaltyAccount{}).
			Where("id = ?", account.ID).
			Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
			return err
		}

		entry := models.LoyaltyEntry{
			AccountID: account.ID,
			BookingID: &bookingID,
			Points:    points,
			Reason:    "booking_completed",
		}
		return tx.Create(&entry).Error
	})
}

func (r *BookingGormRepository) CreateTransaction(
	ctx context.Context,
	t *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
