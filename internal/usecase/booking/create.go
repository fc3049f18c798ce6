package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/UnTrende/luxx-sub002/internal/audit"
	"github.com/UnTrende/luxx-sub002/internal/cache"
	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/models"
	"github.com/UnTrende/luxx-sub002/internal/timezone"
	"github.com/UnTrende/luxx-sub002/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceIDs []uint

	Date  string // YYYY-MM-DD
	Time  string // "9:00 AM"
	Notes string

	// Criado pelo próprio barbeiro nasce confirmed; público nasce pending.
	ByBarber bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo       domain.Repository
	cache      *cache.Availability
	audit      *audit.Dispatcher
	day        domain.Workday
	defaultMin int
}

func NewCreateBooking(
	repo domain.Repository,
	availCache *cache.Availability,
	auditDispatcher *audit.Dispatcher,
	day domain.Workday,
	defaultMin int,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		cache:      availCache,
		audit:      auditDispatcher,
		day:        day,
		defaultMin: defaultMin,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Input (rejeita antes de tocar o banco)
	// --------------------------------------------------
	if in.BarberID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_params")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// --------------------------------------------------
	// 2️⃣ Barbearia + antecedência mínima
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	loc := timezone.Location(shop.Timezone)
	day, _ := time.ParseInLocation("2006-01-02", in.Date, loc)
	startAt := day.Add(time.Duration(start) * time.Minute)

	now := timezone.NowIn(shop.Timezone)
	if startAt.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 3️⃣ Duração total (mesma resolução da disponibilidade)
	// --------------------------------------------------
	totalDuration, err := resolveTotalDuration(
		ctx,
		uc.repo,
		in.BarbershopID,
		in.ServiceIDs,
		uc.defaultMin,
	)
	if err != nil {
		return nil, err
	}

	span := domain.NewInterval(start, totalDuration)

	// --------------------------------------------------
	// 4️⃣ Expediente + horários ocultos
	// --------------------------------------------------
	if start < uc.day.Open || span.End > uc.day.Close {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	hidden, err := uc.repo.ListHiddenHours(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if _, blocked := domain.HiddenSet(hidden)[start.String()]; blocked {
		return nil, httperr.ErrBusiness("hidden_hour")
	}

	// --------------------------------------------------
	// 5️⃣ Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		validators.NormalizePhone(in.ClientPhone),
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Criação guardada (overlap total + lock + unique index)
	// --------------------------------------------------
	items := make([]models.BookingItem, 0, len(in.ServiceIDs))
	for i, id := range in.ServiceIDs {
		items = append(items, models.BookingItem{ServiceID: id, Position: i})
	}

	b := &models.Booking{
		Reference:    uuid.NewString(),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     client.ID,
		Date:         in.Date,
		StartTime:    start.String(), // forma canônica do wire
		Status:       string(domain.InitialStatus(in.ByBarber)),
		Items:        items,
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateBookingGuarded(ctx, b, span, uc.defaultMin); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Cache + auditoria
	// --------------------------------------------------
	uc.cache.Invalidate(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}
