package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/UnTrende/luxx-sub002/internal/audit"
	"github.com/UnTrende/luxx-sub002/internal/cache"
	"github.com/UnTrende/luxx-sub002/internal/config"
	domain "github.com/UnTrende/luxx-sub002/internal/domain/booking"
	"github.com/UnTrende/luxx-sub002/internal/handlers"
	"github.com/UnTrende/luxx-sub002/internal/infra/repository"
	"github.com/UnTrende/luxx-sub002/internal/middleware"
	"github.com/UnTrende/luxx-sub002/internal/payments"
	"github.com/UnTrende/luxx-sub002/internal/storage"
	ucBooking "github.com/UnTrende/luxx-sub002/internal/usecase/booking"
)

// RegisterRoutes monta toda a árvore de rotas com injeção explícita.
// Nada de singletons: tudo nasce aqui e desce por parâmetro.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// ------------------------------------------------
	// Infra compartilhada
	// ------------------------------------------------
	repo := repository.NewBookingGormRepository(db)
	availCache := cache.NewAvailability(rdb, time.Duration(cfg.CacheTTLSec)*time.Second)
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	uploader := storage.NewUploader(cfg)

	checkout, err := payments.NewCheckout(cfg.MPAccessToken)
	if err != nil {
		// token inválido desliga pagamentos, API sobe mesmo assim
		checkout = nil
	}

	day := domain.NewWorkday(cfg.OpenTime, cfg.CloseTime, cfg.SlotStepMin)
	defaultMin := cfg.DefaultDurationMin

	// ------------------------------------------------
	// Use cases
	// ------------------------------------------------
	createUC := ucBooking.NewCreateBooking(repo, availCache, auditDispatcher, day, defaultMin)
	confirmUC := ucBooking.NewConfirmBooking(repo, availCache, auditDispatcher)
	cancelUC := ucBooking.NewCancelBooking(repo, availCache, auditDispatcher)
	completeUC := ucBooking.NewCompleteBooking(repo, availCache, auditDispatcher)
	listByDateUC := ucBooking.NewListBookingsByDate(repo, defaultMin)
	listByMonthUC := ucBooking.NewListBookingsByMonth(repo, defaultMin)
	availUC := ucBooking.NewGetAvailability(repo, availCache, day, defaultMin)
	bookedUC := ucBooking.NewGetBookedSlots(repo, defaultMin)

	// ------------------------------------------------
	// Handlers
	// ------------------------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	serviceImageHandler := handlers.NewServiceImageHandler(db, uploader)
	hiddenHoursHandler := handlers.NewHiddenHoursHandler(db, availCache)
	bookingHandler := handlers.NewBookingHandler(
		createUC, confirmUC, cancelUC, completeUC,
		listByDateUC, listByMonthUC, availUC, bookedUC,
	)
	publicHandler := handlers.NewPublicHandler(db, createUC, availUC)
	paymentHandler := handlers.NewPaymentHandler(db, checkout, auditDispatcher)
	loyaltyHandler := handlers.NewLoyaltyHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------------------------
	// Middlewares globais
	// ------------------------------------------------
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecureHeaders())

	api := r.Group("/api")

	// ------------------------------------------------
	// Público (página de agendamento do cliente)
	// ------------------------------------------------
	public := api.Group("/public")
	public.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMin))
	{
		public.GET("/:slug", publicHandler.GetBarbershop)
		public.GET("/:slug/services", publicHandler.ListServices)
		public.GET("/:slug/barbers", publicHandler.ListBarbers)
		public.GET("/:slug/availability", publicHandler.Availability)
		public.POST("/:slug/bookings", publicHandler.CreateBooking)
	}

	// ------------------------------------------------
	// Auth
	// ------------------------------------------------
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ------------------------------------------------
	// Área logada
	// ------------------------------------------------
	me := api.Group("/me")
	me.Use(middleware.AuthMiddleware(cfg))
	{
		me.GET("", meHandler.GetMe)

		me.GET("/barbershop", barbershopHandler.GetMeBarbershop)
		me.PUT("/barbershop", barbershopHandler.UpdateMeBarbershop)

		me.GET("/clients", clientHandler.List)
		me.GET("/clients/:clientId/loyalty", loyaltyHandler.GetClientAccount)

		me.GET("/services", serviceHandler.List)
		me.POST("/services", serviceHandler.Create)
		me.PUT("/services/:id", serviceHandler.Update)
		me.POST("/services/:id/image", serviceImageHandler.Upload)

		me.GET("/hidden-hours", hiddenHoursHandler.Get)
		me.PUT("/hidden-hours", hiddenHoursHandler.Update)

		me.GET("/availability", bookingHandler.Availability)
		me.GET("/booked-slots", bookingHandler.BookedSlots)

		me.POST("/bookings", bookingHandler.Create)
		me.GET("/bookings", bookingHandler.ListByDate)
		me.GET("/bookings/month", bookingHandler.ListByMonth)
		me.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
		me.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		me.PATCH("/bookings/:id/complete", bookingHandler.Complete)
		me.POST("/bookings/:id/checkout", paymentHandler.Checkout)

		owner := me.Group("")
		owner.Use(middleware.RequireOwner())
		{
			owner.GET("/transactions", paymentHandler.ListTransactions)
			owner.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
