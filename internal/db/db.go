package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/UnTrende/luxx-sub002/internal/config"
	"github.com/UnTrende/luxx-sub002/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Service{},
		&models.Client{},
		&models.Booking{},
		&models.BookingItem{},
		&models.HiddenHour{},
		&models.LoyaltyAccount{},
		&models.LoyaltyEntry{},
		&models.Transaction{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE barbershops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// Dois writers no mesmo slot: quem perder a corrida leva 23505,
	// mapeado para time_conflict. Só vale para status ativos.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_booking_slot
        ON bookings (barber_id, date, start_time)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
