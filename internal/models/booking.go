package models

import "time"

// Booking nunca persiste o intervalo ocupado: ele é sempre derivado de
// StartTime + soma das durações dos serviços (fonte única de verdade).
type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	BarberID uint `gorm:"index:idx_bookings_barber_day" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Dia local da barbearia (YYYY-MM-DD), comparado só por igualdade.
	Date string `gorm:"size:10;index:idx_bookings_barber_day" json:"date"`
	// Hora local no formato de wire "3:04 PM".
	StartTime string `gorm:"size:8" json:"start_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Items []BookingItem `json:"items"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingItem liga o agendamento aos serviços escolhidos, preservando a ordem.
type BookingItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index" json:"booking_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Position int `json:"position"`
}
