package models

import "time"

// Horário de início bloqueado administrativamente pelo barbeiro
// (almoço, intervalo etc). Um registro por horário.
type HiddenHour struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	// Mesmo formato de wire dos slots: "12:00 PM".
	Time string `gorm:"size:8" json:"time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
