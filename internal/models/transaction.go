package models

import "time"

type Transaction struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	BookingID uint `json:"booking_id"`
	ClientID  uint `json:"client_id"`

	Amount float64 `json:"amount"`
	Method string  `gorm:"size:20" json:"method"` // in_person | mercadopago
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	// ID da preference no Mercado Pago, quando Method == mercadopago.
	PaymentRef string `gorm:"size:100" json:"payment_ref"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
