package models

import "time"

type LoyaltyAccount struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex:idx_loyalty_shop_client" json:"barbershop_id"`
	ClientID     uint `gorm:"uniqueIndex:idx_loyalty_shop_client" json:"client_id"`

	Points int `json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoyaltyEntry struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AccountID uint `gorm:"index" json:"account_id"`

	BookingID *uint  `json:"booking_id"`
	Points    int    `json:"points"`
	Reason    string `gorm:"size:50" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
