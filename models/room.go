package models

import "time"

// Room belongs to exactly one hotel. Deleting a room cascades to its bookings.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	HotelID       uint    `gorm:"index;not null" json:"hotelId"`
	Description   string  `gorm:"type:text" json:"description"`
	PricePerNight float64 `gorm:"type:decimal(18,2);not null" json:"pricePerNight"`
	Capacity      int     `gorm:"not null" json:"capacity"`

	Hotel    Hotel     `gorm:"foreignKey:HotelID;references:ID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}
