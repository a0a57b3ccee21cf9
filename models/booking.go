package models

import "time"

// Booking is a stay reservation for one room over the half-open interval
// [CheckIn, CheckOut). The invariant the ledger protects: no two bookings on
// the same room have overlapping intervals.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	RoomID   uint      `gorm:"index;not null" json:"roomId"`
	UserID   string    `gorm:"size:64;index;not null" json:"userId"`
	CheckIn  time.Time `gorm:"not null" json:"checkIn"`
	CheckOut time.Time `gorm:"not null" json:"checkOut"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

// Overlaps reports whether the booking's stay intersects [checkIn, checkOut).
// Touching endpoints (one stay's check-out equals another's check-in) do not
// count as an overlap. The SQL in the booking repository encodes the same rule.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}
