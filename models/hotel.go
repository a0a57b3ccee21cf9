package models

import (
	"time"

	"gorm.io/datatypes"
)

// Hotel owns a collection of rooms. Deleting a hotel cascades to its rooms
// (and through them to their bookings).
type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name        string `gorm:"size:200;not null" json:"name"`
	Address     string `gorm:"size:300;not null" json:"address"`
	Description string `gorm:"size:1000" json:"description"`

	// Free-form list of amenities, stored as a JSON column.
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	Rooms []Room `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}
