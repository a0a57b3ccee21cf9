package models

import "time"

// User is the minimal account record bookings reference. Authentication
// itself is handled outside this service; booking operations receive the
// caller's user id as a parameter.
type User struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Email        string `gorm:"size:200;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:128" json:"-"`
}
