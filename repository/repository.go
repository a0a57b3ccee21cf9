// Package repository holds the data-access layer: interfaces consumed by the
// services and their GORM/sqlx implementations over MySQL.
package repository

import (
	"time"

	"github.com/villaclara/hotel-booking/models"
)

// HotelRepository provides hotel persistence and the availability search.
type HotelRepository interface {
	Create(hotel *models.Hotel) error
	GetByID(id uint) (*models.Hotel, error)
	GetAll() ([]models.Hotel, error)
	Update(hotel *models.Hotel) error
	// Delete reports whether a row was removed. Rooms and their bookings
	// cascade with the hotel.
	Delete(id uint) (bool, error)
	Exists(id uint) (bool, error)
	// GetAllWithRoomsByDates returns hotels (rooms preloaded) that have at
	// least one room free over [checkIn, checkOut). Nil dates skip the
	// availability filter; empty city skips the city filter (otherwise
	// case-insensitive exact match on address).
	GetAllWithRoomsByDates(checkIn, checkOut *time.Time, city string) ([]models.Hotel, error)
}

// RoomRepository provides room persistence.
type RoomRepository interface {
	Create(room *models.Room) error
	// GetByID returns the room with its hotel preloaded, or nil when absent.
	GetByID(id uint) (*models.Room, error)
	GetAllByHotel(hotelID uint) ([]models.Room, error)
	Update(room *models.Room) error
	Delete(id uint) (bool, error)
}

// BookingWithNames is the join projection for booking lists enriched with
// room and hotel display names.
type BookingWithNames struct {
	ID              uint      `json:"id"`
	UserID          string    `json:"userId"`
	RoomID          uint      `json:"roomId"`
	RoomDescription string    `json:"roomDescription"`
	HotelName       string    `json:"hotelName"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
}

// BookingRepository is the booking ledger's store. The admission sequence
// (existence check, overlap check, insert) must run against a single
// transaction-scoped instance obtained through InTransaction.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	// GetAllWithParams lists bookings ordered by insertion, optionally
	// filtered by owner (empty userID means no filter).
	GetAllWithParams(userID string) ([]models.Booking, error)
	GetAllWithNames(userID string) ([]BookingWithNames, error)
	// Delete reports whether a row was removed; deleting an unknown id is
	// not an error.
	Delete(id uint) (bool, error)
	// IsRoomAvailable reports whether no booking on the room intersects
	// [checkIn, checkOut).
	IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error)
	// GetRoomForUpdate loads the room under a row lock, serializing
	// concurrent admissions for the same room. Returns nil when the room
	// does not exist. Only meaningful inside InTransaction.
	GetRoomForUpdate(roomID uint) (*models.Room, error)
	// InTransaction runs fn against a repository bound to one transaction,
	// committing on nil and rolling back on error.
	InTransaction(fn func(tx BookingRepository) error) error
}

// StatsRepository answers reporting queries that bypass the ORM.
type StatsRepository interface {
	BookingsCountPerHotel(from, to *time.Time) ([]HotelBookingStats, error)
}

// HotelBookingStats is one row of the bookings-per-hotel aggregate.
type HotelBookingStats struct {
	HotelID      uint   `db:"hotel_id" json:"hotelId"`
	HotelName    string `db:"hotel_name" json:"hotelName"`
	BookingCount int    `db:"booking_count" json:"bookingCount"`
}
