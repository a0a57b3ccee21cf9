package services

import (
	"time"

	"gorm.io/datatypes"
)

// BookingDTO is the booking representation returned to the HTTP layer.
type BookingDTO struct {
	ID       uint      `json:"id"`
	UserID   string    `json:"userId"`
	RoomID   uint      `json:"roomId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// HotelDTO is the hotel representation returned to the HTTP layer.
type HotelDTO struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	Amenities   datatypes.JSON `json:"amenities,omitempty"`
}

// RoomDTO carries the display projection for a room: identity, description,
// capacity, price and the owning hotel's id and name.
type RoomDTO struct {
	ID            uint    `json:"id"`
	HotelID       uint    `json:"hotelId"`
	HotelName     string  `json:"hotelName"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity"`
}

// HotelWithRoomsDTO is the availability-search result item.
type HotelWithRoomsDTO struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	Amenities   datatypes.JSON `json:"amenities,omitempty"`
	Rooms       []RoomDTO      `json:"rooms"`
}
