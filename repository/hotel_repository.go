package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/villaclara/hotel-booking/models"
)

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository returns the GORM-backed hotel store.
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(hotel *models.Hotel) error {
	if err := r.db.Create(hotel).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

func (r *hotelRepository) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.Preload("Rooms").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateStoreError(err)
	}
	return &hotel, nil
}

func (r *hotelRepository) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.Preload("Rooms").Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return hotels, nil
}

func (r *hotelRepository) Update(hotel *models.Hotel) error {
	if err := r.db.Save(hotel).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

func (r *hotelRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Hotel{}, id)
	if res.Error != nil {
		return false, translateStoreError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *hotelRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Hotel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateStoreError(err)
	}
	return count > 0, nil
}

// GetAllWithRoomsByDates keeps a hotel when some room of it has no booking
// intersecting [checkIn, checkOut) — the same half-open test the admission
// check uses. The room list of a qualifying hotel is returned whole.
func (r *hotelRepository) GetAllWithRoomsByDates(checkIn, checkOut *time.Time, city string) ([]models.Hotel, error) {
	q := r.db.Preload("Rooms").Order("id ASC")

	if city != "" {
		q = q.Where("LOWER(address) = ?", strings.ToLower(strings.TrimSpace(city)))
	}

	if checkIn != nil && checkOut != nil {
		q = q.Where(`EXISTS (
			SELECT 1 FROM rooms
			WHERE rooms.hotel_id = hotels.id
			  AND NOT EXISTS (
				SELECT 1 FROM bookings
				WHERE bookings.room_id = rooms.id
				  AND bookings.check_in < ? AND ? < bookings.check_out
			  )
		)`, *checkOut, *checkIn)
	}

	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return hotels, nil
}
