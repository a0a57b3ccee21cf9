package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/villaclara/hotel-booking/models"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository returns the GORM-backed booking ledger store.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

func (r *bookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateStoreError(err)
	}
	return &booking, nil
}

func (r *bookingRepository) GetAllWithParams(userID string) ([]models.Booking, error) {
	q := r.db.Order("id ASC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return bookings, nil
}

func (r *bookingRepository) GetAllWithNames(userID string) ([]BookingWithNames, error) {
	q := r.db.
		Table("bookings").
		Select("bookings.id, bookings.user_id, bookings.room_id, bookings.check_in, bookings.check_out, rooms.description AS room_description, hotels.name AS hotel_name").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Order("bookings.id ASC")
	if userID != "" {
		q = q.Where("bookings.user_id = ?", userID)
	}

	var rows []BookingWithNames
	if err := q.Scan(&rows).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return rows, nil
}

func (r *bookingRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return false, translateStoreError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// IsRoomAvailable runs the half-open intersection test against committed
// state: a conflict exists iff b.check_in < checkOut AND checkIn < b.check_out.
func (r *bookingRepository) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("room_id = ? AND check_in < ? AND ? < check_out", roomID, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, translateStoreError(err)
	}
	return count == 0, nil
}

// GetRoomForUpdate takes a SELECT ... FOR UPDATE on the room row. Two
// concurrent admissions for the same room queue up here, so the second one
// re-reads the booking set only after the first has committed or rolled back.
func (r *bookingRepository) GetRoomForUpdate(roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateStoreError(err)
	}
	return &room, nil
}

func (r *bookingRepository) InTransaction(fn func(tx BookingRepository) error) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&bookingRepository{db: tx})
	})
	return translateStoreError(err)
}
