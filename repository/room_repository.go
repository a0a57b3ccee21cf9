package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/villaclara/hotel-booking/models"
)

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository returns the GORM-backed room store.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

func (r *roomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.Preload("Hotel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateStoreError(err)
	}
	return &room, nil
}

func (r *roomRepository) GetAllByHotel(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Preload("Hotel").Where("hotel_id = ?", hotelID).Order("id ASC").Find(&rooms).Error
	if err != nil {
		return nil, translateStoreError(err)
	}
	return rooms, nil
}

func (r *roomRepository) Update(room *models.Room) error {
	if err := r.db.Save(room).Error; err != nil {
		return translateStoreError(err)
	}
	return nil
}

func (r *roomRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Room{}, id)
	if res.Error != nil {
		return false, translateStoreError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
