package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/villaclara/hotel-booking/apperrors"
	"github.com/villaclara/hotel-booking/models"
	"github.com/villaclara/hotel-booking/repository"
)

// RoomService provides room CRUD. Room creation requires the owning hotel to
// exist; the availability logic itself lives in the booking ledger.
type RoomService struct {
	rooms  repository.RoomRepository
	hotels repository.HotelRepository
}

func NewRoomService(rooms repository.RoomRepository, hotels repository.HotelRepository) *RoomService {
	return &RoomService{rooms: rooms, hotels: hotels}
}

// CreateRoomInput carries the writable room fields.
type CreateRoomInput struct {
	HotelID       uint
	Description   string
	PricePerNight float64
	Capacity      int
}

func (s *RoomService) Create(in CreateRoomInput) (*RoomDTO, error) {
	if err := validateRoomInput(in); err != nil {
		return nil, err
	}
	if in.HotelID < 1 {
		return nil, fmt.Errorf("%w: hotel id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	exists, err := s.hotels.Exists(in.HotelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: hotel with id %d", apperrors.ErrNotFound, in.HotelID)
	}

	room := models.Room{
		HotelID:       in.HotelID,
		Description:   in.Description,
		PricePerNight: in.PricePerNight,
		Capacity:      in.Capacity,
	}
	if err := s.rooms.Create(&room); err != nil {
		log.Printf("CreateRoom: failed to create room for hotel %d: %v", in.HotelID, err)
		return nil, err
	}

	log.Printf("CreateRoom: created room %d for hotel %d", room.ID, room.HotelID)

	// reload to pick up the hotel name for the display projection
	created, err := s.rooms.GetByID(room.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: created room %d was not found", apperrors.ErrNotFound, room.ID)
	}
	return roomToDTO(created), nil
}

func (s *RoomService) GetByID(id uint) (*RoomDTO, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: room id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	room, err := s.rooms.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room with id %d", apperrors.ErrNotFound, id)
	}
	return roomToDTO(room), nil
}

func (s *RoomService) GetAllByHotel(hotelID uint) ([]RoomDTO, error) {
	if hotelID < 1 {
		return nil, fmt.Errorf("%w: hotel id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	rooms, err := s.rooms.GetAllByHotel(hotelID)
	if err != nil {
		return nil, err
	}

	dtos := make([]RoomDTO, 0, len(rooms))
	for i := range rooms {
		dtos = append(dtos, *roomToDTO(&rooms[i]))
	}
	return dtos, nil
}

func (s *RoomService) Update(id uint, in CreateRoomInput) (*RoomDTO, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: room id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}
	if err := validateRoomInput(in); err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room with id %d", apperrors.ErrNotFound, id)
	}

	room.Description = in.Description
	room.PricePerNight = in.PricePerNight
	room.Capacity = in.Capacity

	if err := s.rooms.Update(room); err != nil {
		log.Printf("UpdateRoom: failed to update room %d: %v", id, err)
		return nil, err
	}
	return roomToDTO(room), nil
}

func (s *RoomService) Delete(id uint) (bool, error) {
	if id < 1 {
		return false, fmt.Errorf("%w: room id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	deleted, err := s.rooms.Delete(id)
	if err != nil {
		log.Printf("DeleteRoom: failed to delete room %d: %v", id, err)
		return false, err
	}
	if deleted {
		log.Printf("DeleteRoom: room %d deleted", id)
	}
	return deleted, nil
}

func validateRoomInput(in CreateRoomInput) error {
	if in.PricePerNight < 0 {
		return fmt.Errorf("%w: price per night cannot be negative", apperrors.ErrInvalidArgument)
	}
	if in.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: room description is required", apperrors.ErrInvalidArgument)
	}
	return nil
}

func roomToDTO(r *models.Room) *RoomDTO {
	return &RoomDTO{
		ID:            r.ID,
		HotelID:       r.HotelID,
		HotelName:     r.Hotel.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
	}
}
