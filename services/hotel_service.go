package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/villaclara/hotel-booking/apperrors"
	"github.com/villaclara/hotel-booking/models"
	"github.com/villaclara/hotel-booking/repository"
)

// HotelService provides hotel CRUD and the availability search.
type HotelService struct {
	repo repository.HotelRepository
}

func NewHotelService(repo repository.HotelRepository) *HotelService {
	return &HotelService{repo: repo}
}

// CreateHotelInput carries the writable hotel fields.
type CreateHotelInput struct {
	Name        string
	Address     string
	Description string
	Amenities   []byte
}

func (s *HotelService) Create(in CreateHotelInput) (*HotelDTO, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: hotel name and address are required", apperrors.ErrInvalidArgument)
	}

	hotel := models.Hotel{
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		Amenities:   in.Amenities,
	}
	if err := s.repo.Create(&hotel); err != nil {
		log.Printf("CreateHotel: failed to create hotel %q: %v", in.Name, err)
		return nil, err
	}

	log.Printf("CreateHotel: created hotel %d (%s)", hotel.ID, hotel.Name)
	return hotelToDTO(&hotel), nil
}

func (s *HotelService) GetByID(id uint) (*HotelDTO, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: hotel id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	hotel, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel with id %d", apperrors.ErrNotFound, id)
	}
	return hotelToDTO(hotel), nil
}

func (s *HotelService) GetAll() ([]HotelDTO, error) {
	hotels, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	dtos := make([]HotelDTO, 0, len(hotels))
	for i := range hotels {
		dtos = append(dtos, *hotelToDTO(&hotels[i]))
	}
	return dtos, nil
}

func (s *HotelService) Update(id uint, in CreateHotelInput) (*HotelDTO, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: hotel name and address are required", apperrors.ErrInvalidArgument)
	}

	hotel, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel with id %d", apperrors.ErrNotFound, id)
	}

	hotel.Name = in.Name
	hotel.Address = in.Address
	hotel.Description = in.Description
	if in.Amenities != nil {
		hotel.Amenities = in.Amenities
	}

	if err := s.repo.Update(hotel); err != nil {
		log.Printf("UpdateHotel: failed to update hotel %d: %v", id, err)
		return nil, err
	}
	return hotelToDTO(hotel), nil
}

func (s *HotelService) Delete(id uint) (bool, error) {
	if id < 1 {
		return false, fmt.Errorf("%w: hotel id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		log.Printf("DeleteHotel: failed to delete hotel %d: %v", id, err)
		return false, err
	}
	if deleted {
		log.Printf("DeleteHotel: hotel %d deleted", id)
	}
	return deleted, nil
}

// SearchAvailable returns hotels that have at least one room free over
// [checkIn, checkOut), optionally narrowed to a city (case-insensitive exact
// match on address). A qualifying hotel is returned with all of its rooms.
func (s *HotelService) SearchAvailable(checkIn, checkOut time.Time, city string) ([]HotelWithRoomsDTO, error) {
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: incorrect dates range", apperrors.ErrInvalidArgument)
	}

	hotels, err := s.repo.GetAllWithRoomsByDates(&checkIn, &checkOut, city)
	if err != nil {
		log.Printf("SearchAvailable: query failed for %s - %s: %v",
			checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"), err)
		return nil, err
	}

	result := make([]HotelWithRoomsDTO, 0, len(hotels))
	for i := range hotels {
		h := &hotels[i]
		rooms := make([]RoomDTO, 0, len(h.Rooms))
		for j := range h.Rooms {
			r := &h.Rooms[j]
			rooms = append(rooms, RoomDTO{
				ID:            r.ID,
				HotelID:       h.ID,
				HotelName:     h.Name,
				Description:   r.Description,
				PricePerNight: r.PricePerNight,
				Capacity:      r.Capacity,
			})
		}
		result = append(result, HotelWithRoomsDTO{
			ID:          h.ID,
			Name:        h.Name,
			Address:     h.Address,
			Description: h.Description,
			Amenities:   h.Amenities,
			Rooms:       rooms,
		})
	}
	return result, nil
}

func hotelToDTO(h *models.Hotel) *HotelDTO {
	return &HotelDTO{
		ID:          h.ID,
		Name:        h.Name,
		Address:     h.Address,
		Description: h.Description,
		Amenities:   h.Amenities,
	}
}
