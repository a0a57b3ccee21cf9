package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/villaclara/hotel-booking/apperrors"
	"github.com/villaclara/hotel-booking/events"
	"github.com/villaclara/hotel-booking/models"
	"github.com/villaclara/hotel-booking/repository"
)

// BookingService owns booking admission and the ledger's read/delete side.
type BookingService struct {
	repo      repository.BookingRepository
	publisher *events.Publisher
}

// NewBookingService wires the ledger over its store. publisher may be nil.
func NewBookingService(repo repository.BookingRepository, publisher *events.Publisher) *BookingService {
	return &BookingService{repo: repo, publisher: publisher}
}

// Create admits a booking for [checkIn, checkOut) on the given room.
//
// Validation fails fast before any store access. The room existence check,
// the overlap check and the insert then run in one transaction, with the
// room row locked for its duration: two concurrent admissions for the same
// room serialize on that lock, so the loser re-reads the booking set after
// the winner committed and gets the conflict.
func (s *BookingService) Create(userID string, roomID uint, checkIn, checkOut time.Time) (*BookingDTO, error) {
	if roomID < 1 {
		return nil, fmt.Errorf("%w: room id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidArgument)
	}
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", apperrors.ErrInvalidArgument)
	}

	booking := models.Booking{
		UserID:   userID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	err := s.repo.InTransaction(func(tx repository.BookingRepository) error {
		room, err := tx.GetRoomForUpdate(roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return fmt.Errorf("%w: room with id %d", apperrors.ErrNotFound, roomID)
		}

		available, err := tx.IsRoomAvailable(roomID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("%w: room %d is not available for selected dates", apperrors.ErrConflict, roomID)
		}

		return tx.Create(&booking)
	})
	if err != nil {
		log.Printf("CreateBooking: admission failed for room %d (user %s): %v", roomID, userID, err)
		return nil, err
	}

	log.Printf("CreateBooking: created booking %d for room %d", booking.ID, booking.RoomID)

	s.publisher.Publish(events.BookingEvent{
		Type:      events.EventBookingCreated,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		UserID:    booking.UserID,
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
	})

	return bookingToDTO(&booking), nil
}

// GetByID returns the booking or ErrNotFound.
func (s *BookingService) GetByID(id uint) (*BookingDTO, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: booking id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking with id %d", apperrors.ErrNotFound, id)
	}
	return bookingToDTO(booking), nil
}

// GetAll lists bookings in insertion order, optionally filtered by owner.
func (s *BookingService) GetAll(userID string) ([]BookingDTO, error) {
	bookings, err := s.repo.GetAllWithParams(userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		dtos = append(dtos, *bookingToDTO(&bookings[i]))
	}
	return dtos, nil
}

// GetAllWithNames lists bookings enriched with room and hotel display names.
func (s *BookingService) GetAllWithNames(userID string) ([]repository.BookingWithNames, error) {
	return s.repo.GetAllWithNames(userID)
}

// Delete cancels a booking. Deleting an unknown id is not an error: it
// returns false and leaves the store unchanged. Removal never violates the
// non-overlap invariant, so no re-check is needed.
func (s *BookingService) Delete(id uint) (bool, error) {
	if id < 1 {
		return false, fmt.Errorf("%w: booking id must be greater or equal to 1", apperrors.ErrInvalidArgument)
	}

	deleted, err := s.repo.Delete(id)
	if err != nil {
		log.Printf("DeleteBooking: failed to delete booking %d: %v", id, err)
		return false, err
	}

	if deleted {
		log.Printf("DeleteBooking: booking %d deleted", id)
		s.publisher.Publish(events.BookingEvent{
			Type:      events.EventBookingCancelled,
			BookingID: id,
		})
	}
	return deleted, nil
}

func bookingToDTO(b *models.Booking) *BookingDTO {
	return &BookingDTO{
		ID:       b.ID,
		UserID:   b.UserID,
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}
