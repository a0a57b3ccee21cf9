package services

import (
	"fmt"
	"time"

	"github.com/villaclara/hotel-booking/apperrors"
	"github.com/villaclara/hotel-booking/repository"
)

// StatsService answers reporting queries.
type StatsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// BookingsPerHotel returns the number of bookings per hotel, optionally
// limited to bookings fully inside [from, to].
func (s *StatsService) BookingsPerHotel(from, to *time.Time) ([]repository.HotelBookingStats, error) {
	if from != nil && to != nil && !from.Before(*to) {
		return nil, fmt.Errorf("%w: incorrect dates range", apperrors.ErrInvalidArgument)
	}
	return s.repo.BookingsCountPerHotel(from, to)
}
