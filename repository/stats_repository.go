package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository wraps the shared sql.DB handle with sqlx for the raw
// reporting queries that don't go through the ORM.
func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

const bookingsPerHotelQuery = `
SELECT
    h.id   AS hotel_id,
    h.name AS hotel_name,
    COUNT(b.id) AS booking_count
FROM hotels h
LEFT JOIN rooms r    ON r.hotel_id = h.id
LEFT JOIN bookings b ON b.room_id = r.id
    AND (? IS NULL OR b.check_in >= ?)
    AND (? IS NULL OR b.check_out <= ?)
GROUP BY h.id, h.name
ORDER BY h.id;
`

func (r *statsRepository) BookingsCountPerHotel(from, to *time.Time) ([]HotelBookingStats, error) {
	var stats []HotelBookingStats
	err := r.db.Select(&stats, bookingsPerHotelQuery, from, from, to, to)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return stats, nil
}
