package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/repository"
	"github.com/villaclara/hotel-booking/utils"
)

// StatsOperations is the slice of the stats service the HTTP layer uses.
type StatsOperations interface {
	BookingsPerHotel(from, to *time.Time) ([]repository.HotelBookingStats, error)
}

type StatsController struct {
	svc StatsOperations
}

func NewStatsController(svc StatsOperations) *StatsController {
	return &StatsController{svc: svc}
}

// GetBookingsPerHotel handles GET /api/stats/bookings-per-hotel?from=&to=.
func (ctrl *StatsController) GetBookingsPerHotel(c *gin.Context) {
	from, err := utils.ParseOptionalDate(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from: "+err.Error())
		return
	}
	to, err := utils.ParseOptionalDate(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to: "+err.Error())
		return
	}

	stats, err := ctrl.svc.BookingsPerHotel(from, to)
	if err != nil {
		respondError(c, "GetBookingsPerHotel", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
