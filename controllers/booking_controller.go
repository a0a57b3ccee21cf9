package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/repository"
	"github.com/villaclara/hotel-booking/services"
	"github.com/villaclara/hotel-booking/utils"
)

// BookingOperations is the slice of the booking service the HTTP layer uses.
type BookingOperations interface {
	Create(userID string, roomID uint, checkIn, checkOut time.Time) (*services.BookingDTO, error)
	GetByID(id uint) (*services.BookingDTO, error)
	GetAll(userID string) ([]services.BookingDTO, error)
	GetAllWithNames(userID string) ([]repository.BookingWithNames, error)
	Delete(id uint) (bool, error)
}

type BookingController struct {
	svc BookingOperations
}

func NewBookingController(svc BookingOperations) *BookingController {
	return &BookingController{svc: svc}
}

// CreateBookingRequest is the POST /api/booking payload. Dates accept
// "2006-01-02" or RFC3339.
type CreateBookingRequest struct {
	UserID   string `json:"userId" binding:"required"`
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

// CreateBooking handles POST /api/booking.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := ctrl.svc.Create(payload.UserID, payload.RoomID, checkIn, checkOut)
	if err != nil {
		respondError(c, "CreateBooking", err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings handles GET /api/booking?userId=&withNames=.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	userID := c.Query("userId")

	if c.Query("withNames") == "true" {
		bookings, err := ctrl.svc.GetAllWithNames(userID)
		if err != nil {
			respondError(c, "GetBookings", err)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	bookings, err := ctrl.svc.GetAll(userID)
	if err != nil {
		respondError(c, "GetBookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/booking/:id.
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.svc.GetByID(id)
	if err != nil {
		respondError(c, "GetBooking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking handles DELETE /api/booking/:id.
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := ctrl.svc.Delete(id)
	if err != nil {
		respondError(c, "DeleteBooking", err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusInternalServerError, "deleting failed")
		return
	}
	c.Status(http.StatusNoContent)
}
