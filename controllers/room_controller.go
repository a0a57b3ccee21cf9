package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/services"
	"github.com/villaclara/hotel-booking/utils"
)

// RoomOperations is the slice of the room service the HTTP layer uses.
type RoomOperations interface {
	Create(in services.CreateRoomInput) (*services.RoomDTO, error)
	GetByID(id uint) (*services.RoomDTO, error)
	GetAllByHotel(hotelID uint) ([]services.RoomDTO, error)
	Update(id uint, in services.CreateRoomInput) (*services.RoomDTO, error)
	Delete(id uint) (bool, error)
}

type RoomController struct {
	svc RoomOperations
}

func NewRoomController(svc RoomOperations) *RoomController {
	return &RoomController{svc: svc}
}

// RoomPayload is the create/update request body.
type RoomPayload struct {
	HotelID       uint    `json:"hotelId"`
	Description   string  `json:"description" binding:"required"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity" binding:"required"`
}

// GetAllRoomsForHotel handles GET /api/room?hotelId=.
func (ctrl *RoomController) GetAllRoomsForHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 32)
	if err != nil || hotelID < 1 {
		utils.JSONError(c, http.StatusBadRequest, "hotelId must be a positive integer")
		return
	}

	rooms, err := ctrl.svc.GetAllByHotel(uint(hotelID))
	if err != nil {
		respondError(c, "GetAllRoomsForHotel", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByID handles GET /api/room/:id.
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.svc.GetByID(id)
	if err != nil {
		respondError(c, "GetRoomByID", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// AddRoom handles POST /api/room.
func (ctrl *RoomController) AddRoom(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	room, err := ctrl.svc.Create(services.CreateRoomInput{
		HotelID:       payload.HotelID,
		Description:   payload.Description,
		PricePerNight: payload.PricePerNight,
		Capacity:      payload.Capacity,
	})
	if err != nil {
		respondError(c, "AddRoom", err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/room/:id.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	room, err := ctrl.svc.Update(id, services.CreateRoomInput{
		HotelID:       payload.HotelID,
		Description:   payload.Description,
		PricePerNight: payload.PricePerNight,
		Capacity:      payload.Capacity,
	})
	if err != nil {
		respondError(c, "UpdateRoom", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/room/:id.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := ctrl.svc.Delete(id)
	if err != nil {
		respondError(c, "DeleteRoom", err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusInternalServerError, "deleting failed")
		return
	}
	c.Status(http.StatusNoContent)
}
