package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/services"
	"github.com/villaclara/hotel-booking/utils"
)

// HotelOperations is the slice of the hotel service the HTTP layer uses.
type HotelOperations interface {
	Create(in services.CreateHotelInput) (*services.HotelDTO, error)
	GetByID(id uint) (*services.HotelDTO, error)
	GetAll() ([]services.HotelDTO, error)
	Update(id uint, in services.CreateHotelInput) (*services.HotelDTO, error)
	Delete(id uint) (bool, error)
	SearchAvailable(checkIn, checkOut time.Time, city string) ([]services.HotelWithRoomsDTO, error)
}

type HotelController struct {
	svc HotelOperations
}

func NewHotelController(svc HotelOperations) *HotelController {
	return &HotelController{svc: svc}
}

// HotelPayload is the create/update request body.
type HotelPayload struct {
	Name        string          `json:"name" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Description string          `json:"description"`
	Amenities   json.RawMessage `json:"amenities"`
}

func (p *HotelPayload) toInput() services.CreateHotelInput {
	return services.CreateHotelInput{
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		Amenities:   p.Amenities,
	}
}

// GetAllHotels handles GET /api/hotel.
func (ctrl *HotelController) GetAllHotels(c *gin.Context) {
	hotels, err := ctrl.svc.GetAll()
	if err != nil {
		respondError(c, "GetAllHotels", err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotelByID handles GET /api/hotel/:id.
func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	hotel, err := ctrl.svc.GetByID(id)
	if err != nil {
		respondError(c, "GetHotelByID", err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// SearchFree handles GET /api/hotel/free?checkIn=&checkOut=&city=. It lists
// hotels that still have a free room over the requested stay.
func (ctrl *HotelController) SearchFree(c *gin.Context) {
	checkIn, err := utils.ParseDate(c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkIn: "+err.Error())
		return
	}
	checkOut, err := utils.ParseDate(c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOut: "+err.Error())
		return
	}

	hotels, err := ctrl.svc.SearchAvailable(checkIn, checkOut, c.Query("city"))
	if err != nil {
		respondError(c, "SearchFree", err)
		return
	}
	if len(hotels) == 0 {
		utils.JSONError(c, http.StatusNotFound, "no hotels or rooms available in the selected date range")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// AddHotel handles POST /api/hotel.
func (ctrl *HotelController) AddHotel(c *gin.Context) {
	var payload HotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	hotel, err := ctrl.svc.Create(payload.toInput())
	if err != nil {
		respondError(c, "AddHotel", err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel handles PUT /api/hotel/:id.
func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload HotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	hotel, err := ctrl.svc.Update(id, payload.toInput())
	if err != nil {
		respondError(c, "UpdateHotel", err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// DeleteHotel handles DELETE /api/hotel/:id.
func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := ctrl.svc.Delete(id)
	if err != nil {
		respondError(c, "DeleteHotel", err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusInternalServerError, "deleting failed")
		return
	}
	c.Status(http.StatusNoContent)
}
