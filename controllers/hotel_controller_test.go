package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/apperrors"
	"github.com/villaclara/hotel-booking/services"
)

type hotelServiceMock struct {
	createFn          func(in services.CreateHotelInput) (*services.HotelDTO, error)
	getByIDFn         func(id uint) (*services.HotelDTO, error)
	getAllFn          func() ([]services.HotelDTO, error)
	updateFn          func(id uint, in services.CreateHotelInput) (*services.HotelDTO, error)
	deleteFn          func(id uint) (bool, error)
	searchAvailableFn func(checkIn, checkOut time.Time, city string) ([]services.HotelWithRoomsDTO, error)
}

func (m *hotelServiceMock) Create(in services.CreateHotelInput) (*services.HotelDTO, error) {
	return m.createFn(in)
}
func (m *hotelServiceMock) GetByID(id uint) (*services.HotelDTO, error) { return m.getByIDFn(id) }
func (m *hotelServiceMock) GetAll() ([]services.HotelDTO, error)        { return m.getAllFn() }
func (m *hotelServiceMock) Update(id uint, in services.CreateHotelInput) (*services.HotelDTO, error) {
	return m.updateFn(id, in)
}
func (m *hotelServiceMock) Delete(id uint) (bool, error) { return m.deleteFn(id) }
func (m *hotelServiceMock) SearchAvailable(checkIn, checkOut time.Time, city string) ([]services.HotelWithRoomsDTO, error) {
	return m.searchAvailableFn(checkIn, checkOut, city)
}

func newHotelRouter(svc HotelOperations) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewHotelController(svc)
	r.GET("/api/hotel/free", ctrl.SearchFree)
	r.GET("/api/hotel", ctrl.GetAllHotels)
	r.GET("/api/hotel/:id", ctrl.GetHotelByID)
	r.POST("/api/hotel", ctrl.AddHotel)
	r.PUT("/api/hotel/:id", ctrl.UpdateHotel)
	r.DELETE("/api/hotel/:id", ctrl.DeleteHotel)
	return r
}

func TestSearchFreeEndpoint(t *testing.T) {
	var gotCity string
	svc := &hotelServiceMock{
		searchAvailableFn: func(checkIn, checkOut time.Time, city string) ([]services.HotelWithRoomsDTO, error) {
			gotCity = city
			return []services.HotelWithRoomsDTO{
				{ID: 1, Name: "Sea View Resort", Rooms: []services.RoomDTO{{ID: 10, HotelID: 1}}},
			}, nil
		},
	}
	r := newHotelRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/hotel/free?checkIn=2024-05-01&checkOut=2024-05-03&city=Odesa", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if gotCity != "Odesa" {
		t.Errorf("city not forwarded, got %q", gotCity)
	}
	if !strings.Contains(w.Body.String(), "Sea View Resort") {
		t.Errorf("hotel missing from response: %s", w.Body.String())
	}
}

func TestSearchFreeEndpoint_BadDates(t *testing.T) {
	svc := &hotelServiceMock{
		searchAvailableFn: func(_, _ time.Time, _ string) ([]services.HotelWithRoomsDTO, error) {
			t.Fatal("service must not be reached with unparseable dates")
			return nil, nil
		},
	}
	r := newHotelRouter(svc)

	cases := []string{
		"/api/hotel/free",
		"/api/hotel/free?checkIn=2024-05-01",
		"/api/hotel/free?checkIn=bogus&checkOut=2024-05-03",
		"/api/hotel/free?checkIn=2024-05-01&checkOut=bogus",
	}
	for _, path := range cases {
		if w := doRequest(r, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestSearchFreeEndpoint_ReversedRange(t *testing.T) {
	svc := &hotelServiceMock{
		searchAvailableFn: func(_, _ time.Time, _ string) ([]services.HotelWithRoomsDTO, error) {
			return nil, fmt.Errorf("%w: incorrect dates range", apperrors.ErrInvalidArgument)
		},
	}
	r := newHotelRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/hotel/free?checkIn=2024-05-03&checkOut=2024-05-01", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSearchFreeEndpoint_NothingAvailable(t *testing.T) {
	svc := &hotelServiceMock{
		searchAvailableFn: func(_, _ time.Time, _ string) ([]services.HotelWithRoomsDTO, error) {
			return []services.HotelWithRoomsDTO{}, nil
		},
	}
	r := newHotelRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/hotel/free?checkIn=2024-05-01&checkOut=2024-05-03", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
}

func TestAddHotelEndpoint(t *testing.T) {
	svc := &hotelServiceMock{
		createFn: func(in services.CreateHotelInput) (*services.HotelDTO, error) {
			return &services.HotelDTO{ID: 3, Name: in.Name, Address: in.Address}, nil
		},
	}
	r := newHotelRouter(svc)

	body := `{"name":"Mountain Lodge","address":"99 Hilltop Rd","amenities":["sauna"]}`
	w := doRequest(r, http.MethodPost, "/api/hotel", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodPost, "/api/hotel", `{"name":"No Address"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing address: status = %d, want 400", w.Code)
	}
}

func TestUpdateHotelEndpoint_NotFound(t *testing.T) {
	svc := &hotelServiceMock{
		updateFn: func(id uint, _ services.CreateHotelInput) (*services.HotelDTO, error) {
			return nil, fmt.Errorf("%w: hotel with id %d", apperrors.ErrNotFound, id)
		},
	}
	r := newHotelRouter(svc)

	body := `{"name":"New Name","address":"New Addr"}`
	w := doRequest(r, http.MethodPut, "/api/hotel/44", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteHotelEndpoint(t *testing.T) {
	svc := &hotelServiceMock{
		deleteFn: func(id uint) (bool, error) { return id == 1, nil },
	}
	r := newHotelRouter(svc)

	if w := doRequest(r, http.MethodDelete, "/api/hotel/1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("existing hotel: status = %d, want 204", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/api/hotel/2", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("unknown hotel: status = %d, want 500", w.Code)
	}
}
