package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/apperrors"
	"github.com/villaclara/hotel-booking/repository"
	"github.com/villaclara/hotel-booking/services"
)

type bookingServiceMock struct {
	createFn          func(userID string, roomID uint, checkIn, checkOut time.Time) (*services.BookingDTO, error)
	getByIDFn         func(id uint) (*services.BookingDTO, error)
	getAllFn          func(userID string) ([]services.BookingDTO, error)
	getAllWithNamesFn func(userID string) ([]repository.BookingWithNames, error)
	deleteFn          func(id uint) (bool, error)
}

func (m *bookingServiceMock) Create(userID string, roomID uint, checkIn, checkOut time.Time) (*services.BookingDTO, error) {
	return m.createFn(userID, roomID, checkIn, checkOut)
}
func (m *bookingServiceMock) GetByID(id uint) (*services.BookingDTO, error) { return m.getByIDFn(id) }
func (m *bookingServiceMock) GetAll(userID string) ([]services.BookingDTO, error) {
	return m.getAllFn(userID)
}
func (m *bookingServiceMock) GetAllWithNames(userID string) ([]repository.BookingWithNames, error) {
	return m.getAllWithNamesFn(userID)
}
func (m *bookingServiceMock) Delete(id uint) (bool, error) { return m.deleteFn(id) }

func newBookingRouter(svc BookingOperations) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewBookingController(svc)
	r.POST("/api/booking", ctrl.CreateBooking)
	r.GET("/api/booking", ctrl.GetBookings)
	r.GET("/api/booking/:id", ctrl.GetBooking)
	r.DELETE("/api/booking/:id", ctrl.DeleteBooking)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	svc := &bookingServiceMock{
		createFn: func(userID string, roomID uint, checkIn, checkOut time.Time) (*services.BookingDTO, error) {
			return &services.BookingDTO{ID: 1, UserID: userID, RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut}, nil
		},
	}
	r := newBookingRouter(svc)

	body := `{"userId":"user-1","roomId":2,"checkIn":"2024-04-01","checkOut":"2024-04-05"}`
	w := doRequest(r, http.MethodPost, "/api/booking", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"roomId":2`) {
		t.Errorf("created booking missing from response: %s", w.Body.String())
	}
}

func TestCreateBookingEndpoint_BadPayload(t *testing.T) {
	svc := &bookingServiceMock{
		createFn: func(_ string, _ uint, _, _ time.Time) (*services.BookingDTO, error) {
			t.Fatal("service must not be reached for a bad payload")
			return nil, nil
		},
	}
	r := newBookingRouter(svc)

	cases := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing fields", `{"userId":"user-1"}`},
		{"garbage check-in", `{"userId":"user-1","roomId":2,"checkIn":"whenever","checkOut":"2024-04-05"}`},
		{"garbage check-out", `{"userId":"user-1","roomId":2,"checkIn":"2024-04-01","checkOut":"later"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/booking", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateBookingEndpoint_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", fmt.Errorf("%w: bad dates", apperrors.ErrInvalidArgument), http.StatusBadRequest},
		{"room not found", fmt.Errorf("%w: room with id 2", apperrors.ErrNotFound), http.StatusNotFound},
		{"room taken", fmt.Errorf("%w: room 2 is not available", apperrors.ErrConflict), http.StatusConflict},
		{"deadlock", fmt.Errorf("%w: deadlock", apperrors.ErrTransient), http.StatusInternalServerError},
		{"unexpected", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &bookingServiceMock{
				createFn: func(_ string, _ uint, _, _ time.Time) (*services.BookingDTO, error) {
					return nil, tc.err
				},
			}
			r := newBookingRouter(svc)

			body := `{"userId":"user-1","roomId":2,"checkIn":"2024-04-01","checkOut":"2024-04-05"}`
			w := doRequest(r, http.MethodPost, "/api/booking", body)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d; body: %s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestCreateBookingEndpoint_InternalDetailHidden(t *testing.T) {
	svc := &bookingServiceMock{
		createFn: func(_ string, _ uint, _, _ time.Time) (*services.BookingDTO, error) {
			return nil, fmt.Errorf("dial tcp 10.0.0.5:3306: connection refused")
		},
	}
	r := newBookingRouter(svc)

	body := `{"userId":"user-1","roomId":2,"checkIn":"2024-04-01","checkOut":"2024-04-05"}`
	w := doRequest(r, http.MethodPost, "/api/booking", body)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "10.0.0.5") {
		t.Errorf("internal error detail leaked to the caller: %s", w.Body.String())
	}
}

func TestGetBookingEndpoint(t *testing.T) {
	svc := &bookingServiceMock{
		getByIDFn: func(id uint) (*services.BookingDTO, error) {
			if id != 5 {
				return nil, fmt.Errorf("%w: booking with id %d", apperrors.ErrNotFound, id)
			}
			return &services.BookingDTO{ID: 5, UserID: "user-1", RoomID: 1}, nil
		},
	}
	r := newBookingRouter(svc)

	if w := doRequest(r, http.MethodGet, "/api/booking/5", ""); w.Code != http.StatusOK {
		t.Fatalf("existing booking: status = %d, want 200", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/booking/6", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing booking: status = %d, want 404", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/booking/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status = %d, want 400", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/booking/0", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("zero id: status = %d, want 400", w.Code)
	}
}

func TestGetBookingsEndpoint(t *testing.T) {
	var gotUser string
	var namesCalled bool
	svc := &bookingServiceMock{
		getAllFn: func(userID string) ([]services.BookingDTO, error) {
			gotUser = userID
			return []services.BookingDTO{{ID: 1}, {ID: 2}}, nil
		},
		getAllWithNamesFn: func(userID string) ([]repository.BookingWithNames, error) {
			namesCalled = true
			return []repository.BookingWithNames{{ID: 1, HotelName: "Grand Budapest"}}, nil
		},
	}
	r := newBookingRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/booking?userId=alice", "")
	if w.Code != http.StatusOK || gotUser != "alice" {
		t.Fatalf("status = %d, forwarded user %q", w.Code, gotUser)
	}

	w = doRequest(r, http.MethodGet, "/api/booking?withNames=true", "")
	if w.Code != http.StatusOK || !namesCalled {
		t.Fatalf("withNames: status = %d, namesCalled = %v", w.Code, namesCalled)
	}
	if !strings.Contains(w.Body.String(), "Grand Budapest") {
		t.Errorf("enriched projection missing: %s", w.Body.String())
	}
}

func TestDeleteBookingEndpoint(t *testing.T) {
	svc := &bookingServiceMock{
		deleteFn: func(id uint) (bool, error) { return id == 5, nil },
	}
	r := newBookingRouter(svc)

	if w := doRequest(r, http.MethodDelete, "/api/booking/5", ""); w.Code != http.StatusNoContent {
		t.Fatalf("existing booking: status = %d, want 204", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/api/booking/6", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("unknown booking: status = %d, want 500", w.Code)
	}
}
