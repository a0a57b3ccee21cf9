package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/villaclara/hotel-booking/controllers"
	"github.com/villaclara/hotel-booking/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all API routes onto a gin engine.
func SetupRouter(
	bc *controllers.BookingController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	sc *controllers.StatsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/booking")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		hotels := api.Group("/hotel")
		{
			// static route must be registered alongside /:id
			hotels.GET("/free", hc.SearchFree)

			hotels.GET("", hc.GetAllHotels)
			hotels.GET("/:id", hc.GetHotelByID)
			hotels.POST("", hc.AddHotel)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)
		}

		rooms := api.Group("/room")
		{
			rooms.GET("", rc.GetAllRoomsForHotel)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.POST("", rc.AddRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/bookings-per-hotel", sc.GetBookingsPerHotel)
		}
	}

	return r
}
