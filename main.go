package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/villaclara/hotel-booking/config"
	"github.com/villaclara/hotel-booking/controllers"
	"github.com/villaclara/hotel-booking/events"
	"github.com/villaclara/hotel-booking/repository"
	"github.com/villaclara/hotel-booking/routes"
	"github.com/villaclara/hotel-booking/services"
)

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("Database connection established and migrations applied")

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Cannot get raw sql.DB: %v", err)
	}
	statsDB := sqlx.NewDb(sqlDB, "mysql")

	publisher := events.NewPublisherFromEnv()
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("Closing event publisher failed: %v", err)
		}
	}()

	// Repositories
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	statsRepo := repository.NewStatsRepository(statsDB)

	// Services
	hotelService := services.NewHotelService(hotelRepo)
	roomService := services.NewRoomService(roomRepo, hotelRepo)
	bookingService := services.NewBookingService(bookingRepo, publisher)
	statsService := services.NewStatsService(statsRepo)

	// Controllers
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	statsController := controllers.NewStatsController(statsService)

	router := routes.SetupRouter(bookingController, hotelController, roomController, statsController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
