package config

import (
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/villaclara/hotel-booking/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_booking")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, runs migrations in
// parent-to-child order and seeds sample data into empty tables.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	sqlLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: sqlLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.User{},
		&models.Booking{},
	); err != nil {
		return err
	}

	return SeedDatabase()
}

// SeedDatabase fills empty tables with demo hotels, rooms, users and a few
// bookings. Seeded bookings are laid out back-to-back per room so the
// non-overlap invariant holds from the start.
func SeedDatabase() error {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotels := []models.Hotel{
			{Name: "Hotel California", Address: "42 Sunset Blvd", Description: "A lovely place.", Amenities: []byte(`["pool","parking"]`)},
			{Name: "Grand Budapest", Address: "1 Alpine St", Description: "Famous for luxury.", Amenities: []byte(`["spa","restaurant"]`)},
			{Name: "Hilton Downtown", Address: "100 City Ave", Description: "Modern hotel in city center.", Amenities: []byte(`["gym","wifi"]`)},
			{Name: "Sea View Resort", Address: "7 Ocean Drive", Description: "Beachside resort.", Amenities: []byte(`["beach","pool"]`)},
			{Name: "Mountain Lodge", Address: "99 Hilltop Rd", Description: "Cozy mountain hotel.", Amenities: []byte(`["sauna","ski storage"]`)},
		}
		if err := DB.Create(&hotels).Error; err != nil {
			return fmt.Errorf("failed to seed hotels: %w", err)
		}
		log.Println("Hotels seeded")
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		var hotels []models.Hotel
		if err := DB.Find(&hotels).Error; err != nil {
			return err
		}

		rooms := make([]models.Room, 0, len(hotels)*3)
		for _, hotel := range hotels {
			for i := 1; i <= 3; i++ {
				rooms = append(rooms, models.Room{
					HotelID:       hotel.ID,
					Description:   fmt.Sprintf("Room %d in %s", i, hotel.Name),
					Capacity:      1 + rand.Intn(4),
					PricePerNight: float64(80 + rand.Intn(220)),
				})
			}
		}
		if err := DB.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}
		log.Println("Rooms seeded")
	}

	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("123123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		emails := []string{
			"admin@example.com",
			"user1@example.com",
			"user2@example.com",
			"user3@example.com",
			"user4@example.com",
		}
		users := make([]models.User, 0, len(emails))
		for _, email := range emails {
			users = append(users, models.User{
				ID:           uuid.NewString(),
				Email:        email,
				PasswordHash: string(hash),
			})
		}
		if err := DB.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		log.Println("Users seeded")
	}

	var bookingCount int64
	DB.Model(&models.Booking{}).Count(&bookingCount)
	if bookingCount == 0 {
		var rooms []models.Room
		if err := DB.Find(&rooms).Error; err != nil {
			return err
		}
		var users []models.User
		if err := DB.Find(&users).Error; err != nil {
			return err
		}
		if len(rooms) == 0 || len(users) == 0 {
			return nil
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		bookings := make([]models.Booking, 0, 10)
		for i := 0; i < 10; i++ {
			room := rooms[i%len(rooms)]
			user := users[i%len(users)]

			// stays on the same room are a week apart, so they never overlap
			checkIn := today.AddDate(0, 0, 1+(i/len(rooms))*7)
			checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(4))

			bookings = append(bookings, models.Booking{
				RoomID:   room.ID,
				UserID:   user.ID,
				CheckIn:  checkIn,
				CheckOut: checkOut,
			})
		}
		if err := DB.Create(&bookings).Error; err != nil {
			return fmt.Errorf("failed to seed bookings: %w", err)
		}
		log.Println("Bookings seeded")
	}

	return nil
}
