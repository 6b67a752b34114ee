package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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
		q.Set("loc", "Local")
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
	dbName := envOrDefault("DB_NAME", "frontdesk_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures the reference data a fresh install needs: room
// types, a few rooms, a default operator, and a handful of demo bookings
// in the states the front-desk screens filter on.
func SeedDatabase() {
	var operatorCount int64
	DB.Model(&models.Operator{}).Count(&operatorCount)
	if operatorCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("frontdesk123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default operator password: %v", err)
		} else {
			operator := models.Operator{
				FullName: "Front Desk",
				Username: "frontdesk@hotel.local",
				Password: string(hash),
			}
			if err := DB.Create(&operator).Error; err != nil {
				log.Printf("warning: failed to create default operator: %v", err)
			} else {
				log.Println("Default operator seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2},
			{TypeName: "Superior", Description: "Superior Room", MaxGuests: 3},
			{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4},
		}
		DB.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Floor: "1", Status: "available", Price: 1200, MaxOccupancy: 2},
			{RoomNumber: "102", Floor: "1", Status: "available", Price: 1200, MaxOccupancy: 2},
			{RoomNumber: "201", Floor: "2", Status: "available", Price: 1800, MaxOccupancy: 3},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var bookingCount int64
	DB.Model(&models.Booking{}).Count(&bookingCount)
	if bookingCount == 0 {
		today := time.Now()
		in := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		out := in.AddDate(0, 0, 2)

		bookings := []models.Booking{
			{
				ReferenceCode: utils.MustReferenceCode(),
				FirstName:     "Anna",
				LastName:      "Keller",
				Email:         "anna.keller@example.com",
				CheckInDate:   &in,
				CheckOutDate:  &out,
				Status:        models.BookingConfirmed,
				PaymentStatus: models.PaymentPaid,
				TotalCost:     2400,
			},
			{
				ReferenceCode: utils.MustReferenceCode(),
				FirstName:     "Marco",
				LastName:      "Silva",
				Email:         "marco.silva@example.com",
				CheckInDate:   &in,
				CheckOutDate:  &out,
				Status:        models.BookingPending,
				PaymentStatus: models.PaymentUnpaid,
				TotalCost:     1800,
			},
		}
		if err := DB.Create(&bookings).Error; err != nil {
			log.Printf("warning: failed to seed bookings: %v", err)
		} else {
			log.Println("Demo bookings seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Operator{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.ServiceRequest{},
		&models.SettlementRecord{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
