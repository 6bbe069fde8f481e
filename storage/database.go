package storage

import (
	"log"
	"os"

	"github.com/Hima-Kishore/turf-booking-system/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Turf{},
		&models.Court{},
		&models.Slot{},
		&models.Booking{},
		&models.Review{},
		&models.Notification{},
		&models.AuditLog{},
	)

	// At most one confirmed booking may reference a slot. AutoMigrate cannot
	// express a partial index, so it is created directly.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot_confirmed
		ON bookings (slot_id) WHERE status = 'confirmed' AND deleted_at IS NULL;`)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}
