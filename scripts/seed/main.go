package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/services"
	"github.com/Hima-Kishore/turf-booking-system/storage"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds an admin, a demo user, two turfs with courts and a week of slots.
// Safe to re-run: users are matched by email, turfs by name, slot generation
// skips existing rows.
func main() {
	godotenv.Load()
	storage.InitializeDB()

	seedUser("Admin", "admin@turfbook.in", "admin123", "admin")
	seedUser("Demo User", "demo@turfbook.in", "demo1234", "user")

	greenfield := seedTurf(models.Turf{
		Name:        "Greenfield Arena",
		Address:     "12 Stadium Road",
		City:        "Chennai",
		State:       "Tamil Nadu",
		Pincode:     "600040",
		Description: "Floodlit 5-a-side turf with parking and changing rooms.",
		Latitude:    13.0827,
		Longitude:   80.2707,
		Amenities:   datatypes.JSON(`["parking","floodlights","changing_rooms","drinking_water"]`),
		Photos:      datatypes.JSON(`[]`),
	})
	skyline := seedTurf(models.Turf{
		Name:        "Skyline Sports Hub",
		Address:     "45 Lake View Street",
		City:        "Bengaluru",
		State:       "Karnataka",
		Pincode:     "560034",
		Description: "Indoor badminton and outdoor cricket nets.",
		Latitude:    12.9352,
		Longitude:   77.6245,
		Amenities:   datatypes.JSON(`["parking","cafeteria","first_aid"]`),
		Photos:      datatypes.JSON(`[]`),
	})

	courts := []models.Court{
		seedCourt(greenfield.ID, "Turf 1", "football", 1200),
		seedCourt(greenfield.ID, "Turf 2", "football", 1000),
		seedCourt(skyline.ID, "Court A", "badminton", 400),
		seedCourt(skyline.ID, "Net 1", "cricket", 800),
	}

	windows := []services.SlotWindow{
		{StartTime: "06:00", EndTime: "07:00"},
		{StartTime: "07:00", EndTime: "08:00"},
		{StartTime: "17:00", EndTime: "18:00"},
		{StartTime: "18:00", EndTime: "19:00"},
		{StartTime: "19:00", EndTime: "20:00"},
		{StartTime: "20:00", EndTime: "21:00"},
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	weekOut := today.AddDate(0, 0, 6)
	for _, court := range courts {
		if _, err := services.GenerateSlots(storage.DB, court.ID, today, weekOut, windows); err != nil {
			log.Fatalf("generating slots for court %d: %v", court.ID, err)
		}
	}

	fmt.Println("Seed completed successfully!")
}

func seedUser(name, email, password, role string) models.User {
	var user models.User
	err := storage.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("looking up user %s: %v", email, err)
	}

	hashed, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if hashErr != nil {
		log.Fatalf("hashing password for %s: %v", email, hashErr)
	}

	user = models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := storage.DB.Create(&user).Error; err != nil {
		log.Fatalf("creating user %s: %v", email, err)
	}
	return user
}

func seedTurf(turf models.Turf) models.Turf {
	var existing models.Turf
	err := storage.DB.Where("name = ?", turf.Name).First(&existing).Error
	if err == nil {
		return existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("looking up turf %s: %v", turf.Name, err)
	}

	if err := storage.DB.Create(&turf).Error; err != nil {
		log.Fatalf("creating turf %s: %v", turf.Name, err)
	}
	return turf
}

func seedCourt(turfID uint, name, sportType string, pricePerHour float64) models.Court {
	var existing models.Court
	err := storage.DB.Where("turf_id = ? AND name = ?", turfID, name).First(&existing).Error
	if err == nil {
		return existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("looking up court %s: %v", name, err)
	}

	court := models.Court{TurfID: turfID, Name: name, SportType: sportType, PricePerHour: pricePerHour}
	if err := storage.DB.Create(&court).Error; err != nil {
		log.Fatalf("creating court %s: %v", name, err)
	}
	return court
}
