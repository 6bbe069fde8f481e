package services

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests exercise the booking transaction against a real Postgres
// (row locking and the partial unique index have no sqlite equivalent).
// They run only when TEST_DB_CONNECTION_STRING points at a throwaway
// database and skip otherwise.
func setupBookingDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("TEST_DB_CONNECTION_STRING not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Turf{},
		&models.Court{},
		&models.Slot{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot_confirmed
		ON bookings (slot_id) WHERE status = 'confirmed' AND deleted_at IS NULL;`)

	if err := db.Exec(`TRUNCATE TABLE reviews, bookings, slots, courts, turfs, users RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("cleaning tables: %v", err)
	}

	return db
}

type bookingFixture struct {
	users []models.User
	court models.Court
	slot  models.Slot
}

// seedBookingFixture creates userCount users and one bookable slot three days
// out, comfortably clear of the lead-time window.
func seedBookingFixture(t *testing.T, db *gorm.DB, userCount int) bookingFixture {
	t.Helper()

	var f bookingFixture
	for i := 0; i < userCount; i++ {
		user := models.User{
			Name:  fmt.Sprintf("Player %d", i+1),
			Email: fmt.Sprintf("player%d@test.local", i+1),
		}
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("creating user: %v", err)
		}
		f.users = append(f.users, user)
	}

	turf := models.Turf{Name: "Test Arena", City: "Chennai", State: "Tamil Nadu"}
	if err := db.Create(&turf).Error; err != nil {
		t.Fatalf("creating turf: %v", err)
	}

	f.court = models.Court{TurfID: turf.ID, Name: "Court 1", SportType: "football", PricePerHour: 1500}
	if err := db.Create(&f.court).Error; err != nil {
		t.Fatalf("creating court: %v", err)
	}

	date := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 3)
	f.slot = models.Slot{CourtID: f.court.ID, Date: date, StartTime: "10:00", EndTime: "11:00"}
	if err := db.Create(&f.slot).Error; err != nil {
		t.Fatalf("creating slot: %v", err)
	}

	return f
}

func confirmedBookingCount(t *testing.T, db *gorm.DB, slotID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Booking{}).
		Where("slot_id = ? AND status = ?", slotID, models.BookingStatusConfirmed).
		Count(&count).Error; err != nil {
		t.Fatalf("counting bookings: %v", err)
	}
	return count
}

func TestCreateBookingSecondAttemptConflicts(t *testing.T) {
	db := setupBookingDB(t)
	f := seedBookingFixture(t, db, 2)
	svc := NewBookingService(db)

	booking, err := svc.CreateBooking(f.users[0].ID, f.slot.ID)
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", booking.Status)
	}
	if booking.TotalPrice != f.court.PricePerHour {
		t.Fatalf("totalPrice = %v, want %v", booking.TotalPrice, f.court.PricePerHour)
	}
	if booking.Reference == "" {
		t.Fatal("expected a booking reference")
	}

	if _, err := svc.CreateBooking(f.users[1].ID, f.slot.ID); !errors.Is(err, ErrSlotAlreadyBooked) {
		t.Fatalf("second booking: got %v, want ErrSlotAlreadyBooked", err)
	}

	if got := confirmedBookingCount(t, db, f.slot.ID); got != 1 {
		t.Fatalf("confirmed bookings = %d, want 1", got)
	}

	var slot models.Slot
	if err := db.First(&slot, f.slot.ID).Error; err != nil {
		t.Fatalf("reloading slot: %v", err)
	}
	if !slot.IsBooked {
		t.Fatal("slot should be booked")
	}
}

func TestCreateBookingConcurrentSingleWinner(t *testing.T) {
	db := setupBookingDB(t)

	const attempts = 8
	f := seedBookingFixture(t, db, attempts)
	svc := NewBookingService(db)

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(f.users[i].ID, f.slot.ID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrSlotAlreadyBooked):
		default:
			t.Fatalf("attempt %d: unexpected error %v", i, err)
		}
	}
	if winners != 1 {
		t.Fatalf("winners = %d, want exactly 1", winners)
	}

	if got := confirmedBookingCount(t, db, f.slot.ID); got != 1 {
		t.Fatalf("confirmed bookings = %d, want 1", got)
	}
}

func TestCreateBookingUniqueIndexBackstop(t *testing.T) {
	db := setupBookingDB(t)
	f := seedBookingFixture(t, db, 2)
	svc := NewBookingService(db)

	if _, err := svc.CreateBooking(f.users[0].ID, f.slot.ID); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Force the flag out of sync with the booking row, as a buggy writer
	// would; the insert must still die on the partial unique index and come
	// back as the conflict sentinel.
	if err := db.Model(&models.Slot{}).Where("id = ?", f.slot.ID).
		Update("is_booked", false).Error; err != nil {
		t.Fatalf("resetting is_booked: %v", err)
	}

	if _, err := svc.CreateBooking(f.users[1].ID, f.slot.ID); !errors.Is(err, ErrSlotAlreadyBooked) {
		t.Fatalf("got %v, want ErrSlotAlreadyBooked", err)
	}
	if got := confirmedBookingCount(t, db, f.slot.ID); got != 1 {
		t.Fatalf("confirmed bookings = %d, want 1", got)
	}
}

func TestCancelBookingFreesSlotAtomically(t *testing.T) {
	db := setupBookingDB(t)
	f := seedBookingFixture(t, db, 1)
	svc := NewBookingService(db)

	booking, err := svc.CreateBooking(f.users[0].ID, f.slot.ID)
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	cancelled, err := svc.CancelBooking(booking.ID, f.users[0].ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != models.BookingStatusCancelled {
		t.Fatalf("status = %q, want cancelled", cancelled.Status)
	}

	var slot models.Slot
	if err := db.First(&slot, f.slot.ID).Error; err != nil {
		t.Fatalf("reloading slot: %v", err)
	}
	if slot.IsBooked {
		t.Fatal("slot should be free after cancellation")
	}

	if _, err := svc.CancelBooking(booking.ID, f.users[0].ID); !errors.Is(err, ErrBookingAlreadyCancelled) {
		t.Fatalf("re-cancel: got %v, want ErrBookingAlreadyCancelled", err)
	}
}
