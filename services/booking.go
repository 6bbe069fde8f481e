package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Booking outcomes the HTTP layer maps to status codes. Handlers must never
// branch on error strings; these sentinels are the whole contract.
var (
	ErrSlotNotFound            = errors.New("slot not found")
	ErrSlotAlreadyBooked       = errors.New("slot is already booked")
	ErrSlotInPast              = errors.New("cannot book slots in the past")
	ErrSlotTooSoon             = errors.New("cannot book slots less than 2 hours in advance")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrNotBookingOwner         = errors.New("cannot cancel another user's booking")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrCancelWindowClosed      = errors.New("cannot cancel bookings less than 24 hours before the slot time; no refund will be provided")
)

const (
	// MinBookingLead is how far ahead of the slot start a booking must be made.
	MinBookingLead = 2 * time.Hour
	// CancelWindow is the minimum notice for a free cancellation.
	CancelWindow = 24 * time.Hour
)

// BookingService owns the slot-booking consistency contract: a slot is never
// held by two confirmed bookings, and cancellation releases the slot in the
// same atomic unit. The storage handle is passed in explicitly.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// SlotStartAt combines the slot's date with its "HH:MM" start time, in UTC.
func SlotStartAt(slot *models.Slot) time.Time {
	hour, minute := 0, 0
	parts := strings.SplitN(slot.StartTime, ":", 2)
	if len(parts) == 2 {
		hour, _ = strconv.Atoi(parts[0])
		minute, _ = strconv.Atoi(parts[1])
	}
	d := slot.Date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

// checkBookable applies the availability and timing policy to a locked slot.
func checkBookable(slot *models.Slot, now time.Time) error {
	if slot.IsBooked {
		return ErrSlotAlreadyBooked
	}
	start := SlotStartAt(slot)
	if start.Before(now) {
		return ErrSlotInPast
	}
	if start.Before(now.Add(MinBookingLead)) {
		return ErrSlotTooSoon
	}
	return nil
}

// checkCancellable applies ownership, state and notice-period policy.
func checkCancellable(booking *models.Booking, slot *models.Slot, userID uint, now time.Time) error {
	if booking.UserID != userID {
		return ErrNotBookingOwner
	}
	if booking.Status == models.BookingStatusCancelled {
		return ErrBookingAlreadyCancelled
	}
	if SlotStartAt(slot).Sub(now) < CancelWindow {
		return ErrCancelWindowClosed
	}
	return nil
}

// CreateBooking reserves the slot for the user. The whole check-then-act
// sequence runs in one transaction with the slot row locked FOR UPDATE, so a
// concurrent attempt on the same slot blocks, re-reads IsBooked=true and gets
// ErrSlotAlreadyBooked. The partial unique index on bookings(slot_id) catches
// anything that slips past the lock and is translated to the same error.
func (s *BookingService) CreateBooking(userID, slotID uint) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var slot models.Slot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, slotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if err := checkBookable(&slot, time.Now().UTC()); err != nil {
			return err
		}

		var court models.Court
		if err := tx.First(&court, slot.CourtID).Error; err != nil {
			return err
		}

		booking = models.Booking{
			Reference:     uuid.NewString(),
			UserID:        userID,
			SlotID:        slot.ID,
			Status:        models.BookingStatusConfirmed,
			TotalPrice:    court.PricePerHour,
			PaymentStatus: models.PaymentStatusPending,
		}

		if err := tx.Create(&booking).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrSlotAlreadyBooked
			}
			return err
		}

		return tx.Model(&models.Slot{}).Where("id = ?", slot.ID).
			Update("is_booked", true).Error
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Slot").Preload("Slot.Court").First(&booking, booking.ID)
	return &booking, nil
}

// CancelBooking flips the booking to cancelled and frees its slot atomically;
// neither effect is ever observable without the other.
func (s *BookingService) CancelBooking(bookingID, userID uint) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		var slot models.Slot
		if err := tx.First(&slot, booking.SlotID).Error; err != nil {
			return err
		}

		if err := checkCancellable(&booking, &slot, userID, time.Now().UTC()); err != nil {
			return err
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return err
		}

		return tx.Model(&models.Slot{}).Where("id = ?", slot.ID).
			Update("is_booked", false).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
