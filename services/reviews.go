package services

import (
	"errors"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
)

var (
	ErrNotReviewOwner      = errors.New("cannot review another user's booking")
	ErrBookingNotCompleted = errors.New("cannot review a booking that has not been completed yet")
	ErrReviewExists        = errors.New("review already exists for this booking")
	ErrReviewNotFound      = errors.New("review not found")
)

// CheckReviewable gates review creation: only the booking's owner may review,
// and only once the slot's date has fully passed. Date granularity matches the
// slot model; a slot earlier today is not yet reviewable.
func CheckReviewable(booking *models.Booking, slot *models.Slot, userID uint, now time.Time) error {
	if booking.UserID != userID {
		return ErrNotReviewOwner
	}
	today := now.UTC().Truncate(24 * time.Hour)
	if !slot.Date.UTC().Truncate(24 * time.Hour).Before(today) {
		return ErrBookingNotCompleted
	}
	return nil
}
