package services

import (
	"testing"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
)

func TestCheckReviewable(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 0, 0, 0, time.UTC)
	owner := uint(3)
	booking := &models.Booking{UserID: owner, Status: models.BookingStatusConfirmed}

	t.Run("not the owner", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 10), StartTime: "10:00"}
		if err := CheckReviewable(booking, slot, 42, now); err != ErrNotReviewOwner {
			t.Fatalf("got %v, want ErrNotReviewOwner", err)
		}
	})

	t.Run("slot earlier today is not reviewable yet", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 15), StartTime: "06:00"}
		if err := CheckReviewable(booking, slot, owner, now); err != ErrBookingNotCompleted {
			t.Fatalf("got %v, want ErrBookingNotCompleted", err)
		}
	})

	t.Run("future slot", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 20), StartTime: "10:00"}
		if err := CheckReviewable(booking, slot, owner, now); err != ErrBookingNotCompleted {
			t.Fatalf("got %v, want ErrBookingNotCompleted", err)
		}
	})

	t.Run("slot from yesterday", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 14), StartTime: "22:00"}
		if err := CheckReviewable(booking, slot, owner, now); err != nil {
			t.Fatalf("got %v, want nil", err)
		}
	})
}
