package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"

	"gorm.io/gorm"
)

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSlotStartAt(t *testing.T) {
	slot := &models.Slot{Date: utcDate(2026, time.March, 15), StartTime: "18:30"}
	got := SlotStartAt(slot)
	want := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("SlotStartAt = %v, want %v", got, want)
	}
}

func TestCheckBookable(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		slot models.Slot
		want error
	}{
		{
			name: "already booked",
			slot: models.Slot{Date: utcDate(2026, time.March, 16), StartTime: "10:00", IsBooked: true},
			want: ErrSlotAlreadyBooked,
		},
		{
			name: "slot in the past",
			slot: models.Slot{Date: utcDate(2026, time.March, 15), StartTime: "08:00"},
			want: ErrSlotInPast,
		},
		{
			name: "inside the two hour lead",
			slot: models.Slot{Date: utcDate(2026, time.March, 15), StartTime: "11:00"},
			want: ErrSlotTooSoon,
		},
		{
			name: "exactly at the lead boundary",
			slot: models.Slot{Date: utcDate(2026, time.March, 15), StartTime: "12:00"},
			want: nil,
		},
		{
			name: "comfortably in the future",
			slot: models.Slot{Date: utcDate(2026, time.March, 16), StartTime: "10:00"},
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkBookable(&tc.slot, now)
			if !errors.Is(err, tc.want) && err != tc.want {
				t.Fatalf("checkBookable = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCheckCancellable(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	owner := uint(7)

	confirmed := func() *models.Booking {
		return &models.Booking{UserID: owner, Status: models.BookingStatusConfirmed}
	}

	t.Run("not the owner", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 20), StartTime: "10:00"}
		if err := checkCancellable(confirmed(), slot, 99, now); err != ErrNotBookingOwner {
			t.Fatalf("got %v, want ErrNotBookingOwner", err)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		booking := confirmed()
		booking.Status = models.BookingStatusCancelled
		slot := &models.Slot{Date: utcDate(2026, time.March, 20), StartTime: "10:00"}
		if err := checkCancellable(booking, slot, owner, now); err != ErrBookingAlreadyCancelled {
			t.Fatalf("got %v, want ErrBookingAlreadyCancelled", err)
		}
	})

	t.Run("inside the 24h window", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 16), StartTime: "09:00"}
		if err := checkCancellable(confirmed(), slot, owner, now); err != ErrCancelWindowClosed {
			t.Fatalf("got %v, want ErrCancelWindowClosed", err)
		}
	})

	t.Run("exactly 24h ahead is allowed", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 16), StartTime: "10:00"}
		if err := checkCancellable(confirmed(), slot, owner, now); err != nil {
			t.Fatalf("got %v, want nil", err)
		}
	})

	t.Run("well outside the window", func(t *testing.T) {
		slot := &models.Slot{Date: utcDate(2026, time.March, 20), StartTime: "10:00"}
		if err := checkCancellable(confirmed(), slot, owner, now); err != nil {
			t.Fatalf("got %v, want nil", err)
		}
	})

	t.Run("owner check wins over state check", func(t *testing.T) {
		booking := confirmed()
		booking.Status = models.BookingStatusCancelled
		slot := &models.Slot{Date: utcDate(2026, time.March, 16), StartTime: "09:00"}
		if err := checkCancellable(booking, slot, 99, now); err != ErrNotBookingOwner {
			t.Fatalf("got %v, want ErrNotBookingOwner", err)
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm translated sentinel", gorm.ErrDuplicatedKey, true},
		{"wrapped sentinel", fmt.Errorf("creating booking: %w", gorm.ErrDuplicatedKey), true},
		{"raw postgres message", errors.New(`duplicate key value violates unique constraint "idx_bookings_slot_confirmed"`), true},
		{"unrelated error", errors.New("connection reset by peer"), false},
		{"record not found", gorm.ErrRecordNotFound, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("isUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
