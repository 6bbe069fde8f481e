package services

import (
	"fmt"
	"log"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"
)

// NotificationService records in-app notifications for booking lifecycle
// events. Best effort: a failed write is logged, never surfaced to the caller.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (ns *NotificationService) SendBookingConfirmed(booking *models.Booking, courtName string) {
	date := ""
	startTime := ""
	if booking.Slot != nil {
		date = booking.Slot.Date.Format("January 2, 2006")
		startTime = booking.Slot.StartTime
	}
	notification := models.Notification{
		UserID: booking.UserID,
		Type:   "booking_confirmed",
		Title:  "Booking Confirmed",
		Message: fmt.Sprintf("Your booking for %s on %s at %s is confirmed. Total: %.0f",
			courtName, date, startTime, booking.TotalPrice),
		RefType: "booking",
		RefID:   booking.ID,
	}
	if err := storage.DB.Create(&notification).Error; err != nil {
		log.Printf("failed to record booking_confirmed notification for user %d: %v", booking.UserID, err)
	}
}

func (ns *NotificationService) SendBookingCancelled(booking *models.Booking) {
	notification := models.Notification{
		UserID:  booking.UserID,
		Type:    "booking_cancelled",
		Title:   "Booking Cancelled",
		Message: fmt.Sprintf("Your booking %s has been cancelled and the slot released.", booking.Reference),
		RefType: "booking",
		RefID:   booking.ID,
	}
	if err := storage.DB.Create(&notification).Error; err != nil {
		log.Printf("failed to record booking_cancelled notification for user %d: %v", booking.UserID, err)
	}
}
