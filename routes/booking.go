package routes

import (
	"errors"
	"log"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/services"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
)

type CreateBookingInput struct {
	SlotID uint `json:"slotId" validate:"required"`
}

// CreateBooking reserves a slot for the authenticated user. All consistency
// rules live in services.BookingService; this handler only translates errors.
func CreateBooking(ctx iris.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	booking, err := services.NewBookingService(storage.DB).CreateBooking(userID, input.SlotID)
	if err != nil {
		respondBookingError(err, ctx)
		return
	}

	courtName := ""
	if booking.Slot != nil && booking.Slot.Court != nil {
		courtName = booking.Slot.Court.Name
	}
	go services.NewNotificationService().SendBookingConfirmed(booking, courtName)

	response := iris.Map{
		"id":            booking.ID,
		"reference":     booking.Reference,
		"userId":        booking.UserID,
		"slotId":        booking.SlotID,
		"status":        booking.Status,
		"totalPrice":    booking.TotalPrice,
		"paymentStatus": booking.PaymentStatus,
		"createdAt":     booking.CreatedAt,
	}
	if booking.Slot != nil {
		slot := iris.Map{
			"date":      booking.Slot.Date.Format("2006-01-02"),
			"startTime": booking.Slot.StartTime,
			"endTime":   booking.Slot.EndTime,
		}
		if booking.Slot.Court != nil {
			slot["courtName"] = booking.Slot.Court.Name
		}
		response["slot"] = slot
	}

	utils.JSONSuccessMessage(ctx, response, "Booking created successfully")
}

// GetMyBookings lists the caller's bookings, newest first, with enough slot,
// court and turf context to render a booking card.
func GetMyBookings(ctx iris.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var bookings []models.Booking
	if err := storage.DB.Where("user_id = ?", userID).
		Preload("Slot").
		Preload("Slot.Court").
		Preload("Slot.Court.Turf").
		Preload("Review").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]iris.Map, 0, len(bookings))
	for _, booking := range bookings {
		entry := iris.Map{
			"id":            booking.ID,
			"reference":     booking.Reference,
			"status":        booking.Status,
			"totalPrice":    booking.TotalPrice,
			"paymentStatus": booking.PaymentStatus,
			"createdAt":     booking.CreatedAt,
			"hasReview":     booking.Review != nil,
		}
		if booking.Slot != nil {
			entry["slot"] = iris.Map{
				"date":      booking.Slot.Date.Format("2006-01-02"),
				"startTime": booking.Slot.StartTime,
				"endTime":   booking.Slot.EndTime,
			}
			if court := booking.Slot.Court; court != nil {
				entry["court"] = iris.Map{
					"name":      court.Name,
					"sportType": court.SportType,
				}
				if turf := court.Turf; turf != nil {
					entry["turf"] = iris.Map{
						"id":      turf.ID,
						"name":    turf.Name,
						"address": turf.Address,
					}
				}
			}
		}
		responses = append(responses, entry)
	}

	utils.JSONSuccess(ctx, responses)
}

func CancelBooking(ctx iris.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	bookingID := ctx.Params().GetUintDefault("id", 0)
	if bookingID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid booking ID", ctx)
		return
	}

	booking, err := services.NewBookingService(storage.DB).CancelBooking(bookingID, userID)
	if err != nil {
		respondBookingError(err, ctx)
		return
	}

	go services.NewNotificationService().SendBookingCancelled(booking)

	utils.JSONSuccessMessage(ctx, iris.Map{
		"id":     booking.ID,
		"status": booking.Status,
	}, "Booking cancelled successfully")
}

// respondBookingError is the single place booking sentinels become HTTP
// statuses.
func respondBookingError(err error, ctx iris.Context) {
	switch {
	case errors.Is(err, services.ErrSlotNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		utils.CreateError(iris.StatusBadRequest, "Not Found", err.Error(), ctx)
	case errors.Is(err, services.ErrSlotAlreadyBooked),
		errors.Is(err, services.ErrBookingAlreadyCancelled):
		utils.CreateError(iris.StatusBadRequest, "Conflict", err.Error(), ctx)
	case errors.Is(err, services.ErrSlotInPast),
		errors.Is(err, services.ErrSlotTooSoon),
		errors.Is(err, services.ErrCancelWindowClosed):
		utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
	case errors.Is(err, services.ErrNotBookingOwner):
		utils.CreateError(iris.StatusForbidden, "Forbidden", err.Error(), ctx)
	default:
		log.Printf("booking operation failed: %v", err)
		utils.CreateInternalServerError(ctx)
	}
}

// requireUserID pulls the authenticated user ID placed in the context by
// UserIDFromTokenMiddleware.
func requireUserID(ctx iris.Context) (uint, bool) {
	userIDValue := ctx.Values().Get("userID")
	if userIDValue == nil {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "User not authenticated", ctx)
		return 0, false
	}

	userID, ok := userIDValue.(uint)
	if !ok {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "Invalid user ID", ctx)
		return 0, false
	}

	return userID, true
}
