package routes

import (
	"strings"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// GET /api/admin/bookings with optional status and createdAt date filters.
func AdminListBookings(ctx iris.Context) {
	q := storage.DB.Model(&models.Booking{})

	if status := strings.TrimSpace(ctx.URLParam("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	q = applyCreatedAtRange(q, dateParam(ctx, "startDate"), dateParam(ctx, "endDate"))

	var bookings []models.Booking
	if err := q.Preload("User").
		Preload("Slot").
		Preload("Slot.Court").
		Preload("Slot.Court.Turf").
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
		}
		if booking.User != nil {
			entry["user"] = iris.Map{
				"id":    booking.User.ID,
				"name":  booking.User.Name,
				"email": booking.User.Email,
				"phone": booking.User.Phone,
			}
		}
		if slot := booking.Slot; slot != nil {
			entry["slot"] = iris.Map{
				"date":      slot.Date.Format("2006-01-02"),
				"startTime": slot.StartTime,
				"endTime":   slot.EndTime,
			}
			if court := slot.Court; court != nil {
				entry["court"] = iris.Map{
					"id":        court.ID,
					"name":      court.Name,
					"sportType": court.SportType,
				}
				if turf := court.Turf; turf != nil {
					entry["turf"] = iris.Map{
						"id":   turf.ID,
						"name": turf.Name,
						"city": turf.City,
					}
				}
			}
		}
		responses = append(responses, entry)
	}

	utils.JSONSuccess(ctx, responses)
}

// GET /api/admin/revenue — confirmed-booking revenue, total and per turf.
func AdminRevenueReport(ctx iris.Context) {
	q := storage.DB.Where("status = ?", models.BookingStatusConfirmed)
	q = applyCreatedAtRange(q, dateParam(ctx, "startDate"), dateParam(ctx, "endDate"))

	var bookings []models.Booking
	if err := q.Preload("Slot").
		Preload("Slot.Court").
		Preload("Slot.Court.Turf").
		Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	type turfRevenue struct {
		TurfID        uint    `json:"turfId"`
		TurfName      string  `json:"turfName"`
		TotalRevenue  float64 `json:"totalRevenue"`
		TotalBookings int     `json:"totalBookings"`
	}

	totalRevenue := 0.0
	byTurf := map[uint]*turfRevenue{}
	for _, booking := range bookings {
		totalRevenue += booking.TotalPrice

		if booking.Slot == nil || booking.Slot.Court == nil || booking.Slot.Court.Turf == nil {
			continue
		}
		turf := booking.Slot.Court.Turf
		entry, found := byTurf[turf.ID]
		if !found {
			entry = &turfRevenue{TurfID: turf.ID, TurfName: turf.Name}
			byTurf[turf.ID] = entry
		}
		entry.TotalRevenue += booking.TotalPrice
		entry.TotalBookings++
	}

	revenueByTurf := make([]turfRevenue, 0, len(byTurf))
	for _, entry := range byTurf {
		revenueByTurf = append(revenueByTurf, *entry)
	}

	utils.JSONSuccess(ctx, iris.Map{
		"totalRevenue":  totalRevenue,
		"totalBookings": len(bookings),
		"revenueByTurf": revenueByTurf,
	})
}

// applyCreatedAtRange narrows a query to bookings created between startDate
// and endDate (both inclusive, whole days). The upper bound is half-open
// against the next midnight so rows stamped exactly at midnight of the day
// after endDate stay out.
func applyCreatedAtRange(q *gorm.DB, startDate, endDate *time.Time) *gorm.DB {
	if startDate != nil {
		q = q.Where("created_at >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("created_at < ?", endDate.AddDate(0, 0, 1))
	}
	return q
}

func dateParam(ctx iris.Context, name string) *time.Time {
	value := strings.TrimSpace(ctx.URLParam(name))
	if value == "" {
		return nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil
	}
	return &parsed
}
