package routes

import (
	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/stats
func AdminStats(ctx iris.Context) {
	var totalBookings, confirmedBookings, cancelledBookings int64
	storage.DB.Model(&models.Booking{}).Count(&totalBookings)
	storage.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusConfirmed).Count(&confirmedBookings)
	storage.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusCancelled).Count(&cancelledBookings)

	var totalRevenue float64
	storage.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusConfirmed).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&totalRevenue)

	var totalUsers, totalTurfs, totalReviews int64
	storage.DB.Model(&models.User{}).Count(&totalUsers)
	storage.DB.Model(&models.Turf{}).Count(&totalTurfs)
	storage.DB.Model(&models.Review{}).Count(&totalReviews)

	var averageRating float64
	storage.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&averageRating)

	var recentBookings []models.Booking
	storage.DB.Preload("User").
		Preload("Slot").
		Preload("Slot.Court").
		Preload("Slot.Court.Turf").
		Order("created_at DESC").
		Limit(10).
		Find(&recentBookings)

	recent := make([]iris.Map, 0, len(recentBookings))
	for _, booking := range recentBookings {
		entry := iris.Map{
			"id":        booking.ID,
			"amount":    booking.TotalPrice,
			"status":    booking.Status,
			"createdAt": booking.CreatedAt,
		}
		if booking.User != nil {
			entry["userName"] = booking.User.Name
			entry["userEmail"] = booking.User.Email
		}
		if slot := booking.Slot; slot != nil {
			entry["date"] = slot.Date.Format("2006-01-02")
			entry["time"] = slot.StartTime + " - " + slot.EndTime
			if court := slot.Court; court != nil {
				entry["courtName"] = court.Name
				if court.Turf != nil {
					entry["turfName"] = court.Turf.Name
				}
			}
		}
		recent = append(recent, entry)
	}

	utils.JSONSuccess(ctx, iris.Map{
		"totalBookings":     totalBookings,
		"confirmedBookings": confirmedBookings,
		"cancelledBookings": cancelledBookings,
		"totalRevenue":      totalRevenue,
		"totalUsers":        totalUsers,
		"totalTurfs":        totalTurfs,
		"totalReviews":      totalReviews,
		"averageRating":     averageRating,
		"recentBookings":    recent,
	})
}

// GET /api/admin/activity
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	utils.JSONSuccess(ctx, logs)
}
