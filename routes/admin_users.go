package routes

import (
	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/users — all users with booking and review counts.
func AdminListUsers(ctx iris.Context) {
	var users []models.User
	if err := storage.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]iris.Map, 0, len(users))
	for _, user := range users {
		var totalBookings, totalReviews int64
		storage.DB.Model(&models.Booking{}).Where("user_id = ?", user.ID).Count(&totalBookings)
		storage.DB.Model(&models.Review{}).Where("user_id = ?", user.ID).Count(&totalReviews)

		responses = append(responses, iris.Map{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"phone":         user.Phone,
			"role":          user.Role,
			"createdAt":     user.CreatedAt,
			"totalBookings": totalBookings,
			"totalReviews":  totalReviews,
		})
	}

	utils.JSONSuccess(ctx, responses)
}
