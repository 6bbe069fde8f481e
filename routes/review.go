package routes

import (
	"errors"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/services"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	BookingID uint   `json:"bookingId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=1000"`
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

type reviewResponse struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	User      *iris.Map `json:"user,omitempty"`
	Turf      *iris.Map `json:"turf,omitempty"`
}

// CreateReview lets the booking's owner review the turf after the slot date
// has passed; one review per booking.
func CreateReview(ctx iris.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.Preload("Slot").Preload("Slot.Court").First(&booking, input.BookingID).Error; err != nil {
		utils.CreateError(iris.StatusBadRequest, "Not Found", services.ErrBookingNotFound.Error(), ctx)
		return
	}
	if booking.Slot == nil || booking.Slot.Court == nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if err := services.CheckReviewable(&booking, booking.Slot, userID, time.Now()); err != nil {
		if errors.Is(err, services.ErrNotReviewOwner) {
			utils.CreateError(iris.StatusForbidden, "Forbidden", err.Error(), ctx)
			return
		}
		utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
		return
	}

	var existing models.Review
	if err := storage.DB.Where("booking_id = ?", input.BookingID).First(&existing).Error; err == nil {
		utils.CreateError(iris.StatusBadRequest, "Conflict", services.ErrReviewExists.Error(), ctx)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateInternalServerError(ctx)
		return
	}

	review := models.Review{
		UserID:    userID,
		TurfID:    booking.Slot.Court.TurfID,
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := storage.DB.Create(&review).Error; err != nil {
		// Concurrent double submit lands on the booking_id unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", services.ErrReviewExists.Error(), ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.DB.Preload("User").First(&review, review.ID)

	utils.JSONSuccess(ctx, formatReview(review, true, false))
}

// ListTurfReviews returns all reviews for a turf, newest first.
func ListTurfReviews(ctx iris.Context) {
	turfID := ctx.Params().GetUintDefault("id", 0)
	if turfID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid turf ID", ctx)
		return
	}

	var reviews []models.Review
	if err := storage.DB.Preload("User").
		Where("turf_id = ?", turfID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, formatReview(review, true, false))
	}

	utils.JSONSuccess(ctx, responses)
}

// GetTurfRating returns the average rating and review count for a turf.
func GetTurfRating(ctx iris.Context) {
	turfID := ctx.Params().GetUintDefault("id", 0)
	if turfID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid turf ID", ctx)
		return
	}

	var result struct {
		AverageRating float64
		TotalReviews  int64
	}
	if err := storage.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
		Where("turf_id = ?", turfID).
		Scan(&result).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONSuccess(ctx, iris.Map{
		"averageRating": result.AverageRating,
		"totalReviews":  result.TotalReviews,
	})
}

func GetMyReviews(ctx iris.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := storage.DB.Preload("Turf").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, formatReview(review, false, true))
	}

	utils.JSONSuccess(ctx, responses)
}

func UpdateReview(ctx iris.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	review, done := getOwnReview(ctx, userID)
	if done {
		return
	}

	var input UpdateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := storage.DB.Save(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.DB.Preload("User").First(&review, review.ID)

	utils.JSONSuccess(ctx, formatReview(review, true, false))
}

func DeleteReview(ctx iris.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	review, done := getOwnReview(ctx, userID)
	if done {
		return
	}

	if err := storage.DB.Delete(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONSuccessMessage(ctx, nil, "Review deleted successfully")
}

// getOwnReview loads the review in the URL and enforces author ownership.
// The bool result reports whether a response has already been written.
func getOwnReview(ctx iris.Context, userID uint) (models.Review, bool) {
	var review models.Review

	reviewID := ctx.Params().GetUintDefault("id", 0)
	if reviewID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid review ID", ctx)
		return review, true
	}

	if err := storage.DB.First(&review, reviewID).Error; err != nil {
		utils.CreateError(iris.StatusBadRequest, "Not Found", services.ErrReviewNotFound.Error(), ctx)
		return review, true
	}

	if review.UserID != userID {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "Review belongs to another user", ctx)
		return review, true
	}

	return review, false
}

func formatReview(review models.Review, withUser, withTurf bool) reviewResponse {
	response := reviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if withUser && review.User != nil {
		response.User = &iris.Map{
			"id":   review.User.ID,
			"name": review.User.Name,
		}
	}
	if withTurf && review.Turf != nil {
		response.Turf = &iris.Map{
			"id":   review.Turf.ID,
			"name": review.Turf.Name,
			"city": review.Turf.City,
		}
	}
	return response
}
