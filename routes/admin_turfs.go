package routes

import (
	"encoding/json"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
	"gorm.io/datatypes"
)

var allowedSportTypes = []string{
	"football", "cricket", "badminton", "tennis", "basketball", "volleyball", "pickleball",
}

type TurfInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Address     string   `json:"address" validate:"required,max=500"`
	City        string   `json:"city" validate:"required,max=100"`
	State       string   `json:"state" validate:"required,max=100"`
	Pincode     string   `json:"pincode" validate:"max=10"`
	Description string   `json:"description" validate:"max=2000"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
	Photos      []string `json:"photos"`
}

type CourtInput struct {
	TurfID       uint    `json:"turfId" validate:"required"`
	Name         string  `json:"name" validate:"required,max=200"`
	SportType    string  `json:"sportType" validate:"required"`
	PricePerHour float64 `json:"pricePerHour" validate:"required,min=0"`
}

type UpdateCourtInput struct {
	Name         *string  `json:"name" validate:"omitempty,max=200"`
	SportType    *string  `json:"sportType"`
	PricePerHour *float64 `json:"pricePerHour" validate:"omitempty,min=0"`
}

// GET /api/admin/turfs — turfs with court/review counts and average rating.
func AdminListTurfs(ctx iris.Context) {
	var turfs []models.Turf
	if err := storage.DB.Order("created_at DESC").Find(&turfs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]iris.Map, 0, len(turfs))
	for _, turf := range turfs {
		var totalCourts, totalReviews int64
		storage.DB.Model(&models.Court{}).Where("turf_id = ?", turf.ID).Count(&totalCourts)
		storage.DB.Model(&models.Review{}).Where("turf_id = ?", turf.ID).Count(&totalReviews)

		var averageRating float64
		storage.DB.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0)").
			Where("turf_id = ?", turf.ID).
			Scan(&averageRating)

		responses = append(responses, iris.Map{
			"id":            turf.ID,
			"name":          turf.Name,
			"city":          turf.City,
			"state":         turf.State,
			"address":       turf.Address,
			"totalCourts":   totalCourts,
			"totalReviews":  totalReviews,
			"averageRating": averageRating,
			"createdAt":     turf.CreatedAt,
		})
	}

	utils.JSONSuccess(ctx, responses)
}

// POST /api/admin/turfs
func AdminCreateTurf(ctx iris.Context) {
	var input TurfInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	turf := models.Turf{
		Name:        input.Name,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Pincode:     input.Pincode,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Amenities:   marshalStringList(input.Amenities),
		Photos:      marshalStringList(input.Photos),
	}

	if err := storage.DB.Create(&turf).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "turf", turf.ID, nil, turf)
	utils.JSONSuccessMessage(ctx, turf, "Turf created successfully")
}

// PUT /api/admin/turfs/{id}
func AdminUpdateTurf(ctx iris.Context) {
	turfID := ctx.Params().GetUintDefault("id", 0)

	var turf models.Turf
	if err := storage.DB.First(&turf, turfID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	before := turf

	var input TurfInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	turf.Name = input.Name
	turf.Address = input.Address
	turf.City = input.City
	turf.State = input.State
	turf.Pincode = input.Pincode
	turf.Description = input.Description
	turf.Latitude = input.Latitude
	turf.Longitude = input.Longitude
	turf.Amenities = marshalStringList(input.Amenities)
	turf.Photos = marshalStringList(input.Photos)

	if err := storage.DB.Save(&turf).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "update", "turf", turf.ID, before, turf)
	utils.JSONSuccessMessage(ctx, turf, "Turf updated successfully")
}

// DELETE /api/admin/turfs/{id}
func AdminDeleteTurf(ctx iris.Context) {
	turfID := ctx.Params().GetUintDefault("id", 0)

	var turf models.Turf
	if err := storage.DB.First(&turf, turfID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&turf).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "delete", "turf", turf.ID, turf, nil)
	utils.JSONSuccessMessage(ctx, nil, "Turf deleted successfully")
}

// POST /api/admin/courts
func AdminCreateCourt(ctx iris.Context) {
	var input CourtInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !slices.Contains(allowedSportTypes, input.SportType) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unsupported sport type", ctx)
		return
	}

	var turf models.Turf
	if err := storage.DB.First(&turf, input.TurfID).Error; err != nil {
		utils.CreateError(iris.StatusBadRequest, "Not Found", "Turf not found", ctx)
		return
	}

	court := models.Court{
		TurfID:       input.TurfID,
		Name:         input.Name,
		SportType:    input.SportType,
		PricePerHour: input.PricePerHour,
	}

	if err := storage.DB.Create(&court).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "create", "court", court.ID, nil, court)
	utils.JSONSuccessMessage(ctx, court, "Court created successfully")
}

// PUT /api/admin/courts/{id}
func AdminUpdateCourt(ctx iris.Context) {
	courtID := ctx.Params().GetUintDefault("id", 0)

	var court models.Court
	if err := storage.DB.First(&court, courtID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	before := court

	var input UpdateCourtInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.SportType != nil {
		if !slices.Contains(allowedSportTypes, *input.SportType) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unsupported sport type", ctx)
			return
		}
		court.SportType = *input.SportType
	}
	if input.Name != nil {
		court.Name = *input.Name
	}
	if input.PricePerHour != nil {
		// Existing bookings keep their snapshotted price.
		court.PricePerHour = *input.PricePerHour
	}

	if err := storage.DB.Save(&court).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "update", "court", court.ID, before, court)
	utils.JSONSuccessMessage(ctx, court, "Court updated successfully")
}

// DELETE /api/admin/courts/{id}
func AdminDeleteCourt(ctx iris.Context) {
	courtID := ctx.Params().GetUintDefault("id", 0)

	var court models.Court
	if err := storage.DB.First(&court, courtID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&court).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "delete", "court", court.ID, court, nil)
	utils.JSONSuccessMessage(ctx, nil, "Court deleted successfully")
}

func marshalStringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}
