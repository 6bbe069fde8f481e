package routes

import (
	"errors"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/services"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
)

type GenerateSlotsInput struct {
	CourtID   uint                  `json:"courtId" validate:"required"`
	StartDate string                `json:"startDate" validate:"required"`
	EndDate   string                `json:"endDate" validate:"required"`
	TimeSlots []services.SlotWindow `json:"timeSlots" validate:"required,min=1,dive"`
}

// POST /api/admin/slots/generate — bulk-create slots for a court over a date
// range. Idempotent: re-running skips slots that already exist.
func AdminGenerateSlots(ctx iris.Context) {
	var input GenerateSlotsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", input.StartDate, time.UTC)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "startDate must be YYYY-MM-DD", ctx)
		return
	}
	endDate, err := time.ParseInLocation("2006-01-02", input.EndDate, time.UTC)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "endDate must be YYYY-MM-DD", ctx)
		return
	}
	if endDate.Before(startDate) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "endDate must not be before startDate", ctx)
		return
	}

	var court models.Court
	if err := storage.DB.First(&court, input.CourtID).Error; err != nil {
		utils.CreateError(iris.StatusBadRequest, "Not Found", "Court not found", ctx)
		return
	}

	slots, err := services.GenerateSlots(storage.DB, input.CourtID, startDate, endDate, input.TimeSlots)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimeWindow) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "generate_slots", "court", court.ID, nil, iris.Map{
		"startDate": input.StartDate,
		"endDate":   input.EndDate,
		"windows":   input.TimeSlots,
	})

	utils.JSONSuccessMessage(ctx, iris.Map{
		"courtId":        court.ID,
		"generatedCount": len(slots),
	}, "Slots generated successfully")
}
