package routes

import (
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
)

type slotResponse struct {
	ID        uint    `json:"id"`
	CourtID   uint    `json:"courtId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	IsBooked  bool    `json:"isBooked"`
	Price     float64 `json:"price"`
}

// GetAvailableSlots lists unbooked slots for a court on a date. Past dates
// return an empty list rather than an error.
func GetAvailableSlots(ctx iris.Context) {
	courtID, err := ctx.URLParamInt("courtId")
	if err != nil || courtID <= 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "courtId query parameter is required", ctx)
		return
	}

	dateStr := ctx.URLParam("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "date must be YYYY-MM-DD", ctx)
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		utils.JSONSuccess(ctx, []slotResponse{})
		return
	}

	var court models.Court
	if err := storage.DB.First(&court, courtID).Error; err != nil {
		utils.CreateError(iris.StatusBadRequest, "Not Found", "Court not found", ctx)
		return
	}

	var slots []models.Slot
	if err := storage.DB.
		Where("court_id = ? AND date = ? AND is_booked = ?", courtID, date, false).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]slotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, slotResponse{
			ID:        slot.ID,
			CourtID:   slot.CourtID,
			Date:      slot.Date.Format("2006-01-02"),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBooked:  slot.IsBooked,
			Price:     court.PricePerHour,
		})
	}

	utils.JSONSuccess(ctx, responses)
}
