package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidTimeWindow = errors.New("time window must be HH:MM with end after start")

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// SlotWindow is one "HH:MM"-"HH:MM" interval repeated for every date in a
// generation request.
type SlotWindow struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// ValidateWindow checks the clock format and ordering of a window.
func ValidateWindow(w SlotWindow) error {
	if !clockPattern.MatchString(w.StartTime) || !clockPattern.MatchString(w.EndTime) {
		return ErrInvalidTimeWindow
	}
	if w.EndTime <= w.StartTime {
		return ErrInvalidTimeWindow
	}
	return nil
}

// GenerateSlots creates one slot per (date, window) over the inclusive date
// range. Existing slots are left untouched (conflict on the composite unique
// index is ignored), so re-running a generation request is safe.
func GenerateSlots(db *gorm.DB, courtID uint, startDate, endDate time.Time, windows []SlotWindow) ([]models.Slot, error) {
	for _, w := range windows {
		if err := ValidateWindow(w); err != nil {
			return nil, err
		}
	}

	start := startDate.UTC().Truncate(24 * time.Hour)
	end := endDate.UTC().Truncate(24 * time.Hour)

	var slots []models.Slot
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		for _, w := range windows {
			slots = append(slots, models.Slot{
				CourtID:   courtID,
				Date:      date,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
				IsBooked:  false,
			})
		}
	}
	if len(slots) == 0 {
		return slots, nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "court_id"}, {Name: "date"}, {Name: "start_time"}},
		DoNothing: true,
	}).Create(&slots).Error
	if err != nil {
		return nil, err
	}

	return slots, nil
}
