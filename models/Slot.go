package models

import (
	"time"

	"gorm.io/gorm"
)

// Slot is a fixed one-hour bookable interval on a court. Date is stored at
// UTC midnight; StartTime/EndTime are "HH:MM" wall-clock strings.
// (court_id, date, start_time) is unique so slot generation can be re-run safely.
type Slot struct {
	gorm.Model
	CourtID   uint      `json:"courtID" gorm:"not null;uniqueIndex:idx_slots_court_date_start"`
	Court     *Court    `json:"court,omitempty" gorm:"foreignKey:CourtID"`
	Date      time.Time `json:"date" gorm:"not null;uniqueIndex:idx_slots_court_date_start"`
	StartTime string    `json:"startTime" gorm:"type:varchar(5);not null;uniqueIndex:idx_slots_court_date_start"`
	EndTime   string    `json:"endTime" gorm:"type:varchar(5);not null"`
	IsBooked  bool      `json:"isBooked" gorm:"default:false;index"`
}
