package models

import "gorm.io/gorm"

// Notification is an in-app record shown on the user's activity feed,
// written when a booking is confirmed or cancelled.
type Notification struct {
	gorm.Model
	UserID  uint   `json:"userID" gorm:"not null;index"`
	Type    string `json:"type" gorm:"type:varchar(50)"` // booking_confirmed, booking_cancelled
	Title   string `json:"title"`
	Message string `json:"message" gorm:"type:text"`
	RefType string `json:"refType" gorm:"type:varchar(50)"`
	RefID   uint   `json:"refID"`
	IsRead  bool   `json:"isRead" gorm:"default:false"`
}
