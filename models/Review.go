package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID    uint   `json:"userID" gorm:"not null;index"`
	User      *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TurfID    uint   `json:"turfID" gorm:"not null;index"`
	Turf      *Turf  `json:"turf,omitempty" gorm:"foreignKey:TurfID"`
	BookingID uint   `json:"bookingID" gorm:"not null;uniqueIndex"` // at most one review per booking
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string `json:"comment" gorm:"type:text"`
}
