package models

import "gorm.io/gorm"

type Court struct {
	gorm.Model
	TurfID       uint    `json:"turfID" gorm:"not null;index"`
	Turf         *Turf   `json:"turf,omitempty" gorm:"foreignKey:TurfID"`
	Name         string  `json:"name" gorm:"not null"`
	SportType    string  `json:"sportType" gorm:"index"`
	PricePerHour float64 `json:"pricePerHour" gorm:"not null"`
	Slots        []Slot  `json:"slots,omitempty" gorm:"foreignKey:CourtID;constraint:OnDelete:CASCADE"`
}
