package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Turf struct {
	gorm.Model
	Name        string         `json:"name" gorm:"not null"`
	Address     string         `json:"address"`
	City        string         `json:"city" gorm:"index"`
	State       string         `json:"state" gorm:"index"`
	Pincode     string         `json:"pincode"`
	Description string         `json:"description" gorm:"type:text"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Amenities   datatypes.JSON `json:"amenities"`
	Photos      datatypes.JSON `json:"photos"`
	Courts      []Court        `json:"courts,omitempty" gorm:"foreignKey:TurfID;constraint:OnDelete:CASCADE"`
	Reviews     []Review       `json:"reviews,omitempty" gorm:"foreignKey:TurfID"`
}
