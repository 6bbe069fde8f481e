package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string    `json:"name"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null"`
	Password string    `json:"-"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role" gorm:"type:varchar(20);default:user;index"` // user, admin
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
}
