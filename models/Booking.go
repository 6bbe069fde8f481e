package models

import "gorm.io/gorm"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Booking reserves exactly one slot for one user. TotalPrice snapshots the
// court's hourly price at booking time and never changes afterwards.
// A partial unique index on slot_id (status = confirmed) backs the
// one-confirmed-booking-per-slot invariant; see storage.InitializeDB.
type Booking struct {
	gorm.Model
	Reference     string  `json:"reference" gorm:"type:varchar(36);uniqueIndex"`
	UserID        uint    `json:"userID" gorm:"not null;index"`
	User          *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SlotID        uint    `json:"slotID" gorm:"not null;index"`
	Slot          *Slot   `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	Status        string  `json:"status" gorm:"type:varchar(20);not null;index"` // confirmed, cancelled
	TotalPrice    float64 `json:"totalPrice" gorm:"not null"`
	PaymentStatus string  `json:"paymentStatus" gorm:"type:varchar(20);default:pending"` // pending, completed
	Review        *Review `json:"review,omitempty" gorm:"foreignKey:BookingID"`
}
