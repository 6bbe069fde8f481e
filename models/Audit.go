package models

import "gorm.io/gorm"

// AuditLog records admin mutations (turf/court CRUD, slot generation).
type AuditLog struct {
	gorm.Model
	AdminUserID  uint   `json:"adminUserID" gorm:"index"`
	Action       string `json:"action" gorm:"type:varchar(50);index"`
	ResourceType string `json:"resourceType" gorm:"type:varchar(50);index"`
	ResourceID   uint   `json:"resourceID"`
	BeforeJSON   string `json:"beforeJSON" gorm:"type:text"`
	AfterJSON    string `json:"afterJSON" gorm:"type:text"`
	IPAddress    string `json:"ipAddress" gorm:"type:varchar(64)"`
}
