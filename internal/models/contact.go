package models

import "time"

// Contact is a person at a vendor. Cascades on vendor deletion.
type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VendorID    uint      `gorm:"not null;index" json:"vendor_id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	Phone       string    `json:"phone"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
}
