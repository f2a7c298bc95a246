package models

import "time"

// Vendor statuses.
const (
	VendorStatusActive   = "active"
	VendorStatusInactive = "inactive"
)

// Vendor is a staffing vendor. The same vendor record may serve several
// clients under different roles via ClientVendorLink.
type Vendor struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null;uniqueIndex" json:"name"`
	Status        string    `gorm:"not null;default:'active'" json:"status"`
	Website       string    `json:"website"`
	LinkedIn      string    `json:"linkedin"`
	Notes         string    `json:"notes"`
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	Zipcode       string    `json:"zipcode"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidVendorStatus reports whether s is a known vendor status.
func ValidVendorStatus(s string) bool {
	return s == VendorStatusActive || s == VendorStatusInactive
}
