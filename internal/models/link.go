package models

import "time"

// Roles a vendor can hold toward a client.
const (
	RoleVendor                = "Vendor"
	RolePrimeVendor           = "Prime Vendor"
	RoleImplementationPartner = "Implementation Partner"
)

// ClientVendorLink is the role-qualified many-to-many between clients and
// vendors. A (client, vendor) pair may appear once per role; role changes
// are modeled as detach + attach, never an in-place update.
type ClientVendorLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;uniqueIndex:idx_client_vendor_role" json:"client_id"`
	VendorID  uint      `gorm:"not null;uniqueIndex:idx_client_vendor_role" json:"vendor_id"`
	Role      string    `gorm:"not null;uniqueIndex:idx_client_vendor_role" json:"role"`
	Client    Client    `gorm:"foreignKey:ClientID" json:"-"`
	Vendor    Vendor    `gorm:"foreignKey:VendorID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the link roles.
func ValidRole(role string) bool {
	switch role {
	case RoleVendor, RolePrimeVendor, RoleImplementationPartner:
		return true
	}
	return false
}
