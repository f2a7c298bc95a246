package models

import "time"

// Client address types.
const (
	AddressTypeHome    = "home"
	AddressTypeOffice  = "office"
	AddressTypeBilling = "billing"
	AddressTypeOther   = "other"
)

// Address belongs to exactly one of Client or Vendor; the store rejects rows
// that set both owners or neither. Deleting the owner removes its addresses.
type Address struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClientID      *uint     `gorm:"index" json:"client_id,omitempty"`
	VendorID      *uint     `gorm:"index" json:"vendor_id,omitempty"`
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	Zipcode       string    `json:"zipcode"`
	AddressType   string    `json:"address_type"`
	IsPrimary     bool      `json:"is_primary"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidAddressType reports whether t is a known client address type.
func ValidAddressType(t string) bool {
	switch t {
	case AddressTypeHome, AddressTypeOffice, AddressTypeBilling, AddressTypeOther:
		return true
	}
	return false
}
