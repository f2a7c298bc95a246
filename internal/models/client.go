package models

import "time"

// Client is an end customer a consultant is ultimately placed with.
// The inlined address fields mirror the primary location shown in list
// views; additional locations live in the Address table.
type Client struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null;index" json:"name"`
	DomainID      uint      `json:"domain_id"`
	DomainName    string    `json:"domain_name"`
	StreetAddress string    `json:"street_address"`
	City          string    `gorm:"index" json:"city"`
	State         string    `gorm:"index" json:"state"`
	Country       string    `json:"country"`
	Zipcode       string    `json:"zipcode"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone"`
	CreatedAt     time.Time `json:"created_at"`
}

// Domains is the fixed industry list clients may reference. DomainID is a
// 1-based index into this slice.
var Domains = []string{
	"Information Technology",
	"Healthcare",
	"Finance",
	"Insurance",
	"Retail",
	"Manufacturing",
	"Telecom",
	"Government",
	"Education",
	"Other",
}
