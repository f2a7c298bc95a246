package models

import "time"

// Known vendor-response statuses. The set is extensible: unknown non-empty
// values are stored as-is so new pipeline stages don't require a migration.
const (
	SubmissionStatusPending   = "pending"
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusInterview = "interview"
	SubmissionStatusPlaced    = "placed"
	SubmissionStatusRejected  = "rejected"
)

// Submission records that a consultant was proposed to a client through a
// vendor chain for a given skill. PrimeVendorID and ImplementationPartnerID
// must correspond to a ClientVendorLink of the matching role for the same
// client; only Status and Comments may change after creation.
type Submission struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	ConsultantID            uint      `gorm:"not null;index" json:"consultant_id"`
	SkillID                 uint      `gorm:"not null" json:"skill_id"`
	ClientID                uint      `gorm:"not null;index" json:"client_id"`
	VendorID                uint      `gorm:"not null;index" json:"vendor_id"`
	PrimeVendorID           *uint     `json:"prime_vendor_id,omitempty"`
	ImplementationPartnerID *uint     `json:"implementation_partner_id,omitempty"`
	MarketerID              uint      `gorm:"not null" json:"marketer_id"`
	Comments                string    `json:"comments"`
	Status                  string    `gorm:"not null;default:'pending'" json:"status"`
	SubmissionDate          time.Time `json:"submission_date"`
	CreatedAt               time.Time `json:"created_at"`

	Consultant            Consultant `gorm:"foreignKey:ConsultantID" json:"-"`
	Skill                 Skill      `gorm:"foreignKey:SkillID" json:"-"`
	Client                Client     `gorm:"foreignKey:ClientID" json:"-"`
	Vendor                Vendor     `gorm:"foreignKey:VendorID" json:"-"`
	PrimeVendor           *Vendor    `gorm:"foreignKey:PrimeVendorID" json:"-"`
	ImplementationPartner *Vendor    `gorm:"foreignKey:ImplementationPartnerID" json:"-"`
	Marketer              Marketer   `gorm:"foreignKey:MarketerID" json:"-"`
}
