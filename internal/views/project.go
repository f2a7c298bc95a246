// Package views shapes entity and relationship data into the read-optimized
// payloads handlers return. Pure transforms over data already fetched; no
// errors, no DB access.
package views

import (
	"time"

	"github.com/diewo77/vendor-tracker/internal/models"
)

// Summary is the id + display name row used by list views.
type Summary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ClientSummaries(clients []models.Client) []Summary {
	out := make([]Summary, len(clients))
	for i, c := range clients {
		out[i] = Summary{ID: c.ID, Name: c.Name}
	}
	return out
}

func VendorSummaries(vendors []models.Vendor) []Summary {
	out := make([]Summary, len(vendors))
	for i, v := range vendors {
		out[i] = Summary{ID: v.ID, Name: v.Name}
	}
	return out
}

// LinkView is a ClientVendorLink annotated with the counterpart's display
// name.
type LinkView struct {
	ID              uint      `json:"id"`
	ClientID        uint      `json:"client_id"`
	VendorID        uint      `json:"vendor_id"`
	Role            string    `json:"role"`
	CounterpartName string    `json:"counterpart_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// ClientLinks annotates links fetched for a client (vendor preloaded).
func ClientLinks(links []models.ClientVendorLink) []LinkView {
	out := make([]LinkView, len(links))
	for i, l := range links {
		out[i] = linkView(l, l.Vendor.Name)
	}
	return out
}

// VendorLinks annotates links fetched for a vendor (client preloaded).
func VendorLinks(links []models.ClientVendorLink) []LinkView {
	out := make([]LinkView, len(links))
	for i, l := range links {
		out[i] = linkView(l, l.Client.Name)
	}
	return out
}

func linkView(l models.ClientVendorLink, counterpart string) LinkView {
	return LinkView{
		ID:              l.ID,
		ClientID:        l.ClientID,
		VendorID:        l.VendorID,
		Role:            l.Role,
		CounterpartName: counterpart,
		CreatedAt:       l.CreatedAt,
	}
}

// ClientDetail is the full client payload: entity plus resolved addresses
// and annotated vendor links.
type ClientDetail struct {
	models.Client
	Addresses []models.Address `json:"addresses"`
	Vendors   []LinkView       `json:"vendors"`
}

func NewClientDetail(c models.Client, addrs []models.Address, links []models.ClientVendorLink) ClientDetail {
	return ClientDetail{Client: c, Addresses: addrs, Vendors: ClientLinks(links)}
}

// VendorDetail is the full vendor payload with contacts included.
type VendorDetail struct {
	models.Vendor
	Addresses []models.Address `json:"addresses"`
	Contacts  []models.Contact `json:"contacts"`
	Clients   []LinkView       `json:"clients"`
}

func NewVendorDetail(v models.Vendor, addrs []models.Address, contacts []models.Contact, links []models.ClientVendorLink) VendorDetail {
	return VendorDetail{Vendor: v, Addresses: addrs, Contacts: contacts, Clients: VendorLinks(links)}
}

// SubmissionRow is a submission denormalized with display names for every
// foreign reference so callers never need a secondary lookup.
type SubmissionRow struct {
	ID                        uint      `json:"id"`
	ConsultantID              uint      `json:"consultant_id"`
	ConsultantName            string    `json:"consultant_name"`
	SkillID                   uint      `json:"skill_id"`
	SkillName                 string    `json:"skill_name"`
	ClientID                  uint      `json:"client_id"`
	ClientName                string    `json:"client_name"`
	VendorID                  uint      `json:"vendor_id"`
	VendorName                string    `json:"vendor_name"`
	PrimeVendorID             *uint     `json:"prime_vendor_id,omitempty"`
	PrimeVendorName           string    `json:"prime_vendor_name,omitempty"`
	ImplementationPartnerID   *uint     `json:"implementation_partner_id,omitempty"`
	ImplementationPartnerName string    `json:"implementation_partner_name,omitempty"`
	MarketerID                uint      `json:"marketer_id"`
	MarketerName              string    `json:"marketer_name"`
	Comments                  string    `json:"comments"`
	Status                    string    `json:"status"`
	SubmissionDate            time.Time `json:"submission_date"`
}

// SubmissionRows expects submissions with all references preloaded.
func SubmissionRows(subs []models.Submission) []SubmissionRow {
	out := make([]SubmissionRow, len(subs))
	for i, s := range subs {
		out[i] = NewSubmissionRow(s)
	}
	return out
}

func NewSubmissionRow(s models.Submission) SubmissionRow {
	row := SubmissionRow{
		ID:                      s.ID,
		ConsultantID:            s.ConsultantID,
		ConsultantName:          s.Consultant.DisplayName(),
		SkillID:                 s.SkillID,
		SkillName:               s.Skill.Name,
		ClientID:                s.ClientID,
		ClientName:              s.Client.Name,
		VendorID:                s.VendorID,
		VendorName:              s.Vendor.Name,
		PrimeVendorID:           s.PrimeVendorID,
		ImplementationPartnerID: s.ImplementationPartnerID,
		MarketerID:              s.MarketerID,
		MarketerName:            s.Marketer.Name,
		Comments:                s.Comments,
		Status:                  s.Status,
		SubmissionDate:          s.SubmissionDate,
	}
	if s.PrimeVendor != nil {
		row.PrimeVendorName = s.PrimeVendor.Name
	}
	if s.ImplementationPartner != nil {
		row.ImplementationPartnerName = s.ImplementationPartner.Name
	}
	return row
}
