package store

import (
	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/models"
)

// LinkStore is the single authority for the role-qualified client/vendor
// relationship. Role-filtered lookups go through RoleLinks rather than ad-hoc
// string comparison at call sites.
type LinkStore struct {
	db      *gorm.DB
	clients *ClientStore
	vendors *VendorStore
}

func NewLinkStore(db *gorm.DB) *LinkStore {
	return &LinkStore{db: db, clients: NewClientStore(db), vendors: NewVendorStore(db)}
}

// Attach creates a link between a client and a vendor under a role. A second
// attach of the same (client, vendor, role) triple conflicts; the same pair
// under a different role is fine.
func (s *LinkStore) Attach(clientID, vendorID uint, role string) (*models.ClientVendorLink, error) {
	if !models.ValidRole(role) {
		return nil, validationErr("role", "unknown")
	}
	if _, err := s.clients.Get(clientID); err != nil {
		return nil, err
	}
	if _, err := s.vendors.Get(vendorID); err != nil {
		return nil, err
	}
	link := models.ClientVendorLink{ClientID: clientID, VendorID: vendorID, Role: role}
	// The insert itself decides the race: the unique index on
	// (client_id, vendor_id, role) makes the losing attach fail.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.ClientVendorLink{}).
			Where("client_id = ? AND vendor_id = ? AND role = ?", clientID, vendorID, role).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return conflictErr("vendor %d already attached to client %d as %s", vendorID, clientID, role)
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Detach removes every role link between the pair. Detach is by pair, not by
// role, matching the coarse-grained caller contract. A pair with no links is
// a NotFoundError, like any other lookup of a missing row.
func (s *LinkStore) Detach(clientID, vendorID uint) error {
	if _, err := s.clients.Get(clientID); err != nil {
		return err
	}
	if _, err := s.vendors.Get(vendorID); err != nil {
		return err
	}
	res := s.db.Where("client_id = ? AND vendor_id = ?", clientID, vendorID).
		Delete(&models.ClientVendorLink{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("link", vendorID)
	}
	return nil
}

// LinksForClient returns the client's links with the vendor preloaded,
// ordered by role then vendor name.
func (s *LinkStore) LinksForClient(clientID uint) ([]models.ClientVendorLink, error) {
	if _, err := s.clients.Get(clientID); err != nil {
		return nil, err
	}
	var links []models.ClientVendorLink
	err := s.db.Preload("Vendor").
		Joins("JOIN vendors ON vendors.id = client_vendor_links.vendor_id").
		Where("client_vendor_links.client_id = ?", clientID).
		Order("client_vendor_links.role asc, vendors.name asc").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// LinksForVendor is the symmetric query, ordered by role then client name.
func (s *LinkStore) LinksForVendor(vendorID uint) ([]models.ClientVendorLink, error) {
	if _, err := s.vendors.Get(vendorID); err != nil {
		return nil, err
	}
	var links []models.ClientVendorLink
	err := s.db.Preload("Client").
		Joins("JOIN clients ON clients.id = client_vendor_links.client_id").
		Where("client_vendor_links.vendor_id = ?", vendorID).
		Order("client_vendor_links.role asc, clients.name asc").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// RoleLinks returns only the client's links matching role. Used to populate
// prime vendor / implementation partner choices when building a submission.
func (s *LinkStore) RoleLinks(clientID uint, role string) ([]models.ClientVendorLink, error) {
	if !models.ValidRole(role) {
		return nil, validationErr("role", "unknown")
	}
	if _, err := s.clients.Get(clientID); err != nil {
		return nil, err
	}
	var links []models.ClientVendorLink
	err := s.db.Preload("Vendor").
		Joins("JOIN vendors ON vendors.id = client_vendor_links.vendor_id").
		Where("client_vendor_links.client_id = ? AND client_vendor_links.role = ?", clientID, role).
		Order("vendors.name asc").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// HasRoleLink reports whether a link with the exact (client, vendor, role)
// triple exists.
func (s *LinkStore) HasRoleLink(clientID, vendorID uint, role string) (bool, error) {
	var n int64
	err := s.db.Model(&models.ClientVendorLink{}).
		Where("client_id = ? AND vendor_id = ? AND role = ?", clientID, vendorID, role).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
