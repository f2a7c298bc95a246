package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/models"
)

// VendorStore owns Vendor rows and their contacts.
type VendorStore struct {
	db *gorm.DB
}

func NewVendorStore(db *gorm.DB) *VendorStore { return &VendorStore{db: db} }

// VendorUpdate carries the updatable subset of Vendor; nil fields are left
// untouched.
type VendorUpdate struct {
	Name          *string
	Status        *string
	Website       *string
	LinkedIn      *string
	Notes         *string
	StreetAddress *string
	City          *string
	State         *string
	Country       *string
	Zipcode       *string
}

func (s *VendorStore) Create(v *models.Vendor) error {
	if strings.TrimSpace(v.Name) == "" {
		return validationErr("name", "required")
	}
	if v.Status == "" {
		v.Status = models.VendorStatusActive
	}
	if !models.ValidVendorStatus(v.Status) {
		return validationErr("status", "must_be_active_or_inactive")
	}
	var existing int64
	if err := s.db.Model(&models.Vendor{}).Where("name = ?", v.Name).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return conflictErr("vendor %q already exists", v.Name)
	}
	return s.db.Create(v).Error
}

func (s *VendorStore) Get(id uint) (*models.Vendor, error) {
	var v models.Vendor
	if err := s.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("vendor", id)
		}
		return nil, err
	}
	return &v, nil
}

// List returns all vendors, most recent first.
func (s *VendorStore) List() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := s.db.Order("id desc").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *VendorStore) Update(id uint, upd VendorUpdate) (*models.Vendor, error) {
	v, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, validationErr("name", "required")
		}
		fields["name"] = *upd.Name
	}
	if upd.Status != nil {
		if !models.ValidVendorStatus(*upd.Status) {
			return nil, validationErr("status", "must_be_active_or_inactive")
		}
		fields["status"] = *upd.Status
	}
	setString(fields, "website", upd.Website)
	setString(fields, "linked_in", upd.LinkedIn)
	setString(fields, "notes", upd.Notes)
	setString(fields, "street_address", upd.StreetAddress)
	setString(fields, "city", upd.City)
	setString(fields, "state", upd.State)
	setString(fields, "country", upd.Country)
	setString(fields, "zipcode", upd.Zipcode)
	if len(fields) == 0 {
		return v, nil
	}
	if err := s.db.Model(v).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a vendor with its contacts and addresses. Blocked while a
// submission references the vendor in any position of the chain, or while
// client links still exist.
func (s *VendorStore) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	var subs int64
	err := s.db.Model(&models.Submission{}).
		Where("vendor_id = ? OR prime_vendor_id = ? OR implementation_partner_id = ?", id, id, id).
		Count(&subs).Error
	if err != nil {
		return err
	}
	if subs > 0 {
		return conflictErr("vendor %d has %d dependent submissions", id, subs)
	}
	var links int64
	if err := s.db.Model(&models.ClientVendorLink{}).Where("vendor_id = ?", id).Count(&links).Error; err != nil {
		return err
	}
	if links > 0 {
		return conflictErr("vendor %d still has %d client links", id, links)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", id).Delete(&models.Contact{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vendor_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vendor{}, id).Error
	})
}

// Stats returns total/active/inactive vendor counts.
func (s *VendorStore) Stats() (total, active, inactive int64, err error) {
	if err = s.db.Model(&models.Vendor{}).Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = s.db.Model(&models.Vendor{}).Where("status = ?", models.VendorStatusActive).Count(&active).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = s.db.Model(&models.Vendor{}).Where("status = ?", models.VendorStatusInactive).Count(&inactive).Error; err != nil {
		return 0, 0, 0, err
	}
	return total, active, inactive, nil
}

// AddContact attaches a contact to an existing vendor.
func (s *VendorStore) AddContact(vendorID uint, c *models.Contact) error {
	if _, err := s.Get(vendorID); err != nil {
		return err
	}
	if strings.TrimSpace(c.FullName) == "" {
		return validationErr("full_name", "required")
	}
	c.VendorID = vendorID
	return s.db.Create(c).Error
}

// Contacts lists a vendor's contacts, most recent first.
func (s *VendorStore) Contacts(vendorID uint) ([]models.Contact, error) {
	if _, err := s.Get(vendorID); err != nil {
		return nil, err
	}
	var contacts []models.Contact
	if err := s.db.Where("vendor_id = ?", vendorID).Order("id desc").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// ContactUpdate carries the updatable subset of Contact.
type ContactUpdate struct {
	FullName    *string
	Email       *string
	Designation *string
	Phone       *string
	IsPrimary   *bool
}

func (s *VendorStore) UpdateContact(contactID uint, upd ContactUpdate) (*models.Contact, error) {
	var c models.Contact
	if err := s.db.First(&c, contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("contact", contactID)
		}
		return nil, err
	}
	fields := map[string]any{}
	if upd.FullName != nil {
		if strings.TrimSpace(*upd.FullName) == "" {
			return nil, validationErr("full_name", "required")
		}
		fields["full_name"] = *upd.FullName
	}
	setString(fields, "email", upd.Email)
	setString(fields, "designation", upd.Designation)
	setString(fields, "phone", upd.Phone)
	if upd.IsPrimary != nil {
		fields["is_primary"] = *upd.IsPrimary
	}
	if len(fields) == 0 {
		return &c, nil
	}
	if err := s.db.Model(&c).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *VendorStore) DeleteContact(contactID uint) error {
	res := s.db.Delete(&models.Contact{}, contactID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("contact", contactID)
	}
	return nil
}
