package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/models"
	"github.com/diewo77/vendor-tracker/internal/search"
)

// ClientStore owns Client rows and their delete/cascade rules.
type ClientStore struct {
	db *gorm.DB
}

func NewClientStore(db *gorm.DB) *ClientStore { return &ClientStore{db: db} }

// ClientUpdate carries the updatable subset of Client; nil fields are left
// untouched.
type ClientUpdate struct {
	Name          *string
	DomainID      *uint
	StreetAddress *string
	City          *string
	State         *string
	Country       *string
	Zipcode       *string
	ContactName   *string
	ContactEmail  *string
	ContactPhone  *string
}

// Create validates the required fields, resolves DomainID to its display
// name and inserts the client.
func (s *ClientStore) Create(c *models.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return validationErr("name", "required")
	}
	if c.DomainID != 0 {
		if int(c.DomainID) > len(models.Domains) {
			return validationErr("domain_id", "out_of_range")
		}
		c.DomainName = models.Domains[c.DomainID-1]
	}
	return s.db.Create(c).Error
}

func (s *ClientStore) Get(id uint) (*models.Client, error) {
	var c models.Client
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("client", id)
		}
		return nil, err
	}
	return &c, nil
}

// List returns all clients, most recent first.
func (s *ClientStore) List() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("id desc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Search applies a structured predicate built by the search package. State
// and city match as case-insensitive substrings against the client row;
// vendor_name is resolved through the link table so a client matches when
// any attached vendor's name contains the value.
func (s *ClientStore) Search(p search.Predicate) ([]models.Client, error) {
	q := s.db.Model(&models.Client{})
	if v, ok := p[search.FieldState]; ok {
		q = q.Where("lower(state) LIKE ?", likePattern(v))
	}
	if v, ok := p[search.FieldCity]; ok {
		q = q.Where("lower(city) LIKE ?", likePattern(v))
	}
	if v, ok := p[search.FieldVendorName]; ok {
		sub := s.db.Model(&models.ClientVendorLink{}).
			Select("client_vendor_links.client_id").
			Joins("JOIN vendors ON vendors.id = client_vendor_links.vendor_id").
			Where("lower(vendors.name) LIKE ?", likePattern(v))
		q = q.Where("id IN (?)", sub)
	}
	var clients []models.Client
	if err := q.Order("id desc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Update applies a partial update. An explicitly empty name is rejected;
// a changed DomainID re-resolves the domain name.
func (s *ClientStore) Update(id uint, upd ClientUpdate) (*models.Client, error) {
	c, err := s.Get(id)
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
	if upd.DomainID != nil {
		if int(*upd.DomainID) > len(models.Domains) {
			return nil, validationErr("domain_id", "out_of_range")
		}
		fields["domain_id"] = *upd.DomainID
		if *upd.DomainID != 0 {
			fields["domain_name"] = models.Domains[*upd.DomainID-1]
		} else {
			fields["domain_name"] = ""
		}
	}
	setString(fields, "street_address", upd.StreetAddress)
	setString(fields, "city", upd.City)
	setString(fields, "state", upd.State)
	setString(fields, "country", upd.Country)
	setString(fields, "zipcode", upd.Zipcode)
	setString(fields, "contact_name", upd.ContactName)
	setString(fields, "contact_email", upd.ContactEmail)
	setString(fields, "contact_phone", upd.ContactPhone)
	if len(fields) == 0 {
		return c, nil
	}
	if err := s.db.Model(c).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a client and its addresses. Blocked while submissions or
// vendor links still reference the client.
func (s *ClientStore) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	var subs int64
	if err := s.db.Model(&models.Submission{}).Where("client_id = ?", id).Count(&subs).Error; err != nil {
		return err
	}
	if subs > 0 {
		return conflictErr("client %d has %d dependent submissions", id, subs)
	}
	var links int64
	if err := s.db.Model(&models.ClientVendorLink{}).Where("client_id = ?", id).Count(&links).Error; err != nil {
		return err
	}
	if links > 0 {
		return conflictErr("client %d still has %d vendor links", id, links)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, id).Error
	})
}

// Stats returns the dashboard counts: total clients and how many have at
// least one vendor link.
func (s *ClientStore) Stats() (total, withVendors int64, err error) {
	if err = s.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = s.db.Model(&models.ClientVendorLink{}).Distinct("client_id").Count(&withVendors).Error
	if err != nil {
		return 0, 0, err
	}
	return total, withVendors, nil
}

func likePattern(v string) string {
	return "%" + strings.ToLower(v) + "%"
}

func setString(fields map[string]any, col string, v *string) {
	if v != nil {
		fields[col] = *v
	}
}
