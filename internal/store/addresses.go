package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/models"
)

// AddressStore owns the owner-polymorphic Address table. Every row belongs
// to exactly one client or one vendor.
type AddressStore struct {
	db *gorm.DB
}

func NewAddressStore(db *gorm.DB) *AddressStore { return &AddressStore{db: db} }

// Create validates the XOR ownership rule and that the owner exists.
func (s *AddressStore) Create(a *models.Address) error {
	switch {
	case a.ClientID != nil && a.VendorID != nil:
		return validationErr("owner", "client_id and vendor_id are mutually exclusive")
	case a.ClientID != nil:
		if err := s.db.First(&models.Client{}, *a.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("client", *a.ClientID)
			}
			return err
		}
		if a.AddressType != "" && !models.ValidAddressType(a.AddressType) {
			return validationErr("address_type", "unknown")
		}
	case a.VendorID != nil:
		if err := s.db.First(&models.Vendor{}, *a.VendorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("vendor", *a.VendorID)
			}
			return err
		}
	default:
		return validationErr("owner", "client_id or vendor_id required")
	}
	return s.db.Create(a).Error
}

// ForClient lists a client's addresses, most recent first.
func (s *AddressStore) ForClient(clientID uint) ([]models.Address, error) {
	if err := s.db.First(&models.Client{}, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("client", clientID)
		}
		return nil, err
	}
	return s.list("client_id = ?", clientID)
}

// ForVendor lists a vendor's addresses, most recent first.
func (s *AddressStore) ForVendor(vendorID uint) ([]models.Address, error) {
	if err := s.db.First(&models.Vendor{}, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("vendor", vendorID)
		}
		return nil, err
	}
	return s.list("vendor_id = ?", vendorID)
}

func (s *AddressStore) list(cond string, id uint) ([]models.Address, error) {
	var addrs []models.Address
	if err := s.db.Where(cond, id).Order("id desc").Find(&addrs).Error; err != nil {
		return nil, err
	}
	return addrs, nil
}

// AddressUpdate carries the updatable subset of Address. Ownership never
// changes after creation.
type AddressUpdate struct {
	StreetAddress *string
	City          *string
	State         *string
	Country       *string
	Zipcode       *string
	AddressType   *string
	IsPrimary     *bool
}

func (s *AddressStore) Update(id uint, upd AddressUpdate) (*models.Address, error) {
	var a models.Address
	if err := s.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("address", id)
		}
		return nil, err
	}
	fields := map[string]any{}
	if upd.AddressType != nil {
		if a.ClientID != nil && !models.ValidAddressType(*upd.AddressType) {
			return nil, validationErr("address_type", "unknown")
		}
		fields["address_type"] = *upd.AddressType
	}
	setString(fields, "street_address", upd.StreetAddress)
	setString(fields, "city", upd.City)
	setString(fields, "state", upd.State)
	setString(fields, "country", upd.Country)
	setString(fields, "zipcode", upd.Zipcode)
	if upd.IsPrimary != nil {
		fields["is_primary"] = *upd.IsPrimary
	}
	if len(fields) == 0 {
		return &a, nil
	}
	if err := s.db.Model(&a).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AddressStore) Delete(id uint) error {
	res := s.db.Delete(&models.Address{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("address", id)
	}
	return nil
}
