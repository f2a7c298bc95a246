package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/models"
)

// SubmissionStore appends and queries submission fact records. Once created,
// only status and comments are updatable.
type SubmissionStore struct {
	db    *gorm.DB
	links *LinkStore
}

func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db, links: NewLinkStore(db)}
}

// preloaded loads every foreign reference so the projector can
// denormalize display names without secondary lookups.
func (s *SubmissionStore) preloaded() *gorm.DB {
	return s.db.
		Preload("Consultant").
		Preload("Skill").
		Preload("Client").
		Preload("Vendor").
		Preload("PrimeVendor").
		Preload("ImplementationPartner").
		Preload("Marketer")
}

// Create validates that every reference resolves and that the optional prime
// vendor / implementation partner each correspond to an existing link of the
// matching role between the submission's client and that vendor.
func (s *SubmissionStore) Create(sub *models.Submission) error {
	if err := s.mustExist("consultant", &models.Consultant{}, sub.ConsultantID); err != nil {
		return err
	}
	if err := s.mustExist("skill", &models.Skill{}, sub.SkillID); err != nil {
		return err
	}
	if err := s.mustExist("client", &models.Client{}, sub.ClientID); err != nil {
		return err
	}
	if err := s.mustExist("vendor", &models.Vendor{}, sub.VendorID); err != nil {
		return err
	}
	if err := s.mustExist("marketer", &models.Marketer{}, sub.MarketerID); err != nil {
		return err
	}
	if sub.PrimeVendorID != nil {
		ok, err := s.links.HasRoleLink(sub.ClientID, *sub.PrimeVendorID, models.RolePrimeVendor)
		if err != nil {
			return err
		}
		if !ok {
			return validationErr("prime_vendor_id", "no Prime Vendor link with this client")
		}
	}
	if sub.ImplementationPartnerID != nil {
		ok, err := s.links.HasRoleLink(sub.ClientID, *sub.ImplementationPartnerID, models.RoleImplementationPartner)
		if err != nil {
			return err
		}
		if !ok {
			return validationErr("implementation_partner_id", "no Implementation Partner link with this client")
		}
	}
	if strings.TrimSpace(sub.Status) == "" {
		sub.Status = models.SubmissionStatusPending
	}
	if sub.SubmissionDate.IsZero() {
		sub.SubmissionDate = time.Now()
	}
	return s.db.Create(sub).Error
}

func (s *SubmissionStore) Get(id uint) (*models.Submission, error) {
	var sub models.Submission
	if err := s.preloaded().First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("submission", id)
		}
		return nil, err
	}
	return &sub, nil
}

// List returns all submissions, most recent first, fully preloaded.
func (s *SubmissionStore) List() ([]models.Submission, error) {
	var subs []models.Submission
	if err := s.preloaded().Order("id desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubmissionStore) ByClient(clientID uint) ([]models.Submission, error) {
	return s.listWhere("client_id = ?", clientID)
}

// ByVendor matches the vendor in any position of the chain.
func (s *SubmissionStore) ByVendor(vendorID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.preloaded().
		Where("vendor_id = ? OR prime_vendor_id = ? OR implementation_partner_id = ?", vendorID, vendorID, vendorID).
		Order("id desc").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubmissionStore) ByConsultant(consultantID uint) ([]models.Submission, error) {
	return s.listWhere("consultant_id = ?", consultantID)
}

func (s *SubmissionStore) ByMarketer(marketerID uint) ([]models.Submission, error) {
	return s.listWhere("marketer_id = ?", marketerID)
}

func (s *SubmissionStore) listWhere(cond string, id uint) ([]models.Submission, error) {
	var subs []models.Submission
	if err := s.preloaded().Where(cond, id).Order("id desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Update touches status and/or comments only.
func (s *SubmissionStore) Update(id uint, status, comments *string) (*models.Submission, error) {
	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if status != nil {
		if strings.TrimSpace(*status) == "" {
			return nil, validationErr("status", "required")
		}
		fields["status"] = *status
	}
	if comments != nil {
		fields["comments"] = *comments
	}
	if len(fields) == 0 {
		return sub, nil
	}
	if err := s.db.Model(&models.Submission{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Report counts submissions per status.
func (s *SubmissionStore) Report() (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := s.db.Model(&models.Submission{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}

func (s *SubmissionStore) mustExist(entity string, model any, id uint) error {
	if id == 0 {
		return validationErr(entity+"_id", "required")
	}
	err := s.db.First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundErr(entity, id)
	}
	return err
}
