package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/models"
)

// ReferenceStore handles the small lookup entities a submission references:
// skills, marketers and consultants.
type ReferenceStore struct {
	db *gorm.DB
}

func NewReferenceStore(db *gorm.DB) *ReferenceStore { return &ReferenceStore{db: db} }

func (s *ReferenceStore) AddSkill(sk *models.Skill) error {
	if strings.TrimSpace(sk.Name) == "" {
		return validationErr("name", "required")
	}
	var n int64
	if err := s.db.Model(&models.Skill{}).Where("lower(name) = lower(?)", sk.Name).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return conflictErr("skill %q already exists", sk.Name)
	}
	return s.db.Create(sk).Error
}

// Skills lists skills name-ordered (they populate dropdowns, not tables).
func (s *ReferenceStore) Skills() ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.db.Order("name asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *ReferenceStore) AddMarketer(m *models.Marketer) error {
	if strings.TrimSpace(m.Name) == "" {
		return validationErr("name", "required")
	}
	return s.db.Create(m).Error
}

func (s *ReferenceStore) Marketers() ([]models.Marketer, error) {
	var ms []models.Marketer
	if err := s.db.Order("id desc").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

// AddConsultant rejects duplicate emails with a conflict, matching the
// legacy bulk-add behavior.
func (s *ReferenceStore) AddConsultant(c *models.Consultant) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return validationErr("first_name", "required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return validationErr("email", "required")
	}
	var n int64
	if err := s.db.Model(&models.Consultant{}).Where("lower(email) = lower(?)", c.Email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return conflictErr("consultant with email %q already exists", c.Email)
	}
	if c.SkillID != 0 {
		if err := s.db.First(&models.Skill{}, c.SkillID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("skill", c.SkillID)
			}
			return err
		}
	}
	return s.db.Create(c).Error
}

func (s *ReferenceStore) Consultants() ([]models.Consultant, error) {
	var cs []models.Consultant
	if err := s.db.Preload("Skill").Order("id desc").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *ReferenceStore) GetConsultant(id uint) (*models.Consultant, error) {
	var c models.Consultant
	if err := s.db.Preload("Skill").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("consultant", id)
		}
		return nil, err
	}
	return &c, nil
}
