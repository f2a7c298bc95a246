package models

import "time"

// Consultant is the person being marketed. Kept to the fields the submission
// flow needs; full onboarding data lives outside this service.
type Consultant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	Phone     string    `json:"phone"`
	SkillID   uint      `json:"skill_id"`
	Skill     Skill     `gorm:"foreignKey:SkillID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName is the name shown in submission rows.
func (c Consultant) DisplayName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Skill is a marketable skill referenced by consultants and submissions.
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

// Marketer is the internal person who owns a submission.
type Marketer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
