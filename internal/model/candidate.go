package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Candidate pipeline status constants
const (
	CandidateNew       = "New"
	CandidateScreening = "Screening"
	CandidateInterview = "Interview"
	CandidateHired     = "Hired"
	CandidateRejected  = "Rejected"
)

// Candidate represents one applicant in the recruiting pipeline.
// Score and Status are mutated in place by the screening decision.
type Candidate struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Email           string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Skills          string         `gorm:"type:jsonb;not null;default:'[]'" json:"skills"` // JSON array of skill names
	ExperienceYears float64        `gorm:"type:decimal(5,2);default:0" json:"experience_years"`
	Location        string         `gorm:"type:varchar(255)" json:"location"`
	Score           float64        `gorm:"type:decimal(5,2);default:0" json:"score"` // 0-100, set by screening
	Status          string         `gorm:"type:varchar(20);not null;default:'New';index" json:"status"`
	ScreenedAt      *time.Time     `json:"screened_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
