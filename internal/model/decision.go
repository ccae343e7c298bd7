package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Overall decision status constants (mirrors engine statuses)
const (
	DecisionApproved = "approved"
	DecisionPending  = "pending_approval"
	DecisionRejected = "rejected"
)

// Decision is one evaluated procurement request and its outcome.
// Rows are append-only: a decision is never updated after creation.
type Decision struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestCode   string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"request_code"` // PRQ-XXXXXXXX
	Item          string     `gorm:"type:varchar(100);not null;index" json:"item"`
	Quantity      int        `gorm:"type:int;not null" json:"quantity"`
	Department    string     `gorm:"type:varchar(100);not null;index" json:"department"`
	Justification string     `gorm:"type:text;not null" json:"justification"`
	RequestedBy   *uuid.UUID `gorm:"type:uuid;index" json:"requested_by"`
	Requester     *User      `gorm:"foreignKey:RequestedBy" json:"requester,omitempty"`

	Supplier         string          `gorm:"type:varchar(255)" json:"supplier"` // empty when no supplier fits
	UnitPrice        decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"unit_price"`
	TotalCost        decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"total_cost"`
	PotentialSavings decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"potential_savings"`
	LeadTimeDays     int             `gorm:"type:int;default:0" json:"lead_time_days"`

	BudgetApproved bool            `gorm:"not null" json:"budget_approved"`
	Shortfall      decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"shortfall"`
	RequiredTier   string          `gorm:"type:varchar(20);not null" json:"required_tier"`
	AutoApproved   bool            `gorm:"not null" json:"auto_approved"`
	Status         string          `gorm:"type:varchar(30);not null;index" json:"status"`

	Result    string    `gorm:"type:jsonb;not null" json:"result"` // Full engine decision snapshot
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
