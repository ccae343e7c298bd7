package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierOffer is one supplier's standing offer for a catalog item.
// Seeded on first boot; editable by admins only.
type SupplierOffer struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Item         string          `gorm:"type:varchar(100);not null;index:idx_offer_item_name,unique" json:"item"` // lowercase item key
	Name         string          `gorm:"type:varchar(255);not null;index:idx_offer_item_name,unique" json:"name"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	Availability int             `gorm:"type:int;not null;default:0" json:"availability"`
	LeadTimeDays int             `gorm:"type:int;not null;default:0" json:"lead_time_days"`
	Rating       float64         `gorm:"type:decimal(3,1);not null;default:0" json:"rating"` // 0-5
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DepartmentBudget is one department's ledger snapshot.
// Invariant enforced by the service layer: Remaining = Total - Used.
type DepartmentBudget struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Department string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"department"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total"`
	Used       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"used"`
	Remaining  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"remaining"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ApprovalLimit is one department's approval ladder.
// Invariant enforced by the service layer: Manager < Director < VP.
type ApprovalLimit struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Department string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"department"`
	Manager    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"manager"`
	Director   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"director"`
	VP         decimal.Decimal `gorm:"column:vp;type:decimal(18,4);not null" json:"vp"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// InventoryLevel is the stock position for one catalog item.
type InventoryLevel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Item      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"item"` // lowercase item key
	Current   int       `gorm:"type:int;not null;default:0" json:"current"`
	Minimum   int       `gorm:"type:int;not null;default:0" json:"minimum"`
	Maximum   int       `gorm:"type:int;not null;default:0" json:"maximum"`
	OnOrder   int       `gorm:"type:int;not null;default:0" json:"on_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
