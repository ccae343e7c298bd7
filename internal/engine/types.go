package engine

import (
	"github.com/shopspring/decimal"
)

// Overall decision status constants
const (
	StatusApproved        = "approved"
	StatusPendingApproval = "pending_approval"
	StatusRejected        = "rejected"
)

// Approval tier constants, ordered from lowest to highest authority
const (
	TierManager  = "Manager"
	TierDirector = "Director"
	TierVP       = "VP"
	TierCEO      = "CEO"
)

// Request is a procurement request as submitted by a requester.
// Immutable once handed to the engine.
type Request struct {
	Item              string          `json:"item"`
	Quantity          int             `json:"quantity"`
	Department        string          `json:"department"`
	Justification     string          `json:"justification"`
	PreferredSupplier string          `json:"preferred_supplier,omitempty"`
	MaxBudget         decimal.Decimal `json:"max_budget,omitempty"` // zero = no cap
}

// SupplierOffer is a single supplier's offer for an item. Never mutated.
type SupplierOffer struct {
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Availability int             `json:"availability"`
	LeadTimeDays int             `json:"lead_time_days"`
	Rating       float64         `json:"rating"` // 0-5
}

// SupplierResult lists the offers able to cover the requested quantity.
type SupplierResult struct {
	Item              string          `json:"item"`
	QuantityRequested int             `json:"quantity_requested"`
	Suppliers         []SupplierOffer `json:"suppliers"`
	TotalFound        int             `json:"total_suppliers_found"`
}

// CostPlan is the outcome of cost optimization across suitable suppliers.
type CostPlan struct {
	Supplier         string          `json:"recommended_supplier"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	Quantity         int             `json:"quantity"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
	LeadTimeDays     int             `json:"lead_time_days"`
	SupplierRating   float64         `json:"supplier_rating"`
}

// BudgetLedger is a read-only snapshot of one department's budget.
// Invariant: Remaining = Total - Used.
type BudgetLedger struct {
	Total     decimal.Decimal `json:"total"`
	Used      decimal.Decimal `json:"used"`
	Remaining decimal.Decimal `json:"remaining"`
}

// BudgetResult is the outcome of a budget availability check.
type BudgetResult struct {
	Department      string          `json:"department"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	Ledger          BudgetLedger    `json:"budget_status"`
	Approved        bool            `json:"approved"`
	Shortfall       decimal.Decimal `json:"shortfall"`
	UtilizationRate float64         `json:"utilization_rate"`
}

// ApprovalMatrix holds one department's dollar ladder.
// Invariant: Manager < Director < VP.
type ApprovalMatrix struct {
	Manager  decimal.Decimal `json:"manager"`
	Director decimal.Decimal `json:"director"`
	VP       decimal.Decimal `json:"vp"`
}

// ApprovalResult is the outcome of approval tier routing.
type ApprovalResult struct {
	Amount        decimal.Decimal `json:"amount"`
	Department    string          `json:"department"`
	RequiredTier  string          `json:"required_approval"`
	Limits        ApprovalMatrix  `json:"approval_limits"`
	EstimatedTime string          `json:"estimated_approval_time"`
	AutoApproved  bool            `json:"auto_approved"`
}

// InventoryRecord is the stock position of one item.
// Invariant: 0 <= Current <= Maximum.
type InventoryRecord struct {
	Current int `json:"current"`
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
	OnOrder int `json:"on_order"`
}

// InventoryResult is the outcome of a reorder check.
type InventoryResult struct {
	Item                   string  `json:"item"`
	CurrentStock           int     `json:"current_stock"`
	MinimumRequired        int     `json:"minimum_required"`
	MaximumCapacity        int     `json:"maximum_capacity"`
	OnOrder                int     `json:"on_order"`
	ReorderNeeded          bool    `json:"reorder_needed"`
	SuggestedOrderQuantity int     `json:"suggested_order_quantity"`
	StockStatus            string  `json:"stock_status"` // Low, Adequate
	StockLevelPercent      float64 `json:"stock_level_percentage"`
}

// Recommendation is one actionable message attached to a decision.
type Recommendation struct {
	Type     string `json:"type"`     // inventory, budget, cost, timeline, approval, supplier
	Priority string `json:"priority"` // high, medium, good, info
	Message  string `json:"message"`
}

// Decision is the composite result of evaluating one procurement request.
// Created once, never mutated; the caller owns any history it is appended to.
type Decision struct {
	Request         Request          `json:"request_details"`
	Inventory       InventoryResult  `json:"inventory_analysis"`
	Suppliers       SupplierResult   `json:"supplier_analysis"`
	Cost            *CostPlan        `json:"cost_optimization,omitempty"` // nil when no supplier fits
	Budget          BudgetResult     `json:"budget_validation"`
	Approval        ApprovalResult   `json:"approval_requirements"`
	CapExceeded     bool             `json:"cap_exceeded"`
	Recommendations []Recommendation `json:"recommendations"`
	OverallStatus   string           `json:"overall_status"`
}

// CandidateProfile is the screening input for one candidate.
type CandidateProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Location        string   `json:"location"`
}

// Screening recommendation constants
const (
	RecommendInterview = "interview"
	RecommendReject    = "reject"
)

// ScreeningResult is the scored outcome for one candidate.
type ScreeningResult struct {
	Score            float64  `json:"score"` // clamped to [0, 100]
	ExperiencePoints float64  `json:"experience_points"`
	SkillPoints      float64  `json:"skill_points"`
	LocationBonus    float64  `json:"location_bonus"`
	Jitter           float64  `json:"jitter"`
	MatchedSkills    []string `json:"matched_skills"`
	Recommendation   string   `json:"recommendation"` // interview, reject
}
