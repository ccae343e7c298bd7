package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// ScreeningRules configures the candidate scorer. All weights are points.
type ScreeningRules struct {
	RequiredSkills     []string `json:"required_skills"`
	PreferredLocations []string `json:"preferred_locations"`
	ExperienceWeight   float64  `json:"experience_weight"` // points per year
	ExperienceCap      float64  `json:"experience_cap"`
	SkillWeight        float64  `json:"skill_weight"` // points at 100% match
	LocationBonus      float64  `json:"location_bonus"`
	JitterMax          float64  `json:"jitter_max"`
	InterviewThreshold float64  `json:"interview_threshold"` // score must exceed this
}

// Config carries the lookup tables the engine consumes. The engine treats it
// as a read-only snapshot; callers rebuild it when reference data changes.
type Config struct {
	Catalog          map[string][]SupplierOffer
	Budgets          map[string]BudgetLedger
	ApprovalMatrices map[string]ApprovalMatrix
	DefaultMatrix    ApprovalMatrix
	Inventory        map[string]InventoryRecord
	Screening        ScreeningRules
}

// Engine evaluates procurement requests and screens candidates.
// It holds no mutable state besides the injected random source.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// New builds an Engine over the given config. A nil rng falls back to a
// time-seeded source; tests inject a fixed seed for reproducible jitter.
func New(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{cfg: cfg, rng: rng}
}

// Evaluate runs the full decision pipeline for one request:
// inventory check, supplier search, cost optimization, budget validation,
// approval routing, then recommendations and overall status.
func (e *Engine) Evaluate(req Request) Decision {
	inventory := e.CheckInventory(req.Item)
	suppliers := e.FindSuppliers(req.Item, req.Quantity)

	d := Decision{
		Request:   req,
		Inventory: inventory,
		Suppliers: suppliers,
	}

	cost, err := e.OptimizeCost(suppliers.Suppliers, req.Quantity, req.PreferredSupplier)
	if err != nil {
		// No supplier can fulfill the quantity. The request cannot proceed,
		// independent of budget state.
		d.Budget = e.CheckBudget(req.Department, decimal.Zero)
		d.Approval = e.CheckApproval(decimal.Zero, req.Department)
		d.OverallStatus = StatusRejected
		if inventory.ReorderNeeded {
			d.Recommendations = append(d.Recommendations, Recommendation{
				Type:     "inventory",
				Priority: "high",
				Message:  fmt.Sprintf("URGENT: stock level critical (%s)", inventory.StockStatus),
			})
		}
		d.Recommendations = append(d.Recommendations, Recommendation{
			Type:     "supplier",
			Priority: "high",
			Message:  fmt.Sprintf("No supplier can fulfill %d units of %s", req.Quantity, req.Item),
		})
		return d
	}

	d.Cost = &cost
	d.Budget = e.CheckBudget(req.Department, cost.TotalCost)
	d.Approval = e.CheckApproval(cost.TotalCost, req.Department)

	if req.MaxBudget.IsPositive() && cost.TotalCost.GreaterThan(req.MaxBudget) {
		d.CapExceeded = true
	}

	d.OverallStatus = determineStatus(d)
	d.Recommendations = e.buildRecommendations(d)
	return d
}

// determineStatus collapses the component checks into one status.
// Budget failure (or a blown requester cap) rejects; a Manager-tier amount is
// auto-approved; everything else waits on a human approver.
func determineStatus(d Decision) string {
	if !d.Budget.Approved || d.CapExceeded {
		return StatusRejected
	}
	if d.Approval.AutoApproved {
		return StatusApproved
	}
	return StatusPendingApproval
}

// buildRecommendations assembles the ordered recommendation list for a decision.
func (e *Engine) buildRecommendations(d Decision) []Recommendation {
	var recs []Recommendation

	if d.Inventory.ReorderNeeded {
		recs = append(recs, Recommendation{
			Type:     "inventory",
			Priority: "high",
			Message:  fmt.Sprintf("URGENT: stock level critical (%s)", d.Inventory.StockStatus),
		})
	}

	if d.Budget.Approved {
		recs = append(recs, Recommendation{
			Type:     "budget",
			Priority: "good",
			Message:  "Budget approved - proceed with purchase",
		})
	} else {
		recs = append(recs, Recommendation{
			Type:     "budget",
			Priority: "high",
			Message:  fmt.Sprintf("Budget shortfall: $%s", d.Budget.Shortfall.StringFixed(2)),
		})
	}

	if d.CapExceeded && d.Cost != nil {
		recs = append(recs, Recommendation{
			Type:     "budget",
			Priority: "high",
			Message: fmt.Sprintf("Total cost $%s exceeds the requested budget cap of $%s",
				d.Cost.TotalCost.StringFixed(2), d.Request.MaxBudget.StringFixed(2)),
		})
	}

	if d.Cost != nil {
		if d.Cost.PotentialSavings.IsPositive() {
			recs = append(recs, Recommendation{
				Type:     "cost",
				Priority: "medium",
				Message:  fmt.Sprintf("Save $%s with recommended supplier", d.Cost.PotentialSavings.StringFixed(2)),
			})
		}
		recs = append(recs, Recommendation{
			Type:     "timeline",
			Priority: "info",
			Message:  fmt.Sprintf("Lead time: %d days", d.Cost.LeadTimeDays),
		})
	}

	if d.Approval.AutoApproved {
		recs = append(recs, Recommendation{
			Type:     "approval",
			Priority: "good",
			Message:  "Auto-approved - can proceed immediately",
		})
	} else {
		recs = append(recs, Recommendation{
			Type:     "approval",
			Priority: "medium",
			Message:  fmt.Sprintf("%s approval needed (%s)", d.Approval.RequiredTier, d.Approval.EstimatedTime),
		})
	}

	return recs
}
