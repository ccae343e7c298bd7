package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"procurehub/internal/engine"

	"github.com/shopspring/decimal"
)

func newTestEngine() *engine.Engine {
	return engine.New(engine.DefaultConfig(), rand.New(rand.NewSource(1)))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFindSuppliers_FiltersByAvailability(t *testing.T) {
	e := newTestEngine()

	result := e.FindSuppliers("printers", 20)

	if result.TotalFound != 2 {
		t.Fatalf("got %d suitable suppliers, want 2", result.TotalFound)
	}
	names := map[string]bool{}
	for _, s := range result.Suppliers {
		names[s.Name] = true
	}
	if !names["PrintTech"] || !names["OfficePrint"] {
		t.Errorf("expected PrintTech and OfficePrint, got %v", names)
	}
}

func TestFindSuppliers_UnknownItem(t *testing.T) {
	e := newTestEngine()

	result := e.FindSuppliers("forklifts", 1)

	if result.TotalFound != 0 {
		t.Errorf("unknown item should yield 0 suppliers, got %d", result.TotalFound)
	}
}

func TestFindSuppliers_QuantityExceedsAll(t *testing.T) {
	e := newTestEngine()

	result := e.FindSuppliers("printers", 500)
	if result.TotalFound != 0 {
		t.Fatalf("got %d suppliers, want 0", result.TotalFound)
	}

	_, err := e.OptimizeCost(result.Suppliers, 500, "")
	if !errors.Is(err, engine.ErrNoSupplier) {
		t.Errorf("got err %v, want ErrNoSupplier", err)
	}
}

func TestOptimizeCost_MinimizesPriceOverRating(t *testing.T) {
	e := newTestEngine()

	// printers at qty 20: PrintTech 459.99/4.4 ≈ 104.54 beats OfficePrint 429.99/4.1 ≈ 104.88
	result := e.FindSuppliers("printers", 20)
	plan, err := e.OptimizeCost(result.Suppliers, 20, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Supplier != "PrintTech" {
		t.Errorf("got supplier %q, want PrintTech", plan.Supplier)
	}
	if !plan.TotalCost.Equal(dec("9199.80")) {
		t.Errorf("got total cost %s, want 9199.80", plan.TotalCost)
	}
	// savings vs most expensive filtered offer (PrintTech itself at 459.99)
	if !plan.PotentialSavings.Equal(decimal.Zero) {
		t.Errorf("got savings %s, want 0", plan.PotentialSavings)
	}
}

func TestOptimizeCost_Savings(t *testing.T) {
	e := newTestEngine()

	// laptops at qty 20: all three qualify, BusinessTech wins on price/rating,
	// savings against TechCorp at 899.99.
	result := e.FindSuppliers("laptops", 20)
	plan, err := e.OptimizeCost(result.Suppliers, 20, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Supplier != "BusinessTech" {
		t.Errorf("got supplier %q, want BusinessTech", plan.Supplier)
	}
	if !plan.PotentialSavings.Equal(dec("400.00").Round(2)) {
		t.Errorf("got savings %s, want 400.00", plan.PotentialSavings)
	}
}

func TestOptimizeCost_TieKeepsFirstOffer(t *testing.T) {
	e := newTestEngine()

	offers := []engine.SupplierOffer{
		{Name: "First", UnitPrice: dec("100"), Availability: 10, Rating: 4.0},
		{Name: "Second", UnitPrice: dec("100"), Availability: 10, Rating: 4.0},
	}

	plan, err := e.OptimizeCost(offers, 5, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Supplier != "First" {
		t.Errorf("tie should keep the first offer, got %q", plan.Supplier)
	}
}

func TestOptimizeCost_PreferredSupplierOverrides(t *testing.T) {
	e := newTestEngine()

	result := e.FindSuppliers("laptops", 20)
	plan, err := e.OptimizeCost(result.Suppliers, 20, "ElectroSupply")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Supplier != "ElectroSupply" {
		t.Errorf("got supplier %q, want ElectroSupply", plan.Supplier)
	}
}

func TestCheckBudget(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name          string
		department    string
		amount        string
		wantApproved  bool
		wantShortfall string
	}{
		{"within remaining", "IT", "10000", true, "0"},
		{"exactly remaining", "IT", "27000", true, "0"},
		{"over remaining", "HR", "14000", false, "1000"},
		{"unknown department rejects any positive amount", "Legal", "1", false, "1"},
		{"unknown department zero amount passes", "Legal", "0", true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.CheckBudget(tt.department, dec(tt.amount))

			if result.Approved != tt.wantApproved {
				t.Errorf("approved = %v, want %v", result.Approved, tt.wantApproved)
			}
			if !result.Shortfall.Equal(dec(tt.wantShortfall)) {
				t.Errorf("shortfall = %s, want %s", result.Shortfall, tt.wantShortfall)
			}
		})
	}
}

func TestCheckBudget_UtilizationGuardsZeroTotal(t *testing.T) {
	e := newTestEngine()

	result := e.CheckBudget("Legal", dec("100"))
	if result.UtilizationRate != 0 {
		t.Errorf("utilization for zero-budget department = %v, want 0", result.UtilizationRate)
	}

	it := e.CheckBudget("IT", dec("100"))
	if got, want := it.UtilizationRate, 0.46; got != want {
		t.Errorf("IT utilization = %v, want %v", got, want)
	}
}

func TestCheckApproval_Ladder(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name         string
		department   string
		amount       string
		wantTier     string
		wantAuto     bool
		wantEstimate string
	}{
		{"IT manager tier", "IT", "5000", engine.TierManager, true, "1-2 days"},
		{"IT director tier", "IT", "10000", engine.TierDirector, false, "3-5 days"},
		{"IT vp tier", "IT", "40000", engine.TierVP, false, "5-7 days"},
		{"IT ceo tier", "IT", "50001", engine.TierCEO, false, "7-14 days"},
		{"unknown department uses default matrix", "Legal", "1200", engine.TierDirector, false, "3-5 days"},
		{"unknown department manager limit", "Legal", "1000", engine.TierManager, true, "1-2 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.CheckApproval(dec(tt.amount), tt.department)

			if result.RequiredTier != tt.wantTier {
				t.Errorf("tier = %q, want %q", result.RequiredTier, tt.wantTier)
			}
			if result.AutoApproved != tt.wantAuto {
				t.Errorf("auto_approved = %v, want %v", result.AutoApproved, tt.wantAuto)
			}
			if result.EstimatedTime != tt.wantEstimate {
				t.Errorf("estimated time = %q, want %q", result.EstimatedTime, tt.wantEstimate)
			}
		})
	}
}

func TestCheckApproval_MonotonicInAmount(t *testing.T) {
	e := newTestEngine()

	rank := map[string]int{
		engine.TierManager:  0,
		engine.TierDirector: 1,
		engine.TierVP:       2,
		engine.TierCEO:      3,
	}

	for _, dept := range []string{"IT", "HR", "Marketing", "Operations", "Finance", "Unknown"} {
		prev := -1
		for amt := int64(0); amt <= 100000; amt += 500 {
			result := e.CheckApproval(decimal.NewFromInt(amt), dept)
			r := rank[result.RequiredTier]
			if r < prev {
				t.Fatalf("%s: tier decreased from rank %d to %d at amount %d", dept, prev, r, amt)
			}
			prev = r
		}
	}
}

func TestCheckInventory(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name          string
		item          string
		wantReorder   bool
		wantSuggested int
		wantStatus    string
	}{
		{"laptops below minimum", "laptops", false, 0, "Adequate"}, // 15+10 >= 25
		{"printers need reorder", "printers", true, 2, "Low"},      // 8+5 < 15
		{"office chairs adequate", "office_chairs", false, 0, "Adequate"},
		{"unknown item zero record is adequate", "forklifts", false, 0, "Adequate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.CheckInventory(tt.item)

			if result.ReorderNeeded != tt.wantReorder {
				t.Errorf("reorder_needed = %v, want %v", result.ReorderNeeded, tt.wantReorder)
			}
			if result.SuggestedOrderQuantity != tt.wantSuggested {
				t.Errorf("suggested quantity = %d, want %d", result.SuggestedOrderQuantity, tt.wantSuggested)
			}
			if result.StockStatus != tt.wantStatus {
				t.Errorf("status = %q, want %q", result.StockStatus, tt.wantStatus)
			}
		})
	}
}

func TestCheckInventory_StockPercentage(t *testing.T) {
	e := newTestEngine()

	for _, item := range []string{"laptops", "office_chairs", "printers", "monitors", "forklifts"} {
		result := e.CheckInventory(item)
		if result.StockLevelPercent < 0 || result.StockLevelPercent > 100 {
			t.Errorf("%s: stock percentage %v outside [0, 100]", item, result.StockLevelPercent)
		}
	}

	if got := e.CheckInventory("printers").StockLevelPercent; got != 16 {
		t.Errorf("printers stock percentage = %v, want 16", got)
	}
}

func TestEvaluate_AutoApproved(t *testing.T) {
	e := newTestEngine()

	// 5 monitors for Operations: ScreenSupply wins, total 1499.95, well under
	// the 10000 Operations manager limit.
	d := e.Evaluate(engine.Request{
		Item:          "monitors",
		Quantity:      5,
		Department:    "Operations",
		Justification: "replacement screens",
	})

	if d.OverallStatus != engine.StatusApproved {
		t.Fatalf("status = %q, want %q", d.OverallStatus, engine.StatusApproved)
	}
	if !d.Approval.AutoApproved {
		t.Error("expected auto approval at Manager tier")
	}
	if d.Cost == nil || d.Cost.Supplier != "ScreenSupply" {
		t.Errorf("cost plan = %+v, want ScreenSupply", d.Cost)
	}
}

func TestEvaluate_PendingApproval(t *testing.T) {
	e := newTestEngine()

	// 20 laptops for IT: 17599.80 total, over the 15000 Director limit but
	// under the 27000 remaining budget and the 50000 VP limit.
	d := e.Evaluate(engine.Request{
		Item:          "laptops",
		Quantity:      20,
		Department:    "IT",
		Justification: "team expansion",
	})

	if d.OverallStatus != engine.StatusPendingApproval {
		t.Fatalf("status = %q, want %q", d.OverallStatus, engine.StatusPendingApproval)
	}
	if d.Approval.RequiredTier != engine.TierVP {
		t.Errorf("tier = %q, want VP", d.Approval.RequiredTier)
	}
	if !d.Budget.Approved {
		t.Error("budget should be approved")
	}
}

func TestEvaluate_BudgetRejected(t *testing.T) {
	e := newTestEngine()

	// 60 laptops for HR: ~52799 against 13000 remaining.
	d := e.Evaluate(engine.Request{
		Item:          "laptops",
		Quantity:      60,
		Department:    "HR",
		Justification: "mass onboarding",
	})

	if d.OverallStatus != engine.StatusRejected {
		t.Fatalf("status = %q, want %q", d.OverallStatus, engine.StatusRejected)
	}
	if d.Budget.Shortfall.LessThanOrEqual(decimal.Zero) {
		t.Errorf("shortfall = %s, want positive", d.Budget.Shortfall)
	}

	foundShortfall := false
	for _, rec := range d.Recommendations {
		if rec.Type == "budget" && rec.Priority == "high" {
			foundShortfall = true
		}
	}
	if !foundShortfall {
		t.Error("expected a high-priority budget recommendation")
	}
}

func TestEvaluate_NoSupplier(t *testing.T) {
	e := newTestEngine()

	d := e.Evaluate(engine.Request{
		Item:          "printers",
		Quantity:      500,
		Department:    "IT",
		Justification: "print farm",
	})

	if d.OverallStatus != engine.StatusRejected {
		t.Fatalf("status = %q, want %q", d.OverallStatus, engine.StatusRejected)
	}
	if d.Cost != nil {
		t.Errorf("cost plan should be nil, got %+v", d.Cost)
	}
	if d.Suppliers.TotalFound != 0 {
		t.Errorf("suppliers found = %d, want 0", d.Suppliers.TotalFound)
	}

	foundSupplierRec := false
	for _, rec := range d.Recommendations {
		if rec.Type == "supplier" {
			foundSupplierRec = true
		}
	}
	if !foundSupplierRec {
		t.Error("expected a supplier recommendation explaining the rejection")
	}
}

func TestEvaluate_BudgetCapExceeded(t *testing.T) {
	e := newTestEngine()

	d := e.Evaluate(engine.Request{
		Item:          "monitors",
		Quantity:      5,
		Department:    "Operations",
		Justification: "replacement screens",
		MaxBudget:     dec("1000"),
	})

	if !d.CapExceeded {
		t.Fatal("expected cap_exceeded")
	}
	if d.OverallStatus != engine.StatusRejected {
		t.Errorf("status = %q, want %q", d.OverallStatus, engine.StatusRejected)
	}
}

func TestEvaluate_RecommendationOrder(t *testing.T) {
	e := newTestEngine()

	// printers reorder is needed, so the inventory warning must lead.
	d := e.Evaluate(engine.Request{
		Item:          "printers",
		Quantity:      5,
		Department:    "Finance",
		Justification: "office printing",
	})

	if len(d.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	if d.Recommendations[0].Type != "inventory" {
		t.Errorf("first recommendation type = %q, want inventory", d.Recommendations[0].Type)
	}
	last := d.Recommendations[len(d.Recommendations)-1]
	if last.Type != "approval" {
		t.Errorf("last recommendation type = %q, want approval", last.Type)
	}
}
