package engine

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// DefaultCatalog returns the built-in supplier catalog, keyed by lowercase
// item name. Used to seed the reference tables on first boot.
func DefaultCatalog() map[string][]SupplierOffer {
	return map[string][]SupplierOffer{
		"laptops": {
			{Name: "TechCorp", UnitPrice: price("899.99"), Availability: 50, LeadTimeDays: 5, Rating: 4.5},
			{Name: "ElectroSupply", UnitPrice: price("849.99"), Availability: 30, LeadTimeDays: 7, Rating: 4.2},
			{Name: "BusinessTech", UnitPrice: price("879.99"), Availability: 100, LeadTimeDays: 3, Rating: 4.7},
		},
		"office_chairs": {
			{Name: "OfficePro", UnitPrice: price("249.99"), Availability: 200, LeadTimeDays: 10, Rating: 4.3},
			{Name: "ComfortSeating", UnitPrice: price("199.99"), Availability: 150, LeadTimeDays: 14, Rating: 4.0},
			{Name: "ErgoFurniture", UnitPrice: price("299.99"), Availability: 75, LeadTimeDays: 7, Rating: 4.6},
		},
		"printers": {
			{Name: "PrintTech", UnitPrice: price("459.99"), Availability: 25, LeadTimeDays: 5, Rating: 4.4},
			{Name: "OfficePrint", UnitPrice: price("429.99"), Availability: 40, LeadTimeDays: 8, Rating: 4.1},
			{Name: "ReliablePrint", UnitPrice: price("489.99"), Availability: 15, LeadTimeDays: 3, Rating: 4.8},
		},
		"monitors": {
			{Name: "DisplayTech", UnitPrice: price("329.99"), Availability: 60, LeadTimeDays: 6, Rating: 4.5},
			{Name: "ScreenSupply", UnitPrice: price("299.99"), Availability: 45, LeadTimeDays: 9, Rating: 4.2},
			{Name: "ViewPro", UnitPrice: price("349.99"), Availability: 30, LeadTimeDays: 4, Rating: 4.7},
		},
	}
}

// DefaultBudgets returns the built-in per-department budget ledgers.
func DefaultBudgets() map[string]BudgetLedger {
	return map[string]BudgetLedger{
		"IT":         {Total: amount(50000), Used: amount(23000), Remaining: amount(27000)},
		"HR":         {Total: amount(25000), Used: amount(12000), Remaining: amount(13000)},
		"Marketing":  {Total: amount(35000), Used: amount(18000), Remaining: amount(17000)},
		"Operations": {Total: amount(75000), Used: amount(45000), Remaining: amount(30000)},
		"Finance":    {Total: amount(40000), Used: amount(15000), Remaining: amount(25000)},
	}
}

// DefaultApprovalMatrices returns the built-in per-department approval ladders.
func DefaultApprovalMatrices() map[string]ApprovalMatrix {
	return map[string]ApprovalMatrix{
		"IT":         {Manager: amount(5000), Director: amount(15000), VP: amount(50000)},
		"HR":         {Manager: amount(3000), Director: amount(10000), VP: amount(25000)},
		"Marketing":  {Manager: amount(2000), Director: amount(8000), VP: amount(20000)},
		"Operations": {Manager: amount(10000), Director: amount(25000), VP: amount(75000)},
		"Finance":    {Manager: amount(7500), Director: amount(20000), VP: amount(60000)},
	}
}

// DefaultMatrix is the fallback ladder for departments without their own.
func DefaultMatrix() ApprovalMatrix {
	return ApprovalMatrix{Manager: amount(1000), Director: amount(5000), VP: amount(15000)}
}

// DefaultInventory returns the built-in stock positions, keyed by lowercase
// item name.
func DefaultInventory() map[string]InventoryRecord {
	return map[string]InventoryRecord{
		"laptops":       {Current: 15, Minimum: 25, Maximum: 100, OnOrder: 10},
		"office_chairs": {Current: 45, Minimum: 30, Maximum: 200, OnOrder: 0},
		"printers":      {Current: 8, Minimum: 15, Maximum: 50, OnOrder: 5},
		"monitors":      {Current: 22, Minimum: 20, Maximum: 80, OnOrder: 0},
	}
}

// DefaultScreeningRules returns the stock screening configuration:
// 5 points per year of experience capped at 40, up to 40 points for skill
// match, a 10 point location bonus, and an interview cutoff of 70.
func DefaultScreeningRules() ScreeningRules {
	return ScreeningRules{
		RequiredSkills:     []string{"Python", "JavaScript", "React", "AWS"},
		PreferredLocations: []string{"Remote", "New York", "San Francisco", "Seattle"},
		ExperienceWeight:   5,
		ExperienceCap:      40,
		SkillWeight:        40,
		LocationBonus:      10,
		JitterMax:          10,
		InterviewThreshold: 70,
	}
}

// DefaultConfig assembles a Config from all built-in reference data.
func DefaultConfig() Config {
	return Config{
		Catalog:          DefaultCatalog(),
		Budgets:          DefaultBudgets(),
		ApprovalMatrices: DefaultApprovalMatrices(),
		DefaultMatrix:    DefaultMatrix(),
		Inventory:        DefaultInventory(),
		Screening:        DefaultScreeningRules(),
	}
}
