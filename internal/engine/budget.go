package engine

import "github.com/shopspring/decimal"

// CheckBudget validates a requested amount against a department's ledger.
// Unknown departments fall back to a zero ledger, which fails any positive
// amount; the check always produces a structured result, never an error.
func (e *Engine) CheckBudget(department string, amount decimal.Decimal) BudgetResult {
	ledger, ok := e.cfg.Budgets[department]
	if !ok {
		ledger = BudgetLedger{Total: decimal.Zero, Used: decimal.Zero, Remaining: decimal.Zero}
	}

	shortfall := amount.Sub(ledger.Remaining)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	utilization := 0.0
	if ledger.Total.IsPositive() {
		utilization = ledger.Used.Div(ledger.Total).InexactFloat64()
	}

	return BudgetResult{
		Department:      department,
		RequestedAmount: amount,
		Ledger:          ledger,
		Approved:        amount.LessThanOrEqual(ledger.Remaining),
		Shortfall:       shortfall,
		UtilizationRate: utilization,
	}
}
