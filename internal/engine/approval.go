package engine

import "github.com/shopspring/decimal"

// CheckApproval routes an amount to the organizational tier that must sign
// off. The ladder is strict: the first limit the amount fits under wins.
// Departments without a matrix use the configured default matrix.
func (e *Engine) CheckApproval(amount decimal.Decimal, department string) ApprovalResult {
	limits, ok := e.cfg.ApprovalMatrices[department]
	if !ok {
		limits = e.cfg.DefaultMatrix
	}

	var tier, estimate string
	switch {
	case amount.LessThanOrEqual(limits.Manager):
		tier, estimate = TierManager, "1-2 days"
	case amount.LessThanOrEqual(limits.Director):
		tier, estimate = TierDirector, "3-5 days"
	case amount.LessThanOrEqual(limits.VP):
		tier, estimate = TierVP, "5-7 days"
	default:
		tier, estimate = TierCEO, "7-14 days"
	}

	return ApprovalResult{
		Amount:        amount,
		Department:    department,
		RequiredTier:  tier,
		Limits:        limits,
		EstimatedTime: estimate,
		AutoApproved:  tier == TierManager,
	}
}
