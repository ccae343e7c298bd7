package engine

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoSupplier is returned when no offer covers the requested quantity.
var ErrNoSupplier = errors.New("no supplier available for requested quantity")

// FindSuppliers returns the offers for an item that can cover the requested
// quantity. Unknown items yield an empty result rather than an error.
func (e *Engine) FindSuppliers(item string, quantity int) SupplierResult {
	offers := e.cfg.Catalog[strings.ToLower(item)]

	suitable := make([]SupplierOffer, 0, len(offers))
	for _, o := range offers {
		if o.Availability >= quantity {
			suitable = append(suitable, o)
		}
	}

	return SupplierResult{
		Item:              item,
		QuantityRequested: quantity,
		Suppliers:         suitable,
		TotalFound:        len(suitable),
	}
}

// OptimizeCost picks the best offer among the given (pre-filtered) suppliers.
// Selection minimizes price/rating; ties keep the earlier offer. A preferred
// supplier, when present among the offers, overrides the optimization.
// Potential savings compare the chosen price against the most expensive offer.
func (e *Engine) OptimizeCost(suppliers []SupplierOffer, quantity int, preferred string) (CostPlan, error) {
	if len(suppliers) == 0 {
		return CostPlan{}, ErrNoSupplier
	}

	best := suppliers[0]
	bestMetric := qualityAdjustedCost(best)
	for _, o := range suppliers[1:] {
		if m := qualityAdjustedCost(o); m < bestMetric {
			best = o
			bestMetric = m
		}
	}

	if preferred != "" {
		for _, o := range suppliers {
			if strings.EqualFold(o.Name, preferred) {
				best = o
				break
			}
		}
	}

	mostExpensive := suppliers[0]
	for _, o := range suppliers[1:] {
		if o.UnitPrice.GreaterThan(mostExpensive.UnitPrice) {
			mostExpensive = o
		}
	}

	qty := int64(quantity)
	return CostPlan{
		Supplier:         best.Name,
		UnitPrice:        best.UnitPrice,
		TotalCost:        best.UnitPrice.Mul(decimal.NewFromInt(qty)),
		Quantity:         quantity,
		PotentialSavings: mostExpensive.UnitPrice.Sub(best.UnitPrice).Mul(decimal.NewFromInt(qty)),
		LeadTimeDays:     best.LeadTimeDays,
		SupplierRating:   best.Rating,
	}, nil
}

// qualityAdjustedCost is price divided by rating. A zero rating sorts the
// offer last instead of dividing by zero.
func qualityAdjustedCost(o SupplierOffer) float64 {
	price := o.UnitPrice.InexactFloat64()
	if o.Rating <= 0 {
		return price * 1e6
	}
	return price / o.Rating
}
