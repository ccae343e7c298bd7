package engine

import "strings"

// CheckInventory reports the reorder position for an item. Unknown items fall
// back to an all-zero record, which reports Adequate stock (0+0 < 0 is false);
// the caller gets a structured result either way.
func (e *Engine) CheckInventory(item string) InventoryResult {
	rec, ok := e.cfg.Inventory[strings.ToLower(item)]
	if !ok {
		rec = InventoryRecord{}
	}

	reorderNeeded := rec.Current+rec.OnOrder < rec.Minimum

	suggested := rec.Minimum - rec.Current - rec.OnOrder
	if suggested < 0 {
		suggested = 0
	}

	status := "Adequate"
	if reorderNeeded {
		status = "Low"
	}

	pct := 0.0
	if rec.Maximum > 0 {
		pct = float64(rec.Current) / float64(rec.Maximum) * 100
	}

	return InventoryResult{
		Item:                   item,
		CurrentStock:           rec.Current,
		MinimumRequired:        rec.Minimum,
		MaximumCapacity:        rec.Maximum,
		OnOrder:                rec.OnOrder,
		ReorderNeeded:          reorderNeeded,
		SuggestedOrderQuantity: suggested,
		StockStatus:            status,
		StockLevelPercent:      pct,
	}
}
