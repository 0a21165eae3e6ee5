package supply

import "github.com/shopspring/decimal"

// communicationStrategy aggregates by item-type presence rather than
// quantity: every recommended item is one slot, fulfilled when its
// stock reaches the target or is marked as enough.
type communicationStrategy struct {
	defaultStrategy
}

func (s *communicationStrategy) CanHandle(category CategoryID) bool {
	return category == CategoryCommunication
}

// CalculateActualQuantity counts only reference matches. The name
// fallback would let a free-text entry fill a slot it does not
// represent.
func (s *communicationStrategy) CalculateActualQuantity(matched []*InventoryItem, recItem *RecommendedItemDefinition, ctx *CalculationContext) decimal.Decimal {
	return sumQuantities(FindMatchingItemsByType(ctx.Inventory, recItem.ID))
}

func (s *communicationStrategy) AggregateTotals(results []ItemCalculationResult, ctx *CalculationContext) *ShortageCalculationResult {
	result := &ShortageCalculationResult{
		TotalActual: decimal.Zero,
		TotalNeeded: decimal.NewFromInt(int64(len(results))),
	}

	for _, r := range results {
		if s.HasEnoughInventory(r) {
			result.TotalActual = result.TotalActual.Add(decimal.NewFromInt(1))
			continue
		}

		result.Shortages = append(result.Shortages, CategoryShortage{
			ItemID:  r.RecItem.ID,
			NameKey: productNameKey(r.RecItem.ID),
			Actual:  r.ActualQuantity,
			Needed:  r.RecommendedQuantity,
			Unit:    r.RecItem.Unit,
			Missing: missingQuantity(r.RecommendedQuantity, r.ActualQuantity),
		})
	}

	// Slot counts render as item counts, never as a physical unit
	sortShortagesByMissing(result.Shortages)
	return result
}
