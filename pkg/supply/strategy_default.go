package supply

import (
	"sort"

	"github.com/shopspring/decimal"
)

// defaultStrategy sums matched quantities per item. Categories whose
// recommended items share one unit aggregate to a plain quantity pair;
// mixed-unit categories aggregate capped per-item fulfillment ratios
// and report an item-count-style total instead.
type defaultStrategy struct{}

func (s *defaultStrategy) CanHandle(CategoryID) bool {
	return true
}

func (s *defaultStrategy) CalculateRecommendedQuantity(recItem *RecommendedItemDefinition, ctx *CalculationContext) decimal.Decimal {
	return scaleRecommendedQuantity(recItem, ctx.Household)
}

func (s *defaultStrategy) CalculateActualQuantity(matched []*InventoryItem, recItem *RecommendedItemDefinition, ctx *CalculationContext) decimal.Decimal {
	return sumQuantities(matched)
}

func (s *defaultStrategy) AggregateTotals(results []ItemCalculationResult, ctx *CalculationContext) *ShortageCalculationResult {
	result := &ShortageCalculationResult{
		TotalActual: decimal.Zero,
		TotalNeeded: decimal.Zero,
	}

	unit, uniform := uniformUnit(results)

	for _, r := range results {
		if uniform {
			result.TotalActual = result.TotalActual.Add(r.ActualQuantity)
			result.TotalNeeded = result.TotalNeeded.Add(r.RecommendedQuantity)
		} else {
			result.TotalActual = result.TotalActual.Add(fulfillmentRatio(r.ActualQuantity, r.RecommendedQuantity))
			result.TotalNeeded = result.TotalNeeded.Add(decimal.NewFromInt(1))
		}

		if !s.HasEnoughInventory(r) {
			result.Shortages = append(result.Shortages, CategoryShortage{
				ItemID:  r.RecItem.ID,
				NameKey: productNameKey(r.RecItem.ID),
				Actual:  r.ActualQuantity,
				Needed:  r.RecommendedQuantity,
				Unit:    r.RecItem.Unit,
				Missing: missingQuantity(r.RecommendedQuantity, r.ActualQuantity),
			})
		}
	}

	if uniform && len(results) > 0 {
		result.Unit = &unit
	}

	sortShortagesByMissing(result.Shortages)
	return result
}

func (s *defaultStrategy) HasEnoughInventory(result ItemCalculationResult) bool {
	if result.MarkedAsEnough {
		return true
	}
	return result.ActualQuantity.GreaterThanOrEqual(result.RecommendedQuantity)
}

// uniformUnit returns the single unit shared by all recommended items,
// or false when units are mixed or there are no items
func uniformUnit(results []ItemCalculationResult) (Unit, bool) {
	if len(results) == 0 {
		return "", false
	}

	unit := results[0].RecItem.Unit
	for _, r := range results[1:] {
		if r.RecItem.Unit != unit {
			return "", false
		}
	}
	return unit, true
}

// fulfillmentRatio returns min(actual/needed, 1), treating a zero
// target as fully satisfied
func fulfillmentRatio(actual, needed decimal.Decimal) decimal.Decimal {
	if !needed.IsPositive() {
		return decimal.NewFromInt(1)
	}
	ratio := actual.Div(needed)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return ratio
}

// sortShortagesByMissing orders shortages by missing amount,
// descending, preserving input order for ties
func sortShortagesByMissing(shortages []CategoryShortage) {
	sort.SliceStable(shortages, func(i, j int) bool {
		return shortages[i].Missing.GreaterThan(shortages[j].Missing)
	})
}

// productNameKey builds the fully-qualified translation key for a
// catalog item's display name
func productNameKey(id ItemRef) string {
	return "products." + string(id)
}
