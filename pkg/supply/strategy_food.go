package supply

import "github.com/shopspring/decimal"

// foodStrategy aggregates by calories instead of unit counts, so a
// smaller quantity of a calorie-dense substitute can satisfy the
// requirement even when unit counts look low.
type foodStrategy struct {
	defaultStrategy
}

func (s *foodStrategy) CanHandle(category CategoryID) bool {
	return category == CategoryFood
}

// CalculateActualQuantity returns the total calories contributed by
// the matched items, including mass-to-unit conversion for bulk stock
func (s *foodStrategy) CalculateActualQuantity(matched []*InventoryItem, recItem *RecommendedItemDefinition, ctx *CalculationContext) decimal.Decimal {
	total := decimal.Zero

	for _, item := range matched {
		perUnit := item.CaloriesPerUnit
		if !perUnit.Valid {
			perUnit = catalogCaloriesPerUnit(recItem)
		}
		if !perUnit.Valid {
			continue
		}

		weightPerUnit := item.WeightPerUnit
		if !weightPerUnit.Valid {
			weightPerUnit = recItem.WeightPerUnit
		}

		total = total.Add(CalculateTotalCalories(item.Quantity, perUnit.Decimal, item.Unit, weightPerUnit))
	}

	return total
}

func (s *foodStrategy) AggregateTotals(results []ItemCalculationResult, ctx *CalculationContext) *ShortageCalculationResult {
	result := &ShortageCalculationResult{
		TotalActual: decimal.Zero,
		TotalNeeded: decimal.Zero,
	}

	for _, r := range results {
		required := s.requiredCalories(r)

		result.TotalActual = result.TotalActual.Add(r.ActualQuantity)
		result.TotalNeeded = result.TotalNeeded.Add(required)

		if !s.HasEnoughInventory(r) {
			result.Shortages = append(result.Shortages, CategoryShortage{
				ItemID:  r.RecItem.ID,
				NameKey: productNameKey(r.RecItem.ID),
				Actual:  r.ActualQuantity,
				Needed:  required,
				Unit:    r.RecItem.Unit,
				Missing: missingQuantity(required, r.ActualQuantity),
			})
		}
	}

	// Calorie totals have no shared physical unit; the breakdown
	// carries the display detail.
	result.Calories = &CalorieBreakdown{
		ActualCalories:   result.TotalActual.Round(0),
		RequiredCalories: result.TotalNeeded.Round(0),
	}

	sortShortagesByMissing(result.Shortages)
	return result
}

// HasEnoughInventory compares cumulative calories, not unit counts
func (s *foodStrategy) HasEnoughInventory(result ItemCalculationResult) bool {
	if result.MarkedAsEnough {
		return true
	}
	return result.ActualQuantity.GreaterThanOrEqual(s.requiredCalories(result))
}

// requiredCalories is the item's scaled quantity times its resolved
// calories-per-unit. Definitions without any calorie data contribute a
// zero requirement.
func (s *foodStrategy) requiredCalories(result ItemCalculationResult) decimal.Decimal {
	perUnit := catalogCaloriesPerUnit(result.RecItem)
	if !perUnit.Valid {
		return decimal.Zero
	}
	return result.RecommendedQuantity.Mul(perUnit.Decimal)
}

// catalogCaloriesPerUnit resolves a definition's calories-per-unit
// from its own weight and per-100g data, falling back to the direct
// per-unit value
func catalogCaloriesPerUnit(recItem *RecommendedItemDefinition) decimal.NullDecimal {
	return ResolveCaloriesPerUnit(decimal.NullDecimal{}, recItem.WeightPerUnit, recItem.CaloriesPer100g, recItem.CaloriesPerUnit)
}
