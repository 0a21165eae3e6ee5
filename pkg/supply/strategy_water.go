package supply

import "github.com/shopspring/decimal"

// waterStrategy splits the category requirement into drinking water,
// derived from the household, and food-preparation water, derived from
// stocked food items that declare a per-unit water requirement.
type waterStrategy struct {
	defaultStrategy
}

func (s *waterStrategy) CanHandle(category CategoryID) bool {
	return category == CategoryWaterBeverages
}

func (s *waterStrategy) AggregateTotals(results []ItemCalculationResult, ctx *CalculationContext) *ShortageCalculationResult {
	result := s.defaultStrategy.AggregateTotals(results, ctx)

	drinking := drinkingWaterLiters(ctx.Household)
	preparation := preparationWaterLiters(ctx.Inventory, ctx.Catalog)

	result.TotalNeeded = drinking.Add(preparation)
	result.Water = &WaterBreakdown{
		DrinkingLiters:    drinking,
		PreparationLiters: preparation,
		TotalLiters:       result.TotalNeeded,
	}

	return result
}

// drinkingWaterLiters is people times the per-person daily requirement
// times the coverage duration
func drinkingWaterLiters(household HouseholdConfig) decimal.Decimal {
	people := decimal.NewFromInt(int64(household.People()))
	days := decimal.NewFromInt(int64(household.SupplyDurationDays))
	return people.Mul(DrinkingWaterPerPersonDay).Mul(days)
}

// preparationWaterLiters sums quantity times water-per-unit over the
// stocked items matching catalog definitions that declare a
// preparation-water requirement. A per-item override takes precedence
// over the catalog value.
func preparationWaterLiters(inventory []*InventoryItem, catalog []*RecommendedItemDefinition) decimal.Decimal {
	total := decimal.Zero

	for _, recItem := range catalog {
		if !recItem.RequiresWaterLiters.Valid || !recItem.RequiresWaterLiters.Decimal.IsPositive() {
			continue
		}

		for _, item := range FindMatchingItems(inventory, recItem) {
			perUnit := recItem.RequiresWaterLiters.Decimal
			if item.WaterLitersPerUnit.Valid {
				perUnit = item.WaterLitersPerUnit.Decimal
			}
			total = total.Add(item.Quantity.Mul(perUnit))
		}
	}

	return total
}
