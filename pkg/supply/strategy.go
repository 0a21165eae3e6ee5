package supply

import "github.com/shopspring/decimal"

// CalculationContext carries the per-call inputs shared by every
// strategy method. The full inventory and catalog are included because
// the water strategy scans food items outside its own category.
type CalculationContext struct {
	Household HouseholdConfig
	Inventory []*InventoryItem
	Catalog   []*RecommendedItemDefinition
}

// Strategy is the capability set implemented by each category-specific
// calculation variant
type Strategy interface {
	// CanHandle reports whether the strategy applies to a category
	CanHandle(category CategoryID) bool

	// CalculateRecommendedQuantity scales a definition's base quantity
	// to the household
	CalculateRecommendedQuantity(recItem *RecommendedItemDefinition, ctx *CalculationContext) decimal.Decimal

	// CalculateActualQuantity aggregates the matched items into the
	// strategy's measure (units, or calories for food)
	CalculateActualQuantity(matched []*InventoryItem, recItem *RecommendedItemDefinition, ctx *CalculationContext) decimal.Decimal

	// AggregateTotals combines the per-item results into one category
	// result
	AggregateTotals(results []ItemCalculationResult, ctx *CalculationContext) *ShortageCalculationResult

	// HasEnoughInventory reports whether a single item result is
	// satisfied
	HasEnoughInventory(result ItemCalculationResult) bool
}

// Registry dispatches a category id to its strategy. Strategies are
// checked in order and the first CanHandle match wins; the default
// strategy matches unconditionally and stays last.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a registry with the built-in strategies in their
// canonical order: food, water, communication, then the default
// catch-all.
func NewRegistry() *Registry {
	return &Registry{
		strategies: []Strategy{
			&foodStrategy{},
			&waterStrategy{},
			&communicationStrategy{},
			&defaultStrategy{},
		},
	}
}

// Register inserts a strategy immediately before the default catch-all
// so it takes priority without removing the fallback. This is the
// extension point for new category algorithms.
func (r *Registry) Register(s Strategy) {
	last := len(r.strategies) - 1
	r.strategies = append(r.strategies[:last], s, r.strategies[last])
}

// ForCategory returns the first strategy that can handle the category.
// An unrecognized category resolves to the default strategy.
func (r *Registry) ForCategory(category CategoryID) Strategy {
	for _, s := range r.strategies {
		if s.CanHandle(category) {
			return s
		}
	}
	// Unreachable as long as the default strategy stays last
	return &defaultStrategy{}
}

// scaleRecommendedQuantity applies the shared scaling rule: base
// quantity, times people, times pets, times days, with a single
// rounding-up at the end rather than after each factor.
func scaleRecommendedQuantity(recItem *RecommendedItemDefinition, household HouseholdConfig) decimal.Decimal {
	qty := recItem.BaseQuantity

	if recItem.ScaleWithPeople {
		qty = qty.Mul(decimal.NewFromInt(int64(household.People())))
	}
	if recItem.ScaleWithPets && household.Pets > 0 {
		qty = qty.Mul(decimal.NewFromInt(int64(household.Pets)).Mul(PetRequirementFactor))
	}
	if recItem.ScaleWithDays {
		qty = qty.Mul(decimal.NewFromInt(int64(household.SupplyDurationDays)))
	}

	return qty.Ceil()
}

// missingQuantity returns max(0, needed-actual)
func missingQuantity(needed, actual decimal.Decimal) decimal.Decimal {
	missing := needed.Sub(actual)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}
