package supply

import "sort"

// Engine drives a category strategy across every recommended item in
// a category and classifies the outcome. It holds no mutable state;
// every calculation is pure over the arguments of a single call.
type Engine struct {
	registry  *Registry
	translate TranslateFunc
}

// NewEngine creates an engine with the given strategy registry. A nil
// translator falls back to returning raw keys.
func NewEngine(registry *Registry, translate TranslateFunc) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	if translate == nil {
		translate = passthroughTranslate
	}
	return &Engine{registry: registry, translate: translate}
}

// CalculateCategory computes the shortage result and status for one
// category. Recommended items requiring a freezer are skipped when the
// household does not use one.
func (e *Engine) CalculateCategory(category CategoryID, inventory []*InventoryItem, catalog []*RecommendedItemDefinition, household HouseholdConfig) *CategoryReport {
	strategy := e.registry.ForCategory(category)

	ctx := &CalculationContext{
		Household: household,
		Inventory: inventory,
		Catalog:   catalog,
	}

	categoryItems := itemsInCategory(inventory, category)

	var results []ItemCalculationResult
	for _, recItem := range catalog {
		if recItem.CategoryID != category {
			continue
		}
		if recItem.RequiresFreezer && !household.UseFreezer {
			continue
		}

		matched := FindMatchingItems(categoryItems, recItem)
		results = append(results, ItemCalculationResult{
			RecItem:             recItem,
			RecommendedQuantity: strategy.CalculateRecommendedQuantity(recItem, ctx),
			ActualQuantity:      strategy.CalculateActualQuantity(matched, recItem, ctx),
			MarkedAsEnough:      hasMarkedItem(matched),
		})
	}

	result := strategy.AggregateTotals(results, ctx)
	pct := CompletionPercentage(result)

	return &CategoryReport{
		CategoryID:           category,
		Status:               StatusFromPercentage(pct),
		CompletionPercentage: pct,
		Result:               result,
	}
}

// CalculateAll computes a report for every distinct category present
// in the catalog or the inventory, ordered by category id for
// deterministic output.
func (e *Engine) CalculateAll(inventory []*InventoryItem, catalog []*RecommendedItemDefinition, household HouseholdConfig) []*CategoryReport {
	seen := make(map[CategoryID]bool)
	var categories []CategoryID

	for _, recItem := range catalog {
		if !seen[recItem.CategoryID] {
			seen[recItem.CategoryID] = true
			categories = append(categories, recItem.CategoryID)
		}
	}
	for _, item := range inventory {
		if !seen[item.CategoryID] {
			seen[item.CategoryID] = true
			categories = append(categories, item.CategoryID)
		}
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	reports := make([]*CategoryReport, 0, len(categories))
	for _, category := range categories {
		reports = append(reports, e.CalculateCategory(category, inventory, catalog, household))
	}
	return reports
}

// CompletionPercentage derives the fulfillment percentage of a
// category result, capped at 100. A zero target means the category is
// fully satisfied.
func CompletionPercentage(result *ShortageCalculationResult) float64 {
	if !result.TotalNeeded.IsPositive() {
		return 100
	}

	pct, _ := result.TotalActual.
		Div(result.TotalNeeded).
		Mul(hundred).
		Float64()

	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func itemsInCategory(inventory []*InventoryItem, category CategoryID) []*InventoryItem {
	var items []*InventoryItem
	for _, item := range inventory {
		if item.CategoryID == category {
			items = append(items, item)
		}
	}
	return items
}

func hasMarkedItem(items []*InventoryItem) bool {
	for _, item := range items {
		if item.MarkedAsEnough {
			return true
		}
	}
	return false
}
