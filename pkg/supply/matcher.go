package supply

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FindMatchingItems returns the inventory items that correspond to a
// recommended item definition. An item matches when its catalog
// reference equals the definition id, or, for non-custom items, when
// its normalized display name equals the definition id. Custom items
// are never matched by name so free-text user entries cannot collide
// with catalog ids.
func FindMatchingItems(items []*InventoryItem, recItem *RecommendedItemDefinition) []*InventoryItem {
	var matched []*InventoryItem

	for _, item := range items {
		if item.ItemRef == recItem.ID {
			matched = append(matched, item)
			continue
		}
		if item.ItemRef != CustomItemRef && normalizeName(item.Name) == string(recItem.ID) {
			matched = append(matched, item)
		}
	}

	return matched
}

// FindMatchingItemsByType returns only the items whose catalog
// reference equals the given id. Used where the name fallback would
// corrupt item-type-presence counting.
func FindMatchingItemsByType(items []*InventoryItem, id ItemRef) []*InventoryItem {
	var matched []*InventoryItem

	for _, item := range items {
		if item.ItemRef == id {
			matched = append(matched, item)
		}
	}

	return matched
}

// SumMatchingItemsQuantity sums the quantities of the items matching a
// recommended item definition
func SumMatchingItemsQuantity(items []*InventoryItem, recItem *RecommendedItemDefinition) decimal.Decimal {
	return sumQuantities(FindMatchingItems(items, recItem))
}

// SumMatchingItemsCalories sums quantity times calories-per-unit over
// the items matching a recommended item definition. The supplied
// default applies only when an item carries no calories-per-unit of
// its own; an explicitly stored zero is honored, never replaced.
// Stock recorded by mass is converted to discrete units first.
func SumMatchingItemsCalories(items []*InventoryItem, recItem *RecommendedItemDefinition, defaultCaloriesPerUnit decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero

	for _, item := range FindMatchingItems(items, recItem) {
		perUnit := defaultCaloriesPerUnit
		if item.CaloriesPerUnit.Valid {
			perUnit = item.CaloriesPerUnit
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

// HasMarkedAsEnough reports whether any item matching the recommended
// item definition carries the manual "marked as enough" override
func HasMarkedAsEnough(items []*InventoryItem, recItem *RecommendedItemDefinition) bool {
	for _, item := range FindMatchingItems(items, recItem) {
		if item.MarkedAsEnough {
			return true
		}
	}
	return false
}

// normalizeName folds a display name to the hyphenated, lower-case
// form used by catalog ids
func normalizeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(normalized, " ", "-")
}

func sumQuantities(items []*InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Quantity)
	}
	return total
}
