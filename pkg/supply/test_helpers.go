package supply

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewTestHousehold creates a household used by most tests: two adults,
// one child, ten days of coverage
func NewTestHousehold() HouseholdConfig {
	return HouseholdConfig{
		Adults:             2,
		Children:           1,
		Pets:               0,
		SupplyDurationDays: 10,
		UseFreezer:         true,
	}
}

// NewTestCatalog creates a compact effective catalog covering every
// built-in strategy
func NewTestCatalog() []*RecommendedItemDefinition {
	return []*RecommendedItemDefinition{
		{
			ID:              "drinking-water",
			CategoryID:      CategoryWaterBeverages,
			BaseQuantity:    decimal.NewFromInt(2),
			Unit:            UnitLiter,
			ScaleWithPeople: true,
			ScaleWithDays:   true,
		},
		{
			ID:                  "noodles",
			CategoryID:          CategoryFood,
			BaseQuantity:        decimal.NewFromFloat(0.2),
			Unit:                UnitPackage,
			ScaleWithPeople:     true,
			ScaleWithDays:       true,
			WeightPerUnit:       NullDecimalFromFloat(500),
			CaloriesPer100g:     NullDecimalFromFloat(350),
			RequiresWaterLiters: NullDecimalFromFloat(0.5),
		},
		{
			ID:              "canned-vegetables",
			CategoryID:      CategoryFood,
			BaseQuantity:    decimal.NewFromFloat(0.5),
			Unit:            UnitPiece,
			ScaleWithPeople: true,
			ScaleWithDays:   true,
			WeightPerUnit:   NullDecimalFromFloat(400),
			CaloriesPer100g: NullDecimalFromFloat(25),
		},
		{
			ID:           "crank-radio",
			CategoryID:   CategoryCommunication,
			BaseQuantity: decimal.NewFromInt(1),
			Unit:         UnitPiece,
		},
		{
			ID:           "power-bank",
			CategoryID:   CategoryCommunication,
			BaseQuantity: decimal.NewFromInt(1),
			Unit:         UnitPiece,
		},
		{
			ID:              "candles",
			CategoryID:      "light-fire",
			BaseQuantity:    decimal.NewFromInt(4),
			Unit:            UnitPiece,
			ScaleWithPeople: true,
		},
		{
			ID:            "matches",
			CategoryID:    "light-fire",
			BaseQuantity:  decimal.NewFromInt(2),
			Unit:          UnitPackage,
			ScaleWithDays: false,
		},
	}
}

// NewTestInventoryItem creates an inventory item referencing a catalog
// definition, with a fresh id
func NewTestInventoryItem(ref ItemRef, category CategoryID, quantity float64, unit Unit) *InventoryItem {
	return &InventoryItem{
		ID:         uuid.NewString(),
		Name:       string(ref),
		CategoryID: category,
		ItemRef:    ref,
		Quantity:   decimal.NewFromFloat(quantity),
		Unit:       unit,
	}
}

// NewTestCustomItem creates a user-authored inventory item carrying
// the custom sentinel
func NewTestCustomItem(name string, category CategoryID, quantity float64, unit Unit) *InventoryItem {
	item := NewTestInventoryItem(CustomItemRef, category, quantity, unit)
	item.Name = name
	return item
}

// ExpiringAt returns the item with its expiration date set
func ExpiringAt(item *InventoryItem, date time.Time) *InventoryItem {
	item.ExpirationDate = &date
	return item
}
