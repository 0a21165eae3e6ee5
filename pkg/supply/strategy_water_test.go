package supply

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWaterStrategy_SplitsDrinkingAndPreparation(t *testing.T) {
	strategy := &waterStrategy{}

	waterDef := &RecommendedItemDefinition{
		ID:              "drinking-water",
		CategoryID:      CategoryWaterBeverages,
		BaseQuantity:    decimal.NewFromInt(2),
		Unit:            UnitLiter,
		ScaleWithPeople: true,
		ScaleWithDays:   true,
	}
	noodlesDef := &RecommendedItemDefinition{
		ID:                  "noodles",
		CategoryID:          CategoryFood,
		Unit:                UnitPackage,
		RequiresWaterLiters: NullDecimalFromFloat(0.5),
	}

	noodles := NewTestInventoryItem("noodles", CategoryFood, 4, UnitPackage)
	water := NewTestInventoryItem("drinking-water", CategoryWaterBeverages, 10, UnitLiter)

	household := HouseholdConfig{Adults: 2, SupplyDurationDays: 3}
	ctx := &CalculationContext{
		Household: household,
		Inventory: []*InventoryItem{noodles, water},
		Catalog:   []*RecommendedItemDefinition{waterDef, noodlesDef},
	}

	results := []ItemCalculationResult{
		{RecItem: waterDef, RecommendedQuantity: decimal.NewFromInt(12), ActualQuantity: decimal.NewFromInt(10)},
	}

	result := strategy.AggregateTotals(results, ctx)

	if result.Water == nil {
		t.Fatal("expected water breakdown")
	}
	// 2 people x 2 liters x 3 days
	if !result.Water.DrinkingLiters.Equal(decimal.NewFromInt(12)) {
		t.Errorf("expected 12 drinking liters, got %s", result.Water.DrinkingLiters)
	}
	// 4 packages x 0.5 liters
	if !result.Water.PreparationLiters.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected 2 preparation liters, got %s", result.Water.PreparationLiters)
	}
	if !result.TotalNeeded.Equal(decimal.NewFromInt(14)) {
		t.Errorf("expected total needed 14, got %s", result.TotalNeeded)
	}
	if !result.TotalActual.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected total actual 10, got %s", result.TotalActual)
	}
}

func TestWaterStrategy_ItemOverrideTakesPrecedence(t *testing.T) {
	noodlesDef := &RecommendedItemDefinition{
		ID:                  "noodles",
		CategoryID:          CategoryFood,
		Unit:                UnitPackage,
		RequiresWaterLiters: NullDecimalFromFloat(0.5),
	}

	noodles := NewTestInventoryItem("noodles", CategoryFood, 2, UnitPackage)
	noodles.WaterLitersPerUnit = NullDecimalFromFloat(1)

	got := preparationWaterLiters([]*InventoryItem{noodles}, []*RecommendedItemDefinition{noodlesDef})
	if !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected 2 liters from the per-item override, got %s", got)
	}
}

func TestWaterStrategy_NoPreparationRequirements(t *testing.T) {
	candlesDef := &RecommendedItemDefinition{ID: "candles", CategoryID: "light-fire", Unit: UnitPiece}
	candles := NewTestInventoryItem("candles", "light-fire", 10, UnitPiece)

	got := preparationWaterLiters([]*InventoryItem{candles}, []*RecommendedItemDefinition{candlesDef})
	if !got.IsZero() {
		t.Errorf("expected zero preparation water, got %s", got)
	}
}

func TestDrinkingWaterLiters(t *testing.T) {
	household := HouseholdConfig{Adults: 2, Children: 1, SupplyDurationDays: 10}
	got := drinkingWaterLiters(household)
	if !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected 60 liters (3 people x 2 x 10 days), got %s", got)
	}
}
