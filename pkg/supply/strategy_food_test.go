package supply

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFoodStrategy_CanHandle(t *testing.T) {
	strategy := &foodStrategy{}
	if !strategy.CanHandle(CategoryFood) {
		t.Error("expected food strategy to handle food category")
	}
	if strategy.CanHandle(CategoryWaterBeverages) {
		t.Error("food strategy must not handle other categories")
	}
}

func TestFoodStrategy_CalorieDenseSubstituteSatisfies(t *testing.T) {
	strategy := &foodStrategy{}

	// 10 recommended units of 100 calories each = 1000 calories needed
	recItem := &RecommendedItemDefinition{
		ID:              "canned-vegetables",
		CategoryID:      CategoryFood,
		BaseQuantity:    decimal.NewFromInt(10),
		Unit:            UnitPiece,
		CaloriesPerUnit: NullDecimalFromFloat(100),
	}

	// Two cans of a 600-calorie substitute cover it despite the low count
	dense := NewTestInventoryItem("canned-vegetables", CategoryFood, 2, UnitPiece)
	dense.CaloriesPerUnit = NullDecimalFromFloat(600)

	ctx := &CalculationContext{Household: HouseholdConfig{Adults: 1, SupplyDurationDays: 1}}

	actual := strategy.CalculateActualQuantity([]*InventoryItem{dense}, recItem, ctx)
	if !actual.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected 1200 calories, got %s", actual)
	}

	result := ItemCalculationResult{
		RecItem:             recItem,
		RecommendedQuantity: decimal.NewFromInt(10),
		ActualQuantity:      actual,
	}

	if !strategy.HasEnoughInventory(result) {
		t.Error("1200 actual calories must satisfy a 1000-calorie requirement")
	}
}

func TestFoodStrategy_AggregateComparesCalories(t *testing.T) {
	strategy := &foodStrategy{}

	perUnit100 := &RecommendedItemDefinition{
		ID:              "canned-vegetables",
		CategoryID:      CategoryFood,
		Unit:            UnitPiece,
		CaloriesPerUnit: NullDecimalFromFloat(100),
	}
	weightDerived := &RecommendedItemDefinition{
		ID:              "noodles",
		CategoryID:      CategoryFood,
		Unit:            UnitPackage,
		WeightPerUnit:   NullDecimalFromFloat(500),
		CaloriesPer100g: NullDecimalFromFloat(350),
	}

	results := []ItemCalculationResult{
		// needs 10 x 100 = 1000, has 400
		{RecItem: perUnit100, RecommendedQuantity: decimal.NewFromInt(10), ActualQuantity: decimal.NewFromInt(400)},
		// needs 2 x 1750 = 3500, has 3500
		{RecItem: weightDerived, RecommendedQuantity: decimal.NewFromInt(2), ActualQuantity: decimal.NewFromInt(3500)},
	}

	ctx := &CalculationContext{Household: NewTestHousehold()}
	result := strategy.AggregateTotals(results, ctx)

	if result.Calories == nil {
		t.Fatal("expected calorie breakdown")
	}
	if !result.Calories.RequiredCalories.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected 4500 required calories, got %s", result.Calories.RequiredCalories)
	}
	if !result.Calories.ActualCalories.Equal(decimal.NewFromInt(3900)) {
		t.Errorf("expected 3900 actual calories, got %s", result.Calories.ActualCalories)
	}
	if result.Unit != nil {
		t.Error("calorie totals must not report a physical unit")
	}

	if len(result.Shortages) != 1 {
		t.Fatalf("expected 1 shortage, got %d", len(result.Shortages))
	}
	if result.Shortages[0].ItemID != "canned-vegetables" {
		t.Errorf("expected canned-vegetables shortage, got %s", result.Shortages[0].ItemID)
	}
	if !result.Shortages[0].Missing.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected 600 missing calories, got %s", result.Shortages[0].Missing)
	}
}

func TestFoodStrategy_NoCalorieDataContributesZeroRequirement(t *testing.T) {
	strategy := &foodStrategy{}

	recItem := &RecommendedItemDefinition{ID: "salt", CategoryID: CategoryFood, Unit: UnitPackage}
	result := ItemCalculationResult{
		RecItem:             recItem,
		RecommendedQuantity: decimal.NewFromInt(3),
		ActualQuantity:      decimal.Zero,
	}

	if !strategy.HasEnoughInventory(result) {
		t.Error("a definition without calorie data must not register a calorie shortage")
	}
}

func TestFoodStrategy_MassStockConvertedInActual(t *testing.T) {
	strategy := &foodStrategy{}

	recItem := &RecommendedItemDefinition{
		ID:              "noodles",
		CategoryID:      CategoryFood,
		Unit:            UnitPackage,
		WeightPerUnit:   NullDecimalFromFloat(500),
		CaloriesPer100g: NullDecimalFromFloat(350),
	}

	// 1 kg of bulk noodles = 2 catalog units of 1750 calories each
	bulk := NewTestInventoryItem("noodles", CategoryFood, 1, UnitKilogram)

	ctx := &CalculationContext{Household: NewTestHousehold()}
	actual := strategy.CalculateActualQuantity([]*InventoryItem{bulk}, recItem, ctx)

	if !actual.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected 3500 calories, got %s", actual)
	}
}
