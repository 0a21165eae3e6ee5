package supply

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCommunicationStrategy_SlotCounting(t *testing.T) {
	strategy := &communicationStrategy{}

	radio := &RecommendedItemDefinition{ID: "crank-radio", CategoryID: CategoryCommunication, Unit: UnitPiece}
	powerBank := &RecommendedItemDefinition{ID: "power-bank", CategoryID: CategoryCommunication, Unit: UnitPiece}
	flashlight := &RecommendedItemDefinition{ID: "flashlight", CategoryID: CategoryCommunication, Unit: UnitPiece}

	results := []ItemCalculationResult{
		// Fulfilled: actual >= recommended, quantity magnitude irrelevant
		{RecItem: radio, RecommendedQuantity: decimal.NewFromInt(1), ActualQuantity: decimal.NewFromInt(3)},
		// Fulfilled through the manual override
		{RecItem: powerBank, RecommendedQuantity: decimal.NewFromInt(2), ActualQuantity: decimal.NewFromInt(1), MarkedAsEnough: true},
		// Unfulfilled
		{RecItem: flashlight, RecommendedQuantity: decimal.NewFromInt(2), ActualQuantity: decimal.Zero},
	}

	ctx := &CalculationContext{Household: NewTestHousehold()}
	result := strategy.AggregateTotals(results, ctx)

	if !result.TotalActual.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected 2 fulfilled slots, got %s", result.TotalActual)
	}
	if !result.TotalNeeded.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected 3 slots, got %s", result.TotalNeeded)
	}
	if result.Unit != nil {
		t.Error("slot counts must not report a physical unit")
	}

	if len(result.Shortages) != 1 {
		t.Fatalf("expected only the unfulfilled, non-overridden slot, got %d", len(result.Shortages))
	}
	if result.Shortages[0].ItemID != "flashlight" {
		t.Errorf("expected flashlight shortage, got %s", result.Shortages[0].ItemID)
	}
}

func TestCommunicationStrategy_ActualIgnoresNameMatches(t *testing.T) {
	strategy := &communicationStrategy{}

	radioDef := &RecommendedItemDefinition{ID: "crank-radio", CategoryID: CategoryCommunication, Unit: UnitPiece}

	// A non-custom item whose name normalizes to the definition id but
	// whose reference points elsewhere must not fill the slot
	impostor := NewTestInventoryItem("battery-radio", CategoryCommunication, 5, UnitPiece)
	impostor.Name = "Crank Radio"
	genuine := NewTestInventoryItem("crank-radio", CategoryCommunication, 1, UnitPiece)

	ctx := &CalculationContext{
		Household: NewTestHousehold(),
		Inventory: []*InventoryItem{impostor, genuine},
	}

	actual := strategy.CalculateActualQuantity(nil, radioDef, ctx)
	if !actual.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected reference-only count 1, got %s", actual)
	}
}
