package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stockpile/pkg/infrastructure/i18n"
	"stockpile/pkg/infrastructure/repositories/memory"
	"stockpile/pkg/supply"
)

func main() {
	// Create repositories
	catalogRepo := memory.NewCatalogRepository()
	inventoryRepo := memory.NewInventoryRepository()

	// Set up a small emergency stockpile
	household := setupStockpile(catalogRepo, inventoryRepo)

	catalog := catalogRepo.Effective()
	inventory := inventoryRepo.All()

	translate := i18n.NewStaticTranslator(i18n.DefaultEnglish())

	fmt.Println("🏠 Checking supplies for a family of three...")
	fmt.Printf("Coverage target: %d days\n", household.SupplyDurationDays)
	fmt.Println()

	// Run every category
	engine := supply.NewEngine(nil, translate)
	reports := engine.CalculateAll(inventory, catalog, household)

	fmt.Println("📊 Category Results:")
	for _, report := range reports {
		fmt.Printf("  %s: %.1f%% (%s)\n",
			report.CategoryID, report.CompletionPercentage, report.Status)
		for _, shortage := range report.Result.Shortages {
			fmt.Printf("    missing %s %s of %s\n",
				shortage.Missing, shortage.Unit, shortage.ItemID)
		}
	}
	fmt.Println()

	// Generate alerts
	generator := supply.NewAlertGenerator(translate)
	alerts := generator.Generate(inventory, &household, catalog, time.Now())

	if len(alerts) > 0 {
		fmt.Println("🚨 Alerts:")
		for _, alert := range alerts {
			fmt.Printf("  [%s] %s\n", alert.Severity, alert.Message)
		}
		fmt.Println()
	}

	counts := supply.CountAlerts(alerts)
	fmt.Printf("✅ Supply check complete: %d alerts (%d critical)\n",
		counts.Total, counts.Critical)
}

func setupStockpile(catalogRepo *memory.CatalogRepository, inventoryRepo *memory.InventoryRepository) supply.HouseholdConfig {
	household := supply.HouseholdConfig{
		Adults:             2,
		Children:           1,
		SupplyDurationDays: 10,
	}

	// Recommended items
	catalogRepo.Add(&supply.RecommendedItemDefinition{
		ID:              "drinking-water",
		CategoryID:      supply.CategoryWaterBeverages,
		BaseQuantity:    decimal.NewFromInt(2),
		Unit:            supply.UnitLiter,
		ScaleWithPeople: true,
		ScaleWithDays:   true,
	})

	catalogRepo.Add(&supply.RecommendedItemDefinition{
		ID:                  "noodles",
		CategoryID:          supply.CategoryFood,
		BaseQuantity:        decimal.NewFromFloat(0.2),
		Unit:                supply.UnitPackage,
		ScaleWithPeople:     true,
		ScaleWithDays:       true,
		WeightPerUnit:       supply.NullDecimalFromFloat(500),
		CaloriesPer100g:     supply.NullDecimalFromFloat(350),
		RequiresWaterLiters: supply.NullDecimalFromFloat(0.5),
	})

	catalogRepo.Add(&supply.RecommendedItemDefinition{
		ID:           "crank-radio",
		CategoryID:   supply.CategoryCommunication,
		BaseQuantity: decimal.NewFromInt(1),
		Unit:         supply.UnitPiece,
	})

	// Stock on hand
	soon := time.Now().AddDate(0, 0, 5)

	inventoryRepo.Add(&supply.InventoryItem{
		Name:                "Mineral Water",
		CategoryID:          supply.CategoryWaterBeverages,
		ItemRef:             "drinking-water",
		Quantity:            decimal.NewFromInt(24),
		Unit:                supply.UnitLiter,
		RecommendedQuantity: decimal.NewFromInt(60),
	})

	inventoryRepo.Add(&supply.InventoryItem{
		Name:                "Instant Noodles",
		CategoryID:          supply.CategoryFood,
		ItemRef:             "noodles",
		Quantity:            decimal.NewFromInt(4),
		Unit:                supply.UnitPackage,
		RecommendedQuantity: decimal.NewFromInt(6),
		ExpirationDate:      &soon,
	})

	inventoryRepo.Add(&supply.InventoryItem{
		Name:         "Board Games",
		CategoryID:   "entertainment",
		ItemRef:      supply.CustomItemRef,
		Quantity:     decimal.NewFromInt(3),
		Unit:         supply.UnitPiece,
		NeverExpires: true,
	})

	return household
}
