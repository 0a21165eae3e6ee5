package yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"stockpile/pkg/supply"
)

// Loader handles loading supply scenario data from YAML files
type Loader struct{}

// NewLoader creates a new YAML loader
func NewLoader() *Loader {
	return &Loader{}
}

// Scenario bundles the three inputs of a supply check
type Scenario struct {
	Household supply.HouseholdConfig
	Catalog   []*supply.RecommendedItemDefinition
	Inventory []*supply.InventoryItem
}

// catalogRecord mirrors one catalog.yaml entry. Optional numeric fields
// use pointers so absence stays distinct from an explicit zero.
type catalogRecord struct {
	ID                      string   `yaml:"id"`
	Category                string   `yaml:"category"`
	BaseQuantity            float64  `yaml:"base_quantity"`
	Unit                    string   `yaml:"unit"`
	ScaleWithPeople         bool     `yaml:"scale_with_people"`
	ScaleWithDays           bool     `yaml:"scale_with_days"`
	ScaleWithPets           bool     `yaml:"scale_with_pets"`
	RequiresFreezer         bool     `yaml:"requires_freezer"`
	WeightPerUnit           *float64 `yaml:"weight_per_unit"`
	CaloriesPer100g         *float64 `yaml:"calories_per_100g"`
	CaloriesPerUnit         *float64 `yaml:"calories_per_unit"`
	RequiresWaterLiters     *float64 `yaml:"requires_water_liters"`
	DefaultExpirationMonths int      `yaml:"default_expiration_months"`
	Disabled                bool     `yaml:"disabled"`
}

// inventoryRecord mirrors one inventory.yaml entry
type inventoryRecord struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Category            string   `yaml:"category"`
	ItemRef             string   `yaml:"item_ref"`
	Quantity            float64  `yaml:"quantity"`
	Unit                string   `yaml:"unit"`
	RecommendedQuantity float64  `yaml:"recommended_quantity"`
	ExpirationDate      string   `yaml:"expiration_date"`
	NeverExpires        bool     `yaml:"never_expires"`
	MarkedAsEnough      bool     `yaml:"marked_as_enough"`
	CaloriesPerUnit     *float64 `yaml:"calories_per_unit"`
	WeightPerUnit       *float64 `yaml:"weight_per_unit"`
	Capacity            *float64 `yaml:"capacity"`
	WaterLitersPerUnit  *float64 `yaml:"water_liters_per_unit"`
}

// householdRecord mirrors household.yaml
type householdRecord struct {
	Adults             int  `yaml:"adults"`
	Children           int  `yaml:"children"`
	Pets               int  `yaml:"pets"`
	SupplyDurationDays int  `yaml:"supply_duration_days"`
	UseFreezer         bool `yaml:"use_freezer"`
}

// LoadScenario loads catalog.yaml, inventory.yaml and household.yaml
// from a scenario directory
func (l *Loader) LoadScenario(dir string) (*Scenario, error) {
	household, err := l.LoadHousehold(filepath.Join(dir, "household.yaml"))
	if err != nil {
		return nil, err
	}

	catalog, err := l.LoadCatalog(filepath.Join(dir, "catalog.yaml"))
	if err != nil {
		return nil, err
	}

	inventory, err := l.LoadInventory(filepath.Join(dir, "inventory.yaml"))
	if err != nil {
		return nil, err
	}

	return &Scenario{Household: household, Catalog: catalog, Inventory: inventory}, nil
}

// LoadCatalog loads recommended item definitions from a YAML file.
// Entries marked disabled are dropped here so they never reach the
// calculation engine.
func (l *Loader) LoadCatalog(filename string) ([]*supply.RecommendedItemDefinition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filename, err)
	}

	var records []catalogRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	var defs []*supply.RecommendedItemDefinition
	for i, record := range records {
		if record.Disabled {
			continue
		}

		def, err := parseCatalogRecord(record)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}

		defs = append(defs, def)
	}

	return defs, nil
}

// LoadInventory loads inventory items from a YAML file
func (l *Loader) LoadInventory(filename string) ([]*supply.InventoryItem, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}

	var records []inventoryRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse inventory YAML: %w", err)
	}

	var items []*supply.InventoryItem
	for i, record := range records {
		item, err := parseInventoryRecord(record)
		if err != nil {
			return nil, fmt.Errorf("inventory entry %d: %w", i+1, err)
		}

		items = append(items, item)
	}

	return items, nil
}

// LoadHousehold loads the household configuration from a YAML file
func (l *Loader) LoadHousehold(filename string) (supply.HouseholdConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return supply.HouseholdConfig{}, fmt.Errorf("failed to open household file %s: %w", filename, err)
	}

	var record householdRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return supply.HouseholdConfig{}, fmt.Errorf("failed to parse household YAML: %w", err)
	}

	if record.Adults < 0 || record.Children < 0 || record.Pets < 0 {
		return supply.HouseholdConfig{}, fmt.Errorf("household counts must not be negative")
	}
	if record.SupplyDurationDays <= 0 {
		return supply.HouseholdConfig{}, fmt.Errorf("invalid supply_duration_days: %d (must be positive)", record.SupplyDurationDays)
	}

	return supply.HouseholdConfig{
		Adults:             record.Adults,
		Children:           record.Children,
		Pets:               record.Pets,
		SupplyDurationDays: record.SupplyDurationDays,
		UseFreezer:         record.UseFreezer,
	}, nil
}

// Helper functions for parsing YAML records

func parseCatalogRecord(record catalogRecord) (*supply.RecommendedItemDefinition, error) {
	if record.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	if record.Category == "" {
		return nil, fmt.Errorf("missing category")
	}
	if record.BaseQuantity < 0 {
		return nil, fmt.Errorf("invalid base_quantity: %v (must not be negative)", record.BaseQuantity)
	}

	unit, err := parseUnit(record.Unit)
	if err != nil {
		return nil, err
	}

	requiresWater := optionalDecimal(record.RequiresWaterLiters)
	if requiresWater.Valid && !requiresWater.Decimal.IsPositive() {
		return nil, fmt.Errorf("invalid requires_water_liters: %v (must be positive when present)", record.RequiresWaterLiters)
	}

	return &supply.RecommendedItemDefinition{
		ID:                      supply.ItemRef(record.ID),
		CategoryID:              supply.CategoryID(record.Category),
		BaseQuantity:            decimal.NewFromFloat(record.BaseQuantity),
		Unit:                    unit,
		ScaleWithPeople:         record.ScaleWithPeople,
		ScaleWithDays:           record.ScaleWithDays,
		ScaleWithPets:           record.ScaleWithPets,
		RequiresFreezer:         record.RequiresFreezer,
		WeightPerUnit:           optionalDecimal(record.WeightPerUnit),
		CaloriesPer100g:         optionalDecimal(record.CaloriesPer100g),
		CaloriesPerUnit:         optionalDecimal(record.CaloriesPerUnit),
		RequiresWaterLiters:     requiresWater,
		DefaultExpirationMonths: record.DefaultExpirationMonths,
	}, nil
}

func parseInventoryRecord(record inventoryRecord) (*supply.InventoryItem, error) {
	if record.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if record.Category == "" {
		return nil, fmt.Errorf("missing category")
	}
	if record.Quantity < 0 {
		return nil, fmt.Errorf("invalid quantity: %v (must not be negative)", record.Quantity)
	}

	unit, err := parseUnit(record.Unit)
	if err != nil {
		return nil, err
	}

	itemRef := supply.ItemRef(record.ItemRef)
	if itemRef == "" {
		itemRef = supply.CustomItemRef
	}

	var expirationDate *time.Time
	if record.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", record.ExpirationDate)
		if err != nil {
			return nil, fmt.Errorf("invalid expiration_date: %s (expected YYYY-MM-DD)", record.ExpirationDate)
		}
		expirationDate = &parsed
	}

	return &supply.InventoryItem{
		ID:                  record.ID,
		Name:                record.Name,
		CategoryID:          supply.CategoryID(record.Category),
		ItemRef:             itemRef,
		Quantity:            decimal.NewFromFloat(record.Quantity),
		Unit:                unit,
		RecommendedQuantity: decimal.NewFromFloat(record.RecommendedQuantity),
		ExpirationDate:      expirationDate,
		NeverExpires:        record.NeverExpires,
		MarkedAsEnough:      record.MarkedAsEnough,
		CaloriesPerUnit:     optionalDecimal(record.CaloriesPerUnit),
		WeightPerUnit:       optionalDecimal(record.WeightPerUnit),
		Capacity:            optionalDecimal(record.Capacity),
		WaterLitersPerUnit:  optionalDecimal(record.WaterLitersPerUnit),
	}, nil
}

func parseUnit(s string) (supply.Unit, error) {
	switch s {
	case "piece":
		return supply.UnitPiece, nil
	case "liter":
		return supply.UnitLiter, nil
	case "kilogram":
		return supply.UnitKilogram, nil
	case "gram":
		return supply.UnitGram, nil
	case "package":
		return supply.UnitPackage, nil
	default:
		return supply.UnitPiece, fmt.Errorf("invalid unit: %s (expected: piece, liter, kilogram, gram, or package)", s)
	}
}

func optionalDecimal(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return supply.NullDecimalFrom(decimal.NewFromFloat(*f))
}
