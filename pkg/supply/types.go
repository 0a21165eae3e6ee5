package supply

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryID identifies a supply category
type CategoryID string

// Categories with category-specific calculation rules. Any other
// category id is handled by the default strategy.
const (
	CategoryFood           CategoryID = "food"
	CategoryWaterBeverages CategoryID = "water-beverages"
	CategoryCommunication  CategoryID = "communication-info"
)

// ItemRef references a recommended item definition in the catalog
type ItemRef string

// CustomItemRef marks a user-authored inventory item that has no
// catalog counterpart. Custom items are never matched by name.
const CustomItemRef ItemRef = "custom"

// Unit represents the unit of measure of a quantity
type Unit string

const (
	UnitPiece    Unit = "piece"
	UnitLiter    Unit = "liter"
	UnitKilogram Unit = "kilogram"
	UnitGram     Unit = "gram"
	UnitPackage  Unit = "package"
)

// Threshold and scaling constants shared across the engine
const (
	// CriticalThresholdPercent is the fulfillment percentage below which
	// a category is critical
	CriticalThresholdPercent = 25.0
	// WarningThresholdPercent is the fulfillment percentage below which
	// a category is a warning
	WarningThresholdPercent = 50.0
	// DefaultSoonThresholdDays is the default "expiring soon" window
	DefaultSoonThresholdDays = 14
)

var (
	// DrinkingWaterPerPersonDay is the daily drinking-water requirement
	// per person in liters
	DrinkingWaterPerPersonDay = decimal.NewFromInt(2)
	// PetRequirementFactor converts one pet into person-equivalent demand
	// for items flagged ScaleWithPets
	PetRequirementFactor = decimal.NewFromInt(1)
	// LowStockRatio is the fraction of the recommended quantity below
	// which an individual item counts as running low
	LowStockRatio = decimal.NewFromFloat(0.5)
)

// RecommendedItemDefinition is a catalog entry describing a suggested
// supply item and how its target quantity scales with the household.
// Definitions are created at catalog-build time and never mutated by
// the engine.
type RecommendedItemDefinition struct {
	ID              ItemRef
	CategoryID      CategoryID
	BaseQuantity    decimal.Decimal
	Unit            Unit
	ScaleWithPeople bool
	ScaleWithDays   bool
	ScaleWithPets   bool
	RequiresFreezer bool

	// Optional nutrition and conversion data. Invalid means "not
	// provided", which is distinct from an explicit zero.
	WeightPerUnit   decimal.NullDecimal // grams per unit
	CaloriesPer100g decimal.NullDecimal
	CaloriesPerUnit decimal.NullDecimal

	// RequiresWaterLiters is the food-preparation water needed per unit,
	// in liters. Positive when present.
	RequiresWaterLiters decimal.NullDecimal

	// DefaultExpirationMonths suggests a shelf life for new stock.
	// Zero means no suggestion.
	DefaultExpirationMonths int
}

// HouseholdConfig holds the person and pet counts and the coverage
// duration driving quantity scaling
type HouseholdConfig struct {
	Adults             int
	Children           int
	Pets               int
	SupplyDurationDays int
	UseFreezer         bool
}

// People returns the number of people in the household
func (h HouseholdConfig) People() int {
	return h.Adults + h.Children
}

// InventoryItem is a read-only snapshot of one stored supply record
type InventoryItem struct {
	ID         string
	Name       string
	CategoryID CategoryID

	// ItemRef links the item to its catalog definition, or carries
	// CustomItemRef for user-authored items.
	ItemRef ItemRef

	Quantity decimal.Decimal
	Unit     Unit

	// RecommendedQuantity is the scaled target cached by the caller
	// when the item was last saved.
	RecommendedQuantity decimal.Decimal

	ExpirationDate *time.Time
	NeverExpires   bool

	// MarkedAsEnough is the manual override indicating a
	// below-recommended quantity should be treated as sufficient.
	MarkedAsEnough bool

	// Optional per-item overrides of the catalog data
	CaloriesPerUnit    decimal.NullDecimal
	WeightPerUnit      decimal.NullDecimal // grams per unit
	Capacity           decimal.NullDecimal
	WaterLitersPerUnit decimal.NullDecimal
}

// ItemCalculationResult holds the per-item outcome of a category
// calculation. Results are ephemeral and recomputed on every call.
type ItemCalculationResult struct {
	RecItem *RecommendedItemDefinition

	// RecommendedQuantity is the scaled target for this household
	RecommendedQuantity decimal.Decimal

	// ActualQuantity is the aggregated matched quantity. For the food
	// category this is calories rather than units.
	ActualQuantity decimal.Decimal

	// MarkedAsEnough is true when any matched item carries the manual
	// override
	MarkedAsEnough bool
}

// CategoryShortage describes the unmet portion of one recommended item
type CategoryShortage struct {
	ItemID  ItemRef
	NameKey string
	Actual  decimal.Decimal
	Needed  decimal.Decimal
	Unit    Unit
	Missing decimal.Decimal
}

// CalorieBreakdown carries the calorie totals behind a food category
// result
type CalorieBreakdown struct {
	ActualCalories   decimal.Decimal
	RequiredCalories decimal.Decimal
}

// WaterBreakdown splits the water requirement into drinking and
// food-preparation needs
type WaterBreakdown struct {
	DrinkingLiters    decimal.Decimal
	PreparationLiters decimal.Decimal
	TotalLiters       decimal.Decimal
}

// ShortageCalculationResult is the aggregated outcome for one category.
// Shortages are ordered by missing amount, descending.
type ShortageCalculationResult struct {
	Shortages   []CategoryShortage
	TotalActual decimal.Decimal
	TotalNeeded decimal.Decimal

	// Unit is the shared unit of the category's recommended items.
	// Nil signals an item-count or mixed-unit total that should be
	// rendered as a count rather than a physical unit.
	Unit *Unit

	Calories *CalorieBreakdown
	Water    *WaterBreakdown
}

// CategoryReport is the exposed per-category surface: the aggregation
// result plus its classified status
type CategoryReport struct {
	CategoryID           CategoryID
	Status               Status
	CompletionPercentage float64
	Result               *ShortageCalculationResult
}

// Status classifies a fulfillment level
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Severity orders alerts; lower values sort first
type Severity int

const (
	SeverityCritical Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Alert is one notification about a shortfall or expiring stock.
// IDs are stable per subject and kind so a surrounding layer can use
// them as dismissal keys.
type Alert struct {
	ID       string
	Severity Severity
	Message  string
	ItemName string
}

// AlertCounts tallies alerts by severity for badge display
type AlertCounts struct {
	Critical int
	Warning  int
	Info     int
	Total    int
}

// NullDecimalFrom wraps a value as a present NullDecimal
func NullDecimalFrom(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// NullDecimalFromFloat wraps a float as a present NullDecimal
func NullDecimalFromFloat(f float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}
}
