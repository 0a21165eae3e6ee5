package supply

import "github.com/shopspring/decimal"

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// CalculateTotalWeight returns quantity times weight-per-unit
func CalculateTotalWeight(quantity, weightPerUnit decimal.Decimal) decimal.Decimal {
	return quantity.Mul(weightPerUnit)
}

// CalculateCaloriesFromWeight converts a weight in grams to calories
// using a per-100g ratio, rounded to whole calories
func CalculateCaloriesFromWeight(weightGrams, caloriesPer100g decimal.Decimal) decimal.Decimal {
	return weightGrams.Mul(caloriesPer100g).Div(hundred).Round(0)
}

// CalculateTotalCalories returns the calories contributed by a stock
// record. Catalog items are tracked by discrete unit while bulk stock
// may be recorded by mass, so a kilogram quantity with a known weight
// per unit is converted to a unit count before multiplying.
func CalculateTotalCalories(quantity, caloriesPerUnit decimal.Decimal, unit Unit, weightPerUnit decimal.NullDecimal) decimal.Decimal {
	if unit == UnitKilogram && weightPerUnit.Valid && weightPerUnit.Decimal.IsPositive() {
		units := quantity.Mul(thousand).Div(weightPerUnit.Decimal)
		return units.Mul(caloriesPerUnit).Round(0)
	}
	return quantity.Mul(caloriesPerUnit)
}

// ResolveCaloriesPerUnit resolves the calories-per-unit for an item
// through the fallback chain: an explicit user value, a value derived
// from the user-provided weight and the catalog per-100g ratio, the
// catalog default, or absent.
//
// A user value of exactly zero is treated as unset and falls through
// to the derived or catalog value. Callers that must honor an
// intentional zero read the stored field directly, as
// SumMatchingItemsCalories does.
func ResolveCaloriesPerUnit(userValue, userWeight, catalogPer100g, catalogDefault decimal.NullDecimal) decimal.NullDecimal {
	if userValue.Valid && !userValue.Decimal.IsZero() {
		return userValue
	}
	if userWeight.Valid && userWeight.Decimal.IsPositive() && catalogPer100g.Valid {
		return NullDecimalFrom(CalculateCaloriesFromWeight(userWeight.Decimal, catalogPer100g.Decimal))
	}
	if catalogDefault.Valid {
		return catalogDefault
	}
	return decimal.NullDecimal{}
}
