package supply

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// AlertConfig adjusts alert generation
type AlertConfig struct {
	// SoonThresholdDays is the window for "expiring soon" warnings
	SoonThresholdDays int
}

// AlertGenerator derives the alert list from inventory, household
// configuration and the catalog. Generation is stateless; dismissal
// tracking belongs to a surrounding layer and keys off the stable
// alert ids.
type AlertGenerator struct {
	translate TranslateFunc
	soonDays  int
}

// NewAlertGenerator creates a generator with the default expiring-soon
// window
func NewAlertGenerator(translate TranslateFunc) *AlertGenerator {
	return NewAlertGeneratorWithConfig(translate, AlertConfig{
		SoonThresholdDays: DefaultSoonThresholdDays,
	})
}

// NewAlertGeneratorWithConfig creates a generator with a custom
// configuration
func NewAlertGeneratorWithConfig(translate TranslateFunc, config AlertConfig) *AlertGenerator {
	if translate == nil {
		translate = passthroughTranslate
	}
	soonDays := config.SoonThresholdDays
	if soonDays <= 0 {
		soonDays = DefaultSoonThresholdDays
	}
	return &AlertGenerator{translate: translate, soonDays: soonDays}
}

// Generate produces the full alert list for one point in time, sorted
// by severity ascending with generation order preserved for ties
// (expiration, then stock, then water). The household is required only
// for the water-preparation alert; without it that alert is skipped.
// Callers computing several related results must capture now once and
// reuse it.
func (g *AlertGenerator) Generate(inventory []*InventoryItem, household *HouseholdConfig, catalog []*RecommendedItemDefinition, now time.Time) []Alert {
	var alerts []Alert

	alerts = append(alerts, g.expirationAlerts(inventory, now)...)
	alerts = append(alerts, g.categoryStockAlerts(inventory)...)
	if household != nil {
		alerts = append(alerts, g.waterPreparationAlerts(inventory, *household, catalog)...)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity < alerts[j].Severity
	})

	return alerts
}

// expirationAlerts raises one alert per expired or soon-expiring item
func (g *AlertGenerator) expirationAlerts(inventory []*InventoryItem, now time.Time) []Alert {
	var alerts []Alert

	for _, item := range inventory {
		if item.NeverExpires || item.ExpirationDate == nil {
			continue
		}

		days := daysUntil(*item.ExpirationDate, now)
		name := displayName(item, g.translate)

		switch {
		case days < 0:
			alerts = append(alerts, Alert{
				ID:       "expired-" + item.ID,
				Severity: SeverityCritical,
				Message:  g.translate("alerts.expired", map[string]string{"name": name}),
				ItemName: name,
			})
		case days <= g.soonDays:
			alerts = append(alerts, Alert{
				ID:       "expiring-soon-" + item.ID,
				Severity: SeverityWarning,
				Message: g.translate("alerts.expiringSoon", map[string]string{
					"name": name,
					"days": strconv.Itoa(days),
				}),
				ItemName: name,
			})
		}
	}

	return alerts
}

// categoryStockAlerts raises at most one alert per category with
// stocked items, comparing summed quantities against the cached
// recommended quantities. An actual of exactly zero is always critical
// through its own id, regardless of how small the target is.
func (g *AlertGenerator) categoryStockAlerts(inventory []*InventoryItem) []Alert {
	type categoryTotals struct {
		actual decimal.Decimal
		needed decimal.Decimal
	}

	totals := make(map[CategoryID]*categoryTotals)
	var order []CategoryID

	for _, item := range inventory {
		t, ok := totals[item.CategoryID]
		if !ok {
			t = &categoryTotals{actual: decimal.Zero, needed: decimal.Zero}
			totals[item.CategoryID] = t
			order = append(order, item.CategoryID)
		}
		t.actual = t.actual.Add(item.Quantity)
		t.needed = t.needed.Add(item.RecommendedQuantity)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var alerts []Alert
	for _, category := range order {
		t := totals[category]
		if !t.needed.IsPositive() {
			continue
		}

		categoryName := g.translate("categories."+string(category), nil)

		if t.actual.IsZero() {
			alerts = append(alerts, Alert{
				ID:       "category-out-of-stock-" + string(category),
				Severity: SeverityCritical,
				Message:  g.translate("alerts.categoryOutOfStock", map[string]string{"category": categoryName}),
			})
			continue
		}

		pct, _ := t.actual.Div(t.needed).Mul(hundred).Float64()
		params := map[string]string{
			"category": categoryName,
			"percent":  strconv.Itoa(int(math.Round(pct))),
		}

		switch {
		case pct < CriticalThresholdPercent:
			alerts = append(alerts, Alert{
				ID:       "category-critically-low-" + string(category),
				Severity: SeverityCritical,
				Message:  g.translate("alerts.categoryCriticallyLow", params),
			})
		case pct < WarningThresholdPercent:
			alerts = append(alerts, Alert{
				ID:       "category-low-stock-" + string(category),
				Severity: SeverityWarning,
				Message:  g.translate("alerts.categoryLowStock", params),
			})
		}
	}

	return alerts
}

// waterPreparationAlerts fires when the water remaining after drinking
// needs cannot cover food-preparation needs, even if the category's
// overall percentage looks adequate
func (g *AlertGenerator) waterPreparationAlerts(inventory []*InventoryItem, household HouseholdConfig, catalog []*RecommendedItemDefinition) []Alert {
	preparation := preparationWaterLiters(inventory, catalog)
	if !preparation.IsPositive() {
		return nil
	}

	stocked := sumQuantities(itemsInCategory(inventory, CategoryWaterBeverages))
	remaining := stocked.Sub(drinkingWaterLiters(household))

	shortfall := preparation.Sub(remaining)
	if !shortfall.IsPositive() {
		return nil
	}

	// Rounded up to one decimal
	liters := shortfall.Mul(decimal.NewFromInt(10)).Ceil().Div(decimal.NewFromInt(10))

	return []Alert{{
		ID:       "water-preparation-shortfall",
		Severity: SeverityWarning,
		Message: g.translate("alerts.waterPreparationShortfall", map[string]string{
			"liters": liters.StringFixed(1),
		}),
	}}
}

// CountAlerts tallies alerts by severity for badge display
func CountAlerts(alerts []Alert) AlertCounts {
	counts := AlertCounts{Total: len(alerts)}
	for _, alert := range alerts {
		switch alert.Severity {
		case SeverityCritical:
			counts.Critical++
		case SeverityWarning:
			counts.Warning++
		case SeverityInfo:
			counts.Info++
		}
	}
	return counts
}
