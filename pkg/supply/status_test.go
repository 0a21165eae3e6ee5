package supply

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestStatusFromPercentage(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want Status
	}{
		{name: "zero", pct: 0, want: StatusCritical},
		{name: "just_below_critical", pct: 24.9, want: StatusCritical},
		{name: "critical_boundary", pct: 25, want: StatusWarning},
		{name: "just_below_warning", pct: 49.9, want: StatusWarning},
		{name: "warning_boundary", pct: 50, want: StatusOK},
		{name: "full", pct: 100, want: StatusOK},
		{name: "overfull", pct: 140, want: StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFromPercentage(tt.pct); got != tt.want {
				t.Errorf("StatusFromPercentage(%v) = %s, want %s", tt.pct, got, tt.want)
			}
		})
	}
}

func TestItemStatus_ExpirationPrecedence(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	expired := NewTestInventoryItem("canned-vegetables", CategoryFood, 100, UnitPiece)
	expired.RecommendedQuantity = decimal.NewFromInt(10)
	ExpiringAt(expired, now.Add(-48*time.Hour))

	// Plenty of stock, but expired wins
	if got := ItemStatus(expired, now, DefaultSoonThresholdDays); got != StatusCritical {
		t.Errorf("expired item must be critical, got %s", got)
	}

	soon := NewTestInventoryItem("canned-vegetables", CategoryFood, 100, UnitPiece)
	soon.RecommendedQuantity = decimal.NewFromInt(10)
	ExpiringAt(soon, now.Add(5*24*time.Hour))

	if got := ItemStatus(soon, now, DefaultSoonThresholdDays); got != StatusWarning {
		t.Errorf("soon-expiring item must be a warning, got %s", got)
	}
}

func TestItemStatus_MarkedAsEnough(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	marked := NewTestInventoryItem("candles", "light-fire", 1, UnitPiece)
	marked.RecommendedQuantity = decimal.NewFromInt(20)
	marked.MarkedAsEnough = true

	if got := ItemStatus(marked, now, DefaultSoonThresholdDays); got != StatusOK {
		t.Errorf("marked-as-enough must be ok, got %s", got)
	}

	// The override does not beat expiration
	ExpiringAt(marked, now.Add(-24*time.Hour))
	if got := ItemStatus(marked, now, DefaultSoonThresholdDays); got != StatusCritical {
		t.Errorf("expired overrides marked-as-enough, got %s", got)
	}
}

func TestItemStatus_QuantityLevels(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		quantity    float64
		recommended int64
		want        Status
	}{
		{name: "out_of_stock", quantity: 0, recommended: 10, want: StatusCritical},
		{name: "below_low_stock_ratio", quantity: 4, recommended: 10, want: StatusWarning},
		{name: "at_low_stock_ratio", quantity: 5, recommended: 10, want: StatusOK},
		{name: "fully_stocked", quantity: 10, recommended: 10, want: StatusOK},
		{name: "no_recommendation", quantity: 0, recommended: 0, want: StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewTestInventoryItem("candles", "light-fire", tt.quantity, UnitPiece)
			item.RecommendedQuantity = decimal.NewFromInt(tt.recommended)

			if got := ItemStatus(item, now, DefaultSoonThresholdDays); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestItemStatus_NeverExpiresIgnoresDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	item := NewTestInventoryItem("water-filter", CategoryWaterBeverages, 1, UnitPiece)
	item.NeverExpires = true
	ExpiringAt(item, now.Add(-24*time.Hour))

	if got := ItemStatus(item, now, DefaultSoonThresholdDays); got != StatusOK {
		t.Errorf("never-expiring item must ignore its date, got %s", got)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "four_days_ahead", date: now.Add(4 * 24 * time.Hour), want: 4},
		{name: "partial_day_rounds_up", date: now.Add(36 * time.Hour), want: 2},
		{name: "one_day_ago", date: now.Add(-24 * time.Hour), want: -1},
		{name: "later_today", date: now.Add(6 * time.Hour), want: 1},
		{name: "exactly_now", date: now, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysUntil(tt.date, now); got != tt.want {
				t.Errorf("daysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}
