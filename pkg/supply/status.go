package supply

import "time"

// StatusFromPercentage maps a fulfillment percentage to a status.
// The 25% line is the same boundary used for "critically low" stock
// alerts.
func StatusFromPercentage(pct float64) Status {
	switch {
	case pct < CriticalThresholdPercent:
		return StatusCritical
	case pct < WarningThresholdPercent:
		return StatusWarning
	default:
		return StatusOK
	}
}

// ItemStatus classifies a single inventory item. Expiration takes
// precedence over quantity: an expired item is always critical, and
// one expiring within the soon window is at least a warning. The
// manual override yields ok unless the item is expired.
func ItemStatus(item *InventoryItem, now time.Time, soonThresholdDays int) Status {
	if item.ExpirationDate != nil && !item.NeverExpires {
		days := daysUntil(*item.ExpirationDate, now)
		if days < 0 {
			return StatusCritical
		}
		if days <= soonThresholdDays {
			return StatusWarning
		}
	}

	if item.MarkedAsEnough {
		return StatusOK
	}

	if item.RecommendedQuantity.IsPositive() {
		if item.Quantity.IsZero() {
			return StatusCritical
		}
		if item.Quantity.LessThan(item.RecommendedQuantity.Mul(LowStockRatio)) {
			return StatusWarning
		}
	}

	return StatusOK
}

// daysUntil returns the number of days from now until the given date,
// rounded up. Negative when the date has passed.
func daysUntil(date, now time.Time) int {
	diff := date.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
