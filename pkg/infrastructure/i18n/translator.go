package i18n

import (
	"strings"

	"stockpile/pkg/supply"
)

// NewStaticTranslator builds a supply.TranslateFunc backed by a fixed
// message map. Params interpolate into {name}-style placeholders.
// Unknown keys come back unchanged so callers can detect the miss and
// fall back.
func NewStaticTranslator(messages map[string]string) supply.TranslateFunc {
	return func(key string, params map[string]string) string {
		message, ok := messages[key]
		if !ok {
			return key
		}
		for name, value := range params {
			message = strings.ReplaceAll(message, "{"+name+"}", value)
		}
		return message
	}
}

// DefaultEnglish returns the built-in English message set
func DefaultEnglish() map[string]string {
	return map[string]string{
		"alerts.expired":                   "{name} has expired",
		"alerts.expiringSoon":              "{name} expires in {days} days",
		"alerts.categoryOutOfStock":        "No stock in category {category}",
		"alerts.categoryCriticallyLow":     "Category {category} is critically low ({percent}%)",
		"alerts.categoryLowStock":          "Category {category} is running low ({percent}%)",
		"alerts.waterPreparationShortfall": "Water reserve does not cover food preparation, {liters} liters short",

		"categories.food":               "Food",
		"categories.water-beverages":    "Water & beverages",
		"categories.communication-info": "Communication & information",
		"categories.light-fire":         "Light & fire",
		"categories.hygiene":            "Hygiene",
		"categories.medicine":           "Medicine",
	}
}
