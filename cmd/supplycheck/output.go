package main

import (
	"encoding/json"
	"fmt"
	"time"

	"stockpile/pkg/supply"
)

// generateOutput generates formatted output based on configuration
func generateOutput(reports []*supply.CategoryReport, alerts []supply.Alert, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(reports, alerts)
	case "json":
		return generateJSONOutput(reports, alerts)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput generates human-readable text output
func generateTextOutput(reports []*supply.CategoryReport, alerts []supply.Alert) error {
	var output string

	// Header
	output += "═══════════════════════════════════════════════════════════════\n"
	output += "                    SUPPLY CHECK RESULTS\n"
	output += "═══════════════════════════════════════════════════════════════\n\n"

	counts := supply.CountAlerts(alerts)

	// Summary statistics
	output += "SUMMARY\n"
	output += fmt.Sprintf("  Categories: %d\n", len(reports))
	output += fmt.Sprintf("  Alerts: %d (%d critical, %d warning)\n",
		counts.Total, counts.Critical, counts.Warning)
	output += "\n"

	// Per-category reports
	if len(reports) > 0 {
		output += "CATEGORIES\n"
		output += "────────────────────────────────────────────────────────────────\n"

		for _, report := range reports {
			output += fmt.Sprintf("Category: %-25s %6.1f%%  [%s]\n",
				report.CategoryID,
				report.CompletionPercentage,
				report.Status)

			result := report.Result
			if result.Unit != nil {
				output += fmt.Sprintf("  Stocked: %s %s of %s %s\n",
					result.TotalActual, *result.Unit,
					result.TotalNeeded, *result.Unit)
			} else {
				output += fmt.Sprintf("  Stocked: %s of %s\n",
					result.TotalActual, result.TotalNeeded)
			}

			if result.Calories != nil {
				output += fmt.Sprintf("  Calories: %s of %s kcal\n",
					result.Calories.ActualCalories,
					result.Calories.RequiredCalories)
			}
			if result.Water != nil {
				output += fmt.Sprintf("  Water: %s l drinking + %s l preparation = %s l\n",
					result.Water.DrinkingLiters,
					result.Water.PreparationLiters,
					result.Water.TotalLiters)
			}

			for _, shortage := range result.Shortages {
				output += fmt.Sprintf("  Missing: %-30s %s %s\n",
					shortage.NameKey, shortage.Missing, shortage.Unit)
			}
			output += "\n"
		}
	}

	// Alerts
	if len(alerts) > 0 {
		output += "ALERTS\n"
		output += "────────────────────────────────────────────────────────────────\n"

		for _, alert := range alerts {
			output += fmt.Sprintf("[%-8s] %s\n", alert.Severity, alert.Message)
		}
		output += "\n"
	}

	output += "═══════════════════════════════════════════════════════════════\n"

	fmt.Print(output)
	return nil
}

// generateJSONOutput generates JSON output
func generateJSONOutput(reports []*supply.CategoryReport, alerts []supply.Alert) error {
	type jsonShortage struct {
		ItemID  string `json:"item_id"`
		Name    string `json:"name"`
		Actual  string `json:"actual"`
		Needed  string `json:"needed"`
		Missing string `json:"missing"`
		Unit    string `json:"unit"`
	}

	type jsonCategory struct {
		CategoryID           string         `json:"category_id"`
		Status               string         `json:"status"`
		CompletionPercentage float64        `json:"completion_percentage"`
		TotalActual          string         `json:"total_actual"`
		TotalNeeded          string         `json:"total_needed"`
		Unit                 string         `json:"unit,omitempty"`
		ActualCalories       string         `json:"actual_calories,omitempty"`
		RequiredCalories     string         `json:"required_calories,omitempty"`
		DrinkingLiters       string         `json:"drinking_liters,omitempty"`
		PreparationLiters    string         `json:"preparation_liters,omitempty"`
		Shortages            []jsonShortage `json:"shortages"`
	}

	type jsonAlert struct {
		ID       string `json:"id"`
		Severity string `json:"severity"`
		Message  string `json:"message"`
		ItemName string `json:"item_name,omitempty"`
	}

	jsonResult := struct {
		Metadata struct {
			GeneratedAt string `json:"generated_at"`
		} `json:"metadata"`
		Summary struct {
			CategoriesCount int `json:"categories_count"`
			AlertsCritical  int `json:"alerts_critical"`
			AlertsWarning   int `json:"alerts_warning"`
			AlertsTotal     int `json:"alerts_total"`
		} `json:"summary"`
		Categories []jsonCategory `json:"categories"`
		Alerts     []jsonAlert    `json:"alerts"`
	}{}

	jsonResult.Metadata.GeneratedAt = time.Now().Format(time.RFC3339)

	counts := supply.CountAlerts(alerts)
	jsonResult.Summary.CategoriesCount = len(reports)
	jsonResult.Summary.AlertsCritical = counts.Critical
	jsonResult.Summary.AlertsWarning = counts.Warning
	jsonResult.Summary.AlertsTotal = counts.Total

	for _, report := range reports {
		result := report.Result
		category := jsonCategory{
			CategoryID:           string(report.CategoryID),
			Status:               report.Status.String(),
			CompletionPercentage: report.CompletionPercentage,
			TotalActual:          result.TotalActual.String(),
			TotalNeeded:          result.TotalNeeded.String(),
			Shortages:            []jsonShortage{},
		}
		if result.Unit != nil {
			category.Unit = string(*result.Unit)
		}
		if result.Calories != nil {
			category.ActualCalories = result.Calories.ActualCalories.String()
			category.RequiredCalories = result.Calories.RequiredCalories.String()
		}
		if result.Water != nil {
			category.DrinkingLiters = result.Water.DrinkingLiters.String()
			category.PreparationLiters = result.Water.PreparationLiters.String()
		}
		for _, shortage := range result.Shortages {
			category.Shortages = append(category.Shortages, jsonShortage{
				ItemID:  string(shortage.ItemID),
				Name:    shortage.NameKey,
				Actual:  shortage.Actual.String(),
				Needed:  shortage.Needed.String(),
				Missing: shortage.Missing.String(),
				Unit:    string(shortage.Unit),
			})
		}
		jsonResult.Categories = append(jsonResult.Categories, category)
	}

	for _, alert := range alerts {
		jsonResult.Alerts = append(jsonResult.Alerts, jsonAlert{
			ID:       alert.ID,
			Severity: alert.Severity.String(),
			Message:  alert.Message,
			ItemName: alert.ItemName,
		})
	}

	jsonBytes, err := json.MarshalIndent(jsonResult, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Printf("%s\n", jsonBytes)
	return nil
}
