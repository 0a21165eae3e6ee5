package main

import (
	"flag"
	"fmt"
	"time"

	"stockpile/pkg/infrastructure/i18n"
	"stockpile/pkg/infrastructure/repositories/yaml"
	"stockpile/pkg/supply"
)

// Config holds command configuration from flags
type Config struct {
	ScenarioDir string
	Format      string
	SoonDays    int
	Help        bool
}

// CheckCommand runs a full supply check over a scenario directory
type CheckCommand struct {
	config Config
}

// NewCheckCommand creates a new check command
func NewCheckCommand(config Config) *CheckCommand {
	return &CheckCommand{config: config}
}

// Execute loads the scenario, runs every category and prints the
// report and alert list
func (c *CheckCommand) Execute() error {
	if c.config.Help {
		flag.Usage()
		return nil
	}

	if c.config.ScenarioDir == "" {
		return fmt.Errorf("scenario directory is required (-scenario)")
	}

	loader := yaml.NewLoader()
	scenario, err := loader.LoadScenario(c.config.ScenarioDir)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	translate := i18n.NewStaticTranslator(i18n.DefaultEnglish())

	engine := supply.NewEngine(nil, translate)
	reports := engine.CalculateAll(scenario.Inventory, scenario.Catalog, scenario.Household)

	generator := supply.NewAlertGeneratorWithConfig(translate, supply.AlertConfig{
		SoonThresholdDays: c.config.SoonDays,
	})
	alerts := generator.Generate(scenario.Inventory, &scenario.Household, scenario.Catalog, time.Now())

	return generateOutput(reports, alerts, c.config)
}
