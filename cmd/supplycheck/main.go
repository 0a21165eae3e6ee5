package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing YAML files",
		)
		format   = flag.String("format", "text", "Output format: text, json")
		soonDays = flag.Int("soon-days", 0, "Expiring-soon window in days (0 uses the default)")
		help     = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := Config{
		ScenarioDir: *scenarioDir,
		Format:      *format,
		SoonDays:    *soonDays,
		Help:        *help,
	}

	cmd := NewCheckCommand(config)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
