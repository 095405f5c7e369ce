package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"buswatch.dev/nextbus/parse"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Load timetables from a departures CSV into storage",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.LogLevel)

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	timetables, err := parse.ParseTimetables(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	s, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now().UTC()
	for _, tt := range timetables {
		// Reject out of order sequences before they reach storage.
		if _, err := tt.Schedule(); err != nil {
			return fmt.Errorf("route %s: %w", tt.Route, err)
		}

		tt.ImportedAt = now
		if err := s.WriteTimetable(tt); err != nil {
			return fmt.Errorf("writing route %s: %w", tt.Route, err)
		}

		logger.Info().
			Str("route", tt.Route).
			Int("departures", len(tt.Departures)).
			Msg("timetable imported")
	}

	return nil
}
