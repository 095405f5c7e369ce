package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"buswatch.dev/nextbus"
	"buswatch.dev/nextbus/config"
	"buswatch.dev/nextbus/parse"
	"buswatch.dev/nextbus/storage"
)

var rootCmd = &cobra.Command{
	Use:          "nextbus",
	Short:        "Minutes until the next bus",
	Long:         "Shows the next departure of a bus route, the way a watchface would",
	SilenceUsage: true,
}

var (
	configPath    string
	routeFlag     string
	timetableFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "nextbus.yml", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&routeFlag, "route", "r", "", "Route to display (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&timetableFlag, "timetable", "t", "", "Timetable CSV to read (overrides config)")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(timetableCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(routesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Reads the config file and applies flag overrides. A missing file
// at the default path means defaults; a missing explicitly given
// path is an error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if routeFlag != "" {
		cfg.Route = routeFlag
	}
	if timetableFlag != "" {
		cfg.Timetable = timetableFlag
	}

	return cfg, nil
}

func setupLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	// Logs go to stderr. Stdout belongs to the display.
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}

	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}

func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "", "memory":
		return storage.NewMemoryStorage(), nil
	case "sqlite":
		return storage.NewSQLiteStorage(storage.SQLiteConfig{
			OnDisk:    true,
			Directory: cfg.Storage.Directory,
		})
	case "postgres":
		return storage.NewPSQLStorage(cfg.Storage.DSN, false)
	}

	return nil, fmt.Errorf("unsupported storage backend '%s'", cfg.Storage.Backend)
}

// Picks the schedule to display. An explicitly given timetable file
// wins, then the configured storage, then the compiled in route 700
// table.
func loadSchedule(cfg *config.Config) (*nextbus.Schedule, error) {
	if cfg.Timetable != "" {
		f, err := os.Open(cfg.Timetable)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		timetables, err := parse.ParseTimetables(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", cfg.Timetable, err)
		}

		for _, tt := range timetables {
			if tt.Route == cfg.Route {
				return tt.Schedule()
			}
		}

		return nil, fmt.Errorf("route %s not found in %s", cfg.Route, cfg.Timetable)
	}

	s, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	tt, err := s.ReadTimetable(cfg.Route)
	if err == nil {
		return tt.Schedule()
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("reading timetable: %w", err)
	}

	if cfg.Route == nextbus.DefaultRoute {
		return nextbus.DefaultSchedule()
	}

	return nil, fmt.Errorf("no timetable found for route %s", cfg.Route)
}
