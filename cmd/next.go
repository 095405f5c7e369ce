package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"buswatch.dev/nextbus"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next departure and the minutes until it",
	Args:  cobra.NoArgs,
	RunE:  next,
}

var atFlag string

func init() {
	nextCmd.Flags().StringVarP(&atFlag, "at", "a", "", "Time of day to resolve for, as H:MM (default: now)")
}

func next(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schedule, err := loadSchedule(cfg)
	if err != nil {
		return err
	}

	now := nextbus.DayTimeOf(time.Now())
	if atFlag != "" {
		now, err = nextbus.ParseClock(atFlag)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
	}

	display := nextbus.NewDisplay(schedule)
	display.Update(now)

	fmt.Printf("%s  %s\n", display.Counter(), display.Details())

	return nil
}
