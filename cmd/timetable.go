package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var timetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Print the day's departures for the selected route",
	Args:  cobra.NoArgs,
	RunE:  timetable,
}

func timetable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schedule, err := loadSchedule(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Route %s, %d departures\n", schedule.Route(), schedule.Len())
	for _, t := range schedule.Times() {
		fmt.Println(t)
	}

	return nil
}
