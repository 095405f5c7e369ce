package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List routes with a timetable in storage",
	Args:  cobra.NoArgs,
	RunE:  routes,
}

func routes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	ids, err := s.ListRoutes()
	if err != nil {
		return err
	}

	for _, id := range ids {
		tt, err := s.ReadTimetable(id)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %d departures  %s\n", id, len(tt.Departures), tt.Stop)
	}

	return nil
}
