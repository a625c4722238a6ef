package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daygrid/internal/source"
	"daygrid/internal/state"
)

var listDate string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's events and exit",
	Long:  `List all events for today (or --date) in a simple text format and exit.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Day to list (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	day := time.Now()
	if listDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", listDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", listDate, err)
		}
		day = parsed
	}

	src := source.NewJSONSource(cfg.EventsFile, time.Local)
	events, err := src.Events()
	if err != nil {
		return fmt.Errorf("error loading events: %w", err)
	}

	ctrl := state.New(engineSettings(cfg), state.RealClock{})
	if err := ctrl.SetEvents(events); err != nil {
		return err
	}

	dayEvents := ctrl.EventsForDay(day)
	fmt.Printf("Events for %s:\n", day.Format("Mon Jan 2, 2006"))
	if len(dayEvents) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	for _, e := range dayEvents {
		fmt.Printf("  %s–%s  %s\n", e.Start.Format("15:04"), e.End.Format("15:04"), e.Title)
	}
	return nil
}
