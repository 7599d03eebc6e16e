package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/april2040/singularity-calendar/internal/tui"
)

var (
	flagDate    string
	flagRefresh bool
	flagJSON    bool
	flagPlain   bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the calendar card for today or a given date",
	RunE:  runToday,
}

func addTodayFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagDate, "date", "", "show the card for this date (YYYY-MM-DD)")
	c.Flags().BoolVar(&flagRefresh, "refresh", false, "ignore the cached entry and fetch again")
	c.Flags().BoolVar(&flagJSON, "json", false, "print the entry as JSON")
	c.Flags().BoolVar(&flagPlain, "plain", false, "print without colors or borders")
}

func init() {
	addTodayFlags(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	d, err := parseDate(flagDate, time.Now())
	if err != nil {
		return fmt.Errorf("invalid --date value: %w", err)
	}

	a, err := getApp()
	if err != nil {
		return err
	}

	entry := a.coord.LoadTodayData(cmd.Context(), d, flagRefresh)
	state := a.coord.Snapshot()

	out := cmd.OutOrStdout()
	switch {
	case flagJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entry)
	case flagPlain:
		fmt.Fprint(out, tui.RenderPlain(entry))
	default:
		fmt.Fprintln(out, tui.RenderCard(entry, nil, 72))
		fmt.Fprintln(out, tui.SourceLabel(state.Source))
	}

	if state.Err != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "  [warn] %s\n", state.Err)
	}
	return nil
}

func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	// Keep the wall-clock time of now so same-day checks behave as for today.
	return time.Date(t.Year(), t.Month(), t.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}
