package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/april2040/singularity-calendar/internal/browser"
	"github.com/april2040/singularity-calendar/internal/calendar"
	"github.com/april2040/singularity-calendar/internal/content"
	"github.com/april2040/singularity-calendar/internal/dateutil"
	"github.com/april2040/singularity-calendar/internal/feed"
	"github.com/april2040/singularity-calendar/internal/tui"
)

var (
	flagHistoryType string
	flagWeek        int
	flagFeedTimeout time.Duration
	flagOpen        int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch a historical benchmark from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		t := flagHistoryType
		if t == "" {
			t = a.cfg.GetHistoryType()
		}
		data := a.client.FetchHistoryBenchmark(cmd.Context(), t)
		if data == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "No history benchmark available.")
			return nil
		}
		return printJSON(cmd.OutOrStdout(), data)
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show this week's theme",
	Long: `Show the weekly theme from the backend. When the backend is unreachable the
local quarterly theme table is used instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		now := time.Now()
		week := flagWeek
		if week <= 0 {
			week = dateutil.WeekNumber(now)
			if week < 1 {
				week = 1
			}
		}
		if data := a.client.FetchWeeklyTheme(cmd.Context(), week); data != nil {
			return printJSON(cmd.OutOrStdout(), data)
		}
		local := localWeekly(flagWeek, now)
		fmt.Fprintf(cmd.OutOrStdout(), "第%d周 · %s\n", local.Week, local.Theme)
		fmt.Fprintf(cmd.OutOrStdout(), "Q%d 主题: %v\n", local.Quarter, local.Themes)
		fmt.Fprintln(cmd.OutOrStdout(), tui.SourceLabel(calendar.SourceLocal))
		return nil
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List AI news from the backend and configured feeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		var apiItems []feed.Item
		for i, v := range a.client.FetchNews(cmd.Context()) {
			apiItems = append(apiItems, feed.FromAPI(v, i))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), flagFeedTimeout)
		result := feed.FetchAll(ctx, feed.NewRSSFetcher(), a.cfg.EnabledFeeds())
		cancel()
		for _, e := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "  [warn] %v\n", e)
		}

		items := feed.Merge(apiItems, result.Items)
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No news.")
			return nil
		}
		if flagOpen > 0 {
			if flagOpen > len(items) {
				return fmt.Errorf("--open %d: only %d items", flagOpen, len(items))
			}
			return browser.New().Open(items[flagOpen-1].Link)
		}
		printNews(cmd.OutOrStdout(), items)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open a live card that refreshes on demand",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return tui.Run(a.coord, time.Now())
	},
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryType, "type", "", "event type (defaults to history_type from config)")
	weeklyCmd.Flags().IntVar(&flagWeek, "week", 0, "week number (defaults to the current week)")
	newsCmd.Flags().IntVar(&flagOpen, "open", 0, "open the Nth item in the browser instead of listing")
	newsCmd.Flags().DurationVar(&flagFeedTimeout, "feed-timeout", 30*time.Second, "timeout for fetching configured feeds")
}

// localWeekly picks the fallback theme: the requested week's own quarter
// when --week is given, otherwise the week containing now.
func localWeekly(week int, now time.Time) content.Weekly {
	if week > 0 {
		return content.WeeklyThemeForWeek(week)
	}
	return content.WeeklyTheme(now)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printNews(w io.Writer, items []feed.Item) {
	for i, it := range items {
		fmt.Fprintf(w, "%2d. %s", i+1, it.Title)
		if it.Source != "" {
			fmt.Fprintf(w, "  (%s)", it.Source)
		}
		fmt.Fprintln(w)
		if it.Link != "" {
			fmt.Fprintf(w, "    %s\n", it.Link)
		}
		if it.Summary != "" {
			fmt.Fprintf(w, "    %s\n", it.Summary)
		}
	}
}
