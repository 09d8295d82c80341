package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hgebre/slackstats/internal/archive"
	"github.com/hgebre/slackstats/internal/config"
	"github.com/hgebre/slackstats/internal/render"
	"github.com/hgebre/slackstats/internal/slack"
	"github.com/hgebre/slackstats/internal/stats"
)

func statsCmd() *cobra.Command {
	var usersFile string
	var topN int
	var chart bool

	cmd := &cobra.Command{
		Use:   "stats <channel-dir|export-root>",
		Short: "Aggregate per-user message, reply, mention and link counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if usersFile == "" {
				usersFile = cfg.UsersFile
			}
			topN = resolveTopN(topN, cfg.TopN)

			log := newLogger(cfg.LogLevel)
			loader := archive.NewLoader(log)

			table, err := loadTable(loader, log, args[0])
			if err != nil {
				return err
			}

			users, err := slack.LoadUsers(usersFile)
			if err != nil {
				return fmt.Errorf("load users: %w", err)
			}
			dir := slack.NewDirectory(users)

			report := stats.Aggregate(table)

			sections := []struct {
				title  string
				counts stats.Counts
			}{
				{"Messages sent", report.Messages},
				{"Replies made", report.Replies},
				{"Mentions received", report.Mentions},
				{"Links posted", report.Links},
			}

			width := terminalWidth()
			for i, s := range sections {
				if i > 0 {
					fmt.Println()
				}
				resolved := stats.ResolveNames(s.counts, dir)
				if chart {
					entries := stats.Top(resolved, topN)
					fmt.Println(render.BarChart(s.title, entries, render.ChartOptions{Width: width}))
				} else {
					fmt.Println(render.Leaderboard(s.title, resolved, topN))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&usersFile, "users", "", "path to users.json (default: <archive_root>/users.json)")
	cmd.Flags().IntVar(&topN, "top", -1, "show only the top N users per metric (0 shows all)")
	cmd.Flags().BoolVar(&chart, "chart", false, "render bar charts instead of plain leaderboards")
	return cmd
}

// resolveTopN separates "flag unset" (negative) from an explicit 0, which
// requests the full leaderboard.
func resolveTopN(requested, fallback int) int {
	if requested < 0 {
		return fallback
	}
	return requested
}

// terminalWidth returns the stdout width, or 80 when stdout is not a tty.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
