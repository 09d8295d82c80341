package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hgebre/slackstats/internal/archive"
	"github.com/hgebre/slackstats/internal/config"
	"github.com/hgebre/slackstats/internal/slack"
	"github.com/hgebre/slackstats/internal/stats"
	"github.com/hgebre/slackstats/internal/tui"
)

func browseCmd() *cobra.Command {
	var usersFile string

	cmd := &cobra.Command{
		Use:   "browse [channel-dir|export-root]",
		Short: "Browse per-user stats interactively",
		Long:  `Opens a TUI panel with the per-user leaderboard for each metric (tab cycles messages, replies, mentions, links). Type to filter by name, Enter copies the selected user ID.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path := cfg.ArchiveRoot
			if len(args) == 1 {
				path = args[0]
			}
			if usersFile == "" {
				usersFile = cfg.UsersFile
			}

			log := newLogger(cfg.LogLevel)
			loader := archive.NewLoader(log)

			table, err := loadTable(loader, log, path)
			if err != nil {
				return err
			}

			users, err := slack.LoadUsers(usersFile)
			if err != nil {
				return fmt.Errorf("load users: %w", err)
			}

			report := stats.Aggregate(table)
			return tui.Run(report, slack.NewDirectory(users))
		},
	}

	cmd.Flags().StringVar(&usersFile, "users", "", "path to users.json (default: <archive_root>/users.json)")
	return cmd
}
