package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hgebre/slackstats/internal/archive"
	"github.com/hgebre/slackstats/internal/config"
	"github.com/hgebre/slackstats/internal/slack"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify the export root, metadata files, and channel contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Export root ===")
			fmt.Println(checkDir("Archive", cfg.ArchiveRoot))

			fmt.Println("\n=== Metadata ===")
			if users, err := slack.LoadUsers(cfg.UsersFile); err != nil {
				fmt.Printf("  users.json: %v\n", err)
			} else {
				fmt.Printf("  users.json: %d users\n", len(users))
			}
			if channels, err := slack.LoadChannels(archive.ChannelsPath(cfg.ArchiveRoot)); err != nil {
				fmt.Printf("  channels.json: %v\n", err)
			} else {
				fmt.Printf("  channels.json: %d channels\n", len(channels))
			}

			fmt.Println("\n=== Channels ===")
			channels, err := archive.ScanRoot(cfg.ArchiveRoot)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
				return nil
			}
			if len(channels) == 0 {
				fmt.Println("  no channel directories found")
				return nil
			}

			log := newLogger("error") // keep doctor output clean
			loader := archive.NewLoader(log)
			for _, ch := range channels {
				table, err := loader.LoadChannel(ch.Path)
				if err != nil {
					fmt.Printf("  %-24s %d day files, load error: %v\n", ch.Name, len(ch.Files), err)
					continue
				}
				fmt.Printf("  %-24s %d day files, %d messages\n", ch.Name, len(ch.Files), table.Len())
			}
			return nil
		},
	}
}

// checkDir reports a directory's status as a display line; a missing root
// is a finding, not a failure.
func checkDir(label, path string) string {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return fmt.Sprintf("  %s: %s (NOT FOUND)", label, path)
	case err != nil:
		return fmt.Sprintf("  %s: %s (%v)", label, path, err)
	case !info.IsDir():
		return fmt.Sprintf("  %s: %s (not a directory)", label, path)
	default:
		return fmt.Sprintf("  %s: %s (ok)", label, path)
	}
}
