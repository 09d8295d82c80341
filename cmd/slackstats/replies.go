package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hgebre/slackstats/internal/archive"
	"github.com/hgebre/slackstats/internal/config"
	"github.com/hgebre/slackstats/internal/extract"
)

func repliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replies <channel-dir>",
		Short: "Extract thread replies annotated with their parent thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := newLogger(cfg.LogLevel)
			loader := archive.NewLoader(log)

			replies, err := loader.LoadReplies(args[0])
			if err != nil {
				return err
			}
			if replies == nil {
				replies = []extract.ThreadReply{}
			}
			log.Info().Int("replies", len(replies)).Msg("extracted replies")

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(replies)
		},
	}
}
