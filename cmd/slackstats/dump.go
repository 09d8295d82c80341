package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hgebre/slackstats/internal/archive"
	"github.com/hgebre/slackstats/internal/config"
	"github.com/hgebre/slackstats/internal/extract"
	"github.com/hgebre/slackstats/internal/slack"
)

// dumpHeader lists the flattened table's columns in their canonical order.
var dumpHeader = []string{
	"msg_id", "text", "attachments", "user", "mentions", "emojis",
	"reactions", "replies", "replies_to", "ts", "links", "link_count",
}

func dumpCmd() *cobra.Command {
	var format string
	var timestamps bool

	cmd := &cobra.Command{
		Use:   "dump <channel-dir|export-root>",
		Short: "Write the flattened message table to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := newLogger(cfg.LogLevel)
			loader := archive.NewLoader(log)

			table, err := loadTable(loader, log, args[0])
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				return dumpCSV(os.Stdout, table, timestamps)
			case "json":
				return dumpJSON(os.Stdout, table)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "format epoch columns as YYYY-MM-DD HH:MM:SS (csv output only)")
	return cmd
}

func dumpCSV(out io.Writer, table *extract.Table, timestamps bool) error {
	var tsCol, repliesToCol []string
	if timestamps {
		tsCol, _ = table.FormatTimestamps(extract.ColumnTs)
		repliesToCol, _ = table.FormatTimestamps(extract.ColumnRepliesTo)
	}

	w := csv.NewWriter(out)
	if err := w.Write(dumpHeader); err != nil {
		return err
	}
	for i, row := range table.Rows {
		ts := row.Ts
		repliesTo := formatEpoch(row.RepliesTo)
		if timestamps {
			ts = tsCol[i]
			repliesTo = repliesToCol[i]
		}
		record := []string{
			row.MsgID,
			row.Text,
			joinAttachments(row.Attachments),
			row.User,
			strings.Join(row.Mentions, ";"),
			strings.Join(row.Emojis, ";"),
			joinReactions(row.Reactions),
			joinReplies(row.Replies),
			repliesTo,
			ts,
			strings.Join(row.Links, ";"),
			strconv.Itoa(row.LinkCount),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func dumpJSON(out io.Writer, table *extract.Table) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(table.Rows)
}

func formatEpoch(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinReactions(reactions []slack.Reaction) string {
	parts := make([]string, len(reactions))
	for i, r := range reactions {
		parts[i] = fmt.Sprintf("%s:%d", r.Name, r.Count)
	}
	return strings.Join(parts, ";")
}

func joinReplies(replies []slack.Reply) string {
	parts := make([]string, len(replies))
	for i, r := range replies {
		parts[i] = r.User
	}
	return strings.Join(parts, ";")
}

func joinAttachments(attachments []slack.Attachment) string {
	parts := make([]string, len(attachments))
	for i, a := range attachments {
		if a.Title != "" {
			parts[i] = a.Title
		} else {
			parts[i] = a.Fallback
		}
	}
	return strings.Join(parts, ";")
}
