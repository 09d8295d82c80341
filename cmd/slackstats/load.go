package main

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/hgebre/slackstats/internal/archive"
	"github.com/hgebre/slackstats/internal/extract"
)

// loadTable flattens a path into one table. The path may be a single channel
// directory of day files or an export root; for a root, all channel tables
// are concatenated in channel-name order.
func loadTable(l *archive.Loader, log zerolog.Logger, path string) (*extract.Table, error) {
	files, err := archive.ScanChannel(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	if len(files) > 0 {
		return l.LoadChannel(path)
	}

	tables, err := l.LoadArchive(path)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no JSON day files or channels under %s", path)
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	merged := &extract.Table{}
	for _, name := range names {
		merged.Rows = append(merged.Rows, tables[name].Rows...)
	}
	log.Info().Int("channels", len(names)).Int("messages", merged.Len()).Msg("loaded archive")
	return merged, nil
}
