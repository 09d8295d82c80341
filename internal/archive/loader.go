package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hgebre/slackstats/internal/extract"
	"github.com/hgebre/slackstats/internal/slack"
)

// Loader reads channel day files into flattened tables. Malformed day files
// are skipped with a warning rather than failing the load.
type Loader struct {
	log zerolog.Logger
}

// NewLoader returns a loader that reports progress through the given logger.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// ReadMessages decodes one day file into raw messages.
func ReadMessages(path string) ([]slack.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read day file: %w", err)
	}
	var msgs []slack.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("parse day file %s: %w", path, err)
	}
	return msgs, nil
}

// LoadChannelMessages reads every day file of a channel directory and
// concatenates the raw messages in file order.
func (l *Loader) LoadChannelMessages(dir string) ([]slack.Message, error) {
	files, err := ScanChannel(dir)
	if err != nil {
		return nil, fmt.Errorf("scan channel: %w", err)
	}
	var msgs []slack.Message
	for _, f := range files {
		fileMsgs, err := ReadMessages(f)
		if err != nil {
			l.log.Warn().Err(err).Str("file", f).Msg("skipping day file")
			continue
		}
		msgs = append(msgs, fileMsgs...)
	}
	return msgs, nil
}

// LoadChannel reads a channel directory into one flattened table and logs
// the resulting message count.
func (l *Loader) LoadChannel(dir string) (*extract.Table, error) {
	msgs, err := l.LoadChannelMessages(dir)
	if err != nil {
		return nil, err
	}
	table := extract.NewTable(msgs)
	l.log.Info().
		Str("channel", filepath.Base(dir)).
		Int("messages", table.Len()).
		Msg("loaded channel")
	return table, nil
}

// LoadArchive loads every channel under an export root into its own table,
// keyed by channel name.
func (l *Loader) LoadArchive(root string) (map[string]*extract.Table, error) {
	channels, err := ScanRoot(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	tables := make(map[string]*extract.Table, len(channels))
	for _, ch := range channels {
		table, err := l.LoadChannel(ch.Path)
		if err != nil {
			l.log.Warn().Err(err).Str("channel", ch.Name).Msg("skipping channel")
			continue
		}
		tables[ch.Name] = table
	}
	return tables, nil
}

// LoadReplies extracts every annotated thread reply from a channel
// directory's raw messages.
func (l *Loader) LoadReplies(dir string) ([]extract.ThreadReply, error) {
	msgs, err := l.LoadChannelMessages(dir)
	if err != nil {
		return nil, err
	}
	var replies []extract.ThreadReply
	for _, msg := range msgs {
		replies = append(replies, extract.Replies(msg)...)
	}
	return replies, nil
}
