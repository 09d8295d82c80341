package extract

import (
	"time"

	"github.com/hgebre/slackstats/internal/slack"
)

// TimeLayout is the human-readable form produced by FormatTimestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Epoch column names accepted by FormatTimestamps.
const (
	ColumnTs        = "ts"
	ColumnRepliesTo = "replies_to"
)

// Table is the flattened message table: one Row per non-subtype input
// message, in input order.
type Table struct {
	Rows []Row
}

// NewTable flattens a slice of raw messages into a fresh table.
func NewTable(msgs []slack.Message) *Table {
	t := &Table{}
	t.Add(msgs)
	return t
}

// Add flattens more raw messages onto the end of the table, preserving
// input order. Subtype messages are skipped.
func (t *Table) Add(msgs []slack.Message) {
	for _, msg := range msgs {
		if row, ok := Flatten(msg); ok {
			t.Rows = append(t.Rows, row)
		}
	}
}

// Len returns the number of flattened rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// epochColumn returns the named epoch column, ok=false for unknown names.
func (t *Table) epochColumn(column string) ([]float64, bool) {
	values := make([]float64, 0, len(t.Rows))
	switch column {
	case ColumnTs:
		for _, row := range t.Rows {
			values = append(values, row.TsEpoch)
		}
	case ColumnRepliesTo:
		for _, row := range t.Rows {
			values = append(values, row.RepliesTo)
		}
	default:
		return nil, false
	}
	return values, true
}

// FormatTimestamps renders an epoch column as local "YYYY-MM-DD HH:MM:SS"
// strings. The 0 sentinel passes through unchanged as "0". For a column the
// table does not have it returns ok=false and a nil slice; the caller
// decides whether that deserves a warning.
func (t *Table) FormatTimestamps(column string) ([]string, bool) {
	values, ok := t.epochColumn(column)
	if !ok {
		return nil, false
	}
	formatted := make([]string, len(values))
	for i, v := range values {
		if v == 0 {
			formatted[i] = "0"
			continue
		}
		sec := int64(v)
		nsec := int64((v - float64(sec)) * 1e9)
		formatted[i] = time.Unix(sec, nsec).Format(TimeLayout)
	}
	return formatted, true
}
