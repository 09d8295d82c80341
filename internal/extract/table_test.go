package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgebre/slackstats/internal/slack"
)

func TestNewTableOneRowPerNonSubtypeMessage(t *testing.T) {
	msgs := []slack.Message{
		{Type: "message", ClientMsgID: "a", Text: "one", User: "U01", Ts: "1.0"},
		{Type: "message", Subtype: "channel_join", User: "U02", Ts: "2.0"},
		{Type: "message", ClientMsgID: "b", Text: "two", User: "U02", Ts: "3.0"},
	}

	table := NewTable(msgs)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "a", table.Rows[0].MsgID)
	assert.Equal(t, "b", table.Rows[1].MsgID)
}

func TestTableAddPreservesInputOrder(t *testing.T) {
	table := NewTable([]slack.Message{{Type: "message", User: "U01", Ts: "1.0"}})
	table.Add([]slack.Message{{Type: "message", User: "U02", Ts: "2.0"}})

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "U01", table.Rows[0].User)
	assert.Equal(t, "U02", table.Rows[1].User)
}

func TestFormatTimestamps(t *testing.T) {
	table := &Table{Rows: []Row{
		{TsEpoch: 1599934232},
		{TsEpoch: 0},
		{TsEpoch: 1700000000},
	}}

	formatted, ok := table.FormatTimestamps(ColumnTs)
	require.True(t, ok)
	require.Len(t, formatted, 3)

	assert.Equal(t, time.Unix(1599934232, 0).Format(TimeLayout), formatted[0])
	assert.Equal(t, "0", formatted[1])
	assert.Equal(t, time.Unix(1700000000, 0).Format(TimeLayout), formatted[2])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, formatted[0])
}

func TestFormatTimestampsRepliesTo(t *testing.T) {
	table := &Table{Rows: []Row{
		{RepliesTo: 0},
		{RepliesTo: 1599934232},
	}}

	formatted, ok := table.FormatTimestamps(ColumnRepliesTo)
	require.True(t, ok)
	assert.Equal(t, "0", formatted[0])
	assert.Equal(t, time.Unix(1599934232, 0).Format(TimeLayout), formatted[1])
}

func TestFormatTimestampsUnknownColumn(t *testing.T) {
	table := &Table{Rows: []Row{{TsEpoch: 1}}}

	formatted, ok := table.FormatTimestamps("msg_content")
	assert.False(t, ok)
	assert.Nil(t, formatted)
}
