package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgebre/slackstats/internal/slack"
)

func richMessage() slack.Message {
	return slack.Message{
		ClientMsgID: "msg-1",
		Type:        "message",
		Text:        "hey <@U02> check this out",
		User:        "U01",
		Ts:          "1599934232.150700",
		Blocks: []slack.Block{
			{
				Type: "rich_text",
				Elements: []slack.BlockElement{
					{
						Type: "rich_text_section",
						Elements: []slack.InlineElement{
							{Type: "text", Text: "hey "},
							{Type: "user", UserID: "U02"},
							{Type: "emoji", Name: "tada"},
							{Type: "link", URL: "https://example.com"},
							{Type: "link", URL: "https://example.org"},
						},
					},
				},
			},
		},
	}
}

func TestFlattenSkipsSubtypeMessages(t *testing.T) {
	msg := richMessage()
	msg.Subtype = "channel_join"

	_, ok := Flatten(msg)
	assert.False(t, ok)
}

func TestFlattenExtractsBasicFields(t *testing.T) {
	row, ok := Flatten(richMessage())
	require.True(t, ok)

	assert.Equal(t, "msg-1", row.MsgID)
	assert.Equal(t, "hey <@U02> check this out", row.Text)
	assert.Equal(t, "U01", row.User)
	assert.Equal(t, "1599934232.150700", row.Ts)
	assert.InDelta(t, 1599934232.1507, row.TsEpoch, 1e-6)
}

func TestFlattenWalksBlocks(t *testing.T) {
	row, ok := Flatten(richMessage())
	require.True(t, ok)

	assert.Equal(t, []string{"U02"}, row.Mentions)
	assert.Equal(t, []string{"tada"}, row.Emojis)
	assert.Equal(t, []string{"https://example.com", "https://example.org"}, row.Links)
	assert.Equal(t, 2, row.LinkCount)
	assert.Equal(t, len(row.Links), row.LinkCount)
}

func TestFlattenWithoutBlocks(t *testing.T) {
	msg := slack.Message{Type: "message", Text: "plain", User: "U01", Ts: "1.0"}

	row, ok := Flatten(msg)
	require.True(t, ok)

	assert.Nil(t, row.Mentions)
	assert.Nil(t, row.Emojis)
	assert.Nil(t, row.Links)
	assert.Equal(t, 0, row.LinkCount)
}

func TestFlattenEmptyBlocksYieldEmptyLists(t *testing.T) {
	msg := slack.Message{
		Type: "message",
		User: "U01",
		Ts:   "1.0",
		Blocks: []slack.Block{
			{Type: "rich_text", Elements: []slack.BlockElement{
				{Type: "rich_text_section", Elements: []slack.InlineElement{
					{Type: "text", Text: "no mentions here"},
				}},
			}},
		},
	}

	row, ok := Flatten(msg)
	require.True(t, ok)

	assert.NotNil(t, row.Mentions)
	assert.Empty(t, row.Mentions)
	assert.NotNil(t, row.Links)
	assert.Equal(t, 0, row.LinkCount)
}

func TestFlattenRepliesToSentinel(t *testing.T) {
	msg := slack.Message{Type: "message", User: "U01", Ts: "1599934232.150700"}

	row, ok := Flatten(msg)
	require.True(t, ok)
	assert.Zero(t, row.RepliesTo)

	msg.ParentUserID = "U09"
	row, ok = Flatten(msg)
	require.True(t, ok)
	assert.Equal(t, row.TsEpoch, row.RepliesTo)
}

func TestFlattenRepliesColumnNeedsThreadAndReplyUsers(t *testing.T) {
	msg := slack.Message{
		Type:       "message",
		User:       "U01",
		Ts:         "1.0",
		ThreadTs:   "1.0",
		ReplyUsers: []string{"U02"},
		Replies:    []slack.Reply{{User: "U02", Ts: "2.0"}},
	}

	row, ok := Flatten(msg)
	require.True(t, ok)
	assert.Equal(t, msg.Replies, row.Replies)

	// without reply_users the column stays null
	msg.ReplyUsers = nil
	row, ok = Flatten(msg)
	require.True(t, ok)
	assert.Nil(t, row.Replies)
}

func TestRepliesAnnotatesParent(t *testing.T) {
	msg := slack.Message{
		ClientMsgID: "parent-1",
		ThreadTs:    "1599934232.150700",
		Replies: []slack.Reply{
			{User: "U02", Ts: "1599934300.000100"},
			{User: "U03", Ts: "1599934400.000200"},
		},
	}

	replies := Replies(msg)
	require.Len(t, replies, 2)
	for _, r := range replies {
		assert.Equal(t, "1599934232.150700", r.ThreadTs)
		assert.Equal(t, "parent-1", r.ParentID)
	}
	assert.Equal(t, "U02", replies[0].User)
	assert.Equal(t, "U03", replies[1].User)
}

func TestRepliesAbsentShapeYieldsNothing(t *testing.T) {
	assert.Nil(t, Replies(slack.Message{ThreadTs: "1.0"}))
	assert.Nil(t, Replies(slack.Message{Replies: []slack.Reply{{User: "U02"}}}))
	assert.Nil(t, Replies(slack.Message{}))
}

func TestSummarize(t *testing.T) {
	msg := slack.Message{
		ClientMsgID:     "msg-9",
		Type:            "message",
		Text:            "root",
		User:            "U01",
		Ts:              "10.0",
		Team:            "T01",
		ThreadTs:        "10.0",
		ReplyCount:      1,
		ReplyUsersCount: 1,
		Replies:         []slack.Reply{{User: "U02", Ts: "11.0"}},
	}

	summary, replies := Summarize(msg)
	assert.Equal(t, "msg-9", summary.ClientMsgID)
	assert.Equal(t, "T01", summary.Team)
	assert.Equal(t, 1, summary.ReplyCount)
	require.Len(t, replies, 1)
	assert.Equal(t, "msg-9", replies[0].ParentID)
}

func TestTaggedUsers(t *testing.T) {
	tagged := TaggedUsers([]string{
		"ping @U012AB and @U99XYZ",
		"no tags",
		"@U1",
	})

	require.Len(t, tagged, 3)
	assert.Equal(t, []string{"@U012AB", "@U99XYZ"}, tagged[0])
	assert.Empty(t, tagged[1])
	assert.Equal(t, []string{"@U1"}, tagged[2])
}
