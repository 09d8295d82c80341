// Package extract flattens raw Slack export messages into a fixed-shape
// tabular form. Extraction is best-effort: optional fields default to zero
// values or nil, and malformed shapes yield empty results instead of errors.
package extract

import (
	"regexp"
	"strconv"

	"github.com/hgebre/slackstats/internal/slack"
)

// Row is one flattened message. Mentions, Emojis and Links are nil when the
// message has no block structure and empty (non-nil) when blocks exist but
// contain no matching elements. RepliesTo and TsEpoch use 0 as the "no
// timestamp" sentinel.
type Row struct {
	MsgID       string             `json:"msg_id"`
	Text        string             `json:"text"`
	User        string             `json:"user"`
	Ts          string             `json:"ts"`
	TsEpoch     float64            `json:"-"`
	Team        string             `json:"team,omitempty"`
	Reactions   []slack.Reaction   `json:"reactions"`
	RepliesTo   float64            `json:"replies_to"`
	Replies     []slack.Reply      `json:"replies"`
	Mentions    []string           `json:"mentions"`
	Emojis      []string           `json:"emojis"`
	Links       []string           `json:"links"`
	LinkCount   int                `json:"link_count"`
	Attachments []slack.Attachment `json:"attachments,omitempty"`
}

// ThreadReply is a reply record annotated with its parent thread.
type ThreadReply struct {
	User     string `json:"user"`
	Ts       string `json:"ts"`
	ThreadTs string `json:"thread_ts"`
	ParentID string `json:"message_id"`
}

// MessageSummary is the key-column projection of a raw message.
type MessageSummary struct {
	ClientMsgID     string `json:"client_msg_id"`
	Type            string `json:"type"`
	Text            string `json:"text"`
	User            string `json:"user"`
	Ts              string `json:"ts"`
	Team            string `json:"team"`
	ThreadTs        string `json:"thread_ts"`
	ReplyCount      int    `json:"reply_count"`
	ReplyUsersCount int    `json:"reply_users_count"`
}

// Flatten converts one raw message into a Row. It returns ok=false for
// subtype (system/edit) messages, which never enter the table.
func Flatten(msg slack.Message) (Row, bool) {
	if msg.IsSubtype() {
		return Row{}, false
	}

	row := Row{
		MsgID:       msg.ClientMsgID,
		Text:        msg.Text,
		User:        msg.User,
		Ts:          msg.Ts,
		TsEpoch:     parseEpoch(msg.Ts),
		Team:        msg.Team,
		Reactions:   msg.Reactions,
		Attachments: msg.Attachments,
	}

	// A populated parent_user_id marks the message as a thread reply; the
	// export records the reply's own ts in that case.
	if msg.ParentUserID != "" {
		row.RepliesTo = row.TsEpoch
	}

	if msg.ThreadTs != "" && len(msg.ReplyUsers) > 0 {
		row.Replies = msg.Replies
	}

	if msg.Blocks != nil {
		row.Mentions, row.Emojis, row.Links = walkBlocks(msg.Blocks)
		row.LinkCount = len(row.Links)
	}

	return row, true
}

// walkBlocks classifies inline elements of the fixed two-level layout
// nesting (block -> element -> inline element) by their type tag. All three
// result slices are non-nil, so a block structure with no matching elements
// yields empty lists rather than absent ones.
func walkBlocks(blocks []slack.Block) (mentions, emojis, links []string) {
	mentions = []string{}
	emojis = []string{}
	links = []string{}

	for _, blk := range blocks {
		for _, elm := range blk.Elements {
			for _, inline := range elm.Elements {
				switch inline.Type {
				case slack.ElementUser:
					mentions = append(mentions, inline.UserID)
				case slack.ElementEmoji:
					emojis = append(emojis, inline.Name)
				case slack.ElementLink:
					links = append(links, inline.URL)
				}
			}
		}
	}
	return mentions, emojis, links
}

// Replies extracts a thread parent's reply list, annotating each reply with
// the thread timestamp and the parent's message ID. It yields nil when the
// thread marker or the reply list is absent.
func Replies(msg slack.Message) []ThreadReply {
	if msg.ThreadTs == "" || len(msg.Replies) == 0 {
		return nil
	}
	replies := make([]ThreadReply, 0, len(msg.Replies))
	for _, r := range msg.Replies {
		replies = append(replies, ThreadReply{
			User:     r.User,
			Ts:       r.Ts,
			ThreadTs: msg.ThreadTs,
			ParentID: msg.ClientMsgID,
		})
	}
	return replies
}

// Summarize projects the important columns of a message and extracts its
// replies in one pass.
func Summarize(msg slack.Message) (MessageSummary, []ThreadReply) {
	summary := MessageSummary{
		ClientMsgID:     msg.ClientMsgID,
		Type:            msg.Type,
		Text:            msg.Text,
		User:            msg.User,
		Ts:              msg.Ts,
		Team:            msg.Team,
		ThreadTs:        msg.ThreadTs,
		ReplyCount:      msg.ReplyCount,
		ReplyUsersCount: msg.ReplyUsersCount,
	}
	return summary, Replies(msg)
}

// tagPattern matches raw @-mentions of user IDs in message text.
var tagPattern = regexp.MustCompile(`@U\w+`)

// TaggedUsers returns, per input text, every @U... token found in it.
func TaggedUsers(texts []string) [][]string {
	tagged := make([][]string, len(texts))
	for i, text := range texts {
		tagged[i] = tagPattern.FindAllString(text, -1)
	}
	return tagged
}

// parseEpoch converts a Slack ts string ("1599934232.150700") to epoch
// seconds, returning the 0 sentinel when the field is empty or malformed.
func parseEpoch(ts string) float64 {
	if ts == "" {
		return 0
	}
	v, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return 0
	}
	return v
}
