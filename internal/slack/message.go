// Package slack defines the subset of the Slack export JSON schema this tool
// reads: channel day files (arrays of messages), users.json, and
// channels.json. Optional fields decode to zero values; absence is never an
// error.
package slack

// Message is one record from a channel day file. Only the fields the
// extractor consumes are declared; everything else in the export is ignored
// by the decoder.
type Message struct {
	ClientMsgID     string       `json:"client_msg_id"`
	Type            string       `json:"type"`
	Subtype         string       `json:"subtype"`
	Text            string       `json:"text"`
	User            string       `json:"user"`
	Ts              string       `json:"ts"`
	Team            string       `json:"team"`
	ThreadTs        string       `json:"thread_ts"`
	ParentUserID    string       `json:"parent_user_id"`
	ReplyCount      int          `json:"reply_count"`
	ReplyUsersCount int          `json:"reply_users_count"`
	ReplyUsers      []string     `json:"reply_users"`
	Replies         []Reply      `json:"replies"`
	Reactions       []Reaction   `json:"reactions"`
	Blocks          []Block      `json:"blocks"`
	Attachments     []Attachment `json:"attachments"`
}

// IsSubtype reports whether the message carries a subtype marker
// (join/leave/edit/bot notices). Subtype messages are excluded from the
// flattened table.
func (m *Message) IsSubtype() bool {
	return m.Subtype != ""
}

// IsThreadParent reports whether the message is the root of a thread with a
// populated reply list.
func (m *Message) IsThreadParent() bool {
	return m.ThreadTs != "" && len(m.Replies) > 0
}

// Reply is one entry of a thread parent's reply list.
type Reply struct {
	User string `json:"user"`
	Ts   string `json:"ts"`
}

// Reaction is an emoji reaction with the users who added it.
type Reaction struct {
	Name  string   `json:"name"`
	Users []string `json:"users"`
	Count int      `json:"count"`
}

// Attachment is an unfurled link or file preview. Only identifying fields
// are kept.
type Attachment struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Fallback string `json:"fallback"`
	FromURL  string `json:"from_url"`
}

// Block is the outer layer of the rich-text layout. The nesting is a fixed
// two levels: block -> element -> inline element.
type Block struct {
	Type     string         `json:"type"`
	BlockID  string         `json:"block_id"`
	Elements []BlockElement `json:"elements"`
}

// BlockElement is the middle layer (e.g. a rich_text_section).
type BlockElement struct {
	Type     string          `json:"type"`
	Elements []InlineElement `json:"elements"`
}

// Inline element type tags the extractor classifies on.
const (
	ElementUser  = "user"
	ElementEmoji = "emoji"
	ElementLink  = "link"
)

// InlineElement is a leaf of the layout: a text run, a user mention, an
// emoji, or a link, discriminated by Type.
type InlineElement struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}
