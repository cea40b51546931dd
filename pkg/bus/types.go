package bus

import "github.com/slack-go/slack"

// OutboundMessage is a direct message queued for delivery. Command
// responses never pass through here; they ride the HTTP response. Only
// proactive sends (welcome DMs) are queued.
type OutboundMessage struct {
	UserID    string        `json:"user_id"`
	Text      string        `json:"text,omitempty"`
	Blocks    []slack.Block `json:"blocks,omitempty"`
	Username  string        `json:"username,omitempty"`
	IconEmoji string        `json:"icon_emoji,omitempty"`
}
