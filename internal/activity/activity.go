// Package activity defines the conversational activity model and its
// wire codec. An activity is the unit of exchange between the channel
// connector and the bot: the connector POSTs one activity per turn,
// and replies are delivered back as new activities.
package activity

// Activity types recognized by the turn pipeline.
const (
	TypeMessage            = "message"
	TypeConversationUpdate = "conversationUpdate"
	TypePing               = "ping"
)

// ChannelAccount identifies a user or bot participating in a
// conversation.
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Conversation identifies the conversation an activity belongs to.
type Conversation struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Activity is a single conversational event. Once decoded it is
// treated as immutable; a reply is always a new Activity built with
// NewReply, never a mutation of the inbound one.
type Activity struct {
	Type         string         `json:"type"`
	ID           string         `json:"id,omitempty"`
	Timestamp    string         `json:"timestamp,omitempty"`
	Text         string         `json:"text,omitempty"`
	ChannelID    string         `json:"channelId,omitempty"`
	ServiceURL   string         `json:"serviceUrl,omitempty"`
	Conversation Conversation   `json:"conversation"`
	From         ChannelAccount `json:"from"`
	Recipient    ChannelAccount `json:"recipient"`
	ReplyToID    string         `json:"replyToId,omitempty"`
}

// IsMessage reports whether the activity carries user text.
func (a Activity) IsMessage() bool { return a.Type == TypeMessage }
