package activity

import (
	"time"

	"github.com/google/uuid"
)

// NewReply builds a message activity answering inbound. The
// conversation, service URL and channel id are always taken from the
// inbound activity — never cached across turns, because a conversation
// can migrate between service endpoints. From and recipient are
// swapped so the reply flows back to the sender.
func NewReply(inbound Activity, text string) Activity {
	return Activity{
		Type:         TypeMessage,
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Text:         text,
		ChannelID:    inbound.ChannelID,
		ServiceURL:   inbound.ServiceURL,
		Conversation: inbound.Conversation,
		From:         inbound.Recipient,
		Recipient:    inbound.From,
		ReplyToID:    inbound.ID,
	}
}
