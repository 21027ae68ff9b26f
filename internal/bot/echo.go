package bot

import (
	"context"

	"github.com/ziadkadry99/echobot/internal/activity"
)

// DefaultEchoPrefix is prepended to echoed text unless configured
// otherwise.
const DefaultEchoPrefix = "Echo: "

// EchoBot replies to every message activity with the received text
// behind a fixed prefix. Any other activity type is acknowledged
// without a send; that is normal, not an error.
type EchoBot struct {
	Prefix string
}

// NewEchoBot creates an EchoBot. An empty prefix falls back to
// DefaultEchoPrefix.
func NewEchoBot(prefix string) *EchoBot {
	if prefix == "" {
		prefix = DefaultEchoPrefix
	}
	return &EchoBot{Prefix: prefix}
}

// OnTurn implements Bot.
func (b *EchoBot) OnTurn(ctx context.Context, tc *TurnContext) error {
	if tc.Activity.Type != activity.TypeMessage {
		return nil
	}
	return tc.Reply(ctx, b.Prefix+tc.Activity.Text)
}
