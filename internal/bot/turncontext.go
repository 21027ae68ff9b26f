package bot

import (
	"context"

	"github.com/ziadkadry99/echobot/internal/activity"
)

// TurnContext binds one inbound activity to the outbound reply channel
// for its turn. It is owned exclusively by that turn's processing path
// and must not be retained after the request completes.
type TurnContext struct {
	Activity activity.Activity
	sender   Sender
	sends    int
}

// NewTurnContext creates the context for a single turn over the given
// inbound activity.
func NewTurnContext(act activity.Activity, sender Sender) *TurnContext {
	return &TurnContext{Activity: act, sender: sender}
}

// SendActivity performs one outbound delivery attempt. Sends are not
// buffered; each call goes straight to the channel service.
func (tc *TurnContext) SendActivity(ctx context.Context, act activity.Activity) error {
	tc.sends++
	return tc.sender.SendActivity(ctx, act)
}

// Reply sends a message activity answering the turn's inbound one.
func (tc *TurnContext) Reply(ctx context.Context, text string) error {
	return tc.SendActivity(ctx, activity.NewReply(tc.Activity, text))
}

// Sends reports how many deliveries this turn has attempted.
func (tc *TurnContext) Sends() int { return tc.sends }
