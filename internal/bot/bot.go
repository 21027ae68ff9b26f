// Package bot holds the application-level turn handler and the
// per-turn context it runs against.
package bot

import (
	"context"

	"github.com/ziadkadry99/echobot/internal/activity"
)

// Sender delivers an outbound activity to the channel service.
type Sender interface {
	SendActivity(ctx context.Context, act activity.Activity) error
}

// Bot is the application handler invoked once per conversational turn.
// It holds no state across turns.
type Bot interface {
	OnTurn(ctx context.Context, tc *TurnContext) error
}
