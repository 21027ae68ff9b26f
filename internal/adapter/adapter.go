// Package adapter dispatches inbound activities through the turn
// pipeline: authenticate, decode, hand off to the bot, contain any
// failure the bot raises.
package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ziadkadry99/echobot/internal/activity"
	"github.com/ziadkadry99/echobot/internal/auth"
	"github.com/ziadkadry99/echobot/internal/bot"
)

// DefaultApologyText is sent into the conversation when the bot fails
// mid-turn, unless configured otherwise.
const DefaultApologyText = "Sorry, it looks like something went wrong."

// Validator authenticates an inbound request before any other work
// happens on it.
type Validator interface {
	Authenticate(r *http.Request) (auth.Identity, error)
}

// Adapter runs one turn per inbound request. Auth and decode failures
// surface as HTTP errors; bot failures are absorbed and converted into
// an in-conversation apology, because the channel connector treats a
// 5xx as a retry signal and would redeliver the activity.
type Adapter struct {
	validator Validator
	sender    bot.Sender
	bot       bot.Bot
	apology   string
	logger    *slog.Logger
}

// New creates an Adapter with explicitly supplied collaborators.
func New(validator Validator, sender bot.Sender, b bot.Bot, apology string, logger *slog.Logger) *Adapter {
	if apology == "" {
		apology = DefaultApologyText
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		validator: validator,
		sender:    sender,
		bot:       b,
		apology:   apology,
		logger:    logger,
	}
}

// ProcessActivity handles one inbound turn (HTTP POST). Replies go
// out-of-band to the service URL on the activity; the HTTP response
// body stays empty and only acknowledges the turn.
func (a *Adapter) ProcessActivity(w http.ResponseWriter, r *http.Request) {
	identity, err := a.validator.Authenticate(r)
	if err != nil {
		a.logger.Warn("request rejected", "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	act, err := activity.Decode(body)
	if err != nil {
		a.logger.Warn("activity rejected", "error", err, "issuer", identity.Issuer)
		http.Error(w, "invalid activity", http.StatusBadRequest)
		return
	}

	tc := bot.NewTurnContext(act, a.sender)
	a.runTurn(r, tc)

	w.WriteHeader(http.StatusOK)
}

// runTurn invokes the bot and converts any failure, error return or
// panic alike, into a logged record plus at most one best-effort
// apology send. No failure escapes to the transport.
func (a *Adapter) runTurn(r *http.Request, tc *bot.TurnContext) {
	ctx := r.Context()
	err := func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("bot panicked: %v", rec)
			}
		}()
		return a.bot.OnTurn(ctx, tc)
	}()
	if err == nil {
		return
	}

	a.logger.Error("turn failed",
		"conversation_id", tc.Activity.Conversation.ID,
		"activity_id", tc.Activity.ID,
		"error", err)

	if sendErr := tc.Reply(ctx, a.apology); sendErr != nil {
		a.logger.Error("apology delivery failed",
			"conversation_id", tc.Activity.Conversation.ID,
			"error", sendErr)
	}
}
