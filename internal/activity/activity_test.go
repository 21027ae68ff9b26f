package activity

import (
	"errors"
	"testing"
)

func TestDecodeMessage(t *testing.T) {
	payload := []byte(`{
		"type": "message",
		"id": "a1",
		"text": "hello",
		"channelId": "emulator",
		"serviceUrl": "https://x",
		"conversation": {"id": "c1"},
		"from": {"id": "u1", "name": "Alice"},
		"recipient": {"id": "b1", "name": "Bot"}
	}`)

	act, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if act.Type != TypeMessage {
		t.Errorf("type: got %q, want %q", act.Type, TypeMessage)
	}
	if act.Text != "hello" {
		t.Errorf("text: got %q, want %q", act.Text, "hello")
	}
	if act.Conversation.ID != "c1" {
		t.Errorf("conversation id: got %q, want %q", act.Conversation.ID, "c1")
	}
	if act.ServiceURL != "https://x" {
		t.Errorf("serviceUrl: got %q, want %q", act.ServiceURL, "https://x")
	}
	if act.From.Name != "Alice" {
		t.Errorf("from name: got %q, want %q", act.From.Name, "Alice")
	}
	if !act.IsMessage() {
		t.Error("expected IsMessage to be true")
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestDecodeMissingType(t *testing.T) {
	_, err := Decode([]byte(`{"text": "hello"}`))
	if err == nil {
		t.Fatal("expected error for missing type")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestRoundTrip(t *testing.T) {
	original := Activity{
		Type:         TypeMessage,
		ID:           "a1",
		Timestamp:    "2026-01-02T15:04:05Z",
		Text:         "hello",
		ChannelID:    "emulator",
		ServiceURL:   "https://x",
		Conversation: Conversation{ID: "c1", Name: "general"},
		From:         ChannelAccount{ID: "u1", Name: "Alice"},
		Recipient:    ChannelAccount{ID: "b1", Name: "Bot"},
		ReplyToID:    "a0",
	}

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestNewReplySwapsParticipants(t *testing.T) {
	inbound := Activity{
		Type:         TypeMessage,
		ID:           "a1",
		Text:         "hello",
		ChannelID:    "emulator",
		ServiceURL:   "https://x",
		Conversation: Conversation{ID: "c1"},
		From:         ChannelAccount{ID: "u1", Name: "Alice"},
		Recipient:    ChannelAccount{ID: "b1", Name: "Bot"},
	}

	reply := NewReply(inbound, "Echo: hello")

	if reply.Type != TypeMessage {
		t.Errorf("type: got %q, want %q", reply.Type, TypeMessage)
	}
	if reply.Text != "Echo: hello" {
		t.Errorf("text: got %q, want %q", reply.Text, "Echo: hello")
	}
	if reply.Conversation.ID != "c1" {
		t.Errorf("conversation id: got %q, want %q", reply.Conversation.ID, "c1")
	}
	if reply.ServiceURL != "https://x" {
		t.Errorf("serviceUrl: got %q, want %q", reply.ServiceURL, "https://x")
	}
	if reply.From.ID != "b1" || reply.Recipient.ID != "u1" {
		t.Errorf("participants not swapped: from=%q recipient=%q", reply.From.ID, reply.Recipient.ID)
	}
	if reply.ReplyToID != "a1" {
		t.Errorf("replyToId: got %q, want %q", reply.ReplyToID, "a1")
	}
	if reply.ID == "" || reply.ID == inbound.ID {
		t.Errorf("reply must carry a fresh id, got %q", reply.ID)
	}
}

func TestNewReplyDoesNotMutateInbound(t *testing.T) {
	inbound := Activity{
		Type:         TypeMessage,
		ID:           "a1",
		Text:         "hello",
		Conversation: Conversation{ID: "c1"},
		From:         ChannelAccount{ID: "u1"},
		Recipient:    ChannelAccount{ID: "b1"},
	}
	before := inbound

	NewReply(inbound, "changed")

	if inbound != before {
		t.Errorf("inbound mutated: got %+v, want %+v", inbound, before)
	}
}
