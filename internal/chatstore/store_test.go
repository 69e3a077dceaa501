package chatstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chat.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestConversationRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	conv, err := s.StartConversation(ctx, "agent-1")
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	if conv.ID == "" || conv.AgentID != "agent-1" {
		t.Fatalf("conversation = %+v", conv)
	}

	if _, err := s.AppendMessage(ctx, conv.ID, "user", "optimize my article"); err != nil {
		t.Fatalf("AppendMessage user: %v", err)
	}
	if _, err := s.AppendMessage(ctx, conv.ID, "agent", "Tighten the intro."); err != nil {
		t.Fatalf("AppendMessage agent: %v", err)
	}

	msgs, err := s.Messages(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Sender != "user" || msgs[1].Sender != "agent" {
		t.Fatalf("message order wrong: %+v", msgs)
	}
	if msgs[0].Text != "optimize my article" {
		t.Fatalf("text = %q", msgs[0].Text)
	}
}

func TestAppendMessage_RejectsUnknownSender(t *testing.T) {
	s := openTestStore(t)
	conv, err := s.StartConversation(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	if _, err := s.AppendMessage(context.Background(), conv.ID, "system", "nope"); err == nil {
		t.Fatal("expected error for unknown sender")
	}
}

func TestConversationsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	c1, err := s.StartConversation(ctx, "agent-1")
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	c2, err := s.StartConversation(ctx, "agent-1")
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}
	if _, err := s.StartConversation(ctx, "agent-2"); err != nil {
		t.Fatalf("StartConversation: %v", err)
	}

	convs, err := s.Conversations(ctx, "agent-1")
	if err != nil {
		t.Fatalf("Conversations: %v", err)
	}
	if len(convs) != 2 {
		t.Fatalf("got %d conversations, want 2", len(convs))
	}
	// Same-second inserts may tie on created_at; both IDs must be present.
	seen := map[string]bool{convs[0].ID: true, convs[1].ID: true}
	if !seen[c1.ID] || !seen[c2.ID] {
		t.Fatalf("conversations = %+v", convs)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "nested", "deeper", "chat.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = s.Close()
}
