package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/niklabh/AptosAgora/internal/types"
)

type recordingSubmitter struct {
	last types.SubmitRequest
}

func (s *recordingSubmitter) Submit(_ context.Context, req types.SubmitRequest) (*types.PendingTransaction, error) {
	s.last = req
	return &types.PendingTransaction{Hash: "0xdeadbeef"}, nil
}

func TestDisconnectedSession(t *testing.T) {
	t.Parallel()
	s := Disconnected()
	if s.Connected() {
		t.Fatal("disconnected session reports connected")
	}
	if s.Address() != "" {
		t.Fatalf("address = %q, want empty", s.Address())
	}
	_, err := s.SignAndSubmit(context.Background(), types.EntryFunctionPayload{})
	if !errors.Is(err, ErrWalletUnavailable) {
		t.Fatalf("expected ErrWalletUnavailable, got %v", err)
	}
}

func TestAccountSession(t *testing.T) {
	t.Parallel()
	sub := &recordingSubmitter{}
	s, err := NewAccountSession("0xabc", sub)
	if err != nil {
		t.Fatalf("NewAccountSession: %v", err)
	}
	if !s.Connected() || s.Address() != "0xabc" {
		t.Fatalf("session state: connected=%v address=%q", s.Connected(), s.Address())
	}

	payload := types.EntryFunctionPayload{Function: "0x1::content_registry::create_content"}
	pending, err := s.SignAndSubmit(context.Background(), payload)
	if err != nil {
		t.Fatalf("SignAndSubmit: %v", err)
	}
	if pending.Hash != "0xdeadbeef" {
		t.Fatalf("hash = %q", pending.Hash)
	}
	if sub.last.Sender != "0xabc" {
		t.Fatalf("sender = %q, want session address", sub.last.Sender)
	}
	if sub.last.Payload.Function != payload.Function {
		t.Fatalf("payload not forwarded: %+v", sub.last.Payload)
	}
}

func TestNewAccountSession_Validation(t *testing.T) {
	t.Parallel()
	if _, err := NewAccountSession("not-hex", &recordingSubmitter{}); err == nil {
		t.Fatal("expected error for malformed address")
	}
	if _, err := NewAccountSession("0xabc", nil); err == nil {
		t.Fatal("expected error for nil submitter")
	}
}
