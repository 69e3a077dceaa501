// Package wallet models the session boundary between the SDK and whatever
// holds the user's keys. Signing itself happens outside this module; a
// Session only tracks connection state and forwards sign-and-submit
// requests to the external signer.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/niklabh/AptosAgora/internal/types"
)

// ErrWalletUnavailable covers both "no wallet is connected" and "the user
// declined the request". Neither is retriable without user action, so the
// SDK does not distinguish them.
var ErrWalletUnavailable = errors.New("wallet unavailable or request declined")

// Session exposes the single capability everything above the wallet needs:
// sign a transaction payload and submit it, returning the pending hash.
type Session interface {
	// Connected reports whether an account is currently available.
	Connected() bool
	// Address returns the active account address, or "" when disconnected.
	Address() string
	// SignAndSubmit signs payload for the active account and submits it.
	// It blocks until the signer confirms or rejects. A rejection or a
	// missing wallet returns ErrWalletUnavailable.
	SignAndSubmit(ctx context.Context, payload types.EntryFunctionPayload) (*types.PendingTransaction, error)
}

// Submitter is the chain capability an AccountSession forwards to.
type Submitter interface {
	Submit(ctx context.Context, req types.SubmitRequest) (*types.PendingTransaction, error)
}

// AccountSession binds a known account address to a submitter. It models an
// already-approved wallet connection: every SignAndSubmit is forwarded
// without further interaction. Signing is delegated to the node boundary.
type AccountSession struct {
	address   string
	submitter Submitter
}

// NewAccountSession constructs a connected session for address.
func NewAccountSession(address string, submitter Submitter) (*AccountSession, error) {
	if err := types.ValidateAddress(address); err != nil {
		return nil, err
	}
	if submitter == nil {
		return nil, fmt.Errorf("submitter is required")
	}
	return &AccountSession{address: address, submitter: submitter}, nil
}

func (s *AccountSession) Connected() bool { return true }

func (s *AccountSession) Address() string { return s.address }

func (s *AccountSession) SignAndSubmit(ctx context.Context, payload types.EntryFunctionPayload) (*types.PendingTransaction, error) {
	return s.submitter.Submit(ctx, types.SubmitRequest{Sender: s.address, Payload: payload})
}

// Disconnected returns a session with no account: reads work, every write
// fails with ErrWalletUnavailable. It is the default session of a Client so
// the SDK is usable read-only.
func Disconnected() Session { return nilSession{} }

type nilSession struct{}

func (nilSession) Connected() bool { return false }
func (nilSession) Address() string { return "" }
func (nilSession) SignAndSubmit(context.Context, types.EntryFunctionPayload) (*types.PendingTransaction, error) {
	return nil, ErrWalletUnavailable
}
