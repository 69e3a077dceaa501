package aptosagora

import (
	"errors"

	"github.com/niklabh/AptosAgora/internal/chain"
	"github.com/niklabh/AptosAgora/internal/shardqueue"
	"github.com/niklabh/AptosAgora/internal/types"
	"github.com/niklabh/AptosAgora/wallet"
)

// Sentinels re-exported so callers compare against a single symbol.
var (
	// ErrNotFound means the requested on-chain resource does not exist.
	// It is a normal outcome, not a failure.
	ErrNotFound = types.ErrNotFound

	// ErrWalletUnavailable means no wallet is connected or the user
	// declined the request; not retriable without user action.
	ErrWalletUnavailable = wallet.ErrWalletUnavailable

	// ErrFinalityTimeout means a submitted transaction was not observed as
	// committed in time. The outcome is ambiguous; it may still land.
	ErrFinalityTimeout = chain.ErrFinalityTimeout

	// ErrBackPressure means the engagement queue is full.
	ErrBackPressure = shardqueue.ErrQueueFull
)

// Error types surfaced by write and read operations.
type (
	// SubmissionError: the node rejected the transaction or the request
	// never reached it. Transient; safe to retry with the same payload.
	SubmissionError = chain.SubmissionError

	// RevertError: the transaction committed but aborted. Carries the
	// remote abort reason verbatim; not retried automatically.
	RevertError = chain.RevertError

	// QueryError: a view call failed for a reason other than a missing
	// resource (malformed target, unknown function, node failure).
	QueryError = chain.QueryError
)

// IsNotFound reports whether err is the missing-resource outcome.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// IsReverted reports whether err is a transaction revert, and returns the
// opaque abort reason when it is.
func IsReverted(err error) (reason string, ok bool) {
	var re *RevertError
	if errors.As(err, &re) {
		return re.VMStatus, true
	}
	return "", false
}
