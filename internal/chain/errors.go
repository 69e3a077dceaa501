package chain

import (
	"errors"
	"fmt"
)

// ErrFinalityTimeout reports an ambiguous outcome: the transaction was
// submitted but was not observed as committed before the wait deadline.
// It may still land; no reconciliation is attempted.
var ErrFinalityTimeout = errors.New("finality wait timed out (transaction may still commit)")

// SubmissionError reports a failed transaction submission: a network failure
// or a remote rejection of the request (including wrong argument arity for
// the target function, which is never validated locally).
type SubmissionError struct {
	StatusCode int    // 0 for network-level failures
	Body       string // raw response body, if any
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("submit transaction: HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("submit transaction: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// RevertError reports a committed-but-failed transaction. VMStatus carries
// the remote abort reason verbatim and is treated as an opaque string.
type RevertError struct {
	Hash     string
	VMStatus string
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("transaction %s reverted: %s", e.Hash, e.VMStatus)
}

// QueryError reports a failed view call that is not a plain missing
// resource: malformed targets, unknown functions, node failures.
type QueryError struct {
	StatusCode int
	ErrorCode  string // node-reported machine code, e.g. "invalid_input"
	Message    string
	Err        error
}

func (e *QueryError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("view call: %s (HTTP %d): %s", e.ErrorCode, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("view call: %v", e.Err)
	}
	return fmt.Sprintf("view call: HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *QueryError) Unwrap() error { return e.Err }
