// Package chain wraps the fullnode REST endpoint behind three operations:
// submit a write transaction, wait for its finality, and perform a read-only
// view call. No caching or automatic submit retries are imposed here; each
// call is a single round trip and callers decide whether to retry.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/niklabh/AptosAgora/internal/types"
)

const (
	defaultFinalityTimeout = 30 * time.Second
	defaultPollInterval    = 250 * time.Millisecond
)

// Client talks to a fullnode REST API.
type Client struct {
	baseURL string
	http    *http.Client

	finalityTimeout time.Duration
	pollInterval    time.Duration
}

// New constructs a chain client for the given fullnode base URL. A nil
// httpClient falls back to a client with a 30s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		http:            httpClient,
		finalityTimeout: defaultFinalityTimeout,
		pollInterval:    defaultPollInterval,
	}
}

// SetFinalityTimeout overrides the default WaitForTransaction deadline.
func (c *Client) SetFinalityTimeout(d time.Duration) {
	if d > 0 {
		c.finalityTimeout = d
	}
}

// nodeError is the node's JSON error envelope.
type nodeError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// Submit posts the signed transaction request. The node acknowledges with
// the pending transaction hash; inclusion is confirmed separately via
// WaitForTransaction.
func (c *Client) Submit(ctx context.Context, req types.SubmitRequest) (*types.PendingTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewBuffer(body))
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &SubmissionError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
			Err:        fmt.Errorf("submit rejected with status %d", resp.StatusCode),
		}
	}

	var pending types.PendingTransaction
	if err := json.NewDecoder(resp.Body).Decode(&pending); err != nil {
		return nil, &SubmissionError{Err: fmt.Errorf("decode pending transaction: %w", err)}
	}
	if pending.Hash == "" {
		return nil, &SubmissionError{Err: fmt.Errorf("node returned no transaction hash")}
	}
	return &pending, nil
}

// WaitForTransaction polls the node until the transaction for hash resolves.
// Outcomes:
//   - committed successfully → the committed Transaction
//   - committed with failure → *RevertError carrying the opaque vm_status
//   - not resolved within the finality timeout → ErrFinalityTimeout
func (c *Client) WaitForTransaction(ctx context.Context, hash string) (*types.Transaction, error) {
	if err := types.ValidateIDPresent(hash, "hash"); err != nil {
		return nil, err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.pollInterval
	exp.Multiplier = 1.5
	exp.MaxInterval = 2 * time.Second
	exp.MaxElapsedTime = c.finalityTimeout
	exp.Reset()

	for {
		txn, resolved, err := c.lookupOnce(ctx, hash)
		if err != nil {
			return nil, err
		}
		if resolved {
			if !txn.Success {
				return nil, &RevertError{Hash: hash, VMStatus: txn.VMStatus}
			}
			return txn, nil
		}

		wait := exp.NextBackOff()
		if wait == backoff.Stop {
			return nil, fmt.Errorf("%w: %s", ErrFinalityTimeout, hash)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// lookupOnce fetches a transaction by hash. resolved is false while the node
// reports it pending or does not know the hash yet.
func (c *Client) lookupOnce(ctx context.Context, hash string) (txn *types.Transaction, resolved bool, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transactions/by_hash/"+hash, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNotFound:
		// Hash not yet visible on this node; keep polling.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, false, nil
	case http.StatusOK:
		var t types.Transaction
		if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
			return nil, false, fmt.Errorf("decode transaction: %w", err)
		}
		if t.Type == "pending_transaction" {
			return nil, false, nil
		}
		return &t, true, nil
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("lookup transaction %s: HTTP %d: %s", hash, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
}

// View performs a side-effect-free read. A missing resource maps to
// types.ErrNotFound so callers can tell "no data yet" from a malformed or
// unknown function target, which surfaces as *QueryError.
func (c *Client) View(ctx context.Context, req types.ViewRequest) (types.ViewResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/view", bytes.NewBuffer(body))
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var ne nodeError
		_ = json.Unmarshal(raw, &ne)
		if isNotFound(resp.StatusCode, ne.ErrorCode) {
			return nil, types.ErrNotFound
		}
		return nil, &QueryError{
			StatusCode: resp.StatusCode,
			ErrorCode:  ne.ErrorCode,
			Message:    firstNonEmpty(ne.Message, strings.TrimSpace(string(raw))),
		}
	}

	var out types.ViewResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &QueryError{Err: fmt.Errorf("decode view result: %w", err)}
	}
	return out, nil
}

// isNotFound decides whether a view failure means the resource is absent
// rather than the call itself being malformed. Unknown functions and bad
// argument shapes come back as invalid_input and stay QueryErrors.
func isNotFound(status int, errorCode string) bool {
	if strings.HasSuffix(errorCode, "_not_found") {
		return true
	}
	return status == http.StatusNotFound && errorCode == ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
