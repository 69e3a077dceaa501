// Package aptosagora is the Go SDK for the AptosAgora content marketplace.
// It wraps the on-chain contract modules (content registry, agent framework,
// creator profiles, reputation system, token economics) behind typed
// operations, and carries the optional AI advisory integration alongside.
package aptosagora

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niklabh/AptosAgora/internal/chain"
	"github.com/niklabh/AptosAgora/internal/config"
	interrors "github.com/niklabh/AptosAgora/internal/errors"
	"github.com/niklabh/AptosAgora/internal/job"
	"github.com/niklabh/AptosAgora/internal/query"
	"github.com/niklabh/AptosAgora/internal/shardqueue"
	"github.com/niklabh/AptosAgora/internal/txn"
	"github.com/niklabh/AptosAgora/internal/types"
	"github.com/niklabh/AptosAgora/wallet"
)

// Client is the SDK entry point. Construct with New; a Client is safe for
// concurrent use and should be Closed when done to drain the engagement
// queue.
type Client struct {
	cfg     *config.Config
	http    *http.Client
	chain   *chain.Client
	builder *txn.Builder
	query   *query.Facade
	session wallet.Session
	exec    executor
	pending *PendingEngagements

	// construction-time knobs consumed in New
	accountAddr     string
	finalityTimeout time.Duration
	debugLogging    bool

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client from resolved configuration. Additional behavior
// is supplied via functional options.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: wallet.Disconnected(),
		pending: NewPendingEngagements(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// The debug wrap happens after all options so a substituted HTTP client
	// is wrapped too. Also auto-enabled via env variable.
	if c.debugLogging || debugLoggingRequested() {
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.http.Transport = &debugTransport{base: base}
	}

	c.chain = chain.New(cfg.NodeURL, c.http)
	if c.finalityTimeout > 0 {
		c.chain.SetFinalityTimeout(c.finalityTimeout)
	}

	var err error
	c.builder, err = txn.NewBuilder(cfg.ModuleAddress)
	if err != nil {
		return nil, err
	}
	c.query, err = query.New(c.chain, cfg.ModuleAddress)
	if err != nil {
		return nil, err
	}

	if c.accountAddr != "" {
		sess, err := wallet.NewAccountSession(c.accountAddr, c.chain)
		if err != nil {
			return nil, err
		}
		c.session = sess
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}
	return c, nil
}

// newDefaultExecutor constructs the shardqueue executor with sane defaults.
// Terminal job failures are logged and counted; they are never dropped
// silently.
func newDefaultExecutor() *shardqueue.ShardExecutor {
	return shardqueue.NewShardExecutor(shardqueue.Config{
		Shards:    4,
		QueueSize: 1000,
		ErrorHandler: func(err error) {
			transactionsFailedTotal.Inc()
			log.Error().Err(err).Msg("engagement event failed")
		},
	})
}

// classifyEngagementError maps write-path failures onto the retry taxonomy
// the shard executor honours. Reverts, finality timeouts (ambiguous: the
// transaction may still land, so re-signing risks a double engagement),
// wallet rejections, and 4xx submission rejections must not be re-submitted.
// Network-level failures and 5xx rejections are transient and may be.
func classifyEngagementError(err error) error {
	if err == nil {
		return nil
	}
	var re *chain.RevertError
	var se *chain.SubmissionError
	switch {
	case errors.As(err, &re),
		errors.Is(err, chain.ErrFinalityTimeout),
		errors.Is(err, wallet.ErrWalletUnavailable):
		return &interrors.ClassifiedError{Category: interrors.Irrecoverable, Underlying: err}
	case errors.As(err, &se):
		if se.StatusCode > 0 {
			return interrors.ClassifyHTTPError(se.StatusCode, se.Body, err)
		}
		return interrors.NewNetworkError("submit engagement", err)
	}
	// Lookup and decode failures are treated as transient node trouble.
	return err
}

// Close stops the background executor, draining queued engagement events.
// Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// Session returns the active wallet session.
func (c *Client) Session() wallet.Session { return c.session }

// TransactionURL returns the block-explorer link for a transaction hash.
func (c *Client) TransactionURL(hash string) string { return c.cfg.TransactionURL(hash) }

// AccountURL returns the block-explorer link for an account address.
func (c *Client) AccountURL(address string) string { return c.cfg.AccountURL(address) }

// --------------------------------------------------------------------
// Write path
// --------------------------------------------------------------------

// submitAndWait runs the synchronous write sequence: sign/submit via the
// wallet session, then block until the chain reports finality.
func (c *Client) submitAndWait(ctx context.Context, payload types.EntryFunctionPayload) (*types.TxnResult, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	pending, err := c.session.SignAndSubmit(ctx, payload)
	if err != nil {
		transactionsFailedTotal.Inc()
		return nil, err
	}
	transactionsSubmittedTotal.Inc()

	committed, err := c.chain.WaitForTransaction(ctx, pending.Hash)
	if err != nil {
		transactionsFailedTotal.Inc()
		return nil, err
	}
	return &types.TxnResult{
		Hash:        committed.Hash,
		Success:     committed.Success,
		VMStatus:    committed.VMStatus,
		Version:     committed.Version,
		ExplorerURL: c.cfg.TransactionURL(committed.Hash),
	}, nil
}

// CreateContent registers a new content record.
func (c *Client) CreateContent(ctx context.Context, req CreateContentRequest) (*TxnResult, error) {
	payload, err := c.builder.CreateContent(req.ID, req.ContentHash, req.ContentType, req.Description, req.Tags)
	if err != nil {
		return nil, err
	}
	return c.submitAndWait(ctx, payload)
}

// Engage records an engagement event for contentID via the sharded
// executor: per-content FIFO order is preserved and bursts are absorbed
// without blocking the caller. The returned ack only means the event was
// queued; use AwaitSettled to flush.
//
// The pending overlay is bumped when the event commits, so feed views can
// show the optimistic count until the next authoritative fetch reconciles.
func (c *Client) Engage(ctx context.Context, contentID string, kind EngagementKind) (*EnqueueAck, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	payload, err := c.builder.Engage(contentID, kind)
	if err != nil {
		return nil, err
	}

	engageJob := job.New(func(jobCtx context.Context) error {
		pending, err := c.session.SignAndSubmit(jobCtx, payload)
		if err != nil {
			return classifyEngagementError(err)
		}
		if _, err := c.chain.WaitForTransaction(jobCtx, pending.Hash); err != nil {
			return classifyEngagementError(err)
		}
		c.pending.Add(contentID)
		return nil
	})

	if err := c.exec.Submit(ctx, contentID, engageJob); err != nil {
		return nil, err
	}
	engagementsEnqueuedTotal.WithLabelValues(job.ShardLabel(contentID)).Inc()
	return &EnqueueAck{ContentID: contentID, Status: "enqueued"}, nil
}

// AwaitSettled blocks until all previously queued engagement events for
// contentID have been executed, by queueing a no-op job behind them and
// waiting for it to run.
func (c *Client) AwaitSettled(ctx context.Context, contentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	barrier := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, contentID, barrier); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// CreateAgent registers a new AI agent.
func (c *Client) CreateAgent(ctx context.Context, req CreateAgentRequest) (*TxnResult, error) {
	payload, err := c.builder.CreateAgent(req.ID, req.AgentType, req.Name, req.Description, req.Configuration, req.WithResourceAccount)
	if err != nil {
		return nil, err
	}
	return c.submitAndWait(ctx, payload)
}

// ActivateAgent flips an agent to active.
func (c *Client) ActivateAgent(ctx context.Context, agentID string) (*TxnResult, error) {
	payload, err := c.builder.ActivateAgent(agentID)
	if err != nil {
		return nil, err
	}
	return c.submitAndWait(ctx, payload)
}

// DeactivateAgent flips an agent to inactive.
func (c *Client) DeactivateAgent(ctx context.Context, agentID string) (*TxnResult, error) {
	payload, err := c.builder.DeactivateAgent(agentID)
	if err != nil {
		return nil, err
	}
	return c.submitAndWait(ctx, payload)
}

// CreateProfile creates the caller's creator profile.
func (c *Client) CreateProfile(ctx context.Context, req ProfileRequest) (*TxnResult, error) {
	payload, err := c.builder.CreateProfile(req.Name, req.Bio, req.SocialLinks)
	if err != nil {
		return nil, err
	}
	return c.submitAndWait(ctx, payload)
}

// UpdateProfile overwrites the caller's creator profile in full.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileRequest) (*TxnResult, error) {
	payload, err := c.builder.UpdateProfile(req.Name, req.Bio, req.SocialLinks)
	if err != nil {
		return nil, err
	}
	return c.submitAndWait(ctx, payload)
}

// RateContent submits a rating (1-5) with free-form feedback.
func (c *Client) RateContent(ctx context.Context, contentID string, rating int, feedback string) (*TxnResult, error) {
	payload, err := c.builder.RateContent(contentID, rating, feedback)
	if err != nil {
		return nil, err
	}
	return c.submitAndWait(ctx, payload)
}

// --------------------------------------------------------------------
// Read path - delegated to the query facade
// --------------------------------------------------------------------

// GetContent fetches a content record. The pending engagement overlay is
// reconciled against the authoritative count and merged into the result.
func (c *Client) GetContent(ctx context.Context, contentID string) (*ContentRecord, error) {
	rec, err := c.query.GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	merged := c.pending.Reconcile(*rec)
	return &merged, nil
}

// GetProfile fetches a creator profile by address.
func (c *Client) GetProfile(ctx context.Context, address string) (*CreatorProfile, error) {
	return c.query.GetProfile(ctx, address)
}

// GetAgent fetches an agent record.
func (c *Client) GetAgent(ctx context.Context, agentID string) (*AgentRecord, error) {
	return c.query.GetAgent(ctx, agentID)
}

// GetRecommendations fetches on-chain recommendations for an address.
func (c *Client) GetRecommendations(ctx context.Context, address string) ([]string, error) {
	return c.query.GetRecommendations(ctx, address)
}

// GetContentReputation fetches aggregated rating state for a content ID.
func (c *Client) GetContentReputation(ctx context.Context, contentID string) (*ContentReputation, error) {
	return c.query.GetContentReputation(ctx, contentID)
}

// GetTotalSupply fetches the platform token's total supply.
func (c *Client) GetTotalSupply(ctx context.Context) (uint64, error) {
	return c.query.GetTotalSupply(ctx)
}

// HasUserRated reports whether address has already rated contentID.
func (c *Client) HasUserRated(ctx context.Context, address, contentID string) (bool, error) {
	return c.query.HasUserRated(ctx, address, contentID)
}

// requireSession is used by callers that want a clear error before building
// a payload; the session itself also rejects writes when disconnected.
func (c *Client) requireSession() error {
	if !c.session.Connected() {
		return fmt.Errorf("%w: connect an account first", wallet.ErrWalletUnavailable)
	}
	return nil
}
