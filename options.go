package aptosagora

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/niklabh/AptosAgora/wallet"
)

// Option configures a Client during construction in New.
//
// Options run before the chain client, builder, and query facade are built,
// so transport-related options affect every subsequent network call.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time of a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient substitutes the entire HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging requests that each request/response is dumped to the log.
// Also auto-enabled by the AGORA_DEBUG=true or DEBUG=true environment
// variables. The transport wrap is applied after all options run, so the
// order relative to WithHTTPClient does not matter.
//
// Do not enable in production: logs include full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debugLogging = enabled
		return nil
	}
}

// WithAccount binds the client to a connected account address. Writes are
// signed and submitted on behalf of this account; without it the client is
// read-only and every write fails with ErrWalletUnavailable.
func WithAccount(address string) Option {
	return func(c *Client) error {
		c.accountAddr = address
		return nil
	}
}

// WithSession installs a custom wallet session, e.g. one backed by an
// external signer.
func WithSession(s wallet.Session) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("session must not be nil")
		}
		c.session = s
		return nil
	}
}

// WithExecutor substitutes the async engagement executor, mainly for tests.
func WithExecutor(e Executor) Option {
	return func(c *Client) error {
		if e == nil {
			return fmt.Errorf("executor must not be nil")
		}
		c.exec = e
		return nil
	}
}

// WithFinalityTimeout bounds how long write operations wait for a submitted
// transaction to commit before reporting ErrFinalityTimeout.
func WithFinalityTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("finality timeout must be > 0")
		}
		c.finalityTimeout = d
		return nil
	}
}
