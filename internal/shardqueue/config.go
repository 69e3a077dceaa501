package shardqueue

import "time"

// Config tunes a ShardExecutor. The zero value is usable; NewShardExecutor
// fills in defaults for unset fields.
type Config struct {
	// Shards is the number of worker goroutines / queues.
	Shards int
	// QueueSize bounds each shard's channel.
	QueueSize int
	// EnqueueTimeout bounds how long Submit waits for queue space before
	// reporting back-pressure.
	EnqueueTimeout time.Duration
	// MaxAttempts caps retries of a failing job (including the first run).
	MaxAttempts int
	// BaseBackoff is the initial retry interval.
	BaseBackoff time.Duration
	// MaxInterval caps the exponential backoff interval.
	MaxInterval time.Duration
	// ErrorHandler, if set, receives terminal job errors. It must not block.
	ErrorHandler func(error)
}
