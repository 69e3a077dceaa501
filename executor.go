package aptosagora

import (
	"context"

	"github.com/niklabh/AptosAgora/internal/shardqueue"
)

// Executor abstracts the internal async job runner behind Engage and
// AwaitSettled. The default is a shardqueue.ShardExecutor keyed by content
// ID; tests substitute synchronous implementations via WithExecutor.
type Executor interface {
	Submit(ctx context.Context, key string, j shardqueue.Job) error
	Stop()
}

// executor is the internal alias used by Client fields.
type executor = Executor
