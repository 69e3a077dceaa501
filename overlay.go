package aptosagora

import (
	"sync"

	"github.com/niklabh/AptosAgora/internal/types"
)

// PendingEngagements is the optimistic overlay for engagement counters.
// Committed-but-not-yet-indexed engagements are tracked as per-content
// deltas and merged into fetched records, instead of mutating any cached
// record directly.
//
// Every authoritative fetch is observed, so a delta created by Add is
// anchored to the last count known to exclude it. As soon as a fetch shows
// the remote counter advancing past that baseline, the delta is absorbed;
// the merged view can therefore never drift away from the source of truth.
type PendingEngagements struct {
	mu      sync.Mutex
	seen    map[string]int64 // last authoritative count per content
	entries map[string]*pendingEntry
}

type pendingEntry struct {
	delta    int64 // engagements committed locally, not yet visible remotely
	baseline int64 // authoritative count the delta is relative to
}

// NewPendingEngagements constructs an empty overlay.
func NewPendingEngagements() *PendingEngagements {
	return &PendingEngagements{
		seen:    make(map[string]int64),
		entries: make(map[string]*pendingEntry),
	}
}

// Add records one locally committed engagement for contentID. The delta is
// anchored to the last authoritative count observed before the commit; for
// never-fetched content the baseline is zero, so the very next fetch
// absorbs the delta rather than over-counting.
func (p *PendingEngagements) Add(contentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[contentID]
	if !ok {
		e = &pendingEntry{baseline: p.seen[contentID]}
		p.entries[contentID] = e
	}
	e.delta++
}

// Delta returns the current optimistic delta for contentID.
func (p *PendingEngagements) Delta(contentID string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[contentID]; ok {
		return e.delta
	}
	return 0
}

// Reconcile merges the overlay into an authoritative record and shrinks the
// delta by however much the remote counter advanced past the baseline.
// The input record is not modified; the merged copy is returned.
func (p *PendingEngagements) Reconcile(rec types.ContentRecord) types.ContentRecord {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seen[rec.ID] = rec.EngagementCount

	e, ok := p.entries[rec.ID]
	if !ok {
		return rec
	}

	if advanced := rec.EngagementCount - e.baseline; advanced > 0 {
		e.delta -= advanced
		e.baseline = rec.EngagementCount
	}
	if e.delta <= 0 {
		delete(p.entries, rec.ID)
		return rec
	}
	rec.EngagementCount += e.delta
	return rec
}
