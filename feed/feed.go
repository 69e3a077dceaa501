// Package feed implements the client-side list engine behind the explore
// and dashboard views: pure filter/sort/search over in-memory collections.
// Apply never mutates its input and equal inputs always produce identical,
// order-stable output.
package feed

import (
	"sort"
	"strings"

	"github.com/niklabh/AptosAgora/internal/types"
)

// SortOrder selects the feed ordering.
type SortOrder string

const (
	// SortRecent orders by creation timestamp, newest first.
	SortRecent SortOrder = "recent"
	// SortPopular orders by engagement (content) or usage (agents), highest
	// first.
	SortPopular SortOrder = "popular"
)

// Filter describes one feed query. Zero fields are inactive.
type Filter struct {
	// SearchTerm matches case-insensitively against title/name and
	// description.
	SearchTerm string
	// Kind keeps only items whose type matches exactly.
	Kind string
	// Tags keeps items whose tag set intersects this set. Selecting several
	// tags widens the result (OR semantics), it does not narrow it.
	Tags []string
	// SortBy defaults to SortRecent.
	SortBy SortOrder
}

// Apply filters and sorts content records. Ties keep their original
// relative order; the input slice is left untouched.
func Apply(items []types.ContentRecord, f Filter) []types.ContentRecord {
	out := make([]types.ContentRecord, 0, len(items))
	for _, it := range items {
		if !matchTerm(f.SearchTerm, it.Title, it.Description) {
			continue
		}
		if f.Kind != "" && string(it.ContentType) != f.Kind {
			continue
		}
		if !matchTags(f.Tags, it.Tags) {
			continue
		}
		out = append(out, it)
	}
	switch f.SortBy {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EngagementCount > out[j].EngagementCount
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	}
	return out
}

// ApplyAgents is the agent-collection counterpart of Apply. Agents carry no
// tags, so the tag filter is ignored; popularity means usage count.
func ApplyAgents(items []types.AgentRecord, f Filter) []types.AgentRecord {
	out := make([]types.AgentRecord, 0, len(items))
	for _, it := range items {
		if !matchTerm(f.SearchTerm, it.Name, it.Description) {
			continue
		}
		if f.Kind != "" && string(it.AgentType) != f.Kind {
			continue
		}
		out = append(out, it)
	}
	switch f.SortBy {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UsageCount > out[j].UsageCount
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	}
	return out
}

func matchTerm(term, title, description string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(title), t) ||
		strings.Contains(strings.ToLower(description), t)
}

// matchTags reports whether any selected tag appears in the item's tags.
func matchTags(selected, itemTags []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, have := range itemTags {
			if want == have {
				return true
			}
		}
	}
	return false
}
