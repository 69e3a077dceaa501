package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the requested on-chain resource does not
// exist. It is a normal outcome, not a failure; callers branch on it to
// render empty states.
var ErrNotFound = fmt.Errorf("resource not found")

// ------------------------------
// Input Validation
// ------------------------------

// Rating bounds accepted by reputation_system::rate_content.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidateIDPresent checks that a required identifier is non-empty.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateAddress checks the basic shape of an account address: a non-empty
// 0x-prefixed hex string. Full address semantics are owned by the chain.
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("address is required")
	}
	if !strings.HasPrefix(addr, "0x") || len(addr) < 3 {
		return fmt.Errorf("invalid address %q: must be 0x-prefixed hex", addr)
	}
	for _, r := range addr[2:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("invalid address %q: non-hex character %q", addr, r)
		}
	}
	return nil
}

// ValidateRating checks that a rating is within the contract's bounds.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating %d out of range [%d,%d]", rating, MinRating, MaxRating)
	}
	return nil
}

// ValidateContentKind checks a content type against the known set.
func ValidateContentKind(k ContentKind) error {
	switch k {
	case ContentArticle, ContentImage, ContentVideo, ContentAudio, ContentOther:
		return nil
	}
	return fmt.Errorf("unknown content type %q", k)
}

// ValidateEngagementKind checks an engagement type against the known set.
func ValidateEngagementKind(k EngagementKind) error {
	switch k {
	case EngageView, EngageLike, EngageShare, EngageComment:
		return nil
	}
	return fmt.Errorf("unknown engagement type %q", k)
}
