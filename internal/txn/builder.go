// Package txn maps high-level domain actions to entry-function payloads.
// Builders are pure: no I/O, deterministic for equal inputs, and argument
// order always mirrors the remote function signature exactly.
package txn

import (
	"fmt"

	"github.com/niklabh/AptosAgora/internal/types"
)

const payloadType = "entry_function_payload"

// Builder constructs transaction payloads targeting one deployed module
// address.
type Builder struct {
	moduleAddress string
}

// NewBuilder returns a Builder for the given module address.
func NewBuilder(moduleAddress string) (*Builder, error) {
	if err := types.ValidateAddress(moduleAddress); err != nil {
		return nil, fmt.Errorf("module address: %w", err)
	}
	return &Builder{moduleAddress: moduleAddress}, nil
}

// Target returns the fully qualified function identifier for a
// "<module>::<function>" pair.
func (b *Builder) Target(fn string) string {
	return b.moduleAddress + "::" + fn
}

func (b *Builder) payload(fn string, args ...any) types.EntryFunctionPayload {
	if args == nil {
		args = []any{}
	}
	return types.EntryFunctionPayload{
		Type:          payloadType,
		Function:      b.Target(fn),
		TypeArguments: []string{},
		Arguments:     args,
	}
}

// CreateContent builds content_registry::create_content. Tags are passed
// through in caller order; they are never sorted or deduplicated.
func (b *Builder) CreateContent(contentID, contentHash string, kind types.ContentKind, description string, tags []string) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(contentID, "contentId"); err != nil {
		return zero, err
	}
	if err := types.ValidateIDPresent(contentHash, "contentHash"); err != nil {
		return zero, err
	}
	if err := types.ValidateContentKind(kind); err != nil {
		return zero, err
	}
	if tags == nil {
		tags = []string{}
	}
	return b.payload("content_registry::create_content",
		contentID, contentHash, string(kind), description, tags), nil
}

// Engage builds content_registry::engage_with_content.
func (b *Builder) Engage(contentID string, kind types.EngagementKind) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(contentID, "contentId"); err != nil {
		return zero, err
	}
	if err := types.ValidateEngagementKind(kind); err != nil {
		return zero, err
	}
	return b.payload("content_registry::engage_with_content", contentID, string(kind)), nil
}

// CreateAgent builds agent_framework::create_agent. The remote function
// accepts the configuration as a single opaque string, so the mapping is
// serialized through CanonicalJSON before inclusion.
func (b *Builder) CreateAgent(agentID string, kind types.AgentKind, name, description string, configuration map[string]string, withResourceAccount bool) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(agentID, "agentId"); err != nil {
		return zero, err
	}
	if err := types.ValidateIDPresent(name, "name"); err != nil {
		return zero, err
	}
	code, err := kind.Code()
	if err != nil {
		return zero, err
	}
	return b.payload("agent_framework::create_agent",
		agentID, code, name, description, CanonicalJSON(configuration), withResourceAccount), nil
}

// ActivateAgent builds agent_framework::activate_agent.
func (b *Builder) ActivateAgent(agentID string) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(agentID, "agentId"); err != nil {
		return zero, err
	}
	return b.payload("agent_framework::activate_agent", agentID), nil
}

// DeactivateAgent builds agent_framework::deactivate_agent.
func (b *Builder) DeactivateAgent(agentID string) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(agentID, "agentId"); err != nil {
		return zero, err
	}
	return b.payload("agent_framework::deactivate_agent", agentID), nil
}

// CreateProfile builds creator_profiles::create_profile. Social links use
// the same canonical serialization as agent configuration.
func (b *Builder) CreateProfile(name, bio string, socialLinks map[string]string) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(name, "name"); err != nil {
		return zero, err
	}
	return b.payload("creator_profiles::create_profile", name, bio, CanonicalJSON(socialLinks)), nil
}

// UpdateProfile builds creator_profiles::update_profile. Updates are full
// overwrites; all fields must be supplied.
func (b *Builder) UpdateProfile(name, bio string, socialLinks map[string]string) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(name, "name"); err != nil {
		return zero, err
	}
	return b.payload("creator_profiles::update_profile", name, bio, CanonicalJSON(socialLinks)), nil
}

// RateContent builds reputation_system::rate_content. Rating bounds are
// checked locally; re-rating policy is owned by the contract.
func (b *Builder) RateContent(contentID string, rating int, feedback string) (types.EntryFunctionPayload, error) {
	var zero types.EntryFunctionPayload
	if err := types.ValidateIDPresent(contentID, "contentId"); err != nil {
		return zero, err
	}
	if err := types.ValidateRating(rating); err != nil {
		return zero, err
	}
	return b.payload("reputation_system::rate_content", contentID, rating, feedback), nil
}
