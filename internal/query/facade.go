// Package query maps high-level domain reads to view calls and unwraps the
// dynamically-typed results into the SDK's entity shapes. A missing resource
// surfaces as types.ErrNotFound rather than a failure; everything else is a
// query error from the chain client, passed through unchanged.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/niklabh/AptosAgora/internal/types"
)

// Viewer is the single chain capability the facade needs.
type Viewer interface {
	View(ctx context.Context, req types.ViewRequest) (types.ViewResponse, error)
}

// Facade issues typed reads against one deployed module address.
type Facade struct {
	viewer        Viewer
	moduleAddress string
}

// New constructs a Facade.
func New(viewer Viewer, moduleAddress string) (*Facade, error) {
	if err := types.ValidateAddress(moduleAddress); err != nil {
		return nil, fmt.Errorf("module address: %w", err)
	}
	return &Facade{viewer: viewer, moduleAddress: moduleAddress}, nil
}

func (f *Facade) view(ctx context.Context, fn string, args ...any) (types.ViewResponse, error) {
	if args == nil {
		args = []any{}
	}
	return f.viewer.View(ctx, types.ViewRequest{
		Function:      f.moduleAddress + "::" + fn,
		TypeArguments: []string{},
		Arguments:     args,
	})
}

// u64 decodes the node's integer encoding, which may be a JSON string
// ("128") or a bare number depending on width.
type u64 int64

func (u *u64) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("parse u64 %q: %w", s, err)
		}
		*u = u64(v)
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*u = u64(v)
	return nil
}

// first extracts the leading return value of a view call into dst.
func first(resp types.ViewResponse, dst any) error {
	if len(resp) == 0 {
		return types.ErrNotFound
	}
	return json.Unmarshal(resp[0], dst)
}

// ------------------------------
// Reads
// ------------------------------

type contentWire struct {
	ID                string   `json:"id"`
	ContentHash       string   `json:"content_hash"`
	ContentType       string   `json:"content_type"`
	Description       string   `json:"description"`
	Creator           string   `json:"creator"`
	Tags              []string `json:"tags"`
	CreationTimestamp u64      `json:"creation_timestamp"`
	EngagementCount   u64      `json:"engagement_count"`
	IsActive          bool     `json:"is_active"`
}

// GetContent fetches one content record by ID.
func (f *Facade) GetContent(ctx context.Context, contentID string) (*types.ContentRecord, error) {
	if err := types.ValidateIDPresent(contentID, "contentId"); err != nil {
		return nil, err
	}
	resp, err := f.view(ctx, "content_registry::get_content", contentID)
	if err != nil {
		return nil, err
	}
	var w contentWire
	if err := first(resp, &w); err != nil {
		return nil, err
	}
	return &types.ContentRecord{
		ID:              w.ID,
		ContentHash:     w.ContentHash,
		ContentType:     types.ContentKind(w.ContentType),
		Description:     w.Description,
		Creator:         w.Creator,
		Tags:            w.Tags,
		CreatedAt:       int64(w.CreationTimestamp),
		EngagementCount: int64(w.EngagementCount),
		IsActive:        w.IsActive,
	}, nil
}

type profileWire struct {
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	SocialLinks     string `json:"social_links"`
	ContentCount    u64    `json:"content_count"`
	ReputationScore u64    `json:"reputation_score"`
}

// reputationScale converts the contract's fixed-point score (two decimal
// places, 0..500) to the 0.0-5.0 range.
const reputationScale = 100.0

// GetProfile fetches a creator profile by account address. The social-links
// argument is stored on-chain as the canonical JSON string the builder
// produced; it is parsed back into a mapping here.
func (f *Facade) GetProfile(ctx context.Context, address string) (*types.CreatorProfile, error) {
	if err := types.ValidateAddress(address); err != nil {
		return nil, err
	}
	resp, err := f.view(ctx, "creator_profiles::get_profile", address)
	if err != nil {
		return nil, err
	}
	var w profileWire
	if err := first(resp, &w); err != nil {
		return nil, err
	}
	links := map[string]string{}
	if w.SocialLinks != "" {
		// A profile written through another client may hold arbitrary text
		// here; unparseable links degrade to an empty map.
		_ = json.Unmarshal([]byte(w.SocialLinks), &links)
	}
	return &types.CreatorProfile{
		Address:         address,
		Name:            w.Name,
		Bio:             w.Bio,
		SocialLinks:     links,
		ContentCount:    int64(w.ContentCount),
		ReputationScore: float64(w.ReputationScore) / reputationScale,
	}, nil
}

type agentWire struct {
	ID                string `json:"id"`
	AgentType         u64    `json:"agent_type"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Owner             string `json:"owner"`
	Configuration     string `json:"configuration"`
	IsAutonomous      bool   `json:"is_autonomous"`
	IsActive          bool   `json:"is_active"`
	CreationTimestamp u64    `json:"creation_timestamp"`
	UsageCount        u64    `json:"usage_count"`
}

// GetAgent fetches one agent record by ID.
func (f *Facade) GetAgent(ctx context.Context, agentID string) (*types.AgentRecord, error) {
	if err := types.ValidateIDPresent(agentID, "agentId"); err != nil {
		return nil, err
	}
	resp, err := f.view(ctx, "agent_framework::get_agent", agentID)
	if err != nil {
		return nil, err
	}
	var w agentWire
	if err := first(resp, &w); err != nil {
		return nil, err
	}
	cfg := map[string]string{}
	if w.Configuration != "" {
		_ = json.Unmarshal([]byte(w.Configuration), &cfg)
	}
	return &types.AgentRecord{
		ID:            w.ID,
		AgentType:     types.AgentKindFromCode(int(w.AgentType)),
		Name:          w.Name,
		Description:   w.Description,
		Owner:         w.Owner,
		Configuration: cfg,
		IsAutonomous:  w.IsAutonomous,
		IsActive:      w.IsActive,
		CreatedAt:     int64(w.CreationTimestamp),
		UsageCount:    int64(w.UsageCount),
	}, nil
}

// GetRecommendations fetches the content IDs the on-chain recommendation
// engine currently suggests for an address.
func (f *Facade) GetRecommendations(ctx context.Context, address string) ([]string, error) {
	if err := types.ValidateAddress(address); err != nil {
		return nil, err
	}
	resp, err := f.view(ctx, "recommendation_engine::get_recommendations", address)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := first(resp, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

type reputationWire struct {
	AverageRating u64 `json:"average_rating"`
	RatingCount   u64 `json:"rating_count"`
}

// GetContentReputation fetches aggregated rating state for one content ID.
func (f *Facade) GetContentReputation(ctx context.Context, contentID string) (*types.ContentReputation, error) {
	if err := types.ValidateIDPresent(contentID, "contentId"); err != nil {
		return nil, err
	}
	resp, err := f.view(ctx, "reputation_system::get_content_reputation", contentID)
	if err != nil {
		return nil, err
	}
	var w reputationWire
	if err := first(resp, &w); err != nil {
		return nil, err
	}
	return &types.ContentReputation{
		ContentID:     contentID,
		AverageRating: float64(w.AverageRating) / reputationScale,
		RatingCount:   int64(w.RatingCount),
	}, nil
}

// GetTotalSupply fetches the platform token's total supply.
func (f *Facade) GetTotalSupply(ctx context.Context) (uint64, error) {
	resp, err := f.view(ctx, "token_economics::get_total_supply")
	if err != nil {
		return 0, err
	}
	var supply u64
	if err := first(resp, &supply); err != nil {
		return 0, err
	}
	return uint64(supply), nil
}

// HasUserRated reports whether address has already rated contentID. The
// contract owns re-rating policy; this read only supports UI gating.
func (f *Facade) HasUserRated(ctx context.Context, address, contentID string) (bool, error) {
	if err := types.ValidateAddress(address); err != nil {
		return false, err
	}
	if err := types.ValidateIDPresent(contentID, "contentId"); err != nil {
		return false, err
	}
	resp, err := f.view(ctx, "reputation_system::has_user_rated", address, contentID)
	if err != nil {
		return false, err
	}
	var rated bool
	if err := first(resp, &rated); err != nil {
		return false, err
	}
	return rated, nil
}
