package types

import (
	"fmt"
	"strconv"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// ContentKind enumerates the supported content types.
type ContentKind string

const (
	ContentArticle ContentKind = "article"
	ContentImage   ContentKind = "image"
	ContentVideo   ContentKind = "video"
	ContentAudio   ContentKind = "audio"
	ContentOther   ContentKind = "other"
)

// AgentKind enumerates the built-in agent types. The contract accepts
// arbitrary values, so this set is advisory rather than closed.
type AgentKind string

const (
	AgentCreator     AgentKind = "creator"
	AgentCurator     AgentKind = "curator"
	AgentDistributor AgentKind = "distributor"
)

// Code maps an agent kind to the integer accepted by
// agent_framework::create_agent.
func (k AgentKind) Code() (int, error) {
	switch k {
	case AgentCreator:
		return 1, nil
	case AgentCurator:
		return 2, nil
	case AgentDistributor:
		return 3, nil
	}
	return 0, fmt.Errorf("unknown agent type %q", k)
}

// AgentKindFromCode is the inverse of Code. Unknown codes map to the raw
// numeric form so new remote kinds round-trip without data loss.
func AgentKindFromCode(code int) AgentKind {
	switch code {
	case 1:
		return AgentCreator
	case 2:
		return AgentCurator
	case 3:
		return AgentDistributor
	}
	return AgentKind(strconv.Itoa(code))
}

// EngagementKind enumerates the engagement event types.
type EngagementKind string

const (
	EngageView    EngagementKind = "view"
	EngageLike    EngagementKind = "like"
	EngageShare   EngagementKind = "share"
	EngageComment EngagementKind = "comment"
)

// ContentRecord represents a content entry in the on-chain registry.
// The identifier and creator are immutable once created; the engagement
// counter is maintained remotely and only ever increases.
type ContentRecord struct {
	ID              string      `json:"id"`
	Title           string      `json:"title,omitempty"`
	ContentHash     string      `json:"contentHash"`
	ContentType     ContentKind `json:"contentType"`
	Description     string      `json:"description"`
	Creator         string      `json:"creator"`
	Tags            []string    `json:"tags"`
	CreatedAt       int64       `json:"creationTimestamp"`
	EngagementCount int64       `json:"engagementCount"`
	IsActive        bool        `json:"isActive"`
}

// AgentRecord represents an AI agent registered with the agent framework.
type AgentRecord struct {
	ID            string            `json:"id"`
	AgentType     AgentKind         `json:"agentType"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Owner         string            `json:"owner"`
	Configuration map[string]string `json:"configuration,omitempty"`
	IsAutonomous  bool              `json:"isAutonomous"`
	IsActive      bool              `json:"isActive"`
	CreatedAt     int64             `json:"creationTimestamp"`
	UsageCount    int64             `json:"usageCount"`
}

// CreatorProfile represents a creator's on-chain profile, keyed by address.
// Profile writes are full overwrites; there is no partial patch.
type CreatorProfile struct {
	Address         string            `json:"address"`
	Name            string            `json:"name"`
	Bio             string            `json:"bio"`
	SocialLinks     map[string]string `json:"socialLinks,omitempty"`
	ContentCount    int64             `json:"contentCount"`
	ReputationScore float64           `json:"reputationScore"`
}

// EngagementEvent is a write-only record of a user interacting with content.
// Aggregation into engagement counters happens on-chain.
type EngagementEvent struct {
	ContentID string         `json:"contentId"`
	Kind      EngagementKind `json:"engagementType"`
	Actor     string         `json:"actor"`
	Timestamp int64          `json:"timestamp"`
}

// Recommendation pairs a content ID with a confidence score in [0,1].
type Recommendation struct {
	ContentID string  `json:"contentId"`
	Score     float64 `json:"score"`
}

// ContentReputation summarizes rating state for a piece of content.
type ContentReputation struct {
	ContentID     string  `json:"contentId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
}

// ChatMessage is a single turn in a local agent conversation. Chat history
// is never persisted on-chain.
type ChatMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	Sender         string `json:"sender"` // "user" or "agent"
	Text           string `json:"text"`
	CreatedAt      int64  `json:"createdAt"`
}
