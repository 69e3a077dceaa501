package aptosagora

import (
	"github.com/niklabh/AptosAgora/internal/config"
	"github.com/niklabh/AptosAgora/internal/types"
)

// Public type aliases so SDK consumers can import only this package.

// Requests
type (
	CreateContentRequest = types.CreateContentRequest
	CreateAgentRequest   = types.CreateAgentRequest
	ProfileRequest       = types.ProfileRequest
)

// Domain entities
type (
	ContentRecord     = types.ContentRecord
	AgentRecord       = types.AgentRecord
	CreatorProfile    = types.CreatorProfile
	EngagementEvent   = types.EngagementEvent
	ContentReputation = types.ContentReputation
	Recommendation    = types.Recommendation
	ChatMessage       = types.ChatMessage
)

// Enums
type (
	ContentKind    = types.ContentKind
	AgentKind      = types.AgentKind
	EngagementKind = types.EngagementKind
)

const (
	ContentArticle = types.ContentArticle
	ContentImage   = types.ContentImage
	ContentVideo   = types.ContentVideo
	ContentAudio   = types.ContentAudio
	ContentOther   = types.ContentOther

	AgentCreator     = types.AgentCreator
	AgentCurator     = types.AgentCurator
	AgentDistributor = types.AgentDistributor

	EngageView    = types.EngageView
	EngageLike    = types.EngageLike
	EngageShare   = types.EngageShare
	EngageComment = types.EngageComment
)

// Responses
type (
	TxnResult  = types.TxnResult
	EnqueueAck = types.EnqueueAck
)

// Config is the environment-level configuration resolved once at start.
type Config = config.Config

// LoadConfig parses configuration from AGORA_-prefixed environment
// variables, falling back to public devnet endpoints.
func LoadConfig() (*Config, error) { return config.Load() }

// Errors re-exported in errors.go
