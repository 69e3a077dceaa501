// Package advisor is the best-effort AI integration: content optimization,
// recommendation, and distribution-strategy suggestions from a
// chat-completion endpoint. Its output is supplementary, so no operation
// ever returns an error across the package boundary — failures downgrade to
// safe fallback values and a debug log line.
package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog/log"

	"github.com/niklabh/AptosAgora/internal/types"
)

// FallbackSuggestion is returned by OptimizeContent when the endpoint is
// unreachable or replies with garbage.
const FallbackSuggestion = "Unable to generate suggestions at this time."

const defaultModel = "gpt-4"

// Client issues chat-completion requests to an OpenAI-style endpoint.
type Client struct {
	http  *resty.Client
	url   string
	model string
}

// Option configures a Client during construction.
type Option func(*Client)

// WithModel overrides the default model name.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout bounds each advisory round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithHTTPClient substitutes the underlying transport, mainly for tests.
// The API key header is applied after options run, so it survives the swap.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc).SetHeader("Content-Type", "application/json")
	}
}

// New constructs an advisory client for the given endpoint URL and API key.
func New(endpoint, apiKey string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(60 * time.Second),
		url:   endpoint,
		model: defaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if apiKey != "" {
		c.http.SetHeader("Authorization", "Bearer "+apiKey)
	}
	return c
}

// ------------------------------
// Wire shapes
// ------------------------------

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete performs one round trip and returns the reply text. ok is false
// on any failure; the reason is only logged.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, bool) {
	req := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := c.http.R().SetContext(ctx).SetBody(&req).Post(c.url)
	if err != nil {
		log.Debug().Err(err).Msg("advisor: request failed")
		return "", false
	}
	if resp.StatusCode() != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode()).Msg("advisor: non-200 reply")
		return "", false
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Debug().Err(err).Msg("advisor: malformed reply body")
		return "", false
	}
	if len(parsed.Choices) == 0 {
		log.Debug().Msg("advisor: reply has no choices")
		return "", false
	}
	return parsed.Choices[0].Message.Content, true
}

// OptimizeContent asks for engagement/clarity suggestions for a piece of
// content. On any failure it resolves to FallbackSuggestion.
func (c *Client) OptimizeContent(ctx context.Context, content string, kind types.ContentKind) string {
	system := "You are a content optimization assistant for " + string(kind) + " content. " +
		"Provide helpful suggestions to improve engagement, clarity, and impact."
	user := "Please analyze and provide optimization suggestions for this " + string(kind) + ":\n\n" + content

	reply, ok := c.complete(ctx, system, user, 500, 0.7)
	if !ok || strings.TrimSpace(reply) == "" {
		return FallbackSuggestion
	}
	return reply
}

// GenerateRecommendations ranks candidate content for the given preferences.
// The model is asked for a JSON array; parse failures are a normal outcome
// and resolve to an empty list. Scores are clamped to [0,1].
func (c *Client) GenerateRecommendations(ctx context.Context, preferences map[string]any, candidates []types.ContentRecord) []types.Recommendation {
	prefsJSON, err := json.Marshal(preferences)
	if err != nil {
		return nil
	}
	candidatesJSON, err := json.Marshal(candidates)
	if err != nil {
		return nil
	}

	system := "You are a content recommendation system. Based on user preferences and available content, " +
		"you will return a JSON array of content IDs and confidence scores."
	user := "User preferences: " + string(prefsJSON) + "\n\n" +
		"Available content: " + string(candidatesJSON) + "\n\n" +
		`Return a JSON array of recommendations in the format: ` +
		`[{"contentId": "id1", "score": 0.95}, {"contentId": "id2", "score": 0.85}]`

	reply, ok := c.complete(ctx, system, user, 500, 0.3)
	if !ok {
		return []types.Recommendation{}
	}

	var recs []types.Recommendation
	if err := json.Unmarshal(extractJSON(reply), &recs); err != nil {
		log.Debug().Err(err).Msg("advisor: unparseable recommendations")
		return []types.Recommendation{}
	}
	for i := range recs {
		if recs[i].Score < 0 {
			recs[i].Score = 0
		}
		if recs[i].Score > 1 {
			recs[i].Score = 1
		}
	}
	return recs
}

// CreateDistributionStrategy asks for a platform-by-platform distribution
// plan. When the reply cannot be parsed as JSON, the raw text is preserved
// under "suggestions" next to an "error" tag, matching the advisory
// contract that callers always receive a usable object.
func (c *Client) CreateDistributionStrategy(ctx context.Context, contentMeta map[string]any, platforms []string) map[string]any {
	metaJSON, err := json.Marshal(contentMeta)
	if err != nil {
		return map[string]any{"error": "failed to generate distribution strategy"}
	}
	platformsJSON, err := json.Marshal(platforms)
	if err != nil {
		return map[string]any{"error": "failed to generate distribution strategy"}
	}

	system := "You are a content distribution strategist. For the given content and platforms, " +
		"provide a distribution strategy with platform-specific recommendations."
	user := "Content: " + string(metaJSON) + "\n\n" +
		"Platforms: " + string(platformsJSON) + "\n\n" +
		"Provide a detailed distribution strategy as JSON."

	reply, ok := c.complete(ctx, system, user, 1000, 0.5)
	if !ok {
		return map[string]any{"error": "failed to generate distribution strategy"}
	}

	var strategy map[string]any
	if err := json.Unmarshal(extractJSON(reply), &strategy); err != nil {
		log.Debug().Err(err).Msg("advisor: unparseable strategy")
		return map[string]any{
			"error":       "failed to generate distribution strategy",
			"suggestions": reply,
		}
	}
	return strategy
}

// extractJSON recovers the serialized payload embedded in a free-text model
// reply: it strips code fences and repairs minor syntax damage. The result
// may still fail to unmarshal; callers treat that as a normal outcome.
func extractJSON(reply string) []byte {
	s := strings.TrimSpace(reply)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	s = strings.TrimSpace(s)
	if repaired, err := jsonrepair.JSONRepair(s); err == nil {
		return []byte(repaired)
	}
	return []byte(s)
}
