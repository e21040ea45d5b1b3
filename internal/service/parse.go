package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rlin/jobdeck/internal/prompts"
)

// ErrParseNotConfigured is returned when the auto-fill adapter has no API
// credentials. Handlers turn it into the fixed error payload.
var ErrParseNotConfigured = errors.New("ai parsing is not configured")

// ParseService calls an OpenAI-compatible completion API to pre-populate a
// job form from pasted posting text. Purely best-effort: the caller merges
// whatever fields come back.
type ParseService struct {
	client   *resty.Client
	model    string
	endpoint string
	enabled  bool
}

// ParseConfig holds configuration for the auto-fill adapter.
type ParseConfig struct {
	Model   string
	APIKey  string
	BaseURL string
}

// NewParseService creates a new parse service. An empty API key yields a
// disabled service whose calls return ErrParseNotConfigured.
// Parameters:
//   - cfg: adapter configuration; nil or key-less disables the service.
// Returns:
//   - *ParseService: initialized service.
func NewParseService(cfg *ParseConfig) *ParseService {
	if cfg == nil || cfg.APIKey == "" {
		return &ParseService{enabled: false}
	}

	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(30 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &ParseService{
		client:   client,
		model:    cfg.Model,
		endpoint: baseURL + "/chat/completions",
		enabled:  true,
	}
}

// IsEnabled returns whether the adapter has credentials.
func (s *ParseService) IsEnabled() bool {
	return s.enabled
}

type parseRequest struct {
	Model       string         `json:"model"`
	Messages    []parseMessage `json:"messages"`
	MaxTokens   int            `json:"max_tokens"`
	Temperature float32        `json:"temperature"`
}

type parseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type parseResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ParseJob extracts job fields from free text. Upstream failures are
// reported verbatim to the caller; there are no retries.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - text: pasted job-posting text.
// Returns:
//   - map[string]interface{}: best-effort partial job-field object.
//   - error: ErrParseNotConfigured when disabled, otherwise the upstream error.
func (s *ParseService) ParseJob(ctx context.Context, text string) (map[string]interface{}, error) {
	if !s.enabled {
		return nil, ErrParseNotConfigured
	}

	req := parseRequest{
		Model: s.model,
		Messages: []parseMessage{
			{Role: "system", Content: prompts.JobParseSystemPrompt},
			{Role: "user", Content: text},
		},
		MaxTokens:   400,
		Temperature: 0, // extraction, not generation
	}

	var resp parseResponse
	httpResp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse API call failed: %w", err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		if resp.Error != nil {
			return nil, fmt.Errorf("parse API error: %s", resp.Error.Message)
		}
		return nil, fmt.Errorf("parse API error: status %d", httpResp.StatusCode())
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("parse API returned no choices")
	}

	content := stripFences(resp.Choices[0].Message.Content)
	fields := make(map[string]interface{})
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, fmt.Errorf("parse API returned invalid JSON: %w", err)
	}
	return fields, nil
}

// stripFences removes markdown code fences some models wrap around JSON
// despite instructions.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	return content
}
