package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/felixgeelhaar/respec/internal/errors"
)

const refinePrompt = `You're given a list of code entities that need to be grouped by functionality or domain.
Each entity has a name, type, purpose, and dependencies.

Entities:
%s

Please identify logical groups for these entities based on their purpose and dependencies.
Follow these guidelines:
1. Create 2-6 groups
2. Name each group based on its shared functionality
3. Assign each entity to exactly one group
4. Put entities that don't fit in any group in a "common" group

Respond with a JSON object where:
- Keys are group names
- Values are arrays of entity names (strings, not objects) belonging to that group`

// OpenAIRefiner implements GroupRefiner against an OpenAI-compatible
// chat-completions API using JSON response mode.
type OpenAIRefiner struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// OpenAIConfig configures an OpenAIRefiner
type OpenAIConfig struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL overrides the API endpoint (defaults to OpenAI)
	BaseURL string

	// Model selects the model (defaults to gpt-4o)
	Model string

	// Timeout bounds each refinement request (defaults to 30s)
	Timeout time.Duration
}

// OpenAI API request/response structures
type openAIRequest struct {
	Model          string               `json:"model"`
	Messages       []openAIMessage      `json:"messages"`
	Temperature    float64              `json:"temperature,omitempty"`
	ResponseFormat openAIResponseFormat `json:"response_format"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Model   string         `json:"model"`
	Choices []openAIChoice `json:"choices"`
	Error   *openAIError   `json:"error,omitempty"`
}

type openAIChoice struct {
	Index        int           `json:"index"`
	Message      openAIMessage `json:"message,omitempty"`
	FinishReason string        `json:"finish_reason,omitempty"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewOpenAIRefiner creates a new OpenAI-backed group refiner
func NewOpenAIRefiner(config OpenAIConfig) (*OpenAIRefiner, error) {
	if config.APIKey == "" {
		return nil, errors.New(errors.ErrCodeProviderConfig, "api_key not found in refiner config").
			WithSuggestion("Set the OPENAI_API_KEY environment variable")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	model := config.Model
	if model == "" {
		model = "gpt-4o"
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIRefiner{
		apiKey:  config.APIKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Name implements GroupRefiner.Name
func (r *OpenAIRefiner) Name() string { return "openai" }

// IsAvailable implements GroupRefiner.IsAvailable
func (r *OpenAIRefiner) IsAvailable() bool { return r.apiKey != "" }

// RefineGroups implements GroupRefiner.RefineGroups
func (r *OpenAIRefiner) RefineGroups(ctx context.Context, entities []EntitySummary) (map[string][]string, error) {
	summary, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal entity summaries: %w", err)
	}

	oaiReq := openAIRequest{
		Model: r.model,
		Messages: []openAIMessage{
			{Role: "user", Content: fmt.Sprintf(refinePrompt, string(summary))},
		},
		Temperature:    0.3,
		ResponseFormat: openAIResponseFormat{Type: "json_object"},
	}

	reqBody, err := json.Marshal(oaiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)

	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var errResp openAIResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("openai error: %s", errResp.Error.Message))
		}
		return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("http error %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var oaiResp openAIResponse
	if err := json.Unmarshal(respBody, &oaiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(oaiResp.Choices) == 0 {
		return nil, errors.New(errors.ErrCodeGroupRefineMalformed, "refinement response has no choices")
	}

	var groups map[string][]string
	if err := json.Unmarshal([]byte(oaiResp.Choices[0].Message.Content), &groups); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGroupRefineMalformed, "invalid JSON in group refinement response", err)
	}

	return groups, nil
}

// Compile-time verification
var _ GroupRefiner = (*OpenAIRefiner)(nil)
