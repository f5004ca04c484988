// Package judgment is the AI half of the hybrid score: a provider chain
// that asks an LLM to rate brand clarity, trust, and sentiment, with a
// hardcoded default when every provider fails. The aggregator upstream has
// no failure path, so this package never returns an error to the pipeline.
package judgment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Provider generates a JSON completion for a prompt.
type Provider interface {
	Name() string
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GroqClient talks to any OpenAI-compatible chat completions endpoint.
// Groq in production, but the base URL is configurable.
type GroqClient struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
}

// DefaultGroqModel is the production judgment model.
const DefaultGroqModel = "llama-3.3-70b-versatile"

const defaultGroqBaseURL = "https://api.groq.com/openai"

// NewGroqClient creates a Groq provider. Empty model and baseURL fall back
// to production defaults.
func NewGroqClient(apiKey, model, baseURL string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGroqModel
	}
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}
	return &GroqClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
	}, nil
}

func (c *GroqClient) Name() string { return "groq" }

// GenerateJSON runs one chat completion in JSON mode.
func (c *GroqClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature":     0.1,
		"response_format": map[string]string{"type": "json_object"},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create groq request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call groq: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var errResp map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return "", fmt.Errorf("groq status %d: %v", resp.StatusCode, errResp)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode groq response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("groq: no choices returned")
	}
	return cleanJSONBlock(result.Choices[0].Message.Content), nil
}

func (c *GroqClient) Close() error { return nil }

// GeminiClient is the backup provider.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// DefaultGeminiModel is the backup judgment model.
const DefaultGeminiModel = "gemini-2.0-flash-exp"

// NewGeminiClient creates a Gemini provider.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Name() string { return "gemini" }

// GenerateJSON generates a JSON response with low temperature.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return cleanJSONBlock(text), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
