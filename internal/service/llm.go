package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const systemPrompt = "You are a professional chef and recipe developer. Create detailed, practical recipes based on the user's request. Extract the dish name from their question and create a complete recipe with proper ingredients, measurements, and detailed cooking instructions. Always return valid JSON."

// LLMClient talks to an OpenAI-compatible chat completions API.
type LLMClient struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

// NewLLMClient returns nil when no API key is configured; generation then
// falls back to the built-in recipe collection.
func NewLLMClient(apiKey, baseURL, model string, logger *zap.Logger) *LLMClient {
	if apiKey == "" {
		return nil
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("Content-Type", "application/json")

	return &LLMClient{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Complete sends the prompt and returns the raw assistant message content.
func (c *LLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	req := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
		"max_tokens":  2000,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send chat completion request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("chat completion API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse chat completion response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty completion content")
	}

	return content, nil
}
