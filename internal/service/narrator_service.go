package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"enableboard/internal/config"
)

// ErrNarration marks a failure of the narrative collaborator. It is surfaced
// distinctly from data errors; the computed numbers remain inspectable.
var ErrNarration = errors.New("narrative generation failed")

// Narrator produces boardroom prose from prompts built over a numeric brief.
// It is an injected capability so the scoring pipeline tests without network
// access.
type Narrator interface {
	Narrate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ModelName() string
}

// OpenAINarrator calls an OpenAI-compatible chat-completions endpoint. Without
// an API key it degrades to a canned local answer; with a key, failures
// propagate — a paid text-generation call is never silently retried.
type OpenAINarrator struct {
	config *config.AIConfig
	client *http.Client
}

// NewOpenAINarrator creates a narrator from AI config
func NewOpenAINarrator(cfg *config.AIConfig) *OpenAINarrator {
	return &OpenAINarrator{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// ModelName reports the configured chat model.
func (s *OpenAINarrator) ModelName() string {
	return s.config.Model
}

// Narrate sends the prompts to the chat endpoint and returns the prose.
func (s *OpenAINarrator) Narrate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !s.config.IsEnabled() {
		return s.mockAnswer(), nil
	}

	reqBody := map[string]interface{}{
		"model": s.config.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature": s.config.Temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNarration, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNarration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNarration, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNarration, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrNarration, resp.StatusCode, truncate(body, 200))
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNarration, err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty response", ErrNarration)
	}
	return chatResp.Choices[0].Message.Content, nil
}

func (s *OpenAINarrator) mockAnswer() string {
	return "• Headline: narration is running without an API key.\n" +
		"• The numeric brief below this answer is computed and accurate; only the prose is canned.\n" +
		"• Set OPENAI_API_KEY to get real boardroom commentary."
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
