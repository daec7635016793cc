package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enableboard/internal/config"
)

func narratorConfig(apiKey, baseURL string) *config.AIConfig {
	return &config.AIConfig{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Model:       "gpt-4o-mini",
		TimeoutMS:   2000,
		Temperature: 0.2,
	}
}

func TestNarrateWithoutKeyReturnsCannedAnswer(t *testing.T) {
	n := NewOpenAINarrator(narratorConfig("", "https://unreachable.invalid/v1"))
	answer, err := n.Narrate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if !strings.Contains(answer, "OPENAI_API_KEY") {
		t.Errorf("canned answer should point at the missing key, got %q", answer)
	}
}

func TestNarrateCallsChatCompletions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s, want /v1/chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
			t.Errorf("unexpected messages: %+v", body.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "• Headline: looking sharp."}},
			},
		})
	}))
	defer srv.Close()

	n := NewOpenAINarrator(narratorConfig("test-key", srv.URL+"/v1"))
	answer, err := n.Narrate(context.Background(), "be the VP", "here are numbers")
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if answer != "• Headline: looking sharp." {
		t.Errorf("answer = %q", answer)
	}
}

func TestNarrateFailuresWrapErrNarration(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
			},
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			n := NewOpenAINarrator(narratorConfig("test-key", srv.URL+"/v1"))
			_, err := n.Narrate(context.Background(), "system", "user")
			if !errors.Is(err, ErrNarration) {
				t.Errorf("err = %v, want ErrNarration", err)
			}
		})
	}
}
