package config

import "os"

// AIConfig holds the narrative collaborator configuration. The endpoint is an
// OpenAI-compatible chat-completions API.
type AIConfig struct {
	APIKey      string  `json:"-"` // Never serialize
	BaseURL     string  `json:"baseUrl"`
	Model       string  `json:"model"`
	TimeoutMS   int     `json:"timeoutMs"`
	Temperature float64 `json:"temperature"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		TimeoutMS:   30000, // narration is the slow call; give it room
		Temperature: 0.2,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the chat-completions URL
func (c *AIConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
