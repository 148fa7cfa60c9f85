package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

var (
	ErrMissingCredentials = errors.New("server missing AI credentials")
	ErrInvalidCredentials = errors.New("invalid AI credentials")
)

const systemPrompt = "You are a helpful study assistant. Provide clear, concise explanations to help students learn."

// LLMService talks to an OpenAI-compatible chat completion endpoint
// (Groq by default).
type LLMService struct {
	BaseURL string
	Token   string
	Model   string
	client  *http.Client
}

var (
	llmService *LLMService
	llmOnce    sync.Once
)

// GetLLMService returns the shared client, built from the environment
// on first use. Safe under concurrent first requests.
func GetLLMService() *LLMService {
	llmOnce.Do(func() {
		baseURL := os.Getenv("LLM_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.groq.com/openai/v1"
		}
		token := os.Getenv("LLM_TOKEN")
		if token == "" {
			token = os.Getenv("GROQ_API_KEY")
		}
		model := os.Getenv("LLM_MODEL")
		if model == "" {
			model = "llama-3.3-70b-versatile"
		}
		llmService = &LLMService{
			BaseURL: baseURL,
			Token:   token,
			Model:   model,
			client:  &http.Client{Timeout: 30 * time.Second},
		}
	})
	return llmService
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask forwards a free-text prompt upstream and relays the generated
// text. Stateless, no memory across calls.
func (s *LLMService) Ask(ctx context.Context, prompt string) (string, error) {
	if s.Token == "" {
		return "", ErrMissingCredentials
	}

	payload, err := json.Marshal(ChatRequest{
		Model: s.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("upstream returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
