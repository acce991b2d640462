package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"effi-track-backend/internal/config"
	apperrors "effi-track-backend/internal/errors"
)

// ChatService proxies an ordered message history to an OpenAI-compatible
// chat completion endpoint and returns a single assistant reply. It is an
// opaque external capability: no history is stored server-side.
type ChatService struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewChatService creates a new chat proxy service
func NewChatService(cfg *config.Config) *ChatService {
	return &ChatService{
		apiURL: cfg.ChatAPIURL,
		apiKey: cfg.ChatAPIKey,
		model:  cfg.ChatModel,
		httpClient: &http.Client{
			Timeout: cfg.ChatTimeout(),
		},
	}
}

// ChatMessage is one turn of the conversation
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the message history upstream and returns the assistant reply
func (s *ChatService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if s.apiURL == "" || s.apiKey == "" {
		return "", apperrors.ErrChatNotConfigured
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to parse chat API response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
