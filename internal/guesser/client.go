// Package guesser is the chat-completion transport to the guessing agent. It
// speaks the OpenAI-compatible chat API with a strict JSON-schema response
// format so the model's output decodes straight into solver.GuessResponse.
package guesser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
	"github.com/joe-boudreau/llm-quordle-solver/internal/solver"
)

// Config holds the chat transport settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4.1-nano",
		Timeout: 60 * time.Second,
	}
}

// Client implements solver.GuessAgent over the OpenAI-compatible chat API.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	httpClient  *http.Client
	log         *zap.Logger
	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient creates a chat client.
func NewClient(cfg Config, log *zap.Logger) *Client {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4.1-nano"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// RequestGuess sends the full conversation and decodes the structured guess.
// One request per call: the bounded retry policy lives in the solver, not
// here, so transport failures surface immediately.
func (c *Client) RequestGuess(ctx context.Context, messages []ledger.Message) (solver.GuessResponse, error) {
	if c.apiKey == "" {
		return solver.GuessResponse{}, fmt.Errorf("guesser: API key not configured")
	}

	// Auto-apply timeout if context has no deadline
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	// Rate limiting: at least 100ms between requests
	c.mu.Lock()
	if elapsed := time.Since(c.lastRequest); elapsed < 100*time.Millisecond {
		time.Sleep(100*time.Millisecond - elapsed)
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()

	chatMsgs := make([]chatMessage, len(messages))
	for i, m := range messages {
		chatMsgs[i] = chatMessage{Role: string(m.Role), Content: m.Content}
	}

	reqBody := chatRequest{
		Model:          c.model,
		Messages:       chatMsgs,
		ResponseFormat: guessResponseFormat(),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return solver.GuessResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return solver.GuessResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return solver.GuessResponse{}, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return solver.GuessResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return solver.GuessResponse{}, fmt.Errorf("chat API status %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return solver.GuessResponse{}, fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return solver.GuessResponse{}, fmt.Errorf("chat API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return solver.GuessResponse{}, fmt.Errorf("no completion returned")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	var guess solver.GuessResponse
	if err := json.Unmarshal([]byte(content), &guess); err != nil {
		return solver.GuessResponse{}, fmt.Errorf("decode guess response: %w", err)
	}

	c.log.Debug("guess completion",
		zap.String("model", c.model),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("final_answer", guess.FinalAnswer))
	return guess, nil
}
