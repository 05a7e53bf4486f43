package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Fallback messages returned when the generation backend misbehaves. Chat is
// best-effort, so users see one of these sentences instead of an error.
const (
	fallbackNoText      = "Sorry, I couldn't generate a response."
	fallbackBadStatus   = "Sorry, I'm having trouble connecting to the AI service."
	fallbackUnavailable = "Sorry, I'm currently unavailable. Please try again later."
)

// Result is the outcome of a generation call. Fallback is true when Text is a
// canned substitute rather than model output.
type Result struct {
	Text     string
	Fallback bool
}

// Client talks to a local Ollama instance over HTTP.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// New creates a Client for the Ollama server at baseURL using the given
// model. Every request is bounded by timeout.
func New(baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

// Generate sends a single prompt to Ollama and returns the generated text.
// Remote failures never escape as errors: a non-200 status, an unreadable
// body, or a transport problem each map to a fixed fallback sentence. Only
// the returned Result tells the caller whether real model output came back.
func (c *Client) Generate(ctx context.Context, message, contextText string) Result {
	prompt := fmt.Sprintf("%s\n\nUser: %s\nAssistant:", contextText, message)

	body, _ := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: 0.7,
			TopP:        0.9,
			MaxTokens:   500,
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("Failed to build Ollama request")
		return Result{Text: fallbackUnavailable, Fallback: true}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("base_url", c.baseURL).Msg("Ollama request failed")
		return Result{Text: fallbackUnavailable, Fallback: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("Ollama returned non-200 status")
		return Result{Text: fallbackBadStatus, Fallback: true}
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Warn().Err(err).Msg("Failed to decode Ollama response")
		return Result{Text: fallbackNoText, Fallback: true}
	}
	if result.Response == "" {
		return Result{Text: fallbackNoText, Fallback: true}
	}
	return Result{Text: result.Response}
}

// HealthCheck reports whether the Ollama server answers its tags endpoint.
// Any error of any kind resolves to false.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
