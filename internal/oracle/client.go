/*
Package oracle
File: client.go
Description:
    HTTP client for the text-generation collaborator (a Gemini-style
    generative-language endpoint). The engine only sees the game.Oracle
    interface; everything about prompts, transport and credentials lives
    here. Failures are plain errors — the engine substitutes its fallback
    string, so nothing in this package retries or panics.
*/

package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Squallever/clicker/internal/game"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel   = "gemini-3-flash-preview"
)

// ErrNoAPIKey is returned when no credential is configured. The engine
// turns it into the fallback string like any other failure.
var ErrNoAPIKey = errors.New("oracle: no API key configured")

// prompts mirrors the original game's oracle personalities.
var prompts = map[game.OracleMode]string{
	game.OracleWisdom: "Give me a short, 1-sentence mystical and cute piece of wisdom from a Zen Master Cat. Keep it under 20 words.",
	game.OracleName:   "Suggest a grand but cute mystical name for a cat hero, including a title (e.g., 'Luna, The Midnight Prowler'). Just the name, no extra text.",
	game.OracleStory:  "Tell a very short (2 sentences) legend about an ancient cat deity who protected the first clover. Be poetic and cute.",
}

// Client talks to the generative-language API.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Model      string
	APIKey     string
}

// NewFromEnv builds a client from GEMINI_API_KEY (and optional
// ORACLE_BASE_URL / ORACLE_MODEL overrides). An empty key is allowed; the
// client then fails fast on every call and the engine falls back.
func NewFromEnv() *Client {
	c := &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
		Model:      defaultModel,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
	}
	if v := os.Getenv("ORACLE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("ORACLE_MODEL"); v != "" {
		c.Model = v
	}
	return c
}

// Request/response shapes for the generateContent endpoint. Only the
// fields we read are declared.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Tell implements game.Oracle.
func (c *Client) Tell(ctx context.Context, mode game.OracleMode) (string, error) {
	if c.APIKey == "" {
		return "", ErrNoAPIKey
	}

	prompt, ok := prompts[mode]
	if !ok {
		prompt = "Meow something mystical!"
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: 0.8, TopP: 0.95},
	})
	if err != nil {
		return "", fmt.Errorf("oracle: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("oracle: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oracle: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("oracle: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("oracle: empty response")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
