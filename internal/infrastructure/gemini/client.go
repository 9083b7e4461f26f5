// Package gemini implements the generation backend against the Google Gemini
// generateContent API over plain HTTP.
package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
)

// Client implements domain.GenerationClient. A Client with an empty API key is
// valid but every Generate call fails with a backend-unavailable error, which
// callers translate into their deterministic fallbacks.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Gemini client from config.
func NewClient(cfg config.GenerationConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "gemini"),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

const maxRetries = 3

// Generate sends the prompt pair and returns the model's text. 429 responses
// retry with exponential backoff; any other failure is backend-unavailable.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrBackendUnavailable
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	body := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: req.UserPrompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.SystemPrompt}}}
	}
	if req.JSONResponse {
		body.GenerationConfig.ResponseMimeType = "application/json"
	}

	payload, err := sonic.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	start := time.Now()

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(1<<uint(attempt-1)) * time.Second):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, ctx.Err())
			}
		}

		text, retryable, err := c.doRequest(ctx, url, payload)
		if err == nil {
			c.logger.Debug("generation completed",
				"model", c.model,
				"duration", time.Since(start),
				"response_len", len(text),
			)
			return text, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	c.logger.Warn("generation failed", "model", c.model, "error", lastErr)
	return "", fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, lastErr)
}

func (c *Client) doRequest(ctx context.Context, url string, payload []byte) (text string, retryable bool, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", true, fmt.Errorf("rate limit exceeded (429)")
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var geminiResp generateResponse
	if err := sonic.Unmarshal(respBody, &geminiResp); err != nil {
		return "", false, fmt.Errorf("parse response: %w", err)
	}
	if geminiResp.Error != nil {
		return "", false, fmt.Errorf("api error: %s", geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("no completion returned")
	}

	var b strings.Builder
	for _, p := range geminiResp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String()), false, nil
}
