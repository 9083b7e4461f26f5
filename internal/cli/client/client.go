package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/types"
)

// APIClient wraps Hertz Client for HTTP communication with the Soul Hug
// server. The caller identity travels in the X-User-ID header and keys the
// credit ledger server-side.
type APIClient struct {
	client *client.Client
	server string
	userID string
}

// NewAPIClient creates a new API client
func NewAPIClient(server, userID string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
		userID: userID,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// doJSON sends one JSON request and decodes the enveloped response. A nil
// body sends no payload. Non-2xx responses become errors carrying the
// server's message when one is present.
func doJSON[T any](ctx context.Context, c *APIClient, method, requestURL string, body any) (*types.APIResponse[T], error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.server + requestURL)
	req.Header.Set("X-User-ID", c.userID)

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(bodyBytes)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		// Try the envelope for a server-side message.
		var envelope types.APIResponse[struct{}]
		if err := sonic.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
			return nil, fmt.Errorf("%s (HTTP %d)", envelope.Message, statusCode)
		}
		return nil, fmt.Errorf("request failed with HTTP status: %d", statusCode)
	}

	var apiResp types.APIResponse[T]
	if statusCode != consts.StatusNoContent {
		if err := sonic.Unmarshal(resp.Body(), &apiResp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return &apiResp, nil
}

// CreateSession creates a new creative flow session.
func (c *APIClient) CreateSession(ctx context.Context, req *types.CreateSessionRequest) (*types.Session, error) {
	resp, err := doJSON[types.Session](ctx, c, consts.MethodPost, endpointSessions, req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetSession fetches a session by id.
func (c *APIClient) GetSession(ctx context.Context, sessionID string) (*types.Session, error) {
	resp, err := doJSON[types.Session](ctx, c, consts.MethodGet, fmt.Sprintf(endpointSessionByID, sessionID), nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateSession applies a partial update to a session.
func (c *APIClient) UpdateSession(ctx context.Context, sessionID string, req *types.UpdateSessionRequest) (*types.Session, error) {
	resp, err := doJSON[types.Session](ctx, c, consts.MethodPatch, fmt.Sprintf(endpointSessionByID, sessionID), req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteSession removes a session.
func (c *APIClient) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := doJSON[struct{}](ctx, c, consts.MethodDelete, fmt.Sprintf(endpointSessionByID, sessionID), nil)
	return err
}

// AddIngredient appends an ingredient to a session.
func (c *APIClient) AddIngredient(ctx context.Context, sessionID, prompt, content string) (*types.Session, error) {
	req := &types.AddIngredientRequest{Prompt: prompt, Content: content}
	resp, err := doJSON[types.Session](ctx, c, consts.MethodPost, fmt.Sprintf(endpointSessionIngredients, sessionID), req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// RemoveIngredient removes an ingredient by id.
func (c *APIClient) RemoveIngredient(ctx context.Context, sessionID string, ingredientID int64) (*types.Session, error) {
	resp, err := doJSON[types.Session](ctx, c, consts.MethodDelete, fmt.Sprintf(endpointSessionIngredient, sessionID, ingredientID), nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Advance moves a session to its next stage.
func (c *APIClient) Advance(ctx context.Context, sessionID string) (*types.Session, error) {
	resp, err := doJSON[types.Session](ctx, c, consts.MethodPost, fmt.Sprintf(endpointSessionAdvance, sessionID), nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Back moves a session to an earlier stage.
func (c *APIClient) Back(ctx context.Context, sessionID, stage string) (*types.Session, error) {
	req := &types.BackRequest{Stage: stage}
	resp, err := doJSON[types.Session](ctx, c, consts.MethodPost, fmt.Sprintf(endpointSessionBack, sessionID), req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Reset returns a session to the first stage.
func (c *APIClient) Reset(ctx context.Context, sessionID string) (*types.Session, error) {
	resp, err := doJSON[types.Session](ctx, c, consts.MethodPost, fmt.Sprintf(endpointSessionReset, sessionID), nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Weave composes a message out of ingredients. Costs credits.
func (c *APIClient) Weave(ctx context.Context, req *types.WeaveRequest) (string, error) {
	resp, err := doJSON[types.MessageData](ctx, c, consts.MethodPost, endpointWeave, req)
	if err != nil {
		return "", err
	}
	return resp.Data.Message, nil
}

// Stitch refines an existing message. Costs credits.
func (c *APIClient) Stitch(ctx context.Context, req *types.StitchRequest) (string, error) {
	resp, err := doJSON[types.MessageData](ctx, c, consts.MethodPost, endpointStitch, req)
	if err != nil {
		return "", err
	}
	return resp.Data.Message, nil
}

// Regenerate rewrites an existing message with fresh language. Costs credits.
func (c *APIClient) Regenerate(ctx context.Context, req *types.RegenerateRequest) (string, error) {
	resp, err := doJSON[types.MessageData](ctx, c, consts.MethodPost, endpointRegenerate, req)
	if err != nil {
		return "", err
	}
	return resp.Data.Message, nil
}

// GeneratePrompts asks for personalized story prompts. Free.
func (c *APIClient) GeneratePrompts(ctx context.Context, req *types.PromptsRequest) ([]types.StoryPrompt, error) {
	resp, err := doJSON[types.PromptsData](ctx, c, consts.MethodPost, endpointPrompts, req)
	if err != nil {
		return nil, err
	}
	return resp.Data.Prompts, nil
}

// CreditBalance returns the caller's credit balance.
func (c *APIClient) CreditBalance(ctx context.Context) (*types.CreditData, error) {
	resp, err := doJSON[types.CreditData](ctx, c, consts.MethodGet, endpointCredits, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// AddCredits tops up the caller's balance.
func (c *APIClient) AddCredits(ctx context.Context, amount int) (*types.CreditData, error) {
	req := &types.AddCreditsRequest{Amount: amount}
	resp, err := doJSON[types.CreditData](ctx, c, consts.MethodPost, endpointCredits, req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
