//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/handler"
	infradb "github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/infrastructure/database"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/infrastructure/gemini"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/router"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/usecase"
	dbpkg "github.com/thecustomsoundarchitect/soulliftaudiov-7/pkg/database"
)

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionData struct {
	SessionID    string `json:"sessionId"`
	Stage        string `json:"stage"`
	StageName    string `json:"stageName"`
	FinalMessage string `json:"finalMessage"`
	Prompts      []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"aiGeneratedPrompts"`
	Ingredients []struct {
		ID      int64  `json:"id"`
		Content string `json:"content"`
	} `json:"ingredients"`
}

// TestFlowHTTP walks a full hug over HTTP: create a session, advance through
// the stages, weave a message, and exhaust the credit grant. Runs without an
// AI backend; composition serves fallback content.
func TestFlowHTTP(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 18080,
			Mode: "debug",
		},
		Database: config.DatabaseConfig{
			Path:         ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		Generation: config.GenerationConfig{}, // no API key, fallback mode
		Credits: config.CreditsConfig{
			StartingGrant:  3,
			WeaveCost:      1,
			StitchCost:     1,
			RegenerateCost: 1,
		},
		Session: config.SessionConfig{AutoCreateMissing: true},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	dbClient, err := dbpkg.NewClient(cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer dbClient.Close()

	generation := gemini.NewClient(cfg.Generation, logger)
	sessionRepo := infradb.NewSessionRepository(dbClient)
	creditRepo := infradb.NewCreditRepository(dbClient, cfg.Credits.StartingGrant)

	hugUC := usecase.NewHugUsecase(generation, creditRepo, cfg.Credits, logger)
	sessionUC := usecase.NewSessionUsecase(sessionRepo, cfg.Session, logger)
	flowUC := usecase.NewFlowUsecase(sessionUC, hugUC, logger)
	creditUC := usecase.NewCreditUsecase(creditRepo, logger)

	h := server.New(
		server.WithHostPorts(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h,
		handler.NewSessionHandler(sessionUC, flowUC, logger),
		handler.NewHugHandler(hugUC, logger),
		handler.NewCreditHandler(creditUC, logger),
		handler.NewHealthHandler(dbClient, logger),
	)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()
	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	userID := "integration-user"

	call := func(t *testing.T, method, path string, body any, wantStatus int) *envelope {
		t.Helper()

		var reader *bytes.Reader
		if body != nil {
			bodyBytes, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("failed to marshal body: %v", err)
			}
			reader = bytes.NewReader(bodyBytes)
		} else {
			reader = bytes.NewReader(nil)
		}

		req, err := http.NewRequest(method, baseURL+path, reader)
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != wantStatus {
			t.Fatalf("%s %s: status = %d, want %d", method, path, resp.StatusCode, wantStatus)
		}
		if resp.StatusCode == http.StatusNoContent {
			return nil
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return &env
	}

	decodeSession := func(t *testing.T, env *envelope) sessionData {
		t.Helper()
		var s sessionData
		if err := json.Unmarshal(env.Data, &s); err != nil {
			t.Fatalf("failed to decode session: %v", err)
		}
		return s
	}

	sessionID := "flow-test-session"

	t.Run("health", func(t *testing.T) {
		call(t, http.MethodGet, "/health/ready", nil, http.StatusOK)
	})

	t.Run("create session", func(t *testing.T) {
		env := call(t, http.MethodPost, "/api/v1/sessions", map[string]string{
			"sessionId":     sessionID,
			"recipientName": "Sam",
			"anchor":        "deeply appreciated",
			"occasion":      "birthday",
			"tone":          "warm",
		}, http.StatusCreated)

		s := decodeSession(t, env)
		if s.Stage != "intention" {
			t.Errorf("stage = %q, want intention", s.Stage)
		}
	})

	t.Run("advance to reflection seeds prompts", func(t *testing.T) {
		env := call(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/advance", nil, http.StatusOK)
		s := decodeSession(t, env)
		if s.Stage != "reflection" {
			t.Fatalf("stage = %q, want reflection", s.Stage)
		}
		if len(s.Prompts) != 9 {
			t.Errorf("prompt count = %d, want 9", len(s.Prompts))
		}
	})

	t.Run("advance blocked without ingredients", func(t *testing.T) {
		call(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/advance", nil, http.StatusBadRequest)
	})

	t.Run("add ingredient and advance", func(t *testing.T) {
		call(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/ingredients", map[string]string{
			"prompt":  "A moment they showed up for you",
			"content": "She drove me to the airport at 4am without being asked",
		}, http.StatusCreated)

		env := call(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/advance", nil, http.StatusOK)
		s := decodeSession(t, env)
		if s.Stage != "expression" {
			t.Errorf("stage = %q, want expression", s.Stage)
		}
	})

	t.Run("weave serves fallback and spends a credit", func(t *testing.T) {
		env := call(t, http.MethodPost, "/api/v1/ai/weave", map[string]any{
			"recipientName": "Sam",
			"anchor":        "deeply appreciated",
			"ingredients": []map[string]string{
				{"prompt": "A moment they showed up", "content": "She drove me to the airport at 4am"},
			},
		}, http.StatusOK)

		var msg struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}
		if msg.Message == "" {
			t.Error("weave returned an empty message")
		}

		env = call(t, http.MethodGet, "/api/v1/credits", nil, http.StatusOK)
		var credits struct {
			Credits int `json:"credits"`
		}
		if err := json.Unmarshal(env.Data, &credits); err != nil {
			t.Fatalf("failed to decode credits: %v", err)
		}
		if credits.Credits != 2 {
			t.Errorf("credits = %d, want 2", credits.Credits)
		}
	})

	t.Run("credit gate returns 402 when exhausted", func(t *testing.T) {
		weaveBody := map[string]any{
			"anchor": "deeply appreciated",
			"ingredients": []map[string]string{
				{"content": "She always remembers the little things"},
			},
		}
		call(t, http.MethodPost, "/api/v1/ai/weave", weaveBody, http.StatusOK)
		call(t, http.MethodPost, "/api/v1/ai/weave", weaveBody, http.StatusOK)
		call(t, http.MethodPost, "/api/v1/ai/weave", weaveBody, http.StatusPaymentRequired)
	})

	t.Run("prompts stay free after exhaustion", func(t *testing.T) {
		call(t, http.MethodPost, "/api/v1/ai/prompts", map[string]string{
			"anchor": "deeply appreciated",
		}, http.StatusOK)
	})

	t.Run("top up and weave again", func(t *testing.T) {
		call(t, http.MethodPost, "/api/v1/credits", map[string]int{"amount": 2}, http.StatusOK)
		call(t, http.MethodPost, "/api/v1/ai/weave", map[string]any{
			"anchor": "deeply appreciated",
			"ingredients": []map[string]string{
				{"content": "She always remembers the little things"},
			},
		}, http.StatusOK)
	})

	t.Run("back keeps everything", func(t *testing.T) {
		env := call(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/back", map[string]string{
			"stage": "reflection",
		}, http.StatusOK)
		s := decodeSession(t, env)
		if s.Stage != "reflection" {
			t.Errorf("stage = %q, want reflection", s.Stage)
		}
		if len(s.Ingredients) != 1 {
			t.Errorf("ingredient count = %d, want 1", len(s.Ingredients))
		}
	})

	t.Run("delete session", func(t *testing.T) {
		call(t, http.MethodDelete, "/api/v1/sessions/"+sessionID, nil, http.StatusNoContent)
	})
}
