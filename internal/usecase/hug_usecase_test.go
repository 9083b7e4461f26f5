package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// testGenerationClient is a scriptable GenerationClient.
type testGenerationClient struct {
	response string
	err      error
	calls    int
	lastReq  domain.GenerationRequest
}

func (c *testGenerationClient) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	c.calls++
	c.lastReq = req
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

// testCreditRepository is an in-memory CreditRepository seeded lazily.
type testCreditRepository struct {
	grant    int
	balances map[string]int
}

func newTestCreditRepository(grant int) *testCreditRepository {
	return &testCreditRepository{grant: grant, balances: make(map[string]int)}
}

func (r *testCreditRepository) touch(userID string) {
	if _, ok := r.balances[userID]; !ok {
		r.balances[userID] = r.grant
	}
}

func (r *testCreditRepository) Get(ctx context.Context, userID string) (*entity.CreditAccount, error) {
	r.touch(userID)
	return &entity.CreditAccount{UserID: userID, Credits: r.balances[userID]}, nil
}

func (r *testCreditRepository) Deduct(ctx context.Context, userID string, amount int) (bool, error) {
	r.touch(userID)
	if r.balances[userID] < amount {
		return false, nil
	}
	r.balances[userID] -= amount
	return true, nil
}

func (r *testCreditRepository) Add(ctx context.Context, userID string, amount int) (*entity.CreditAccount, error) {
	r.touch(userID)
	r.balances[userID] += amount
	return &entity.CreditAccount{UserID: userID, Credits: r.balances[userID]}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func defaultCosts() config.CreditsConfig {
	return config.CreditsConfig{StartingGrant: 3, WeaveCost: 1, StitchCost: 1, RegenerateCost: 1}
}

func TestWeaveValidation(t *testing.T) {
	uc := NewHugUsecase(&testGenerationClient{}, newTestCreditRepository(3), defaultCosts(), testLogger())

	_, err := uc.Weave(context.Background(), domain.WeaveRequest{UserID: "u", Anchor: "grateful"})
	if !domain.IsInvalidInput(err) {
		t.Errorf("weave without ingredients: err = %v, want invalid-input", err)
	}

	_, err = uc.Weave(context.Background(), domain.WeaveRequest{
		Anchor:      "grateful",
		Ingredients: []domain.IngredientInput{{Content: "x"}},
	})
	if !domain.IsInvalidInput(err) {
		t.Errorf("weave without user: err = %v, want invalid-input", err)
	}
}

func TestWeaveBackendSuccess(t *testing.T) {
	gen := &testGenerationClient{response: "A woven message for Sam."}
	credits := newTestCreditRepository(3)
	uc := NewHugUsecase(gen, credits, defaultCosts(), testLogger())

	got, err := uc.Weave(context.Background(), domain.WeaveRequest{
		UserID:        "u1",
		RecipientName: "Sam",
		Anchor:        "grateful",
		MessageLength: "1min",
		Ingredients:   []domain.IngredientInput{{Prompt: "A time they helped", Content: "drove me to the airport at 4am"}},
	})
	if err != nil {
		t.Fatalf("weave: %v", err)
	}
	if got != "A woven message for Sam." {
		t.Errorf("weave returned %q, want backend text unchanged", got)
	}
	if gen.lastReq.Temperature != 0.7 {
		t.Errorf("weave temperature = %v, want 0.7", gen.lastReq.Temperature)
	}
	if !strings.Contains(gen.lastReq.UserPrompt, "drove me to the airport at 4am") {
		t.Error("user prompt missing ingredient content")
	}
	if !strings.Contains(gen.lastReq.SystemPrompt, "approximately 150 words") {
		t.Error("system prompt missing length guidance")
	}
	if credits.balances["u1"] != 2 {
		t.Errorf("balance after weave = %d, want 2", credits.balances["u1"])
	}
}

func TestWeaveFallbackOnBackendFailure(t *testing.T) {
	gen := &testGenerationClient{err: domain.ErrBackendUnavailable}
	credits := newTestCreditRepository(3)
	uc := NewHugUsecase(gen, credits, defaultCosts(), testLogger())

	got, err := uc.Weave(context.Background(), domain.WeaveRequest{
		UserID:        "u1",
		RecipientName: "Sam",
		Anchor:        "grateful",
		Ingredients:   []domain.IngredientInput{{Prompt: "A time they helped", Content: "drove me to the airport at 4am"}},
	})
	if err != nil {
		t.Fatalf("weave with unavailable backend should fall back, got error: %v", err)
	}
	if !strings.Contains(got, "Sam") {
		t.Error("fallback message missing recipient name")
	}
	if !strings.Contains(got, "drove me to the airport at 4am") {
		t.Error("fallback message missing ingredient content")
	}
	if !strings.Contains(got, "grateful") {
		t.Error("fallback message missing anchor")
	}
	// Deduct-before-call: the credit is spent even though the backend failed.
	if credits.balances["u1"] != 2 {
		t.Errorf("balance after fallback = %d, want 2 (no refund)", credits.balances["u1"])
	}
}

func TestWeaveInsufficientCredit(t *testing.T) {
	gen := &testGenerationClient{response: "text"}
	credits := newTestCreditRepository(0)
	uc := NewHugUsecase(gen, credits, defaultCosts(), testLogger())

	_, err := uc.Weave(context.Background(), domain.WeaveRequest{
		UserID:      "broke",
		Anchor:      "grateful",
		Ingredients: []domain.IngredientInput{{Content: "x"}},
	})
	if !domain.IsInsufficientCredit(err) {
		t.Errorf("err = %v, want insufficient-credit", err)
	}
	if gen.calls != 0 {
		t.Error("backend must not be called when the credit gate refuses")
	}
}

func TestStitchBackendSuccess(t *testing.T) {
	gen := &testGenerationClient{response: "Polished message."}
	uc := NewHugUsecase(gen, newTestCreditRepository(3), defaultCosts(), testLogger())

	got, err := uc.Stitch(context.Background(), domain.StitchRequest{
		UserID:         "u1",
		CurrentMessage: "Rough draft.",
		RecipientName:  "Sam",
		Anchor:         "grateful",
		Improvements:   "warmer opening",
	})
	if err != nil {
		t.Fatalf("stitch: %v", err)
	}
	if got != "Polished message." {
		t.Errorf("stitch = %q", got)
	}
	if gen.lastReq.Temperature != 0.5 {
		t.Errorf("stitch temperature = %v, want 0.5", gen.lastReq.Temperature)
	}
	if !strings.Contains(gen.lastReq.SystemPrompt, "Focus on: warmer opening") {
		t.Error("system prompt missing improvement focus")
	}
}

func TestStitchValidationAndFallback(t *testing.T) {
	gen := &testGenerationClient{err: errors.New("boom")}
	uc := NewHugUsecase(gen, newTestCreditRepository(3), defaultCosts(), testLogger())

	_, err := uc.Stitch(context.Background(), domain.StitchRequest{UserID: "u", CurrentMessage: "   "})
	if !domain.IsInvalidInput(err) {
		t.Errorf("empty message: err = %v, want invalid-input", err)
	}

	messy := "  Dear Sam,  \n\n\n   thank you.  \n"
	got, err := uc.Stitch(context.Background(), domain.StitchRequest{UserID: "u", CurrentMessage: messy, Anchor: "grateful"})
	if err != nil {
		t.Fatalf("stitch fallback: %v", err)
	}
	want := "Dear Sam,\n\nthank you."
	if got != want {
		t.Errorf("fallback = %q, want %q", got, want)
	}

	// Idempotent: stitching the fallback output again changes nothing.
	again, err := uc.Stitch(context.Background(), domain.StitchRequest{UserID: "u", CurrentMessage: got, Anchor: "grateful"})
	if err != nil {
		t.Fatalf("second stitch: %v", err)
	}
	if again != got {
		t.Errorf("fallback not idempotent: %q != %q", again, got)
	}
}

func TestRegenerate(t *testing.T) {
	gen := &testGenerationClient{response: "A fresh version."}
	uc := NewHugUsecase(gen, newTestCreditRepository(3), defaultCosts(), testLogger())

	got, err := uc.Regenerate(context.Background(), domain.RegenerateRequest{
		UserID:         "u1",
		RecipientName:  "Sam",
		Anchor:         "grateful",
		CurrentMessage: "Old version.",
		Ingredients:    []domain.IngredientInput{{Prompt: "p", Content: "c"}},
	})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if got != "A fresh version." {
		t.Errorf("regenerate = %q", got)
	}
	if gen.lastReq.Temperature != 0.8 {
		t.Errorf("regenerate temperature = %v, want 0.8", gen.lastReq.Temperature)
	}
	if gen.lastReq.MaxTokens != 200 {
		t.Errorf("regenerate max tokens = %d, want 200", gen.lastReq.MaxTokens)
	}

	gen.err = errors.New("down")
	fallback, err := uc.Regenerate(context.Background(), domain.RegenerateRequest{
		UserID:         "u1",
		CurrentMessage: "  Old   \n\n version. ",
	})
	if err != nil {
		t.Fatalf("regenerate fallback: %v", err)
	}
	if fallback != "Old\n\nversion." {
		t.Errorf("regenerate fallback = %q", fallback)
	}
}

func TestGeneratePromptsIsFree(t *testing.T) {
	gen := &testGenerationClient{err: errors.New("down")}
	credits := newTestCreditRepository(3)
	uc := NewHugUsecase(gen, credits, defaultCosts(), testLogger())

	prompts, err := uc.GeneratePrompts(context.Background(), domain.GeneratePromptsRequest{Anchor: "valued"})
	if err != nil {
		t.Fatalf("generate prompts: %v", err)
	}
	if len(prompts) != 9 {
		t.Fatalf("got %d prompts, want 9", len(prompts))
	}
	if len(credits.balances) != 0 {
		t.Error("prompt generation must not touch the credit ledger")
	}
}

func TestGeneratePromptsValidationRepair(t *testing.T) {
	// Position 0: valid. Position 1: banned term. Position 2: too short.
	// Positions 3..8: absent. All but position 0 must be repaired from the
	// positional fallback list.
	gen := &testGenerationClient{
		response: `{"prompts":[
			{"id":"1","text":"When Sam carried groceries upstairs daily","icon":""},
			{"id":"2","text":"The scent of her morning coffee","icon":""},
			{"id":"3","text":"Too short","icon":""}
		]}`,
	}
	uc := NewHugUsecase(gen, newTestCreditRepository(3), defaultCosts(), testLogger())

	prompts, err := uc.GeneratePrompts(context.Background(), domain.GeneratePromptsRequest{RecipientName: "Sam", Anchor: "valued"})
	if err != nil {
		t.Fatalf("generate prompts: %v", err)
	}
	if len(prompts) != 9 {
		t.Fatalf("got %d prompts, want 9", len(prompts))
	}
	if prompts[0].Text != "When Sam carried groceries upstairs daily" {
		t.Errorf("valid prompt replaced: %q", prompts[0].Text)
	}
	if prompts[1].Text != promptFallbacks[1] {
		t.Errorf("banned-term prompt not repaired positionally: %q", prompts[1].Text)
	}
	if prompts[2].Text != promptFallbacks[2] {
		t.Errorf("short prompt not repaired positionally: %q", prompts[2].Text)
	}
	for i := 3; i < 9; i++ {
		if prompts[i].Text != promptFallbacks[i] {
			t.Errorf("absent prompt %d not filled from fallbacks: %q", i, prompts[i].Text)
		}
	}
	for i, p := range prompts {
		if strings.Contains(strings.ToLower(p.Text), "scent") {
			t.Errorf("banned term survived in prompt %d: %q", i, p.Text)
		}
		if p.Icon != "" {
			t.Errorf("prompt %d icon = %q, want empty", i, p.Icon)
		}
	}
}

func TestLengthTarget(t *testing.T) {
	tests := []struct {
		token string
		words int
	}{
		{"30sec", 75},
		{"1min", 150},
		{"1.5min", 225},
		{"2min", 300},
		{"", 150},
	}
	for _, tt := range tests {
		if words, _ := lengthTarget(tt.token); words != tt.words {
			t.Errorf("lengthTarget(%q) = %d, want %d", tt.token, words, tt.words)
		}
	}
}

// Guards against slow fallback paths creeping into the free operation.
func TestGeneratePromptsFallbackIsImmediate(t *testing.T) {
	gen := &testGenerationClient{err: errors.New("down")}
	uc := NewHugUsecase(gen, newTestCreditRepository(3), defaultCosts(), testLogger())

	start := time.Now()
	if _, err := uc.GeneratePrompts(context.Background(), domain.GeneratePromptsRequest{Anchor: "valued"}); err != nil {
		t.Fatalf("generate prompts: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("fallback took %v", elapsed)
	}
}
