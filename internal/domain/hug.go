package domain

import (
	"context"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// GenerationRequest is one call to the external generation backend.
type GenerationRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int  // 0 means backend default
	JSONResponse bool // request a JSON object response
}

// GenerationClient is the external generation backend. Failures must be
// caught at the usecase boundary and converted to fallback content; they are
// never propagated raw to the flow controller.
type GenerationClient interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// IngredientInput is one (prompt, content) pair handed to weave.
type IngredientInput struct {
	Prompt  string
	Content string
}

// WeaveRequest composes a full message from scratch out of ingredients.
type WeaveRequest struct {
	UserID        string
	RecipientName string
	Anchor        string
	Ingredients   []IngredientInput
	Occasion      string
	Tone          string
	MessageLength string // 30sec | 1min | 1.5min | 2min
}

// StitchRequest refines an already-composed message.
type StitchRequest struct {
	UserID         string
	CurrentMessage string
	RecipientName  string
	Anchor         string
	Improvements   string
}

// RegenerateRequest rewrites an existing message with fresh language while
// keeping the same emotional core and ingredients.
type RegenerateRequest struct {
	UserID         string
	RecipientName  string
	Anchor         string
	Ingredients    []IngredientInput
	Occasion       string
	Tone           string
	MessageLength  string
	CurrentMessage string
}

// GeneratePromptsRequest asks for personalized story-starter prompts.
// Not credit-gated.
type GeneratePromptsRequest struct {
	RecipientName string
	Anchor        string
	Occasion      string
	Tone          string
}

// HugUsecase orchestrates the paid AI operations behind the credit gate.
// Weave, Stitch and Regenerate always resolve to a string unless validation
// or the credit gate fails first.
type HugUsecase interface {
	Weave(ctx context.Context, req WeaveRequest) (string, error)
	Stitch(ctx context.Context, req StitchRequest) (string, error)
	Regenerate(ctx context.Context, req RegenerateRequest) (string, error)
	GeneratePrompts(ctx context.Context, req GeneratePromptsRequest) ([]entity.StoryPrompt, error)
}
