package dto

import (
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// IngredientInput is one (prompt, content) pair supplied to weave and
// regenerate.
type IngredientInput struct {
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
}

func toDomainIngredients(in []IngredientInput) []domain.IngredientInput {
	out := make([]domain.IngredientInput, len(in))
	for i, ing := range in {
		out[i] = domain.IngredientInput{Prompt: ing.Prompt, Content: ing.Content}
	}
	return out
}

// WeaveRequest composes a message from scratch out of ingredients.
type WeaveRequest struct {
	RecipientName string            `json:"recipientName,omitempty"`
	Anchor        string            `json:"anchor"`
	Ingredients   []IngredientInput `json:"ingredients"`
	Occasion      string            `json:"occasion,omitempty"`
	Tone          string            `json:"tone,omitempty"`
	MessageLength string            `json:"messageLength,omitempty"`
}

// ToDomain converts the request, attaching the resolved caller identity.
func (r *WeaveRequest) ToDomain(userID string) domain.WeaveRequest {
	return domain.WeaveRequest{
		UserID:        userID,
		RecipientName: r.RecipientName,
		Anchor:        r.Anchor,
		Ingredients:   toDomainIngredients(r.Ingredients),
		Occasion:      r.Occasion,
		Tone:          r.Tone,
		MessageLength: r.MessageLength,
	}
}

// StitchRequest refines an existing message.
type StitchRequest struct {
	CurrentMessage string `json:"currentMessage"`
	RecipientName  string `json:"recipientName,omitempty"`
	Anchor         string `json:"anchor,omitempty"`
	Improvements   string `json:"improvements,omitempty"`
}

func (r *StitchRequest) ToDomain(userID string) domain.StitchRequest {
	return domain.StitchRequest{
		UserID:         userID,
		CurrentMessage: r.CurrentMessage,
		RecipientName:  r.RecipientName,
		Anchor:         r.Anchor,
		Improvements:   r.Improvements,
	}
}

// RegenerateRequest rewrites an existing message with fresh language.
type RegenerateRequest struct {
	RecipientName  string            `json:"recipientName,omitempty"`
	Anchor         string            `json:"anchor"`
	Ingredients    []IngredientInput `json:"ingredients,omitempty"`
	Occasion       string            `json:"occasion,omitempty"`
	Tone           string            `json:"tone,omitempty"`
	MessageLength  string            `json:"messageLength,omitempty"`
	CurrentMessage string            `json:"currentMessage"`
}

func (r *RegenerateRequest) ToDomain(userID string) domain.RegenerateRequest {
	return domain.RegenerateRequest{
		UserID:         userID,
		RecipientName:  r.RecipientName,
		Anchor:         r.Anchor,
		Ingredients:    toDomainIngredients(r.Ingredients),
		Occasion:       r.Occasion,
		Tone:           r.Tone,
		MessageLength:  r.MessageLength,
		CurrentMessage: r.CurrentMessage,
	}
}

// GeneratePromptsRequest asks for personalized story prompts. Free, no
// credit gate.
type GeneratePromptsRequest struct {
	RecipientName string `json:"recipientName,omitempty"`
	Anchor        string `json:"anchor"`
	Occasion      string `json:"occasion,omitempty"`
	Tone          string `json:"tone,omitempty"`
}

// ToDomain converts the request.
func (r *GeneratePromptsRequest) ToDomain() domain.GeneratePromptsRequest {
	return domain.GeneratePromptsRequest{
		RecipientName: r.RecipientName,
		Anchor:        r.Anchor,
		Occasion:      r.Occasion,
		Tone:          r.Tone,
	}
}

// MessageResponse carries the text produced by weave, stitch or regenerate.
type MessageResponse struct {
	Message string `json:"message"`
}

// PromptsResponse carries a generated story-prompt set.
type PromptsResponse struct {
	Prompts []entity.StoryPrompt `json:"prompts"`
}
