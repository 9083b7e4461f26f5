package dto

import (
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// CreateSessionRequest creates a new creative flow session. The client
// supplies the opaque session id.
type CreateSessionRequest struct {
	SessionID     string `json:"sessionId"`
	RecipientName string `json:"recipientName,omitempty"`
	Anchor        string `json:"anchor,omitempty"`
	Occasion      string `json:"occasion,omitempty"`
	Tone          string `json:"tone,omitempty"`
	FinalMessage  string `json:"finalMessage,omitempty"`
}

// UpdateSessionRequest is a partial session update. Absent fields keep their
// stored value; present fields are applied even when empty.
type UpdateSessionRequest struct {
	RecipientName *string               `json:"recipientName,omitempty"`
	Anchor        *string               `json:"anchor,omitempty"`
	Occasion      *string               `json:"occasion,omitempty"`
	Tone          *string               `json:"tone,omitempty"`
	Stage         *string               `json:"stage,omitempty"`
	Prompts       *[]entity.StoryPrompt `json:"aiGeneratedPrompts,omitempty"`
	Ingredients   *[]entity.Ingredient  `json:"ingredients,omitempty"`
	Descriptors   *[]string             `json:"descriptors,omitempty"`
	FinalMessage  *string               `json:"finalMessage,omitempty"`
}

// ToDomain converts the request into a domain update.
func (r *UpdateSessionRequest) ToDomain() domain.SessionUpdate {
	update := domain.SessionUpdate{
		RecipientName: r.RecipientName,
		Anchor:        r.Anchor,
		Occasion:      r.Occasion,
		Tone:          r.Tone,
		Prompts:       r.Prompts,
		Ingredients:   r.Ingredients,
		Descriptors:   r.Descriptors,
		FinalMessage:  r.FinalMessage,
	}
	if r.Stage != nil {
		stage := entity.Stage(*r.Stage)
		update.Stage = &stage
	}
	return update
}

// AddIngredientRequest appends one ingredient to a session.
type AddIngredientRequest struct {
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
}

// UpdateDescriptorsRequest replaces the descriptor set wholesale.
type UpdateDescriptorsRequest struct {
	Descriptors []string `json:"descriptors"`
}

// BackRequest names the earlier stage to return to.
type BackRequest struct {
	Stage string `json:"stage"`
}

// SessionResponse is the full session snapshot.
type SessionResponse struct {
	SessionID     string               `json:"sessionId"`
	RecipientName string               `json:"recipientName"`
	Anchor        string               `json:"anchor"`
	Occasion      string               `json:"occasion,omitempty"`
	Tone          string               `json:"tone,omitempty"`
	Stage         string               `json:"stage"`
	StageName     string               `json:"stageName"`
	Prompts       []entity.StoryPrompt `json:"aiGeneratedPrompts"`
	Ingredients   []entity.Ingredient  `json:"ingredients"`
	Descriptors   []string             `json:"descriptors"`
	FinalMessage  string               `json:"finalMessage,omitempty"`
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
}

// FromSession builds the response from the entity.
func FromSession(s *entity.CreativeFlowSession) SessionResponse {
	prompts := s.Prompts
	if prompts == nil {
		prompts = []entity.StoryPrompt{}
	}
	ingredients := s.Ingredients
	if ingredients == nil {
		ingredients = []entity.Ingredient{}
	}
	descriptors := s.Descriptors
	if descriptors == nil {
		descriptors = []string{}
	}
	return SessionResponse{
		SessionID:     s.SessionID,
		RecipientName: s.RecipientName,
		Anchor:        s.Anchor,
		Occasion:      s.Occasion,
		Tone:          s.Tone,
		Stage:         string(s.Stage),
		StageName:     s.Stage.DisplayName(),
		Prompts:       prompts,
		Ingredients:   ingredients,
		Descriptors:   descriptors,
		FinalMessage:  s.FinalMessage,
		CreatedAt:     s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
