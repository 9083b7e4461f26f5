package domain

import (
	"context"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// SessionUpdate is a partial update of a CreativeFlowSession. Nil fields are
// "not provided" and keep their stored value; non-nil fields are applied even
// when they point at an empty value, so clearing a field is distinguishable
// from omitting it.
type SessionUpdate struct {
	RecipientName *string
	Anchor        *string
	Occasion      *string
	Tone          *string
	Stage         *entity.Stage
	Prompts       *[]entity.StoryPrompt
	Ingredients   *[]entity.Ingredient
	Descriptors   *[]string
	FinalMessage  *string
}

// SessionRepository is the persistence interface for creative flow sessions.
// Mutations are atomic per sessionId; there is no cross-session transaction.
type SessionRepository interface {
	// Create stores a new session. The sessionId must be unique.
	Create(ctx context.Context, session *entity.CreativeFlowSession) (*entity.CreativeFlowSession, error)

	// Get returns the session or a not-found error.
	Get(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error)

	// Update merges the partial update into the stored session and refreshes
	// updatedAt. Returns a not-found error for unknown ids.
	Update(ctx context.Context, sessionID string, update SessionUpdate) (*entity.CreativeFlowSession, error)

	// Delete removes the session. Returns false when the id was unknown.
	Delete(ctx context.Context, sessionID string) (bool, error)
}

// CreateSessionRequest carries the fields accepted at session creation.
// The client supplies the opaque sessionId.
type CreateSessionRequest struct {
	SessionID     string
	RecipientName string
	Anchor        string
	Occasion      string
	Tone          string
	FinalMessage  string
}

// SessionUsecase is the application service over sessions, ingredients and
// descriptors.
type SessionUsecase interface {
	// Create validates and stores a new session at the intention stage.
	Create(ctx context.Context, req CreateSessionRequest) (*entity.CreativeFlowSession, error)

	// Get returns the session. When the store's placeholder policy is enabled
	// an unknown id yields a minimal auto-created session instead of an error.
	Get(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error)

	// Update applies a partial update (merge semantics).
	Update(ctx context.Context, sessionID string, update SessionUpdate) (*entity.CreativeFlowSession, error)

	// Delete removes the session (housekeeping; the flow never requires it).
	Delete(ctx context.Context, sessionID string) error

	// AddIngredient appends a new ingredient with a fresh id and timestamp.
	AddIngredient(ctx context.Context, sessionID, prompt, content string) (*entity.CreativeFlowSession, error)

	// RemoveIngredient removes the ingredient by id; unknown ids are a no-op.
	RemoveIngredient(ctx context.Context, sessionID string, ingredientID int64) (*entity.CreativeFlowSession, error)

	// UpdateDescriptors replaces the descriptor set wholesale.
	UpdateDescriptors(ctx context.Context, sessionID string, descriptors []string) (*entity.CreativeFlowSession, error)
}
