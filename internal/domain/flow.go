package domain

import (
	"context"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// FlowUsecase is the stage controller sequencing a session through the
// creative flow. Transitions persist the session before leaving the current
// stage; backward navigation is always allowed and destroys nothing.
type FlowUsecase interface {
	// Advance moves the session to the next stage after checking the current
	// stage's exit precondition. Leaving intention triggers story-prompt
	// generation.
	Advance(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error)

	// Back moves the session to the given earlier (or current) stage.
	Back(ctx context.Context, sessionID string, to entity.Stage) (*entity.CreativeFlowSession, error)

	// StartOver resets the session's stage to intention. The stored session is
	// kept; discarding it is the caller's decision.
	StartOver(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error)
}
