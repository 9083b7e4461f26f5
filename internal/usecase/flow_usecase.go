package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// flowUsecase sequences a session through the creative flow stages.
// Forward transitions check the current stage's exit precondition; backward
// moves and resets are always allowed and never discard session content.
type flowUsecase struct {
	sessionUsecase domain.SessionUsecase
	hugUsecase     domain.HugUsecase
	logger         *slog.Logger
}

// NewFlowUsecase creates a new FlowUsecase instance.
func NewFlowUsecase(
	sessionUsecase domain.SessionUsecase,
	hugUsecase domain.HugUsecase,
	logger *slog.Logger,
) domain.FlowUsecase {
	return &flowUsecase{
		sessionUsecase: sessionUsecase,
		hugUsecase:     hugUsecase,
		logger:         logger,
	}
}

func (u *flowUsecase) Advance(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error) {
	session, err := u.sessionUsecase.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := session.Stage.Index()
	if idx < 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("session has unknown stage: %s", session.Stage))
	}
	if idx == len(entity.Stages)-1 {
		return nil, domain.NewInvalidInputError("session is already at the final stage")
	}

	if err := exitPrecondition(session); err != nil {
		return nil, err
	}

	next := entity.Stages[idx+1]
	update := domain.SessionUpdate{Stage: &next}

	// Leaving intention seeds the Gather stage with story prompts. Prompt
	// generation is free and always resolves, via fallback if need be.
	if session.Stage == entity.StageIntention {
		prompts, err := u.hugUsecase.GeneratePrompts(ctx, domain.GeneratePromptsRequest{
			RecipientName: session.RecipientName,
			Anchor:        session.Anchor,
			Occasion:      session.Occasion,
			Tone:          session.Tone,
		})
		if err != nil {
			return nil, err
		}
		update.Prompts = &prompts
	}

	updated, err := u.sessionUsecase.Update(ctx, sessionID, update)
	if err != nil {
		return nil, err
	}

	u.logger.Info("stage advanced",
		"session_id", sessionID,
		"from", string(session.Stage),
		"to", string(next),
	)
	return updated, nil
}

// exitPrecondition checks what the current stage requires before it can be
// left in the forward direction.
func exitPrecondition(session *entity.CreativeFlowSession) error {
	switch session.Stage {
	case entity.StageIntention:
		if strings.TrimSpace(session.Anchor) == "" {
			return domain.NewInvalidInputError("an emotional anchor is required before leaving the Define stage")
		}
	case entity.StageReflection:
		if len(session.Ingredients) == 0 {
			return domain.NewInvalidInputError("at least one ingredient is required before leaving the Gather stage")
		}
	case entity.StageExpression:
		if strings.TrimSpace(session.FinalMessage) == "" {
			return domain.NewInvalidInputError("a final message is required before leaving the Craft stage")
		}
	}
	return nil
}

func (u *flowUsecase) Back(ctx context.Context, sessionID string, to entity.Stage) (*entity.CreativeFlowSession, error) {
	if !to.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown stage: %s", to))
	}

	session, err := u.sessionUsecase.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if to.Index() > session.Stage.Index() {
		return nil, domain.NewInvalidInputError("cannot move forward with back; use advance")
	}
	if to == session.Stage {
		return session, nil
	}

	updated, err := u.sessionUsecase.Update(ctx, sessionID, domain.SessionUpdate{Stage: &to})
	if err != nil {
		return nil, err
	}

	u.logger.Info("stage moved back",
		"session_id", sessionID,
		"from", string(session.Stage),
		"to", string(to),
	)
	return updated, nil
}

func (u *flowUsecase) StartOver(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error) {
	if _, err := u.sessionUsecase.Get(ctx, sessionID); err != nil {
		return nil, err
	}

	start := entity.StageIntention
	updated, err := u.sessionUsecase.Update(ctx, sessionID, domain.SessionUpdate{Stage: &start})
	if err != nil {
		return nil, err
	}

	u.logger.Info("flow reset", "session_id", sessionID)
	return updated, nil
}
