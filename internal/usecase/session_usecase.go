package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// sessionUsecase coordinates session persistence with the ingredient and
// descriptor operations that mutate a session in place.
type sessionUsecase struct {
	sessionRepo domain.SessionRepository
	policy      config.SessionConfig
	logger      *slog.Logger
}

// NewSessionUsecase creates a new SessionUsecase instance.
func NewSessionUsecase(
	sessionRepo domain.SessionRepository,
	policy config.SessionConfig,
	logger *slog.Logger,
) domain.SessionUsecase {
	return &sessionUsecase{
		sessionRepo: sessionRepo,
		policy:      policy,
		logger:      logger,
	}
}

const maxSessionIDLen = 128

func (u *sessionUsecase) Create(ctx context.Context, req domain.CreateSessionRequest) (*entity.CreativeFlowSession, error) {
	if req.SessionID == "" {
		return nil, domain.NewInvalidInputError("session id is required")
	}
	if len(req.SessionID) > maxSessionIDLen {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("session id must be at most %d characters", maxSessionIDLen))
	}

	now := time.Now().UTC()
	session := &entity.CreativeFlowSession{
		SessionID:     req.SessionID,
		RecipientName: req.RecipientName,
		Anchor:        req.Anchor,
		Occasion:      req.Occasion,
		Tone:          req.Tone,
		Stage:         entity.StageIntention,
		FinalMessage:  req.FinalMessage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	u.logger.Info("session created", "session_id", created.SessionID)
	return created, nil
}

func (u *sessionUsecase) Get(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("session id is required")
	}

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err == nil {
		return session, nil
	}
	if !domain.IsNotFound(err) || !u.policy.AutoCreateMissing {
		return nil, err
	}

	// Placeholder policy: reads of unknown ids create a minimal session so
	// clients can resume a flow from just the id they hold.
	u.logger.Info("auto-creating placeholder session", "session_id", sessionID)
	created, err := u.Create(ctx, domain.CreateSessionRequest{SessionID: sessionID})
	if err != nil {
		// Lost the race against a concurrent creator; re-read.
		if domain.IsAlreadyExists(err) {
			return u.sessionRepo.Get(ctx, sessionID)
		}
		return nil, err
	}
	return created, nil
}

func (u *sessionUsecase) Update(ctx context.Context, sessionID string, update domain.SessionUpdate) (*entity.CreativeFlowSession, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("session id is required")
	}
	if update.Stage != nil && !update.Stage.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown stage: %s", *update.Stage))
	}
	return u.sessionRepo.Update(ctx, sessionID, update)
}

func (u *sessionUsecase) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.NewInvalidInputError("session id is required")
	}

	deleted, err := u.sessionRepo.Delete(ctx, sessionID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("session", sessionID)
	}

	u.logger.Info("session deleted", "session_id", sessionID)
	return nil
}

func (u *sessionUsecase) AddIngredient(ctx context.Context, sessionID, prompt, content string) (*entity.CreativeFlowSession, error) {
	if content == "" {
		return nil, domain.NewInvalidInputError("ingredient content is required")
	}

	session, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ingredients := append(session.Ingredients, entity.Ingredient{
		ID:        session.NextIngredientID(now),
		Prompt:    prompt,
		Content:   content,
		Timestamp: now.Format(time.RFC3339),
	})
	return u.sessionRepo.Update(ctx, sessionID, domain.SessionUpdate{Ingredients: &ingredients})
}

func (u *sessionUsecase) RemoveIngredient(ctx context.Context, sessionID string, ingredientID int64) (*entity.CreativeFlowSession, error) {
	session, err := u.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ingredients := make([]entity.Ingredient, 0, len(session.Ingredients))
	for _, ing := range session.Ingredients {
		if ing.ID != ingredientID {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == len(session.Ingredients) {
		// Unknown id is a no-op; removal is idempotent.
		return session, nil
	}
	return u.sessionRepo.Update(ctx, sessionID, domain.SessionUpdate{Ingredients: &ingredients})
}

func (u *sessionUsecase) UpdateDescriptors(ctx context.Context, sessionID string, descriptors []string) (*entity.CreativeFlowSession, error) {
	if _, err := u.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	if descriptors == nil {
		descriptors = []string{}
	}
	return u.sessionRepo.Update(ctx, sessionID, domain.SessionUpdate{Descriptors: &descriptors})
}
