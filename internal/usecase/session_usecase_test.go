package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// testSessionRepository is an in-memory SessionRepository with the same
// merge-update semantics as the SQLite implementation.
type testSessionRepository struct {
	sessions map[string]*entity.CreativeFlowSession
}

func newTestSessionRepository() *testSessionRepository {
	return &testSessionRepository{sessions: make(map[string]*entity.CreativeFlowSession)}
}

func (r *testSessionRepository) Create(ctx context.Context, session *entity.CreativeFlowSession) (*entity.CreativeFlowSession, error) {
	if _, ok := r.sessions[session.SessionID]; ok {
		return nil, domain.NewAlreadyExistsError("session", session.SessionID)
	}
	copied := *session
	r.sessions[session.SessionID] = &copied
	return &copied, nil
}

func (r *testSessionRepository) Get(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.NewNotFoundError("session", sessionID)
	}
	copied := *session
	return &copied, nil
}

func (r *testSessionRepository) Update(ctx context.Context, sessionID string, update domain.SessionUpdate) (*entity.CreativeFlowSession, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.NewNotFoundError("session", sessionID)
	}
	if update.RecipientName != nil {
		session.RecipientName = *update.RecipientName
	}
	if update.Anchor != nil {
		session.Anchor = *update.Anchor
	}
	if update.Occasion != nil {
		session.Occasion = *update.Occasion
	}
	if update.Tone != nil {
		session.Tone = *update.Tone
	}
	if update.Stage != nil {
		session.Stage = *update.Stage
	}
	if update.Prompts != nil {
		session.Prompts = *update.Prompts
	}
	if update.Ingredients != nil {
		session.Ingredients = *update.Ingredients
	}
	if update.Descriptors != nil {
		session.Descriptors = *update.Descriptors
	}
	if update.FinalMessage != nil {
		session.FinalMessage = *update.FinalMessage
	}
	session.UpdatedAt = time.Now().UTC()
	copied := *session
	return &copied, nil
}

func (r *testSessionRepository) Delete(ctx context.Context, sessionID string) (bool, error) {
	if _, ok := r.sessions[sessionID]; !ok {
		return false, nil
	}
	delete(r.sessions, sessionID)
	return true, nil
}

func newSessionUC(repo domain.SessionRepository, autoCreate bool) domain.SessionUsecase {
	return NewSessionUsecase(repo, config.SessionConfig{AutoCreateMissing: autoCreate}, testLogger())
}

func TestSessionCreateStartsAtIntention(t *testing.T) {
	uc := newSessionUC(newTestSessionRepository(), false)

	session, err := uc.Create(context.Background(), domain.CreateSessionRequest{
		SessionID:     "s-1",
		RecipientName: "Sam",
		Anchor:        "grateful",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if session.Stage != entity.StageIntention {
		t.Errorf("stage = %v, want intention", session.Stage)
	}

	if _, err := uc.Create(context.Background(), domain.CreateSessionRequest{}); !domain.IsInvalidInput(err) {
		t.Errorf("empty id: err = %v, want invalid-input", err)
	}
}

func TestSessionGetAutoCreatePolicy(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		uc := newSessionUC(newTestSessionRepository(), false)
		if _, err := uc.Get(context.Background(), "missing"); !domain.IsNotFound(err) {
			t.Errorf("err = %v, want not-found", err)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		uc := newSessionUC(newTestSessionRepository(), true)
		session, err := uc.Get(context.Background(), "missing")
		if err != nil {
			t.Fatalf("auto-create get: %v", err)
		}
		if session.SessionID != "missing" || session.Stage != entity.StageIntention {
			t.Errorf("placeholder session = %+v", session)
		}
	})
}

func TestSessionUpdateRejectsUnknownStage(t *testing.T) {
	uc := newSessionUC(newTestSessionRepository(), false)
	bogus := entity.Stage("limbo")
	_, err := uc.Update(context.Background(), "s", domain.SessionUpdate{Stage: &bogus})
	if !domain.IsInvalidInput(err) {
		t.Errorf("err = %v, want invalid-input", err)
	}
}

func TestIngredientLifecycle(t *testing.T) {
	repo := newTestSessionRepository()
	uc := newSessionUC(repo, false)
	ctx := context.Background()

	if _, err := uc.Create(ctx, domain.CreateSessionRequest{SessionID: "s-1", Anchor: "grateful"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	session, err := uc.AddIngredient(ctx, "s-1", "A time they helped", "drove me to the airport")
	if err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	if len(session.Ingredients) != 1 {
		t.Fatalf("ingredients = %d, want 1", len(session.Ingredients))
	}
	first := session.Ingredients[0]
	if first.ID == 0 || first.Timestamp == "" {
		t.Errorf("ingredient missing id or timestamp: %+v", first)
	}

	session, err = uc.AddIngredient(ctx, "s-1", "Another", "always listens")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(session.Ingredients) != 2 {
		t.Fatalf("ingredients = %d, want 2", len(session.Ingredients))
	}
	if session.Ingredients[1].ID <= first.ID {
		t.Errorf("ids not monotonic: %d then %d", first.ID, session.Ingredients[1].ID)
	}

	session, err = uc.RemoveIngredient(ctx, "s-1", first.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(session.Ingredients) != 1 || session.Ingredients[0].Content != "always listens" {
		t.Errorf("wrong ingredient removed: %+v", session.Ingredients)
	}

	// Removing an unknown id is a no-op.
	session, err = uc.RemoveIngredient(ctx, "s-1", 999999)
	if err != nil {
		t.Fatalf("no-op remove: %v", err)
	}
	if len(session.Ingredients) != 1 {
		t.Errorf("no-op remove changed ingredients: %+v", session.Ingredients)
	}

	if _, err := uc.AddIngredient(ctx, "s-1", "p", ""); !domain.IsInvalidInput(err) {
		t.Errorf("empty content: err = %v, want invalid-input", err)
	}
}

func TestUpdateDescriptorsReplacesWholesale(t *testing.T) {
	uc := newSessionUC(newTestSessionRepository(), false)
	ctx := context.Background()

	if _, err := uc.Create(ctx, domain.CreateSessionRequest{SessionID: "s-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	session, err := uc.UpdateDescriptors(ctx, "s-1", []string{"kind", "patient"})
	if err != nil {
		t.Fatalf("set descriptors: %v", err)
	}
	if len(session.Descriptors) != 2 {
		t.Fatalf("descriptors = %v", session.Descriptors)
	}

	session, err = uc.UpdateDescriptors(ctx, "s-1", []string{"brave"})
	if err != nil {
		t.Fatalf("replace descriptors: %v", err)
	}
	if len(session.Descriptors) != 1 || session.Descriptors[0] != "brave" {
		t.Errorf("descriptors = %v, want [brave]", session.Descriptors)
	}

	session, err = uc.UpdateDescriptors(ctx, "s-1", nil)
	if err != nil {
		t.Fatalf("clear descriptors: %v", err)
	}
	if len(session.Descriptors) != 0 {
		t.Errorf("descriptors = %v, want empty", session.Descriptors)
	}
}

func TestSessionDelete(t *testing.T) {
	uc := newSessionUC(newTestSessionRepository(), false)
	ctx := context.Background()

	if _, err := uc.Create(ctx, domain.CreateSessionRequest{SessionID: "s-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(ctx, "s-1"); !domain.IsNotFound(err) {
		t.Errorf("second delete: err = %v, want not-found", err)
	}
}
