package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
	pkgdb "github.com/thecustomsoundarchitect/soulliftaudiov-7/pkg/database"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := pkgdb.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestSession(id string) *entity.CreativeFlowSession {
	now := time.Now().UTC()
	return &entity.CreativeFlowSession{
		SessionID:     id,
		RecipientName: "Sarah",
		Anchor:        "deeply appreciated",
		Occasion:      "birthday",
		Tone:          "warm",
		Stage:         entity.StageIntention,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSessionRepositoryCreateAndGet(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestSession("s-1"))
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if created.SessionID != "s-1" {
		t.Errorf("session id = %q, want s-1", created.SessionID)
	}

	got, err := repo.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.RecipientName != "Sarah" || got.Anchor != "deeply appreciated" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Stage != entity.StageIntention {
		t.Errorf("stage = %v, want intention", got.Stage)
	}
	if got.Ingredients == nil || got.Descriptors == nil || got.Prompts == nil {
		t.Error("JSON collections should decode to empty slices, not nil")
	}
}

func TestSessionRepositoryDuplicateCreate(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestSession("dup")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(ctx, newTestSession("dup"))
	if !domain.IsAlreadyExists(err) {
		t.Errorf("duplicate create error = %v, want already-exists", err)
	}
}

func TestSessionRepositoryGetNotFound(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestSessionRepositoryUpdateMerge(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestSession("s-2")); err != nil {
		t.Fatalf("create: %v", err)
	}

	tone := "playful"
	updated, err := repo.Update(ctx, "s-2", domain.SessionUpdate{Tone: &tone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Tone != "playful" {
		t.Errorf("tone = %q, want playful", updated.Tone)
	}
	if updated.RecipientName != "Sarah" {
		t.Errorf("omitted field changed: recipient = %q", updated.RecipientName)
	}

	// A non-nil pointer to an empty value clears the field.
	empty := ""
	cleared, err := repo.Update(ctx, "s-2", domain.SessionUpdate{Occasion: &empty})
	if err != nil {
		t.Fatalf("clearing update: %v", err)
	}
	if cleared.Occasion != "" {
		t.Errorf("occasion = %q, want cleared", cleared.Occasion)
	}

	ingredients := []entity.Ingredient{{ID: 1, Prompt: "A small kindness", Content: "She drove two hours", Timestamp: "2026-01-02T10:00:00Z"}}
	withIngredients, err := repo.Update(ctx, "s-2", domain.SessionUpdate{Ingredients: &ingredients})
	if err != nil {
		t.Fatalf("ingredient update: %v", err)
	}
	if len(withIngredients.Ingredients) != 1 || withIngredients.Ingredients[0].Content != "She drove two hours" {
		t.Errorf("ingredients not persisted: %+v", withIngredients.Ingredients)
	}
}

func TestSessionRepositoryUpdateNotFound(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	tone := "warm"
	_, err := repo.Update(context.Background(), "missing", domain.SessionUpdate{Tone: &tone})
	if !domain.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestSession("s-3")); err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := repo.Delete(ctx, "s-3")
	if err != nil || !deleted {
		t.Fatalf("delete existing = (%v, %v), want (true, nil)", deleted, err)
	}

	deleted, err = repo.Delete(ctx, "s-3")
	if err != nil || deleted {
		t.Fatalf("delete missing = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestCreditRepositoryStartingGrant(t *testing.T) {
	repo := NewCreditRepository(newTestDB(t), 3)
	ctx := context.Background()

	account, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if account.Credits != 3 {
		t.Errorf("starting credits = %d, want 3", account.Credits)
	}

	// Second read must not re-grant.
	account, err = repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if account.Credits != 3 {
		t.Errorf("credits after re-read = %d, want 3", account.Credits)
	}
}

func TestCreditRepositoryDeduct(t *testing.T) {
	repo := NewCreditRepository(newTestDB(t), 2)
	ctx := context.Background()

	ok, err := repo.Deduct(ctx, "user-2", 1)
	if err != nil || !ok {
		t.Fatalf("first deduct = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = repo.Deduct(ctx, "user-2", 1)
	if err != nil || !ok {
		t.Fatalf("second deduct = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = repo.Deduct(ctx, "user-2", 1)
	if err != nil {
		t.Fatalf("exhausted deduct error: %v", err)
	}
	if ok {
		t.Error("deduct from empty balance should refuse")
	}

	account, err := repo.Get(ctx, "user-2")
	if err != nil {
		t.Fatalf("get after deducts: %v", err)
	}
	if account.Credits != 0 {
		t.Errorf("balance = %d, want 0", account.Credits)
	}
}

func TestCreditRepositoryAdd(t *testing.T) {
	repo := NewCreditRepository(newTestDB(t), 0)
	ctx := context.Background()

	account, err := repo.Add(ctx, "user-3", 5)
	if err != nil {
		t.Fatalf("add credits: %v", err)
	}
	if account.Credits != 5 {
		t.Errorf("balance = %d, want 5", account.Credits)
	}

	if _, err := repo.Add(ctx, "user-3", -1); !domain.IsInvalidInput(err) {
		t.Errorf("negative add error = %v, want invalid-input", err)
	}
}
