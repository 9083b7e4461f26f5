package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// sessionRepository is the SQLite implementation of SessionRepository.
// Prompts, ingredients and descriptors are stored as JSON columns; the
// session row is the unit of atomicity.
type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository backed by db.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `session_id, recipient_name, anchor, occasion, tone, stage,
	prompts, ingredients, descriptors, final_message, created_at, updated_at`

func (r *sessionRepository) Create(ctx context.Context, session *entity.CreativeFlowSession) (*entity.CreativeFlowSession, error) {
	prompts, ingredients, descriptors, err := marshalSessionJSON(session)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.SessionID, session.RecipientName, session.Anchor, session.Occasion,
		session.Tone, string(session.Stage), prompts, ingredients, descriptors,
		session.FinalMessage, session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("session", session.SessionID)
		}
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

func (r *sessionRepository) Get(ctx context.Context, sessionID string) (*entity.CreativeFlowSession, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`, sessionID)
	return scanSession(row, sessionID)
}

func (r *sessionRepository) Update(ctx context.Context, sessionID string, update domain.SessionUpdate) (*entity.CreativeFlowSession, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`, sessionID)
	session, err := scanSession(row, sessionID)
	if err != nil {
		return nil, err
	}

	applyUpdate(session, update)
	session.UpdatedAt = time.Now().UTC()

	prompts, ingredients, descriptors, err := marshalSessionJSON(session)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE sessions SET recipient_name = ?, anchor = ?, occasion = ?, tone = ?,
			stage = ?, prompts = ?, ingredients = ?, descriptors = ?,
			final_message = ?, updated_at = ?
		WHERE session_id = ?`,
		session.RecipientName, session.Anchor, session.Occasion, session.Tone,
		string(session.Stage), prompts, ingredients, descriptors,
		session.FinalMessage, session.UpdatedAt, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// applyUpdate merges non-nil fields of the update into the session.
func applyUpdate(session *entity.CreativeFlowSession, update domain.SessionUpdate) {
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
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner, sessionID string) (*entity.CreativeFlowSession, error) {
	var (
		session                          entity.CreativeFlowSession
		stage                            string
		prompts, ingredients, descriptor string
	)
	err := row.Scan(
		&session.SessionID, &session.RecipientName, &session.Anchor, &session.Occasion,
		&session.Tone, &stage, &prompts, &ingredients, &descriptor,
		&session.FinalMessage, &session.CreatedAt, &session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("session", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	session.Stage = entity.Stage(stage)
	if err := sonic.UnmarshalString(prompts, &session.Prompts); err != nil {
		return nil, fmt.Errorf("decode prompts: %w", err)
	}
	if err := sonic.UnmarshalString(ingredients, &session.Ingredients); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}
	if err := sonic.UnmarshalString(descriptor, &session.Descriptors); err != nil {
		return nil, fmt.Errorf("decode descriptors: %w", err)
	}
	return &session, nil
}

func marshalSessionJSON(session *entity.CreativeFlowSession) (prompts, ingredients, descriptors string, err error) {
	if session.Prompts == nil {
		session.Prompts = []entity.StoryPrompt{}
	}
	if session.Ingredients == nil {
		session.Ingredients = []entity.Ingredient{}
	}
	if session.Descriptors == nil {
		session.Descriptors = []string{}
	}

	if prompts, err = sonic.MarshalString(session.Prompts); err != nil {
		return "", "", "", fmt.Errorf("encode prompts: %w", err)
	}
	if ingredients, err = sonic.MarshalString(session.Ingredients); err != nil {
		return "", "", "", fmt.Errorf("encode ingredients: %w", err)
	}
	if descriptors, err = sonic.MarshalString(session.Descriptors); err != nil {
		return "", "", "", fmt.Errorf("encode descriptors: %w", err)
	}
	return prompts, ingredients, descriptors, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint error.
// modernc sqlite does not export a typed error for this, so match the text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
