package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// creditRepository is the SQLite implementation of CreditRepository. Accounts
// are created lazily with the configured starting grant; Deduct is a single
// conditional UPDATE so the balance can never go negative, even under
// concurrent requests for the same identity.
type creditRepository struct {
	db            *sql.DB
	startingGrant int
}

// NewCreditRepository creates a CreditRepository that seeds new accounts with
// startingGrant credits.
func NewCreditRepository(db *sql.DB, startingGrant int) domain.CreditRepository {
	return &creditRepository{db: db, startingGrant: startingGrant}
}

func (r *creditRepository) Get(ctx context.Context, userID string) (*entity.CreditAccount, error) {
	account, err := r.fetch(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	// Another request may create the row between fetch and insert; the
	// ON CONFLICT clause makes first-touch idempotent.
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO credit_accounts (user_id, credits, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO NOTHING`,
		userID, r.startingGrant, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("create credit account: %w", err)
	}
	return r.fetch(ctx, userID)
}

func (r *creditRepository) Deduct(ctx context.Context, userID string, amount int) (bool, error) {
	if amount < 0 {
		return false, domain.NewInvalidInputError("deduct amount must not be negative")
	}

	// Ensure the account exists so first-touch users get the starting grant
	// before the conditional deduct runs.
	if _, err := r.Get(ctx, userID); err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE credit_accounts
		SET credits = credits - ?, updated_at = ?
		WHERE user_id = ? AND credits >= ?`,
		amount, time.Now().UTC(), userID, amount,
	)
	if err != nil {
		return false, fmt.Errorf("deduct credits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *creditRepository) Add(ctx context.Context, userID string, amount int) (*entity.CreditAccount, error) {
	if amount < 0 {
		return nil, domain.NewInvalidInputError("add amount must not be negative")
	}

	if _, err := r.Get(ctx, userID); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE credit_accounts
		SET credits = credits + ?, updated_at = ?
		WHERE user_id = ?`,
		amount, time.Now().UTC(), userID,
	)
	if err != nil {
		return nil, fmt.Errorf("add credits: %w", err)
	}
	return r.fetch(ctx, userID)
}

func (r *creditRepository) fetch(ctx context.Context, userID string) (*entity.CreditAccount, error) {
	var account entity.CreditAccount
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, credits, created_at, updated_at
		FROM credit_accounts WHERE user_id = ?`, userID,
	).Scan(&account.UserID, &account.Credits, &account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("credit account", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("scan credit account: %w", err)
	}
	return &account, nil
}
