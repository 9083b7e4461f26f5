package domain

import (
	"context"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
)

// CreditRepository is the per-identity balance store. Each mutation is an
// atomic per-key read-modify-write; Deduct must be conditional so the balance
// never goes negative.
type CreditRepository interface {
	// Get returns the account, lazily creating it with the starting grant on
	// first use.
	Get(ctx context.Context, userID string) (*entity.CreditAccount, error)

	// Deduct decrements the balance by amount if and only if the balance
	// covers it. Returns false, leaving the balance untouched, otherwise.
	Deduct(ctx context.Context, userID string, amount int) (bool, error)

	// Add unconditionally increments the balance.
	Add(ctx context.Context, userID string, amount int) (*entity.CreditAccount, error)
}

// CreditUsecase exposes the ledger to handlers.
type CreditUsecase interface {
	Balance(ctx context.Context, userID string) (int, error)
	Add(ctx context.Context, userID string, amount int) (int, error)
}
