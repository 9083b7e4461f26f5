package usecase

import (
	"context"
	"log/slog"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
)

// creditUsecase exposes the ledger. Deduction happens inside the hug
// usecase; this one serves balance reads and top-ups.
type creditUsecase struct {
	creditRepo domain.CreditRepository
	logger     *slog.Logger
}

// NewCreditUsecase creates a new CreditUsecase instance.
func NewCreditUsecase(creditRepo domain.CreditRepository, logger *slog.Logger) domain.CreditUsecase {
	return &creditUsecase{
		creditRepo: creditRepo,
		logger:     logger,
	}
}

func (u *creditUsecase) Balance(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, domain.NewInvalidInputError("user id is required")
	}

	account, err := u.creditRepo.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return account.Credits, nil
}

func (u *creditUsecase) Add(ctx context.Context, userID string, amount int) (int, error) {
	if userID == "" {
		return 0, domain.NewInvalidInputError("user id is required")
	}
	if amount <= 0 {
		return 0, domain.NewInvalidInputError("amount must be positive")
	}

	account, err := u.creditRepo.Add(ctx, userID, amount)
	if err != nil {
		return 0, err
	}

	u.logger.Info("credits added", "user_id", userID, "amount", amount, "balance", account.Credits)
	return account.Credits, nil
}
