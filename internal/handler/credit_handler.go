package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/handler/dto"
)

// CreditHandler serves the caller's credit balance.
type CreditHandler struct {
	credits domain.CreditUsecase
	logger  *slog.Logger
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(credits domain.CreditUsecase, logger *slog.Logger) *CreditHandler {
	return &CreditHandler{
		credits: credits,
		logger:  logger,
	}
}

// Balance handles GET /api/v1/credits.
func (h *CreditHandler) Balance(ctx context.Context, c *app.RequestContext) {
	userID := currentUserID(c)
	balance, err := h.credits.Balance(ctx, userID)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.CreditResponse{UserID: userID, Credits: balance})
}

// Add handles POST /api/v1/credits.
func (h *CreditHandler) Add(ctx context.Context, c *app.RequestContext) {
	var req dto.AddCreditsRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind add credits request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	userID := currentUserID(c)
	balance, err := h.credits.Add(ctx, userID, req.Amount)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.CreditResponse{UserID: userID, Credits: balance})
}
