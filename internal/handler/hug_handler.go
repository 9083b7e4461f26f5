package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/handler/dto"
)

// HugHandler serves the AI composition operations. Weave, stitch and
// regenerate are credit-gated; prompt generation is free.
type HugHandler struct {
	hugs   domain.HugUsecase
	logger *slog.Logger
}

// NewHugHandler creates a new HugHandler.
func NewHugHandler(hugs domain.HugUsecase, logger *slog.Logger) *HugHandler {
	return &HugHandler{
		hugs:   hugs,
		logger: logger,
	}
}

// currentUserID returns the caller identity resolved by the identity
// middleware.
func currentUserID(c *app.RequestContext) string {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// Weave handles POST /api/v1/ai/weave.
func (h *HugHandler) Weave(ctx context.Context, c *app.RequestContext) {
	var req dto.WeaveRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind weave request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	message, err := h.hugs.Weave(ctx, req.ToDomain(currentUserID(c)))
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.MessageResponse{Message: message})
}

// Stitch handles POST /api/v1/ai/stitch.
func (h *HugHandler) Stitch(ctx context.Context, c *app.RequestContext) {
	var req dto.StitchRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind stitch request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	message, err := h.hugs.Stitch(ctx, req.ToDomain(currentUserID(c)))
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.MessageResponse{Message: message})
}

// Regenerate handles POST /api/v1/ai/regenerate.
func (h *HugHandler) Regenerate(ctx context.Context, c *app.RequestContext) {
	var req dto.RegenerateRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind regenerate request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	message, err := h.hugs.Regenerate(ctx, req.ToDomain(currentUserID(c)))
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.MessageResponse{Message: message})
}

// GeneratePrompts handles POST /api/v1/ai/prompts.
func (h *HugHandler) GeneratePrompts(ctx context.Context, c *app.RequestContext) {
	var req dto.GeneratePromptsRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind prompts request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	prompts, err := h.hugs.GeneratePrompts(ctx, req.ToDomain())
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.PromptsResponse{Prompts: prompts})
}
