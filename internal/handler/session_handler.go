package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/handler/dto"
)

// SessionHandler serves the session CRUD surface plus the ingredient,
// descriptor and stage-transition operations.
type SessionHandler struct {
	sessions domain.SessionUsecase
	flow     domain.FlowUsecase
	logger   *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions domain.SessionUsecase, flow domain.FlowUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		flow:     flow,
		logger:   logger,
	}
}

// Create handles POST /api/v1/sessions.
func (h *SessionHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateSessionRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind create session request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.sessions.Create(ctx, domain.CreateSessionRequest{
		SessionID:     req.SessionID,
		RecipientName: req.RecipientName,
		Anchor:        req.Anchor,
		Occasion:      req.Occasion,
		Tone:          req.Tone,
		FinalMessage:  req.FinalMessage,
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	CreatedResponse(c, dto.FromSession(session))
}

// Get handles GET /api/v1/sessions/:sessionId.
func (h *SessionHandler) Get(ctx context.Context, c *app.RequestContext) {
	session, err := h.sessions.Get(ctx, c.Param("sessionId"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.FromSession(session))
}

// Update handles PATCH /api/v1/sessions/:sessionId.
func (h *SessionHandler) Update(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateSessionRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind update session request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.sessions.Update(ctx, c.Param("sessionId"), req.ToDomain())
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.FromSession(session))
}

// Delete handles DELETE /api/v1/sessions/:sessionId.
func (h *SessionHandler) Delete(ctx context.Context, c *app.RequestContext) {
	if err := h.sessions.Delete(ctx, c.Param("sessionId")); err != nil {
		ErrorResponse(c, err)
		return
	}
	NoContentResponse(c)
}

// AddIngredient handles POST /api/v1/sessions/:sessionId/ingredients.
func (h *SessionHandler) AddIngredient(ctx context.Context, c *app.RequestContext) {
	var req dto.AddIngredientRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind ingredient request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.sessions.AddIngredient(ctx, c.Param("sessionId"), req.Prompt, req.Content)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	CreatedResponse(c, dto.FromSession(session))
}

// RemoveIngredient handles DELETE /api/v1/sessions/:sessionId/ingredients/:id.
func (h *SessionHandler) RemoveIngredient(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequestResponse(c, "ingredient id must be an integer")
		return
	}

	session, err := h.sessions.RemoveIngredient(ctx, c.Param("sessionId"), id)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.FromSession(session))
}

// UpdateDescriptors handles PUT /api/v1/sessions/:sessionId/descriptors.
func (h *SessionHandler) UpdateDescriptors(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateDescriptorsRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind descriptors request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.sessions.UpdateDescriptors(ctx, c.Param("sessionId"), req.Descriptors)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.FromSession(session))
}

// Advance handles POST /api/v1/sessions/:sessionId/advance.
func (h *SessionHandler) Advance(ctx context.Context, c *app.RequestContext) {
	session, err := h.flow.Advance(ctx, c.Param("sessionId"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.FromSession(session))
}

// Back handles POST /api/v1/sessions/:sessionId/back.
func (h *SessionHandler) Back(ctx context.Context, c *app.RequestContext) {
	var req dto.BackRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind back request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.flow.Back(ctx, c.Param("sessionId"), entity.Stage(req.Stage))
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.FromSession(session))
}

// Reset handles POST /api/v1/sessions/:sessionId/reset.
func (h *SessionHandler) Reset(ctx context.Context, c *app.RequestContext) {
	session, err := h.flow.StartOver(ctx, c.Param("sessionId"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.FromSession(session))
}
