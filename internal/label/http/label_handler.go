// Package http provides HTTP handlers for label operations.
//
// All endpoints require authentication; every operation is scoped to the
// caller's identity. A malformed or foreign label id produces the same 404 as
// a missing one.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	authHTTP "github.com/allisson/notes/internal/auth/http"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/httputil"
	"github.com/allisson/notes/internal/label/domain"
	"github.com/allisson/notes/internal/label/http/dto"
	"github.com/allisson/notes/internal/label/usecase"
)

// LabelHandler handles label-related HTTP requests
type LabelHandler struct {
	labelUseCase usecase.UseCase
	logger       *slog.Logger
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labelUseCase usecase.UseCase, logger *slog.Logger) *LabelHandler {
	return &LabelHandler{
		labelUseCase: labelUseCase,
		logger:       logger,
	}
}

func (h *LabelHandler) caller(c *gin.Context) (authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
	}
	return identity, ok
}

// labelID parses the :id path parameter. A non-UUID value is reported as
// not-found, the same as a missing or foreign label.
func (h *LabelHandler) labelID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrLabelNotFound, h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// CreateLabelHandler creates a new label owned by the caller.
// POST /api/labels
func (h *LabelHandler) CreateLabelHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	label, err := h.labelUseCase.Create(c.Request.Context(), identity.ID, dto.ToLabelInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelResponse(label))
}

// ListLabelsHandler lists the caller's labels.
// GET /api/labels
func (h *LabelHandler) ListLabelsHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	labels, err := h.labelUseCase.List(c.Request.Context(), identity.ID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelListResponse(labels))
}

// GetLabelHandler retrieves one of the caller's labels.
// GET /api/labels/:id
func (h *LabelHandler) GetLabelHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.labelID(c)
	if !ok {
		return
	}

	label, err := h.labelUseCase.GetByID(c.Request.Context(), identity.ID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelResponse(label))
}

// UpdateLabelHandler renames one of the caller's labels.
// PUT /api/labels/:id
func (h *LabelHandler) UpdateLabelHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.labelID(c)
	if !ok {
		return
	}

	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	label, err := h.labelUseCase.Update(c.Request.Context(), identity.ID, id, dto.ToLabelInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelResponse(label))
}

// DeleteLabelHandler removes one of the caller's labels.
// DELETE /api/labels/:id
func (h *LabelHandler) DeleteLabelHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.labelID(c)
	if !ok {
		return
	}

	if err := h.labelUseCase.Delete(c.Request.Context(), identity.ID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusOK)
}
