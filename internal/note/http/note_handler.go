// Package http provides HTTP handlers for note operations.
//
// All endpoints require authentication; every operation is scoped to the
// caller's identity. A malformed or foreign note id produces the same 404 as
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
	"github.com/allisson/notes/internal/note/domain"
	"github.com/allisson/notes/internal/note/http/dto"
	"github.com/allisson/notes/internal/note/usecase"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteUseCase usecase.UseCase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
		logger:      logger,
	}
}

// caller extracts the authenticated identity from the request context.
func (h *NoteHandler) caller(c *gin.Context) (authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
	}
	return identity, ok
}

// noteID parses the :id path parameter. A non-UUID value is reported as
// not-found, the same as a missing or foreign note.
func (h *NoteHandler) noteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrNoteNotFound, h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// CreateNoteHandler creates a new note owned by the caller.
// POST /api/notes
func (h *NoteHandler) CreateNoteHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	note, err := h.noteUseCase.Create(c.Request.Context(), identity.ID, dto.ToNoteInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// ListNotesHandler lists the caller's notes.
// GET /api/notes
func (h *NoteHandler) ListNotesHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	notes, err := h.noteUseCase.List(c.Request.Context(), identity.ID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteListResponse(notes))
}

// GetNoteHandler retrieves one of the caller's notes.
// GET /api/notes/:id
func (h *NoteHandler) GetNoteHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	note, err := h.noteUseCase.GetByID(c.Request.Context(), identity.ID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// UpdateNoteHandler replaces one of the caller's notes.
// PUT /api/notes/:id
func (h *NoteHandler) UpdateNoteHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	note, err := h.noteUseCase.Update(c.Request.Context(), identity.ID, id, dto.ToNoteInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// DeleteNoteHandler removes one of the caller's notes.
// DELETE /api/notes/:id
func (h *NoteHandler) DeleteNoteHandler(c *gin.Context) {
	identity, ok := h.caller(c)
	if !ok {
		return
	}

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	if err := h.noteUseCase.Delete(c.Request.Context(), identity.ID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusOK)
}
