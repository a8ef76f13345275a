// Package http provides HTTP handlers for user account operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/notes/internal/auth/http"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/httputil"
	"github.com/allisson/notes/internal/user/http/dto"
	"github.com/allisson/notes/internal/user/usecase"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterUserHandler handles user registration.
// POST /api/users - No authentication required.
// Returns 200 with the created user and the auth token in the
// x-auth-token response header (legacy wire contract).
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	output, err := h.userUseCase.Register(c.Request.Context(), dto.ToRegisterUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header(authHTTP.AuthTokenHeader, output.Token)
	c.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// MeHandler returns the authenticated caller's own account.
// GET /api/users/me - Requires authentication.
func (h *UserHandler) MeHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	user, err := h.userUseCase.GetByID(c.Request.Context(), identity.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsersHandler lists all accounts.
// GET /api/users - Requires authentication and the admin role.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// UpdateUserHandler modifies the caller's own account.
// PUT /api/users/:id - Requires authentication; the path id must match the caller.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, apperrors.New("invalid user id: must be a valid UUID"), h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), identity, userID, dto.ToUpdateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUserHandler removes the caller's own account.
// DELETE /api/users/:id - Requires authentication; the path id must match the caller.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, apperrors.New("invalid user id: must be a valid UUID"), h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), identity, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusOK)
}
