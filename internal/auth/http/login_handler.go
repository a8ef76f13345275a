package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/notes/internal/auth/http/dto"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
	"github.com/allisson/notes/internal/httputil"
)

// LoginHandler handles HTTP requests for credential-based login.
type LoginHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewLoginHandler creates a new login handler with required dependencies.
func NewLoginHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler verifies credentials and returns a signed auth token.
// POST /api/login - No authentication required (this is the authentication endpoint).
func (h *LoginHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
