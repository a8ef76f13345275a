// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/notes/internal/auth/service"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/httputil"
)

// AuthTokenHeader is the request header carrying the identity token.
const AuthTokenHeader = "x-auth-token"

// AuthenticationMiddleware verifies the identity token on each request.
//
// The middleware:
//  1. Reads the token from the x-auth-token header
//  2. Verifies it with the token codec
//  3. Stores the decoded identity in the request context
//
// Error handling:
//   - Missing/empty header → 401 Unauthorized
//   - Present but unverifiable token → 400 Bad Request (malformed credential)
//
// Downstream handlers access the caller via GetIdentity(c.Request.Context()).
func AuthenticationMiddleware(codec authService.TokenCodec, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthTokenHeader)
		if token == "" {
			logger.Debug("authentication failed: missing auth token header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		identity, err := codec.Verify(token)
		if err != nil {
			logger.Debug("authentication failed: token verification",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", identity.ID.String()),
			slog.String("role", string(identity.Role)))

		c.Next()
	}
}

// RequireAdminMiddleware restricts an endpoint to identities with the admin role.
//
// MUST be mounted after AuthenticationMiddleware; it depends on the identity
// attached to the request context. Returns 403 Forbidden for non-admin callers
// and 401 if no identity is present (authentication middleware not run).
func RequireAdminMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			logger.Debug("authorization failed: no identity in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !identity.IsAdmin() {
			logger.Debug("authorization failed: admin role required",
				slog.String("user_id", identity.ID.String()),
				slog.String("role", string(identity.Role)))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
