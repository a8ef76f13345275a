package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

// MockTokenCodec is a mock implementation of authService.TokenCodec
type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) Issue(identity authDomain.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockTokenCodec) Verify(token string) (authDomain.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(authDomain.Identity), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthenticationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setupRouter := func(codec *MockTokenCodec) (*gin.Engine, *authDomain.Identity) {
		var seen *authDomain.Identity
		router := gin.New()
		router.Use(AuthenticationMiddleware(codec, testLogger()))
		router.GET("/protected", func(c *gin.Context) {
			if identity, ok := GetIdentity(c.Request.Context()); ok {
				seen = &identity
			}
			c.Status(http.StatusOK)
		})
		return router, seen
	}

	t.Run("missing token returns 401", func(t *testing.T) {
		codec := &MockTokenCodec{}
		router, _ := setupRouter(codec)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		codec.AssertNotCalled(t, "Verify")
	})

	t.Run("unverifiable token returns 400", func(t *testing.T) {
		codec := &MockTokenCodec{}
		codec.On("Verify", "bad-token").Return(authDomain.Identity{}, authDomain.ErrInvalidToken)
		router, _ := setupRouter(codec)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthTokenHeader, "bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		identity := authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser}
		codec := &MockTokenCodec{}
		codec.On("Verify", "good-token").Return(identity, nil)

		var seen authDomain.Identity
		router := gin.New()
		router.Use(AuthenticationMiddleware(codec, testLogger()))
		router.GET("/protected", func(c *gin.Context) {
			got, ok := GetIdentity(c.Request.Context())
			require.True(t, ok)
			seen = got
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthTokenHeader, "good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, identity, seen)
	})
}

func TestRequireAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setupRouter := func(identity *authDomain.Identity) *gin.Engine {
		router := gin.New()
		if identity != nil {
			router.Use(func(c *gin.Context) {
				ctx := WithIdentity(c.Request.Context(), *identity)
				c.Request = c.Request.WithContext(ctx)
				c.Next()
			})
		}
		router.Use(RequireAdminMiddleware(testLogger()))
		router.GET("/admin", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("no identity returns 401", func(t *testing.T) {
		router := setupRouter(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin returns 403", func(t *testing.T) {
		identity := authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser}
		router := setupRouter(&identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		identity := authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleAdmin}
		router := setupRouter(&identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
