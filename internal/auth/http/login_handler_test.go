package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/notes/internal/auth/http/dto"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
	apperrors "github.com/allisson/notes/internal/errors"
)

// MockAuthUseCase is a mock implementation of authUseCase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, input authUseCase.LoginInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func setupLoginTestHandler(t *testing.T) (*LoginHandler, *MockAuthUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &MockAuthUseCase{}
	return NewLoginHandler(mockUseCase, testLogger()), mockUseCase
}

func createLoginTestContext(body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestLoginHandler_LoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupLoginTestHandler(t)

		request := dto.LoginRequest{Email: "john@example.com", Password: "super-secret"}
		input := authUseCase.LoginInput{Email: "john@example.com", Password: "super-secret"}

		mockUseCase.On("Login", mock.Anything, input).Return("auth-token", nil).Once()

		c, w := createLoginTestContext(request)
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "auth-token", response.Token)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupLoginTestHandler(t)

		c, w := createLoginTestContext(nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupLoginTestHandler(t)

		request := dto.LoginRequest{Email: "john@example.com", Password: "wrong-password"}

		mockUseCase.On("Login", mock.Anything, mock.Anything).
			Return("", apperrors.Wrap(apperrors.ErrInvalidCredentials, "password mismatch")).
			Once()

		c, w := createLoginTestContext(request)
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_credentials", response["error"])
		// The wire message never reveals which part of the credentials failed
		assert.Equal(t, "Invalid email or password", response["message"])
	})
}
