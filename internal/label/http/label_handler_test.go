package http

import (
	"bytes"
	"context"
	"encoding/json"
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
	authHTTP "github.com/allisson/notes/internal/auth/http"
	"github.com/allisson/notes/internal/label/domain"
	"github.com/allisson/notes/internal/label/http/dto"
	"github.com/allisson/notes/internal/label/usecase"
)

// MockLabelUseCase is a mock implementation of usecase.UseCase
type MockLabelUseCase struct {
	mock.Mock
}

func (m *MockLabelUseCase) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input usecase.LabelInput,
) (*domain.Label, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelUseCase) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Label, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelUseCase) List(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Label, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Label), args.Error(1)
}

func (m *MockLabelUseCase) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	input usecase.LabelInput,
) (*domain.Label, error) {
	args := m.Called(ctx, ownerID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelUseCase) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func setupTestHandler(t *testing.T) (*LabelHandler, *MockLabelUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &MockLabelUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLabelHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func attachIdentity(c *gin.Context, identity authDomain.Identity) {
	ctx := authHTTP.WithIdentity(c.Request.Context(), identity)
	c.Request = c.Request.WithContext(ctx)
}

func testIdentity() authDomain.Identity {
	return authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser}
}

func TestLabelHandler_CreateLabelHandler(t *testing.T) {
	identity := testIdentity()
	request := dto.LabelRequest{Name: "work"}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		created := &domain.Label{ID: uuid.Must(uuid.NewV7()), OwnerID: identity.ID, Name: "work"}
		mockUseCase.On("Create", mock.Anything, identity.ID, dto.ToLabelInput(request)).
			Return(created, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/labels", request)
		attachIdentity(c, identity)
		handler.CreateLabelHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LabelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "work", response.Name)
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/labels", request)
		handler.CreateLabelHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Create")
	})
}

func TestLabelHandler_GetLabelHandler(t *testing.T) {
	identity := testIdentity()

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		label := &domain.Label{ID: uuid.Must(uuid.NewV7()), OwnerID: identity.ID, Name: "work"}
		mockUseCase.On("GetByID", mock.Anything, identity.ID, label.ID).Return(label, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/labels/"+label.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: label.ID.String()}}
		attachIdentity(c, identity)
		handler.GetLabelHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MalformedID_HiddenAs404", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/labels/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
		attachIdentity(c, identity)
		handler.GetLabelHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockUseCase.AssertNotCalled(t, "GetByID")
	})

	t.Run("ForeignLabel_HiddenAs404", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		labelID := uuid.Must(uuid.NewV7())
		mockUseCase.On("GetByID", mock.Anything, identity.ID, labelID).
			Return(nil, domain.ErrLabelNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/api/labels/"+labelID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: labelID.String()}}
		attachIdentity(c, identity)
		handler.GetLabelHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLabelHandler_ListLabelsHandler(t *testing.T) {
	identity := testIdentity()

	handler, mockUseCase := setupTestHandler(t)

	labels := []*domain.Label{
		{ID: uuid.Must(uuid.NewV7()), OwnerID: identity.ID, Name: "work"},
		{ID: uuid.Must(uuid.NewV7()), OwnerID: identity.ID, Name: "home"},
	}
	mockUseCase.On("List", mock.Anything, identity.ID, 0, 50).Return(labels, nil).Once()

	c, w := createTestContext(http.MethodGet, "/api/labels", nil)
	attachIdentity(c, identity)
	handler.ListLabelsHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.LabelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
}

func TestLabelHandler_UpdateLabelHandler(t *testing.T) {
	identity := testIdentity()
	labelID := uuid.Must(uuid.NewV7())
	request := dto.LabelRequest{Name: "renamed"}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		updated := &domain.Label{ID: labelID, OwnerID: identity.ID, Name: "renamed"}
		mockUseCase.On("Update", mock.Anything, identity.ID, labelID, dto.ToLabelInput(request)).
			Return(updated, nil).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/labels/"+labelID.String(), request)
		c.Params = gin.Params{{Key: "id", Value: labelID.String()}}
		attachIdentity(c, identity)
		handler.UpdateLabelHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MalformedID_HiddenAs404", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodPut, "/api/labels/42", request)
		c.Params = gin.Params{{Key: "id", Value: "42"}}
		attachIdentity(c, identity)
		handler.UpdateLabelHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockUseCase.AssertNotCalled(t, "Update")
	})
}

func TestLabelHandler_DeleteLabelHandler(t *testing.T) {
	identity := testIdentity()
	labelID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, identity.ID, labelID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/api/labels/"+labelID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: labelID.String()}}
		attachIdentity(c, identity)
		handler.DeleteLabelHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ForeignLabel_HiddenAs404", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, identity.ID, labelID).
			Return(domain.ErrLabelNotFound).
			Once()

		c, w := createTestContext(http.MethodDelete, "/api/labels/"+labelID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: labelID.String()}}
		attachIdentity(c, identity)
		handler.DeleteLabelHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
