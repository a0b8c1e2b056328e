package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore-inventory/internal/domains/author/model"
)

type mockAuthorService struct {
	mock.Mock
}

func (m *mockAuthorService) List(ctx context.Context) ([]model.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *mockAuthorService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *mockAuthorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *mockAuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAuthorService) Search(ctx context.Context, query string) ([]model.Author, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorService) GetByNationality(ctx context.Context, nationality string) ([]model.Author, error) {
	args := m.Called(ctx, nationality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorService) GetByName(ctx context.Context, name string) ([]model.Author, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func setupAuthorRouter(svc *mockAuthorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	r := gin.New()
	authors := r.Group("/authors")
	{
		authors.GET("", h.List)
		authors.POST("", h.Create)
		authors.GET("/:id", h.GetByID)
		authors.PUT("/:id", h.Update)
		authors.DELETE("/:id", h.Delete)
		authors.GET("/search/:query", h.Search)
		authors.GET("/nationality/:nationality", h.GetByNationality)
		authors.GET("/name/:name", h.GetByName)
	}
	return r
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "error")
	return body["error"]
}

func TestAuthorHandler_Create(t *testing.T) {
	t.Run("201 with created author", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		created := &model.Author{ID: uuid.New(), FullName: "George Orwell"}
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateAuthorRequest")).
			Return(created, nil)

		payload := `{"first_name":"George","last_name":"Orwell","full_name":"George Orwell"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(payload))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.Author
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "George Orwell", got.FullName)
	})

	t.Run("409 on duplicate full name", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrAuthorNameExists)

		payload := `{"first_name":"George","last_name":"Orwell","full_name":"George Orwell"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(payload))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, model.ErrAuthorNameExists.Error(), decodeErrorBody(t, w))
	})

	t.Run("400 on malformed json", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(`{"first_name":`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		decodeErrorBody(t, w)
		svc.AssertNotCalled(t, "Create")
	})
}

func TestAuthorHandler_GetByID(t *testing.T) {
	t.Run("404 for non-uuid id", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/authors/not-a-uuid", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "GetByID")
	})

	t.Run("404 for unknown author", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		id := uuid.New()
		svc.On("GetByID", mock.Anything, id).Return(nil, model.ErrAuthorNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/authors/"+id.String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, model.ErrAuthorNotFound.Error(), decodeErrorBody(t, w))
	})
}

func TestAuthorHandler_Delete(t *testing.T) {
	t.Run("200 with confirmation message", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		id := uuid.New()
		svc.On("Delete", mock.Anything, id).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/authors/"+id.String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "author deleted successfully", body["message"])
	})

	t.Run("409 when books still reference the author", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		id := uuid.New()
		svc.On("Delete", mock.Anything, id).Return(model.ErrAuthorHasBooks)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/authors/"+id.String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthorHandler_List(t *testing.T) {
	t.Run("empty result serializes as json array", func(t *testing.T) {
		svc := new(mockAuthorService)
		r := setupAuthorRouter(svc)

		svc.On("List", mock.Anything).Return([]model.Author(nil), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/authors", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})
}

func TestAuthorHandler_Search(t *testing.T) {
	svc := new(mockAuthorService)
	r := setupAuthorRouter(svc)

	expected := []model.Author{{ID: uuid.New(), FullName: "George Orwell"}}
	svc.On("Search", mock.Anything, "orwell").Return(expected, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authors/search/orwell", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []model.Author
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "George Orwell", got[0].FullName)
}
