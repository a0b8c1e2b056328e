package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore-inventory/internal/domains/author/model"
)

type mockAuthorRepo struct {
	mock.Mock
}

func (m *mockAuthorRepo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *mockAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *mockAuthorRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorRepo) GetAll(ctx context.Context) ([]model.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorRepo) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *mockAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAuthorRepo) Search(ctx context.Context, query string) ([]model.Author, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorRepo) SearchByName(ctx context.Context, name string) ([]model.Author, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorRepo) SearchByNationality(ctx context.Context, nationality string) ([]model.Author, error) {
	args := m.Called(ctx, nationality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *mockAuthorRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorRepo) BookRefCount(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		req := &model.CreateAuthorRequest{
			FirstName: "George",
			LastName:  "Orwell",
			FullName:  "George Orwell",
		}

		created := &model.Author{
			ID:        uuid.New(),
			FirstName: "George",
			LastName:  "Orwell",
			FullName:  "George Orwell",
		}
		repo.On("Create", ctx, mock.AnythingOfType("*model.Author")).Return(created, nil)

		got, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "George Orwell", got.FullName)
		repo.AssertExpectations(t)
	})

	t.Run("missing full name fails validation before repo", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		req := &model.CreateAuthorRequest{FirstName: "George", LastName: "Orwell"}

		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate full name", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		req := &model.CreateAuthorRequest{
			FirstName: "George",
			LastName:  "Orwell",
			FullName:  "George Orwell",
		}
		repo.On("Create", ctx, mock.Anything).Return(nil, model.ErrAuthorNameExists)

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, model.ErrAuthorNameExists)
	})
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merge patch keeps absent fields", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		id := uuid.New()
		bio := "dystopian novelist"
		current := &model.Author{
			ID:        id,
			FirstName: "George",
			LastName:  "Orwell",
			FullName:  "George Orwell",
			Bio:       &bio,
		}
		repo.On("GetByID", ctx, id).Return(current, nil)

		newBio := "novelist and essayist"
		repo.On("Update", ctx, mock.MatchedBy(func(a *model.Author) bool {
			return a.FullName == "George Orwell" && a.Bio != nil && *a.Bio == newBio
		})).Return(&model.Author{ID: id, FullName: "George Orwell", Bio: &newBio}, nil)

		got, err := svc.Update(ctx, id, &model.UpdateAuthorRequest{Bio: &newBio})
		require.NoError(t, err)
		assert.Equal(t, newBio, *got.Bio)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		id := uuid.New()
		repo.On("GetByID", ctx, id).Return(nil, model.ErrAuthorNotFound)

		name := "Eric Blair"
		_, err := svc.Update(ctx, id, &model.UpdateAuthorRequest{FullName: &name})
		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	})
}

func TestAuthorService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("restricted when books reference the author", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		id := uuid.New()
		repo.On("BookRefCount", ctx, id).Return(3, nil)

		err := svc.Delete(ctx, id)
		assert.ErrorIs(t, err, model.ErrAuthorHasBooks)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("deletes unreferenced author", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		id := uuid.New()
		repo.On("BookRefCount", ctx, id).Return(0, nil)
		repo.On("Delete", ctx, id).Return(nil)

		err := svc.Delete(ctx, id)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("ref count failure surfaces", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		id := uuid.New()
		repo.On("BookRefCount", ctx, id).Return(0, errors.New("connection reset"))

		err := svc.Delete(ctx, id)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestAuthorService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query short-circuits", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		got, err := svc.Search(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, got)
		repo.AssertNotCalled(t, "Search")
	})

	t.Run("delegates trimmed query", func(t *testing.T) {
		repo := new(mockAuthorRepo)
		svc := NewAuthorService(repo)

		expected := []model.Author{{ID: uuid.New(), FullName: "George Orwell"}}
		repo.On("Search", ctx, "orwell").Return(expected, nil)

		got, err := svc.Search(ctx, " orwell ")
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})
}

func TestAuthorService_ExistsByID(t *testing.T) {
	ctx := context.Background()

	repo := new(mockAuthorRepo)
	svc := NewAuthorService(repo)

	exists, err := svc.ExistsByID(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists)
	repo.AssertNotCalled(t, "ExistsByID")
}
