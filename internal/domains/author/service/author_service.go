package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bookstore-inventory/internal/domains/author/model"
	"bookstore-inventory/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService wires the service to its repository. Dependencies are
// passed explicitly; there is no global registry.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}
	return s.repo.GetByIDs(ctx, ids)
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Uniqueness of full_name (case-insensitive) is enforced by the store's
	// unique index, so concurrent creates cannot both slip past a pre-check.
	// The repository maps the unique violation to ErrAuthorNameExists.
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)

	// The unique index excludes the row itself, so renaming an author to its
	// own full name does not conflict.
	return s.repo.Update(ctx, &updated)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	refs, err := s.repo.BookRefCount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check referencing books: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: %d books reference this author", model.ErrAuthorHasBooks, refs)
	}
	return s.repo.Delete(ctx, id)
}

func (s *authorService) Search(ctx context.Context, query string) ([]model.Author, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Author{}, nil
	}
	return s.repo.Search(ctx, query)
}

func (s *authorService) GetByNationality(ctx context.Context, nationality string) ([]model.Author, error) {
	nationality = strings.TrimSpace(nationality)
	if nationality == "" {
		return []model.Author{}, nil
	}
	return s.repo.SearchByNationality(ctx, nationality)
}

func (s *authorService) GetByName(ctx context.Context, name string) ([]model.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []model.Author{}, nil
	}
	return s.repo.SearchByName(ctx, name)
}

func (s *authorService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	return s.repo.ExistsByID(ctx, id)
}
