package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-inventory/internal/domains/author/model"
)

// ServiceInterface defines business logic for the author domain.
type ServiceInterface interface {
	// List returns all authors.
	List(ctx context.Context) ([]model.Author, error)

	// GetByID returns model.ErrAuthorNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetByIDs returns the authors matching any of the given ids; ids with
	// no match are silently omitted. Used by the book service for joins.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Author, error)

	// Create persists a new author. Full names are unique
	// case-insensitively; a duplicate yields model.ErrAuthorNameExists.
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// Update applies a merge-patch. A full-name change colliding with
	// another author yields model.ErrAuthorNameExists.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete removes the author. Deleting an author still referenced by
	// books yields model.ErrAuthorHasBooks.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search matches the query as a case-insensitive substring of first
	// name, last name, full name, bio or nationality.
	Search(ctx context.Context, query string) ([]model.Author, error)

	// GetByNationality matches nationality only (substring).
	GetByNationality(ctx context.Context, nationality string) ([]model.Author, error)

	// GetByName matches first, last or full name (substring). Also used by
	// the book service to resolve "books by author name".
	GetByName(ctx context.Context, name string) ([]model.Author, error)

	// ExistsByID reports whether the author exists. Absence is not an
	// error; callers use this for referential checks.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
