package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-inventory/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors.
type RepositoryInterface interface {
	// Create inserts a new author; id and timestamps are assigned by the
	// store. Returns model.ErrAuthorNameExists on a duplicate full name
	// (case-insensitive, rejected by the unique index at insert time).
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID returns model.ErrAuthorNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetByIDs returns the authors matching any of the given ids.
	// Ids with no match are silently omitted.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Author, error)

	// GetAll returns every author in store order.
	GetAll(ctx context.Context) ([]model.Author, error)

	// Update persists all mutable fields of a and refreshes updated_at.
	// Returns model.ErrAuthorNotFound if absent, model.ErrAuthorNameExists
	// if the new full name collides with another author.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete returns model.ErrAuthorNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search matches the query as a case-insensitive substring of first
	// name, last name, full name, bio or nationality.
	Search(ctx context.Context, query string) ([]model.Author, error)

	// SearchByName matches first, last or full name only.
	SearchByName(ctx context.Context, name string) ([]model.Author, error)

	// SearchByNationality matches nationality only.
	SearchByNationality(ctx context.Context, nationality string) ([]model.Author, error)

	// ExistsByID is a lightweight existence probe.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// BookRefCount counts books whose author_ids reference the author.
	BookRefCount(ctx context.Context, id uuid.UUID) (int, error)
}
