package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-inventory/internal/domains/book/model"
)

// ServiceInterface defines business logic for the book domain. It owns the
// cross-entity rules: author references are validated against the author
// service, and the books-with-authors read views are composed here.
type ServiceInterface interface {
	// List returns all books.
	List(ctx context.Context) ([]model.Book, error)

	// GetByID returns model.ErrBookNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// Create validates every referenced author id in request order,
	// failing fast with model.ErrInvalidAuthorRef naming the first missing
	// id, then persists. A duplicate ISBN yields model.ErrISBNExists.
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)

	// Update applies a merge-patch. When the patch carries author_ids the
	// per-id validation is repeated in the same fail-fast order.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error)

	// Delete returns model.ErrBookNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search returns books whose title or genre contains the query
	// (case-insensitive), unioned with books by any author whose name
	// matches it. Author resolution is skipped for books already matched
	// on title or genre.
	Search(ctx context.Context, query string) ([]model.Book, error)

	// GetByGenre matches genre by exact case-insensitive equality.
	GetByGenre(ctx context.Context, genre string) ([]model.Book, error)

	// GetByAuthorName resolves author ids by name first; when no author
	// matches, the result is empty without enumerating books.
	GetByAuthorName(ctx context.Context, name string) ([]model.Book, error)

	// UpdateStock applies a signed delta atomically. A delta that would
	// drive stock negative yields model.ErrInsufficientStock and leaves
	// the stored value untouched.
	UpdateStock(ctx context.Context, id uuid.UUID, delta int) (*model.Book, error)

	// ListWithAuthors returns every book decorated with its resolved
	// author records. Re-resolved from the store on every call.
	ListWithAuthors(ctx context.Context) ([]model.BookWithAuthors, error)

	// GetWithAuthors returns one decorated book; not-found short-circuits
	// before author resolution.
	GetWithAuthors(ctx context.Context, id uuid.UUID) (*model.BookWithAuthors, error)
}
