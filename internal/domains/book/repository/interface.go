package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-inventory/internal/domains/book/model"
)

// RepositoryInterface defines data access for books.
type RepositoryInterface interface {
	// Create inserts a new book; id and timestamps are assigned by the
	// store. Returns model.ErrISBNExists on a duplicate ISBN (rejected by
	// the unique index at insert time).
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID returns model.ErrBookNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetAll returns every book in store order.
	GetAll(ctx context.Context) ([]model.Book, error)

	// Update persists all mutable fields of b and refreshes updated_at.
	// Returns model.ErrBookNotFound if absent, model.ErrISBNExists if the
	// new ISBN collides with another book.
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete returns model.ErrBookNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// SearchByTitleOrGenre matches the query as a case-insensitive
	// substring of title or genre.
	SearchByTitleOrGenre(ctx context.Context, query string) ([]model.Book, error)

	// GetByGenre matches genre by exact case-insensitive equality,
	// not substring.
	GetByGenre(ctx context.Context, genre string) ([]model.Book, error)

	// GetByAuthorIDs returns books whose author_ids intersect the given
	// id set.
	GetByAuthorIDs(ctx context.Context, authorIDs []string) ([]model.Book, error)

	// AdjustStock applies a signed delta as a single conditional update;
	// the store rejects any result below zero. Returns
	// model.ErrInsufficientStock when the delta would underflow and
	// model.ErrBookNotFound when the book is absent.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*model.Book, error)
}
