package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-inventory/internal/domains/book/model"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, author_ids, isbn, price, stock, genre,
       description, published_date, created_at, updated_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.AuthorIDs,
		&b.ISBN,
		&b.Price,
		&b.Stock,
		&b.Genre,
		&b.Description,
		&b.PublishedDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBooks(rows pgx.Rows) ([]model.Book, error) {
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, author_ids, isbn, price, stock, genre,
                           description, published_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.AuthorIDs,
		b.ISBN,
		b.Price,
		b.Stock,
		b.Genre,
		b.Description,
		b.PublishedDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique_violation on books_isbn_key
			return nil, model.ErrISBNExists
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	return collectBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        UPDATE books
        SET title          = $1,
            author_ids     = $2,
            isbn           = $3,
            price          = $4,
            stock          = $5,
            genre          = $6,
            description    = $7,
            published_date = $8,
            updated_at     = now()
        WHERE id = $9
        RETURNING ` + bookColumns

	updated, err := scanBook(r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.AuthorIDs,
		b.ISBN,
		b.Price,
		b.Stock,
		b.Genre,
		b.Description,
		b.PublishedDate,
		b.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrISBNExists
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) SearchByTitleOrGenre(ctx context.Context, query string) ([]model.Book, error) {
	pattern := "%" + escapeWildcards(query) + "%"

	sql := `SELECT ` + bookColumns + `
        FROM books
        WHERE title ILIKE $1 OR genre ILIKE $1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, sql, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return collectBooks(rows)
}

func (r *postgresRepository) GetByGenre(ctx context.Context, genre string) ([]model.Book, error) {
	sql := `SELECT ` + bookColumns + ` FROM books WHERE LOWER(genre) = LOWER($1) ORDER BY created_at`

	rows, err := r.pool.Query(ctx, sql, genre)
	if err != nil {
		return nil, fmt.Errorf("failed to get books by genre: %w", err)
	}
	return collectBooks(rows)
}

func (r *postgresRepository) GetByAuthorIDs(ctx context.Context, authorIDs []string) ([]model.Book, error) {
	if len(authorIDs) == 0 {
		return []model.Book{}, nil
	}

	sql := `SELECT ` + bookColumns + ` FROM books WHERE author_ids && $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, sql, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get books by author ids: %w", err)
	}
	return collectBooks(rows)
}

// AdjustStock applies the delta in one statement so concurrent adjustments
// cannot lose updates or drive stock negative.
func (r *postgresRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*model.Book, error) {
	query := `
        UPDATE books
        SET stock      = stock + $2,
            updated_at = now()
        WHERE id = $1 AND stock + $2 >= 0
        RETURNING ` + bookColumns

	updated, err := scanBook(r.pool.QueryRow(ctx, query, id, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row matched: either the book is missing or the delta
			// would underflow. Disambiguate with an existence probe.
			var exists bool
			if checkErr := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
				return nil, fmt.Errorf("failed to check book existence: %w", checkErr)
			}
			if !exists {
				return nil, model.ErrBookNotFound
			}
			return nil, model.ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return updated, nil
}

// escapeWildcards prevents user input from acting as ILIKE wildcards.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
