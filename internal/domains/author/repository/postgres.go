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

	"bookstore-inventory/internal/domains/author/model"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, first_name, last_name, full_name, bio, birth_date,
       nationality, website, social_links, photo_url, created_at, updated_at`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.FullName,
		&a.Bio,
		&a.BirthDate,
		&a.Nationality,
		&a.Website,
		&a.SocialLinks,
		&a.PhotoURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAuthors(rows pgx.Rows) ([]model.Author, error) {
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, full_name, bio, birth_date,
                             nationality, website, social_links, photo_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.FirstName,
		a.LastName,
		a.FullName,
		a.Bio,
		a.BirthDate,
		a.Nationality,
		a.Website,
		a.SocialLinks,
		a.PhotoURL,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique_violation on authors_full_name_lower_key
			return nil, model.ErrAuthorNameExists
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = ANY($1::uuid[]) ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, idStrs)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors by ids: %w", err)
	}
	return collectAuthors(rows)
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	return collectAuthors(rows)
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET first_name   = $1,
            last_name    = $2,
            full_name    = $3,
            bio          = $4,
            birth_date   = $5,
            nationality  = $6,
            website      = $7,
            social_links = $8,
            photo_url    = $9,
            updated_at   = now()
        WHERE id = $10
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.FirstName,
		a.LastName,
		a.FullName,
		a.Bio,
		a.BirthDate,
		a.Nationality,
		a.Website,
		a.SocialLinks,
		a.PhotoURL,
		a.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrAuthorNameExists
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) Search(ctx context.Context, query string) ([]model.Author, error) {
	pattern := "%" + escapeWildcards(query) + "%"

	sql := `SELECT ` + authorColumns + `
        FROM authors
        WHERE first_name ILIKE $1
           OR last_name ILIKE $1
           OR full_name ILIKE $1
           OR bio ILIKE $1
           OR nationality ILIKE $1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, sql, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search authors: %w", err)
	}
	return collectAuthors(rows)
}

func (r *postgresRepository) SearchByName(ctx context.Context, name string) ([]model.Author, error) {
	pattern := "%" + escapeWildcards(name) + "%"

	sql := `SELECT ` + authorColumns + `
        FROM authors
        WHERE first_name ILIKE $1
           OR last_name ILIKE $1
           OR full_name ILIKE $1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, sql, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search authors by name: %w", err)
	}
	return collectAuthors(rows)
}

func (r *postgresRepository) SearchByNationality(ctx context.Context, nationality string) ([]model.Author, error) {
	pattern := "%" + escapeWildcards(nationality) + "%"

	sql := `SELECT ` + authorColumns + ` FROM authors WHERE nationality ILIKE $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, sql, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search authors by nationality: %w", err)
	}
	return collectAuthors(rows)
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) BookRefCount(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE $1 = ANY(author_ids)`, id.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count referencing books: %w", err)
	}
	return count, nil
}

// escapeWildcards prevents user input from acting as ILIKE wildcards.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
