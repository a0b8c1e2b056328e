package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	authorservice "bookstore-inventory/internal/domains/author/service"
	"bookstore-inventory/internal/domains/book/model"
	"bookstore-inventory/internal/domains/book/repository"
)

type bookService struct {
	repo    repository.RepositoryInterface
	authors authorservice.ServiceInterface
}

// NewBookService wires the service to its repository and the author service
// it depends on for referential checks and name-based joins.
func NewBookService(repo repository.RepositoryInterface, authors authorservice.ServiceInterface) ServiceInterface {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// validateAuthorRefs checks each referenced author in request order and
// fails fast on the first missing or malformed id.
func (s *bookService) validateAuthorRefs(ctx context.Context, authorIDs []string) error {
	for _, raw := range authorIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: %s", model.ErrInvalidAuthorRef, raw)
		}
		exists, err := s.authors.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to validate author %s: %w", raw, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", model.ErrInvalidAuthorRef, raw)
		}
	}
	return nil
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.validateAuthorRefs(ctx, req.AuthorIDs); err != nil {
		return nil, err
	}

	// ISBN uniqueness is enforced by the store's unique index rather than a
	// pre-check; the repository maps the violation to ErrISBNExists.
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.AuthorIDs != nil {
		if err := s.validateAuthorRefs(ctx, req.AuthorIDs); err != nil {
			return nil, err
		}
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)

	return s.repo.Update(ctx, &updated)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) Search(ctx context.Context, query string) ([]model.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Book{}, nil
	}

	matched, err := s.repo.SearchByTitleOrGenre(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]model.Book, 0, len(matched))
	seen := make(map[uuid.UUID]struct{}, len(matched))
	for _, b := range matched {
		results = append(results, b)
		seen[b.ID] = struct{}{}
	}

	// Second path: books by authors whose name matches the query. Books
	// already matched on title or genre are not re-resolved.
	authors, err := s.authors.GetByName(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return results, nil
	}

	authorIDs := make([]string, len(authors))
	for i, a := range authors {
		authorIDs[i] = a.ID.String()
	}

	byAuthor, err := s.repo.GetByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	for _, b := range byAuthor {
		if _, ok := seen[b.ID]; ok {
			continue
		}
		results = append(results, b)
		seen[b.ID] = struct{}{}
	}

	return results, nil
}

func (s *bookService) GetByGenre(ctx context.Context, genre string) ([]model.Book, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return []model.Book{}, nil
	}
	return s.repo.GetByGenre(ctx, genre)
}

func (s *bookService) GetByAuthorName(ctx context.Context, name string) ([]model.Book, error) {
	authors, err := s.authors.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		// No matching author means no books; skip the book query entirely.
		return []model.Book{}, nil
	}

	authorIDs := make([]string, len(authors))
	for i, a := range authors {
		authorIDs[i] = a.ID.String()
	}
	return s.repo.GetByAuthorIDs(ctx, authorIDs)
}

func (s *bookService) UpdateStock(ctx context.Context, id uuid.UUID, delta int) (*model.Book, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}
	return s.repo.AdjustStock(ctx, id, delta)
}

// withAuthors decorates a book with its resolved author records. Malformed
// or dangling ids are silently omitted, matching GetByIDs.
func (s *bookService) withAuthors(ctx context.Context, b model.Book) (model.BookWithAuthors, error) {
	ids := make([]uuid.UUID, 0, len(b.AuthorIDs))
	for _, raw := range b.AuthorIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	authors, err := s.authors.GetByIDs(ctx, ids)
	if err != nil {
		return model.BookWithAuthors{}, err
	}
	return model.BookWithAuthors{Book: b, Authors: authors}, nil
}

func (s *bookService) ListWithAuthors(ctx context.Context) ([]model.BookWithAuthors, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	decorated := make([]model.BookWithAuthors, 0, len(books))
	for _, b := range books {
		bwa, err := s.withAuthors(ctx, b)
		if err != nil {
			return nil, err
		}
		decorated = append(decorated, bwa)
	}
	return decorated, nil
}

func (s *bookService) GetWithAuthors(ctx context.Context, id uuid.UUID) (*model.BookWithAuthors, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bwa, err := s.withAuthors(ctx, *b)
	if err != nil {
		return nil, err
	}
	return &bwa, nil
}
