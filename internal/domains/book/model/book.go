package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	authormodel "bookstore-inventory/internal/domains/author/model"
)

// Book is the domain entity. AuthorIDs holds author UUIDs as strings in
// request order; referential validity is enforced by the service at write
// time, not by the store.
type Book struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`
	AuthorIDs     pq.StringArray  `json:"author_ids" db:"author_ids"`
	ISBN          string          `json:"isbn" db:"isbn"`
	Price         decimal.Decimal `json:"price" db:"price"`
	Stock         int             `json:"stock" db:"stock"`
	Genre         string          `json:"genre" db:"genre"`
	Description   *string         `json:"description,omitempty" db:"description"`
	PublishedDate *time.Time      `json:"published_date,omitempty" db:"published_date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// BookWithAuthors decorates a book with its resolved author records for
// read-only views. The raw author_ids are kept alongside.
type BookWithAuthors struct {
	Book
	Authors []authormodel.Author `json:"authors"`
}
