package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title         string          `json:"title"`
	AuthorIDs     []string        `json:"author_ids"`
	ISBN          string          `json:"isbn"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Genre         string          `json:"genre"`
	Description   *string         `json:"description,omitempty"`
	PublishedDate *time.Time      `json:"published_date,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 500)),
		validation.Field(&r.AuthorIDs, validation.Required.Error("author_ids is required")),
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required"), validation.Length(1, 32)),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
		validation.Field(&r.Stock, validation.Min(0).Error("stock cannot be negative")),
		validation.Field(&r.Genre, validation.Required.Error("genre is required"), validation.Length(1, 100)),
	)
}

// UpdateBookRequest - PUT /books/:id
// Merge-patch: only non-nil fields are applied. AuthorIDs, when present,
// are re-validated against the author collection.
type UpdateBookRequest struct {
	Title         *string          `json:"title,omitempty"`
	AuthorIDs     []string         `json:"author_ids,omitempty"`
	ISBN          *string          `json:"isbn,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Stock         *int             `json:"stock,omitempty"`
	Genre         *string          `json:"genre,omitempty"`
	Description   *string          `json:"description,omitempty"`
	PublishedDate *time.Time       `json:"published_date,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Required.Error("title cannot be empty")),
		),
		validation.Field(&r.ISBN,
			validation.When(r.ISBN != nil, validation.Required.Error("isbn cannot be empty")),
		),
		validation.Field(&r.Price,
			validation.When(r.Price != nil, validation.By(nonNegativePricePtr)),
		),
		validation.Field(&r.Stock,
			validation.When(r.Stock != nil, validation.Min(0).Error("stock cannot be negative")),
		),
		validation.Field(&r.Genre,
			validation.When(r.Genre != nil, validation.Required.Error("genre cannot be empty")),
		),
	)
}

// UpdateStockRequest - PATCH /books/:id/stock
// Quantity is a signed delta applied to the current stock.
type UpdateStockRequest struct {
	Quantity *int `json:"quantity"`
}

func (r UpdateStockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.NotNil.Error("quantity is required")),
	)
}

func nonNegativePrice(value interface{}) error {
	price, _ := value.(decimal.Decimal)
	if price.IsNegative() {
		return validation.NewError("validation_price", "price cannot be negative")
	}
	return nil
}

func nonNegativePricePtr(value interface{}) error {
	price, _ := value.(*decimal.Decimal)
	if price != nil && price.IsNegative() {
		return validation.NewError("validation_price", "price cannot be negative")
	}
	return nil
}

// ToEntity converts the create request to a new Book entity. ID and
// timestamps are assigned by the store on insert.
func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:         r.Title,
		AuthorIDs:     pq.StringArray(r.AuthorIDs),
		ISBN:          r.ISBN,
		Price:         r.Price,
		Stock:         r.Stock,
		Genre:         r.Genre,
		Description:   r.Description,
		PublishedDate: r.PublishedDate,
	}
}

// ApplyToEntity applies the non-nil patch fields to an existing Book.
func (r *UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.AuthorIDs != nil {
		b.AuthorIDs = pq.StringArray(r.AuthorIDs)
	}
	if r.ISBN != nil {
		b.ISBN = *r.ISBN
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	if r.Stock != nil {
		b.Stock = *r.Stock
	}
	if r.Genre != nil {
		b.Genre = *r.Genre
	}
	if r.Description != nil {
		b.Description = r.Description
	}
	if r.PublishedDate != nil {
		b.PublishedDate = r.PublishedDate
	}
}
