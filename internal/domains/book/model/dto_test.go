package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateBookRequest {
	return CreateBookRequest{
		Title:     "Nineteen Eighty-Four",
		AuthorIDs: []string{"0b54ad6f-37b6-47dd-b156-3eb3e0c07a9e"},
		ISBN:      "978-0-452-28423-4",
		Price:     decimal.NewFromFloat(9.99),
		Stock:     5,
		Genre:     "Dystopian",
	}
}

func TestCreateBookRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validCreate().Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := CreateBookRequest{}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "isbn")
		assert.Contains(t, err.Error(), "genre")
		assert.Contains(t, err.Error(), "author_ids")
	})

	t.Run("negative price", func(t *testing.T) {
		req := validCreate()
		req.Price = decimal.NewFromFloat(-1)
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("negative stock", func(t *testing.T) {
		req := validCreate()
		req.Stock = -1
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stock")
	})

	t.Run("zero price and zero stock allowed", func(t *testing.T) {
		req := validCreate()
		req.Price = decimal.Zero
		req.Stock = 0
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateBookRequest_Validate(t *testing.T) {
	t.Run("absent fields are fine", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{}.Validate())
	})

	t.Run("explicit empty title rejected", func(t *testing.T) {
		empty := ""
		assert.Error(t, UpdateBookRequest{Title: &empty}.Validate())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		neg := decimal.NewFromFloat(-0.01)
		assert.Error(t, UpdateBookRequest{Price: &neg}.Validate())
	})
}

func TestUpdateStockRequest_Validate(t *testing.T) {
	t.Run("quantity required", func(t *testing.T) {
		assert.Error(t, UpdateStockRequest{}.Validate())
	})

	t.Run("negative delta is valid input", func(t *testing.T) {
		q := -5
		assert.NoError(t, UpdateStockRequest{Quantity: &q}.Validate())
	})
}

func TestUpdateBookRequest_ApplyToEntity(t *testing.T) {
	current := Book{
		Title: "Animal Farm",
		ISBN:  "978-0-452-28424-1",
		Genre: "Satire",
		Stock: 4,
		Price: decimal.NewFromFloat(7.50),
	}

	t.Run("merge patch", func(t *testing.T) {
		b := current
		stock := 9
		(&UpdateBookRequest{Stock: &stock}).ApplyToEntity(&b)

		assert.Equal(t, 9, b.Stock)
		assert.Equal(t, "Animal Farm", b.Title)
		assert.True(t, b.Price.Equal(decimal.NewFromFloat(7.50)))
	})

	t.Run("author ids replace the whole list", func(t *testing.T) {
		b := current
		b.AuthorIDs = []string{"old"}
		(&UpdateBookRequest{AuthorIDs: []string{"new-1", "new-2"}}).ApplyToEntity(&b)
		assert.Equal(t, []string{"new-1", "new-2"}, []string(b.AuthorIDs))
	})
}
