package model

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrISBNExists        = errors.New("book with this ISBN already exists")
	ErrInvalidAuthorRef  = errors.New("referenced author does not exist")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ToHTTPStatus maps a service error to the status code the boundary returns.
// Duplicate ISBNs map to 409 while stock underflow maps to 400; the split is
// deliberate and covered by the handler tests.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrISBNExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidAuthorRef), errors.Is(err, ErrInsufficientStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
