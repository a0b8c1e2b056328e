package model

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound   = errors.New("author not found")
	ErrAuthorNameExists = errors.New("author with this full name already exists")
	ErrAuthorHasBooks   = errors.New("cannot delete author with linked books")
)

// ToHTTPStatus maps a service error to the status code the boundary returns.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorNameExists), errors.Is(err, ErrAuthorHasBooks):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
