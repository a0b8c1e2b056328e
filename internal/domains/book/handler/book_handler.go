package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookstore-inventory/internal/domains/book/model"
	"bookstore-inventory/internal/domains/book/service"
	"bookstore-inventory/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// respondError translates service errors to the boundary contract:
// validation failures map to 400, domain sentinels via ToHTTPStatus.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	var verr validation.Error
	if errors.As(err, &verrs) || errors.As(err, &verr) {
		response.BadRequest(c, err.Error())
		return
	}
	response.Error(c, model.ToHTTPStatus(err), err.Error())
}

// List - GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if books == nil {
		books = []model.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// GetByID - GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrBookNotFound.Error())
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Create - POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Update - PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrBookNotFound.Error())
		return
	}

	var req model.UpdateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Delete - DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrBookNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Message(c, "book deleted successfully")
}

// Search - GET /books/search/:query
func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.service.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if books == nil {
		books = []model.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// GetByGenre - GET /books/genre/:genre
func (h *BookHandler) GetByGenre(c *gin.Context) {
	books, err := h.service.GetByGenre(c.Request.Context(), c.Param("genre"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if books == nil {
		books = []model.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// GetByAuthorName - GET /books/author/:author
func (h *BookHandler) GetByAuthorName(c *gin.Context) {
	books, err := h.service.GetByAuthorName(c.Request.Context(), c.Param("author"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if books == nil {
		books = []model.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// UpdateStock - PATCH /books/:id/stock
func (h *BookHandler) UpdateStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrBookNotFound.Error())
		return
	}

	var req model.UpdateStockRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.UpdateStock(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListWithAuthors - GET /books-with-authors
func (h *BookHandler) ListWithAuthors(c *gin.Context) {
	books, err := h.service.ListWithAuthors(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if books == nil {
		books = []model.BookWithAuthors{}
	}
	c.JSON(http.StatusOK, books)
}

// GetWithAuthors - GET /books-with-authors/:id
func (h *BookHandler) GetWithAuthors(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrBookNotFound.Error())
		return
	}

	b, err := h.service.GetWithAuthors(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
