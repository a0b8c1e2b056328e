package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookstore-inventory/internal/domains/author/model"
	"bookstore-inventory/internal/domains/author/service"
	"bookstore-inventory/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
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

// List - GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if authors == nil {
		authors = []model.Author{}
	}
	c.JSON(http.StatusOK, authors)
}

// GetByID - GET /authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrAuthorNotFound.Error())
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Create - POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update - PUT /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrAuthorNotFound.Error())
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete - DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrAuthorNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Message(c, "author deleted successfully")
}

// Search - GET /authors/search/:query
func (h *AuthorHandler) Search(c *gin.Context) {
	authors, err := h.service.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if authors == nil {
		authors = []model.Author{}
	}
	c.JSON(http.StatusOK, authors)
}

// GetByNationality - GET /authors/nationality/:nationality
func (h *AuthorHandler) GetByNationality(c *gin.Context) {
	authors, err := h.service.GetByNationality(c.Request.Context(), c.Param("nationality"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if authors == nil {
		authors = []model.Author{}
	}
	c.JSON(http.StatusOK, authors)
}

// GetByName - GET /authors/name/:name
func (h *AuthorHandler) GetByName(c *gin.Context) {
	authors, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if authors == nil {
		authors = []model.Author{}
	}
	c.JSON(http.StatusOK, authors)
}
