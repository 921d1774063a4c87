package admin

import (
	"errors"
	"strconv"

	"github.com/shopmono/shopmono/internal/http/response"
	"github.com/shopmono/shopmono/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProduct handles POST /api/products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid product payload")
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct handles PUT /api/products/:id.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid product payload")
		return
	}

	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		response.BadRequest(c, "title is required")
	case errors.Is(err, service.ErrInvalidPrice):
		response.BadRequest(c, "invalid price")
	case errors.Is(err, service.ErrInvalidStock):
		response.BadRequest(c, "invalid stock")
	case errors.Is(err, service.ErrProductNotFound):
		response.NotFound(c, "product not found")
	default:
		response.Internal(c, "product operation failed")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
