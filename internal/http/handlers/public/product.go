package public

import (
	"errors"
	"strconv"

	"github.com/shopmono/shopmono/internal/http/response"
	"github.com/shopmono/shopmono/internal/repository"
	"github.com/shopmono/shopmono/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultProductPageSize = 20

// ListProducts handles GET /api/products.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultProductPageSize)))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultProductPageSize
	}

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		response.Internal(c, "failed to list products")
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProduct handles GET /api/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.Internal(c, "failed to load product")
		return
	}
	response.Success(c, product)
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
