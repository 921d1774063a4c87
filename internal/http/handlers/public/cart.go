package public

import (
	"errors"

	"github.com/shopmono/shopmono/internal/http/response"
	"github.com/shopmono/shopmono/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest carries the add/update payload.
type CartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart handles GET /api/cart.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	view, err := h.CartService.Get(uid)
	if err != nil {
		response.Internal(c, "failed to load cart")
		return
	}
	response.Success(c, view)
}

// AddCartItem handles POST /api/cart/items.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "productId and quantity are required")
		return
	}

	view, err := h.CartService.AddItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCartItem handles PUT /api/cart/items/:productId.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "quantity is required")
		return
	}

	view, err := h.CartService.UpdateItem(uid, productID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// RemoveCartItem handles DELETE /api/cart/items/:productId.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	view, err := h.CartService.RemoveItem(uid, productID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		response.BadRequest(c, "quantity must be positive")
	case errors.Is(err, service.ErrInsufficientStock):
		response.BadRequest(c, "insufficient stock")
	case errors.Is(err, service.ErrProductNotFound):
		response.NotFound(c, "product not found")
	case errors.Is(err, service.ErrCartItemNotFound):
		response.NotFound(c, "cart item not found")
	default:
		response.Internal(c, "cart operation failed")
	}
}
