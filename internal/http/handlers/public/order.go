package public

import (
	"errors"

	"github.com/shopmono/shopmono/internal/http/response"
	"github.com/shopmono/shopmono/internal/service"

	"github.com/gin-gonic/gin"
)

// Checkout handles POST /api/orders/checkout.
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.Checkout(uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			response.BadRequest(c, "cart is empty")
		case errors.Is(err, service.ErrInsufficientStock):
			response.BadRequest(c, "insufficient stock")
		case errors.Is(err, service.ErrProductNotFound):
			response.NotFound(c, "product not found")
		default:
			response.Internal(c, "checkout failed")
		}
		return
	}
	response.Created(c, order)
}

// ListOrders handles GET /api/orders.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orders, err := h.OrderService.List(uid)
	if err != nil {
		response.Internal(c, "failed to list orders")
		return
	}
	response.Success(c, orders)
}

// GetOrder handles GET /api/orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.Get(uid, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		response.Internal(c, "failed to load order")
		return
	}
	response.Success(c, order)
}
