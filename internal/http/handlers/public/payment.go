package public

import (
	"errors"
	"net/http"

	"github.com/shopmono/shopmono/internal/http/response"
	"github.com/shopmono/shopmono/internal/service"

	"github.com/gin-gonic/gin"
)

// PayOrder handles POST /api/payments/orders/:orderId/pay.
func (h *Handler) PayOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}

	// An absent or malformed body is still a legitimate attempt with no
	// payment method; the gateway declines it.
	var req service.PayInput
	if err := c.ShouldBindJSON(&req); err != nil {
		req = service.PayInput{}
	}

	result, err := h.PaymentService.Pay(c.Request.Context(), uid, orderID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFound(c, "order not found")
		case errors.Is(err, service.ErrOrderNotPending):
			response.BadRequest(c, "order is not pending")
		default:
			response.Internal(c, "payment failed")
		}
		return
	}

	if result.Declined {
		// Compensation already committed: the order is CANCELLED and
		// its stock is back.
		response.ErrorWith(c, http.StatusBadRequest, "payment declined", gin.H{
			"reason": result.DeclineReason,
			"order":  result.Order,
		})
		return
	}
	response.Success(c, gin.H{
		"order":    result.Order,
		"declined": false,
	})
}
