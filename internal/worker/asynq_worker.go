package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopmono/shopmono/internal/logger"
	"github.com/shopmono/shopmono/internal/provider"
	"github.com/shopmono/shopmono/internal/queue"
	"github.com/shopmono/shopmono/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer processes queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register wires task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPaidEmail, c.handleOrderPaidEmail)
}

func (c *Consumer) handleOrderPaidEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_paid_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPaidEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_paid_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_paid_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_paid_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_paid_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_paid_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_paid_email_skip_empty_receiver", "order_id", order.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_paid_email_skip_email_service_nil", "order_id", order.ID)
		return nil
	}

	paidAt := ""
	if order.PaidAt != nil {
		paidAt = order.PaidAt.Format(time.RFC3339)
	}
	input := service.OrderPaidEmailInput{
		OrderID: order.ID,
		Total:   order.Total,
		PaidAt:  paidAt,
	}
	if err := c.EmailService.SendOrderPaidEmail(user.Email, input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) {
			logger.Debugw("worker_order_paid_email_skip_disabled", "order_id", order.ID)
			return nil
		}
		logger.Warnw("worker_order_paid_email_send_failed",
			"order_id", order.ID,
			"receiver_email", user.Email,
			"error", err,
		)
		return err
	}
	return nil
}
