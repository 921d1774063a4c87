package queue

import (
	"encoding/json"

	"github.com/shopmono/shopmono/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPaidEmail notifies the buyer after a successful payment.
	TaskOrderPaidEmail = constants.TaskOrderPaidEmail
)

// OrderPaidEmailPayload carries the order reference for the paid-email task.
type OrderPaidEmailPayload struct {
	OrderID uint `json:"order_id"`
	UserID  uint `json:"user_id"`
}

// NewOrderPaidEmailTask creates the paid-email task.
func NewOrderPaidEmailTask(payload OrderPaidEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPaidEmail, body), nil
}
