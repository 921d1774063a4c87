package service

import (
	"context"
	"strconv"
	"time"

	"github.com/shopmono/shopmono/internal/constants"
	"github.com/shopmono/shopmono/internal/logger"
	"github.com/shopmono/shopmono/internal/models"
	"github.com/shopmono/shopmono/internal/payment/mockpay"
	"github.com/shopmono/shopmono/internal/queue"
	"github.com/shopmono/shopmono/internal/repository"

	"gorm.io/gorm"
)

// PaymentService drives the payment attempt for a pending order.
type PaymentService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	gateway     *mockpay.Gateway
	queueClient *queue.Client
}

// NewPaymentService creates the payment service.
func NewPaymentService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, gateway *mockpay.Gateway, queueClient *queue.Client) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gateway:     gateway,
		queueClient: queueClient,
	}
}

// PayInput carries the payment attempt parameters.
type PayInput struct {
	PaymentMethodID string `json:"paymentMethodId"`
	SimulateFailure bool   `json:"shouldFail"`
}

// PayResult is the outcome of a payment attempt. A declined charge is
// a normal result, not an error: the order lands in CANCELLED and the
// decline reason is carried alongside.
type PayResult struct {
	Order         *models.Order
	Declined      bool
	DeclineReason string
}

// Pay charges a pending order through the gateway. On approval the
// order becomes PAID and a confirmation email task is enqueued after
// commit. On decline the order becomes CANCELLED and every item's
// stock is restored in the same transaction.
func (s *PaymentService) Pay(ctx context.Context, userID, orderID uint, input PayInput) (*PayResult, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderNotPending
	}

	charge, err := s.gateway.Charge(ctx, mockpay.ChargeInput{
		OrderNo:         formatOrderNo(order.ID),
		Amount:          order.Total.String(),
		PaymentMethodID: input.PaymentMethodID,
		SimulateFailure: input.SimulateFailure,
	})
	if err != nil {
		return nil, err
	}

	if charge.Approved {
		return s.settleApproved(userID, order, charge.TransactionID)
	}
	return s.settleDeclined(userID, order, charge.Reason)
}

func (s *PaymentService) settleApproved(userID uint, order *models.Order, transactionID string) (*PayResult, error) {
	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).MarkPaid(order.ID, now)
	})
	if err != nil {
		logger.Errorw("order_mark_paid_failed", "order_id", order.ID, "error", err)
		return nil, err
	}

	order.Status = constants.OrderStatusPaid
	order.PaidAt = &now
	logger.Infow("order_paid",
		"order_id", order.ID,
		"user_id", userID,
		"total", order.Total.String(),
		"transaction_id", transactionID,
	)

	// Post-commit notification; a queue failure never unpays the order.
	if err := s.queueClient.EnqueueOrderPaidEmail(queue.OrderPaidEmailPayload{
		OrderID: order.ID,
		UserID:  userID,
	}); err != nil {
		logger.Warnw("order_enqueue_paid_email_failed", "order_id", order.ID, "error", err)
	}

	return &PayResult{Order: order}, nil
}

func (s *PaymentService) settleDeclined(userID uint, order *models.Order, reason string) (*PayResult, error) {
	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		if err := orderRepo.MarkCancelled(order.ID, now); err != nil {
			return err
		}
		for _, item := range order.Items {
			if _, err := productRepo.RestoreStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Nothing committed; the order stays PENDING and may be retried.
		logger.Errorw("order_compensation_failed", "order_id", order.ID, "error", err)
		return nil, err
	}

	order.Status = constants.OrderStatusCancelled
	order.CanceledAt = &now
	logger.Infow("order_payment_declined",
		"order_id", order.ID,
		"user_id", userID,
		"reason", reason,
	)
	return &PayResult{Order: order, Declined: true, DeclineReason: reason}, nil
}

func formatOrderNo(orderID uint) string {
	return time.Now().Format("20060102") + "-" + strconv.FormatUint(uint64(orderID), 10)
}
