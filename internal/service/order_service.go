package service

import (
	"fmt"

	"github.com/shopmono/shopmono/internal/constants"
	"github.com/shopmono/shopmono/internal/logger"
	"github.com/shopmono/shopmono/internal/models"
	"github.com/shopmono/shopmono/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService handles checkout and order queries.
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, cartRepo: cartRepo, productRepo: productRepo}
}

// Checkout converts the user's cart into a PENDING order. The whole
// conversion runs in one transaction: every line must pass the guarded
// stock decrement or nothing is written. Order items snapshot the
// current catalog title and price so later edits never change history.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	var created *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		cart, err := cartRepo.GetOrCreateByUser(userID)
		if err != nil {
			return err
		}
		items, err := cartRepo.ListItems(cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrProductNotFound
			}

			affected, err := productRepo.DecrementStock(product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("%w: product %d", ErrInsufficientStock, product.ID)
			}

			lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(lineTotal)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:  product.ID,
				Title:      product.Title,
				UnitPrice:  product.Price,
				Quantity:   item.Quantity,
				TotalPrice: models.NewMoneyFromDecimal(lineTotal),
			})
		}

		order := &models.Order{
			UserID: userID,
			Status: constants.OrderStatusPending,
			Total:  models.NewMoneyFromDecimal(total),
			Items:  orderItems,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		// The cart row itself survives; only its lines are consumed.
		if err := cartRepo.ClearItems(cart.ID); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_checkout_created",
		"order_id", created.ID,
		"user_id", userID,
		"total", created.Total.String(),
		"items", len(created.Items),
	)
	return created, nil
}

// Get returns one of the user's orders with its items.
func (s *OrderService) Get(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns the user's orders, newest first.
func (s *OrderService) List(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}
