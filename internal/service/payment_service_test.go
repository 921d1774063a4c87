package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopmono/shopmono/internal/constants"
	"github.com/shopmono/shopmono/internal/models"
	"github.com/shopmono/shopmono/internal/payment/mockpay"
	"github.com/shopmono/shopmono/internal/queue"
	"github.com/shopmono/shopmono/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPaymentServiceTest(t *testing.T) (*PaymentService, *OrderService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:payment_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	gateway := mockpay.New(mockpay.Config{SimulatedLatencyMS: 1})
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("build queue client failed: %v", err)
	}

	paySvc := NewPaymentService(orderRepo, productRepo, gateway, queueClient)
	orderSvc := NewOrderService(orderRepo, cartRepo, productRepo)
	cartSvc := NewCartService(cartRepo, productRepo)
	return paySvc, orderSvc, cartSvc, db
}

func checkoutTestOrder(t *testing.T, orderSvc *OrderService, cartSvc *CartService, db *gorm.DB, userID uint, quantity int) (*models.Order, models.Product) {
	t.Helper()
	product := seedTestProduct(t, db, "Earphones", 99.99, 10)
	if _, err := cartSvc.AddItem(userID, product.ID, quantity); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := orderSvc.Checkout(userID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	return order, product
}

func TestPayApprovedMarksOrderPaid(t *testing.T) {
	paySvc, orderSvc, cartSvc, db := setupPaymentServiceTest(t)
	order, _ := checkoutTestOrder(t, orderSvc, cartSvc, db, 1, 2)

	result, err := paySvc.Pay(context.Background(), 1, order.ID, PayInput{PaymentMethodID: "pm_test_visa"})
	if err != nil {
		t.Fatalf("pay failed: %v", err)
	}
	if result.Declined {
		t.Fatalf("expected approval, got decline: %s", result.DeclineReason)
	}
	if result.Order.Status != constants.OrderStatusPaid {
		t.Fatalf("expected status %s, got %s", constants.OrderStatusPaid, result.Order.Status)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusPaid {
		t.Fatalf("expected stored status %s, got %s", constants.OrderStatusPaid, stored.Status)
	}
	if stored.PaidAt == nil {
		t.Fatalf("expected paid_at to be set")
	}
}

func TestPayDeclinedCancelsAndRestoresStock(t *testing.T) {
	paySvc, orderSvc, cartSvc, db := setupPaymentServiceTest(t)
	order, product := checkoutTestOrder(t, orderSvc, cartSvc, db, 1, 3)

	var afterCheckout models.Product
	if err := db.First(&afterCheckout, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if afterCheckout.Stock != 7 {
		t.Fatalf("expected stock 7 after checkout, got %d", afterCheckout.Stock)
	}

	result, err := paySvc.Pay(context.Background(), 1, order.ID, PayInput{
		PaymentMethodID: "pm_test_visa",
		SimulateFailure: true,
	})
	if err != nil {
		t.Fatalf("pay failed: %v", err)
	}
	if !result.Declined || result.DeclineReason != mockpay.ReasonSimulatedFailure {
		t.Fatalf("expected simulated decline, got %+v", result)
	}
	if result.Order.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected status %s, got %s", constants.OrderStatusCancelled, result.Order.Status)
	}

	// Cancellation and restock commit together.
	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected stored status %s, got %s", constants.OrderStatusCancelled, stored.Status)
	}
	if stored.CanceledAt == nil {
		t.Fatalf("expected canceled_at to be set")
	}
	var restored models.Product
	if err := db.First(&restored, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if restored.Stock != 10 {
		t.Fatalf("expected stock restored to 10, got %d", restored.Stock)
	}
}

func TestPayDeclinedOnMissingPaymentMethod(t *testing.T) {
	paySvc, orderSvc, cartSvc, db := setupPaymentServiceTest(t)
	order, _ := checkoutTestOrder(t, orderSvc, cartSvc, db, 1, 1)

	result, err := paySvc.Pay(context.Background(), 1, order.ID, PayInput{})
	if err != nil {
		t.Fatalf("pay failed: %v", err)
	}
	if !result.Declined || result.DeclineReason != mockpay.ReasonMissingMethod {
		t.Fatalf("expected missing-method decline, got %+v", result)
	}
	if result.Order.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected status %s, got %s", constants.OrderStatusCancelled, result.Order.Status)
	}
}

func TestPayRejectsNonPendingOrder(t *testing.T) {
	paySvc, orderSvc, cartSvc, db := setupPaymentServiceTest(t)
	order, _ := checkoutTestOrder(t, orderSvc, cartSvc, db, 1, 1)

	if _, err := paySvc.Pay(context.Background(), 1, order.ID, PayInput{PaymentMethodID: "pm_test_visa"}); err != nil {
		t.Fatalf("first pay failed: %v", err)
	}
	_, err := paySvc.Pay(context.Background(), 1, order.ID, PayInput{PaymentMethodID: "pm_test_visa"})
	if !errors.Is(err, ErrOrderNotPending) {
		t.Fatalf("expected ErrOrderNotPending, got %v", err)
	}
}

func TestPayIsUserScoped(t *testing.T) {
	paySvc, orderSvc, cartSvc, db := setupPaymentServiceTest(t)
	order, _ := checkoutTestOrder(t, orderSvc, cartSvc, db, 1, 1)

	if _, err := paySvc.Pay(context.Background(), 2, order.ID, PayInput{PaymentMethodID: "pm_test_visa"}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for another user, got %v", err)
	}
	if _, err := paySvc.Pay(context.Background(), 1, 9999, PayInput{PaymentMethodID: "pm_test_visa"}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got %v", err)
	}
}
