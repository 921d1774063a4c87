package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopmono/shopmono/internal/models"
	"github.com/shopmono/shopmono/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func seedTestProduct(t *testing.T, db *gorm.DB, title string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Title: title,
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Stock: stock,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartGetCreatesCartLazily(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	view, err := svc.Get(7)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if view.Cart == nil || view.Cart.UserID != 7 {
		t.Fatalf("unexpected cart: %+v", view.Cart)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(view.Items))
	}

	// A second fetch reuses the same row.
	again, err := svc.Get(7)
	if err != nil {
		t.Fatalf("get cart again failed: %v", err)
	}
	if again.Cart.ID != view.Cart.ID {
		t.Fatalf("expected cart %d, got %d", view.Cart.ID, again.Cart.ID)
	}
	var count int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", 7).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 cart row, got %d", count)
	}
}

func TestCartAddItemIncrementsExistingLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedTestProduct(t, db, "Keyboard", 59.90, 10)

	if _, err := svc.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	view, err := svc.AddItem(1, product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", view.Items[0].Quantity)
	}
	if view.Items[0].Product == nil || view.Items[0].Product.Title != "Keyboard" {
		t.Fatalf("expected preloaded product, got %+v", view.Items[0].Product)
	}
}

func TestCartAddItemValidation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedTestProduct(t, db, "Mouse", 19.90, 5)

	if _, err := svc.AddItem(1, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(1, 9999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.AddItem(1, product.ID, 6); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCartUpdateItem(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedTestProduct(t, db, "Bottle", 24.90, 50)

	if _, err := svc.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	view, err := svc.UpdateItem(1, product.ID, 9)
	if err != nil {
		t.Fatalf("update item failed: %v", err)
	}
	if view.Items[0].Quantity != 9 {
		t.Fatalf("expected quantity 9, got %d", view.Items[0].Quantity)
	}

	if _, err := svc.UpdateItem(1, product.ID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.UpdateItem(1, 9999, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartRemoveItem(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedTestProduct(t, db, "Cable", 12.99, 100)

	if _, err := svc.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	view, err := svc.RemoveItem(1, product.ID)
	if err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart after remove, got %d items", len(view.Items))
	}

	if _, err := svc.RemoveItem(1, product.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}
