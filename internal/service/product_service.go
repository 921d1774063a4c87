package service

import (
	"strings"

	"github.com/shopmono/shopmono/internal/models"
	"github.com/shopmono/shopmono/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService handles catalog reads and admin writes.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput carries create/update fields.
type ProductInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Stock       int    `json:"stock"`
}

// List returns a catalog page.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get returns one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a catalog entry.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}
	if input.Stock < 0 {
		return nil, ErrInvalidStock
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	product := &models.Product{
		Title:       title,
		Description: input.Description,
		Price:       models.NewMoneyFromDecimal(price),
		Image:       strings.TrimSpace(input.Image),
		Stock:       input.Stock,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites a catalog entry.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}
	if input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	product.Title = title
	product.Description = input.Description
	product.Price = models.NewMoneyFromDecimal(price)
	product.Image = strings.TrimSpace(input.Image)
	product.Stock = input.Stock
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a catalog entry.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if price.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}
