package main

import (
	"github.com/shopmono/shopmono/internal/config"
	"github.com/shopmono/shopmono/internal/logger"
	"github.com/shopmono/shopmono/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// Connect database
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// Auto migrate
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// Demo catalog
	products := []models.Product{
		{
			Title:       "Wireless Bluetooth Earphones",
			Description: "High quality sound, long battery life, comfortable to wear.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			Stock:       120,
		},
		{
			Title:       "Smart Watch",
			Description: "Heart rate monitoring, sleep tracking, 7-day battery.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.00)),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800",
			Stock:       60,
		},
		{
			Title:       "Mechanical Keyboard",
			Description: "Hot-swappable switches with RGB backlight.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(129.50)),
			Image:       "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?w=800",
			Stock:       45,
		},
		{
			Title:       "Stainless Steel Water Bottle",
			Description: "Keeps drinks cold for 24 hours or hot for 12.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(24.90)),
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800",
			Stock:       300,
		},
		{
			Title:       "USB-C Charging Cable",
			Description: "Braided 2m cable, 100W power delivery.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(12.99)),
			Image:       "https://images.unsplash.com/photo-1583863788434-e58a36330cf0?w=800",
			Stock:       500,
		},
		{
			Title:       "Laptop Stand",
			Description: "Adjustable aluminum stand for 11-17 inch laptops.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(39.00)),
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=800",
			Stock:       80,
		},
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("title = ?", p.Title).First(&existing).Error; err != nil {
			// Create when missing
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Title, err)
			} else {
				stdLog.Printf("Created product: %s", p.Title)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Title)
		}
	}

	stdLog.Println("Seed completed.")
}
