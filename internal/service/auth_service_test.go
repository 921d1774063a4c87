package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopmono/shopmono/internal/config"
	"github.com/shopmono/shopmono/internal/constants"
	"github.com/shopmono/shopmono/internal/models"
	"github.com/shopmono/shopmono/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 1
	svc := NewAuthService(cfg, repository.NewUserRepository(db))
	return svc, db
}

func TestRegisterAssignsCustomerRole(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, token, expiresAt, err := svc.Register("buyer@example.com", "secret123", "Buyer One")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != constants.RoleCustomer {
		t.Fatalf("expected role %s, got %s", constants.RoleCustomer, user.Role)
	}
	if user.Name != "Buyer One" {
		t.Fatalf("expected name to be stored, got %q", user.Name)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected a future expiry, got %v", expiresAt)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterAdminDomainGetsAdminRole(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, _, _, err := svc.Register("boss@admin.com", "secret123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != constants.RoleAdmin {
		t.Fatalf("expected role %s, got %s", constants.RoleAdmin, user.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, _, _, err := svc.Register("dup@example.com", "secret123", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, _, err := svc.Register("dup@example.com", "another-pass", "")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, _, _, err := svc.Register("not-an-email", "secret123", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, _, _, err := svc.Register("short@example.com", "abc", ""); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	registered, _, _, err := svc.Register("login@example.com", "secret123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, _, err := svc.Login("login@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}

	if _, _, _, err := svc.Login("login@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", registered.ID).
		Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("login@example.com", "secret123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}
