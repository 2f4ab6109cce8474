package auth

import (
	"context"
	"testing"
	"time"

	"github.com/satram-seva/registration-api/internal/config"
	"github.com/satram-seva/registration-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testAuthHandler(t *testing.T) (*AuthHandler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.APIKey{})

	cfg := &config.Config{AdminPassword: "sri-ram-admin", JWTSecret: "test-secret"}
	return NewAuthHandler(cfg, db), db
}

func TestHandleLogin(t *testing.T) {
	handler, _ := testAuthHandler(t)

	t.Run("CorrectPassword", func(t *testing.T) {
		input := &LoginInput{}
		input.Body.Password = "sri-ram-admin"
		out, err := handler.HandleLogin(context.Background(), input)
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if out.SetCookie.Name != "auth_token" || out.SetCookie.Value == "" {
			t.Errorf("expected auth_token cookie, got %+v", out.SetCookie)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		input := &LoginInput{}
		input.Body.Password = "guess"
		if _, err := handler.HandleLogin(context.Background(), input); err == nil {
			t.Fatal("expected error for wrong password")
		}
	})

	t.Run("Unconfigured", func(t *testing.T) {
		h := &AuthHandler{cfg: &config.Config{JWTSecret: "x"}}
		input := &LoginInput{}
		input.Body.Password = ""
		if _, err := h.HandleLogin(context.Background(), input); err == nil {
			t.Fatal("expected error when no admin password is configured")
		}
	})
}

func TestAuthorize(t *testing.T) {
	handler, db := testAuthHandler(t)
	ctx := context.Background()

	t.Run("ValidCookie", func(t *testing.T) {
		token, err := handler.GenerateToken()
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}
		if err := handler.Authorize(ctx, AuthInput{Cookie: "auth_token=" + token}); err != nil {
			t.Errorf("expected authorized, got %v", err)
		}
	})

	t.Run("NoCredentials", func(t *testing.T) {
		if err := handler.Authorize(ctx, AuthInput{}); err == nil {
			t.Error("expected unauthorized")
		}
	})

	t.Run("BadToken", func(t *testing.T) {
		if err := handler.Authorize(ctx, AuthInput{Cookie: "auth_token=garbage"}); err == nil {
			t.Error("expected unauthorized for garbage token")
		}
	})

	t.Run("ValidAPIKey", func(t *testing.T) {
		db.Create(&models.APIKey{Key: "export-key", Name: "exports"})
		if err := handler.Authorize(ctx, AuthInput{APIKey: "export-key"}); err != nil {
			t.Errorf("expected authorized via API key, got %v", err)
		}

		var key models.APIKey
		db.Where("key = ?", "export-key").First(&key)
		if key.LastUsedAt == nil {
			t.Error("expected last_used_at to be touched")
		}
	})

	t.Run("ExpiredAPIKey", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		db.Create(&models.APIKey{Key: "old-key", Name: "old", ExpiresAt: &expired})
		if err := handler.Authorize(ctx, AuthInput{APIKey: "old-key"}); err == nil {
			t.Error("expected unauthorized for expired key")
		}
	})
}
