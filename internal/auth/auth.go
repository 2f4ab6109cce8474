package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/satram-seva/registration-api/internal/config"
	"github.com/satram-seva/registration-api/internal/models"
	"gorm.io/gorm"
)

const TokenDuration = 24 * time.Hour

// AuthHandler exchanges the admin shared secret for a JWT cookie and
// checks that cookie (or an API key) on protected operations. A single
// static password is the whole identity model here; it is a known weak
// point of the product, not something this layer pretends to harden.
type AuthHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{cfg: cfg, db: db}
}

// AuthInput is embedded by protected handler inputs.
type AuthInput struct {
	Cookie string `header:"Cookie"`
	APIKey string `header:"X-API-Key"`
}

type LoginInput struct {
	Body struct {
		Password string `json:"password" required:"true" doc:"Admin shared secret"`
	}
}

type LoginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if h.cfg.AdminPassword == "" {
		return nil, huma.Error503ServiceUnavailable("Admin access is not configured")
	}
	if input.Body.Password != h.cfg.AdminPassword {
		return nil, huma.Error401Unauthorized("Invalid password")
	}

	token, err := h.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	out := &LoginOutput{
		SetCookie: http.Cookie{
			Name:     "auth_token",
			Value:    token,
			Expires:  time.Now().Add(TokenDuration),
			HttpOnly: true,
			Path:     "/",
		},
	}
	out.Body.Message = "Admin access granted"
	return out, nil
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize accepts either a valid API key header or a valid admin JWT
// cookie. Returns a huma 401 error otherwise.
func (h *AuthHandler) Authorize(ctx context.Context, input AuthInput) error {
	if input.APIKey != "" {
		var keyModel models.APIKey
		if err := h.db.WithContext(ctx).Where("key = ?", input.APIKey).First(&keyModel).Error; err == nil {
			if keyModel.ExpiresAt != nil && time.Now().After(*keyModel.ExpiresAt) {
				return huma.Error401Unauthorized("API key expired")
			}
			h.db.Model(&keyModel).Update("last_used_at", time.Now())
			return nil
		}
	}

	if _, err := h.validateCookie(input.Cookie); err != nil {
		return huma.Error401Unauthorized("Admin access required")
	}
	return nil
}

// validateCookie extracts and verifies the auth_token cookie from a raw
// Cookie header. Returns the token claims on success.
func (h *AuthHandler) validateCookie(cookieHeader string) (jwt.MapClaims, error) {
	req := http.Request{Header: http.Header{"Cookie": []string{cookieHeader}}}
	cookie, err := req.Cookie("auth_token")
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
