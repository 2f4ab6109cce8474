package auth

import (
	"net/http"
	"time"

	"github.com/satram-seva/registration-api/internal/models"
)

// AdminMiddleware protects plain HTTP routes (the CSV download) the same
// way Authorize protects huma operations: API key header first, JWT
// cookie as fallback, with a sliding session refresh on the cookie path.
func (h *AuthHandler) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey != "" {
			var keyModel models.APIKey
			if err := h.db.Where("key = ?", apiKey).First(&keyModel).Error; err == nil {
				if keyModel.ExpiresAt != nil && time.Now().After(*keyModel.ExpiresAt) {
					http.Error(w, "Unauthorized: API key expired", http.StatusUnauthorized)
					return
				}
				h.db.Model(&keyModel).Update("last_used_at", time.Now())
				next.ServeHTTP(w, r)
				return
			}
		}

		claims, err := h.validateCookie(r.Header.Get("Cookie"))
		if err != nil {
			http.Error(w, "Unauthorized: admin access required", http.StatusUnauthorized)
			return
		}

		// Sliding session: refresh the cookie once it is more than halfway
		// through its lifetime.
		if exp, ok := claims["exp"].(float64); ok {
			remaining := time.Until(time.Unix(int64(exp), 0))
			if remaining < TokenDuration/2 {
				if newToken, err := h.GenerateToken(); err == nil {
					http.SetCookie(w, &http.Cookie{
						Name:     "auth_token",
						Value:    newToken,
						Expires:  time.Now().Add(TokenDuration),
						HttpOnly: true,
						Path:     "/",
					})
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
