package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/trendspotter/insight-engine/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyClient contextKey = "client"
)

// AuthMiddleware valida o token Bearer das rotas da API de relatórios.
// Quando nenhum segredo está configurado a autenticação fica desabilitada
// (uso local do pipeline).
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClient, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
