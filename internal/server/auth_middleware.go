package server

import (
	"net/http"
	"strings"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/server/authctx"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

// AuthMiddleware validates the bearer token and attaches the identity to the
// request context. Only access tokens pass; refresh tokens are rejected here.
func AuthMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}
			claims, err := auth.Parse(token)
			if err != nil || claims.TokenType != "access" {
				unauthorized(w)
				return
			}
			ctx := authctx.With(r.Context(), authctx.Identity{
				UserID: claims.UserID,
				Name:   claims.Name,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to the listed roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := authctx.Current(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if _, ok := allowed[id.Role]; !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"forbidden"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
