package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrms/internal/auth"
	"hrms/internal/domain/authz"
	"hrms/internal/requestctx"
	"hrms/internal/transport/http/api"
)

// Auth parses a bearer token, if present, and stores the resulting principal
// on the context. Requests without a valid token pass through anonymous;
// protected routes reject them via RequireAuth or the decision core.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestctx.WithPrincipal(r.Context(), claims.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipal(ctx context.Context) (authz.Principal, bool) {
	return requestctx.GetPrincipal(ctx)
}

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPrincipal(r.Context()); !ok {
			api.FailKind(w, authz.ErrorUnauthenticated, "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireModule applies the coarse feature-area gate at the route level. It
// guards module-wide surfaces that have no per-record decision of their own,
// such as reports; self-service routes must not use it, since owners reach
// their own records regardless of the module gate.
func RequireModule(module authz.Module) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := GetPrincipal(r.Context())
			if !ok {
				api.FailKind(w, authz.ErrorUnauthenticated, "authentication required", GetRequestID(r.Context()))
				return
			}
			if !authz.CanAccessModule(p.Role, module) {
				api.FailKind(w, authz.ErrorForbidden, "module access denied", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
