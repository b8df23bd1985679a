package middleware

import (
	"net/http"
	"strings"

	"github.com/alumni-sante/sondage-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RequireAuth guards the data endpoints: a missing bearer token is 401, a
// token that fails validation is 403. On success the member's email is
// stored in the request context.
func RequireAuth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			email, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusForbidden)
				return
			}
			ctx := ctxutil.WithUserEmail(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
