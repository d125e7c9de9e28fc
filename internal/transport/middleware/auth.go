package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/preconsultation-backend/internal/auth"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Caller, error)
}

// Auth resolves the bearer token into the caller identity. Requests without
// a token pass through anonymously and are rejected by the service layer.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			caller, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, domain.KindAuthorization, domain.CodeUnauthorized, "invalid or expired token")
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), ctxutil.Identity{
				UserID: caller.UserID,
				Role:   string(caller.Role),
				Source: string(caller.Source),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
