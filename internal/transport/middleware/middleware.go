// Package middleware provides the HTTP middleware of the REST transport:
// request ids, access logging, panic recovery, CORS, rate limiting and
// caller authentication.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Middleware is a function that wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind        string `json:"kind"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// writeError writes the same error envelope the REST handlers use.
func writeError(w http.ResponseWriter, status int, kind domain.ErrorKind, code, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: errorDetail{
		Kind:        kind.String(),
		Code:        code,
		Description: description,
	}})
}
