package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind        string       `json:"kind"`
	Code        string       `json:"code"`
	Description string       `json:"description"`
	Fields      []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err *domain.Error) int {
	switch err.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthorization:
		if errors.Is(err, domain.ErrUnauthorized) {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case domain.KindConcurrencyConflict:
		return http.StatusConflict
	case domain.KindDomainInvariant, domain.KindNoEligibleOfficer:
		return http.StatusUnprocessableEntity
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindExternalService:
		return http.StatusBadGateway
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as the error envelope. Internal errors keep their
// cause out of the response and in the log.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	de := domain.AsError(err)
	status := statusFor(de)

	body := errorBody{Kind: de.Kind.String(), Code: de.Code, Description: de.Description}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			body.Fields = append(body.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	}

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("kind", de.Kind.String()),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, status, errorResponse{Error: body})
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched
// when optional is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}
