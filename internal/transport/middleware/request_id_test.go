package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/preconsultation-backend/pkg/ctxutil"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveRequestID(t, "  wf-run-42  ")

	assert.Equal(t, "wf-run-42", ctxID)
	assert.Equal(t, "wf-run-42", headerID)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveRequestID(t, "")

	_, err := uuid.Parse(ctxID)
	require.NoError(t, err)
	assert.Equal(t, ctxID, headerID)
}

func TestRequestID_ReplacesOversized(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serveRequestID(t, strings.Repeat("x", maxRequestIDLen+1))

	_, err := uuid.Parse(ctxID)
	require.NoError(t, err)
	assert.Equal(t, ctxID, headerID)
}
