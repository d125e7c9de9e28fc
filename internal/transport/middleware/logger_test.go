package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/preconsultation-backend/pkg/ctxutil"
)

// logRequest serves req through Logger and returns the decoded log record,
// or nil when nothing was logged at info level.
func logRequest(t *testing.T, req *http.Request, status int, body string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if buf.Len() == 0 {
		return nil
	}
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestLogger_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	m := logRequest(t, req, http.StatusOK, `{"items":[]}`)

	require.NotNil(t, m)
	assert.Equal(t, "http.request", m["msg"])
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, "GET", m["method"])
	assert.Equal(t, "/api/v1/services", m["path"])
	assert.EqualValues(t, 200, m["status"])
	assert.EqualValues(t, len(`{"items":[]}`), m["bytes"])
	assert.Contains(t, m, "duration")
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{http.StatusCreated, "INFO"},
		{http.StatusUnprocessableEntity, "WARN"},
		{http.StatusConflict, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/pre-consultations", nil)
		m := logRequest(t, req, tt.status, "")

		require.NotNil(t, m)
		assert.Equal(t, tt.want, m["level"], "status %d", tt.status)
	}
}

func TestLogger_ProbesAtDebug(t *testing.T) {
	t.Parallel()

	assert.Nil(t, logRequest(t, httptest.NewRequest(http.MethodGet, "/live", nil), http.StatusOK, "ok"))

	m := logRequest(t, httptest.NewRequest(http.MethodGet, "/ready", nil), http.StatusServiceUnavailable, "")
	require.NotNil(t, m, "a failing probe is still logged")
	assert.Equal(t, "ERROR", m["level"])
}

func TestLogger_IncludesRequestIDAndCaller(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/pre-consultations/x/assignment", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "req-123")
	ctx = ctxutil.WithIdentity(ctx, ctxutil.Identity{UserID: "cmo-7", Role: "CMO", Source: "USER"})

	m := logRequest(t, req.WithContext(ctx), http.StatusOK, "")

	require.NotNil(t, m)
	assert.Equal(t, "req-123", m["request_id"])
	assert.Equal(t, "cmo-7", m["caller_id"])
	assert.Equal(t, "CMO", m["caller_role"])
	assert.Equal(t, "USER", m["caller_source"])
}
