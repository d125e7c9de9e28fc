package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/preconsultation-backend/pkg/ctxutil"
)

// probePaths are polled by the orchestrator; they are logged at debug level.
var probePaths = map[string]bool{"/live": true, "/ready": true}

// Logger writes one "http.request" record per request. 5xx responses are
// logged at ERROR, 4xx at WARN. The caller is included when Auth ran first.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if id, ok := ctxutil.IdentityFromCtx(r.Context()); ok {
				attrs = append(attrs,
					slog.String("caller_id", id.UserID),
					slog.String("caller_role", id.Role),
					slog.String("caller_source", id.Source),
				)
			}

			logger.LogAttrs(r.Context(), levelFor(r.URL.Path, sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case probePaths[path]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
	sent    bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.sent {
		w.status = code
		w.sent = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.sent = true
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
