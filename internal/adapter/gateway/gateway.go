// Package gateway implements the HTTP clients for the external services the
// pre-consultation commands depend on: the case registry, the user directory
// and the notification service.
//
// Every client maps a 404 to domain.ErrNotFound and retries network errors
// and 5xx responses up to the configured retry count.
package gateway

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/preconsultation-backend/internal/config"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-ID"

func newClient(cfg config.GatewayConfig, name string, log *slog.Logger) *resty.Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || (resp != nil && resp.StatusCode() >= http.StatusInternalServerError)
		}).
		AddRetryHook(func(resp *resty.Response, err error) {
			reason := "network error"
			if err == nil && resp != nil {
				reason = fmt.Sprintf("status %d", resp.StatusCode())
			}
			log.Warn(name+" retry", slog.String("reason", reason))
		}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if id := ctxutil.RequestIDFromCtx(req.Context()); id != "" {
				req.SetHeader(requestIDHeader, id)
			}
			return nil
		})

	if cfg.RetryWait > 0 {
		c.SetRetryWaitTime(cfg.RetryWait).SetRetryMaxWaitTime(4 * cfg.RetryWait)
	}
	if cfg.Token != "" {
		c.SetAuthToken(cfg.Token)
	}
	return c
}

// checkResponse turns a transport error or a non-2xx status into an error.
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case resp.IsError():
		return fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode(), truncate(resp.String(), 200))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
