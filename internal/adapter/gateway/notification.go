package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/preconsultation-backend/internal/config"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Notifications dispatches notifications and serves their templates.
type Notifications struct {
	http *resty.Client
	log  *slog.Logger
}

// NewNotifications creates a notification service client.
func NewNotifications(cfg config.GatewayConfig, logger *slog.Logger) *Notifications {
	log := logger.With("adapter", "notification")
	return &Notifications{
		http: newClient(cfg, "notification", log),
		log:  log,
	}
}

// Send hands req to the notification service and returns the notification id.
func (n *Notifications) Send(ctx context.Context, req domain.NotificationRequest) (string, error) {
	var body notificationResponse
	resp, err := n.http.R().
		SetContext(ctx).
		SetBody(notificationRequest{
			NotificationType: req.Type.String(),
			AggregateID:      req.AggregateID,
			CreatedBy:        req.CreatedBy,
			Description:      req.Description,
			Recipients:       req.Recipients,
			Subject:          req.Subject,
			Body:             req.Body,
			Variables:        req.Variables,
			ScheduledDate:    req.ScheduledDate.UTC(),
		}).
		SetResult(&body).
		Post("/notifications")
	if err := checkResponse("notification: send", resp, err); err != nil {
		n.log.ErrorContext(ctx, "send notification failed",
			slog.String("type", req.Type.String()),
			slog.String("aggregate_id", req.AggregateID),
			slog.String("error", err.Error()),
		)
		return "", err
	}
	if body.NotificationID == "" {
		return "", errors.New("notification: send: response carries no notification id")
	}

	n.log.InfoContext(ctx, "notification sent",
		slog.String("type", req.Type.String()),
		slog.String("notification_id", body.NotificationID),
	)
	return body.NotificationID, nil
}

// GetTemplate returns the template of type t. Returns domain.ErrNotFound on 404.
func (n *Notifications) GetTemplate(ctx context.Context, t domain.NotificationType) (*domain.NotificationTemplate, error) {
	var tpl domain.NotificationTemplate
	resp, err := n.http.R().
		SetContext(ctx).
		SetPathParam("type", t.String()).
		SetResult(&tpl).
		Get("/templates/{type}")
	if err := checkResponse("notification: get template", resp, err); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			n.log.ErrorContext(ctx, "get template failed", slog.String("type", t.String()), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if tpl.Type == "" {
		tpl.Type = t
	}
	if tpl.Type != t {
		return nil, fmt.Errorf("notification: get template: asked for %s, got %s", t, tpl.Type)
	}
	return &tpl, nil
}
