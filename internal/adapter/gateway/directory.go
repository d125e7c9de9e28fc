package gateway

import (
	"context"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/preconsultation-backend/internal/config"
)

// Directory lists users of the identity service.
type Directory struct {
	http *resty.Client
	log  *slog.Logger
}

// NewDirectory creates a user directory client.
func NewDirectory(cfg config.GatewayConfig, logger *slog.Logger) *Directory {
	log := logger.With("adapter", "directory")
	return &Directory{
		http: newClient(cfg, "directory", log),
		log:  log,
	}
}

// ListUsersByRole returns the ids of the users holding role, in directory order.
func (d *Directory) ListUsersByRole(ctx context.Context, role string) ([]string, error) {
	var body usersResponse
	resp, err := d.http.R().
		SetContext(ctx).
		SetQueryParam("role", role).
		SetResult(&body).
		Get("/users")
	if err := checkResponse("directory: list users", resp, err); err != nil {
		d.log.ErrorContext(ctx, "list users failed", slog.String("role", role), slog.String("error", err.Error()))
		return nil, err
	}

	ids := make([]string, 0, len(body.Users))
	for _, u := range body.Users {
		if u.UserID != "" {
			ids = append(ids, u.UserID)
		}
	}
	return ids, nil
}
