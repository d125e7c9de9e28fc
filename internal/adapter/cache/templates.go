// Package cache implements a redis read-through cache for notification
// templates.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/preconsultation-backend/internal/config"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

const (
	keyPrefix    = "preconsultation:template:"
	fetchTimeout = 10 * time.Second
)

type templateSource interface {
	GetTemplate(ctx context.Context, t domain.NotificationType) (*domain.NotificationTemplate, error)
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// TemplateCache serves templates from redis and falls back to the wrapped
// source on a miss. Redis failures degrade to the source, never to an error.
// Not-found results are not cached.
type TemplateCache struct {
	rdb   *redis.Client
	next  templateSource
	ttl   time.Duration
	log   *slog.Logger
	group singleflight.Group
}

// NewTemplateCache wraps next with a cache whose entries live for ttl.
func NewTemplateCache(rdb *redis.Client, next templateSource, ttl time.Duration, logger *slog.Logger) *TemplateCache {
	return &TemplateCache{
		rdb:  rdb,
		next: next,
		ttl:  ttl,
		log:  logger.With("adapter", "template_cache"),
	}
}

// GetTemplate returns the template of type t.
func (c *TemplateCache) GetTemplate(ctx context.Context, t domain.NotificationType) (*domain.NotificationTemplate, error) {
	key := keyPrefix + t.String()

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var tpl domain.NotificationTemplate
		if err := json.Unmarshal(raw, &tpl); err == nil {
			c.log.DebugContext(ctx, "template cache hit", slog.String("type", t.String()))
			return &tpl, nil
		}
		c.log.WarnContext(ctx, "template cache entry corrupt", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.log.WarnContext(ctx, "template cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	// Concurrent misses for the same type share one upstream call. The call
	// outlives the caller that started it; each caller waits on its own ctx.
	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		tpl, err := c.next.GetTemplate(fetchCtx, t)
		if err != nil {
			return nil, err
		}
		c.store(fetchCtx, key, tpl)
		return tpl, nil
	})

	var v any
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		v = res.Val
	}

	tpl := *v.(*domain.NotificationTemplate)
	tpl.Keys = append([]string(nil), tpl.Keys...)
	return &tpl, nil
}

// Invalidate drops the cached template of type t.
func (c *TemplateCache) Invalidate(ctx context.Context, t domain.NotificationType) error {
	if err := c.rdb.Del(ctx, keyPrefix+t.String()).Err(); err != nil {
		return fmt.Errorf("invalidate template %s: %w", t, err)
	}
	return nil
}

func (c *TemplateCache) store(ctx context.Context, key string, tpl *domain.NotificationTemplate) {
	raw, err := json.Marshal(tpl)
	if err != nil {
		c.log.WarnContext(ctx, "template cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "template cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
