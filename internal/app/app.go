package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/preconsultation-backend/internal/adapter/cache"
	"github.com/heartmarshall/preconsultation-backend/internal/adapter/gateway"
	"github.com/heartmarshall/preconsultation-backend/internal/adapter/memory"
	"github.com/heartmarshall/preconsultation-backend/internal/adapter/postgres"
	pcrepo "github.com/heartmarshall/preconsultation-backend/internal/adapter/postgres/preconsultation"
	"github.com/heartmarshall/preconsultation-backend/internal/assignment"
	"github.com/heartmarshall/preconsultation-backend/internal/auth"
	"github.com/heartmarshall/preconsultation-backend/internal/config"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/pipeline"
	"github.com/heartmarshall/preconsultation-backend/internal/service/preconsultation"
	"github.com/heartmarshall/preconsultation-backend/internal/transport/middleware"
	"github.com/heartmarshall/preconsultation-backend/internal/transport/rest"
)

type aggregateStore interface {
	pipeline.Store
	FindByCaseReference(ctx context.Context, caseReference string) (*domain.PreConsultation, error)
	ListByInquiryIDs(ctx context.Context, inquiryIDs []string) ([]*domain.PreConsultation, error)
	ListAssignmentsByRole(ctx context.Context, role domain.AssignmentRole, userIDs []string) ([]assignment.ActiveAssignment, error)
}

type templateSource interface {
	GetTemplate(ctx context.Context, t domain.NotificationType) (*domain.NotificationTemplate, error)
}

// Run is the application entry point. It loads configuration, connects the
// storage and the external gateways, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, checks, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	cases := gateway.NewCaseRegistry(cfg.Gateways.CaseRegistry, logger)
	users := gateway.NewDirectory(cfg.Gateways.Directory, logger)
	notifications := gateway.NewNotifications(cfg.Gateways.Notification, logger)

	var templates templateSource = notifications
	if cfg.Cache.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Cache)
		if err != nil {
			return err
		}
		defer rdb.Close()

		templates = cache.NewTemplateCache(rdb, notifications, cfg.Cache.TemplateTTL, logger)
		checks = append(checks, rest.Check{Name: "cache", Pinger: rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})})
		logger.Info("template cache enabled", slog.String("addr", cfg.Cache.Addr), slog.Duration("ttl", cfg.Cache.TemplateTTL))
	}

	svc := preconsultation.NewService(logger, store, cases, users, notifications, templates, preconsultation.Config{
		OfficerRole:   domain.AssignmentRole(cfg.Assignment.OfficerRole),
		DirectoryRole: cfg.Assignment.DirectoryRole,
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:             logger,
		Tokens:             jwtManager,
		PreConsultations:   rest.NewPreConsultationHandler(svc, logger),
		Health:             rest.NewHealthHandler(Version, checks...),
		CORS:               cfg.CORS,
		RateLimiter:        limiter,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openStore returns the aggregate store selected by storage.driver, its
// health checks and a function that releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (aggregateStore, []rest.Check, func(), error) {
	if cfg.Storage.Driver == config.DriverMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil, func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	checks := []rest.Check{{Name: "database", Pinger: pool}}
	return pcrepo.New(pool, postgres.NewTxManager(pool)), checks, pool.Close, nil
}
