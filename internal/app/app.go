package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/boutique/internal/config"
	"github.com/GlebRadaev/boutique/internal/handlers"
	"github.com/GlebRadaev/boutique/internal/metrics"
	"github.com/GlebRadaev/boutique/internal/outbox"
	"github.com/GlebRadaev/boutique/internal/pg"
	"github.com/GlebRadaev/boutique/internal/repo"
	"github.com/GlebRadaev/boutique/internal/service"
	"github.com/GlebRadaev/boutique/pkg/auth"
	"github.com/GlebRadaev/boutique/pkg/idempotency"
	"github.com/GlebRadaev/boutique/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	relay *outbox.Relay
	redis *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo)

	idem, err := a.idempotencyMiddleware(ctx)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), idem)

	if len(cfg.KafkaBrokers) > 0 {
		a.relay = outbox.NewRelay(cfg, a.repo.OutboxRepo, outbox.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))
	} else {
		zap.L().Warn("no kafka brokers configured, outbox events stay in the database")
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startOutboxRelay(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// idempotencyMiddleware returns nil when no Redis address is configured.
func (a *Application) idempotencyMiddleware(ctx context.Context) (handlers.Middleware, error) {
	if a.cfg.RedisAddr == "" {
		zap.L().Warn("no redis configured, order creation is not deduplicated")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	a.redis = client
	return idempotency.NewStore(client, a.cfg.IdempotencyTTL).Middleware, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.redis != nil {
			_ = a.redis.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startOutboxRelay(ctx context.Context) {
	if a.relay == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.relay.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
