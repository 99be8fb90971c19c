package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"postboard/config"
	"postboard/internal/adapter/in/web"
	memstore "postboard/internal/adapter/out/storage/inmemory"
	pgstore "postboard/internal/adapter/out/storage/postgres"
	"postboard/internal/service"
	"postboard/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ListenAddr = "0.0.0.0:8000"

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		postStorage service.PostStorage
		pool        *pgxpool.Pool
	)

	switch cfg.StorageType {
	case config.StoragePostgres:
		var err error
		pool, err = pgstore.NewPool(ctx, pgstore.PoolConfig{
			DSN:      cfg.Postgres.GetDSN(),
			MaxConns: int32(cfg.Postgres.MaxConns),
		})
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if err := pgstore.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		postStorage = pgstore.NewPostStorage(pool, trmpgx.DefaultCtxGetter)

	default:
		postStorage = memstore.NewPostStorage()
	}

	views, err := web.NewViewHandler()
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}

	postSvc := service.NewPostService(postStorage, cfg.Postgres.QueryTimeout)

	srv := &http.Server{
		Addr: ListenAddr,
		Handler: NewRouter(RouterDeps{
			Posts:    postSvc,
			Views:    views,
			APIToken: cfg.APIToken,
			Logger:   log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized",
		"addr", ListenAddr,
		"storage", cfg.StorageType,
		"max_conns", cfg.Postgres.MaxConns,
		"query_timeout", cfg.Postgres.QueryTimeout,
	)
	return &App{cfg: cfg, srv: srv, pool: pool}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := a.srv.Shutdown(shCtx)
		a.close()
		return err

	case err := <-errCh:
		a.close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
