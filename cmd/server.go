package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"txquery/internal/cache"
	cachebackend "txquery/internal/cache/backend"
	"txquery/internal/config"
	"txquery/internal/core"
	"txquery/internal/db"
	"txquery/internal/genesis"
	"txquery/internal/http/handler"
	"txquery/internal/http/handler/middleware"
	"txquery/internal/http/payload"
	"txquery/internal/http/server"
	"txquery/internal/metrics"
	"txquery/internal/repository"
	"txquery/pkg/jwt"
	"txquery/pkg/log"

	"go.uber.org/zap"
)

const serviceName = "txquery"

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger(serviceName, log.ParseLevel("")).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	store, err := db.Open(config.DBDriver, config.DBConnectionURL, config.GormLogLevel())
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer store.Close()

	if err = store.MigrateModels(repository.Models...); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	if config.GenesisFile != "" {
		ledger, err := genesis.LoadFile(config.GenesisFile)
		if err != nil {
			logger.Errorw("failed to load genesis file", "error", err, "path", config.GenesisFile)
			return err
		}
		if err = ledger.Seed(context.Background(), store); err != nil {
			logger.Errorw("failed to seed genesis block", "error", err)
			return err
		}
		logger.Infow("genesis ledger loaded", "block_id", ledger.Block.ID, "transactions", len(ledger.Transactions))
	}

	m := metrics.New(serviceName)

	// cache
	var txCache repository.Cache
	backend, err := newCacheBackend(config)
	if err != nil {
		logger.Errorw("failed to create cache backend", "error", err, "backend", config.CacheBackend)
		return err
	}
	if backend != nil {
		c := cache.NewCache("transactions", backend)
		c.RegisterMetrics(m.CacheHits, m.CacheMisses)
		m.RegisterCacheEntries(c.Len)
		txCache = c
	}

	// repository
	repo := repository.NewTransactionRepository(logger, store, txCache, config.AddressVersion)
	repo.RegisterMetrics(m.QueryDuration)

	explorer := core.NewExplorer(logger, repo)

	// handler
	explorerHlr := handler.NewExplorerHandler(
		logger,
		payload.Decoder{},
		explorer)

	api := http.NewServeMux()
	explorerHlr.Register(api)

	var apiHandler http.Handler = api
	if config.JWTSecret != "" {
		apiHandler = middleware.NewAuthMiddleware(logger, jwt.NewJWTService([]byte(config.JWTSecret))).Authenticate(api)
	}

	// middleware
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("GET /metrics", m.Handler())

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(logger, srv)
}

func newCacheBackend(app config.App) (cachebackend.Backend, error) {
	switch app.CacheBackend {
	case config.CacheLRU:
		lru, err := cachebackend.NewLRU(app.CacheSize)
		if err != nil {
			return nil, err
		}
		return lru, nil
	case config.CacheGoCache:
		return cachebackend.NewGoCache(), nil
	default:
		return nil, nil
	}
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutdown signal received", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
