package cmd

import (
	"context"
	"eoexstore/internal/config"
	"eoexstore/internal/core"
	"eoexstore/internal/db"
	"eoexstore/internal/http/handler"
	"eoexstore/internal/http/handler/middleware"
	"eoexstore/internal/http/payload"
	"eoexstore/internal/http/server"
	"eoexstore/internal/metrics"
	"eoexstore/internal/ratelimit"
	"eoexstore/internal/repository"
	"eoexstore/pkg/jwt"
	"eoexstore/pkg/log"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName    = "eoexstore"
	startupTimeout = 30 * time.Second
)

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	if config.Environment == "development" {
		logger.Warnw("running in development mode, SESSION_SECRET may be the built-in default")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL, config.DBTimeout)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	if err = dbConn.Migrate(ctx, logger); err != nil {
		logger.Errorw("failed to migrate database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))

	// repositories
	userRepo := repository.NewUserRepository(dbConn)
	appRepo := repository.NewAppRepository(dbConn)

	// services
	credentials, err := core.NewCredentials(
		logger,
		userRepo,
		jwtService,
		config.SessionTTL,
		config.BcryptCost)
	if err != nil {
		logger.Errorw("failed to create credential service", "error", err)
		return err
	}

	if config.AdminUsername != "" && config.AdminPassword != "" {
		if err = credentials.SeedAdmin(ctx, config.AdminUsername, config.AdminPassword); err != nil {
			logger.Errorw("failed to seed admin user", "error", err)
			return err
		}
	}

	catalog := core.NewCatalog(logger, appRepo)

	// handler
	appMetrics := metrics.New()
	storeHlr := handler.NewStoreHandler(
		logger,
		payload.DecodeValidator{},
		credentials,
		catalog,
		appMetrics.Downloads())

	// rate limiting of credential routes
	limit := func(route string, h http.Handler) http.Handler { return h }
	if config.RedisAddr != "" {
		rateLimiter, closeRedis, err := newRedisLimiter(ctx, config)
		if err != nil {
			logger.Errorw("failed to set up rate limiter", "error", err, "addr", config.RedisAddr)
			return err
		}
		defer closeRedis()

		limit = middleware.NewRateLimitMiddleware(logger, rateLimiter).RateLimit
	} else {
		logger.Warnw("REDIS_ADDR not set, login rate limiting disabled")
	}

	// register routes
	mux := http.NewServeMux()
	routes := []struct {
		pattern string
		handler http.Handler
	}{
		{handler.Root, http.HandlerFunc(storeHlr.HandleRoot)},
		{handler.Register, limit(handler.Register, http.HandlerFunc(storeHlr.HandleRegister))},
		{handler.Login, limit(handler.Login, http.HandlerFunc(storeHlr.HandleLogin))},
		{handler.SetRole, http.HandlerFunc(storeHlr.HandleSetRole)},
		{handler.ListApps, http.HandlerFunc(storeHlr.HandleListApps)},
		{handler.GetApp, http.HandlerFunc(storeHlr.HandleGetApp)},
		{handler.CreateApp, http.HandlerFunc(storeHlr.HandleCreateApp)},
		{handler.RecordDownload, http.HandlerFunc(storeHlr.HandleRecordDownload)},
	}
	for _, route := range routes {
		mux.Handle(route.pattern, appMetrics.InstrumentHandler(route.pattern, route.handler))
	}
	mux.Handle("GET /metrics", appMetrics.Handler())

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newRedisLimiter(ctx context.Context, config config.App) (*ratelimit.RedisLimiter, func(), error) {
	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	closeClient := func() { _ = client.Close() }

	if err := client.Ping(ctx).Err(); err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	limiter, err := ratelimit.NewRedisLimiter(client, "eoex:login", config.LoginRateLimit, config.LoginRateWindow)
	if err != nil {
		closeClient()
		return nil, nil, err
	}

	return limiter, closeClient, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if (err == nil || errors.Is(err, http.ErrServerClosed)) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
