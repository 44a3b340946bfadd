package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tostreak/config"
	"tostreak/handler"
	"tostreak/middleware"
	"tostreak/repository"
	"tostreak/services"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := runToken(cfg, os.Args[2:]); err != nil {
			logger.Error("token", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// runToken prints a bearer token for the configured secret.
func runToken(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "owner", "token subject")
	ttl := fs.Duration("ttl", cfg.Auth.TokenTTL, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := services.GenerateAccessToken(cfg.Auth.JWTSecret, *subject, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.KVStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, err := repository.NewMongoClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		store := repository.GetMongoStore(client, cfg.Mongo.DatabaseName, cfg.Mongo.KVCollection)
		if err := repository.SetupIndexes(ctx, store.MongoCollection); err != nil {
			logger.Warn("creating indexes", "error", err)
		}
		return store, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}, nil

	case config.BackendRedis:
		store, err := services.NewRedisStore(cfg.Redis.URL, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		logger.Warn("using in-memory store; state is lost on exit")
		return repository.NewMemoryStore(), func() {}, nil
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.StoreBackend, err)
	}
	defer closeStore()

	opts := []usecase.Option{usecase.WithLogger(logger)}
	if cfg.Events.SinkURL != "" {
		sink, err := services.NewCloudEventSink(cfg.Events.SinkURL, cfg.Events.Source, logger)
		if err != nil {
			return err
		}
		defer sink.Close()
		opts = append(opts, usecase.WithEventSink(sink))
		logger.Info("publishing events", "sink", cfg.Events.SinkURL)
	}

	tracker := usecase.NewTracker(repository.NewStateRepo(store), opts...)
	if err := tracker.Load(ctx); err != nil {
		return err
	}
	if _, _, err := tracker.CheckStreaks(ctx); err != nil {
		return fmt.Errorf("checking streaks at startup: %w", err)
	}
	profile := tracker.Profile()
	utils.TrackProfile(profile.Points, profile.Streak)

	scheduler, err := services.NewStreakScheduler(cfg.StreakDecaySchedule, tracker, logger)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(cfg, tracker, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(srv, logger)
}

func setupRouter(cfg *config.Config, tracker *usecase.Tracker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	utils.InitValidator()

	router := gin.New()
	router.Use(
		middleware.RequestTracingMiddleware(),
		middleware.EnhancedRecoveryMiddleware(logger),
		middleware.RequestLogger(logger),
		middleware.MetricsMiddleware(),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins...),
		middleware.RequestSizeLimiter(cfg.MaxBodyBytes),
	)

	router.GET("/metrics", middleware.MetricsHandler())

	handlers := handler.NewHandlers(tracker, cfg.StoreBackend)

	public := router.Group("/api")
	handlers.RegisterHealth(public)

	api := router.Group("/api")
	api.Use(middleware.CacheControlMiddleware("no-store"))
	if cfg.AuthEnabled() {
		api.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
		logger.Info("bearer token required on /api")
	}
	handlers.Register(api)

	return router
}
