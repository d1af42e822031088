package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/atelieranj/client-portal/internal/api"
	"github.com/atelieranj/client-portal/internal/core/ports"
	"github.com/atelieranj/client-portal/internal/core/service"
	"github.com/atelieranj/client-portal/internal/infrastructure/db/memory"
	mongodb "github.com/atelieranj/client-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/atelieranj/client-portal/internal/infrastructure/db/redis"
	"github.com/atelieranj/client-portal/internal/infrastructure/queue"
	"github.com/atelieranj/client-portal/internal/infrastructure/sidechannel"
	"github.com/atelieranj/client-portal/internal/pkg/config"
	"github.com/atelieranj/client-portal/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"
)

// @title           Client Portal API
// @version         1.0
// @description     Project workflow API for the studio's client portal.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		users        ports.UserRepository
		projects     ports.ProjectRepository
		availability ports.AvailabilityRepository
		mongoDB      *gomongo.Database
		redisClient  *goredis.Client
		dedup        service.PaymentDedup
	)

	switch cfg.StoreBackend {
	case "memory":
		log.Warn().Msg("using in-memory store, data will not survive a restart")
		store := memory.NewStore()
		users = store.Users()
		projects = store.Projects()
		availability = store.Availability()

	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		mongoDB = db

		userRepo := mongodb.NewUserRepository(db)
		projectRepo := mongodb.NewProjectRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create user indexes")
		}
		if err := projectRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create project indexes")
		}
		users = userRepo
		projects = projectRepo
		availability = mongodb.NewAvailabilityRepository(db)

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer func() { _ = rdb.Close() }()
		redisClient = rdb
		dedup = redisdb.NewPaymentDedup(rdb)
	}

	// Side channels: spreadsheet mirror and transactional email copy. Jobs are
	// best effort and never block a workflow transition.
	sheets := sidechannel.NewSheetsClient(cfg.SideChannel.SheetsWebhookURL, log)
	sink := sidechannel.NewService(sheets, sidechannel.NewTemplateCopyWriter(), log)
	dispatcher := queue.NewDispatcher(cfg.SideChannel.Workers, sink, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(users, dispatcher, cfg.JWTSecret, 24*time.Hour, log)
	projectService := service.NewProjectService(projects, users, availability, dedup, dispatcher, log)
	availabilityService := service.NewAvailabilityService(availability, log)

	e := api.NewRouter(api.Deps{
		AuthService:         authService,
		ProjectService:      projectService,
		AvailabilityService: availabilityService,
		Mongo:               mongoDB,
		Redis:               redisClient,
		JWTSecret:           cfg.JWTSecret,
		Log:                 log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreBackend).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server shut down")
}
