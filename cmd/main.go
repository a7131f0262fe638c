package main

import (
	"context"
	"expvar"
	"log"
	"runtime"

	_ "github.com/hilthontt/showdown/docs"
	"github.com/hilthontt/showdown/internal/domain"
	"github.com/hilthontt/showdown/internal/infrastructure/configs"
	"github.com/hilthontt/showdown/internal/infrastructure/events"
	"github.com/hilthontt/showdown/internal/infrastructure/logging"
	"github.com/hilthontt/showdown/internal/infrastructure/messaging"
	"github.com/hilthontt/showdown/internal/infrastructure/ratelimiter"
	"github.com/hilthontt/showdown/internal/infrastructure/tracing"
	"github.com/hilthontt/showdown/internal/infrastructure/ws"
	"github.com/hilthontt/showdown/internal/persistence/db"
	"github.com/hilthontt/showdown/internal/persistence/repository"
	"github.com/hilthontt/showdown/internal/presentation/api"
	"github.com/hilthontt/showdown/internal/presentation/handler/health"
	"github.com/hilthontt/showdown/internal/presentation/handler/rooms"
	"go.uber.org/zap"
)

const (
	serviceName = "showdown-api"
)

// @title        Showdown API
// @version      1.0
// @description  Two-player rock-paper-scissors match server with room broadcasts over WebSocket.
// @BasePath     /api
func main() {
	tracerCfg := tracing.NewDefaultConfig(serviceName)

	sh, err := tracing.InitTracer(tracerCfg)
	if err != nil {
		log.Fatalf("Failed to initialize the tracer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer sh(ctx)

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	appLogger := logging.NewLogger(logging.NewDefaultConfig())
	appLogger.Init()
	appLogger.Info(logging.General, logging.Startup, "starting up", map[logging.ExtraKey]any{
		logging.AppName: serviceName,
	})

	configPath := configs.DetermineConfigPath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	hub := ws.NewHub(cfg.Hub)
	go hub.Run()

	registry := domain.NewRegistry(hub)

	var matchPublisher *events.MatchPublisher
	if cfg.Broker.Enabled {
		rabbitmq, err := messaging.NewRabbitMQ(cfg.Broker.URI)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitmq.Close()

		log.Println("Starting RabbitMQ connection")

		matchPublisher = events.NewMatchPublisher(rabbitmq)

		if cfg.Mongo.Enabled {
			mongoCfg := &db.MongoConfig{
				URI:               cfg.Mongo.URI,
				Database:          cfg.Mongo.Database,
				ConnectionTimeout: db.DefaultConnectionTimeout,
			}

			mongoClient, err := db.NewMongoClient(ctx, mongoCfg)
			if err != nil {
				log.Fatal(err)
			}
			defer db.DisconnectMongo(context.Background(), mongoClient)

			auditRepository := repository.NewMatchAuditLogRepository(db.GetDatabase(mongoClient, mongoCfg))
			if err := auditRepository.EnsureIndexes(ctx); err != nil {
				log.Printf("Failed to ensure audit log indexes: %v", err)
			}

			// Start audit consumer
			auditConsumer := events.NewAuditConsumer(rabbitmq, auditRepository, appLogger)
			go auditConsumer.Listen()
		}
	}

	roomHandler := rooms.NewHandler(registry, hub, matchPublisher, cfg.Hub.ClientBuffer)
	healthHandler := health.NewHandler(registry)

	rl := ratelimiter.New(ratelimiter.Options{
		MaxRatePerSecond: cfg.RateLimiter.MaxRatePerSecond,
		MaxBurst:         cfg.RateLimiter.MaxBurst,
		CacheTTL:         cfg.RateLimiter.CacheTTL,
		SourceHeaderKey:  cfg.RateLimiter.SourceHeaderKey,
	})
	app := api.NewApplication(*cfg, *roomHandler, *healthHandler, logger, rl)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.Mount()
	logger.Fatal(app.Run(mux))
}
