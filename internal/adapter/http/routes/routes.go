package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "depannel_dispatch/docs" // This will be auto-generated
	"depannel_dispatch/internal/adapter/http/handlers"
	"depannel_dispatch/internal/adapter/notification"
	"depannel_dispatch/internal/adapter/persistence/repository"
	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/infrastructure/config"
	"depannel_dispatch/internal/infrastructure/database"
	"depannel_dispatch/internal/infrastructure/depannelapi"
	"depannel_dispatch/internal/infrastructure/metrics"
	"depannel_dispatch/internal/usecase"
	"depannel_dispatch/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.RegisterDefault()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	app, cleanup := buildApp(ctx, cfg)
	defer cleanup()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInterventionRoutes(v1, app)

	if app.poller != nil {
		app.poller.Start(ctx)
		defer app.poller.Stop()
	}

	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.Port), Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()
	log.Printf("[server] listening port=%d", cfg.Port)

	<-ctx.Done()
	log.Printf("[server] shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Printf("[server] shutdown failed err=%v", err)
	}
}

// app holds the wired handlers and background workers.
type app struct {
	sessions      usecase.ISessionUseCase
	interventions *handlers.InterventionHandler
	quotes        *handlers.QuoteHandler
	catalog       *handlers.CatalogHandler
	agents        *handlers.AgentHandler
	session       *handlers.SessionHandler
	events        *handlers.EventsHandler
	poller        *usecase.Poller
}

func buildApp(ctx context.Context, cfg config.Config) (*app, func()) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	client, err := depannelapi.NewClient(depannelapi.Options{
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.APITimeout,
		RequestsPerSec: cfg.APIRequestsPerSec,
	})
	if err != nil {
		log.Fatalf("Failed to configure the backing service client: %v", err)
	}

	view := buildViewStore(ctx, cfg)

	journalDB, err := database.OpenSQLite(cfg.JournalPath)
	if err != nil {
		log.Fatalf("Failed to open the transition journal: %v", err)
	}
	closers = append(closers, func() { _ = journalDB.Close() })
	journal := repository.NewTransitionJournalSQLiteRepository(journalDB)

	var (
		store  interfaces.ISessionStore
		broker notification.IBroker
	)
	if cfg.RedisURL != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		store = repository.NewSessionRedisRepository(rdb)
		broker = notification.NewRedisBroker(rdb)
		log.Printf("[server] sessions and notifications on redis")
	} else {
		store = repository.NewSessionMemoryRepository()
		broker = notification.NewBroker()
	}

	interventionUseCase := usecase.NewInterventionUseCase(usecase.InterventionDeps{
		Gateway:       client,
		View:          view,
		Journal:       journal,
		Sink:          notification.NewSink(broker),
		Sessions:      store,
		Metrics:       metrics.TransitionMetrics{},
		Engine:        lifecycle.NewEngine(cfg.ArrivalOffset),
		RemoteTimeout: cfg.APITimeout,
	})
	sessionUseCase := usecase.NewSessionUseCase(client, store, cfg.SessionTTL)
	catalogUseCase := usecase.NewCatalogUseCase(client)

	a := &app{
		sessions:      sessionUseCase,
		interventions: handlers.NewInterventionHandler(interventionUseCase),
		quotes:        handlers.NewQuoteHandler(usecase.NewQuoteUseCase(depannelapi.NewQuoteGateway(client))),
		catalog:       handlers.NewCatalogHandler(catalogUseCase),
		agents:        handlers.NewAgentHandler(catalogUseCase),
		session:       handlers.NewSessionHandler(sessionUseCase),
		events:        handlers.NewEventsHandler(broker),
	}

	if cfg.PollingEnabled() {
		service := entities.Principal{UserID: "service", Name: "poller", Role: entities.RoleManager, Token: cfg.ServiceToken}
		a.poller = usecase.NewPoller(interventionUseCase, service, cfg.PollInterval)
	} else {
		log.Printf("[server] SERVICE_TOKEN not set, background refresh disabled")
	}
	return a, cleanup
}

func buildViewStore(ctx context.Context, cfg config.Config) interfaces.IInterventionViewRepository {
	if cfg.ViewStore != config.ViewStoreDynamoDB {
		return repository.NewInterventionMemoryRepository()
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to dynamodb: %v", err)
	}
	log.Printf("[server] intervention view on dynamodb table=%s", cfg.InterventionTable)
	return repository.NewInterventionDynamoRepository(ddb, cfg.InterventionTable)
}

func setMiddlewares() {
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
