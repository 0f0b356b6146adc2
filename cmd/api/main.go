// @title						Loja API
// @version					1.0
// @description				API da loja: catálogo, carrinho, pedidos e contato.
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	httphandlers "github.com/rafabene/loja-backend/internal/handlers/http"
	"github.com/rafabene/loja-backend/internal/handlers/middleware"
	"github.com/rafabene/loja-backend/internal/infrastructure/cache"
	"github.com/rafabene/loja-backend/internal/infrastructure/config"
	"github.com/rafabene/loja-backend/internal/infrastructure/events"
	"github.com/rafabene/loja-backend/internal/infrastructure/i18n"
	"github.com/rafabene/loja-backend/internal/infrastructure/logging"
	"github.com/rafabene/loja-backend/internal/infrastructure/metrics"
	"github.com/rafabene/loja-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/loja-backend/internal/infrastructure/scheduler"
	"github.com/rafabene/loja-backend/internal/infrastructure/security"
	"github.com/rafabene/loja-backend/internal/infrastructure/telemetry"
	"github.com/rafabene/loja-backend/internal/services"
)

const serviceName = "loja-api"

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting loja backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// SIGINT/SIGTERM cancelam inclusive a espera pelo banco
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, cfg.Env, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		log.Fatal(err)
	}

	// Conectar ao banco de dados
	db, err := postgres.ConnectWithRetry(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	var i18nService *i18n.Service
	if cfg.I18n.LocalesDir != "" {
		i18nService, err = i18n.NewServiceFromDir(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	} else {
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	}
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Segurança
	tokens, err := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	if err != nil {
		log.Fatal(err)
	}
	hasher := security.NewBcryptHasher(0)

	var denylist ports.TokenDenylist
	var redisDenylist *cache.RedisDenylist
	memoryDenylist := cache.NewMemoryDenylist()
	if cfg.Redis.URL != "" {
		opts := cache.DefaultRedisDenylistOptions()
		opts.URL = cfg.Redis.URL
		redisDenylist, err = cache.NewRedisDenylist(ctx, opts)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			log.Fatal(err)
		}
		denylist = redisDenylist
		logger.Info("token denylist backed by redis")
	} else {
		denylist = memoryDenylist
	}

	// Eventos
	origins := cfg.CORS.Origins()
	hub := events.NewHub(logger, allowedOrigin(origins))
	publishers := []ports.EventPublisher{hub}
	var amqpPublisher *events.AMQPPublisher
	if cfg.RabbitMQ.URL != "" {
		amqpPublisher, err = events.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			log.Fatal(err)
		}
		publishers = append(publishers, amqpPublisher)
		logger.Info("publishing events to rabbitmq", "exchange", cfg.RabbitMQ.Exchange)
	}
	publisher := events.NewFanout(logger, publishers...)

	appMetrics := metrics.New()
	limits := repositories.PageLimits{Default: cfg.Paging.DefaultSize, Max: cfg.Paging.MaxSize}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, hasher, tokens, denylist, publisher, appMetrics, logger, cfg.JWT.RevokeOnLogout)
	userService := services.NewUserService(userRepo, hasher, uow, logger, limits)
	productService := services.NewProductService(productRepo, logger, limits)
	cartService := services.NewCartService(cartRepo, logger)
	orderService := services.NewOrderService(cartRepo, orderRepo, uow, publisher, appMetrics, logger, limits)
	contactService := services.NewContactService(contactRepo, publisher, logger, limits)
	logService := services.NewClientLogService(logger)

	if cfg.Admin.Seed {
		created, err := userService.EnsureAdmin(ctx, services.AdminSeed{
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
			Phone:    cfg.Admin.Phone,
			CPF:      cfg.Admin.CPF,
		})
		if err != nil {
			logger.Error("failed to seed admin", "error", err)
			log.Fatal(err)
		}
		logger.Info("admin seed checked", "email", cfg.Admin.Email, "created", created)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, appMetrics, logger)

	// Tarefas de manutenção
	jobs := scheduler.New(logger)
	mustSchedule(jobs, scheduler.Job{Name: "rate-limiter-sweep", Spec: "@every 5m", Run: func() {
		if removed := rateLimiter.Sweep(); removed > 0 {
			logger.Debug("rate limiter swept", "removed", removed)
		}
	}})
	if redisDenylist == nil {
		mustSchedule(jobs, scheduler.Job{Name: "denylist-sweep", Spec: "@every 10m", Run: func() {
			if removed := memoryDenylist.Sweep(); removed > 0 {
				logger.Debug("token denylist swept", "removed", removed)
			}
		}})
	}
	jobs.Start()

	// Inicializar handlers e rotas
	dbPinger := httphandlers.PingerFunc(func(ctx context.Context) error {
		return postgres.Ping(ctx, db)
	})

	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Production:     cfg.IsProduction(),
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: origins,
		Logger:         logger,
		I18n:           i18nService,
		Auth:           middleware.NewAuthMiddleware(authService, logger),
		RateLimiter:    rateLimiter,
		Metrics:        appMetrics,
		Handlers: httphandlers.Handlers{
			Auth:    httphandlers.NewAuthHandler(authService, logger),
			Product: httphandlers.NewProductHandler(productService, logger),
			Cart:    httphandlers.NewCartHandler(cartService, logger),
			Order:   httphandlers.NewOrderHandler(orderService, logger),
			Contact: httphandlers.NewContactHandler(contactService, logger),
			User:    httphandlers.NewUserHandler(userService, logger),
			Log:     httphandlers.NewLogHandler(logService, logger),
			Health:  httphandlers.NewHealthHandler(dbPinger, logger),
			Events:  httphandlers.NewEventsHandler(hub, logger),
		},
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	stop()

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	jobs.Stop()
	closeQuietly(logger, "websocket hub", hub.Close)
	if amqpPublisher != nil {
		closeQuietly(logger, "rabbitmq", amqpPublisher.Close)
	}
	if redisDenylist != nil {
		closeQuietly(logger, "redis", redisDenylist.Close)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}
	closeQuietly(logger, "database", func() error { return postgres.Close(db) })

	logger.Info("server exited")
}

// allowedOrigin restringe o handshake websocket às origens do CORS; "*" libera todas
func allowedOrigin(origins []string) func(*http.Request) bool {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(origins, origin)
	}
}

func mustSchedule(s *scheduler.Scheduler, job scheduler.Job) {
	if err := s.Add(job); err != nil {
		log.Fatalf("invalid schedule for %s: %v", job.Name, err)
	}
}

func closeQuietly(logger ports.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("failed to close resource", "resource", name, "error", err)
	}
}
