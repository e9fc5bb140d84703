package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/api/handlers"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/cache"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/client"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/config"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/health"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/metrics"
	repository "github.com/aaravmahajanofficial/cellsync-pos/internal/repositories"
	service "github.com/aaravmahajanofficial/cellsync-pos/internal/services"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/session"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/telemetry"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/terminal"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup. Stdout belongs to the terminal, logs go to stderr.
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing setup
	shutdownTracer, err := telemetry.Setup(ctx, &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient, err = session.NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Session setup
	var store session.Store = session.NewMemoryStore()
	if cfg.Session.Backend == "redis" {
		store = session.NewRedisStore(redisClient, cfg.Session.Namespace)
	}

	sessions := session.NewManager(store)

	if ok, err := sessions.Init(ctx); err != nil {
		slog.Warn("⚠️ Could not restore the previous session", slog.String("error", err.Error()))
	} else {
		slog.Info("Session restored", slog.Bool("authenticated", ok))
	}

	// Backend client
	api, err := client.New(client.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, store)
	if err != nil {
		slog.Error("❌ Error creating the API client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Catalog setup
	var catalog repository.CatalogProvider
	switch cfg.Catalog.Source {
	case "file":
		catalog, err = repository.LoadCatalogFile(cfg.Catalog.File)
		if err != nil {
			slog.Error("❌ Error loading the catalog file", slog.String("error", err.Error()))
			os.Exit(1)
		}
	default:
		catalog = repository.NewAPICatalog(api.Products)
	}

	if cfg.Catalog.Cached {
		catalog = repository.NewCachedCatalog(catalog, cache.NewRedisCache(redisClient, &cfg.Cache, cfg.Session.Namespace), cfg.Cache.DefaultTTL)
	}

	var limiter repository.LoginLimiter
	if redisClient != nil {
		limiter = repository.NewRedisLoginLimiter(redisClient, cfg.LoginLimit, cfg.Session.Namespace)
	} else {
		limiter = repository.NewMemoryLoginLimiter(cfg.LoginLimit)
	}

	cartService := service.NewCartService()
	checkoutService := service.NewCheckoutService(cartService, api.Sales, service.WithRecordTimeout(cfg.API.Timeout))

	term := terminal.New(terminal.Services{
		Auth:          service.NewAuthService(api.Auth, sessions, limiter),
		Catalog:       service.NewCatalogService(catalog),
		Cart:          cartService,
		Checkout:      checkoutService,
		Inventory:     service.NewInventoryService(api.Inventory),
		ServiceOrders: service.NewServiceOrderService(api.ServiceOrders),
		Customers:     service.NewCustomerService(api.Customers),
		Finance:       service.NewFinanceService(api.Finance),
		Dashboard:     service.NewDashboardService(api.Dashboard),
	}, os.Stdout, terminal.Options{
		StoreName:      cfg.Store.Name,
		CurrencySymbol: cfg.Store.CurrencySymbol,
	})

	slog.Info("services initialized", slog.String("env", cfg.Env), slog.String("version", health.Version))

	// Status server
	var server *http.Server
	if cfg.StatusServer.Addr != "" {
		healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Backend: api})
		if err != nil {
			slog.Error("❌ Error creating the health handler", slog.String("error", err.Error()))
			os.Exit(1)
		}

		statusHandler := handlers.NewStatusHandler(cfg.Store.Name, cartService, checkoutService, sessions)

		routerMux := http.NewServeMux()
		routerMux.Handle("GET /metrics", metrics.Handler())
		routerMux.Handle("GET /health", healthHandler.Handler())
		routerMux.HandleFunc("GET /api/v1/status", statusHandler.Status())
		routerMux.HandleFunc("GET /api/v1/cart", statusHandler.Cart())

		server = &http.Server{
			Addr:              cfg.StatusServer.Addr,
			Handler:           middleware.Logging(routerMux),
			ReadHeaderTimeout: 5 * time.Second,
		}

		slog.Info("🚀 Status server is starting...", slog.String("address", cfg.StatusServer.Addr))

		go func() {
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				slog.Error("❌ Failed to start status server", slog.String("error", err.Error()))
			}
		}()
	}

	// The terminal blocks on stdin, so a signal must not wait for it.
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx, os.Stdin) }()

	select {
	case err := <-done:
		if err != nil {
			slog.Error("Terminal stopped", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		slog.Warn("🛑 Shutdown signal received. Preparing to stop...")
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("⚠️ Status server shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}

	checkoutService.Wait()
	slog.Info("✅ Pending sales forwarded")

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}
}
