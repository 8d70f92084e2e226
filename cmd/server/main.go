package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/quickbite/storefront-api/internal/config"
	"github.com/quickbite/storefront-api/internal/handlers"
	"github.com/quickbite/storefront-api/internal/middleware"
	"github.com/quickbite/storefront-api/internal/promo"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/service"
	"github.com/quickbite/storefront-api/internal/session"
	"github.com/quickbite/storefront-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize promo code validator
	promoValidator := promo.NewValidator(promo.DefaultCodes())

	// Initialize repositories
	catalogRepo := repository.NewInMemoryCatalog(time.Duration(cfg.Catalog.FetchDelayMS) * time.Millisecond)
	orderRepo := repository.NewInMemoryOrderRepository()

	// Browsing sessions own cart lifetime; idle ones are swept periodically
	sessions := session.NewStore()
	sessionTTL := time.Duration(cfg.Session.IdleTTLMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(sessionTTL / 4)
		defer ticker.Stop()
		for range ticker.C {
			if n := sessions.Sweep(sessionTTL); n > 0 {
				log.Info("swept idle sessions", "count", n)
			}
		}
	}()

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo)
	searchService := service.NewSearchService(catalogRepo)
	cartService := service.NewCartService(catalogRepo, sessions, service.NewLogNotifier(log))
	orderService := service.NewOrderService(orderRepo, sessions, promoValidator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	restaurantHandler := handlers.NewRestaurantHandler(catalogService, log)
	searchHandler := handlers.NewSearchHandler(searchService, log)
	sessionHandler := handlers.NewSessionHandler(cartService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	promoHandler := handlers.NewPromoHandler(promoValidator)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/restaurants", restaurantHandler.ListRestaurants)
		r.Get("/restaurants/{restaurantId}", restaurantHandler.GetMenu)
		r.Get("/cuisines", restaurantHandler.ListCuisines)

		// Search endpoint
		r.Get("/search", searchHandler.Search)

		// Order history
		r.Get("/orders", orderHandler.ListOrders)

		// Promo endpoints
		r.Get("/promo/stats", promoHandler.GetStats)
		r.Get("/promo/{promoCode}", promoHandler.ValidatePromo)

		// Browsing sessions and cart mutations require an API key
		r.Route("/sessions", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Post("/", sessionHandler.StartSession)
			r.Get("/{sessionId}", sessionHandler.GetSession)
			r.Delete("/{sessionId}", sessionHandler.EndSession)
			r.Post("/{sessionId}/items", sessionHandler.AddItem)
			r.Delete("/{sessionId}/items/{itemId}", sessionHandler.RemoveItem)
			r.Post("/{sessionId}/categories/{category}/toggle", sessionHandler.ToggleCategory)
			r.Post("/{sessionId}/checkout", orderHandler.Checkout)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
