package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/auth"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	fintrackredis "fintrack/internal/redis"
	"fintrack/internal/service"
	"fintrack/internal/storage"
)

func main() {
	log := logger.New("fintrack-server")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	db, err := database.Connect(ctx, database.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	userService := service.NewUserService(storage.NewUserStorage(db), hasher, jwtManager)
	entryService := service.NewEntryService(storage.NewEntryStorage(db))

	authHandler := handlers.NewAuthHandler(userService)
	entryHandler := handlers.NewEntryHandler(entryService)
	healthHandler := handlers.NewHealthHandler(db)

	authMW := middleware.NewAuthMiddleware(jwtManager)

	// Rate limiting kicks in only when redis is configured.
	limit := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if cfg.Redis.Addr != "" {
		redisClient, err := fintrackredis.NewClient(ctx, fintrackredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		limiter := middleware.NewRateLimiter(redisClient.GetClient(), cfg.RateLimit.Requests, cfg.RateLimit.Window, "auth")
		limit = limiter.Limit
		log.Info("Auth rate limiting enabled: %d requests per %v", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthHandler.Health)

	mux.HandleFunc("/auth/signup", limit(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		authHandler.Signup(w, r)
	}))

	mux.HandleFunc("/auth/login", limit(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		authHandler.Login(w, r)
	}))

	mux.HandleFunc("/auth/profile", authMW.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		authHandler.Profile(w, r)
	}))

	mux.HandleFunc("/entries", authMW.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			entryHandler.Create(w, r)
		case http.MethodGet:
			entryHandler.List(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	mux.HandleFunc("/entries/", authMW.RequireAuth(entryHandler.HandleItem))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}

	log.Info("Server stopped")
}
