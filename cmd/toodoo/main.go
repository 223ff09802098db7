package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/LucasMartinsVieira/toodoo/internal/application/auth"
	"github.com/LucasMartinsVieira/toodoo/internal/application/tasks"
	"github.com/LucasMartinsVieira/toodoo/internal/config"
	infraauth "github.com/LucasMartinsVieira/toodoo/internal/infrastructure/auth"
	httprouter "github.com/LucasMartinsVieira/toodoo/internal/infrastructure/http"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/http/handlers"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/http/middleware"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/persistence/postgres"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})
	issuer := infraauth.NewTokenIssuer(cfg.JWT.Secret)
	cipher, err := security.NewAESGCMCipher(cfg.Cipher.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("create field cipher")
	}

	registerUC := auth.NewRegister(userRepo, hasher, issuer)
	loginUC := auth.NewLogin(userRepo, hasher, issuer)
	profileUC := auth.NewProfile(userRepo)
	updateUC := auth.NewUpdate(userRepo, hasher)
	removeUC := auth.NewRemove(userRepo)

	createTaskUC := tasks.NewCreate(taskRepo, userRepo, cipher)
	listTasksUC := tasks.NewList(taskRepo, cipher)
	getTaskUC := tasks.NewGet(taskRepo, cipher)
	updateTaskUC := tasks.NewUpdate(taskRepo, userRepo, cipher)
	removeTaskUC := tasks.NewRemove(taskRepo)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, profileUC, updateUC, removeUC, log)
	tasksHandler := handlers.NewTasksHandler(createTaskUC, listTasksUC, getTaskUC, updateTaskUC, removeTaskUC, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP, redisClient)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Server.IsDevelopment))
	guard := middleware.NewAuthGuard(issuer, userRepo)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:   authHandler,
		TasksHandler:  tasksHandler,
		HealthHandler: healthHandler,
		RequireJWT:    guard.Handler,
		Log:           log,
		Secure:        secureMiddleware,
		CORS:          middleware.CORS(cfg.CORS.AllowedOrigins),
		IPRateLimit:   ipLimit,
		Metrics:       true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
