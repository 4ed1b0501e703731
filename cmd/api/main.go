package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirehand-backend/config"
	v1 "hirehand-backend/internal/delivery/http/v1"
	"hirehand-backend/internal/repository/postgres"
	"hirehand-backend/internal/usecase"
	"hirehand-backend/pkg/auth"
	"hirehand-backend/pkg/database"
	"hirehand-backend/pkg/hash"
	"hirehand-backend/pkg/logger"
	"hirehand-backend/pkg/redis"
	"hirehand-backend/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init()
	logger.Log.Info("starting hirehand backend", "port", cfg.Port)

	db, err := database.NewPostgresConnection(cfg.DBUrl, cfg.StatementTimeout)
	if err != nil {
		logger.Log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitSchema(context.Background()); err != nil {
		logger.Log.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// Redis is optional: rate limiting falls back to in-memory counters.
	var redisClient *goredis.Client
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.New(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redisClient.Close()
		}
	}

	validate := validation.New()
	hasher := hash.NewHasher(cfg.HashIterations, cfg.HashPreviousIterations...)
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	contactRepo := postgres.NewContactRepository(db)
	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	contactUC := usecase.NewContactUsecase(contactRepo, validate, cfg.DefaultLanguage)
	authUC := usecase.NewAuthUsecase(userRepo, hasher, validate, cfg.DefaultLanguage)
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo, validate, cfg.DefaultLanguage)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate, cfg.DefaultLanguage)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		JobUC:       jobUC,
		CandidateUC: candidateUC,
		ContactUC:   contactUC,
		Tokens:      tokens,
		DB:          db,
		Redis:       redisClient,
		Config:      cfg,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("forced shutdown", "error", err)
	}
	logger.Log.Info("stopped")
}
