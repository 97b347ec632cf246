package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawbandhu-backend/config"
	"lawbandhu-backend/handlers"
	"lawbandhu-backend/logger"
	"lawbandhu-backend/repository"
	"lawbandhu-backend/service"
	"lawbandhu-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Log.Env, cfg.Log.Level)

	if cfg.Log.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Initialize database connections
	db, err := initPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Postgres")
	}
	defer db.Close()

	// Initialize storage
	docs, err := storage.New(ctx, storage.Config{
		Backend:   storage.Backend(cfg.Storage.Backend),
		LocalPath: cfg.Storage.LocalPath,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	log.Info().Str("backend", cfg.Storage.Backend).Msg("Storage initialized")

	// Initialize repositories
	lawyerRepo := repository.NewLawyerRepository(db)
	starRepo := repository.NewStarRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)

	otpStore, closeOTPStore := initOTPStore(ctx, cfg.Redis)
	defer closeOTPStore()

	// Initialize services
	assistantOpts := []service.AssistantServiceOption{}
	if completer := initGemini(ctx, cfg.AI); completer != nil {
		defer completer.Close()
		assistantOpts = append(assistantOpts, service.WithCompleter(completer))
	}
	assistantService := service.NewAssistantService(assistantOpts...)

	lawyerService := service.NewLawyerService(
		service.WithLawyerRoster(lawyerRepo),
		service.WithStarStore(starRepo),
	)

	caseService := service.NewCaseService(
		service.WithCaseStore(caseRepo),
		service.WithDocumentStore(fileRepo),
		service.WithStorage(docs),
	)

	paymentService := service.NewPaymentService(paymentRepo)

	authSettings := service.DefaultAuthSettings(cfg.Auth.JWTSecret)
	authSettings.Issuer = cfg.Auth.JWTIssuer
	authSettings.TokenTTL = cfg.Auth.TokenTTL
	authSettings.OTPTTL = cfg.Auth.OTPTTL
	authSettings.OTPMaxAttempts = cfg.Auth.OTPMaxAttempts

	authService := service.NewAuthService(
		service.WithUserStore(userRepo),
		service.WithOTPStore(otpStore),
		service.WithNotifier(service.LogNotifier{RevealCodes: cfg.Log.Env == "development"}),
		service.WithAuthSettings(authSettings),
	)

	// Initialize handlers
	otpLimiter := handlers.NewRateLimiter(cfg.Auth.OTPSendLimit, cfg.Auth.OTPSendWindow)

	router := handlers.NewRouter(handlers.Routes{
		Health:        handlers.NewHealthHandler(db, assistantService.Providers),
		Auth:          handlers.NewAuthHandler(authService),
		Assistant:     handlers.NewAssistantHandler(assistantService),
		Lawyers:       handlers.NewLawyerHandler(lawyerService),
		Cases:         handlers.NewCaseHandler(caseService, cfg.Server.MaxUploadBytes),
		Payments:      handlers.NewPaymentHandler(paymentService),
		Tokens:        authService,
		OTPLimiter:    otpLimiter,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	})

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go janitor(janitorCtx, time.Minute, otpLimiter, otpStore)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Info().Str("addr", server.Addr).Strs("ai_providers", assistantService.Providers()).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
}

func initPostgres(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info().Int32("max_conns", cfg.MaxConns).Msg("Postgres connection established")
	return pool, nil
}

// initOTPStore uses Redis when configured and reachable, memory otherwise
func initOTPStore(ctx context.Context, cfg config.RedisConfig) (service.OTPStore, func()) {
	if cfg.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, keeping OTPs in memory")
		return service.NewMemoryOTPStore(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unreachable, keeping OTPs in memory")
		_ = client.Close()
		return service.NewMemoryOTPStore(), func() {}
	}

	log.Info().Str("addr", cfg.Addr).Msg("Redis OTP store connected")
	return service.NewRedisOTPStore(client), func() { _ = client.Close() }
}

// initGemini returns nil when no API key is configured
func initGemini(ctx context.Context, cfg config.AIConfig) *service.GeminiCompleter {
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, the assistant will only classify")
		return nil
	}

	completer, err := service.NewGeminiCompleter(ctx, service.GeminiConfig{
		APIKey:          cfg.GeminiAPIKey,
		Models:          cfg.Models,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
		RetriesPerModel: cfg.RetriesPerModel,
		Timeout:         cfg.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini")
	}

	log.Info().Strs("models", cfg.Models).Msg("Gemini client initialized")
	return completer
}

// janitor drops idle rate-limit buckets and expired in-memory OTPs
func janitor(ctx context.Context, every time.Duration, limiter *handlers.RateLimiter, otps service.OTPStore) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	mem, _ := otps.(*service.MemoryOTPStore)
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dropped := limiter.Sweep(10 * time.Minute)
			if mem != nil {
				dropped += mem.Sweep(now)
			}
			if dropped > 0 {
				log.Debug().Int("dropped", dropped).Msg("Janitor swept idle entries")
			}
		}
	}
}
