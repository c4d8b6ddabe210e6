package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/majlis/majlis-api/internal/config"
	"github.com/majlis/majlis-api/internal/domain/admin"
	"github.com/majlis/majlis-api/internal/domain/auth"
	"github.com/majlis/majlis-api/internal/domain/category"
	"github.com/majlis/majlis-api/internal/domain/comment"
	"github.com/majlis/majlis-api/internal/domain/feed"
	"github.com/majlis/majlis-api/internal/domain/moderation"
	"github.com/majlis/majlis-api/internal/domain/permission"
	"github.com/majlis/majlis-api/internal/domain/profile"
	"github.com/majlis/majlis-api/internal/domain/topic"
	"github.com/majlis/majlis-api/internal/domain/user"
	"github.com/majlis/majlis-api/internal/middleware"
	"github.com/majlis/majlis-api/internal/pkg/cache"
	"github.com/majlis/majlis-api/internal/pkg/database"
	"github.com/majlis/majlis-api/internal/pkg/imaging"
	"github.com/majlis/majlis-api/internal/pkg/jwt"
	pkgresponse "github.com/majlis/majlis-api/internal/pkg/response"
	"github.com/majlis/majlis-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Majlis API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redisClient)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	cacheClient := cache.New(redisClient)

	var store storage.Storage
	if cfg.R2AccountID != "" {
		store, err = storage.NewR2Storage(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create R2 storage")
		}
	} else {
		store, err = storage.NewLocalStorage("./uploads", "/uploads")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create local storage")
		}
		log.Warn().Msg("R2 not configured, storing avatars on local disk")
	}

	processor := imaging.NewProcessor(imaging.DefaultConfig())

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	profileRepo := profile.NewRepository(db)
	categoryRepo := category.NewRepository(db)
	topicRepo := topic.NewRepository(db)
	commentRepo := comment.NewRepository(db)
	permissionRepo := permission.NewRepository(db)
	reportRepo := moderation.NewReportRepository(db)
	feedRepo := feed.NewRepository(db)

	// ---------- Services ----------
	profileService := profile.NewService(profileRepo, store, processor)
	authService := auth.NewService(userRepo, jwtService, redisClient, profileService)
	topicService := topic.NewService(topicRepo, categoryRepo, cacheClient, cfg.TopicEditWindow, cfg.TopicCacheTTL)
	categoryService := category.NewService(categoryRepo, topicRepo)
	commentService := comment.NewService(commentRepo, topicRepo, cfg.TopicEditWindow)
	feedService := feed.NewService(feedRepo, topicRepo, userRepo, cacheClient, cfg.FeedCacheTTL)
	adminService := admin.NewService(userRepo)

	permissionStore := permission.NewStore(permissionRepo)
	permissionStore.OnInvalidate(func() {
		log.Info().Msg("permission grants invalidated")
	})
	permissionResolver := permission.NewResolver(permissionStore, profileRepo)

	reportService := moderation.NewReportService(reportRepo, topicRepo, commentRepo)
	executor := moderation.NewExecutor(topicRepo, categoryRepo, cacheClient)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	categoryHandler := category.NewHandler(categoryService)
	topicHandler := topic.NewHandler(topicService)
	commentHandler := comment.NewHandler(commentService)
	permissionHandler := permission.NewHandler(permissionStore, permissionResolver)
	moderationHandler := moderation.NewHandler(executor, reportService, permissionResolver)
	feedHandler := feed.NewHandler(feedService)
	adminHandler := admin.NewHandler(adminService)

	authMiddleware := middleware.Auth(jwtService)
	adminMiddleware := middleware.RequireAdmin()
	staffMiddleware := middleware.RequireStaff()

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/profiles", profileHandler.Routes(authMiddleware))
		r.Mount("/categories", categoryHandler.Routes(authMiddleware, adminMiddleware))
		r.Mount("/topics", topicHandler.Routes(authMiddleware))
		r.Mount("/topics/{id}/comments", commentHandler.TopicRoutes(authMiddleware))
		r.Mount("/comments", commentHandler.Routes(authMiddleware, staffMiddleware))
		r.Mount("/permissions", permissionHandler.Routes(authMiddleware))
		r.Mount("/moderation", moderationHandler.Routes(authMiddleware, staffMiddleware))
		r.Mount("/reports", moderationHandler.ReportRoutes(authMiddleware))
		r.Mount("/feed", feedHandler.Routes(authMiddleware))

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)
			r.Mount("/users", adminHandler.Routes())
			r.Mount("/permissions", permissionHandler.AdminRoutes())
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
