package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/classroom-availability-api/api/swagger"
	"github.com/noah-isme/classroom-availability-api/internal/handler"
	internalmiddleware "github.com/noah-isme/classroom-availability-api/internal/middleware"
	"github.com/noah-isme/classroom-availability-api/internal/repository"
	"github.com/noah-isme/classroom-availability-api/internal/service"
	"github.com/noah-isme/classroom-availability-api/internal/view"
	"github.com/noah-isme/classroom-availability-api/pkg/cache"
	"github.com/noah-isme/classroom-availability-api/pkg/config"
	"github.com/noah-isme/classroom-availability-api/pkg/database"
	"github.com/noah-isme/classroom-availability-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/classroom-availability-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/classroom-availability-api/pkg/middleware/requestid"
)

// @title Classroom Availability API
// @version 1.0.0
// @description Classroom availability search and login check
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			logr.Fatal("failed to ensure schema", zap.Error(err))
		}
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	roomRepo := repository.NewRoomRepository(db, cfg.Search.MatchMode)
	userRepo := repository.NewUserRepository(db)

	var throttle *service.LoginThrottle
	if cfg.Auth.ThrottleEnabled {
		throttleRepo := repository.NewThrottleRepository(connectRedis(cfg, logr), "classroom:")
		defer throttleRepo.Close() //nolint:errcheck
		if throttleRepo.Enabled() {
			throttle = service.NewLoginThrottle(throttleRepo, service.LoginThrottleConfig{
				Enabled:     true,
				MaxAttempts: cfg.Auth.ThrottleMaxAttempts,
				Window:      cfg.Auth.ThrottleWindow,
			}, logr)
		}
	}

	roomSvc := service.NewRoomService(roomRepo, validate, logr, metricsSvc, service.RoomServiceConfig{QueryTimeout: cfg.Database.QueryTimeout})
	loginSvc := service.NewLoginService(userRepo, throttle, validate, logr, metricsSvc, service.LoginConfig{
		AllowPlaintext: cfg.Auth.AllowPlaintext,
		QueryTimeout:   cfg.Database.QueryTimeout,
	})
	exportSvc := service.NewExportService(roomSvc, logr, nil, nil)

	if cfg.Auth.AllowPlaintext {
		logr.Warn("plaintext password comparison is enabled; set AUTH_ALLOW_PLAINTEXT=false once passwords are hashed")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc, "/metrics"))
	r.SetHTMLTemplate(view.MustTemplates())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Pages:  handler.NewPageHandler(cfg.StaticDir),
		Rooms:  handler.NewRoomHandler(roomSvc, exportSvc),
		Login:  handler.NewLoginHandler(loginSvc),
		Health: handler.NewHealthHandler(metricsSvc, roomRepo, 2*time.Second),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "db_driver", cfg.Database.Driver, "match_mode", cfg.Search.MatchMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// connectRedis returns nil when Redis is unreachable so the login throttle is
// disabled instead of blocking startup.
func connectRedis(cfg *config.Config, logr *zap.Logger) *redis.Client {
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, login throttle disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		return nil
	}
	return client
}
