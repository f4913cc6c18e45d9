package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/auth"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/cache"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/config"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/database"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/logger"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/server"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/repo"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/service"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/handler"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Attendance{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	loc := cfg.Location()
	log.Info("attendance locale", zap.String("timezone", loc.String()))

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	userRepo := repo.NewUserRepo(db)
	attRepo := repo.NewAttendanceRepo(db)

	authSvc := service.NewAuthService(userRepo, jwter, log)
	attSvc := service.NewAttendanceService(attRepo, c, loc, log)
	mgrSvc := service.NewManagerService(userRepo, attRepo, loc, log)
	dashSvc := service.NewDashboardService(userRepo, attRepo, c,
		time.Duration(cfg.Redis.TTLSec)*time.Second, loc, log)

	r := router.NewAPIEngine(log, jwter, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Attendance: handler.NewAttendanceHandler(attSvc),
		Manager:    handler.NewManagerHandler(mgrSvc, loc),
		Dashboard:  handler.NewDashboardHandler(dashSvc),
	}, cfg.CORS.Origins)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("attendance api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("attendance api start FAILED", zap.Error(err))
		}
	}()
	log.Info("attendance api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("attendance api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
