package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"dashboard-seed-backend/internal/config"
	"dashboard-seed-backend/internal/database"
	"dashboard-seed-backend/internal/routes"
	"dashboard-seed-backend/internal/services/seeder"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	// Long-lived pooled connection for the read endpoints. The seeder
	// dials its own connection per run.
	db, err := database.Connect(context.Background(), cfg.ReadDSN(), cfg.ReadMaxRetries, cfg.ReadRetryBackoff, openWithTimeout(cfg.ConnectTimeout), logger)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}

	seedSvc := seeder.New(cfg, logger)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, seedSvc, logger)

	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func openWithTimeout(timeout time.Duration) database.OpenFunc {
	return func(ctx context.Context, dsn string) (*gorm.DB, error) {
		dialCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return database.Open(dialCtx, dsn)
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("LOG_CONFIG") == "prod" {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		)
		return zap.New(core)
	}

	zc := zap.NewDevelopmentConfig()
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zc.EncoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(core)
}
