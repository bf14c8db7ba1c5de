package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-component-shop/config"
	"github.com/fekuna/omnipos-component-shop/internal/cli"
	"github.com/fekuna/omnipos-component-shop/internal/database"
	"github.com/fekuna/omnipos-component-shop/internal/logger"

	catH "github.com/fekuna/omnipos-component-shop/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-component-shop/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-component-shop/internal/category/usecase"

	prodH "github.com/fekuna/omnipos-component-shop/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-component-shop/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-component-shop/internal/product/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.App.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig).With(zap.String("session_id", uuid.NewString()))
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Connect to Database
	db, err := database.Open(ctx, &database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.SQLitePath,
		Host:            cfg.Database.Postgres.Host,
		Port:            cfg.Database.Postgres.Port,
		User:            cfg.Database.Postgres.User,
		Password:        cfg.Database.Postgres.Password,
		DBName:          cfg.Database.Postgres.DBName,
		SSLMode:         cfg.Database.Postgres.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Error("could not connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		appLogger.Error("could not prepare schema", zap.Error(err))
		return err
	}
	appLogger.Debug("store ready", zap.String("driver", db.DriverName()))

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewSQLRepository(db)
	prodRepo := prodRepoPkg.NewSQLRepository(db)

	// 5. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, appLogger)

	// 6. Initialize Handlers
	app := &cli.App{
		Categories: catH.NewCategoryHandler(catUC, appLogger),
		Products:   prodH.NewProductHandler(prodUC, appLogger),
	}

	// 7. Run
	return cli.NewRootCommand(app).ExecuteContext(ctx)
}
