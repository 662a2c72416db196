package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/souq-next/internal/app"
	"github.com/souq-next/internal/config"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/provider"
	"github.com/souq-next/internal/router"
	"github.com/souq-next/internal/worker"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	mode := flag.String("mode", "all", "运行模式：all / api / worker")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.MaxOpenConns,
		MaxIdleConns:           cfg.Database.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.ConnMaxIdleTimeSeconds,
	}); err != nil {
		logger.Errorw("db_init_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("db_migrate_failed", "error", err)
		os.Exit(1)
	}

	container := provider.NewContainer(cfg)
	defer container.Close()

	logger.Infow("app_start", "mode", *mode, "db_driver", cfg.Database.Driver)

	var services []app.Service
	if *mode == "all" || *mode == "api" {
		services = append(services, app.NewHTTPService(
			cfg.Server.Host, cfg.Server.Port, router.New(container),
		))
	}
	if (*mode == "all" || *mode == "worker") && cfg.Queue.Enable {
		services = append(services, worker.NewService(container))
	}
	if len(services) == 0 {
		logger.Errorw("no_service_to_run", "mode", *mode)
		os.Exit(1)
	}

	app.Run(services...)
}
