package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vbonduro/gridtrack/internal/config"
	"github.com/vbonduro/gridtrack/internal/db"
	"github.com/vbonduro/gridtrack/internal/logging"
	"github.com/vbonduro/gridtrack/internal/service"
	"github.com/vbonduro/gridtrack/internal/store"
	"github.com/vbonduro/gridtrack/internal/web"
	"github.com/vbonduro/gridtrack/internal/workdir/local"
)

func main() {
	if err := config.LoadEnvFile(config.EnvFile()); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.WebDBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.WebDBPath, "error", err)
		return
	}

	workdirs, err := local.NewLocalProvisioner(cfg.WorkdirRoot())
	if err != nil {
		logger.Error("failed to initialize working directory root", "path", cfg.WorkdirRoot(), "error", err)
		return
	}

	assetService := service.NewAssetService(store.NewAssetStore(database), workdirs, logger)
	taskService := service.NewTaskService(store.NewTaskStore(database), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ReconcileOnStart {
		if _, err := assetService.ReconcileWorkdirs(ctx); err != nil {
			logger.Error("startup reconcile failed", "error", err)
		}
	}

	server := web.NewServer(assetService, taskService, cfg.CORSAllowOrigin, logger)
	if err := server.Run(ctx, cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
