package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-vault/internal/client"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/tui"
	"github.com/MKhiriev/go-note-vault/internal/workers"
	"github.com/MKhiriev/go-note-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("notevault").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("notevault", cfg.Log.File, cfg.Log.Level)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("temp_dir", cfg.Storage.TempDir).
		Bool("init", cfg.Init).
		Msg("notevault starting")

	services, err := service.NewClientServices(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	var ui client.UI
	if !cfg.Init {
		ui, err = tui.New(services, cfg.Vault.Path, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	sweeper := workers.NewSnapshotSweeper(nil, cfg.Storage.TempDir, log)
	app, err := client.NewApp(cfg, services, ui, workers.NewWorkers(sweeper), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
