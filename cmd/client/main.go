package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/client"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("brandcoach-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		fmt.Print(buildInfo())
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	runErr := app.Run(ctx, cfg.Args)

	// pending field edits get a last chance even after an interrupt
	closeCtx, cancel := context.WithTimeout(log.WithContext(context.Background()), 10*time.Second)
	defer cancel()
	if err = app.Close(closeCtx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	switch {
	case runErr == nil:
		return 0
	case errors.Is(runErr, client.ErrUsage):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		return 1
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
