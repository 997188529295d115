package main

import (
	"context"
	"os"

	"github.com/skywhysales/skyclient/internal/client/cli"
	"github.com/skywhysales/skyclient/internal/client/config"
	"github.com/skywhysales/skyclient/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewZerologLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	app.Run(ctx)
}
