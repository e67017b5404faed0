// SPDX-License-Identifier: MIT

// Command gallery serves the video catalog HTTP API.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/soraprompt/gallery/internal/api"
	"github.com/soraprompt/gallery/internal/config"
	"github.com/soraprompt/gallery/internal/log"
	"github.com/soraprompt/gallery/internal/service"
	"github.com/soraprompt/gallery/internal/store"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to YAML config file (overrides GALLERY_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		base := log.Base()
		base.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Configure(log.Config{Level: cfg.LogLevel, Service: "gallery"})
	logger := log.WithComponent("main")

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		logger.Fatal().Err(err).Str(log.FieldPath, cfg.DataFile).Msg("open store")
	}

	svc := service.New(st, cfg)
	srv := api.New(cfg, svc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})

	err = g.Wait()

	// Drain queued writes before exiting so a shutdown mid-create never
	// abandons an accepted operation.
	st.Close()

	if err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
	logger.Info().Str(log.FieldEvent, "shutdown.complete").Msg("gallery stopped")
}
