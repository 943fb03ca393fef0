package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SpinForge_Go/internal/bootstrap"
	"github.com/osse101/SpinForge_Go/internal/config"
	"github.com/osse101/SpinForge_Go/internal/pricing"
	"github.com/osse101/SpinForge_Go/internal/rtp"
	"github.com/osse101/SpinForge_Go/internal/server"
	"github.com/osse101/SpinForge_Go/internal/shards"
	"github.com/osse101/SpinForge_Go/internal/slots"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	startCtx, cancel := context.WithTimeout(context.Background(), bootstrap.StartupTimeout)
	defer cancel()

	bundle, err := bootstrap.LoadEngineBundle(startCtx, cfg)
	if err != nil {
		return err
	}
	engine, err := slots.NewEngine(bundle)
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(startCtx, cfg)
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		repos.Close()
		return err
	}

	// Controller and spins draw from separate streams so a seed reproduces both
	var controllerSeed int64
	if cfg.RNGSeed != 0 {
		controllerSeed = int64(utils.DeriveSeed(cfg.RNGSeed, 1))
	}
	controller := rtp.NewController(bundle.TargetRTP, bundle.Controller, repos.RTPStates, utils.NewSource(controllerSeed))

	shardService := shards.NewService(repos.Shards, publisher, bundle.Shards.RedemptionThreshold)
	spinService := slots.NewService(engine, controller, shardService, repos.Results, publisher, utils.NewSource(cfg.RNGSeed))
	calculator := pricing.NewCalculator(bundle, engine.Multipliers, engine.Economy.Catalog())

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,
		HealthChecks:   repos.HealthChecks,
	}, spinService, shardService, calculator)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	shutdownErr := bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		Repositories:       repos,
	})
	return errors.Join(runErr, shutdownErr)
}
