// Package main implements the interactive shoe store inventory tracker.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jdmaguire/shoestore/internal/config"
	"github.com/jdmaguire/shoestore/internal/service"
	"github.com/jdmaguire/shoestore/internal/store"
	"github.com/jdmaguire/shoestore/internal/transport/cli"
	"github.com/jdmaguire/shoestore/pkg/bootstrap"
	"github.com/jdmaguire/shoestore/pkg/configloader"
)

const appName = "shoestore"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, builds the store and service, and hands control to
// the interactive menu loop until the user exits.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](appName, config.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level).With("session_id", uuid.NewString())
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", "config", cfg.String())

	inventory := store.NewFileStore(cfg.Storage.Path, logger)
	if err := inventory.Load(); err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	svc := service.NewService(inventory)
	ui := cli.New(svc, os.Stdin, os.Stdout, logger)

	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("menu loop failed: %w", err)
	}
	return nil
}
