package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tensorland/modelbox/internal/blob"
	"github.com/tensorland/modelbox/internal/config"
	"github.com/tensorland/modelbox/internal/rpcserver"
	"github.com/tensorland/modelbox/internal/store"
	"github.com/tensorland/modelbox/internal/store/postgres"
)

func newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run or configure the ModelBox server",
	}
	cmd.AddCommand(newServerStartCmd())
	cmd.AddCommand(newServerInitConfigCmd())
	return cmd
}

func newServerStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServerStart(cmd.Context())
		},
	}
}

func newServerInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(configPath); err != nil {
				return fmt.Errorf("init-config: %w", err)
			}
			slog.Info("wrote default configuration", "path", configPath)
			return nil
		},
	}
}

func runServerStart(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	backend, err := newBlobBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init blob backend: %w", err)
	}

	pg, err := postgres.New(ctx, postgres.Config{
		Host:     cfg.DatabaseHost,
		Name:     cfg.DatabaseName,
		Username: cfg.DatabaseUsername,
		Password: cfg.DatabasePassword,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pg.Close()

	var repo store.Repository = pg
	server := rpcserver.New(repo, backend)
	return server.Start(ctx, cfg.GRPCListenAddr)
}

func newBlobBackend(ctx context.Context, cfg config.Config) (blob.Backend, error) {
	switch cfg.ObjectStore.Provider {
	case config.ObjectStoreS3:
		return blob.NewS3(ctx, cfg.ObjectStore.Bucket)
	case config.ObjectStoreGCS:
		return blob.NewGCS(ctx, cfg.ObjectStore.Bucket)
	case config.ObjectStoreFileSystem, "":
		return blob.NewFileSystem(cfg.ObjectStore.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown object_store.provider %q", cfg.ObjectStore.Provider)
	}
}
