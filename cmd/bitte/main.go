package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jnises/bitte/internal/config"
	"github.com/jnises/bitte/internal/services"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "bitte",
	Short:   "Serve an object-storage bucket as a tree of presigned links",
	Long: `Bitte exposes the contents of a single S3-compatible bucket as a
browsable directory tree. Directory requests return a listing; object
requests redirect to a time-limited presigned URL, so the server never
streams object bytes itself.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.Flags().String("listen", "", "listen address (default: 127.0.0.1:3030, env: BITTE_SERVER_LISTEN)")
	rootCmd.Flags().String("endpoint", "", "object store endpoint (env: BITTE_STORE_ENDPOINT)")
	rootCmd.Flags().String("region", "", "object store region (default: us-east-1, env: BITTE_STORE_REGION)")
	rootCmd.Flags().String("bucket", "", "bucket to serve (env: BITTE_STORE_BUCKET)")
	rootCmd.Flags().Duration("ttl", 0, "presigned link lifetime (default: 24h, env: BITTE_LINKS_TTL)")
	rootCmd.Flags().String("log-level", "", "log level: debug, info, warn, error (env: BITTE_LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	setupLogging(cfg.Log)

	store, err := services.NewMinioStore(services.StoreOptions{
		Endpoint:  cfg.Store.Endpoint,
		Region:    cfg.Store.Region,
		AccessKey: cfg.Store.AccessKey,
		SecretKey: cfg.Store.SecretKey,
		UseSSL:    cfg.Store.UseSSL,
		Bucket:    cfg.Store.Bucket,
		Delimiter: cfg.Store.Delimiter,
		PageSize:  cfg.Store.PageSize,
	})
	if err != nil {
		return fmt.Errorf("connect object store: %w", err)
	}

	lister := services.NewLister(store, services.ListerOptions{
		TTL:       cfg.Links.TTL,
		MaxPages:  cfg.Links.MaxPages,
		Delimiter: cfg.Store.Delimiter,
	})

	e := newServer(lister, cfg.Store.Delimiter)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server",
		"addr", cfg.Server.Listen,
		"endpoint", cfg.Store.Endpoint,
		"bucket", cfg.Store.Bucket,
		"ttl", cfg.Links.TTL)
	if err := e.Start(cfg.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
