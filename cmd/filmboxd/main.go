// Command filmboxd runs the film catalog service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"

	"filmbox/internal/catalog"
	"filmbox/internal/config"
	"filmbox/internal/logging"
	"filmbox/internal/server"
	"filmbox/internal/store"
)

func main() {
	configPath := flag.String("config", "", "configuration file path")
	bind := flag.String("bind", "", "listen address override")
	flag.Parse()

	if err := run(*configPath, *bind); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, bindOverride string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if bindOverride != "" {
		cfg.Server.Bind = bindOverride
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stdout", filepath.Join(cfg.Paths.LogDir, "filmboxd.log")},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	// One service process per store file; the contract assumes a single
	// writer process.
	instanceLock := flock.New(filepath.Join(cfg.Paths.LogDir, "filmboxd.lock"))
	locked, err := instanceLock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another filmboxd instance is already running")
	}
	defer instanceLock.Unlock() //nolint:errcheck

	st := store.New(cfg.Paths.StorePath, logger)
	if cfg.Catalog.SeedSample {
		if err := st.EnsureSeed(ctx, catalog.SampleRecords()); err != nil {
			logger.Warn("seed store", logging.Error(err))
		}
	}

	srv, err := server.New(cfg, st, logger)
	if err != nil {
		return err
	}
	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	srv.Stop()
	logger.Info("filmboxd shutting down")
	return nil
}
