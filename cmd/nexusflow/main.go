package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/tnguyen21/nexusflow-tui/internal/app"
	"github.com/tnguyen21/nexusflow-tui/internal/config"
	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/logging"
	"github.com/tnguyen21/nexusflow-tui/internal/server"
)

func main() {
	configPath := flag.StringP("config", "c", config.DefaultConfigPath, "path to config file")
	port := flag.IntP("port", "p", 0, "override listen port")
	local := flag.BoolP("local", "l", false, "run the page in this terminal instead of serving SSH")
	level := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(*configPath, *port, *local, *level); err != nil {
		fmt.Fprintln(os.Stderr, "nexusflow:", err)
		os.Exit(1)
	}
}

func run(configPath string, port int, local bool, level string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if port > 0 {
		cfg.Port = port
	}
	if level != "" {
		cfg.LogLevel = level
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// The local page owns the terminal, so it only logs to a file.
	opts := logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Out: os.Stderr}
	if local {
		opts.Out = nil
	}
	logger, closeLog, err := logging.New(opts)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	store, err := content.NewStore(cfg.ContentPath, logger)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := store.Watch(ctx); err != nil {
		logger.Warn("content hot reload disabled", "err", err)
	}

	if local {
		return runLocal(ctx, cfg, store, logger)
	}
	return serve(ctx, cfg, store, logger)
}

func runLocal(ctx context.Context, cfg config.Config, store *content.Store, logger *log.Logger) error {
	m := app.New(cfg, store, logger)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running page: %w", err)
	}
	return nil
}

func serve(ctx context.Context, cfg config.Config, store *content.Store, logger *log.Logger) error {
	srv, err := server.New(&cfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("NexusFlow listening", "port", cfg.Port)
		errc <- srv.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("NexusFlow stopped")
	return nil
}
