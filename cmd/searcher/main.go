package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samvad-hq/searcher/internal/app"
	"github.com/samvad-hq/searcher/internal/config"
	"github.com/samvad-hq/searcher/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "searcher failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("usage: searcher <query>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("searcher starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	searcher, err := app.NewSearcher(cfg, nil, log)
	if err != nil {
		logger.ErrorObj("failed to initialize searcher", "error", err)
		return err
	}

	if err := searcher.Run(ctx, query, os.Stdout); err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}
	fmt.Fprintln(os.Stdout)

	return nil
}
