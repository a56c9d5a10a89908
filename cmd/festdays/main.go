// Command festdays shows a countdown to upcoming festivals.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/festdays/internal/application/settings"
	"github.com/tesso57/festdays/internal/application/usecase"
	"github.com/tesso57/festdays/internal/infrastructure/config"
	"github.com/tesso57/festdays/internal/infrastructure/feed"
	"github.com/tesso57/festdays/internal/logging"
	"github.com/tesso57/festdays/internal/presentation/tui"
	"go.uber.org/zap"
)

var version = "dev"

// CLI holds command-line flags. Non-empty flags override the config file.
type CLI struct {
	Config       string           `help:"Config file path." type:"path"`
	FeedURL      string           `help:"Festival CSV feed URL." name:"feed-url"`
	LogFile      string           `help:"Log file path." name:"log-file" type:"path"`
	LogLevel     string           `help:"Log level (debug/info/warn/error)." name:"log-level"`
	ShareCommand string           `help:"Native share command, invoked as: command TITLE TEXT URL." name:"share-command"`
	Version      kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("festdays"),
		kong.Description("Countdown to upcoming festivals."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "festdays: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := applyFlags(store.Settings, cli)

	logger := logging.NewOrNop(cfg.Log)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("config", store.Path()),
		zap.String("feed_url", cfg.FeedURL),
	)

	fetcher := feed.NewFetcher(feed.ParseOptions{Location: time.Local, DateLayout: cfg.DateLayout})
	catalogSvc := usecase.NewCatalogService(fetcher, cfg.FeedURL, cfg.Timeout(), logger, time.Now)
	shareSvc := tui.NewShareService(cfg, logger)

	p := tea.NewProgram(
		tui.NewModel(cfg, catalogSvc, shareSvc, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		return err
	}
	return nil
}

func applyFlags(cfg settings.Settings, cli CLI) settings.Settings {
	if cli.FeedURL != "" {
		cfg.FeedURL = cli.FeedURL
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.ShareCommand != "" {
		cfg.Share.Command = cli.ShareCommand
	}
	return cfg
}
