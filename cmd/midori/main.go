// Package main is the Midori CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sustainsearch/midori/internal/cli"
	"github.com/sustainsearch/midori/internal/config"
	"github.com/sustainsearch/midori/internal/confwatch"
	"github.com/sustainsearch/midori/internal/controller"
	"github.com/sustainsearch/midori/internal/history"
	"github.com/sustainsearch/midori/internal/models"
	"github.com/sustainsearch/midori/internal/server"
	"github.com/sustainsearch/midori/internal/upstream"
	"github.com/sustainsearch/midori/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/midori/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used.
// Returns the config and the path that was actually loaded (for watching, etc.).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "history":
		runHistory()
	case "version", "--version", "-v":
		fmt.Printf("midori version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Bool("debug", debugMode),
	)

	client := upstream.NewClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
		logger,
	)

	var recorder history.Recorder
	var log *history.SQLiteHistory
	if !cfg.History.Disabled {
		log, err = history.NewSQLiteHistory(cfg.History.DatabasePath)
		if err != nil {
			logger.Fatal("Failed to open search log", zap.Error(err))
		}
		defer log.Close()
		recorder = log
	}

	ctrl := controller.New(client, recorder, cfg.Upstream.ResultLimit, logger)
	srv, err := server.NewServer(ctrl, &cfg.Server, logger)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}

	watchOpts := []confwatch.WatcherOption{}
	if debugMode {
		watchOpts = append(watchOpts, confwatch.WithLogger(logger))
	}
	watch := confwatch.NewWatcher(resolvedConfigPath, func() {
		reloaded, loadErr := config.Load(resolvedConfigPath)
		if loadErr != nil {
			logger.Warn("config reload failed", zap.Error(loadErr))
			return
		}
		if reloaded.Upstream.BaseURL != client.BaseURL() {
			logger.Info("upstream base URL changed",
				zap.String("base_url", reloaded.Upstream.BaseURL))
			client.SetBaseURL(reloaded.Upstream.BaseURL)
		}
	}, watchOpts...)
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := watch.Start(watchCtx); err != nil {
		logger.Warn("config watch unavailable", zap.Error(err))
	}

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watch.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printSearchUsage prints search subcommand usage.
func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: midori search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  midori search Amazon drought
  midori search "carbon policy"                       # same as above
  midori search --mode bm25 renewable subsidies        # keyword-only ranking
  midori search --sentiment critical deforestation     # only critical coverage
  midori search --output json glacier melt             # parseable output
`)
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchArgsReorder moves any flags (and their values) that appear after the query
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument, so "midori search \"query\" -mode bm25"
// would otherwise leave -mode unparsed.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runSearch() {
	searchArgs := searchArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	baseURL := fs.String("server", "", "search service base URL (default from config)")
	mode := fs.String("mode", "hybrid", "search mode: hybrid, vector, or bm25")
	filter := fs.String("sentiment", "all", "sentiment filter: all, positive, neutral, or critical")
	limit := fs.Int("limit", 0, "number of results (default from config)")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(searchArgs)

	if fs.NArg() < 1 {
		printSearchUsage(fs)
		os.Exit(1)
	}
	queryStr := buildSearchQuery(fs.Args())
	if queryStr == "" {
		printSearchUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	parsedMode, err := models.ParseSearchMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	parsedFilter, err := models.ParseSentimentFilter(*filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		// The CLI works without a config file; fall back to defaults.
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}
	if *baseURL != "" {
		cfg.Upstream.BaseURL = *baseURL
	}
	if *limit > 0 {
		cfg.Upstream.ResultLimit = *limit
	}

	client := upstream.NewClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
		zap.NewNop(),
	)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)
	defer cancel()

	response, err := client.Search(ctx, models.SearchRequest{
		Query:  queryStr,
		Mode:   parsedMode,
		Filter: parsedFilter,
		Limit:  cfg.Upstream.ResultLimit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, parsedMode, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 20, "number of records to show")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := history.NewSQLiteHistory(cfg.History.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open search log: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	records, err := log.Recent(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read search log: %v\n", err)
		os.Exit(1)
	}
	cli.WriteHistory(os.Stdout, records)
}

func printUsage() {
	fmt.Println(`midori - web UI for the SustainSearch hybrid search service

Usage:
  midori server [flags]           Start the web UI server
  midori search [flags] <query>   Run one search from the terminal
  midori history [flags]          Show recent searches from the local log
  midori version                  Show version
  midori help                     Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/midori/config.yaml)
  --debug            Enable debug logging

Search Flags:
  --server string     Search service base URL (default from config, or http://localhost:8000)
  --mode string       Search mode: hybrid, vector, or bm25 (default: hybrid)
  --sentiment string  Sentiment filter: all, positive, neutral, or critical (default: all)
  --limit int         Number of results (default from config, or 8)
  --output string     Output format: text or json (default: text)

History Flags:
  --limit int        Number of records to show (default: 20)`)
}
