// Command badgecheck validates an Open Badges v2 credential document
// against the published schema and prints a deterministic verdict. Run
// with "serve" instead of an input file to expose the same engine as an
// MCP tool over stdio.
//
// Usage:
//
//	badgecheck [--config path] <assertion.json>
//	badgecheck [--config path] serve
//
// Optional environment variables:
//
//	BADGECHECK_CONFIG            - path to a TOML config file
//	BADGECHECK_LOG_LEVEL         - log level: debug, info, warn, error (default: info)
//	BADGECHECK_EXTENSIONS_DIR    - directory of extension definitions
//	BADGECHECK_FETCH_TIMEOUT_SECONDS
//	BADGECHECK_FETCH_MAX_RETRIES
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mgylling/badgecheck/internal/config"
	"github.com/mgylling/badgecheck/internal/engine"
	"github.com/mgylling/badgecheck/internal/extension"
	"github.com/mgylling/badgecheck/internal/fetch"
	"github.com/mgylling/badgecheck/internal/mcp"
	"github.com/mgylling/badgecheck/internal/report"
	"github.com/mgylling/badgecheck/internal/tools/validate"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "badgecheck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: badgecheck [--config path] <assertion.json>|serve")
	}
	arg := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if arg == "serve" {
		return runServe(ctx, cfg, logger)
	}

	logger.Info("starting badgecheck", "version", Version, "input", arg)
	doc, err := loadInputDocument(arg)
	if err != nil {
		return fmt.Errorf("loading input document: %w", err)
	}

	state, err := engine.LoadDocument(doc)
	if err != nil {
		return fmt.Errorf("seeding engine state: %w", err)
	}

	extensions, err := extension.LoadRegistry(cfg.Extensions.Directory)
	if err != nil {
		return fmt.Errorf("loading extension registry: %w", err)
	}

	driver := &engine.Driver{
		Extensions: extensions,
		Fetcher:    fetch.NewClient(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, uint64(cfg.Fetch.MaxRetries)),
		Logger:     logger,
	}

	final, err := driver.Run(ctx, state)
	if err != nil {
		return fmt.Errorf("running engine: %w", err)
	}

	verdict := report.FromQueue(final.Queue)
	fmt.Print(verdict.String())
	if !verdict.Valid {
		os.Exit(1)
	}
	return nil
}

// runServe exposes the engine as a single-tool MCP server over stdio, the
// same transport and wire format cmd/specmcp used for its spec-authoring
// tools.
func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	extensions, err := extension.LoadRegistry(cfg.Extensions.Directory)
	if err != nil {
		return fmt.Errorf("loading extension registry: %w", err)
	}
	fetcher := fetch.NewClient(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, uint64(cfg.Fetch.MaxRetries))

	registry := mcp.NewRegistry()
	registry.Register(validate.NewValidateBadge(extensions, fetcher))

	server := mcp.NewServer(registry, mcp.ServerInfo{
		Name:    "badgecheck",
		Version: Version,
	}, logger)

	return server.Run(ctx)
}

func loadInputDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
