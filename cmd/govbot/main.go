package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tracker-tv/docs-governance-bots/internal/archive"
	"github.com/tracker-tv/docs-governance-bots/internal/config"
	"github.com/tracker-tv/docs-governance-bots/internal/console"
	"github.com/tracker-tv/docs-governance-bots/internal/formatter"
	"github.com/tracker-tv/docs-governance-bots/internal/github"
	"github.com/tracker-tv/docs-governance-bots/internal/orchestrator"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
	"github.com/tracker-tv/docs-governance-bots/internal/service"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	cmdStructure = "check-structure"
	cmdAccuracy  = "check-accuracy"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitFailure
	}

	printer := console.New(stdout, stderr, cfg.ColorDisabled())
	logger := newLogger(stderr, cfg.LogLevel)

	rules, err := policy.Default()
	if err != nil {
		printer.Error(fmt.Sprintf("❌ %v", err))
		return exitFailure
	}
	formatters := formatter.Registry(rules)

	if len(args) != 1 {
		usage(stderr, formatters)
		return exitUsage
	}
	command := args[0]
	if command != cmdStructure && command != cmdAccuracy && formatters[command] == nil {
		fmt.Fprintf(stderr, "unknown command %q\n\n", command)
		usage(stderr, formatters)
		return exitUsage
	}

	bot, err := newBot(cfg, rules, logger)
	if err != nil {
		printer.Error(fmt.Sprintf("❌ %v", err))
		return exitFailure
	}

	switch command {
	case cmdStructure:
		printer.Progress("🔍 Validating documentation structure...")
		result, err := bot.CheckStructure(ctx)
		if err != nil {
			printer.Error(fmt.Sprintf("❌ %v", err))
			return exitFailure
		}
		printer.Structure(result)
		if !result.Valid {
			return exitFailure
		}
		return exitOK

	case cmdAccuracy:
		printer.Progress("🔍 Checking documentation accuracy…")
		result, err := bot.CheckAccuracy(ctx)
		if err != nil {
			printer.Error(fmt.Sprintf("❌ %v", err))
			return exitFailure
		}
		printer.Accuracy(result)
		if !result.Clean {
			return exitFailure
		}
		return exitOK

	default:
		out, err := bot.Render(ctx, formatters[command])
		if errors.Is(err, formatter.ErrInputNotFound) {
			printer.Error(fmt.Sprintf("❌ %v", err))
			return exitFailure
		}
		if err != nil {
			printer.Error(fmt.Sprintf("❌ Error generating markdown report: %v", err))
			return exitFailure
		}
		printer.Success("✅ Markdown report generated successfully")
		printer.Detail("   " + out)
		return exitOK
	}
}

func newBot(cfg *config.Config, rules *policy.Rules, logger *slog.Logger) (*orchestrator.DocsBot, error) {
	truthSvc := service.NewGroundTruthService(cfg.Root, rules)
	structureSvc := service.NewStructureService(cfg.Root, rules)
	accuracySvc, err := service.NewAccuracyService(cfg.Root, rules, truthSvc)
	if err != nil {
		return nil, err
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(logger)}

	if cfg.GitHub.Enabled() {
		owner, repo, err := cfg.GitHub.OwnerRepo()
		if err != nil {
			// publishing is best effort
			logger.Warn("publishing disabled", "error", err)
		} else {
			ghClient := github.New(cfg.GitHub.Token, owner, repo)
			opts = append(opts, orchestrator.WithPublisher(service.NewPublishService(ghClient, cfg.GitHub.PRNumber)))
			logger.Debug("publishing enabled", "repository", cfg.GitHub.Repository, "pr", cfg.GitHub.PRNumber)
		}
	}

	if cfg.Archive.Enabled() {
		store, err := archive.NewS3Store(archive.S3Config{
			Endpoint:  cfg.Archive.Endpoint,
			Region:    cfg.Archive.Region,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			Bucket:    cfg.Archive.Bucket,
			UseSSL:    cfg.Archive.UseSSL,
		})
		if err != nil {
			// archiving is best effort
			logger.Warn("archiving disabled", "error", err)
		} else {
			opts = append(opts, orchestrator.WithArchiver(service.NewArchiveService(cfg.Root, cfg.Archive.RunID, store)))
		}
	}

	return orchestrator.NewDocsBot(cfg.Root, rules, structureSvc, accuracySvc, opts...), nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func usage(w io.Writer, formatters map[string]formatter.Formatter) {
	var b strings.Builder
	b.WriteString("usage: govbot <command>\n\ncommands:\n")
	fmt.Fprintf(&b, "  %-20s validate docs/ against docs/index.md\n", cmdStructure)
	fmt.Fprintf(&b, "  %-20s check docs/ for broken links and stale references\n", cmdAccuracy)
	for _, name := range formatter.Names(formatters) {
		f := formatters[name]
		fmt.Fprintf(&b, "  %-20s render %s\n", name, f.Output())
	}
	fmt.Fprint(w, b.String())
}
