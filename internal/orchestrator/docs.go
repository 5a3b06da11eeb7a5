package orchestrator

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/formatter"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
	"github.com/tracker-tv/docs-governance-bots/internal/report"
	"github.com/tracker-tv/docs-governance-bots/internal/service"
	"github.com/tracker-tv/docs-governance-bots/models"
)

// DocsBot runs the documentation checks and report formatters, writes their
// artifacts and hands them to the optional publisher and archiver.
type DocsBot struct {
	root      string
	rules     *policy.Rules
	structure service.StructureService
	accuracy  service.AccuracyService
	publisher service.PublishService
	archiver  service.ArchiveService
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*DocsBot)

func WithPublisher(p service.PublishService) Option {
	return func(b *DocsBot) { b.publisher = p }
}

func WithArchiver(a service.ArchiveService) Option {
	return func(b *DocsBot) { b.archiver = a }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *DocsBot) { b.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(b *DocsBot) { b.now = now }
}

func NewDocsBot(root string, rules *policy.Rules, structure service.StructureService, accuracy service.AccuracyService, opts ...Option) *DocsBot {
	b := &DocsBot{
		root:      root,
		rules:     rules,
		structure: structure,
		accuracy:  accuracy,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *DocsBot) CheckStructure(ctx context.Context) (*models.StructureReport, error) {
	violations, err := b.structure.Validate(ctx)
	if err != nil {
		return nil, err
	}

	result := models.NewStructureReport(violations)
	rel := path.Join(b.rules.ReportDir, b.rules.StructureReport)
	if err := report.WriteJSON(filepath.Join(b.root, rel), result); err != nil {
		return nil, err
	}
	b.logger.Debug("structure report written", "path", rel, "violations", result.ViolationCount)

	b.archive(ctx, rel)
	return result, nil
}

func (b *DocsBot) CheckAccuracy(ctx context.Context) (*models.AccuracyReport, error) {
	issues, err := b.accuracy.Scan(ctx)
	if err != nil {
		return nil, err
	}

	result := models.NewAccuracyReport(issues)
	rel := path.Join(b.rules.ReportDir, b.rules.AccuracyReport)
	if err := report.WriteJSON(filepath.Join(b.root, rel), result); err != nil {
		return nil, err
	}
	b.logger.Debug("accuracy report written", "path", rel, "issues", result.IssueCount)

	b.archive(ctx, rel)
	return result, nil
}

// Render runs f and returns the path of the markdown it wrote, relative to
// the repository root. Publishing and archiving problems are logged only.
func (b *DocsBot) Render(ctx context.Context, f formatter.Formatter) (string, error) {
	out, err := formatter.Run(b.root, f, b.now())
	if err != nil {
		return "", err
	}
	b.logger.Debug("markdown report written", "formatter", f.Name(), "path", out)

	b.publish(ctx, f.Name(), out)
	b.archive(ctx, out)
	return out, nil
}

func (b *DocsBot) publish(ctx context.Context, name, rel string) {
	if b.publisher == nil {
		return
	}

	md, err := os.ReadFile(filepath.Join(b.root, rel))
	if err != nil {
		b.logger.Warn("publishing report failed", "report", name, "error", err)
		return
	}

	result, err := b.publisher.Publish(ctx, name, string(md))
	if err != nil {
		b.logger.Warn("publishing report failed", "report", name, "error", err)
		return
	}
	b.logger.Info("report published", "report", name, "action", result.Action, "url", result.CommentURL)
}

func (b *DocsBot) archive(ctx context.Context, rel string) {
	if b.archiver == nil {
		return
	}

	key, err := b.archiver.Archive(ctx, rel)
	if err != nil {
		b.logger.Warn("archiving report failed", "path", rel, "error", err)
		return
	}
	b.logger.Info("report archived", "key", key)
}
