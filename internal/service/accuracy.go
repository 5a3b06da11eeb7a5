package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
	"github.com/tracker-tv/docs-governance-bots/models"
)

const existsCacheSize = 4096

type AccuracyService interface {
	Scan(ctx context.Context) ([]models.Issue, error)
}

type accuracyService struct {
	root       string
	rules      *policy.Rules
	truth      GroundTruthService
	suggestion *regexp.Regexp
	workflowRe *regexp.Regexp
}

func NewAccuracyService(root string, rules *policy.Rules, truth GroundTruthService) (AccuracyService, error) {
	suggestion, err := rules.SuggestionPattern()
	if err != nil {
		return nil, fmt.Errorf("compiling suggestion phrases: %w", err)
	}

	return &accuracyService{
		root:       root,
		rules:      rules,
		truth:      truth,
		suggestion: suggestion,
		workflowRe: regexp.MustCompile(regexp.QuoteMeta(rules.WorkflowsDir) + `/([a-z0-9_-]+\.yml)`),
	}, nil
}

// Scan runs every check over every markdown file below the docs directory,
// in sorted path order. Checks are independent; all of them run per file.
func (s *accuracyService) Scan(ctx context.Context) ([]models.Issue, error) {
	docsPath := filepath.Join(s.root, s.rules.DocsDir)
	if info, err := os.Stat(docsPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s/: %w", s.rules.DocsDir, ErrDocsNotFound)
	}

	truth, err := s.truth.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting ground truth: %w", err)
	}

	files, err := doublestar.Glob(os.DirFS(s.root), path.Join(s.rules.DocsDir, "**", "*.md"), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing markdown files: %w", err)
	}
	slices.Sort(files)

	cache, err := lru.New[string, bool](existsCacheSize)
	if err != nil {
		return nil, err
	}
	sc := &scanner{
		root:       s.root,
		rules:      s.rules,
		truth:      truth,
		suggestion: s.suggestion,
		workflowRe: s.workflowRe,
		exists:     cache,
	}

	var issues []models.Issue
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(file)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		content := string(data)

		issues = append(issues, sc.checkLinks(file, content)...)
		issues = append(issues, sc.checkTaskRefs(file, content)...)
		issues = append(issues, sc.checkWorkflowRefs(file, content)...)
		issues = append(issues, sc.checkFileRefs(file, content)...)
	}

	return issues, nil
}
