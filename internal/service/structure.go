package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/tracker-tv/docs-governance-bots/internal/policy"
	"github.com/tracker-tv/docs-governance-bots/models"
)

type StructureService interface {
	Validate(ctx context.Context) ([]models.Violation, error)
}

type structureService struct {
	root  string
	rules *policy.Rules
}

func NewStructureService(root string, rules *policy.Rules) StructureService {
	return &structureService{root: root, rules: rules}
}

// Validate compares the docs tree against the categories declared in the
// governance index. Violations are ordered: expected categories first, then
// unexpected root files, then unexpected root directories, each sorted.
func (s *structureService) Validate(ctx context.Context) ([]models.Violation, error) {
	docsPath := filepath.Join(s.root, s.rules.DocsDir)
	if !exists(docsPath) {
		return nil, fmt.Errorf("%s/: %w", s.rules.DocsDir, ErrDocsNotFound)
	}

	categories, err := s.categories()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	violations := s.checkExpected(docsPath, categories)

	unexpected, err := s.checkUnexpected(docsPath, categories)
	if err != nil {
		return nil, err
	}

	return append(violations, unexpected...), nil
}

func (s *structureService) categories() ([]string, error) {
	indexPath := path.Join(s.rules.DocsDir, s.rules.IndexFile)

	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(indexPath)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", indexPath, ErrIndexNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", indexPath, err)
	}

	return policy.ExtractCategories(string(data)), nil
}

func (s *structureService) checkExpected(docsPath string, categories []string) []models.Violation {
	var violations []models.Violation

	for _, category := range categories {
		if !exists(filepath.Join(docsPath, category)) {
			p := fmt.Sprintf("%s/%s/", s.rules.DocsDir, category)
			violations = append(violations, models.Violation{
				Type:    models.ViolationMissingDirectory,
				Path:    p,
				Message: "Missing directory: " + p,
			})
			continue
		}

		if !exists(filepath.Join(docsPath, category, s.rules.CategoryReadme)) {
			p := path.Join(s.rules.DocsDir, category, s.rules.CategoryReadme)
			violations = append(violations, models.Violation{
				Type:    models.ViolationMissingReadme,
				Path:    p,
				Message: fmt.Sprintf("Missing %s: %s", s.rules.CategoryReadme, p),
			})
		}
	}

	return violations
}

func (s *structureService) checkUnexpected(docsPath string, categories []string) ([]models.Violation, error) {
	entries, err := os.ReadDir(docsPath)
	if err != nil {
		return nil, fmt.Errorf("listing %s/: %w", s.rules.DocsDir, err)
	}

	var files, dirs []string
	for _, entry := range entries {
		// Stat follows symlinks; dangling links are neither files nor directories.
		info, err := os.Stat(filepath.Join(docsPath, entry.Name()))
		if err != nil {
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if !s.rules.IsAllowedRootFile(entry.Name()) {
				files = append(files, entry.Name())
			}
		case info.IsDir():
			if !slices.Contains(categories, entry.Name()) {
				dirs = append(dirs, entry.Name())
			}
		}
	}
	slices.Sort(files)
	slices.Sort(dirs)

	violations := make([]models.Violation, 0, len(files)+len(dirs))
	for _, name := range files {
		p := path.Join(s.rules.DocsDir, name)
		violations = append(violations, models.Violation{
			Type:    models.ViolationUnexpectedFile,
			Path:    p,
			Message: "Unexpected file (not in index): " + p,
		})
	}
	for _, name := range dirs {
		p := fmt.Sprintf("%s/%s/", s.rules.DocsDir, name)
		violations = append(violations, models.Violation{
			Type:    models.ViolationUnexpectedDirectory,
			Path:    p,
			Message: "Unexpected directory (not in index): " + p,
		})
	}

	return violations, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
