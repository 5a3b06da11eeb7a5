package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
	"github.com/tracker-tv/docs-governance-bots/models"
)

type GroundTruthService interface {
	Collect(ctx context.Context) (*models.GroundTruth, error)
}

type groundTruthService struct {
	root  string
	rules *policy.Rules
}

func NewGroundTruthService(root string, rules *policy.Rules) GroundTruthService {
	return &groundTruthService{root: root, rules: rules}
}

func (s *groundTruthService) Collect(ctx context.Context) (*models.GroundTruth, error) {
	tasks, err := s.tasks()
	if err != nil {
		return nil, err
	}

	workflows, err := s.workflows()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := s.projectFiles()
	if err != nil {
		return nil, err
	}

	return &models.GroundTruth{
		Tasks:     tasks,
		Workflows: workflows,
		Files:     files,
	}, nil
}

func (s *groundTruthService) tasks() (map[string]struct{}, error) {
	data, err := os.ReadFile(filepath.Join(s.root, s.rules.Taskfile))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.rules.Taskfile, err)
	}
	return policy.ParseTaskNames(string(data)), nil
}

func (s *groundTruthService) workflows() (map[string]struct{}, error) {
	workflows := make(map[string]struct{})

	entries, err := os.ReadDir(filepath.Join(s.root, s.rules.WorkflowsDir))
	if errors.Is(err, fs.ErrNotExist) {
		return workflows, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.rules.WorkflowsDir, err)
	}

	for _, entry := range entries {
		if isRegularFile(filepath.Join(s.root, s.rules.WorkflowsDir, entry.Name())) {
			workflows[entry.Name()] = struct{}{}
		}
	}
	return workflows, nil
}

// projectFiles indexes non-hidden root entries ("name" for files, "name/"
// for directories) and every path below the indexed trees.
func (s *groundTruthService) projectFiles() (map[string]struct{}, error) {
	files := make(map[string]struct{})

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("listing repository root: %w", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := os.Stat(filepath.Join(s.root, entry.Name()))
		if err != nil {
			continue
		}
		switch {
		case info.Mode().IsRegular():
			files[entry.Name()] = struct{}{}
		case info.IsDir():
			files[entry.Name()+"/"] = struct{}{}
		}
	}

	fsys := os.DirFS(s.root)
	for _, tree := range s.rules.IndexedTrees {
		base := filepath.ToSlash(tree)
		err := doublestar.GlobWalk(fsys, path.Join(base, "**"), func(p string, _ fs.DirEntry) error {
			if p != base {
				files[p] = struct{}{}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("indexing %s: %w", tree, err)
		}
	}

	return files, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
