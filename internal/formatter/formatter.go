// Package formatter turns the JSON, CSV and text artifacts of external
// scanners into markdown summaries.
package formatter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/report"
)

var ErrInputNotFound = errors.New("not found")

// Input is one artifact a formatter consumes. Label names it in diagnostics.
type Input struct {
	Path  string
	Label string
	Hint  string
}

type Formatter interface {
	Name() string
	Inputs() []Input
	Output() string
	Render(inputs [][]byte, now time.Time) (string, error)
}

// Run reads every input of f relative to root, renders it and writes the
// output file. It returns the output path relative to root.
func Run(root string, f Formatter, now time.Time) (string, error) {
	inputs := f.Inputs()
	data := make([][]byte, 0, len(inputs))

	for _, in := range inputs {
		b, err := os.ReadFile(filepath.Join(root, in.Path))
		if errors.Is(err, fs.ErrNotExist) {
			if in.Hint != "" {
				return "", fmt.Errorf("%s %w: %s (%s)", in.Label, ErrInputNotFound, in.Path, in.Hint)
			}
			return "", fmt.Errorf("%s %w: %s", in.Label, ErrInputNotFound, in.Path)
		}
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", in.Path, err)
		}
		data = append(data, b)
	}

	md, err := f.Render(data, now)
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.Name(), err)
	}

	if err := report.WriteFile(filepath.Join(root, f.Output()), []byte(md)); err != nil {
		return "", err
	}
	return f.Output(), nil
}

func jsonInput(dir, file string) Input {
	return Input{Path: filepath.ToSlash(filepath.Join(dir, file)), Label: "JSON report"}
}

func generated(now time.Time) string {
	return now.UTC().Format("2006-01-02 15:04:05 UTC")
}
