package policy

import (
	_ "embed"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yml
var defaultRules []byte

type Rules struct {
	DocsDir          string   `yaml:"docs_dir"`
	IndexFile        string   `yaml:"index_file"`
	CategoryReadme   string   `yaml:"category_readme"`
	AllowedRootFiles []string `yaml:"allowed_root_files"`

	Taskfile     string   `yaml:"taskfile"`
	WorkflowsDir string   `yaml:"workflows_dir"`
	IndexedTrees []string `yaml:"indexed_trees"`

	ReportDir       string `yaml:"report_dir"`
	StructureReport string `yaml:"structure_report"`
	AccuracyReport  string `yaml:"accuracy_report"`

	FileRefs FileRefRules `yaml:"file_refs"`
}

type FileRefRules struct {
	TrackedExtensions  []string `yaml:"tracked_extensions"`
	BareNameExtensions []string `yaml:"bare_name_extensions"`
	PlaceholderMarkers []string `yaml:"placeholder_markers"`
	ContextRadius      int      `yaml:"context_radius"`
	SuggestionPhrases  []string `yaml:"suggestion_phrases"` // regular expression alternatives
}

// Default returns the rules embedded in the binary.
func Default() (*Rules, error) {
	return FromYAML(defaultRules)
}

func FromYAML(data []byte) (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (r *Rules) validate() error {
	switch {
	case r.DocsDir == "":
		return fmt.Errorf("rules: docs_dir is required")
	case r.IndexFile == "":
		return fmt.Errorf("rules: index_file is required")
	case r.CategoryReadme == "":
		return fmt.Errorf("rules: category_readme is required")
	case r.ReportDir == "":
		return fmt.Errorf("rules: report_dir is required")
	case r.FileRefs.ContextRadius < 0:
		return fmt.Errorf("rules: file_refs.context_radius must not be negative")
	}
	if _, err := r.SuggestionPattern(); err != nil {
		return fmt.Errorf("rules: file_refs.suggestion_phrases: %w", err)
	}
	return nil
}

func (r *Rules) IsAllowedRootFile(name string) bool {
	return slices.Contains(r.AllowedRootFiles, name)
}

// SuggestionPattern joins the suggestion phrases into one case-insensitive
// alternation.
func (r *Rules) SuggestionPattern() (*regexp.Regexp, error) {
	if len(r.FileRefs.SuggestionPhrases) == 0 {
		return nil, nil
	}
	return regexp.Compile(`(?i)(` + strings.Join(r.FileRefs.SuggestionPhrases, "|") + `)`)
}
