package formatter

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/jsonutil"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
	"github.com/tracker-tv/docs-governance-bots/models"
)

var issueLabels = map[models.IssueKind]string{
	models.IssueBrokenLink:       "Broken Internal Links",
	models.IssueStaleTaskRef:     "Stale Taskfile References",
	models.IssueStaleWorkflowRef: "Stale Workflow References",
	models.IssueStaleFileRef:     "Possible Stale File References",
}

var issueOrder = []models.IssueKind{
	models.IssueBrokenLink,
	models.IssueStaleTaskRef,
	models.IssueStaleWorkflowRef,
	models.IssueStaleFileRef,
}

type accuracyFormatter struct {
	input  string
	output string
}

func NewAccuracyFormatter(rules *policy.Rules) Formatter {
	input := path.Join(rules.ReportDir, rules.AccuracyReport)
	return &accuracyFormatter{
		input:  input,
		output: strings.TrimSuffix(input, path.Ext(input)) + ".md",
	}
}

func (f *accuracyFormatter) Name() string   { return "accuracy-md" }
func (f *accuracyFormatter) Output() string { return f.output }

func (f *accuracyFormatter) Inputs() []Input {
	return []Input{{
		Path:  f.input,
		Label: path.Base(f.input),
		Hint:  "run check-accuracy first",
	}}
}

type accuracyDocument struct {
	Issues     []models.Issue `json:"issues"`
	IssueCount *int           `json:"issue_count"`
	Clean      *bool          `json:"clean"`
}

type issueGroup struct {
	Label  string
	Issues []models.Issue
}

type accuracyView struct {
	Generated string
	Clean     bool
	Count     int
	Groups    []issueGroup
}

func (f *accuracyFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	var doc accuracyDocument
	if err := jsonutil.Unmarshal(inputs[0], &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", f.input, err)
	}

	view := accuracyView{
		Generated: generated(now),
		Clean:     true,
		Count:     len(doc.Issues),
		Groups:    groupIssues(doc.Issues),
	}
	if doc.Clean != nil {
		view.Clean = *doc.Clean
	}
	if doc.IssueCount != nil {
		view.Count = *doc.IssueCount
	}

	return execute("accuracy.md.tmpl", view)
}

// groupIssues buckets issues by kind. Known kinds come first in issueOrder,
// unknown kinds follow in the order they first appear. Empty groups are
// omitted.
func groupIssues(issues []models.Issue) []issueGroup {
	byKind := map[models.IssueKind][]models.Issue{}
	var unknown []models.IssueKind

	for _, issue := range issues {
		if _, known := issueLabels[issue.Type]; !known {
			if _, seen := byKind[issue.Type]; !seen {
				unknown = append(unknown, issue.Type)
			}
		}
		byKind[issue.Type] = append(byKind[issue.Type], issue)
	}

	var groups []issueGroup
	for _, kind := range issueOrder {
		if len(byKind[kind]) > 0 {
			groups = append(groups, issueGroup{Label: issueLabels[kind], Issues: byKind[kind]})
		}
	}
	for _, kind := range unknown {
		groups = append(groups, issueGroup{Label: string(kind), Issues: byKind[kind]})
	}
	return groups
}
