package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
)

func newAccuracyFormatter(t *testing.T) Formatter {
	t.Helper()
	rules, err := policy.Default()
	require.NoError(t, err)
	return NewAccuracyFormatter(rules)
}

func TestAccuracyFormatter_Paths(t *testing.T) {
	f := newAccuracyFormatter(t)

	assert.Equal(t, ".docs-reports/docs-accuracy-report.json", f.Inputs()[0].Path)
	assert.Equal(t, ".docs-reports/docs-accuracy-report.md", f.Output())
}

func TestAccuracyFormatter_Clean(t *testing.T) {
	md := render(t, newAccuracyFormatter(t), `{"issues": [], "issue_count": 0, "clean": true}`)

	assert.True(t, strings.HasPrefix(md, "# 🔎 Documentation Accuracy Report\n"))
	assert.Contains(t, md, "**Generated:** 2026-01-02 03:04:05 UTC")
	assert.Contains(t, md, "## Status\n\n✅ All documentation accuracy checks passed")
	assert.Contains(t, md, "## Issues\n\nNo issues found.\n\n## How to Fix")
	assert.Contains(t, md, "task hygiene:docs-accuracy")
}

func TestAccuracyFormatter_GroupsInFixedOrder(t *testing.T) {
	input := `{
  "issues": [
    {"type": "stale_task_ref", "file": "docs/a.md", "line": 2, "message": "Task reference ` + "`task x:y`" + ` not found in Taskfile.yml"},
    {"type": "broken_link", "file": "docs/a.md", "line": 5, "message": "Broken link"},
    {"type": "stale_task_ref", "file": "docs/b.md", "line": 9, "message": "Another task"}
  ],
  "issue_count": 3,
  "clean": false
}`

	md := render(t, newAccuracyFormatter(t), input)

	assert.Contains(t, md, "⚠️ Found **3** accuracy issue(s) that may need attention.")
	assert.Contains(t, md, "### Stale Taskfile References\n\n- **docs/a.md** (line 2): Task reference `task x:y` not found in Taskfile.yml\n- **docs/b.md** (line 9): Another task\n")
	assert.Contains(t, md, "### Broken Internal Links\n\n- **docs/a.md** (line 5): Broken link\n")
	assert.Less(t, strings.Index(md, "Broken Internal Links"), strings.Index(md, "Stale Taskfile References"))
	assert.NotContains(t, md, "Stale Workflow References")
	assert.NotContains(t, md, "Possible Stale File References")
	assert.NotContains(t, md, "No issues found.")
}

func TestAccuracyFormatter_SectionOrderIgnoresInputOrder(t *testing.T) {
	input := `{"issues": [
    {"type": "odd_kind", "file": "docs/x.md", "line": 1, "message": "m"},
    {"type": "stale_file_ref", "file": "docs/a.md", "line": 4, "message": "f"},
    {"type": "stale_workflow_ref", "file": "docs/a.md", "line": 3, "message": "w"},
    {"type": "stale_task_ref", "file": "docs/a.md", "line": 2, "message": "t"},
    {"type": "broken_link", "file": "docs/a.md", "line": 1, "message": "l"}
  ], "clean": false}`

	md := render(t, newAccuracyFormatter(t), input)

	headings := []string{
		"### Broken Internal Links",
		"### Stale Taskfile References",
		"### Stale Workflow References",
		"### Possible Stale File References",
		"### odd_kind",
	}
	for i := 1; i < len(headings); i++ {
		require.Contains(t, md, headings[i])
		assert.Less(t, strings.Index(md, headings[i-1]), strings.Index(md, headings[i]), headings[i])
	}
}

func TestAccuracyFormatter_Defaults(t *testing.T) {
	md := render(t, newAccuracyFormatter(t), `{}`)

	assert.Contains(t, md, "✅ All documentation accuracy checks passed")
	assert.Contains(t, md, "No issues found.")
}

func TestAccuracyFormatter_UnknownTypeUsesRawLabel(t *testing.T) {
	md := render(t, newAccuracyFormatter(t), `{"issues": [{"type": "odd_kind", "file": "docs/x.md", "line": 1, "message": "m"}], "clean": false}`)

	assert.Contains(t, md, "### odd_kind")
	assert.Contains(t, md, "Found **1** accuracy issue(s)")
}

func TestAccuracyFormatter_Malformed(t *testing.T) {
	_, err := newAccuracyFormatter(t).Render([][]byte{[]byte(`[`)}, fixedNow)

	assert.Error(t, err)
}
