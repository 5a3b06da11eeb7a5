package formatter

import (
	"fmt"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/jsonutil"
)

const secretsDir = ".secrets-reports"

// gitleaksFinding omits the Secret and Match fields so leaked values never
// reach the rendered report.
type gitleaksFinding struct {
	RuleID      string `json:"RuleID"`
	Description string `json:"Description"`
	File        string `json:"File"`
	StartLine   int    `json:"StartLine"`
	Commit      string `json:"Commit"`
}

func (f gitleaksFinding) ShortCommit() string {
	if len(f.Commit) > 7 {
		return f.Commit[:7]
	}
	return f.Commit
}

type secretsView struct {
	Generated string
	Findings  []gitleaksFinding
}

type secretsFormatter struct{}

func NewSecretsFormatter() Formatter { return secretsFormatter{} }

func (secretsFormatter) Name() string    { return "secrets-md" }
func (secretsFormatter) Inputs() []Input { return []Input{jsonInput(secretsDir, "secrets-report.json")} }
func (secretsFormatter) Output() string  { return secretsDir + "/secrets-report.md" }

func (f secretsFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	// gitleaks writes null when nothing was found
	var findings []gitleaksFinding
	if err := jsonutil.Unmarshal(inputs[0], &findings); err != nil {
		return "", fmt.Errorf("parsing %s: %w", f.Inputs()[0].Path, err)
	}

	return execute("secrets.md.tmpl", secretsView{
		Generated: generated(now),
		Findings:  findings,
	})
}
