package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/jsonutil"
)

const sastDir = ".sast-reports"

type semgrepDocument struct {
	Results []semgrepResult `json:"results"`
	Errors  []semgrepError  `json:"errors"`
}

type semgrepResult struct {
	CheckID string `json:"check_id"`
	Path    string `json:"path"`
	Start   struct {
		Line int `json:"line"`
	} `json:"start"`
	Extra struct {
		Severity string `json:"severity"`
		Message  string `json:"message"`
	} `json:"extra"`
}

// semgrepError carries Type as either a string or a list whose first element
// names the error kind.
type semgrepError struct {
	Type    any    `json:"type"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Spans   []struct {
		Start struct {
			Line int `json:"line"`
		} `json:"start"`
	} `json:"spans"`
}

func (e semgrepError) kind() string {
	switch t := e.Type.(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

type sastFinding struct {
	Rule     string
	Severity string
	Location string
	Message  string
}

type sastView struct {
	Generated       string
	Total           int
	Errors          []sastFinding
	Warnings        []sastFinding
	ScanErrors      int
	PartialParsing  []string
	OtherScanErrors []string
}

type sastFormatter struct{}

func NewSASTFormatter() Formatter { return sastFormatter{} }

func (sastFormatter) Name() string    { return "sast-md" }
func (sastFormatter) Inputs() []Input { return []Input{jsonInput(sastDir, "sast-report.json")} }
func (sastFormatter) Output() string  { return sastDir + "/sast-report.md" }

func (f sastFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	var doc semgrepDocument
	if err := jsonutil.Unmarshal(inputs[0], &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", f.Inputs()[0].Path, err)
	}

	view := sastView{
		Generated:  generated(now),
		Total:      len(doc.Results),
		ScanErrors: len(doc.Errors),
	}

	for _, r := range doc.Results {
		finding := sastFinding{
			Rule:     r.CheckID,
			Severity: strings.ToUpper(r.Extra.Severity),
			Location: fmt.Sprintf("%s:%d", r.Path, r.Start.Line),
			Message:  shortenMessage(r.Extra.Message),
		}
		if finding.Severity == "ERROR" {
			view.Errors = append(view.Errors, finding)
		} else {
			view.Warnings = append(view.Warnings, finding)
		}
	}

	for _, e := range doc.Errors {
		if e.kind() == "PartialParsing" {
			line := 0
			if len(e.Spans) > 0 {
				line = e.Spans[0].Start.Line
			}
			view.PartialParsing = append(view.PartialParsing, fmt.Sprintf("%s:%d", e.Path, line))
			continue
		}
		view.OtherScanErrors = append(view.OtherScanErrors, firstLine(e.Message))
	}

	return execute("sast.md.tmpl", view)
}

// shortenMessage keeps messages over 80 characters to 77 plus "...".
func shortenMessage(msg string) string {
	msg = strings.Join(strings.Fields(msg), " ")
	if r := []rune(msg); len(r) > 80 {
		return string(r[:77]) + "..."
	}
	return msg
}

func firstLine(s string) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "\n")
	return s
}
