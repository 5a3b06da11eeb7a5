package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/jsonutil"
)

const trivyDir = ".trivy-reports"

type trivyDocument struct {
	Results []trivyResult `json:"Results"`
}

type trivyResult struct {
	Target            string                  `json:"Target"`
	Type              string                  `json:"Type"`
	Vulnerabilities   []trivyVulnerability    `json:"Vulnerabilities"`
	Secrets           []trivySecret           `json:"Secrets"`
	Misconfigurations []trivyMisconfiguration `json:"Misconfigurations"`
}

type trivyVulnerability struct {
	VulnerabilityID  string `json:"VulnerabilityID"`
	PkgName          string `json:"PkgName"`
	InstalledVersion string `json:"InstalledVersion"`
	FixedVersion     string `json:"FixedVersion"`
	Severity         string `json:"Severity"`
	Title            string `json:"Title"`
}

type trivySecret struct {
	RuleID   string `json:"RuleID"`
	Category string `json:"Category"`
	Title    string `json:"Title"`
	Severity string `json:"Severity"`
	Target   string `json:"-"`
}

type trivyMisconfiguration struct {
	ID          string `json:"ID"`
	Title       string `json:"Title"`
	Description string `json:"Description"`
	Severity    string `json:"Severity"`
	Status      string `json:"Status"`
	Target      string `json:"-"`
}

type severityCount struct {
	Severity string
	Count    int
}

type vulnerabilityRow struct {
	ID        string
	Package   string
	Installed string
	Fixed     string
	Title     string
	Target    string
}

type vulnerabilitySection struct {
	Severity string
	Rows     []vulnerabilityRow
}

// vulnerabilitySummary is the severity breakdown shared by the Trivy based
// reports.
type vulnerabilitySummary struct {
	Counts   []severityCount
	Total    int
	Packages int
	Sections []vulnerabilitySection
}

func (s vulnerabilitySummary) count(severity string) int {
	for _, c := range s.Counts {
		if c.Severity == severity {
			return c.Count
		}
	}
	return 0
}

func parseTrivy(data []byte, source string) (*trivyDocument, error) {
	var doc trivyDocument
	if err := jsonutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return &doc, nil
}

func summarizeVulnerabilities(doc *trivyDocument) vulnerabilitySummary {
	rows := map[string][]vulnerabilityRow{}
	packages := map[string]struct{}{}
	total := 0

	for _, result := range doc.Results {
		for _, v := range result.Vulnerabilities {
			sev := normalizeSeverity(v.Severity)
			rows[sev] = append(rows[sev], vulnerabilityRow{
				ID:        v.VulnerabilityID,
				Package:   v.PkgName,
				Installed: v.InstalledVersion,
				Fixed:     v.FixedVersion,
				Title:     v.Title,
				Target:    result.Target,
			})
			packages[v.PkgName+"@"+v.InstalledVersion] = struct{}{}
			total++
		}
	}

	summary := vulnerabilitySummary{Total: total, Packages: len(packages)}
	for _, sev := range severityOrder {
		summary.Counts = append(summary.Counts, severityCount{Severity: sev, Count: len(rows[sev])})
		if len(rows[sev]) > 0 {
			summary.Sections = append(summary.Sections, vulnerabilitySection{Severity: sev, Rows: rows[sev]})
		}
	}
	return summary
}

type trivyFormatter struct{}

func NewTrivyFormatter() Formatter { return trivyFormatter{} }

func (trivyFormatter) Name() string    { return "trivy-md" }
func (trivyFormatter) Inputs() []Input { return []Input{jsonInput(trivyDir, "trivy-report.json")} }
func (trivyFormatter) Output() string  { return trivyDir + "/trivy-report.md" }

type trivyView struct {
	vulnerabilitySummary
	Generated         string
	HighCritical      int
	Alert             bool
	Secrets           []trivySecret
	Misconfigurations []trivyMisconfiguration
}

func (f trivyFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	doc, err := parseTrivy(inputs[0], f.Inputs()[0].Path)
	if err != nil {
		return "", err
	}

	view := trivyView{
		vulnerabilitySummary: summarizeVulnerabilities(doc),
		Generated:            generated(now),
	}
	for _, result := range doc.Results {
		for _, s := range result.Secrets {
			s.Target = result.Target
			s.Severity = normalizeSeverity(s.Severity)
			view.Secrets = append(view.Secrets, s)
		}
		for _, m := range result.Misconfigurations {
			if strings.EqualFold(m.Status, "PASS") {
				continue
			}
			m.Target = result.Target
			m.Severity = normalizeSeverity(m.Severity)
			view.Misconfigurations = append(view.Misconfigurations, m)
		}
	}
	view.HighCritical = view.count("CRITICAL") + view.count("HIGH")
	view.Alert = view.HighCritical > 0 || len(view.Secrets) > 0

	return execute("trivy.md.tmpl", view)
}
