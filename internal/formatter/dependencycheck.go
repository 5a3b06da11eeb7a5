package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/jsonutil"
)

const dependencyCheckDir = ".dependency-check-reports"

type dependencyCheckDocument struct {
	ScanInfo struct {
		EngineVersion string `json:"engineVersion"`
	} `json:"scanInfo"`
	ProjectInfo struct {
		Name string `json:"name"`
	} `json:"projectInfo"`
	Dependencies []dependencyCheckDependency `json:"dependencies"`
}

type dependencyCheckDependency struct {
	FileName        string                         `json:"fileName"`
	Vulnerabilities []dependencyCheckVulnerability `json:"vulnerabilities"`
}

type dependencyCheckVulnerability struct {
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	CVSSv3      *struct {
		BaseScore float64 `json:"baseScore"`
	} `json:"cvssv3"`
	CVSSv2 *struct {
		Score float64 `json:"score"`
	} `json:"cvssv2"`
}

func (v dependencyCheckVulnerability) score() string {
	switch {
	case v.CVSSv3 != nil:
		return strconv.FormatFloat(v.CVSSv3.BaseScore, 'f', 1, 64)
	case v.CVSSv2 != nil:
		return strconv.FormatFloat(v.CVSSv2.Score, 'f', 1, 64)
	default:
		return ""
	}
}

type dependencyCheckRow struct {
	CVE         string
	Dependency  string
	Score       string
	Description string
}

type dependencyCheckSection struct {
	Severity string
	Rows     []dependencyCheckRow
}

type dependencyCheckView struct {
	Generated    string
	Project      string
	Engine       string
	Scanned      int
	Vulnerable   int
	Total        int
	HighCritical int
	Counts       []severityCount
	Sections     []dependencyCheckSection
}

type dependencyCheckFormatter struct{}

func NewDependencyCheckFormatter() Formatter { return dependencyCheckFormatter{} }

func (dependencyCheckFormatter) Name() string { return "dependency-check-md" }
func (dependencyCheckFormatter) Inputs() []Input {
	return []Input{jsonInput(dependencyCheckDir, "dependency-check-report.json")}
}
func (dependencyCheckFormatter) Output() string {
	return dependencyCheckDir + "/dependency-check-report.md"
}

func (f dependencyCheckFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	var doc dependencyCheckDocument
	if err := jsonutil.Unmarshal(inputs[0], &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", f.Inputs()[0].Path, err)
	}

	view := dependencyCheckView{
		Generated: generated(now),
		Project:   doc.ProjectInfo.Name,
		Engine:    doc.ScanInfo.EngineVersion,
		Scanned:   len(doc.Dependencies),
	}

	rows := map[string][]dependencyCheckRow{}
	for _, dep := range doc.Dependencies {
		if len(dep.Vulnerabilities) > 0 {
			view.Vulnerable++
		}
		for _, v := range dep.Vulnerabilities {
			sev := normalizeSeverity(v.Severity)
			rows[sev] = append(rows[sev], dependencyCheckRow{
				CVE:         v.Name,
				Dependency:  dep.FileName,
				Score:       v.score(),
				Description: v.Description,
			})
			view.Total++
		}
	}

	for _, sev := range severityOrder {
		view.Counts = append(view.Counts, severityCount{Severity: sev, Count: len(rows[sev])})
		if len(rows[sev]) > 0 {
			view.Sections = append(view.Sections, dependencyCheckSection{Severity: sev, Rows: rows[sev]})
		}
	}
	view.HighCritical = len(rows["CRITICAL"]) + len(rows["HIGH"])

	return execute("dependency-check.md.tmpl", view)
}
