package formatter

import "time"

const dependenciesDir = ".dependencies-reports"

// dependenciesFormatter summarizes a Trivy filesystem scan restricted to
// package vulnerabilities.
type dependenciesFormatter struct{}

func NewDependenciesFormatter() Formatter { return dependenciesFormatter{} }

func (dependenciesFormatter) Name() string { return "dependencies-md" }
func (dependenciesFormatter) Inputs() []Input {
	return []Input{jsonInput(dependenciesDir, "dependencies-report.json")}
}
func (dependenciesFormatter) Output() string { return dependenciesDir + "/dependencies-report.md" }

type dependenciesView struct {
	vulnerabilitySummary
	Generated string
}

func (f dependenciesFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	doc, err := parseTrivy(inputs[0], f.Inputs()[0].Path)
	if err != nil {
		return "", err
	}

	return execute("dependencies.md.tmpl", dependenciesView{
		vulnerabilitySummary: summarizeVulnerabilities(doc),
		Generated:            generated(now),
	})
}
