package formatter

import (
	"fmt"
	"time"

	"github.com/tracker-tv/docs-governance-bots/internal/jsonutil"
)

const dastDir = ".dast-reports"

type zapDocument struct {
	Site []zapSite `json:"site"`
}

type zapSite struct {
	Name   string     `json:"@name"`
	Alerts []zapAlert `json:"alerts"`
}

type zapAlert struct {
	PluginID   string `json:"pluginid"`
	Alert      string `json:"alert"`
	Name       string `json:"name"`
	RiskCode   string `json:"riskcode"`
	Confidence string `json:"confidence"`
	Desc       string `json:"desc"`
	Solution   string `json:"solution"`
	Instances  []struct {
		URI string `json:"uri"`
	} `json:"instances"`
}

type zapRisk struct {
	Code  string
	Label string
	Icon  string
}

var zapRisks = []zapRisk{
	{Code: "3", Label: "High", Icon: "🔴"},
	{Code: "2", Label: "Medium", Icon: "🟠"},
	{Code: "1", Label: "Low", Icon: "🟡"},
	{Code: "0", Label: "Informational", Icon: "🔵"},
}

var zapConfidence = map[string]string{
	"0": "False Positive",
	"1": "Low",
	"2": "Medium",
	"3": "High",
	"4": "User Confirmed",
}

type dastRow struct {
	Alert      string
	Site       string
	Confidence string
	Instances  int
	Solution   string
}

type dastSection struct {
	zapRisk
	Rows []dastRow
}

type dastView struct {
	Generated  string
	Total      int
	HighMedium int
	Sections   []dastSection
}

type dastFormatter struct{}

func NewDASTFormatter() Formatter { return dastFormatter{} }

func (dastFormatter) Name() string    { return "dast-md" }
func (dastFormatter) Inputs() []Input { return []Input{jsonInput(dastDir, "dast-report.json")} }
func (dastFormatter) Output() string  { return dastDir + "/dast-report.md" }

func (f dastFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	var doc zapDocument
	if err := jsonutil.Unmarshal(inputs[0], &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", f.Inputs()[0].Path, err)
	}

	rows := map[string][]dastRow{}
	total := 0
	for _, site := range doc.Site {
		for _, a := range site.Alerts {
			name := a.Alert
			if name == "" {
				name = a.Name
			}
			confidence, ok := zapConfidence[a.Confidence]
			if !ok {
				confidence = a.Confidence
			}
			code := a.RiskCode
			if _, known := riskByCode(code); !known {
				code = "0"
			}
			rows[code] = append(rows[code], dastRow{
				Alert:      name,
				Site:       site.Name,
				Confidence: confidence,
				Instances:  len(a.Instances),
				Solution:   a.Solution,
			})
			total++
		}
	}

	view := dastView{Generated: generated(now), Total: total}
	for _, risk := range zapRisks {
		view.Sections = append(view.Sections, dastSection{zapRisk: risk, Rows: rows[risk.Code]})
	}
	view.HighMedium = len(rows["3"]) + len(rows["2"])

	return execute("dast.md.tmpl", view)
}

func riskByCode(code string) (zapRisk, bool) {
	for _, r := range zapRisks {
		if r.Code == code {
			return r, true
		}
	}
	return zapRisk{}, false
}
