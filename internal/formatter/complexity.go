package formatter

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	complexityDir       = ".complexity-reports"
	complexityThreshold = 10
	rawSummaryLines     = 25
)

type complexityItem struct {
	NLOC     int
	CCN      int
	Tokens   int
	Params   int
	Length   int
	Location string
}

type complexityView struct {
	Generated  string
	Threshold  int
	Functions  int
	AverageCCN string
	MaxCCN     int
	High       []complexityItem
	RawSummary string
}

// complexityFormatter reads Lizard's CSV export alongside its plain text
// output.
type complexityFormatter struct{}

func NewComplexityFormatter() Formatter { return complexityFormatter{} }

func (complexityFormatter) Name() string { return "complexity-md" }

func (complexityFormatter) Inputs() []Input {
	return []Input{
		{Path: complexityDir + "/complexity-report.csv", Label: "CSV report"},
		{Path: complexityDir + "/complexity-report-raw.txt", Label: "Raw report"},
	}
}

func (complexityFormatter) Output() string { return complexityDir + "/complexity-report.md" }

func (f complexityFormatter) Render(inputs [][]byte, now time.Time) (string, error) {
	items, err := parseLizardCSV(inputs[0])
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", f.Inputs()[0].Path, err)
	}

	view := complexityView{
		Generated:  generated(now),
		Threshold:  complexityThreshold,
		Functions:  len(items),
		AverageCCN: "0.00",
		RawSummary: rawSummary(string(inputs[1])),
	}

	sum := 0
	for _, item := range items {
		sum += item.CCN
		view.MaxCCN = max(view.MaxCCN, item.CCN)
		if item.CCN > complexityThreshold {
			view.High = append(view.High, item)
		}
	}
	if len(items) > 0 {
		view.AverageCCN = strconv.FormatFloat(float64(sum)/float64(len(items)), 'f', 2, 64)
	}
	slices.SortStableFunc(view.High, func(a, b complexityItem) int {
		return cmp.Compare(b.CCN, a.CCN)
	})

	return execute("complexity.md.tmpl", view)
}

// parseLizardCSV reads NLOC,CCN,Tokens,Params,Length,Location rows. A header
// row and rows with non-numeric metrics are skipped.
func parseLizardCSV(data []byte) ([]complexityItem, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var items []complexityItem
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 6 {
			continue
		}

		metrics := make([]int, 5)
		ok := true
		for i := range metrics {
			n, err := strconv.Atoi(strings.TrimSpace(record[i]))
			if err != nil {
				ok = false
				break
			}
			metrics[i] = n
		}
		if !ok {
			continue
		}

		items = append(items, complexityItem{
			NLOC:     metrics[0],
			CCN:      metrics[1],
			Tokens:   metrics[2],
			Params:   metrics[3],
			Length:   metrics[4],
			Location: strings.TrimSpace(record[5]),
		})
	}
	return items, nil
}

// rawSummary returns the totals block Lizard prints after its per-function
// table.
func rawSummary(raw string) string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "Total nloc") {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	summary := lines[start:]
	if len(summary) > rawSummaryLines {
		summary = summary[:rawSummaryLines]
	}
	return strings.TrimRight(strings.Join(summary, "\n"), "\n ")
}
