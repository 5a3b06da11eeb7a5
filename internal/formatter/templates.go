package formatter

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("reports").
		Funcs(sprig.TxtFuncMap()).
		Funcs(funcMap()).
		ParseFS(templateFS, "templates/*.md.tmpl"),
)

var titleCaser = cases.Title(language.English)

// severityOrder is the display order shared by the vulnerability reports.
var severityOrder = []string{"CRITICAL", "HIGH", "MEDIUM", "LOW", "UNKNOWN"}

var severityIcons = map[string]string{
	"CRITICAL": "🔴",
	"HIGH":     "🟠",
	"MEDIUM":   "🟡",
	"LOW":      "🔵",
	"UNKNOWN":  "⚪",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"severityIcon":  severityIcon,
		"severityLabel": severityLabel,
		"ellipsis":      ellipsis,
		"cell":          cell,
		"dash":          dash,
	}
}

func severityIcon(s string) string {
	if icon, ok := severityIcons[strings.ToUpper(s)]; ok {
		return icon
	}
	return severityIcons["UNKNOWN"]
}

// severityLabel turns "CRITICAL" into "Critical".
func severityLabel(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// ellipsis shortens s to n runes, marking the cut with "…".
func ellipsis(n int, s string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}

// cell makes s safe inside a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func normalizeSeverity(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "CRITICAL", "HIGH", "MEDIUM", "LOW":
		return s
	case "MODERATE":
		return "MEDIUM"
	default:
		return "UNKNOWN"
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
