package service

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
	"github.com/tracker-tv/docs-governance-bots/models"
)

var (
	linkRe    = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
	taskRefRe = regexp.MustCompile(`\b(task)\s+([a-z][a-z0-9_-]*:[a-z0-9:_-]+)`)
	fileRefRe = regexp.MustCompile("`([a-zA-Z0-9_./-]+\\.[a-z]{1,4})`")
)

var skippedLinkPrefixes = []string{"http://", "https://", "mailto:", "#"}

// scanner holds the read-only state of one accuracy run.
type scanner struct {
	root       string
	rules      *policy.Rules
	truth      *models.GroundTruth
	suggestion *regexp.Regexp
	workflowRe *regexp.Regexp
	exists     *lru.Cache[string, bool]
}

func (sc *scanner) checkLinks(file, content string) []models.Issue {
	var issues []models.Issue
	base := path.Dir(file)

	for _, m := range linkRe.FindAllStringSubmatchIndex(content, -1) {
		display, target := content[m[2]:m[3]], content[m[4]:m[5]]
		if hasAnyPrefix(target, skippedLinkPrefixes) {
			continue
		}

		targetPath, _, _ := strings.Cut(target, "#")
		if targetPath == "" {
			continue
		}

		if sc.pathExists(sc.resolve(base, targetPath)) {
			continue
		}

		issues = append(issues, models.Issue{
			Type:    models.IssueBrokenLink,
			File:    file,
			Line:    lineAt(content, m[0]),
			Message: fmt.Sprintf("Broken link: [%s](%s) points to a missing target", display, target),
		})
	}

	return issues
}

// checkTaskRefs only considers namespaced task names (containing a colon) so
// prose such as "task runner" is not mistaken for an invocation.
func (sc *scanner) checkTaskRefs(file, content string) []models.Issue {
	var issues []models.Issue

	for _, m := range taskRefRe.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[4]:m[5]]
		if sc.truth.HasTask(name) {
			continue
		}
		issues = append(issues, models.Issue{
			Type:    models.IssueStaleTaskRef,
			File:    file,
			Line:    lineAt(content, m[2]),
			Message: fmt.Sprintf("Task reference `task %s` not found in %s", name, sc.rules.Taskfile),
		})
	}

	return issues
}

func (sc *scanner) checkWorkflowRefs(file, content string) []models.Issue {
	var issues []models.Issue

	for _, m := range sc.workflowRe.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[2]:m[3]]
		if sc.truth.HasWorkflow(name) {
			continue
		}
		issues = append(issues, models.Issue{
			Type:    models.IssueStaleWorkflowRef,
			File:    file,
			Line:    lineAt(content, m[0]),
			Message: fmt.Sprintf("Workflow reference `%s/%s` does not exist", sc.rules.WorkflowsDir, name),
		})
	}

	return issues
}

// checkFileRefs flags inline-code file names that do not exist. It is a
// heuristic tuned to prefer misses over false alarms: see fileRefExempt.
func (sc *scanner) checkFileRefs(file, content string) []models.Issue {
	var issues []models.Issue
	base := path.Dir(file)

	for _, m := range fileRefRe.FindAllStringSubmatchIndex(content, -1) {
		ref := content[m[2]:m[3]]
		if sc.fileRefExempt(content, base, ref, m[0], m[1]) {
			continue
		}
		issues = append(issues, models.Issue{
			Type:    models.IssueStaleFileRef,
			File:    file,
			Line:    lineAt(content, m[0]),
			Message: fmt.Sprintf("Possible stale file reference: `%s` not found on disk", ref),
		})
	}

	return issues
}

// fileRefExempt evaluates the exemptions in a fixed order: URL schemes,
// untracked extensions, existing files, placeholder markers, suggestion
// language around the match, and bare workflow-like names.
func (sc *scanner) fileRefExempt(content, base, ref string, start, end int) bool {
	rules := sc.rules.FileRefs

	if strings.HasPrefix(ref, "http") || strings.HasPrefix(ref, "mailto") {
		return true
	}

	ext := suffix(ref)
	if !slices.Contains(rules.TrackedExtensions, ext) {
		return true
	}

	if sc.pathExists(sc.resolve("", ref)) || sc.pathExists(sc.resolve(base, ref)) {
		return true
	}

	for _, marker := range rules.PlaceholderMarkers {
		if strings.Contains(ref, marker) {
			return true
		}
	}

	if sc.suggestion != nil && sc.suggestion.MatchString(runeWindow(content, start, end, rules.ContextRadius)) {
		return true
	}

	if slices.Contains(rules.BareNameExtensions, ext) && !strings.Contains(ref, "/") {
		return true
	}

	return false
}

// resolve maps a reference written in a markdown file under base (a
// slash-separated directory relative to the root) to a filesystem path.
// Absolute references are taken as-is.
func (sc *scanner) resolve(base, ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(sc.root, filepath.FromSlash(base), filepath.FromSlash(ref))
}

func (sc *scanner) pathExists(p string) bool {
	if rel, err := filepath.Rel(sc.root, p); err == nil && sc.truth.HasFile(filepath.ToSlash(rel)) {
		return true
	}
	if ok, cached := sc.exists.Get(p); cached {
		return ok
	}
	_, err := os.Stat(p)
	sc.exists.Add(p, err == nil)
	return err == nil
}

func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// suffix returns the extension of the last path element. A leading dot does
// not start an extension, so ".env" has none.
func suffix(ref string) string {
	name := path.Base(ref)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// runeWindow returns content[start:end] widened by radius characters on each
// side, clamped to the content bounds.
func runeWindow(content string, start, end, radius int) string {
	for i := 0; i < radius && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(content[:start])
		start -= size
	}
	for i := 0; i < radius && end < len(content); i++ {
		_, size := utf8.DecodeRuneInString(content[end:])
		end += size
	}
	return content[start:end]
}
