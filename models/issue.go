package models

type IssueKind string

const (
	IssueBrokenLink       IssueKind = "broken_link"
	IssueStaleTaskRef     IssueKind = "stale_task_ref"
	IssueStaleWorkflowRef IssueKind = "stale_workflow_ref"
	IssueStaleFileRef     IssueKind = "stale_file_ref"
)

type Issue struct {
	Type    IssueKind `json:"type"`
	File    string    `json:"file"` // slash-separated, relative to the repository root
	Line    int       `json:"line"`
	Message string    `json:"message"`
}

type AccuracyReport struct {
	Issues     []Issue `json:"issues"`
	IssueCount int     `json:"issue_count"`
	Clean      bool    `json:"clean"`
}

func NewAccuracyReport(issues []Issue) *AccuracyReport {
	if issues == nil {
		issues = []Issue{}
	}
	return &AccuracyReport{
		Issues:     issues,
		IssueCount: len(issues),
		Clean:      len(issues) == 0,
	}
}
