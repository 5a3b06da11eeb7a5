package models

type ViolationKind string

const (
	ViolationMissingDirectory    ViolationKind = "missing_directory"
	ViolationMissingReadme       ViolationKind = "missing_readme"
	ViolationUnexpectedFile      ViolationKind = "unexpected_file"
	ViolationUnexpectedDirectory ViolationKind = "unexpected_directory"
)

type Violation struct {
	Type    ViolationKind `json:"type"`
	Path    string        `json:"path"` // e.g., "docs/api/README.md"
	Message string        `json:"message"`
}

type StructureReport struct {
	Violations     []Violation `json:"violations"`
	Valid          bool        `json:"valid"`
	ViolationCount int         `json:"violation_count"`
}

func NewStructureReport(violations []Violation) *StructureReport {
	if violations == nil {
		violations = []Violation{}
	}
	return &StructureReport{
		Violations:     violations,
		Valid:          len(violations) == 0,
		ViolationCount: len(violations),
	}
}
