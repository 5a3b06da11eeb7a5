package models

const (
	PublishCreated = "created"
	PublishUpdated = "updated"
	PublishSkipped = "skipped"
)

// PublishResult describes what happened to the pull request comment that
// carries a report.
type PublishResult struct {
	Report     string
	Action     string
	CommentURL string
}
