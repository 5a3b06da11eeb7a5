package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/docs-governance-bots/internal/github"
	"github.com/tracker-tv/docs-governance-bots/models"
)

// generatedLineRe matches the timestamp line every rendered report carries.
var generatedLineRe = regexp.MustCompile(`(?m)^\*\*Generated(?::\*\*|\*\*:).*$`)

// PublishService keeps one pull request comment per report up to date.
type PublishService interface {
	Publish(ctx context.Context, report, markdown string) (*models.PublishResult, error)
}

type publishService struct {
	gh       github.Client
	prNumber int
}

func NewPublishService(gh github.Client, prNumber int) PublishService {
	return &publishService{
		gh:       gh,
		prNumber: prNumber,
	}
}

func (s *publishService) Publish(ctx context.Context, report, markdown string) (*models.PublishResult, error) {
	comments, err := s.gh.ListIssueComments(ctx, s.prNumber)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	body := wrapComment(markdown, report)

	if existing := findMarked(comments, commentMarker(report)); existing != nil {
		if sameReport(existing.GetBody(), body) {
			return &models.PublishResult{
				Report:     report,
				Action:     models.PublishSkipped,
				CommentURL: existing.GetHTMLURL(),
			}, nil
		}

		updated, err := s.gh.EditIssueComment(ctx, existing.GetID(), body)
		if err != nil {
			return nil, fmt.Errorf("updating comment: %w", err)
		}
		return &models.PublishResult{
			Report:     report,
			Action:     models.PublishUpdated,
			CommentURL: updated.GetHTMLURL(),
		}, nil
	}

	created, err := s.gh.CreateIssueComment(ctx, s.prNumber, body)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return &models.PublishResult{
		Report:     report,
		Action:     models.PublishCreated,
		CommentURL: created.GetHTMLURL(),
	}, nil
}

func commentMarker(report string) string {
	return fmt.Sprintf("<!-- govbot:%s -->", report)
}

func wrapComment(markdown, report string) string {
	footer := "\n---\n<sub>This comment is updated automatically by govbot on every run. Manual edits will be overwritten.</sub>\n"
	return commentMarker(report) + "\n" + strings.TrimRight(markdown, "\n") + "\n" + footer
}

// sameReport compares two comment bodies ignoring the Generated timestamp.
func sameReport(a, b string) bool {
	return generatedLineRe.ReplaceAllString(a, "") == generatedLineRe.ReplaceAllString(b, "")
}

func findMarked(comments []*gh.IssueComment, marker string) *gh.IssueComment {
	for _, c := range comments {
		if strings.Contains(c.GetBody(), marker) {
			return c
		}
	}
	return nil
}
