package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) ListIssueComments(ctx context.Context, number int) ([]*gh.IssueComment, error) {
	var all []*gh.IssueComment
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		comments, resp, err := withRetry(ctx, c.baseDelay, func() ([]*gh.IssueComment, *gh.Response, error) {
			return c.issues.ListComments(ctx, c.owner, c.repo, number, opts)
		})
		if err != nil {
			return nil, fmt.Errorf("listing comments on #%d: %w", number, err)
		}

		all = append(all, comments...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (c *client) CreateIssueComment(ctx context.Context, number int, body string) (*gh.IssueComment, error) {
	comment, _, err := withRetry(ctx, c.baseDelay, func() (*gh.IssueComment, *gh.Response, error) {
		return c.issues.CreateComment(ctx, c.owner, c.repo, number, &gh.IssueComment{Body: gh.Ptr(body)})
	})
	if err != nil {
		return nil, fmt.Errorf("commenting on #%d: %w", number, err)
	}
	return comment, nil
}

func (c *client) EditIssueComment(ctx context.Context, commentID int64, body string) (*gh.IssueComment, error) {
	comment, _, err := withRetry(ctx, c.baseDelay, func() (*gh.IssueComment, *gh.Response, error) {
		return c.issues.EditComment(ctx, c.owner, c.repo, commentID, &gh.IssueComment{Body: gh.Ptr(body)})
	})
	if err != nil {
		return nil, fmt.Errorf("editing comment %d: %w", commentID, err)
	}
	return comment, nil
}
