package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
)

type Client interface {
	ListIssueComments(ctx context.Context, number int) ([]*gh.IssueComment, error)
	CreateIssueComment(ctx context.Context, number int, body string) (*gh.IssueComment, error)
	EditIssueComment(ctx context.Context, commentID int64, body string) (*gh.IssueComment, error)
}

// IssuesAdapter is the subset of gh.IssuesService the client uses. Pull
// request conversation comments are issue comments in the GitHub API.
type IssuesAdapter interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *gh.IssueListCommentsOptions) ([]*gh.IssueComment, *gh.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
	EditComment(ctx context.Context, owner, repo string, commentID int64, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
}

type client struct {
	issues    IssuesAdapter
	owner     string
	repo      string
	baseDelay time.Duration
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, owner, repo string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	ghClient := gh.NewClient(httpClient)
	return &client{
		issues:    ghClient.Issues,
		owner:     owner,
		repo:      repo,
		baseDelay: time.Second,
	}
}
