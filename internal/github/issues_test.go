package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	githubMocks "github.com/tracker-tv/docs-governance-bots/internal/github/mocks"
)

func rateLimited() error {
	return &gh.RateLimitError{
		Rate: gh.Rate{Reset: gh.Timestamp{Time: time.Now().Add(-time.Minute)}},
		Response: &http.Response{
			StatusCode: http.StatusForbidden,
			Request:    &http.Request{Method: http.MethodGet, URL: &url.URL{Scheme: "https", Host: "api.github.com", Path: "/repos"}},
		},
		Message: "API rate limit exceeded",
	}
}

func TestListIssueComments_Pagination(t *testing.T) {
	ctx := context.Background()
	issues := githubMocks.NewMockIssuesAdapter(t)

	// Page 1
	issues.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 7,
			mock.MatchedBy(func(o *gh.IssueListCommentsOptions) bool {
				return o.Page == 0 && o.PerPage == 100
			}),
		).
		Once().
		Return(
			[]*gh.IssueComment{{ID: gh.Ptr(int64(1))}, {ID: gh.Ptr(int64(2))}},
			&gh.Response{NextPage: 2},
			nil,
		)

	// Page 2
	issues.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 7,
			mock.MatchedBy(func(o *gh.IssueListCommentsOptions) bool {
				return o.Page == 2
			}),
		).
		Once().
		Return([]*gh.IssueComment{{ID: gh.Ptr(int64(3))}}, &gh.Response{NextPage: 0}, nil)

	c := &client{issues: issues, owner: "org-name", repo: "repo-name"}

	comments, err := c.ListIssueComments(ctx, 7)

	assert.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{comments[0].GetID(), comments[1].GetID(), comments[2].GetID()})
}

func TestListIssueComments_RetriesRateLimit(t *testing.T) {
	ctx := context.Background()
	issues := githubMocks.NewMockIssuesAdapter(t)

	issues.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 7, mock.Anything).
		Twice().
		Return(nil, nil, rateLimited())

	issues.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 7, mock.Anything).
		Once().
		Return([]*gh.IssueComment{{ID: gh.Ptr(int64(9))}}, &gh.Response{}, nil)

	c := &client{issues: issues, owner: "org-name", repo: "repo-name", baseDelay: time.Millisecond}

	comments, err := c.ListIssueComments(ctx, 7)

	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestListIssueComments_MaxRetries(t *testing.T) {
	ctx := context.Background()
	issues := githubMocks.NewMockIssuesAdapter(t)

	issues.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 7, mock.Anything).
		Times(maxRetries+1).
		Return(nil, nil, rateLimited())

	c := &client{issues: issues, owner: "org-name", repo: "repo-name", baseDelay: time.Microsecond}

	comments, err := c.ListIssueComments(ctx, 7)

	assert.Error(t, err)
	assert.Nil(t, comments)
	assert.Contains(t, err.Error(), "max retries reached")

	var rateLimitErr *gh.RateLimitError
	assert.True(t, errors.As(err, &rateLimitErr))
}

func TestListIssueComments_ContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	issues := githubMocks.NewMockIssuesAdapter(t)

	issues.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 7, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string, _ int, _ *gh.IssueListCommentsOptions) ([]*gh.IssueComment, *gh.Response, error) {
			select {
			case <-time.After(100 * time.Millisecond):
				return []*gh.IssueComment{}, &gh.Response{}, nil
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			}
		})

	c := &client{issues: issues, owner: "org-name", repo: "repo-name", baseDelay: time.Second}

	start := time.Now()
	comments, err := c.ListIssueComments(ctx, 7)
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Len(t, comments, 0)
	assert.Less(t, elapsed, 50*time.Millisecond)
}

func TestListIssueComments_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	issues := githubMocks.NewMockIssuesAdapter(t)

	issues.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 7, mock.Anything).
		Once().
		Return(nil, nil, rateLimited())

	c := &client{issues: issues, owner: "org-name", repo: "repo-name", baseDelay: time.Hour}

	_, err := c.ListIssueComments(ctx, 7)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCreateIssueComment(t *testing.T) {
	ctx := context.Background()
	issues := githubMocks.NewMockIssuesAdapter(t)

	issues.
		EXPECT().
		CreateComment(mock.Anything, "org-name", "repo-name", 7,
			mock.MatchedBy(func(c *gh.IssueComment) bool {
				return c.GetBody() == "hello"
			}),
		).
		Once().
		Return(&gh.IssueComment{ID: gh.Ptr(int64(11)), Body: gh.Ptr("hello")}, &gh.Response{}, nil)

	c := &client{issues: issues, owner: "org-name", repo: "repo-name"}

	comment, err := c.CreateIssueComment(ctx, 7, "hello")

	assert.NoError(t, err)
	assert.Equal(t, int64(11), comment.GetID())
}

func TestCreateIssueComment_Error(t *testing.T) {
	ctx := context.Background()
	issues := githubMocks.NewMockIssuesAdapter(t)

	issues.
		EXPECT().
		CreateComment(mock.Anything, "org-name", "repo-name", 7, mock.Anything).
		Once().
		Return(nil, nil, errors.New("API error"))

	c := &client{issues: issues, owner: "org-name", repo: "repo-name"}

	comment, err := c.CreateIssueComment(ctx, 7, "hello")

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.Contains(t, err.Error(), "commenting on #7")
	assert.Contains(t, err.Error(), "API error")
}

func TestEditIssueComment(t *testing.T) {
	ctx := context.Background()
	issues := githubMocks.NewMockIssuesAdapter(t)

	issues.
		EXPECT().
		EditComment(mock.Anything, "org-name", "repo-name", int64(11),
			mock.MatchedBy(func(c *gh.IssueComment) bool {
				return c.GetBody() == "updated"
			}),
		).
		Once().
		Return(&gh.IssueComment{ID: gh.Ptr(int64(11)), Body: gh.Ptr("updated")}, &gh.Response{}, nil)

	c := &client{issues: issues, owner: "org-name", repo: "repo-name"}

	comment, err := c.EditIssueComment(ctx, 11, "updated")

	assert.NoError(t, err)
	assert.Equal(t, "updated", comment.GetBody())
}

func TestIssueComments_AgainstAPI(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/org-name/repo-name/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[{"id": 1, "body": "first"}]`)
	})
	mux.HandleFunc("POST /repos/org-name/repo-name/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"body": "new"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 2, "body": "new"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ghClient := gh.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	ghClient.BaseURL = baseURL

	c := &client{issues: ghClient.Issues, owner: "org-name", repo: "repo-name", baseDelay: time.Millisecond}

	comments, err := c.ListIssueComments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0].GetBody())

	created, err := c.CreateIssueComment(context.Background(), 7, "new")
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.GetID())
}
