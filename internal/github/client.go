package github

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v39/github"
	"golang.org/x/oauth2"
)

// GitHubClientInterface defines the interface for GitHub REST operations
type GitHubClientInterface interface {
	FetchIssues(owner, repo string, startDate, endDate time.Time) ([]*github.Issue, error)
	FetchIssueComments(owner, repo string, number int) ([]*github.IssueComment, error)
	FetchPullRequestReviews(owner, repo string, number int) ([]*github.PullRequestReview, error)
	FetchIssueTimeline(owner, repo string, number int) ([]*github.Timeline, error)
}

type GitHubClient struct {
	client *github.Client
}

func NewGitHubClient(token string) *GitHubClient {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &GitHubClient{
		client: github.NewClient(tc),
	}
}

// FetchIssues lists issues and pull requests created in [startDate, endDate].
// The issues endpoint returns pull requests as well; callers distinguish
// them via PullRequestLinks.
func (c *GitHubClient) FetchIssues(owner, repo string, startDate, endDate time.Time) ([]*github.Issue, error) {
	ctx := context.Background()
	var allIssues []*github.Issue
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		issues, resp, err := c.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch issues: %w", err)
		}

		for _, issue := range issues {
			if !issue.GetCreatedAt().Before(startDate) && !issue.GetCreatedAt().After(endDate) {
				allIssues = append(allIssues, issue)
			}
		}

		if resp.NextPage == 0 || len(issues) == 0 {
			break
		}

		// Pages are newest-first; stop once we're past the start date.
		lastIssue := issues[len(issues)-1]
		if lastIssue.GetCreatedAt().Before(startDate) {
			break
		}
		opts.Page = resp.NextPage
	}

	return allIssues, nil
}

// FetchIssueComments lists an issue's comments in creation order.
func (c *GitHubClient) FetchIssueComments(owner, repo string, number int) ([]*github.IssueComment, error) {
	ctx := context.Background()
	var allComments []*github.IssueComment
	opts := &github.IssueListCommentsOptions{
		Sort:        github.String("created"),
		Direction:   github.String("asc"),
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		comments, resp, err := c.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch comments for issue #%d: %w", number, err)
		}

		allComments = append(allComments, comments...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}

func (c *GitHubClient) FetchPullRequestReviews(owner, repo string, number int) ([]*github.PullRequestReview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reviews, _, err := c.client.PullRequests.ListReviews(ctx, owner, repo, number, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for pull request #%d: %w", number, err)
	}

	return reviews, nil
}

// FetchIssueTimeline lists an issue's timeline events, used to find when a
// pull request left draft status.
func (c *GitHubClient) FetchIssueTimeline(owner, repo string, number int) ([]*github.Timeline, error) {
	ctx := context.Background()
	var allEvents []*github.Timeline
	opts := &github.ListOptions{PerPage: 100}

	for {
		events, resp, err := c.client.Issues.ListIssueTimeline(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch timeline for issue #%d: %w", number, err)
		}

		allEvents = append(allEvents, events...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allEvents, nil
}
