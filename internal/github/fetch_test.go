package github

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-github/v39/github"
)

// MockGitHubClient implements GitHubClientInterface for testing
type MockGitHubClient struct {
	issues      []*github.Issue
	comments    []*github.IssueComment
	reviews     []*github.PullRequestReview
	timeline    []*github.Timeline
	commentsErr error
	reviewsErr  error
}

func (m *MockGitHubClient) FetchIssues(owner, repo string, startDate, endDate time.Time) ([]*github.Issue, error) {
	return m.issues, nil
}

func (m *MockGitHubClient) FetchIssueComments(owner, repo string, number int) ([]*github.IssueComment, error) {
	return m.comments, m.commentsErr
}

func (m *MockGitHubClient) FetchPullRequestReviews(owner, repo string, number int) ([]*github.PullRequestReview, error) {
	return m.reviews, m.reviewsErr
}

func (m *MockGitHubClient) FetchIssueTimeline(owner, repo string, number int) ([]*github.Timeline, error) {
	return m.timeline, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestFetchRepoIssues_Issue(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	commentedAt := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	client := &MockGitHubClient{
		issues: []*github.Issue{
			{
				Number:    github.Int(1),
				Title:     github.String("An issue"),
				State:     github.String("open"),
				User:      &github.User{Login: github.String("alice"), Type: github.String("User")},
				CreatedAt: timePtr(createdAt),
			},
		},
		comments: []*github.IssueComment{
			{
				User:      &github.User{Login: github.String("bob"), Type: github.String("User")},
				CreatedAt: timePtr(commentedAt),
			},
		},
	}

	results, err := FetchRepoIssues(client, "owner", "repo", createdAt.AddDate(0, 0, -1), commentedAt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	issue := results[0]
	if issue.IsPullRequest {
		t.Error("Expected a plain issue, got a pull request")
	}
	if issue.Author == nil || issue.Author.Login != "alice" {
		t.Errorf("Expected author 'alice', got %v", issue.Author)
	}
	if len(issue.Comments) != 1 || !issue.Comments[0].CreatedAt.Equal(commentedAt) {
		t.Errorf("Expected one comment at %v, got %v", commentedAt, issue.Comments)
	}
	if len(issue.Reviews) != 0 {
		t.Errorf("Expected no reviews on a plain issue, got %d", len(issue.Reviews))
	}
}

func TestFetchRepoIssues_PullRequestWithDraftHistory(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	readyAt := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	reviewedAt := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)

	client := &MockGitHubClient{
		issues: []*github.Issue{
			{
				Number:           github.Int(2),
				Title:            github.String("A pull request"),
				State:            github.String("open"),
				User:             &github.User{Login: github.String("alice"), Type: github.String("User")},
				CreatedAt:        timePtr(createdAt),
				PullRequestLinks: &github.PullRequestLinks{},
			},
		},
		reviews: []*github.PullRequestReview{
			{
				User:        &github.User{Login: github.String("carol"), Type: github.String("User")},
				State:       github.String("APPROVED"),
				SubmittedAt: timePtr(reviewedAt),
			},
		},
		timeline: []*github.Timeline{
			{Event: github.String("labeled"), CreatedAt: timePtr(createdAt)},
			{Event: github.String("ready_for_review"), CreatedAt: timePtr(readyAt)},
		},
	}

	results, err := FetchRepoIssues(client, "owner", "repo", createdAt.AddDate(0, 0, -1), reviewedAt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	pr := results[0]
	if !pr.IsPullRequest {
		t.Error("Expected a pull request")
	}
	if !pr.ReadyForReviewAt.Equal(readyAt) {
		t.Errorf("Expected ready-for-review at %v, got %v", readyAt, pr.ReadyForReviewAt)
	}
	if len(pr.Reviews) != 1 || !pr.Reviews[0].CreatedAt.Equal(reviewedAt) {
		t.Errorf("Expected one review at %v, got %v", reviewedAt, pr.Reviews)
	}
}

func TestFetchRepoIssues_SkipsIssueOnCommentError(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	client := &MockGitHubClient{
		issues: []*github.Issue{
			{
				Number:    github.Int(3),
				Title:     github.String("Unfetchable"),
				State:     github.String("open"),
				User:      &github.User{Login: github.String("alice")},
				CreatedAt: timePtr(createdAt),
			},
		},
		commentsErr: errors.New("boom"),
	}

	results, err := FetchRepoIssues(client, "owner", "repo", createdAt, createdAt.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Expected per-issue errors to be swallowed, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected the broken issue to be skipped, got %d results", len(results))
	}
}
