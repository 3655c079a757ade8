package github

import (
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/reillywatson/issuetracker/internal/metrics"
)

// convertUser maps an API user to a metrics record. A ghost user (deleted
// account) arrives as nil and stays nil so detection code can see it.
func convertUser(u *github.User) *metrics.User {
	if u == nil {
		return nil
	}
	return &metrics.User{
		Login: u.GetLogin(),
		IsBot: u.GetType() == "Bot",
	}
}

func convertComments(comments []*github.IssueComment) []metrics.Comment {
	result := make([]metrics.Comment, 0, len(comments))
	for _, c := range comments {
		result = append(result, metrics.Comment{
			Author:    convertUser(c.GetUser()),
			CreatedAt: c.GetCreatedAt(),
		})
	}
	return result
}

func convertReviews(reviews []*github.PullRequestReview) []metrics.Comment {
	result := make([]metrics.Comment, 0, len(reviews))
	for _, r := range reviews {
		// A review that hasn't been submitted keeps a zero timestamp, which
		// the response filter treats as pending.
		result = append(result, metrics.Comment{
			Author:    convertUser(r.User),
			CreatedAt: r.GetSubmittedAt(),
		})
	}
	return result
}

// readyForReviewTime returns when a pull request left draft status, or the
// zero time if it never did.
func readyForReviewTime(timeline []*github.Timeline) time.Time {
	for _, event := range timeline {
		if event.GetEvent() == "ready_for_review" {
			return event.GetCreatedAt()
		}
	}
	return time.Time{}
}

// ConvertIssue assembles a metrics record from an issue and its fetched
// comment and review sequences.
func ConvertIssue(issue *github.Issue, comments []*github.IssueComment, reviews []*github.PullRequestReview, timeline []*github.Timeline) *metrics.Issue {
	return &metrics.Issue{
		Title:            issue.GetTitle(),
		URL:              issue.GetHTMLURL(),
		Author:           convertUser(issue.GetUser()),
		State:            issue.GetState(),
		CreatedAt:        issue.GetCreatedAt(),
		ClosedAt:         issue.GetClosedAt(),
		ReadyForReviewAt: readyForReviewTime(timeline),
		IsPullRequest:    issue.IsPullRequest(),
		Comments:         convertComments(comments),
		Reviews:          convertReviews(reviews),
	}
}
