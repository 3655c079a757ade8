package github

import (
	"log"
	"time"

	"github.com/reillywatson/issuetracker/internal/metrics"
)

// FetchRepoIssues fetches a repository's issues and pull requests created in
// [startDate, endDate] along with their comments, reviews and draft history,
// converted into metrics records. Failures fetching one issue's details are
// logged and skip that issue so a single bad item doesn't sink the run.
func FetchRepoIssues(client GitHubClientInterface, owner, repo string, startDate, endDate time.Time) ([]*metrics.Issue, error) {
	issues, err := client.FetchIssues(owner, repo, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var results []*metrics.Issue
	for _, issue := range issues {
		number := issue.GetNumber()

		comments, err := client.FetchIssueComments(owner, repo, number)
		if err != nil {
			log.Printf("Error fetching comments for #%d: %v", number, err)
			continue
		}

		if issue.IsPullRequest() {
			prReviews, err := client.FetchPullRequestReviews(owner, repo, number)
			if err != nil {
				log.Printf("Error fetching reviews for #%d: %v", number, err)
				continue
			}
			prTimeline, err := client.FetchIssueTimeline(owner, repo, number)
			if err != nil {
				log.Printf("Error fetching timeline for #%d: %v", number, err)
				continue
			}
			results = append(results, ConvertIssue(issue, comments, prReviews, prTimeline))
			continue
		}

		results = append(results, ConvertIssue(issue, comments, nil, nil))
	}

	return results, nil
}
