package metrics

import (
	"slices"

	"github.com/reillywatson/issuetracker/internal/businesstime"
)

// ProcessIssues measures every metric for a list of issues and pull
// requests. Items authored by an ignored user are dropped entirely. It also
// returns how many of the measured items are open and closed.
func ProcessIssues(issues []*Issue, cal *businesstime.Calendar, ignoreUsers []string) (results []IssueMetrics, numOpen, numClosed int) {
	for _, issue := range issues {
		author := ""
		if issue.Author != nil {
			author = issue.Author.Login
		}
		if slices.Contains(ignoreUsers, author) {
			continue
		}

		switch issue.State {
		case "open":
			numOpen++
		case "closed":
			numClosed++
		}

		results = append(results, IssueMetrics{
			Title:               issue.Title,
			URL:                 issue.URL,
			Author:              author,
			TimeToFirstResponse: MeasureTimeToFirstResponse(issue, cal, ignoreUsers),
			TimeToClose:         MeasureTimeToClose(issue, cal),
		})
	}
	return results, numOpen, numClosed
}

// ProcessDiscussions measures every metric for a list of discussions.
// Discussion replies are never filtered, but discussions authored by an
// ignored user are still dropped like issues are.
func ProcessDiscussions(discussions []*Discussion, cal *businesstime.Calendar, ignoreUsers []string) (results []IssueMetrics, numOpen, numClosed int) {
	for _, d := range discussions {
		author := ""
		if d.Author != nil {
			author = d.Author.Login
		}
		if slices.Contains(ignoreUsers, author) {
			continue
		}

		if d.ClosedAt.IsZero() {
			numOpen++
		} else {
			numClosed++
		}

		results = append(results, IssueMetrics{
			Title:               d.Title,
			URL:                 d.URL,
			Author:              author,
			TimeToFirstResponse: MeasureTimeToFirstReply(d, cal),
			TimeToClose:         MeasureDiscussionTimeToClose(d, cal),
			TimeToAnswer:        MeasureTimeToAnswer(d, cal),
		})
	}
	return results, numOpen, numClosed
}
