package metrics

import (
	"time"

	"github.com/reillywatson/issuetracker/internal/businesstime"
)

// MeasureTimeToClose returns the business time from an issue's creation to
// its close, or nil when the issue is not closed.
func MeasureTimeToClose(issue *Issue, cal *businesstime.Calendar) *time.Duration {
	if issue.State != "closed" || issue.ClosedAt.IsZero() {
		return nil
	}
	d := cal.Between(issue.CreatedAt, issue.ClosedAt)
	return &d
}

// MeasureDiscussionTimeToClose is MeasureTimeToClose for discussions.
func MeasureDiscussionTimeToClose(discussion *Discussion, cal *businesstime.Calendar) *time.Duration {
	if discussion.ClosedAt.IsZero() {
		return nil
	}
	d := cal.Between(discussion.CreatedAt, discussion.ClosedAt)
	return &d
}
