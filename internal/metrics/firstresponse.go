package metrics

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/reillywatson/issuetracker/internal/businesstime"
)

// ignoreComment reports whether a candidate response should not count toward
// the first response: the author is on the ignore list, is a bot, or is the
// item's own creator; the comment is still pending (no resolved timestamp);
// or it was posted before the pull request left draft status.
func ignoreComment(creator string, author *User, ignoreUsers []string, createdAt, readyForReviewAt time.Time) bool {
	if author == nil {
		return true
	}
	if slices.Contains(ignoreUsers, author.Login) {
		return true
	}
	if author.IsBot {
		return true
	}
	if author.Login == creator {
		return true
	}
	if createdAt.IsZero() {
		return true
	}
	if !readyForReviewAt.IsZero() && createdAt.Before(readyForReviewAt) {
		return true
	}
	return false
}

// firstResponseTime scans comments in creation order and returns the
// timestamp of the first one that qualifies as a response.
func firstResponseTime(creator string, comments []Comment, ignoreUsers []string, readyForReviewAt time.Time) (time.Time, bool) {
	for _, c := range comments {
		if ignoreComment(creator, c.Author, ignoreUsers, c.CreatedAt, readyForReviewAt) {
			continue
		}
		return c.CreatedAt, true
	}
	return time.Time{}, false
}

// firstReviewResponseTime is firstResponseTime for review comments. Unlike
// the regular scan it fails on malformed author data, so a ghost reviewer
// aborts review detection for the item instead of being skipped.
func firstReviewResponseTime(creator string, reviews []Comment, ignoreUsers []string, readyForReviewAt time.Time) (time.Time, bool, error) {
	for _, r := range reviews {
		if r.Author == nil {
			return time.Time{}, false, fmt.Errorf("review has no author, perhaps a ghost user")
		}
		if ignoreComment(creator, r.Author, ignoreUsers, r.CreatedAt, readyForReviewAt) {
			continue
		}
		return r.CreatedAt, true, nil
	}
	return time.Time{}, false, nil
}

// MeasureTimeToFirstResponse returns the business time from the issue's
// reference instant (ReadyForReviewAt if set, otherwise CreatedAt) to the
// earliest qualifying comment or review comment. It returns nil when no
// qualifying response exists. A failure while scanning review comments is
// logged and treated as "no review response"; regular comment detection is
// unaffected.
func MeasureTimeToFirstResponse(issue *Issue, cal *businesstime.Calendar, ignoreUsers []string) *time.Duration {
	creator := ""
	if issue.Author != nil {
		creator = issue.Author.Login
	}

	commentTime, hasComment := firstResponseTime(creator, issue.Comments, ignoreUsers, issue.ReadyForReviewAt)

	var reviewTime time.Time
	var hasReview bool
	if issue.IsPullRequest {
		var err error
		reviewTime, hasReview, err = firstReviewResponseTime(creator, issue.Reviews, ignoreUsers, issue.ReadyForReviewAt)
		if err != nil {
			log.Printf("Error processing review comments for %s: %v", issue.URL, err)
			hasReview = false
		}
	}

	var earliest time.Time
	switch {
	case hasComment && hasReview:
		earliest = commentTime
		if reviewTime.Before(commentTime) {
			earliest = reviewTime
		}
	case hasComment:
		earliest = commentTime
	case hasReview:
		earliest = reviewTime
	default:
		return nil
	}

	start := issue.CreatedAt
	if !issue.ReadyForReviewAt.IsZero() {
		start = issue.ReadyForReviewAt
	}

	d := cal.Between(start, earliest)
	return &d
}

// MeasureTimeToFirstReply returns the business time from a discussion's
// creation to its first reply. Replies are taken unconditionally: no
// author, bot or ignore-list filtering applies to discussions. It returns
// nil when the discussion has no replies.
func MeasureTimeToFirstReply(discussion *Discussion, cal *businesstime.Calendar) *time.Duration {
	if len(discussion.ReplyTimes) == 0 {
		return nil
	}
	d := cal.Between(discussion.CreatedAt, discussion.ReplyTimes[0])
	return &d
}
