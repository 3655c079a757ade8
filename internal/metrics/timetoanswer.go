package metrics

import (
	"time"

	"github.com/reillywatson/issuetracker/internal/businesstime"
)

// MeasureTimeToAnswer returns the business time from a discussion's creation
// to the moment an answer was chosen, or nil when no answer has been chosen.
func MeasureTimeToAnswer(discussion *Discussion, cal *businesstime.Calendar) *time.Duration {
	if discussion.AnswerChosenAt.IsZero() {
		return nil
	}
	d := cal.Between(discussion.CreatedAt, discussion.AnswerChosenAt)
	return &d
}
