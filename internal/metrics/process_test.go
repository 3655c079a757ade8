package metrics

import (
	"testing"
	"time"

	"github.com/reillywatson/issuetracker/internal/businesstime"
)

func TestProcessIssues_SkipsIgnoredAuthors(t *testing.T) {
	cal := businesstime.DefaultCalendar()

	issues := []*Issue{
		{
			Title:     "Issue 1",
			Author:    &User{Login: "alice"},
			State:     "open",
			CreatedAt: date(2023, 1, 1, 0),
			Comments: []Comment{
				{Author: &User{Login: "bob"}, CreatedAt: date(2023, 1, 2, 0)},
			},
		},
		{
			Title:     "Issue 2",
			Author:    &User{Login: "bob"},
			State:     "closed",
			CreatedAt: date(2023, 1, 1, 0),
			ClosedAt:  date(2023, 1, 4, 0),
			Comments: []Comment{
				{Author: &User{Login: "carol"}, CreatedAt: date(2023, 1, 3, 0)},
			},
		},
	}

	results, numOpen, numClosed := ProcessIssues(issues, cal, []string{"alice"})

	if len(results) != 1 {
		t.Fatalf("Expected 1 result after dropping the ignored author, got %d", len(results))
	}
	if numOpen != 0 {
		t.Errorf("Expected 0 open issues, got %d", numOpen)
	}
	if numClosed != 1 {
		t.Errorf("Expected 1 closed issue, got %d", numClosed)
	}

	got := results[0]
	if got.Title != "Issue 2" {
		t.Errorf("Expected 'Issue 2', got '%s'", got.Title)
	}
	if got.TimeToFirstResponse == nil || *got.TimeToFirstResponse != 18*time.Hour {
		t.Errorf("Expected 18h time to first response, got %v", got.TimeToFirstResponse)
	}
	// Jan 1 through Jan 3 are working days (weekend is Friday/Saturday).
	if got.TimeToClose == nil || *got.TimeToClose != 27*time.Hour {
		t.Errorf("Expected 27h time to close, got %v", got.TimeToClose)
	}
	if got.TimeToAnswer != nil {
		t.Errorf("Expected no time to answer for an issue, got %v", *got.TimeToAnswer)
	}
}

func TestProcessIssues_OpenIssueHasNoTimeToClose(t *testing.T) {
	cal := businesstime.DefaultCalendar()

	issues := []*Issue{
		{
			Title:     "Open issue",
			Author:    &User{Login: "alice"},
			State:     "open",
			CreatedAt: date(2023, 1, 1, 0),
		},
	}

	results, numOpen, _ := ProcessIssues(issues, cal, nil)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if numOpen != 1 {
		t.Errorf("Expected 1 open issue, got %d", numOpen)
	}
	if results[0].TimeToClose != nil {
		t.Errorf("Expected nil time to close for an open issue, got %v", *results[0].TimeToClose)
	}
	if results[0].TimeToFirstResponse != nil {
		t.Errorf("Expected nil time to first response without comments, got %v", *results[0].TimeToFirstResponse)
	}
}

func TestProcessDiscussions(t *testing.T) {
	cal := businesstime.DefaultCalendar()

	discussions := []*Discussion{
		{
			Title:          "Discussion 1",
			Author:         &User{Login: "alice"},
			CreatedAt:      date(2023, 1, 1, 0),
			ReplyTimes:     []time.Time{date(2023, 1, 2, 0)},
			AnswerChosenAt: date(2023, 1, 4, 0),
			ClosedAt:       date(2023, 1, 5, 0),
		},
		{
			Title:      "Discussion 2",
			Author:     &User{Login: "bob"},
			CreatedAt:  date(2023, 1, 1, 0),
			ReplyTimes: []time.Time{date(2023, 1, 3, 0)},
		},
	}

	results, numOpen, numClosed := ProcessDiscussions(discussions, cal, nil)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if numOpen != 1 || numClosed != 1 {
		t.Errorf("Expected 1 open and 1 closed, got %d open and %d closed", numOpen, numClosed)
	}

	first := results[0]
	if first.TimeToFirstResponse == nil || *first.TimeToFirstResponse != 9*time.Hour {
		t.Errorf("Expected 9h time to first response, got %v", first.TimeToFirstResponse)
	}
	// Jan 1-3 are workdays, Jan 4 starts after the Jan 3 window closed:
	// created-to-answer covers three full 9h windows.
	if first.TimeToAnswer == nil || *first.TimeToAnswer != 27*time.Hour {
		t.Errorf("Expected 27h time to answer, got %v", first.TimeToAnswer)
	}
	if first.TimeToClose == nil || *first.TimeToClose != 36*time.Hour {
		t.Errorf("Expected 36h time to close, got %v", first.TimeToClose)
	}

	second := results[1]
	if second.TimeToAnswer != nil {
		t.Errorf("Expected nil time to answer without a chosen answer, got %v", *second.TimeToAnswer)
	}
	if second.TimeToClose != nil {
		t.Errorf("Expected nil time to close for an open discussion, got %v", *second.TimeToClose)
	}
}

func TestProcessDiscussions_CreatorReplyStillCounts(t *testing.T) {
	cal := businesstime.DefaultCalendar()

	// Discussion replies are unfiltered: the creator's own reply counts.
	discussions := []*Discussion{
		{
			Author:     &User{Login: "alice"},
			CreatedAt:  date(2023, 1, 1, 0),
			ReplyTimes: []time.Time{date(2023, 1, 2, 0)},
		},
	}

	results, _, _ := ProcessDiscussions(discussions, cal, nil)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].TimeToFirstResponse == nil || *results[0].TimeToFirstResponse != 9*time.Hour {
		t.Errorf("Expected 9h time to first response, got %v", results[0].TimeToFirstResponse)
	}
}
