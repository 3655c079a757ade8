package github

import (
	"testing"
	"time"

	"github.com/google/go-github/v39/github"
)

func TestConvertUser_GhostUserStaysNil(t *testing.T) {
	if got := convertUser(nil); got != nil {
		t.Errorf("Expected nil for a ghost user, got %v", got)
	}
}

func TestConvertUser_BotFlag(t *testing.T) {
	bot := convertUser(&github.User{Login: github.String("dependabot[bot]"), Type: github.String("Bot")})
	if !bot.IsBot {
		t.Error("Expected Bot user type to set IsBot")
	}

	human := convertUser(&github.User{Login: github.String("alice"), Type: github.String("User")})
	if human.IsBot {
		t.Error("Expected User type not to set IsBot")
	}
}

func TestConvertReviews_UnsubmittedReviewHasZeroTimestamp(t *testing.T) {
	reviews := convertReviews([]*github.PullRequestReview{
		{
			User:  &github.User{Login: github.String("carol")},
			State: github.String("PENDING"),
		},
	})
	if len(reviews) != 1 {
		t.Fatalf("Expected 1 review, got %d", len(reviews))
	}
	if !reviews[0].CreatedAt.IsZero() {
		t.Errorf("Expected a zero timestamp for an unsubmitted review, got %v", reviews[0].CreatedAt)
	}
}

func TestReadyForReviewTime_NoEvent(t *testing.T) {
	at := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	timeline := []*github.Timeline{
		{Event: github.String("labeled"), CreatedAt: &at},
	}
	if got := readyForReviewTime(timeline); !got.IsZero() {
		t.Errorf("Expected zero time without a ready_for_review event, got %v", got)
	}
}
