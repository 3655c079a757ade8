// Package metrics measures response latencies for GitHub issues, pull
// requests and discussions in business time, and aggregates them into
// summary statistics. It operates on plain records supplied by a fetch
// layer and performs no I/O of its own.
package metrics

import "time"

// User identifies a comment or issue author.
type User struct {
	Login string `json:"login"`
	IsBot bool   `json:"is_bot"`
}

// Comment is a candidate response on an issue or pull request. A nil Author
// marks malformed author data (a ghost user); a zero CreatedAt marks a
// pending comment whose timestamp is not yet resolved.
type Comment struct {
	Author    *User     `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Issue is a tracked issue or pull request with its ordered comment
// sequences. Reviews is only populated for pull requests. ReadyForReviewAt
// is the moment a pull request left draft status (zero when not applicable).
type Issue struct {
	Title            string    `json:"title"`
	URL              string    `json:"url"`
	Author           *User     `json:"author"`
	State            string    `json:"state"`
	CreatedAt        time.Time `json:"created_at"`
	ClosedAt         time.Time `json:"closed_at"`
	ReadyForReviewAt time.Time `json:"ready_for_review_at"`
	IsPullRequest    bool      `json:"is_pull_request"`
	Comments         []Comment `json:"comments"`
	Reviews          []Comment `json:"reviews"`
}

// Discussion is a tracked discussion with its time-ordered reply instants.
type Discussion struct {
	Title          string      `json:"title"`
	URL            string      `json:"url"`
	Author         *User       `json:"author"`
	CreatedAt      time.Time   `json:"created_at"`
	ClosedAt       time.Time   `json:"closed_at"`
	AnswerChosenAt time.Time   `json:"answer_chosen_at"`
	ReplyTimes     []time.Time `json:"reply_times"`
}

// IssueMetrics holds the measured durations for one item. A nil duration
// means the metric could not be measured for that item.
type IssueMetrics struct {
	Title               string
	URL                 string
	Author              string
	TimeToFirstResponse *time.Duration
	TimeToClose         *time.Duration
	TimeToAnswer        *time.Duration
}
