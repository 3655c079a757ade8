package cache

import (
	"fmt"
	"time"
)

// KeyBuilder builds consistent cache keys for one namespace.
type KeyBuilder struct {
	prefix string
}

func NewKeyBuilder(prefix string) *KeyBuilder {
	return &KeyBuilder{prefix: prefix}
}

func (b *KeyBuilder) IssuesListKey(owner, repo string, startDate, endDate time.Time) string {
	return b.buildKey("issues_list", owner, repo, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
}

func (b *KeyBuilder) IssueCommentsKey(owner, repo string, number int) string {
	return b.buildKey("issue_comments", owner, repo, number)
}

func (b *KeyBuilder) PRReviewsKey(owner, repo string, number int) string {
	return b.buildKey("pr_reviews", owner, repo, number)
}

func (b *KeyBuilder) PRTimelineKey(owner, repo string, number int) string {
	return b.buildKey("pr_timeline", owner, repo, number)
}

func (b *KeyBuilder) DiscussionsListKey(owner, repo string, startDate, endDate time.Time) string {
	return b.buildKey("discussions_list", owner, repo, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
}

func (b *KeyBuilder) buildKey(parts ...interface{}) string {
	key := b.prefix
	for _, part := range parts {
		key += ":" + fmt.Sprintf("%v", part)
	}
	return key
}
