package github

import (
	"log"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/reillywatson/issuetracker/internal/cache"
)

// CachedGitHubClient wraps GitHubClient with caching capabilities
type CachedGitHubClient struct {
	client *GitHubClient
	cache  cache.Cache
	kb     *cache.KeyBuilder
}

// NewCachedGitHubClient creates a new GitHub client with caching
func NewCachedGitHubClient(token string, cacheImpl cache.Cache) *CachedGitHubClient {
	return &CachedGitHubClient{
		client: NewGitHubClient(token),
		cache:  cacheImpl,
		kb:     cache.NewKeyBuilder("github"),
	}
}

// FetchIssues fetches issues with caching
func (c *CachedGitHubClient) FetchIssues(owner, repo string, startDate, endDate time.Time) ([]*github.Issue, error) {
	cacheKey := c.kb.IssuesListKey(owner, repo, startDate, endDate)
	var cachedIssues []*github.Issue
	if err := c.cache.Get(cacheKey, &cachedIssues); err == nil {
		return cachedIssues, nil
	} else if err != cache.ErrCacheMiss {
		log.Printf("Cache error for issues list: %v", err)
	}

	issues, err := c.client.FetchIssues(owner, repo, startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Longer TTL for historical data, shorter for recent data.
	ttl := c.calculateListTTL(endDate)
	if err := c.cache.Set(cacheKey, issues, ttl); err != nil {
		log.Printf("Failed to cache issues list: %v", err)
	}

	return issues, nil
}

// FetchIssueComments fetches issue comments with caching
func (c *CachedGitHubClient) FetchIssueComments(owner, repo string, number int) ([]*github.IssueComment, error) {
	cacheKey := c.kb.IssueCommentsKey(owner, repo, number)
	var cachedComments []*github.IssueComment
	if err := c.cache.Get(cacheKey, &cachedComments); err == nil {
		return cachedComments, nil
	} else if err != cache.ErrCacheMiss {
		log.Printf("Cache error for issue #%d comments: %v", number, err)
	}

	comments, err := c.client.FetchIssueComments(owner, repo, number)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(cacheKey, comments, 1*time.Hour); err != nil {
		log.Printf("Failed to cache issue #%d comments: %v", number, err)
	}

	return comments, nil
}

// FetchPullRequestReviews fetches PR reviews with caching
func (c *CachedGitHubClient) FetchPullRequestReviews(owner, repo string, number int) ([]*github.PullRequestReview, error) {
	cacheKey := c.kb.PRReviewsKey(owner, repo, number)
	var cachedReviews []*github.PullRequestReview
	if err := c.cache.Get(cacheKey, &cachedReviews); err == nil {
		return cachedReviews, nil
	} else if err != cache.ErrCacheMiss {
		log.Printf("Cache error for PR #%d reviews: %v", number, err)
	}

	reviews, err := c.client.FetchPullRequestReviews(owner, repo, number)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(cacheKey, reviews, 1*time.Hour); err != nil {
		log.Printf("Failed to cache PR #%d reviews: %v", number, err)
	}

	return reviews, nil
}

// FetchIssueTimeline fetches an issue's timeline with caching. Draft history
// never changes once a PR is ready for review, so it gets a long TTL.
func (c *CachedGitHubClient) FetchIssueTimeline(owner, repo string, number int) ([]*github.Timeline, error) {
	cacheKey := c.kb.PRTimelineKey(owner, repo, number)
	var cachedEvents []*github.Timeline
	if err := c.cache.Get(cacheKey, &cachedEvents); err == nil {
		return cachedEvents, nil
	} else if err != cache.ErrCacheMiss {
		log.Printf("Cache error for issue #%d timeline: %v", number, err)
	}

	events, err := c.client.FetchIssueTimeline(owner, repo, number)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(cacheKey, events, 24*time.Hour); err != nil {
		log.Printf("Failed to cache issue #%d timeline: %v", number, err)
	}

	return events, nil
}

// calculateListTTL calculates TTL for list caches based on how recent the data is
func (c *CachedGitHubClient) calculateListTTL(endDate time.Time) time.Duration {
	daysSinceEnd := time.Since(endDate).Hours() / 24

	// Historical data (older than 7 days): cache for 24 hours
	if daysSinceEnd > 7 {
		return 24 * time.Hour
	}

	// Recent data (last 7 days): cache for 1 hour
	return 1 * time.Hour
}

// Close cleans up the client
func (c *CachedGitHubClient) Close() error {
	return c.cache.Close()
}
