package github

import (
	"context"
	"time"

	"github.com/reillywatson/issuetracker/internal/metrics"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// discussionNode mirrors the GraphQL discussion fields we need. Discussions
// are only exposed over the GraphQL API, so this client is separate from the
// REST one.
type discussionNode struct {
	Title  githubv4.String
	Url    githubv4.String
	Author struct {
		Login githubv4.String
	}
	CreatedAt      githubv4.DateTime
	ClosedAt       githubv4.DateTime
	AnswerChosenAt githubv4.DateTime
	Comments       struct {
		Nodes []struct {
			CreatedAt githubv4.DateTime
		}
	} `graphql:"comments(first: 10)"`
}

type DiscussionClient struct {
	client *githubv4.Client
}

func NewDiscussionClient(token string) *DiscussionClient {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return &DiscussionClient{client: githubv4.NewClient(tc)}
}

// FetchDiscussions fetches a repository's discussions created in
// [startDate, endDate] as metrics records.
func (c *DiscussionClient) FetchDiscussions(owner, repo string, startDate, endDate time.Time) ([]*metrics.Discussion, error) {
	var q struct {
		Repository struct {
			Discussions struct {
				Nodes    []discussionNode
				PageInfo struct {
					HasNextPage githubv4.Boolean
					EndCursor   githubv4.String
				}
			} `graphql:"discussions(first: 50, orderBy: {field: CREATED_AT, direction: DESC}, after: $after)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(repo),
		"after": (*githubv4.String)(nil),
	}

	var results []*metrics.Discussion
	for {
		if err := c.client.Query(context.Background(), &q, variables); err != nil {
			return nil, err
		}

		nodes := q.Repository.Discussions.Nodes
		for _, node := range nodes {
			created := node.CreatedAt.Time
			if created.Before(startDate) || created.After(endDate) {
				continue
			}
			results = append(results, convertDiscussion(node))
		}

		// Pages are newest-first; stop once we're past the start date.
		pastStart := len(nodes) > 0 && nodes[len(nodes)-1].CreatedAt.Time.Before(startDate)
		if pastStart || !bool(q.Repository.Discussions.PageInfo.HasNextPage) {
			break
		}
		variables["after"] = githubv4.String(q.Repository.Discussions.PageInfo.EndCursor)
	}

	return results, nil
}

func convertDiscussion(node discussionNode) *metrics.Discussion {
	d := &metrics.Discussion{
		Title:          string(node.Title),
		URL:            string(node.Url),
		Author:         &metrics.User{Login: string(node.Author.Login)},
		CreatedAt:      node.CreatedAt.Time,
		ClosedAt:       node.ClosedAt.Time,
		AnswerChosenAt: node.AnswerChosenAt.Time,
	}
	for _, reply := range node.Comments.Nodes {
		d.ReplyTimes = append(d.ReplyTimes, reply.CreatedAt.Time)
	}
	return d
}
