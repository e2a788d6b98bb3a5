// Package githubapi wraps the read-only third-party collaborators that feed
// the portfolio's GitHub panels: the GitHub REST API for repository details
// and a public contributions aggregator for the activity heatmap.
package githubapi

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const recentRepoLimit = 6

type Client struct {
	gh       *github.Client
	username string
}

// NewClient creates a GitHub API client for the configured account. An empty
// token means unauthenticated access, which works but with lower rate limits.
func NewClient(ctx context.Context, username, token string) *Client {
	if token == "" {
		return &Client{gh: github.NewClient(nil), username: username}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{gh: github.NewClient(oauth2.NewClient(ctx, ts)), username: username}
}

// RepoSummary is the subset of repository metadata the project pages render.
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"htmlUrl"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Watchers    int    `json:"watchers"`
	OpenIssues  int    `json:"openIssues"`
}

// RepoOverview bundles everything the repository detail page needs.
type RepoOverview struct {
	Repository RepoSummary   `json:"repository"`
	Languages  []string      `json:"languages"`
	OtherRepos []RepoSummary `json:"otherRepos"`
}

// RepoOverview fetches a repository plus its language list and up to six
// other recently updated non-fork repos. The repository itself must resolve;
// the two side requests run concurrently and degrade to empty lists on
// failure, mirroring how the page treats them as optional decoration.
func (c *Client) RepoOverview(ctx context.Context, repo string) (*RepoOverview, error) {
	repository, _, err := c.gh.Repositories.Get(ctx, c.username, repo)
	if err != nil {
		return nil, fmt.Errorf("get repository %s/%s: %w", c.username, repo, err)
	}

	overview := &RepoOverview{
		Repository: summarize(repository),
		Languages:  []string{},
		OtherRepos: []RepoSummary{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		languages, _, err := c.gh.Repositories.ListLanguages(gctx, c.username, repo)
		if err != nil {
			return nil
		}
		overview.Languages = sortedLanguages(languages)
		return nil
	})
	g.Go(func() error {
		repos, _, err := c.gh.Repositories.List(gctx, c.username, &github.RepositoryListOptions{
			Sort:        "updated",
			ListOptions: github.ListOptions{PerPage: recentRepoLimit},
		})
		if err != nil {
			return nil
		}
		for _, other := range repos {
			if other.GetFork() || other.GetName() == repo {
				continue
			}
			overview.OtherRepos = append(overview.OtherRepos, summarize(other))
		}
		return nil
	})
	// Side requests never return errors, but Wait also propagates ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

func summarize(repo *github.Repository) RepoSummary {
	return RepoSummary{
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		HTMLURL:     repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Watchers:    repo.GetWatchersCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
	}
}

// sortedLanguages orders language names by bytes of code, descending.
func sortedLanguages(byteCounts map[string]int) []string {
	names := make([]string, 0, len(byteCounts))
	for name := range byteCounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if byteCounts[names[i]] != byteCounts[names[j]] {
			return byteCounts[names[i]] > byteCounts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
