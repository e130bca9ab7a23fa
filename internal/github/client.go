// Package github gathers the public profile data that feeds a report.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// Options controls how much data a Client gathers.
type Options struct {
	// Token is an optional personal access token. Anonymous requests are
	// limited to 60 per hour.
	Token string

	// BaseURL overrides the API endpoint, e.g. for GitHub Enterprise.
	BaseURL string

	// MaxRepoPages bounds repository pagination (100 repos per page).
	MaxRepoPages int

	// Readmes is how many top repositories get a README sample.
	Readmes int

	// Trees is how many top repositories get a file tree and commit sample.
	Trees int

	// CommitsPerRepo is how many recent commits are sampled per repository.
	CommitsPerRepo int
}

// Client fetches profile data through the GitHub REST API.
type Client struct {
	api  *gh.Client
	opts Options
	log  *zap.Logger
}

// NewClient creates a client. A nil logger disables logging.
func NewClient(opts Options, log *zap.Logger) (*Client, error) {
	var tc *http.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		tc = oauth2.NewClient(context.Background(), ts)
	}

	api := gh.NewClient(tc)
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		api.BaseURL = u
	}

	if opts.MaxRepoPages <= 0 {
		opts.MaxRepoPages = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{api: api, opts: opts, log: log}, nil
}

func (c *Client) user(ctx context.Context, login string) (profile.Profile, error) {
	u, _, err := c.api.Users.Get(ctx, login)
	if err != nil {
		return profile.Profile{}, handleError(err)
	}
	return convertUser(u), nil
}

func (c *Client) repositories(ctx context.Context, login string) ([]profile.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var out []profile.Repository
	for page := 0; page < c.opts.MaxRepoPages; page++ {
		repos, resp, err := c.api.Repositories.ListByUser(ctx, login, opts)
		if err != nil {
			return nil, handleError(err)
		}
		for _, r := range repos {
			if r != nil {
				out = append(out, convertRepository(r))
			}
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return out, nil
}

func (c *Client) events(ctx context.Context, login string) ([]profile.ActivityEvent, error) {
	events, _, err := c.api.Activity.ListEventsPerformedByUser(ctx, login, true, &gh.ListOptions{PerPage: 100})
	if err != nil {
		return nil, handleError(err)
	}
	out := make([]profile.ActivityEvent, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		out = append(out, profile.ActivityEvent{
			Type:      e.GetType(),
			CreatedAt: e.GetCreatedAt().Time,
			Repo:      e.GetRepo().GetName(),
		})
	}
	return out, nil
}

func (c *Client) readme(ctx context.Context, owner, repo string) (string, error) {
	content, _, err := c.api.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return "", handleError(err)
	}
	text, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decoding readme: %w", err)
	}
	return text, nil
}

func (c *Client) tree(ctx context.Context, owner, repo, branch string) ([]profile.TreeFile, error) {
	tree, _, err := c.api.Git.GetTree(ctx, owner, repo, branch, true)
	if err != nil {
		return nil, handleError(err)
	}
	files := make([]profile.TreeFile, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		files = append(files, profile.TreeFile{Path: e.GetPath()})
	}
	return files, nil
}

func (c *Client) commits(ctx context.Context, owner, repo string) ([]profile.CommitMessage, error) {
	commits, _, err := c.api.Repositories.ListCommits(ctx, owner, repo, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: c.opts.CommitsPerRepo},
	})
	if err != nil {
		return nil, handleError(err)
	}
	out := make([]profile.CommitMessage, 0, len(commits))
	for _, rc := range commits {
		out = append(out, profile.CommitMessage{Message: rc.GetCommit().GetMessage()})
	}
	return out, nil
}

// Quota is the core REST API request quota of the authenticated (or
// anonymous) caller.
type Quota struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"reset"`
}

// RateLimit reports the current core API quota. The call itself does not
// count against the quota.
func (c *Client) RateLimit(ctx context.Context) (Quota, error) {
	limits, _, err := c.api.RateLimit.Get(ctx)
	if err != nil {
		return Quota{}, handleError(err)
	}
	core := limits.GetCore()
	if core == nil {
		return Quota{}, errors.New("rate limit response has no core quota")
	}
	return Quota{Limit: core.Limit, Remaining: core.Remaining, Reset: core.Reset.Time}, nil
}

// handleError maps GitHub API errors to the package's error taxonomy.
func handleError(err error) error {
	if err == nil {
		return nil
	}

	var rle *gh.RateLimitError
	if errors.As(err, &rle) {
		return NewRateLimitError(rle.Message).
			WithRateLimitInfo(rle.Rate.Limit, rle.Rate.Remaining).
			WithResetTime(rle.Rate.Reset.Time)
	}

	var ale *gh.AbuseRateLimitError
	if errors.As(err, &ale) {
		e := NewRateLimitError(ale.Message)
		if ale.RetryAfter != nil {
			e.WithRetryAfter(*ale.RetryAfter)
		}
		return e
	}

	var er *gh.ErrorResponse
	if errors.As(err, &er) && er.Response != nil {
		switch er.Response.StatusCode {
		case http.StatusNotFound:
			return ErrUserNotFound
		case http.StatusForbidden, http.StatusTooManyRequests:
			return NewRateLimitError(er.Message)
		}
	}
	return err
}

func convertUser(u *gh.User) profile.Profile {
	return profile.Profile{
		Login:           u.GetLogin(),
		Name:            u.GetName(),
		Bio:             u.GetBio(),
		Company:         u.GetCompany(),
		Location:        u.GetLocation(),
		Blog:            u.GetBlog(),
		Email:           u.GetEmail(),
		TwitterUsername: u.GetTwitterUsername(),
		Hireable:        u.Hireable,
		AvatarURL:       u.GetAvatarURL(),
		HTMLURL:         u.GetHTMLURL(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		PublicRepos:     u.GetPublicRepos(),
		PublicGists:     u.GetPublicGists(),
		CreatedAt:       u.GetCreatedAt().Time,
		UpdatedAt:       u.GetUpdatedAt().Time,
	}
}

func convertRepository(r *gh.Repository) profile.Repository {
	return profile.Repository{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		Homepage:      r.GetHomepage(),
		Language:      r.GetLanguage(),
		Stars:         r.GetStargazersCount(),
		Watchers:      r.GetWatchersCount(),
		Forks:         r.GetForksCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		Topics:        r.Topics,
		HasWiki:       r.GetHasWiki(),
		HasPages:      r.GetHasPages(),
		License:       r.GetLicense().GetName(),
		Size:          r.GetSize(),
		Fork:          r.GetFork(),
		CreatedAt:     r.GetCreatedAt().Time,
		PushedAt:      r.GetPushedAt().Time,
		DefaultBranch: r.GetDefaultBranch(),
	}
}
