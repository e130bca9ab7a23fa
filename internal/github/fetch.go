package github

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// ProgressFunc receives a stage description and a completion percentage.
type ProgressFunc func(stage string, percent int)

// Fetch gathers the complete input for login in two phases. The profile,
// repositories and events are fetched concurrently and any failure aborts
// the fetch. Content samples for the top repositories by stars are then
// fetched concurrently; a failed sample degrades to an absent README or an
// empty file or commit list.
func (c *Client) Fetch(ctx context.Context, login string, progress ProgressFunc) (*profile.Input, error) {
	if progress == nil {
		progress = func(string, int) {}
	}

	in := &profile.Input{}

	progress("Fetching profile...", 10)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.user(gctx, login)
		if err != nil {
			return fmt.Errorf("fetching user %s: %w", login, err)
		}
		in.Profile = p
		return nil
	})
	g.Go(func() error {
		repos, err := c.repositories(gctx, login)
		if err != nil {
			return fmt.Errorf("fetching repositories: %w", err)
		}
		in.Repositories = repos
		return nil
	})
	g.Go(func() error {
		events, err := c.events(gctx, login)
		if err != nil {
			return fmt.Errorf("fetching events: %w", err)
		}
		in.Events = events
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	c.log.Debug("fetched profile",
		zap.String("login", login),
		zap.Int("repos", len(in.Repositories)),
		zap.Int("events", len(in.Events)),
	)

	progress("Analyzing READMEs...", 40)
	in.Readmes = c.sampleReadmes(ctx, login, profile.TopByStars(in.Repositories, c.opts.Readmes))

	progress("Scanning repo structures...", 60)
	top := profile.TopByStars(in.Repositories, c.opts.Trees)
	in.Trees, in.Commits = c.sampleTreesAndCommits(ctx, login, top)

	progress("Computing scores...", 80)
	progress("Generating insights...", 95)

	return in, nil
}

func (c *Client) sampleReadmes(ctx context.Context, owner string, repos []profile.Repository) []profile.ReadmeSample {
	contents := make([]string, len(repos))
	found := make([]bool, len(repos))

	var g errgroup.Group
	for i, r := range repos {
		g.Go(func() error {
			text, err := c.readme(ctx, owner, r.Name)
			if err != nil {
				c.log.Debug("readme unavailable", zap.String("repo", r.Name), zap.Error(err))
				return nil
			}
			contents[i], found[i] = text, true
			return nil
		})
	}
	_ = g.Wait()

	samples := []profile.ReadmeSample{}
	for i, r := range repos {
		if found[i] {
			samples = append(samples, profile.ReadmeSample{RepoName: r.Name, Content: contents[i]})
		}
	}
	return samples
}

func (c *Client) sampleTreesAndCommits(ctx context.Context, owner string, repos []profile.Repository) ([]profile.TreeSample, []profile.CommitSample) {
	trees := make([]profile.TreeSample, len(repos))
	commits := make([]profile.CommitSample, len(repos))

	var g errgroup.Group
	for i, r := range repos {
		trees[i] = profile.TreeSample{RepoName: r.Name, Files: []profile.TreeFile{}}
		commits[i] = profile.CommitSample{RepoName: r.Name, Messages: []profile.CommitMessage{}}

		g.Go(func() error {
			branch := r.DefaultBranch
			if branch == "" {
				branch = "HEAD"
			}
			files, err := c.tree(ctx, owner, r.Name, branch)
			if err != nil {
				c.log.Debug("tree unavailable", zap.String("repo", r.Name), zap.Error(err))
				return nil
			}
			trees[i].Files = files
			return nil
		})
		g.Go(func() error {
			msgs, err := c.commits(ctx, owner, r.Name)
			if err != nil {
				c.log.Debug("commits unavailable", zap.String("repo", r.Name), zap.Error(err))
				return nil
			}
			commits[i].Messages = msgs
			return nil
		})
	}
	_ = g.Wait()

	return trees, commits
}
