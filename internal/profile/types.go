// Package profile defines the raw records describing one code-hosting
// account: the profile itself, its repositories, recent activity events and
// content samples for its top repositories.
package profile

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Event types recognised by the scoring core. Other types are ignored.
const (
	EventPush        = "PushEvent"
	EventPullRequest = "PullRequestEvent"
	EventIssues      = "IssuesEvent"
	EventFork        = "ForkEvent"
)

// Profile is the account metadata.
type Profile struct {
	Login           string    `json:"login" yaml:"login"`
	Name            string    `json:"name,omitempty" yaml:"name,omitempty"`
	Bio             string    `json:"bio,omitempty" yaml:"bio,omitempty"`
	Company         string    `json:"company,omitempty" yaml:"company,omitempty"`
	Location        string    `json:"location,omitempty" yaml:"location,omitempty"`
	Blog            string    `json:"blog,omitempty" yaml:"blog,omitempty"`
	Email           string    `json:"email,omitempty" yaml:"email,omitempty"`
	TwitterUsername string    `json:"twitter_username,omitempty" yaml:"twitter_username,omitempty"`
	Hireable        *bool     `json:"hireable,omitempty" yaml:"hireable,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	HTMLURL         string    `json:"html_url,omitempty" yaml:"html_url,omitempty"`
	Followers       int       `json:"followers" yaml:"followers"`
	Following       int       `json:"following" yaml:"following"`
	PublicRepos     int       `json:"public_repos" yaml:"public_repos"`
	PublicGists     int       `json:"public_gists" yaml:"public_gists"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"updated_at"`
}

// IsHireable reports whether the hireable flag is explicitly set to true.
func (p Profile) IsHireable() bool {
	return p.Hireable != nil && *p.Hireable
}

// HasCustomAvatar reports whether the avatar is something other than the
// generated identicon.
func (p Profile) HasCustomAvatar() bool {
	return p.AvatarURL != "" && !strings.Contains(p.AvatarURL, "identicon")
}

// Repository is a single repository owned (or forked) by the account.
type Repository struct {
	Name            string    `json:"name" yaml:"name"`
	FullName        string    `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Description     string    `json:"description,omitempty" yaml:"description,omitempty"`
	Homepage        string    `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Language        string    `json:"language,omitempty" yaml:"language,omitempty"`
	Stars           int       `json:"stargazers_count" yaml:"stargazers_count"`
	Watchers        int       `json:"watchers_count" yaml:"watchers_count"`
	Forks           int       `json:"forks_count" yaml:"forks_count"`
	OpenIssues      int       `json:"open_issues_count" yaml:"open_issues_count"`
	Topics          []string  `json:"topics,omitempty" yaml:"topics,omitempty"`
	HasWiki         bool      `json:"has_wiki" yaml:"has_wiki"`
	HasPages        bool      `json:"has_pages" yaml:"has_pages"`
	License         string    `json:"license,omitempty" yaml:"license,omitempty"`
	Size            int       `json:"size" yaml:"size"`
	Fork            bool      `json:"fork" yaml:"fork"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
	PushedAt        time.Time `json:"pushed_at" yaml:"pushed_at"`
	DefaultBranch   string    `json:"default_branch,omitempty" yaml:"default_branch,omitempty"`
}

// HasLicense reports whether a license was detected.
func (r Repository) HasLicense() bool { return r.License != "" }

// DescriptionLen returns the description length in characters.
func (r Repository) DescriptionLen() int { return utf8.RuneCountInString(r.Description) }

// HasHomepage reports whether the repository links a homepage.
func (r Repository) HasHomepage() bool { return r.Homepage != "" }

// ActivityEvent is one entry from the public activity feed.
type ActivityEvent struct {
	Type      string    `json:"type" yaml:"type"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Repo      string    `json:"repo" yaml:"repo"`
}

// Day returns the UTC calendar date of the event as YYYY-MM-DD.
func (e ActivityEvent) Day() string {
	return e.CreatedAt.UTC().Format("2006-01-02")
}

// ReadmeSample is the raw README text of one repository.
type ReadmeSample struct {
	RepoName string `json:"repo_name" yaml:"repo_name"`
	Content  string `json:"content" yaml:"content"`
}

// TreeFile is one path in a repository file listing.
type TreeFile struct {
	Path string `json:"path" yaml:"path"`
}

// TreeSample is the recursive file listing of one repository.
type TreeSample struct {
	RepoName string     `json:"repo_name" yaml:"repo_name"`
	Files    []TreeFile `json:"files" yaml:"files"`
}

// CommitMessage is the full message of one commit.
type CommitMessage struct {
	Message string `json:"message" yaml:"message"`
}

// CommitSample is a batch of recent commit messages from one repository.
type CommitSample struct {
	RepoName string          `json:"repo_name" yaml:"repo_name"`
	Messages []CommitMessage `json:"messages" yaml:"messages"`
}

// Input is the complete, already-fetched record set for one account.
// The sample slices are optional; nil is treated as empty.
type Input struct {
	Profile      Profile         `json:"profile" yaml:"profile"`
	Repositories []Repository    `json:"repositories" yaml:"repositories"`
	Events       []ActivityEvent `json:"events" yaml:"events"`
	Readmes      []ReadmeSample  `json:"readmes,omitempty" yaml:"readmes,omitempty"`
	Trees        []TreeSample    `json:"trees,omitempty" yaml:"trees,omitempty"`
	Commits      []CommitSample  `json:"commits,omitempty" yaml:"commits,omitempty"`
}
