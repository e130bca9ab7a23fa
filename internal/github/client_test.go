package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL, Readmes: 5, Trees: 3, CommitsPerRepo: 30}, nil)
	require.NoError(t, err)
	return c
}

func profileMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octo", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"login": "octo", "name": "Octo Cat", "bio": "Builds things", "followers": 12,
			"hireable": true, "created_at": "2020-01-01T00:00:00Z",
		})
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"name": "small", "stargazers_count": 1, "default_branch": "main", "fork": false},
			{"name": "big", "stargazers_count": 40, "default_branch": "main", "fork": false,
				"topics": []string{"go", "cli"}, "license": map[string]any{"name": "MIT License"}},
			{"name": "forked", "stargazers_count": 500, "fork": true},
		})
	})
	mux.HandleFunc("/users/octo/events/public", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"type": "PushEvent", "created_at": "2026-01-02T10:00:00Z", "repo": map[string]any{"name": "octo/big"}},
			{"type": "WatchEvent", "created_at": "2026-01-01T10:00:00Z", "repo": map[string]any{"name": "x/y"}},
		})
	})
	mux.HandleFunc("/repos/octo/big/readme", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"type": "file", "encoding": "base64",
			"content": base64.StdEncoding.EncodeToString([]byte("# Big\n\nA big project.")),
		})
	})
	mux.HandleFunc("/repos/octo/small/readme", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"message": "Not Found"})
	})
	mux.HandleFunc("/repos/octo/big/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"sha":  "abc",
			"tree": []map[string]any{{"path": "src/main.go", "type": "blob"}, {"path": "go.mod", "type": "blob"}},
		})
	})
	mux.HandleFunc("/repos/octo/small/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		writeJSON(w, map[string]any{"message": "Git Repository is empty."})
	})
	mux.HandleFunc("/repos/octo/big/commits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"sha": "1", "commit": map[string]any{"message": "feat: add parser\n\nbody"}},
			{"sha": "2", "commit": map[string]any{"message": "fix typo"}},
		})
	})
	mux.HandleFunc("/repos/octo/small/commits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{})
	})
	return mux
}

func TestFetch_GathersAndSamplesTopRepos(t *testing.T) {
	c := newTestClient(t, profileMux())

	var mu sync.Mutex
	var stages []int
	in, err := c.Fetch(context.Background(), "octo", func(stage string, percent int) {
		mu.Lock()
		defer mu.Unlock()
		stages = append(stages, percent)
	})
	require.NoError(t, err)

	assert.Equal(t, "octo", in.Profile.Login)
	assert.True(t, in.Profile.IsHireable())
	assert.Len(t, in.Repositories, 3)
	assert.Equal(t, "MIT License", in.Repositories[1].License)
	require.Len(t, in.Events, 2)
	assert.Equal(t, "octo/big", in.Events[0].Repo)
	assert.Equal(t, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), in.Events[0].CreatedAt.UTC())

	// The fork is never sampled; a missing README is omitted.
	require.Len(t, in.Readmes, 1)
	assert.Equal(t, "big", in.Readmes[0].RepoName)
	assert.Equal(t, "# Big\n\nA big project.", in.Readmes[0].Content)

	// Trees and commits keep star order; failures degrade to empty lists.
	require.Len(t, in.Trees, 2)
	assert.Equal(t, "big", in.Trees[0].RepoName)
	assert.Len(t, in.Trees[0].Files, 2)
	assert.Equal(t, "small", in.Trees[1].RepoName)
	assert.Empty(t, in.Trees[1].Files)

	require.Len(t, in.Commits, 2)
	assert.Equal(t, "feat: add parser\n\nbody", in.Commits[0].Messages[0].Message)
	assert.Empty(t, in.Commits[1].Messages)

	assert.Equal(t, []int{10, 40, 60, 80, 95}, stages)
}

func TestFetch_UserNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"message": "Not Found"})
	})
	c := newTestClient(t, mux)

	_, err := c.Fetch(context.Background(), "ghost", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestFetch_RateLimited(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1893456000")
		w.WriteHeader(http.StatusForbidden)
		writeJSON(w, map[string]any{"message": "API rate limit exceeded for 127.0.0.1."})
	})
	c := newTestClient(t, mux)

	_, err := c.Fetch(context.Background(), "octo", nil)
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))

	var rle *RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, 0, rle.Remaining)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "://bad"}, nil)
	assert.Error(t, err)
}

func TestRateLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"resources": map[string]any{
				"core": map[string]any{"limit": 5000, "remaining": 4990, "reset": 1893456000},
			},
		})
	})
	c := newTestClient(t, mux)

	q, err := c.RateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5000, q.Limit)
	assert.Equal(t, 4990, q.Remaining)
	assert.Equal(t, int64(1893456000), q.Reset.Unix())
}
