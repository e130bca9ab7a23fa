package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func addSnapshot(t *testing.T, db *DB, login string, overall int, at time.Time, metrics ...Metric) int64 {
	t.Helper()
	id, err := db.CreateSnapshot(Snapshot{
		Login:        login,
		TakenAt:      at,
		Version:      "test",
		OverallScore: overall,
	}, []byte(`{"login":"`+login+`"}`), metrics)
	require.NoError(t, err)
	return id
}

func TestOpen_CreatesFileAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hiresignal.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var version int
	require.NoError(t, db.conn.QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)

	// Migrating twice is a no-op.
	require.NoError(t, db.Migrate())
}

func TestSnapshots_PerLogin(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := addSnapshot(t, db, "octo", 40, base, Metric{"overall", 40})
	addSnapshot(t, db, "other", 90, base.Add(time.Hour))
	second := addSnapshot(t, db, "octo", 55, base.Add(24*time.Hour), Metric{"overall", 55})

	latest, err := db.GetSnapshotN("octo", 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second, latest.ID)
	assert.Equal(t, 55, latest.OverallScore)
	assert.True(t, latest.TakenAt.Equal(base.Add(24*time.Hour)))

	prev, err := db.GetSnapshotN("octo", 2)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, first, prev.ID)

	none, err := db.GetSnapshotN("octo", 3)
	require.NoError(t, err)
	assert.Nil(t, none)

	recent, err := db.GetRecentSnapshots("octo", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, second, recent[0].ID)
	assert.Equal(t, "octo", recent[1].Login)

	missing, err := db.GetSnapshot(999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	report, err := db.GetReport(first)
	require.NoError(t, err)
	assert.JSONEq(t, `{"login":"octo"}`, string(report))
}

func TestGetMetrics_PreservesOrder(t *testing.T) {
	db := openTestDB(t)
	id := addSnapshot(t, db, "octo", 50, time.Now(),
		Metric{"overall", 50}, Metric{"impact", 10}, Metric{"documentation", 70})

	metrics, err := db.GetMetrics(id)
	require.NoError(t, err)
	assert.Equal(t, []Metric{{"overall", 50}, {"impact", 10}, {"documentation", 70}}, metrics)
}

func TestCompare(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()
	a := addSnapshot(t, db, "octo", 40, now, Metric{"overall", 40}, Metric{"impact", 30}, Metric{"documentation", 50})
	b := addSnapshot(t, db, "octo", 45, now, Metric{"overall", 45}, Metric{"impact", 20}, Metric{"documentation", 50}, Metric{"new", 5})

	prev, err := db.GetSnapshot(a)
	require.NoError(t, err)
	curr, err := db.GetSnapshot(b)
	require.NoError(t, err)

	diff, err := db.Compare(prev, curr)
	require.NoError(t, err)
	require.Len(t, diff.Deltas, 4)

	assert.Equal(t, MetricDelta{Name: "overall", Previous: 40, Current: 45, Delta: 5, Direction: Improved}, diff.Deltas[0])
	assert.Equal(t, Regressed, diff.Deltas[1].Direction)
	assert.Equal(t, Unchanged, diff.Deltas[2].Direction)
	assert.Equal(t, 0.0, diff.Deltas[3].Previous)
	assert.Equal(t, Improved, diff.Deltas[3].Direction)
}

func TestRecommendations_ResolveStale(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	first := addSnapshot(t, db, "octo", 40, now)
	for _, title := range []string{"Complete Your Profile", "Add Tests & CI/CD"} {
		require.NoError(t, db.InsertRecommendation(&Recommendation{
			SnapshotID: first, Login: "octo", Category: "profile", Impact: "high",
			Title: title, Description: "d", ScoreIncrease: 8,
		}))
	}

	second := addSnapshot(t, db, "octo", 50, now)
	require.NoError(t, db.InsertRecommendation(&Recommendation{
		SnapshotID: second, Login: "octo", Category: "engineering", Impact: "medium",
		Title: "Add Tests & CI/CD", Description: "d", ScoreIncrease: 8,
	}))

	resolved, err := db.ResolveStale("octo", second, []string{"Add Tests & CI/CD"})
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	open, err := db.GetOpenRecommendations("octo")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, second, open[0].SnapshotID)
	assert.Equal(t, StatusOpen, open[0].Status)
}

func TestGetOpenRecommendations_Ordering(t *testing.T) {
	db := openTestDB(t)
	id := addSnapshot(t, db, "octo", 40, time.Now())
	for _, inc := range []int{3, 10, 5} {
		require.NoError(t, db.InsertRecommendation(&Recommendation{
			SnapshotID: id, Login: "octo", Category: "c", Impact: "low",
			Title: "t", Description: "d", ScoreIncrease: inc,
		}))
	}

	open, err := db.GetOpenRecommendations("octo")
	require.NoError(t, err)
	require.Len(t, open, 3)
	assert.Equal(t, []int{10, 5, 3}, []int{open[0].ScoreIncrease, open[1].ScoreIncrease, open[2].ScoreIncrease})

	other, err := db.GetOpenRecommendations("someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRecordSnapshot_ReplacesOpenRecommendations(t *testing.T) {
	db := openTestDB(t)
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{Login: "octo", TakenAt: at, Version: "test", OverallScore: 40}

	_, _, err := db.RecordSnapshot(snap, []byte(`{}`), nil, []Recommendation{
		{Category: "Profile", Impact: "high", Title: "Complete Your Profile", Description: "d", ScoreIncrease: 8},
		{Category: "Engineering", Impact: "medium", Title: "Add Tests & CI/CD", Description: "d", ScoreIncrease: 6},
	})
	require.NoError(t, err)

	snap.OverallScore = 55
	id, resolved, err := db.RecordSnapshot(snap, []byte(`{}`), []Metric{{Name: "overall", Value: 55}}, []Recommendation{
		{Category: "Engineering", Impact: "medium", Title: "Add Tests & CI/CD", Description: "d", ScoreIncrease: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	open, err := db.GetOpenRecommendations("octo")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, id, open[0].SnapshotID)
	assert.Equal(t, "octo", open[0].Login)

	metrics, err := db.GetMetrics(id)
	require.NoError(t, err)
	assert.Equal(t, []Metric{{Name: "overall", Value: 55}}, metrics)
}

func TestRecordSnapshot_RollsBackOnFailedRecommendation(t *testing.T) {
	db := openTestDB(t)
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first, _, err := db.RecordSnapshot(Snapshot{Login: "octo", TakenAt: at, Version: "test", OverallScore: 40}, []byte(`{}`), nil,
		[]Recommendation{{Category: "Profile", Impact: "high", Title: "Complete Your Profile", Description: "d", ScoreIncrease: 8}})
	require.NoError(t, err)

	_, _, err = db.RecordSnapshot(Snapshot{Login: "octo", TakenAt: at, Version: "test", OverallScore: 50}, []byte(`{}`),
		[]Metric{{Name: "overall", Value: 50}},
		[]Recommendation{
			{Category: "Profile", Impact: "high", Title: "Add a Bio", Description: "d", ScoreIncrease: 5},
			{Category: "Profile", Impact: "high", Title: "Broken", Description: "d", ScoreIncrease: 1, Status: "archived"},
		})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Broken"`)

	snaps, err := db.GetRecentSnapshots("octo", 10)
	require.NoError(t, err)
	require.Len(t, snaps, 1, "failed snapshot must not be stored")
	assert.Equal(t, first, snaps[0].ID)

	open, err := db.GetOpenRecommendations("octo")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Complete Your Profile", open[0].Title)
	assert.Equal(t, first, open[0].SnapshotID)
}
