// Package store persists hiring-signal report snapshots in SQLite so that a
// profile can be tracked over time.
package store

import "time"

// Snapshot is one persisted report for a login.
type Snapshot struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	TakenAt      time.Time `json:"taken_at"`
	Version      string    `json:"version"`
	OverallScore int       `json:"overall_score"`
}

// Metric is a named score captured with a snapshot.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Recommendation is a persisted improvement recommendation.
type Recommendation struct {
	ID            int64  `json:"id"`
	SnapshotID    int64  `json:"snapshot_id"`
	Login         string `json:"login"`
	Category      string `json:"category"`
	Impact        string `json:"impact"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ScoreIncrease int    `json:"score_increase"`
	Status        string `json:"status"`
}

// Recommendation statuses.
const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
)

// SnapshotDiff represents the comparison between two snapshots.
type SnapshotDiff struct {
	Previous *Snapshot     `json:"previous"`
	Current  *Snapshot     `json:"current"`
	Deltas   []MetricDelta `json:"deltas"`
}

// Delta directions.
const (
	Improved  = "improved"
	Regressed = "regressed"
	Unchanged = "unchanged"
)

// MetricDelta represents the change in a single metric between snapshots.
type MetricDelta struct {
	Name      string  `json:"name"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"`
}
