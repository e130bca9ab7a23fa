package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const snapshotColumns = "id, login, taken_at, version, overall_score"

// CreateSnapshot stores a report for login together with its metrics in a
// single transaction and returns the new snapshot ID. report is the
// serialized report document.
func (db *DB) CreateSnapshot(s Snapshot, report []byte, metrics []Metric) (int64, error) {
	var id int64
	err := db.inTx(func(q querier) error {
		var err error
		id, err = insertSnapshot(q, s, report, metrics)
		return err
	})
	return id, err
}

// RecordSnapshot stores a snapshot, its metrics and its open recommendations
// and resolves the recommendations left open by earlier snapshots of the same
// login. Nothing is written unless every step succeeds. It returns the new
// snapshot ID and the number of earlier recommendations that no longer apply.
func (db *DB) RecordSnapshot(s Snapshot, report []byte, metrics []Metric, recs []Recommendation) (int64, int, error) {
	var id int64
	var resolved int
	err := db.inTx(func(q querier) error {
		var err error
		if id, err = insertSnapshot(q, s, report, metrics); err != nil {
			return err
		}
		titles := make([]string, 0, len(recs))
		for _, r := range recs {
			r.SnapshotID = id
			r.Login = s.Login
			if err := insertRecommendation(q, &r); err != nil {
				return fmt.Errorf("inserting recommendation %q: %w", r.Title, err)
			}
			titles = append(titles, r.Title)
		}
		resolved, err = resolveStale(q, s.Login, id, titles)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	return id, resolved, nil
}

func insertSnapshot(q querier, s Snapshot, report []byte, metrics []Metric) (int64, error) {
	result, err := q.Exec(
		"INSERT INTO snapshots (login, taken_at, version, overall_score, report) VALUES (?, ?, ?, ?, ?)",
		s.Login, s.TakenAt.UTC().Format(time.RFC3339), s.Version, s.OverallScore, string(report),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting snapshot: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, m := range metrics {
		if _, err := q.Exec(
			"INSERT INTO snapshot_metrics (snapshot_id, position, metric_name, metric_value) VALUES (?, ?, ?, ?)",
			id, i, m.Name, m.Value,
		); err != nil {
			return 0, fmt.Errorf("inserting metric %s: %w", m.Name, err)
		}
	}
	return id, nil
}

// GetSnapshot returns a snapshot by ID, or nil if it does not exist.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT "+snapshotColumns+" FROM snapshots WHERE id = ?", id)
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot for login (1 = latest,
// 2 = previous, etc.), or nil if there are fewer than n.
func (db *DB) GetSnapshotN(login string, n int) (*Snapshot, error) {
	if n < 1 {
		return nil, nil
	}
	row := db.conn.QueryRow(
		"SELECT "+snapshotColumns+" FROM snapshots WHERE login = ? ORDER BY id DESC LIMIT 1 OFFSET ?",
		login, n-1,
	)
	return scanSnapshot(row)
}

// GetRecentSnapshots returns up to n snapshots for login, newest first.
func (db *DB) GetRecentSnapshots(login string, n int) ([]Snapshot, error) {
	rows, err := db.conn.Query(
		"SELECT "+snapshotColumns+" FROM snapshots WHERE login = ? ORDER BY id DESC LIMIT ?",
		login, n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snapshots []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *s)
	}
	return snapshots, rows.Err()
}

// GetReport returns the serialized report stored with a snapshot.
func (db *DB) GetReport(id int64) ([]byte, error) {
	var report string
	err := db.conn.QueryRow("SELECT report FROM snapshots WHERE id = ?", id).Scan(&report)
	if err != nil {
		return nil, err
	}
	return []byte(report), nil
}

// GetMetrics returns the metrics of a snapshot in insertion order.
func (db *DB) GetMetrics(snapshotID int64) ([]Metric, error) {
	rows, err := db.conn.Query(
		"SELECT metric_name, metric_value FROM snapshot_metrics WHERE snapshot_id = ? ORDER BY position",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metrics []Metric
	for rows.Next() {
		var m Metric
		if err := rows.Scan(&m.Name, &m.Value); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &s.Login, &takenAt, &s.Version, &s.OverallScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}
