package store

// InsertRecommendation stores an open recommendation for a snapshot.
func (db *DB) InsertRecommendation(r *Recommendation) error {
	return insertRecommendation(db.conn, r)
}

func insertRecommendation(q querier, r *Recommendation) error {
	status := r.Status
	if status == "" {
		status = StatusOpen
	}
	_, err := q.Exec(
		`INSERT INTO recommendations
		(snapshot_id, login, category, impact, title, description, score_increase, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SnapshotID, r.Login, r.Category, r.Impact, r.Title, r.Description,
		r.ScoreIncrease, status,
	)
	return err
}

// GetOpenRecommendations returns the open recommendations for login, largest
// score increase first.
func (db *DB) GetOpenRecommendations(login string) ([]Recommendation, error) {
	return openRecommendations(db.conn, login)
}

func openRecommendations(q querier, login string) ([]Recommendation, error) {
	rows, err := q.Query(
		`SELECT id, snapshot_id, login, category, impact, title, description, score_increase, status
		 FROM recommendations WHERE login = ? AND status = ? ORDER BY score_increase DESC, id`,
		login, StatusOpen,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var recs []Recommendation
	for rows.Next() {
		var r Recommendation
		if err := rows.Scan(&r.ID, &r.SnapshotID, &r.Login, &r.Category, &r.Impact,
			&r.Title, &r.Description, &r.ScoreIncrease, &r.Status); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// ResolveRecommendation marks a recommendation as resolved.
func (db *DB) ResolveRecommendation(id int64) error {
	return resolveRecommendation(db.conn, id)
}

func resolveRecommendation(q querier, id int64) error {
	_, err := q.Exec("UPDATE recommendations SET status = ? WHERE id = ?", StatusResolved, id)
	return err
}

// ResolveStale resolves every open recommendation for login from an earlier
// snapshot whose title is not in current, and returns how many were resolved.
// Open recommendations still present in current are also resolved so that
// each title stays open once, under the newest snapshot.
func (db *DB) ResolveStale(login string, currentSnapshotID int64, current []string) (int, error) {
	return resolveStale(db.conn, login, currentSnapshotID, current)
}

func resolveStale(q querier, login string, currentSnapshotID int64, current []string) (int, error) {
	open, err := openRecommendations(q, login)
	if err != nil {
		return 0, err
	}

	still := make(map[string]bool, len(current))
	for _, t := range current {
		still[t] = true
	}

	resolved := 0
	for _, r := range open {
		if r.SnapshotID == currentSnapshotID {
			continue
		}
		if err := resolveRecommendation(q, r.ID); err != nil {
			return resolved, err
		}
		if !still[r.Title] {
			resolved++
		}
	}
	return resolved, nil
}
