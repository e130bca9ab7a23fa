package store

// Diff compares the metrics of two snapshots. Every metric is a score where
// higher is better. Metrics missing from prev compare against zero.
func Diff(prev, curr []Metric) []MetricDelta {
	prevMap := make(map[string]float64, len(prev))
	for _, m := range prev {
		prevMap[m.Name] = m.Value
	}

	deltas := make([]MetricDelta, 0, len(curr))
	for _, m := range curr {
		prevVal := prevMap[m.Name]
		delta := m.Value - prevVal

		direction := Unchanged
		switch {
		case delta > 0:
			direction = Improved
		case delta < 0:
			direction = Regressed
		}

		deltas = append(deltas, MetricDelta{
			Name:      m.Name,
			Previous:  prevVal,
			Current:   m.Value,
			Delta:     delta,
			Direction: direction,
		})
	}
	return deltas
}

// Compare loads the metrics of two snapshots and diffs them.
func (db *DB) Compare(prev, curr *Snapshot) (*SnapshotDiff, error) {
	prevMetrics, err := db.GetMetrics(prev.ID)
	if err != nil {
		return nil, err
	}
	currMetrics, err := db.GetMetrics(curr.ID)
	if err != nil {
		return nil, err
	}
	return &SnapshotDiff{
		Previous: prev,
		Current:  curr,
		Deltas:   Diff(prevMetrics, currMetrics),
	}, nil
}
