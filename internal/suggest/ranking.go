package suggest

import "sort"

// RankRecommendations sorts recommendations by ScoreIncrease in descending
// order. The sort is stable so equal gains keep their input order.
func RankRecommendations(recs []Recommendation) []Recommendation {
	sorted := make([]Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScoreIncrease > sorted[j].ScoreIncrease
	})
	return sorted
}
