package gapresolver

import "sort"

// SortCandidates orders candidates by category precedence, then by
// descending score within a category. The sort is stable so candidates tied
// on both keys keep their original scan order, making the output independent
// of how the per-candidate scans were scheduled.
func SortCandidates(candidates []CandidateScore) {
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := candidates[i].Category.Precedence(), candidates[j].Category.Precedence()
		if pi != pj {
			return pi < pj
		}
		return candidates[i].Score > candidates[j].Score
	})
}

// Recommend returns the first candidate in ranked order with a positive
// score, or nil when none qualifies. Zero-score candidates (constraint
// violations, failed data fetches) are never recommended.
func Recommend(ranked []CandidateScore) *CandidateScore {
	for i := range ranked {
		if ranked[i].Score > 0 {
			return &ranked[i]
		}
	}
	return nil
}
