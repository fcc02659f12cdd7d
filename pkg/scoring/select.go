package scoring

import "errors"

var ErrEmptyCandidateSet = errors.New("no candidates to select from")

// PickBest returns the highest scoring candidate. Ties go to the earliest
// candidate in input order.
func PickBest[T any](candidates []T, score func(T) float64) (T, error) {
	var best T

	if len(candidates) == 0 {
		return best, ErrEmptyCandidateSet
	}

	best = candidates[0]
	bestScore := score(best)

	for _, candidate := range candidates[1:] {
		if candidateScore := score(candidate); candidateScore > bestScore {
			best = candidate
			bestScore = candidateScore
		}
	}

	return best, nil
}
