package board

import (
	"math"

	"github.com/samber/lo"
)

// RecomputeProgress returns the completion percentage of a set of
// sub-points: round(100 * completed / total), 0 for an empty set.
// Ties round away from zero. The result is always within [0, 100] and the
// function is a pure recomputation from current state, so concurrent stale
// writes of the persisted value converge on the next invocation.
func RecomputeProgress(subpoints []SubPoint) int {
	total := len(subpoints)
	if total == 0 {
		return 0
	}
	completed := lo.CountBy(subpoints, func(sp SubPoint) bool { return sp.Completed })
	return int(math.Round(100 * float64(completed) / float64(total)))
}
