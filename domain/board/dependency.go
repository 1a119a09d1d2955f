package board

import "github.com/samber/lo"

// Index builds the dependency-resolution universe from a flat list of
// sub-points, keyed by identifier.
func Index(subpoints []SubPoint) map[string]SubPoint {
	return lo.KeyBy(subpoints, func(sp SubPoint) string { return sp.ID })
}

// Satisfied reports whether sp's dependency, if any, allows completion.
// A dangling reference (referent deleted) fails closed: the dependency is
// treated as permanently unsatisfied, not as an error.
func Satisfied(sp SubPoint, universe map[string]SubPoint) bool {
	if sp.DependsOn == "" {
		return true
	}
	dep, ok := universe[sp.DependsOn]
	return ok && dep.Completed
}

// WouldCreateCycle walks the dependsOn chain starting at proposedDependsOn
// and reports whether candidateID is reached. A self-reference is the
// trivial one-hop cycle. The walk is bounded by the universe size; if it
// exhausts the bound the stored data already contains a cycle and the
// assignment is rejected rather than looping forever.
func WouldCreateCycle(candidateID, proposedDependsOn string, universe map[string]SubPoint) bool {
	if proposedDependsOn == "" {
		return false
	}
	next := proposedDependsOn
	for hops := 0; hops <= len(universe); hops++ {
		if next == candidateID {
			return true
		}
		sp, ok := universe[next]
		if !ok || sp.DependsOn == "" {
			return false
		}
		next = sp.DependsOn
	}
	return true
}
