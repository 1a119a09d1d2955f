package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sub(id string, completed bool, dependsOn string) SubPoint {
	return SubPoint{ID: id, Title: id, Completed: completed, DependsOn: dependsOn}
}

func TestSatisfied(t *testing.T) {
	req := require.New(t)

	a := sub("subpoint:ai:1", false, "")
	b := sub("subpoint:ai:2", false, a.ID)
	universe := Index([]SubPoint{a, b})

	// No dependency is always satisfied.
	req.True(Satisfied(a, universe))

	// Incomplete dependency blocks.
	req.False(Satisfied(b, universe))

	// Completed dependency unblocks.
	a.Completed = true
	universe = Index([]SubPoint{a, b})
	req.True(Satisfied(b, universe))
}

func TestSatisfied_DanglingReferenceFailsClosed(t *testing.T) {
	req := require.New(t)

	// b depends on a sub-point that no longer exists: permanently unsatisfied.
	b := sub("subpoint:ai:2", false, "subpoint:interfaz:1")
	universe := Index([]SubPoint{b})

	req.False(Satisfied(b, universe))
	req.True(Blocked(b, universe))
}

func TestWouldCreateCycle_SelfReference(t *testing.T) {
	req := require.New(t)
	req.True(WouldCreateCycle("subpoint:ai:1", "subpoint:ai:1", nil))
}

func TestWouldCreateCycle_TwoNodes(t *testing.T) {
	req := require.New(t)

	b := sub("subpoint:ai:2", false, "")
	a := sub("subpoint:ai:1", false, b.ID)
	universe := Index([]SubPoint{a, b})

	// A -> B exists; B -> A would close the loop.
	req.True(WouldCreateCycle(b.ID, a.ID, universe))

	// The other direction is already in place and fine.
	req.False(WouldCreateCycle(a.ID, b.ID, universe))
}

func TestWouldCreateCycle_ThreeNodeChain(t *testing.T) {
	req := require.New(t)

	c := sub("subpoint:base-datos:3", false, "")
	b := sub("subpoint:interfaz:2", false, c.ID)
	a := sub("subpoint:ai:1", false, b.ID)
	universe := Index([]SubPoint{a, b, c})

	// A -> B -> C across areas; C -> A closes the loop.
	req.True(WouldCreateCycle(c.ID, a.ID, universe))

	// C -> something outside the chain is fine.
	d := sub("subpoint:impresion:4", false, "")
	universe = Index([]SubPoint{a, b, c, d})
	req.False(WouldCreateCycle(c.ID, d.ID, universe))
}

func TestWouldCreateCycle_DanglingChainEndsWalk(t *testing.T) {
	req := require.New(t)

	b := sub("subpoint:ai:2", false, "subpoint:ai:999")
	universe := Index([]SubPoint{b})

	req.False(WouldCreateCycle("subpoint:ai:1", b.ID, universe))
}

func TestWouldCreateCycle_TerminatesOnMalformedData(t *testing.T) {
	req := require.New(t)

	// Pre-existing cycle in stored data that does not involve the candidate.
	// The bounded walk must terminate and treats exhaustion as a cycle.
	x := sub("subpoint:ai:10", false, "subpoint:ai:11")
	y := sub("subpoint:ai:11", false, "subpoint:ai:10")
	universe := Index([]SubPoint{x, y})

	req.True(WouldCreateCycle("subpoint:ai:1", x.ID, universe))
}
