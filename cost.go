package kdtree

import "math"

// splitCandidate is one evaluated (axis, position) pair from the sweep,
// carrying the left/right sub-boxes so the builder doesn't recompute them
// after picking a winner.
type splitCandidate struct {
	found      bool
	axis       Axis
	pos        float64
	cost       float64
	leftBounds AABB
	rightBounds AABB
}

// sahCost implements the surface-area-heuristic cost estimate for splitting
// a node at pos on axis:
//
//	cost(p) = K_T + K_I * ( SA(V_L)/SA(V)*N_L + SA(V_R)/SA(V)*N_R )
//
// multiplied by EmptyBonus when one side is empty. leftBounds/rightBounds
// are bounds clipped to the candidate plane on axis, not re-derived from
// the primitives on each side: the cost estimate uses the node's own AABB
// clipped at p, independent of how tight the primitives on that side
// actually pack.
//
// If the node's surface area is zero (a degenerate node with zero extent on
// at least two axes, e.g. every primitive lies on one line) the SurfaceArea ratios become 0/0 = NaN, which
// compares false against every other candidate; the caller's "no split
// beats leaf cost" fallback then fires naturally, without any
// special-cased guard here.
func sahCost(cfg Config, parent AABB, axis Axis, pos float64, nLeft, nRight int) (cost float64, leftBounds, rightBounds AABB) {
	leftBounds = parent.ClipMax(axis, pos)
	rightBounds = parent.ClipMin(axis, pos)

	parentSA := parent.SurfaceArea()
	cost = cfg.KTraversal + cfg.KIntersection*(
		leftBounds.SurfaceArea()/parentSA*float64(nLeft)+
			rightBounds.SurfaceArea()/parentSA*float64(nRight))

	if nLeft == 0 || nRight == 0 {
		cost *= cfg.EmptyBonus
	}
	return cost, leftBounds, rightBounds
}

// bestSplitOnAxis sweeps one axis's sorted event list, evaluating every
// candidate plane position, and returns the cheapest candidate found, or a
// not-found result if the axis has no viable plane (every primitive
// straddles, or the axis has a single event position).
func bestSplitOnAxis(cfg Config, bounds AABB, events []Event, axis Axis, n int) splitCandidate {
	best := splitCandidate{cost: math.Inf(1)}

	left, right := 0, n
	i := 0
	for i < len(events) {
		p := events[i].Position

		j := i
		for j < len(events) && events[j].Position == p && events[j].Kind == End {
			right--
			j++
		}

		// Only planes strictly inside the node's extent on this axis are
		// candidates: a plane on (or beyond) the boundary cuts off no volume.
		if p > bounds.Min.Get(axis) && p < bounds.Max.Get(axis) {
			cost, lb, rb := sahCost(cfg, bounds, axis, p, left, right)
			if cost < best.cost {
				best = splitCandidate{found: true, axis: axis, pos: p, cost: cost, leftBounds: lb, rightBounds: rb}
			}
		}

		for j < len(events) && events[j].Position == p && events[j].Kind == Start {
			left++
			j++
		}

		i = j
	}

	return best
}
