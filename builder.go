package kdtree

import "github.com/flomonster/kdtree-ray/internal/kdstat"

// buildNode recursively splits a node's primitive set into a leaf or an
// internal node with two children, picking the split with the lowest
// estimated SAH cost across all three axes, or falling back to a leaf when
// no split beats the cost of just testing every primitive.
//
// Event lists are re-derived per node (re-emit + re-sort) rather than
// filtered down from the parent's lists. That costs O(N log N) per tree
// level and is considerably simpler than threading a filtered event list
// through the recursion, at the price of some constant-factor overhead.
func buildNode(cfg Config, bounds AABB, prims []primRef, depth, maxDepth int, stats *kdstat.BuildStats) *node {
	n := len(prims)

	if n == 0 {
		stats.RecordLeaf(depth, 0)
		return &node{bounds: bounds, isLeaf: true}
	}

	if n <= cfg.MinPrimitivesPerLeaf || depth > maxDepth {
		stats.RecordLeaf(depth, n)
		return makeLeaf(bounds, prims)
	}

	lists := buildEventLists(prims)

	var best splitCandidate
	for _, a := range axes {
		cand := bestSplitOnAxis(cfg, bounds, lists[a], a, n)
		if !cand.found {
			continue
		}
		if !best.found || cand.cost < best.cost {
			best = cand
		}
	}

	if !best.found || !(best.cost < cfg.leafCost(n)) {
		stats.RecordLeaf(depth, n)
		return makeLeaf(bounds, prims)
	}

	leftPrims, rightPrims := classify(best.axis, best.pos, prims)

	stats.RecordInternal(depth)
	return &node{
		bounds:   bounds,
		isLeaf:   false,
		axis:     best.axis,
		splitPos: best.pos,
		left:     buildNode(cfg, best.leftBounds, leftPrims, depth+1, maxDepth, stats),
		right:    buildNode(cfg, best.rightBounds, rightPrims, depth+1, maxDepth, stats),
	}
}

// classify partitions prims around the chosen (axis, pos) split:
// strictly-left primitives go left, strictly-right go right, and
// straddlers are reference-duplicated into both — what makes this a k-d
// tree rather than a BSP.
func classify(axis Axis, pos float64, prims []primRef) (left, right []primRef) {
	for _, p := range prims {
		switch {
		case p.box.Max.Get(axis) < pos:
			left = append(left, p)
		case p.box.Min.Get(axis) > pos:
			right = append(right, p)
		default:
			left = append(left, p)
			right = append(right, p)
		}
	}
	return left, right
}
