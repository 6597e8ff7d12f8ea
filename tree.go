package kdtree

import (
	"math"

	"github.com/flomonster/kdtree-ray/internal/kdstat"
)

// Tree is an immutable k-d tree over a fixed primitive set. Build consumes
// the primitive slice only for the duration of the call; the returned Tree
// owns its nodes exclusively and performs only reads during Intersect, so
// it is safe for concurrent readers with no locking.
type Tree struct {
	root   *node
	bounds AABB
	n      int
	stats  kdstat.BuildStats
}

// Build constructs a Tree from prims using DefaultConfig's SAH weights.
func Build(prims []Bounded) *Tree {
	return BuildWithConfig(prims, DefaultConfig())
}

// BuildWithConfigSafe is BuildWithConfig with one construction-time check
// the core otherwise has no opportunity to make: a nil entry in prims would
// panic inside Bounds() deep in the recursion, so it is checked up front
// and reported as ErrNilBounded instead.
func BuildWithConfigSafe(prims []Bounded, cfg Config) (*Tree, error) {
	for _, p := range prims {
		if p == nil {
			return nil, ErrNilBounded
		}
	}
	return BuildWithConfig(prims, cfg), nil
}

// BuildWithConfig constructs a Tree from prims using cfg's SAH weights and
// termination thresholds. An empty prims produces a tree with a single
// empty leaf; every Intersect against it returns nothing.
func BuildWithConfig(prims []Bounded, cfg Config) *Tree {
	refs := make([]primRef, len(prims))
	var bounds AABB
	for i, p := range prims {
		b := p.Bounds()
		refs[i] = primRef{index: i, box: b}
		if i == 0 {
			bounds = b
		} else {
			bounds = Union(bounds, b)
		}
	}

	maxDepth := cfg.resolvedMaxDepth(len(prims))
	stats := &kdstat.BuildStats{}
	root := buildNode(cfg, bounds, refs, 0, maxDepth, stats)

	return &Tree{root: root, bounds: bounds, n: len(prims), stats: *stats}
}

// Bounds returns the root AABB covering every primitive the tree was built from.
func (t *Tree) Bounds() AABB {
	return t.bounds
}

// Stats returns build-time statistics (node/leaf counts, depth reached,
// primitive reference duplication from straddlers).
func (t *Tree) Stats() kdstat.BuildStats {
	return t.stats
}

// Intersect walks the tree along the ray (origin, direction) and returns
// the deduplicated set of primitive indices whose leaves the ray reaches —
// a superset of the primitives actually intersected; callers narrow that
// down with their own exact per-primitive test. NaN in either origin or
// direction yields an empty result.
func (t *Tree) Intersect(origin, direction Vec3) []int {
	indices, _ := t.intersectWithStats(origin, direction)
	return indices
}

// IntersectStats is Intersect plus the kdstat.QueryStats for that single
// traversal, for callers that want visibility into traversal cost without
// mutating any shared state on the tree.
func (t *Tree) IntersectStats(origin, direction Vec3) ([]int, kdstat.QueryStats) {
	return t.intersectWithStats(origin, direction)
}

func (t *Tree) intersectWithStats(origin, direction Vec3) ([]int, kdstat.QueryStats) {
	var qs kdstat.QueryStats

	if t.root == nil {
		return nil, qs
	}

	invDir := Vec3{X: 1 / direction.X, Y: 1 / direction.Y, Z: 1 / direction.Z}

	hit, tmin, tmax := t.bounds.intersectRayInterval(origin, invDir)
	if !hit {
		return nil, qs
	}

	seen := make([]bool, t.n)
	var result []int

	var walk func(nd *node, tmin, tmax float64)
	walk = func(nd *node, tmin, tmax float64) {
		qs.NodesVisited++

		if nd.isLeaf {
			qs.LeavesVisited++
			for _, idx := range nd.indices {
				if !seen[idx] {
					seen[idx] = true
					result = append(result, idx)
				}
			}
			return
		}

		a := nd.axis
		o := origin.Get(a)
		d := direction.Get(a)
		id := invDir.Get(a)

		// near is the child on the side of the split the ray starts from.
		// At an exact tie (origin sitting on the split plane) the direction
		// breaks the tie: a ray moving toward increasing values on this
		// axis is heading into the right child, so right is near.
		near, far := nd.left, nd.right
		if o > nd.splitPos || (o == nd.splitPos && d > 0) {
			near, far = nd.right, nd.left
		}

		if nHit, ntmin, ntmax := near.bounds.intersectRayInterval(origin, invDir); nHit {
			walk(near, ntmin, ntmax)
		}

		var tPlane float64
		if d == 0 {
			// Ray never crosses this axis: far is unreachable through the
			// plane, though it may still be reachable on its own bounds
			// if it were adjacent — the far.bounds check below still runs
			// if crossesPlane ends up true, so this only short-circuits
			// the common parallel-ray case.
			tPlane = math.Inf(1)
		} else {
			tPlane = (nd.splitPos - o) * id
		}

		// For t > tPlane the ray is on the far side. A plane crossed before
		// the ray enters this node (tPlane < tmin) leaves the whole in-node
		// segment on the far side, so only the exit end bounds the test.
		crossesPlane := tPlane <= tmax
		if tPlane < 0 || !crossesPlane {
			return
		}

		if fHit, ftmin, ftmax := far.bounds.intersectRayInterval(origin, invDir); fHit {
			walk(far, ftmin, ftmax)
		}
	}

	walk(t.root, tmin, tmax)
	qs.Candidates = len(result)
	return result, qs
}

// Validate re-walks the tree checking that every internal node's AABB
// contains both its children's, and that no leaf holds the same primitive
// index twice. Grounded on scottlawsonbc/slam's
// phys.BVH.Validate()/phys.Group.Validate() — a debug helper, never called
// on the build or traversal hot path.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}
	return validateNode(t.root, t.bounds)
}

func validateNode(nd *node, parentBounds AABB) error {
	if !aabbContains(parentBounds, nd.bounds) {
		return ErrBoundsNotContained
	}
	if nd.isLeaf {
		seen := make(map[int]bool, len(nd.indices))
		for _, idx := range nd.indices {
			if seen[idx] {
				return ErrDuplicateIndexInLeaf
			}
			seen[idx] = true
		}
		return nil
	}
	if err := validateNode(nd.left, nd.bounds); err != nil {
		return err
	}
	return validateNode(nd.right, nd.bounds)
}

// aabbContains reports whether outer fully contains inner on every axis.
func aabbContains(outer, inner AABB) bool {
	for _, a := range axes {
		if inner.Min.Get(a) < outer.Min.Get(a) || inner.Max.Get(a) > outer.Max.Get(a) {
			return false
		}
	}
	return true
}

