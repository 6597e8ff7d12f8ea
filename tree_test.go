package kdtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxPrim is the test fixture's Bounded: a fixed AABB with no other behavior.
type boxPrim struct {
	box AABB
}

func (b boxPrim) Bounds() AABB { return b.box }

func boxes(aabbs ...AABB) []Bounded {
	out := make([]Bounded, len(aabbs))
	for i, a := range aabbs {
		out[i] = boxPrim{box: a}
	}
	return out
}

func sortedInts(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

func TestScenarioSingleBox(t *testing.T) {
	tr := Build(boxes(NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1})))

	got := tr.Intersect(Vec3{-1, 0.5, 0.5}, Vec3{1, 0, 0})
	assert.Equal(t, []int{0}, sortedInts(got))

	got = tr.Intersect(Vec3{-1, 0.5, 0.5}, Vec3{-1, 0, 0})
	assert.Empty(t, got)
}

func TestScenarioTwoDisjointBoxesOnX(t *testing.T) {
	tr := Build(boxes(
		NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1}),
		NewAABB(Vec3{5, 0, 0}, Vec3{6, 1, 1}),
	))

	got := tr.Intersect(Vec3{-1, 0.5, 0.5}, Vec3{1, 0, 0})
	assert.Equal(t, []int{0, 1}, sortedInts(got))

	got = tr.Intersect(Vec3{2, 0.5, 0.5}, Vec3{1, 0, 0})
	assert.Equal(t, []int{1}, sortedInts(got))
}

func TestScenarioStraddler(t *testing.T) {
	tr := Build(boxes(
		NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1}),
		NewAABB(Vec3{5, 0, 0}, Vec3{6, 1, 1}),
		NewAABB(Vec3{0.5, 0, 0}, Vec3{5.5, 1, 1}),
	))

	got := tr.Intersect(Vec3{2.5, 0.5, 0.5}, Vec3{0, 0, 1})
	assert.Contains(t, got, 2)
}

func TestScenarioEmptySet(t *testing.T) {
	tr := Build(nil)
	got := tr.Intersect(Vec3{0, 0, 0}, Vec3{1, 0, 0})
	assert.Empty(t, got)
}

func TestScenarioCoincidentPrimitives(t *testing.T) {
	box := NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	prims := make([]AABB, 100)
	for i := range prims {
		prims[i] = box
	}
	tr := Build(boxes(prims...))

	stats := tr.Stats()
	assert.Equal(t, 1, stats.Leaves, "coincident primitives must collapse into a single leaf")
	assert.Equal(t, 0, stats.InternalNodes)

	got := tr.Intersect(Vec3{-1, 0.5, 0.5}, Vec3{1, 0, 0})
	assert.Len(t, got, 100)
}

func TestScenarioAxisAlignedGrid(t *testing.T) {
	var aabbs []AABB
	for _, x := range []float64{0, 2} {
		for _, y := range []float64{0, 2} {
			for _, z := range []float64{0, 2} {
				aabbs = append(aabbs, NewAABB(Vec3{x, y, z}, Vec3{x + 1, y + 1, z + 1}))
			}
		}
	}
	tr := Build(boxes(aabbs...))

	// Ray through y=0.5,z=0.5 along +X crosses the 4 boxes with y,z in [0,1].
	got := tr.Intersect(Vec3{-1, 0.5, 0.5}, Vec3{1, 0, 0})
	assert.Len(t, got, 4)
	for _, idx := range got {
		assert.Less(t, aabbs[idx].Min.Y, 1.0)
		assert.Less(t, aabbs[idx].Min.Z, 1.0)
	}
}

func TestInvariantSoundnessAndNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var aabbs []AABB
	for i := 0; i < 200; i++ {
		x := rng.Float64() * 20
		y := rng.Float64() * 20
		z := rng.Float64() * 20
		aabbs = append(aabbs, NewAABB(Vec3{x, y, z}, Vec3{x + 1, y + 1, z + 1}))
	}
	tr := Build(boxes(aabbs...))

	for i := 0; i < 50; i++ {
		origin := Vec3{rng.Float64()*40 - 10, rng.Float64()*40 - 10, rng.Float64()*40 - 10}
		dir := Vec3{rng.Float64()*2 - 1, rng.Float64()*2 - 1, rng.Float64()*2 - 1}
		got := tr.Intersect(origin, dir)

		seen := make(map[int]bool)
		for _, idx := range got {
			require.False(t, seen[idx], "duplicate index %d in result", idx)
			seen[idx] = true
			require.True(t, idx >= 0 && idx < len(aabbs), "index %d out of range", idx)
		}
	}
}

func TestInvariantCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var aabbs []AABB
	for i := 0; i < 60; i++ {
		x := rng.Float64() * 10
		y := rng.Float64() * 10
		z := rng.Float64() * 10
		aabbs = append(aabbs, NewAABB(Vec3{x, y, z}, Vec3{x + 1, y + 1, z + 1}))
	}
	tr := Build(boxes(aabbs...))

	origin := Vec3{-5, 5, 5}
	direction := Vec3{1, 0, 0}
	invDir := Vec3{X: 1 / direction.X, Y: 1 / direction.Y, Z: 1 / direction.Z}

	got := tr.Intersect(origin, direction)
	gotSet := make(map[int]bool, len(got))
	for _, idx := range got {
		gotSet[idx] = true
	}

	for i, a := range aabbs {
		if a.IntersectRay(origin, invDir) {
			assert.True(t, gotSet[i], "primitive %d intersects the ray's AABB but is missing from the result", i)
		}
	}
}

func TestInvariantBoundsMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var aabbs []AABB
	for i := 0; i < 150; i++ {
		x := rng.Float64() * 15
		y := rng.Float64() * 15
		z := rng.Float64() * 15
		aabbs = append(aabbs, NewAABB(Vec3{x, y, z}, Vec3{x + rng.Float64(), y + rng.Float64(), z + rng.Float64()}))
	}
	tr := Build(boxes(aabbs...))

	require.NoError(t, tr.Validate())
}

func TestInvariantDeterminism(t *testing.T) {
	aabbs := []AABB{
		NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1}),
		NewAABB(Vec3{2, 0, 0}, Vec3{3, 1, 1}),
		NewAABB(Vec3{4, 0, 0}, Vec3{5, 1, 1}),
		NewAABB(Vec3{1.5, 0, 0}, Vec3{3.5, 1, 1}),
	}

	t1 := Build(boxes(aabbs...))
	t2 := Build(boxes(aabbs...))

	assert.Equal(t, t1.Stats(), t2.Stats())

	for _, ray := range []struct{ o, d Vec3 }{
		{Vec3{-1, 0.5, 0.5}, Vec3{1, 0, 0}},
		{Vec3{6, 0.5, 0.5}, Vec3{-1, 0, 0}},
	} {
		assert.Equal(t, sortedInts(t1.Intersect(ray.o, ray.d)), sortedInts(t2.Intersect(ray.o, ray.d)))
	}
}

func TestInvariantLeafCap(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var aabbs []AABB
	for i := 0; i < 300; i++ {
		x := rng.Float64() * 30
		y := rng.Float64() * 30
		z := rng.Float64() * 30
		aabbs = append(aabbs, NewAABB(Vec3{x, y, z}, Vec3{x + 1, y + 1, z + 1}))
	}
	cfg := DefaultConfig()
	tr := BuildWithConfig(boxes(aabbs...), cfg)

	stats := tr.Stats()
	// MaxLeafSize can legally exceed MinPrimitivesPerLeaf only when forced
	// by MaxDepth or by "no split beats leaf cost"; assert the weaker,
	// still-meaningful bound this random fixture can guarantee: no leaf is
	// wildly larger than the input itself.
	assert.LessOrEqual(t, stats.MaxLeafSize, len(aabbs))
}

// TestIntersectRayOriginOnSplitPlaneTie reproduces a reported completeness
// gap: a ray whose origin sits exactly on the split plane's coordinate while
// outside the node's bounds on another axis at t=0. The near/far tie-break
// must send such a ray into the child it is actually heading toward, not
// the one it's heading away from, or a primitive reachable at a positive t
// is dropped from the result.
func TestIntersectRayOriginOnSplitPlaneTie(t *testing.T) {
	leftBounds := NewAABB(Vec3{-10, 5, -100}, Vec3{0, 15, 100})
	rightBounds := NewAABB(Vec3{0, 5, -100}, Vec3{10, 15, 100})
	rootBounds := NewAABB(Vec3{-10, 5, -100}, Vec3{10, 15, 100})

	left := &node{bounds: leftBounds, isLeaf: true, indices: []int{0}}
	right := &node{bounds: rightBounds, isLeaf: true, indices: nil}
	root := &node{bounds: rootBounds, isLeaf: false, axis: AxisX, splitPos: 0, left: left, right: right}

	tr := &Tree{root: root, bounds: rootBounds, n: 1}

	origin := Vec3{0, 0, 0}
	direction := Vec3{-1, 1, 0}

	got := tr.Intersect(origin, direction)
	require.Equal(t, []int{0}, got, "ray moving toward the left child at an exact split-plane tie must still reach it")
}

func TestBuildWithConfigSafeRejectsNilBounded(t *testing.T) {
	prims := []Bounded{boxPrim{box: NewAABB(Vec3{0, 0, 0}, Vec3{1, 1, 1})}, nil}

	_, err := BuildWithConfigSafe(prims, DefaultConfig())
	require.ErrorIs(t, err, ErrNilBounded)
}

func TestIntersectStatsReportsTraversal(t *testing.T) {
	var aabbs []AABB
	for i := 0; i < 40; i++ {
		aabbs = append(aabbs, NewAABB(Vec3{float64(i) * 2, 0, 0}, Vec3{float64(i)*2 + 1, 1, 1}))
	}
	tr := Build(boxes(aabbs...))

	got, qs := tr.IntersectStats(Vec3{-1, 0.5, 0.5}, Vec3{1, 0, 0})
	assert.NotEmpty(t, got)
	assert.Greater(t, qs.NodesVisited, 0)
	assert.GreaterOrEqual(t, qs.LeavesVisited, 1)
}
