// Package kdtree builds a static k-d tree over a fixed set of bounded
// primitives and answers ray queries with a pruned, deduplicated candidate
// set of primitive indices for the caller to intersect exactly.
//
// What:
//
//   - Build constructs a tree from anything implementing Bounded, using the
//     Surface Area Heuristic (SAH) with exact swept-plane cost evaluation.
//   - Tree.Intersect walks the tree along a ray in front-to-back order and
//     returns the indices of primitives whose leaves the ray reaches.
//   - The tree is immutable once built and safe for concurrent readers.
//
// Why:
//
//   - Ray tracers need to cut candidate primitives from O(N) to a small
//     spatially-local subset before paying for exact intersection tests.
//
// Complexity:
//
//	Build:     O(N log N) per level via sorted split-plane events, see builder.go.
//	Intersect: O(log N + k) where k is the number of primitives in visited leaves.
//
// Non-goals: dynamic insertion/deletion, refitting, exact intersection,
// nearest-neighbor or range queries, unbounded primitives.
package kdtree
