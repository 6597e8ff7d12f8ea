package kdtree

import "errors"

// Sentinel errors. The core algorithm itself surfaces none of these on
// well-defined input — they exist for the construction-time contract check
// in BuildWithConfigSafe and for Tree.Validate's debug pass.
var (
	// ErrNilBounded indicates a primitive in the input slice is a nil
	// Bounded value, which would panic on Bounds().
	ErrNilBounded = errors.New("kdtree: primitive at index is nil")
	// ErrBoundsNotContained indicates Validate found a child whose AABB
	// is not fully contained by its parent's — a builder bug, not a
	// condition a caller can trigger through normal input.
	ErrBoundsNotContained = errors.New("kdtree: child bounds not contained in parent bounds")
	// ErrDuplicateIndexInLeaf indicates Validate found the same primitive
	// index twice in one leaf, which should never happen.
	ErrDuplicateIndexInLeaf = errors.New("kdtree: duplicate primitive index in leaf")
)
