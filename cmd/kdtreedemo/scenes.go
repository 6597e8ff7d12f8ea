package main

import (
	"math/rand"

	"github.com/flomonster/kdtree-ray"
)

// demoBox is the command's own Bounded: a plain AABB with nothing else
// attached, sufficient to exercise Build/Intersect end-to-end.
type demoBox struct {
	box kdtree.AABB
}

func (b demoBox) Bounds() kdtree.AABB { return b.box }

func boxesFrom(aabbs []kdtree.AABB) []kdtree.Bounded {
	out := make([]kdtree.Bounded, len(aabbs))
	for i, a := range aabbs {
		out[i] = demoBox{box: a}
	}
	return out
}

// GridScene builds an n x n x n grid of unit cubes spaced two units apart
// on every axis, the idiomatic worst-case-for-median-split, best-case-for-SAH
// layout: uniform density with large empty gaps the builder should carve out.
func GridScene(n int) []kdtree.Bounded {
	var aabbs []kdtree.AABB
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				min := kdtree.Vec3{X: float64(x) * 2, Y: float64(y) * 2, Z: float64(z) * 2}
				max := kdtree.Vec3{X: min.X + 1, Y: min.Y + 1, Z: min.Z + 1}
				aabbs = append(aabbs, kdtree.NewAABB(min, max))
			}
		}
	}
	return boxesFrom(aabbs)
}

// RandomScene scatters count unit-ish boxes uniformly inside a cube of the
// given extent, seeded for reproducible demo runs.
func RandomScene(count int, extent float64, seed int64) []kdtree.Bounded {
	rng := rand.New(rand.NewSource(seed))
	aabbs := make([]kdtree.AABB, count)
	for i := range aabbs {
		min := kdtree.Vec3{
			X: rng.Float64() * extent,
			Y: rng.Float64() * extent,
			Z: rng.Float64() * extent,
		}
		size := 0.2 + rng.Float64()*0.8
		max := kdtree.Vec3{X: min.X + size, Y: min.Y + size, Z: min.Z + size}
		aabbs[i] = kdtree.NewAABB(min, max)
	}
	return boxesFrom(aabbs)
}

// ClusteredScene packs most boxes into a handful of dense clusters with
// large empty space between them, a layout where a good SAH split pays off
// far more than it does for RandomScene's uniform spread.
func ClusteredScene(clusters, perCluster int, spread float64, seed int64) []kdtree.Bounded {
	rng := rand.New(rand.NewSource(seed))
	var aabbs []kdtree.AABB
	for c := 0; c < clusters; c++ {
		center := kdtree.Vec3{
			X: rng.Float64() * spread * float64(clusters),
			Y: rng.Float64() * spread * float64(clusters),
			Z: rng.Float64() * spread * float64(clusters),
		}
		for i := 0; i < perCluster; i++ {
			min := kdtree.Vec3{
				X: center.X + rng.Float64()*spread,
				Y: center.Y + rng.Float64()*spread,
				Z: center.Z + rng.Float64()*spread,
			}
			max := kdtree.Vec3{X: min.X + 0.5, Y: min.Y + 0.5, Z: min.Z + 0.5}
			aabbs = append(aabbs, kdtree.NewAABB(min, max))
		}
	}
	return boxesFrom(aabbs)
}

// CoincidentScene returns count copies of the same unit box, the degenerate
// S5 scenario: no split ever beats the leaf cost.
func CoincidentScene(count int) []kdtree.Bounded {
	box := kdtree.NewAABB(kdtree.Vec3{X: 0, Y: 0, Z: 0}, kdtree.Vec3{X: 1, Y: 1, Z: 1})
	aabbs := make([]kdtree.AABB, count)
	for i := range aabbs {
		aabbs[i] = box
	}
	return boxesFrom(aabbs)
}
