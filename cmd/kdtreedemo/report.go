package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/flomonster/kdtree-ray"
	"github.com/flomonster/kdtree-ray/internal/kdstat"
)

// buildReport is one scene's timed build plus its resulting shape, grounded
// on benchmark.go's BenchmarkResult: a flat struct of timings and counts
// printed in a table rather than logged line by line.
type buildReport struct {
	name        string
	primitives  int
	buildTime   time.Duration
	bounds      kdtree.AABB
	internal    int
	leaves      int
	maxDepth    int
	maxLeafSize int
	totalRefs   int
	ceiling     int
}

func runScene(name string, prims []kdtree.Bounded) (*kdtree.Tree, buildReport) {
	cfg := kdtree.DefaultConfig()
	start := time.Now()
	tree := kdtree.BuildWithConfig(prims, cfg)
	elapsed := time.Since(start)

	stats := tree.Stats()
	report := buildReport{
		name:        name,
		primitives:  len(prims),
		buildTime:   elapsed,
		bounds:      tree.Bounds(),
		internal:    stats.InternalNodes,
		leaves:      stats.Leaves,
		maxDepth:    stats.MaxDepthReached,
		maxLeafSize: stats.MaxLeafSize,
		totalRefs:   stats.TotalPrimitiveRefs,
		ceiling:     cfg.ResolvedMaxDepth(len(prims)),
	}
	return tree, report
}

func printReports(reports []buildReport) {
	fmt.Println(strings.Repeat("-", 88))
	fmt.Printf("%-18s %8s %10s %8s %8s %9s %10s %9s\n",
		"scene", "prims", "build", "nodes", "leaves", "maxdepth", "maxleaf", "refs")
	fmt.Println(strings.Repeat("-", 88))
	for _, r := range reports {
		depth := depthColor(r.maxDepth, r.ceiling).wrap(fmt.Sprintf("%d/%d", r.maxDepth, r.ceiling))
		fmt.Printf("%-18s %8d %10s %8d %8d %18s %10d %9d\n",
			r.name, r.primitives, r.buildTime.Round(time.Microsecond),
			r.internal+r.leaves, r.leaves, depth, r.maxLeafSize, r.totalRefs)
	}
	fmt.Println(strings.Repeat("-", 88))
}

func printQuery(origin, direction kdtree.Vec3, hits []int, qs kdstat.QueryStats) {
	fmt.Printf("ray O=%+v D=%+v -> %d hit(s), visited %d node(s) (%d leaves)\n",
		origin, direction, len(hits), qs.NodesVisited, qs.LeavesVisited)
}
