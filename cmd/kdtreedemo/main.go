package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/flomonster/kdtree-ray"
)

const (
	SceneGrid = iota
	SceneRandom
	SceneClustered
	SceneCoincident
)

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	scene := flag.String("scene", "all", "scene to run: grid, random, clustered, coincident, all")
	gridSize := flag.Int("grid", 6, "grid scene: boxes per axis (grid^3 total)")
	randomCount := flag.Int("random", 5000, "random scene: primitive count")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
		fmt.Printf("CPU profiling enabled, writing to %s\n", *cpuprofile)
	}

	fmt.Println("=== kdtree-ray demo ===")
	fmt.Println()

	type namedScene struct {
		name  string
		prims []kdtree.Bounded
	}

	var scenes []namedScene
	switch *scene {
	case "grid":
		scenes = []namedScene{{"grid", GridScene(*gridSize)}}
	case "random":
		scenes = []namedScene{{"random", RandomScene(*randomCount, 100, 1)}}
	case "clustered":
		scenes = []namedScene{{"clustered", ClusteredScene(8, 200, 3, 2)}}
	case "coincident":
		scenes = []namedScene{{"coincident", CoincidentScene(100)}}
	default:
		scenes = []namedScene{
			{"grid", GridScene(*gridSize)},
			{"random", RandomScene(*randomCount, 100, 1)},
			{"clustered", ClusteredScene(8, 200, 3, 2)},
			{"coincident", CoincidentScene(100)},
		}
	}

	var reports []buildReport
	trees := make(map[string]*kdtree.Tree, len(scenes))
	for _, s := range scenes {
		tree, report := runScene(s.name, s.prims)
		reports = append(reports, report)
		trees[s.name] = tree
	}
	printReports(reports)

	fmt.Println()
	fmt.Println("sample traversals:")
	for _, s := range scenes {
		tree := trees[s.name]
		bounds := tree.Bounds()
		origin := kdtree.Vec3{X: bounds.Min.X - 1, Y: (bounds.Min.Y + bounds.Max.Y) / 2, Z: (bounds.Min.Z + bounds.Max.Z) / 2}
		direction := kdtree.Vec3{X: 1, Y: 0, Z: 0}

		hits, qs := tree.IntersectStats(origin, direction)
		fmt.Printf("  [%s] ", s.name)
		printQuery(origin, direction, hits, qs)

		if err := tree.Validate(); err != nil {
			fmt.Printf("  [%s] validation failed: %v\n", s.name, err)
		}
	}
}
