package main

import "fmt"

// ansiColor is a minimal RGB-to-ANSI-escape helper, adapted from the
// renderer's Color.ToANSI/ColorReset for this command's table highlighting —
// foreground-only, no blending or lerp, since a report table has no need for
// the renderer's color math.
type ansiColor struct {
	r, g, b uint8
}

var (
	ansiGreen  = ansiColor{80, 220, 100}
	ansiYellow = ansiColor{230, 200, 60}
	ansiRed    = ansiColor{230, 80, 80}
)

func (c ansiColor) wrap(s string) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", c.r, c.g, c.b, s)
}

// depthColor flags a tree's max depth (maxDepth) against the depth ceiling: green well under the
// ceiling, yellow near it, red at or past it (a forced-depth cutoff usually
// means the SAH termination test never got a chance to fire).
func depthColor(maxDepth, ceiling int) ansiColor {
	switch {
	case maxDepth >= ceiling:
		return ansiRed
	case float64(maxDepth) >= 0.8*float64(ceiling):
		return ansiYellow
	default:
		return ansiGreen
	}
}
