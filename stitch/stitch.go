// Package stitch turns one cell's ordered sweep lines into a single
// ordered waypoint sequence: it picks a starting corner based on
// distance from the robot's current position, walks each line emitting
// path_eps-spaced points, and bridges between lines through free space
// via the shortest-path oracle.
package stitch

import (
	"math"

	"go.viam.com/coverage/boustrophedon"
	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/logging"
	"go.viam.com/coverage/oracle"
)

// Cell stitches lines into a waypoint path starting near from, and
// returns that path along with the position the next cell should treat
// as its entry point. logger may be nil, in which case a blank logger is
// used.
func Cell(
	g *gridmap.Grid,
	lines []boustrophedon.Line,
	from gridmap.Point,
	pathEps int,
	sp oracle.ShortestPath,
	logger logging.Logger,
) ([]gridmap.Point, gridmap.Point) {
	if len(lines) == 0 {
		return nil, from
	}
	if pathEps < 1 {
		pathEps = 1
	}
	if logger == nil {
		logger = logging.NewBlankLogger("stitch")
	}

	startAtLast, leftToRight := chooseEntry(g, lines, from, sp, logger)

	order := make([]int, len(lines))
	if startAtLast {
		for i := range order {
			order[i] = len(lines) - 1 - i
		}
	} else {
		for i := range order {
			order[i] = i
		}
	}

	var path []gridmap.Point
	current := from
	direction := leftToRight

	for i, lineIdx := range order {
		line := lines[lineIdx]
		entry, exit := line.Left, line.Right
		if !direction {
			entry, exit = line.Right, line.Left
		}

		if i != 0 {
			trace, err := sp.Trace(g, current, entry)
			if err != nil {
				logger.Warnw("shortest-path oracle failed, skipping intermediate waypoints between lines", "err", err, "from", current, "to", entry)
			} else {
				for _, pt := range trace {
					if euclidean(pt, current) >= float64(pathEps) {
						path = append(path, pt)
						current = pt
					}
				}
			}
		}

		path = append(path, entry)
		current = entry

		path = append(path, walkLine(entry, exit, pathEps)...)
		if len(path) == 0 || path[len(path)-1] != exit {
			path = append(path, exit)
		}
		current = exit
		direction = !direction
	}

	return path, current
}

// chooseEntry queries the oracle for distance from `from` to each of the
// four candidate entry corners (first and last line, both ends) and
// picks the minimum. The winning corner determines whether lines are
// traversed first-to-last or last-to-first, and whether the first line
// is walked left-to-right or right-to-left.
func chooseEntry(g *gridmap.Grid, lines []boustrophedon.Line, from gridmap.Point, sp oracle.ShortestPath, logger logging.Logger) (startAtLast, leftToRight bool) {
	first, last := lines[0], lines[len(lines)-1]
	type candidate struct {
		point       gridmap.Point
		startAtLast bool
		leftToRight bool
	}
	candidates := []candidate{
		{first.Left, false, true},
		{first.Right, false, false},
		{last.Left, true, true},
		{last.Right, true, false},
	}

	bestDist := math.Inf(1)
	best := candidates[0]
	for _, c := range candidates {
		d, err := sp.Distance(g, from, c.point)
		if err != nil {
			logger.Warnw("shortest-path oracle failed evaluating entry candidate", "err", err, "from", from, "candidate", c.point)
			continue
		}
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best.startAtLast, best.leftToRight
}

// walkLine emits points spaced pathEps apart from entry to exit along a
// shared-y horizontal line, excluding both endpoints (the caller emits
// entry before calling this and exit after).
func walkLine(entry, exit gridmap.Point, pathEps int) []gridmap.Point {
	dx := exit.X - entry.X
	step := pathEps
	if dx < 0 {
		step = -pathEps
	}
	var points []gridmap.Point
	if step == 0 {
		return points
	}
	for x := entry.X + step; (step > 0 && x < exit.X) || (step < 0 && x > exit.X); x += step {
		points = append(points, gridmap.Point{X: x, Y: entry.Y})
	}
	return points
}

func euclidean(a, b gridmap.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
