// Package decompose implements the sweep-line Morse decomposition: a
// top-to-bottom scan over the grid that detects connectivity changes
// between consecutive rows and paints obstacle walls into a working copy
// of the map so that every maximal free region becomes exactly one cell.
package decompose

import "go.viam.com/coverage/gridmap"

// Decompose returns a new grid, the same shape as g, with extra obstacle
// cells painted in to separate every maximal free region into one Morse
// cell. g is never mutated. If g has no free cell at all, the returned
// grid is a plain clone of g.
func Decompose(g *gridmap.Grid) *gridmap.Grid {
	out := g.Clone()

	yStart, ok := firstFreeRow(g)
	if !ok {
		return out
	}

	previousCount := countSegments(g, yStart)
	for y := yStart + 1; y < g.Height; y++ {
		count := countSegments(g, y)
		switch {
		case count > previousCount:
			paintIn(out, g, y)
		case count < previousCount:
			paintOut(out, g, y)
		}
		previousCount = count
	}

	return out
}

// firstFreeRow returns the smallest y for which row y contains a free
// cell.
func firstFreeRow(g *gridmap.Grid) (int, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.AtXY(x, y) == gridmap.Free {
				return y, true
			}
		}
	}
	return 0, false
}

// countSegments counts FREE->OBSTACLE transitions in row y after the
// sweep has gone "active" (seen its first free cell in that row). This
// is the number of maximal obstacle runs that follow a free cell in the
// row, including a run that ends the row inside the grid; runs reaching
// past the grid edge are not counted. Decompose only compares this count
// between consecutive rows.
func countSegments(g *gridmap.Grid, y int) int {
	active := false
	segments := 0
	for x := 0; x < g.Width; x++ {
		state := g.AtXY(x, y)
		if !active {
			if state == gridmap.Free {
				active = true
			}
			continue
		}
		if state == gridmap.Obstacle && g.AtXY(x-1, y) == gridmap.Free {
			segments++
		}
	}
	return segments
}

// paintIn handles an IN event: row y gained a segment, so the critical
// point lies on row y itself. For every obstacle cell in row y preceded
// within the row by a free cell, check the row above: if all three
// cells at (y-1, x-1), (y-1, x), (y-1, x+1) are free, x is a critical
// point, and a wall is painted leftward and rightward on row y from it.
func paintIn(out, g *gridmap.Grid, y int) {
	seenFree := false
	for x := 0; x < g.Width; x++ {
		state := g.AtXY(x, y)
		if state == gridmap.Free {
			seenFree = true
			continue
		}
		if !seenFree {
			continue
		}
		if isCriticalStencil(g, x, y-1) {
			paintWall(out, x, y)
		}
	}
}

// paintOut handles an OUT event: row y lost a segment, so the critical
// point lies on row y-1. For every obstacle cell in row y-1 preceded
// within the row by a free cell, check row y: if (y, x-1), (y, x),
// (y, x+1) are all free, x is a critical point, and a wall is painted
// leftward and rightward on row y-1 from it.
//
// This mirrors paintIn but checks row y instead of row y-2, which is the
// asymmetric stencil the original sweep carries: IN events look one row
// up from the critical point, OUT events look one row down. The
// asymmetry is preserved rather than normalized away.
func paintOut(out, g *gridmap.Grid, y int) {
	row := y - 1
	seenFree := false
	for x := 0; x < g.Width; x++ {
		state := g.AtXY(x, row)
		if state == gridmap.Free {
			seenFree = true
			continue
		}
		if !seenFree {
			continue
		}
		if isCriticalStencil(g, x, y) {
			paintWall(out, x, row)
		}
	}
}

// isCriticalStencil tests the 1x3 neighborhood at (x-1, y), (x, y),
// (x+1, y) against the source grid. Diagonal obstacles touching only a
// corner do not disqualify the stencil, since only these three cells are
// examined.
func isCriticalStencil(g *gridmap.Grid, x, y int) bool {
	return g.AtXY(x-1, y) == gridmap.Free &&
		g.AtXY(x, y) == gridmap.Free &&
		g.AtXY(x+1, y) == gridmap.Free
}

// paintWall paints obstacle cells leftward and rightward from (x, y) in
// out, halting at the first already-obstacle cell in each direction
// (exclusive). This keeps two critical points sharing a row from double
// painting: the second one's walk simply stops where the first one's
// wall already sits.
func paintWall(out *gridmap.Grid, x, y int) {
	out.Set(gridmap.Point{X: x, Y: y}, gridmap.Obstacle)
	for left := x - 1; left >= 0 && out.AtXY(left, y) == gridmap.Free; left-- {
		out.Set(gridmap.Point{X: left, Y: y}, gridmap.Obstacle)
	}
	for right := x + 1; right < out.Width && out.AtXY(right, y) == gridmap.Free; right++ {
		out.Set(gridmap.Point{X: right, Y: y}, gridmap.Obstacle)
	}
}
