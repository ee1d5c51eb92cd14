// Package boustrophedon computes, for one cell, the parallel horizontal
// sweep lines ("ox-plowing" passes) that cover it, spaced by the fitting
// circle's radius and inset from the cell walls by the same radius.
package boustrophedon

import (
	"go.viam.com/coverage/contour"
	"go.viam.com/coverage/gridmap"
)

// Line is one horizontal sweep pass, from Left to Right at a shared y.
type Line struct {
	Left, Right gridmap.Point
}

// Lines returns the ordered list of sweep lines covering the cell whose
// bounding box is box, at spacing radius, scanning the original grid g
// (not a decomposed copy: the painted cell walls are synthetic
// separators, not real obstacles, so endpoint scanning must see past
// them) for free-space endpoints.
func Lines(g *gridmap.Grid, box contour.BoundingBox, radius int) []Line {
	if radius <= 0 {
		return nil
	}

	var ys []int
	height := box.MaxY - box.MinY
	if height <= 2*radius {
		ys = append(ys, box.MinY+height/2)
	} else {
		for y := (box.MinY - 1) + radius; y <= box.MaxY; y += radius {
			ys = append(ys, y)
		}
	}

	lines := make([]Line, 0, len(ys))
	for _, y := range ys {
		line, ok := lineAt(g, box, y, radius)
		if ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func lineAt(g *gridmap.Grid, box contour.BoundingBox, y, radius int) (Line, bool) {
	leftX, ok := scanRight(g, box.MinX, box.MaxX, y)
	if !ok {
		return Line{}, false
	}
	rightX, ok := scanLeft(g, box.MinX, box.MaxX, y)
	if !ok {
		return Line{}, false
	}

	leftX += radius
	rightX -= radius
	if leftX > rightX {
		return Line{}, false
	}

	return Line{
		Left:  gridmap.Point{X: leftX, Y: y},
		Right: gridmap.Point{X: rightX, Y: y},
	}, true
}

func scanRight(g *gridmap.Grid, minX, maxX, y int) (int, bool) {
	for x := minX; x <= maxX; x++ {
		if g.IsFree(gridmap.Point{X: x, Y: y}) {
			return x, true
		}
	}
	return 0, false
}

func scanLeft(g *gridmap.Grid, minX, maxX, y int) (int, bool) {
	for x := maxX; x >= minX; x-- {
		if g.IsFree(gridmap.Point{X: x, Y: y}) {
			return x, true
		}
	}
	return 0, false
}
