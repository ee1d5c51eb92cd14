// Package contour extracts one simple polygon per maximal free region of a
// decomposed grid. There is no OpenCV-style contour finder in reach here,
// so this package builds its own: flood-fill connected-component labeling
// followed by Moore-neighbor boundary tracing, adapted from the raster
// contour tracer pattern used for labeled-component boundaries.
package contour

import (
	"math"

	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/internal/mathutil"
)

// BoundingBox is the axis-aligned box enclosing a polygon's vertices.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY int
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY }

// Polygon is a simple closed boundary around one Morse cell, plus its
// cached centroid and bounding box.
type Polygon struct {
	Points   []gridmap.Point
	centroid gridmap.Point
	bbox     BoundingBox
}

func newPolygon(points []gridmap.Point) Polygon {
	p := Polygon{Points: points}
	p.bbox = computeBoundingBox(points)
	p.centroid = computeCentroid(points)
	return p
}

// Centroid returns the arithmetic mean of the polygon's vertices, rounded
// to the nearest grid cell.
func (p Polygon) Centroid() gridmap.Point { return p.centroid }

// BoundingBox returns the cached min/max of the polygon's vertices.
func (p Polygon) BoundingBox() BoundingBox { return p.bbox }

// Contains reports whether pt lies within the polygon, via ray casting.
func (p Polygon) Contains(pt gridmap.Point) bool {
	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := float64(b.X-a.X)*float64(pt.Y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
			if float64(pt.X) < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func computeBoundingBox(points []gridmap.Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	box := BoundingBox{MinX: points[0].X, MaxX: points[0].X, MinY: points[0].Y, MaxY: points[0].Y}
	for _, p := range points[1:] {
		box.MinX = mathutil.MinInt(box.MinX, p.X)
		box.MaxX = mathutil.MaxInt(box.MaxX, p.X)
		box.MinY = mathutil.MinInt(box.MinY, p.Y)
		box.MaxY = mathutil.MaxInt(box.MaxY, p.Y)
	}
	return box
}

func computeCentroid(points []gridmap.Point) gridmap.Point {
	if len(points) == 0 {
		return gridmap.Point{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}
	n := float64(len(points))
	return gridmap.Point{
		X: int(math.Round(sumX / n)),
		Y: int(math.Round(sumY / n)),
	}
}

// Extract returns one Polygon per maximal connected free region of g.
func Extract(g *gridmap.Grid) []Polygon {
	labels, numLabels := labelComponents(g)
	polygons := make([]Polygon, 0, numLabels)
	for label := 1; label <= numLabels; label++ {
		points := traceContourMoore(labels, g.Width, g.Height, label)
		if len(points) < 3 {
			continue
		}
		polygons = append(polygons, newPolygon(points))
	}
	return polygons
}

// labelComponents flood-fills 4-connected free regions, returning a
// row-major label slice (0 = obstacle) and the number of labels used.
func labelComponents(g *gridmap.Grid) ([]int, int) {
	labels := make([]int, g.Width*g.Height)
	label := 0
	var stack []gridmap.Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := y*g.Width + x
			if g.AtXY(x, y) != gridmap.Free || labels[idx] != 0 {
				continue
			}
			label++
			stack = append(stack[:0], gridmap.Point{X: x, Y: y})
			labels[idx] = label
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range [4]gridmap.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
					np := p.Add(d)
					if !g.InBounds(np) {
						continue
					}
					nIdx := np.Y*g.Width + np.X
					if g.At(np) == gridmap.Free && labels[nIdx] == 0 {
						labels[nIdx] = label
						stack = append(stack, np)
					}
				}
			}
		}
	}
	return labels, label
}

// traceContourMoore walks the boundary of the connected component marked
// label using 8-neighborhood Moore-neighbor tracing.
func traceContourMoore(labels []int, w, h, label int) []gridmap.Point {
	sx, sy, ok := findStartingBoundaryPixel(labels, w, h, label)
	if !ok {
		return nil
	}

	pts := make([]gridmap.Point, 0, 64)
	addPoint := func(x, y int) {
		pts = append(pts, gridmap.Point{X: x, Y: y})
	}
	addPoint(sx, sy)

	cx, cy := sx, sy
	bx, by := sx-1, sy
	startCx, startCy, startBx, startBy := cx, cy, bx, by

	maxSteps := w*h*4 + 8
	for steps := 0; steps < maxSteps; steps++ {
		nx, ny, nbx, nby, found := findNextBoundaryPixel(labels, w, h, label, cx, cy, bx, by)
		if !found {
			break
		}
		bx, by = nbx, nby
		cx, cy = nx, ny

		if last := pts[len(pts)-1]; last.X != cx || last.Y != cy {
			addPoint(cx, cy)
		}
		if cx == startCx && cy == startCy && bx == startBx && by == startBy {
			break
		}
	}

	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func findStartingBoundaryPixel(labels []int, w, h, label int) (int, int, bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isBoundaryPixel(labels, w, h, label, x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func isLabelPixel(labels []int, w, h, label, x, y int) bool {
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return labels[y*w+x] == label
}

func isBoundaryPixel(labels []int, w, h, label, x, y int) bool {
	if !isLabelPixel(labels, w, h, label, x, y) {
		return false
	}
	return !isLabelPixel(labels, w, h, label, x+1, y) ||
		!isLabelPixel(labels, w, h, label, x-1, y) ||
		!isLabelPixel(labels, w, h, label, x, y+1) ||
		!isLabelPixel(labels, w, h, label, x, y-1)
}

// 8-neighborhood clockwise order: E, SE, S, SW, W, NW, N, NE.
var neighborDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
var neighborDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}

func neighborDirIndex(dx, dy int) int {
	for i := 0; i < 8; i++ {
		if neighborDX[i] == dx && neighborDY[i] == dy {
			return i
		}
	}
	return 0
}

func findNextBoundaryPixel(labels []int, w, h, label, cx, cy, bx, by int) (nx, ny, nbx, nby int, found bool) {
	isLabel := func(x, y int) bool { return isLabelPixel(labels, w, h, label, x, y) }

	start := (neighborDirIndex(bx-cx, by-cy) + 1) % 8
	for k := 0; k < 8; k++ {
		i := (start + k) % 8
		tx, ty := cx+neighborDX[i], cy+neighborDY[i]
		if isLabel(tx, ty) {
			return tx, ty, bx, by, true
		}
		bx, by = tx, ty
	}
	return 0, 0, bx, by, false
}
