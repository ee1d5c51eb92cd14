// Package cellorder chooses the order in which Morse cells are visited:
// anchored at the cell containing the robot's starting point, the
// remaining cells are ordered by a TSP oracle over their centroids.
package cellorder

import (
	"github.com/samber/lo"

	"go.viam.com/coverage/contour"
	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/logging"
	"go.viam.com/coverage/oracle"
)

// Order returns a permutation of [0, len(polys)) beginning with the cell
// containing start (by point-in-polygon test; index 0 if none contains
// it) and visiting the rest in the order the TSP oracle returns. logger
// may be nil, in which case a blank logger is used.
func Order(polys []contour.Polygon, start gridmap.Point, resolution float64, tsp oracle.Tsp, logger logging.Logger) []int {
	if len(polys) == 0 {
		return nil
	}
	if logger == nil {
		logger = logging.NewBlankLogger("cellorder")
	}

	startIndex := 0
	for i, poly := range polys {
		if poly.Contains(start) {
			startIndex = i
			break
		}
	}

	centroids := lo.Map(polys, func(poly contour.Polygon, _ int) gridmap.Point {
		return poly.Centroid()
	})

	order, err := tsp.Solve(centroids, resolution, startIndex)
	if err != nil || len(order) != len(polys) {
		// The oracle failed or returned something we can't trust whole;
		// fall back to a simple rotation anchored at startIndex so the
		// plan still covers every cell, just without an optimized tour.
		logger.Warnw("tsp oracle failed, falling back to start-anchored rotation", "err", err, "cells", len(polys))
		order = make([]int, len(polys))
		for i := range order {
			order[i] = (startIndex + i) % len(polys)
		}
	}
	return order
}
