// Package coverage wires the nine components — grid model, sweep
// decomposer, contour extractor and polygon model, cell-order planner, boustrophedon line
// generator, path stitcher, orientation annotator, and footprint
// adapter — into the single synchronous Plan entry point.
package coverage

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/coverage/boustrophedon"
	"go.viam.com/coverage/cellorder"
	"go.viam.com/coverage/contour"
	"go.viam.com/coverage/decompose"
	"go.viam.com/coverage/footprint"
	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/logging"
	"go.viam.com/coverage/oracle"
	"go.viam.com/coverage/orientation"
	"go.viam.com/coverage/stitch"
)

// Config carries every input the planner needs for one Plan call, as a
// single struct rather than a long positional argument list.
type Config struct {
	RoomMap          *gridmap.Grid
	MapResolution    float64
	StartingPosition gridmap.Point
	MapOrigin        r2.Point
	FittingRadius    float64
	PathEps          int
	PlanForFootprint bool
	RobotToFOVVec    r2.Point

	// ShortestPath and Tsp are the external oracles. If nil, the
	// lvlath-backed production oracles are used.
	ShortestPath oracle.ShortestPath
	Tsp          oracle.Tsp

	// Logger receives best-effort diagnostics; a blank logger is used if
	// nil.
	Logger logging.Logger
}

// Validate checks the preconditions that are rejected up front rather
// than surfaced as a runtime error: a non-nil room map, a positive map
// resolution, a positive fitting radius, and path_eps >= 1. A map with no
// free cell passes Validate; Plan checks for that separately.
func (cfg *Config) Validate(path string) error {
	if cfg.RoomMap == nil {
		return utils.NewConfigValidationFieldRequiredError(path, "room_map")
	}
	if cfg.MapResolution <= 0 {
		return fmt.Errorf("%s: map_resolution must be positive", path)
	}
	if cfg.FittingRadius <= 0 {
		return fmt.Errorf("%s: fitting_radius must be positive", path)
	}
	if cfg.PathEps < 1 {
		return fmt.Errorf("%s: path_eps must be >= 1", path)
	}
	return nil
}

// ErrEmptyPlan is never returned by Plan; it documents the best-effort,
// possibly-empty-path contract: an invalid or degenerate input yields
// (nil, nil), not an error.
var ErrEmptyPlan = errors.New("coverage: plan produced no waypoints")

// Plan runs the full decomposition-through-footprint pipeline and
// returns world-frame poses. Invalid input or a grid with no free space
// yields (nil, nil): an empty path is a valid, non-error outcome.
func Plan(cfg Config) ([]footprint.WorldPose, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewBlankLogger("coverage")
	}

	if err := cfg.Validate("config"); err != nil {
		logger.Warnw("rejecting invalid plan config", "err", err)
		return nil, nil
	}
	if cfg.RoomMap.Empty() {
		logger.Infow("grid has no free space, returning empty plan")
		return nil, nil
	}

	sp := cfg.ShortestPath
	if sp == nil {
		sp = oracle.NewShortestPath()
	}
	tsp := cfg.Tsp
	if tsp == nil {
		tsp = oracle.NewTsp()
	}

	// fitting_radius arrives in meters per the external interface; the
	// boustrophedon/stitch layers work in grid cells, so it's floored to
	// an integer cell radius once, here, at the component boundary.
	radius := int(cfg.FittingRadius / cfg.MapResolution)
	if radius < 1 {
		radius = 1
	}

	decomposed := decompose.Decompose(cfg.RoomMap)
	polygons := contour.Extract(decomposed)
	if len(polygons) == 0 {
		return nil, nil
	}

	order := cellorder.Order(polygons, cfg.StartingPosition, cfg.MapResolution, tsp, logger)

	var waypoints []gridmap.Point
	var warnings []error
	current := cfg.StartingPosition

	for _, cellIdx := range order {
		poly := polygons[cellIdx]
		lines := boustrophedon.Lines(cfg.RoomMap, poly.BoundingBox(), radius)
		if len(lines) == 0 {
			warnings = append(warnings, fmt.Errorf("cell %d: no boustrophedon lines", cellIdx))
			continue
		}

		cellPath, next := stitch.Cell(cfg.RoomMap, lines, current, cfg.PathEps, sp, logger)
		waypoints = append(waypoints, cellPath...)
		current = next
	}

	if len(warnings) > 0 {
		logger.Warnw("some cells produced no coverage path", "err", multierr.Combine(warnings...))
	}

	if len(waypoints) == 0 {
		return nil, nil
	}

	poses := orientation.Annotate(waypoints)
	worldPoses := footprint.Map(poses, footprint.Config{
		Resolution:       cfg.MapResolution,
		Origin:           cfg.MapOrigin,
		PlanForFootprint: cfg.PlanForFootprint,
		RobotToFOVVec:    cfg.RobotToFOVVec,
	}, cfg.RoomMap)

	return worldPoses, nil
}
