// Command covplan is the sole filesystem-touching boundary of the
// coverage planner: it loads an occupancy map image, runs the planner
// core, and prints the resulting world-frame poses.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/golang/geo/r2"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"

	"go.viam.com/coverage/coverage"
	"go.viam.com/coverage/footprint"
	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/logging"
)

func main() {
	app := &cli.App{
		Name:  "covplan",
		Usage: "generate a boustrophedon coverage path over an occupancy map",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "map", Required: true, Usage: "path to an occupancy map image (free=white, obstacle=black)"},
			&cli.Float64Flag{Name: "resolution", Value: 0.05, Usage: "meters per cell"},
			&cli.IntFlag{Name: "start-x", Value: 0},
			&cli.IntFlag{Name: "start-y", Value: 0},
			&cli.Float64Flag{Name: "origin-x", Value: 0},
			&cli.Float64Flag{Name: "origin-y", Value: 0},
			&cli.Float64Flag{Name: "radius", Value: 2, Usage: "fitting circle radius, in meters"},
			&cli.IntFlag{Name: "path-eps", Value: 2, Usage: "target waypoint spacing, in cells"},
			&cli.BoolFlag{Name: "footprint", Usage: "treat the path as robot body poses instead of FOV poses"},
			&cli.Float64Flag{Name: "fov-x", Value: 0, Usage: "robot->FOV offset x, in meters"},
			&cli.Float64Flag{Name: "fov-y", Value: 0, Usage: "robot->FOV offset y, in meters"},
			&cli.StringFlag{Name: "out", Usage: "write poses as JSON to this path instead of stdout"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := logging.NewLogger("covplan")

	grid, err := loadMap(c.String("map"))
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}

	cfg := coverage.Config{
		RoomMap:          grid,
		MapResolution:    c.Float64("resolution"),
		StartingPosition: gridmap.Point{X: c.Int("start-x"), Y: c.Int("start-y")},
		MapOrigin:        r2.Point{X: c.Float64("origin-x"), Y: c.Float64("origin-y")},
		FittingRadius:    c.Float64("radius"),
		PathEps:          c.Int("path-eps"),
		PlanForFootprint: c.Bool("footprint"),
		RobotToFOVVec:    r2.Point{X: c.Float64("fov-x"), Y: c.Float64("fov-y")},
		Logger:           logger,
	}

	poses, err := coverage.Plan(cfg)
	if err != nil {
		return err
	}
	logger.Infow("planned coverage path", "waypoints", len(poses))

	return writePoses(poses, c.String("out"))
}

// loadMap decodes an image and thresholds it into a Grid: pixels at or
// above mid-gray are Free, the rest Obstacle, matching the
// OBSTACLE=0/FREE=255 convention the planner's boundary tests assume.
func loadMap(path string) (*gridmap.Grid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	grid := gridmap.New(width, height, gridmap.Obstacle)

	gray := imaging.Grayscale(img)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.GrayModel.Convert(gray.At(x, y)).(color.Gray)
			if c.Y >= 128 {
				grid.Set(gridmap.Point{X: x, Y: y}, gridmap.Free)
			}
		}
	}
	return grid, nil
}

// wirePose is the JSON wire shape for one pose; kept distinct from
// footprint.WorldPose so the output format doesn't depend on r2.Point's
// own marshaling.
type wirePose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

func writePoses(poses []footprint.WorldPose, out string) error {
	wire := make([]wirePose, len(poses))
	for i, p := range poses {
		wire[i] = wirePose{X: p.Point.X, Y: p.Point.Y, Theta: p.Theta}
	}

	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(out, data, 0o644)
}
