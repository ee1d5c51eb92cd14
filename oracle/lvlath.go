package oracle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/tsp"

	"go.viam.com/coverage/gridmap"
)

// lvlathShortestPath is the production ShortestPath oracle. It builds a
// fresh 4-connected graph over the grid's free cells on every call and
// runs Dijkstra over it; there is no cross-call cached state.
type lvlathShortestPath struct{}

// NewShortestPath returns a ShortestPath oracle backed by
// github.com/katalvlaran/lvlath/dijkstra.
func NewShortestPath() ShortestPath {
	return lvlathShortestPath{}
}

func vertexID(p gridmap.Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// buildFreeGraph turns g's free cells into a 4-connected weighted graph,
// one vertex per free cell, unit-weight edges between orthogonal
// neighbors. Cells not reachable from any edge are simply isolated
// vertices.
func buildFreeGraph(g *gridmap.Grid) *core.Graph {
	graph := core.NewGraph(core.WithWeighted())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gridmap.Point{X: x, Y: y}
			if !g.IsFree(p) {
				continue
			}
			_ = graph.AddVertex(vertexID(p))
			left := gridmap.Point{X: x - 1, Y: y}
			up := gridmap.Point{X: x, Y: y - 1}
			if g.IsFree(left) {
				_, _ = graph.AddEdge(vertexID(p), vertexID(left), 1)
			}
			if g.IsFree(up) {
				_, _ = graph.AddEdge(vertexID(p), vertexID(up), 1)
			}
		}
	}
	return graph
}

func (lvlathShortestPath) run(g *gridmap.Grid, a, b gridmap.Point) (map[string]int64, map[string]string, error) {
	if !g.IsFree(a) || !g.IsFree(b) {
		return nil, nil, ErrNoPath
	}
	graph := buildFreeGraph(g)
	dist, prev, err := dijkstra.Dijkstra(graph, dijkstra.Source(vertexID(a)), dijkstra.WithReturnPath())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoPath, err)
	}
	if _, ok := dist[vertexID(b)]; !ok {
		return nil, nil, ErrNoPath
	}
	return dist, prev, nil
}

func (o lvlathShortestPath) Distance(g *gridmap.Grid, a, b gridmap.Point) (float64, error) {
	dist, _, err := o.run(g, a, b)
	if err != nil {
		return 0, err
	}
	return float64(dist[vertexID(b)]), nil
}

func (o lvlathShortestPath) Trace(g *gridmap.Grid, a, b gridmap.Point) ([]gridmap.Point, error) {
	_, prev, err := o.run(g, a, b)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]gridmap.Point, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gridmap.Point{X: x, Y: y}
			byID[vertexID(p)] = p
		}
	}

	var reversed []gridmap.Point
	cur := vertexID(b)
	start := vertexID(a)
	for {
		reversed = append(reversed, byID[cur])
		if cur == start {
			break
		}
		parent, ok := prev[cur]
		if !ok || parent == "" {
			return nil, ErrNoPath
		}
		cur = parent
	}

	path := make([]gridmap.Point, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path, nil
}

// lvlathTsp is the production Tsp oracle. It solves a Euclidean-complete
// dense distance matrix over the node centroids via Christofides
// approximation.
type lvlathTsp struct{}

// NewTsp returns a Tsp oracle backed by
// github.com/katalvlaran/lvlath/tsp.
func NewTsp() Tsp {
	return lvlathTsp{}
}

// euclideanMatrix is a dense matrix.Matrix over node centroids scaled by
// resolution, matching the Matrix interface's At/Set/Clone/Rows/Cols
// contract.
type euclideanMatrix struct {
	rows [][]float64
}

func newEuclideanMatrix(nodes []gridmap.Point, resolution float64) *euclideanMatrix {
	n := len(nodes)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			dx := float64(nodes[i].X-nodes[j].X) * resolution
			dy := float64(nodes[i].Y-nodes[j].Y) * resolution
			rows[i][j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	return &euclideanMatrix{rows: rows}
}

func (m *euclideanMatrix) Rows() int { return len(m.rows) }
func (m *euclideanMatrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

func (m *euclideanMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}
	return m.rows[i][j], nil
}

func (m *euclideanMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.rows[i][j] = v
	return nil
}

func (m *euclideanMatrix) Clone() matrix.Matrix {
	rows := make([][]float64, len(m.rows))
	for i, row := range m.rows {
		rows[i] = append([]float64(nil), row...)
	}
	return &euclideanMatrix{rows: rows}
}

var _ matrix.Matrix = (*euclideanMatrix)(nil)

func (lvlathTsp) Solve(nodes []gridmap.Point, resolution float64, startIndex int) ([]int, error) {
	if len(nodes) == 0 {
		return nil, ErrNoTour
	}
	if len(nodes) == 1 {
		return []int{0}, nil
	}

	opt := tsp.DefaultOptions()
	opt.Symmetric = true
	opt.StartVertex = startIndex
	opt.EnableLocalSearch = true

	m := newEuclideanMatrix(nodes, resolution)
	result, err := tsp.SolveWithMatrix(m, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTour, err)
	}
	if len(result.Tour) == 0 {
		return nil, ErrNoTour
	}
	return result.Tour, nil
}
