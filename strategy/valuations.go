package strategy

import (
	"math"

	"github.com/velkorn/frontis/frontier"
)

// maxSize values large frontiers: more boundary cells usually mean more
// unexplored area behind them.
type maxSize struct {
	weight float64
}

func newMaxSize(p Params) (Strategy, error) {
	w, err := p.Float("weight", 1)
	if err != nil {
		return nil, err
	}

	return maxSize{weight: w}, nil
}

func (s maxSize) Name() string { return MaxSize }

func (s maxSize) Score(_ Context, f frontier.Frontier) float64 {
	return s.weight * float64(f.Size())
}

// minEuclideanDistance values nearby frontiers by straight-line distance
// from the robot to the frontier centroid. The score is the negated
// distance, so closer frontiers score higher.
type minEuclideanDistance struct {
	weight float64
}

func newMinEuclideanDistance(p Params) (Strategy, error) {
	w, err := p.Float("weight", 1)
	if err != nil {
		return nil, err
	}

	return minEuclideanDistance{weight: w}, nil
}

func (s minEuclideanDistance) Name() string { return MinEuclideanDistance }

func (s minEuclideanDistance) Score(ctx Context, f frontier.Frontier) float64 {
	cx, cy := f.Centroid()

	return -s.weight * math.Hypot(cx-ctx.Robot.X, cy-ctx.Robot.Y)
}

// minPathDistance values frontiers by the free-space BFS distance from
// the robot to the nearest frontier cell, the geodesic cost a planner
// would actually pay. Frontiers unreachable through free space (and any
// scoring without a grid) are charged the full grid area so they rank
// below every reachable frontier.
type minPathDistance struct {
	weight float64
}

func newMinPathDistance(p Params) (Strategy, error) {
	w, err := p.Float("weight", 1)
	if err != nil {
		return nil, err
	}

	return minPathDistance{weight: w}, nil
}

func (s minPathDistance) Name() string { return MinPathDistance }

func (s minPathDistance) Score(ctx Context, f frontier.Frontier) float64 {
	if ctx.Grid == nil {
		return 0
	}
	area := ctx.Grid.Width * ctx.Grid.Height

	rx, ry := ctx.Robot.Cell()
	if !ctx.Grid.InBounds(rx, ry) {
		return -s.weight * float64(area)
	}
	dist, err := ctx.Grid.DistanceField(rx, ry)
	if err != nil {
		return -s.weight * float64(area)
	}

	best := -1
	for _, c := range f.Cells() {
		d := dist[ctx.Grid.Index(c.X, c.Y)]
		if d >= 0 && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return -s.weight * float64(area)
	}

	return -s.weight * float64(best)
}

// orientation values frontiers ahead of the robot: the cosine of the
// angle between the robot heading and the bearing to the frontier
// centroid, in [-1, 1].
type orientation struct {
	weight float64
}

func newOrientation(p Params) (Strategy, error) {
	w, err := p.Float("weight", 1)
	if err != nil {
		return nil, err
	}

	return orientation{weight: w}, nil
}

func (s orientation) Name() string { return Orientation }

func (s orientation) Score(ctx Context, f frontier.Frontier) float64 {
	cx, cy := f.Centroid()
	bearing := math.Atan2(cy-ctx.Robot.Y, cx-ctx.Robot.X)

	return s.weight * math.Cos(bearing-ctx.Robot.Theta)
}
