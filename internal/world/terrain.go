package world

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidTerrain is returned when a weight table cannot be normalized.
var ErrInvalidTerrain = errors.New("invalid terrain weights")

// Weights holds the relative draw weight of every tile kind, indexed by kind.
type Weights [KindCount]float64

// DefaultWeights is the procedural terrain mix.
var DefaultWeights = Weights{
	TileGround: 30,
	TileSand:   10,
	TileStone:  10,
	TileGrass:  20,
	TileWater:  10,
	TileTree:   10,
	TileRock:   10,
}

// Terrain is a normalized categorical distribution over tile kinds.
// It is built once and then only read, so it may be shared between grids.
type Terrain struct {
	weights    Weights
	cumulative [KindCount]float64
}

// NewTerrain normalizes the given weights by their sum.
func NewTerrain(w Weights) (*Terrain, error) {
	total := 0.0
	for k, v := range w {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s has negative weight %v", ErrInvalidTerrain, TileKind(k), v)
		}
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidTerrain)
	}

	t := &Terrain{weights: w}
	running := 0.0
	for k, v := range w {
		running += v / total
		t.cumulative[k] = running
	}
	// Rounding can leave the last bucket just below 1.
	t.cumulative[KindCount-1] = 1
	return t, nil
}

// DefaultTerrain returns a terrain built from DefaultWeights.
func DefaultTerrain() *Terrain {
	t, err := NewTerrain(DefaultWeights)
	if err != nil {
		panic(err)
	}
	return t
}

// Weights returns the raw, unnormalized weights the terrain was built from.
func (t *Terrain) Weights() Weights {
	return t.weights
}

// Probability returns the normalized chance of drawing kind k.
func (t *Terrain) Probability(k TileKind) float64 {
	if !k.Valid() {
		return 0
	}
	if k == 0 {
		return t.cumulative[0]
	}
	return t.cumulative[k] - t.cumulative[k-1]
}

// Draw picks a tile kind using exactly one value from rng.
func (t *Terrain) Draw(rng *rand.Rand) TileKind {
	return t.pick(rng.Float64())
}

// pick maps a uniform value in [0,1) onto the cumulative distribution.
func (t *Terrain) pick(roll float64) TileKind {
	for k, edge := range t.cumulative {
		if roll < edge && t.weights[k] > 0 {
			return TileKind(k)
		}
	}
	// Only reachable when trailing kinds have zero weight.
	for k := KindCount - 1; k >= 0; k-- {
		if t.weights[k] > 0 {
			return TileKind(k)
		}
	}
	return TileGround
}
