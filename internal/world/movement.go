package world

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidIntent is returned for movement requests the caller should never build.
var ErrInvalidIntent = errors.New("invalid movement intent")

// deflections are the directions a confused step can be thrown toward.
var deflections = [4]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Intent is one entity's requested step for a tick.
type Intent struct {
	X, Y     int // Current cell
	DX, DY   int // Requested delta, each in {-1, 0, 1}
	Confused int // Remaining turns of disorientation
}

// Outcome is the result of resolving an Intent.
type Outcome struct {
	X, Y      int  // Resulting cell
	Confused  int  // Counter after this step
	Moved     bool // Position changed
	Deflected bool // Confusion replaced the requested delta
}

// Resolver applies movement rules against a grid. It owns the random
// stream used for confusion deflection and is not safe for concurrent use.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from rng. A nil rng is seeded from the clock.
func NewResolver(rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{rng: rng}
}

// Resolve computes where an entity ends up after attempting in.
//
// A confused entity has an even chance of stepping in a random cardinal
// direction instead. The candidate cell wraps around the grid edges and is
// only entered when walkable. Confusion drops by one on every call.
func (r *Resolver) Resolve(g *Grid, in Intent) (Outcome, error) {
	if err := validateIntent(g, in); err != nil {
		return Outcome{X: in.X, Y: in.Y, Confused: in.Confused}, err
	}

	out := Outcome{X: in.X, Y: in.Y, Confused: in.Confused}
	dx, dy := in.DX, in.DY

	if in.Confused > 0 && r.rng.Float64() < 0.5 {
		d := deflections[r.rng.Intn(len(deflections))]
		dx, dy = d.X, d.Y
		out.Deflected = true
	}

	nx := Wrap(in.X+dx, g.size)
	ny := Wrap(in.Y+dy, g.size)

	if g.IsWalkable(nx, ny) {
		out.Moved = nx != in.X || ny != in.Y
		out.X, out.Y = nx, ny
	}

	if in.Confused > 0 {
		out.Confused = in.Confused - 1
	}

	return out, nil
}

// Resolve is a convenience for one-off resolutions with an explicit rng.
func Resolve(g *Grid, in Intent, rng *rand.Rand) (Outcome, error) {
	return NewResolver(rng).Resolve(g, in)
}

// Wrap returns v mod n in the range [0, n).
func Wrap(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

func validateIntent(g *Grid, in Intent) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidIntent)
	}
	if !isUnitStep(in.DX) || !isUnitStep(in.DY) {
		return fmt.Errorf("%w: delta (%d,%d) outside {-1,0,1}", ErrInvalidIntent, in.DX, in.DY)
	}
	if in.Confused < 0 {
		return fmt.Errorf("%w: negative confusion %d", ErrInvalidIntent, in.Confused)
	}
	if !g.InBounds(in.X, in.Y) {
		return fmt.Errorf("%w: position (%d,%d) outside %dx%d grid", ErrInvalidIntent, in.X, in.Y, g.size, g.size)
	}
	return nil
}

func isUnitStep(d int) bool {
	return d >= -1 && d <= 1
}
