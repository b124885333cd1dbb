package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/reckoning/internal/telemetry"
)

const (
	// DefaultSize is the side length of a session grid.
	DefaultSize = 11
	// MinSize is the smallest grid with at least one interior cell.
	MinSize = 3
)

var (
	// ErrGridTooSmall is returned when the requested side length is below MinSize.
	ErrGridTooSmall = errors.New("grid size too small")
	// ErrInvalidBlockedSet is returned when the blocked kinds would break the
	// boundary or spawn guarantees.
	ErrInvalidBlockedSet = errors.New("invalid blocked tile set")
)

// Mode selects how the base terrain is produced.
type Mode int

const (
	// ModeFixed uses the hand-authored layout.
	ModeFixed Mode = iota
	// ModeProcedural draws interior cells from a weighted terrain table.
	ModeProcedural
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeProcedural:
		return "procedural"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "":
		return ModeFixed, nil
	case "procedural", "random":
		return ModeProcedural, nil
	default:
		return ModeFixed, fmt.Errorf("unknown generation mode %q", s)
	}
}

// Options configures grid generation.
type Options struct {
	Size    int        // Side length; 0 means DefaultSize
	Mode    Mode       // Fixed or procedural
	Terrain *Terrain   // Procedural weights; nil means DefaultTerrain
	Blocked []TileKind // Non-walkable kinds; nil means DefaultBlocked
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Classification is the answer to a walkability query.
type Classification struct {
	Kind     TileKind
	Walkable bool
	InBounds bool
}

// Grid is the immutable N×N terrain of one session.
type Grid struct {
	size    int
	mode    Mode
	tiles   [][]TileKind
	blocked mapset.Set[TileKind]
}

// Generate builds a grid according to opts. rng is only consumed in
// procedural mode, one draw per interior cell in row-major order.
func Generate(ctx context.Context, opts Options, rng *rand.Rand) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	startTime := time.Now()

	n := opts.Size
	if n == 0 {
		n = DefaultSize
	}
	if n < MinSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrGridTooSmall, n, MinSize)
	}

	blocked, err := blockedSet(opts.Blocked)
	if err != nil {
		return nil, err
	}

	g := &Grid{size: n, mode: opts.Mode, blocked: blocked}

	switch opts.Mode {
	case ModeFixed:
		g.tiles = normalizeLayout(fixedLayout, n)
		g.stampBoundary()
	case ModeProcedural:
		terrain := opts.Terrain
		if terrain == nil {
			terrain = DefaultTerrain()
		}
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		g.tiles = drawTerrain(n, terrain, rng)
	default:
		return nil, fmt.Errorf("unknown generation mode %d", opts.Mode)
	}

	// Play always starts on walkable terrain.
	sx, sy := g.Spawn()
	g.tiles[sy][sx] = TileGround

	span.SetAttributes(
		attribute.Int("grid.size", n),
		attribute.String("grid.mode", opts.Mode.String()),
		attribute.Int("grid.walkable", g.walkableCount()),
		attribute.Int64("grid.generation_us", time.Since(startTime).Microseconds()),
	)

	return g, nil
}

// drawTerrain fills an n×n matrix row by row. Boundary cells do not consume
// a draw, so the sequence of values taken from rng depends only on n.
func drawTerrain(n int, terrain *Terrain, rng *rand.Rand) [][]TileKind {
	tiles := make([][]TileKind, n)
	for y := 0; y < n; y++ {
		tiles[y] = make([]TileKind, n)
		for x := 0; x < n; x++ {
			if isRing(x, y, n) {
				tiles[y][x] = TileBoundary
				continue
			}
			tiles[y][x] = terrain.Draw(rng)
		}
	}
	return tiles
}

// stampBoundary rewrites the outer ring with the boundary tile.
func (g *Grid) stampBoundary() {
	for i := 0; i < g.size; i++ {
		g.tiles[0][i] = TileBoundary
		g.tiles[g.size-1][i] = TileBoundary
		g.tiles[i][0] = TileBoundary
		g.tiles[i][g.size-1] = TileBoundary
	}
}

func blockedSet(kinds []TileKind) (mapset.Set[TileKind], error) {
	if kinds == nil {
		kinds = DefaultBlocked
	}
	set := mapset.New[TileKind]()
	for _, k := range kinds {
		if !k.Valid() {
			return set, fmt.Errorf("%w: unknown kind %d", ErrInvalidBlockedSet, k)
		}
		set.Put(k)
	}
	if !set.Has(TileBoundary) {
		return set, fmt.Errorf("%w: boundary kind %s must be blocked", ErrInvalidBlockedSet, TileBoundary)
	}
	if set.Has(TileGround) {
		return set, fmt.Errorf("%w: spawn kind %s must be walkable", ErrInvalidBlockedSet, TileGround)
	}
	return set, nil
}

func isRing(x, y, n int) bool {
	return x == 0 || y == 0 || x == n-1 || y == n-1
}

// Size returns the side length N.
func (g *Grid) Size() int {
	return g.size
}

// Mode returns how the grid was generated.
func (g *Grid) Mode() Mode {
	return g.mode
}

// Spawn returns the center cell where play starts.
func (g *Grid) Spawn() (int, int) {
	return g.size / 2, g.size / 2
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Tile returns the kind at (x, y), or the boundary kind when out of bounds.
func (g *Grid) Tile(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileBoundary
	}
	return g.tiles[y][x]
}

// Classify reports the kind and walkability of (x, y). Coordinates off the
// grid are never walkable.
func (g *Grid) Classify(x, y int) Classification {
	if !g.InBounds(x, y) {
		return Classification{Kind: TileBoundary}
	}
	kind := g.tiles[y][x]
	return Classification{
		Kind:     kind,
		Walkable: !g.blocked.Has(kind),
		InBounds: true,
	}
}

// IsWalkable returns true if the given position can be walked on.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.Classify(x, y).Walkable
}

// IsBlocked reports whether kind k is non-walkable on this grid.
func (g *Grid) IsBlocked(k TileKind) bool {
	return g.blocked.Has(k)
}

// Rows returns a copy of the tile matrix, indexed [y][x].
func (g *Grid) Rows() [][]TileKind {
	rows := make([][]TileKind, g.size)
	for y := range rows {
		rows[y] = make([]TileKind, g.size)
		copy(rows[y], g.tiles[y])
	}
	return rows
}

// String renders the grid with one symbol per tile, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y, row := range g.tiles {
		for _, k := range row {
			b.WriteRune(k.Rune())
		}
		if y < g.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (g *Grid) walkableCount() int {
	count := 0
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if !g.blocked.Has(g.tiles[y][x]) {
				count++
			}
		}
	}
	return count
}
