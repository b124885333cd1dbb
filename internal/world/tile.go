// Package world provides terrain grid generation and movement resolution.
package world

import "fmt"

// TileKind identifies the terrain of a single grid cell.
type TileKind uint8

const (
	// TileGround is bare dirt, the default walkable terrain.
	TileGround TileKind = iota
	// TileGrass is walkable grassland.
	TileGrass
	// TileSand is walkable sand.
	TileSand
	// TileWater is an impassable pond or river tile.
	TileWater
	// TileTree is an impassable tree.
	TileTree
	// TileRock is impassable rock. It also forms the outer boundary ring.
	TileRock
	// TileStone is an impassable stone outcrop.
	TileStone

	// KindCount is the number of tile kinds.
	KindCount int = iota
)

// TileBoundary is the kind stamped on the outer ring of every grid.
const TileBoundary = TileRock

var tileSymbols = [KindCount]rune{
	TileGround: '.',
	TileGrass:  '^',
	TileSand:   '~',
	TileWater:  'o',
	TileTree:   'T',
	TileRock:   'R',
	TileStone:  '#',
}

var tileNames = [KindCount]string{
	TileGround: "ground",
	TileGrass:  "grass",
	TileSand:   "sand",
	TileWater:  "water",
	TileTree:   "tree",
	TileRock:   "rock",
	TileStone:  "stone",
}

// DefaultBlocked lists the kinds that cannot be walked on unless configured otherwise.
var DefaultBlocked = []TileKind{TileWater, TileTree, TileRock, TileStone}

// Kinds returns every tile kind in ordinal order.
func Kinds() []TileKind {
	kinds := make([]TileKind, KindCount)
	for i := range kinds {
		kinds[i] = TileKind(i)
	}
	return kinds
}

// Valid reports whether k is a known tile kind.
func (k TileKind) Valid() bool {
	return int(k) < KindCount
}

// Rune returns the tile's display character.
func (k TileKind) Rune() rune {
	if !k.Valid() {
		return '?'
	}
	return tileSymbols[k]
}

// String returns the tile kind name.
func (k TileKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("TileKind(%d)", k)
	}
	return tileNames[k]
}

// ParseKind looks up a tile kind by name. "dirt" is accepted for ground.
func ParseKind(name string) (TileKind, error) {
	if name == "dirt" {
		return TileGround, nil
	}
	for i, n := range tileNames {
		if n == name {
			return TileKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile kind %q", name)
}

// KindFromRune maps a layout symbol back to its tile kind.
func KindFromRune(r rune) (TileKind, bool) {
	for i, s := range tileSymbols {
		if s == r {
			return TileKind(i), true
		}
	}
	return 0, false
}
