package world

// fixedLayout is the hand-authored clearing-with-ponds map.
// Legend: . ground, ^ grass, ~ sand, o water, T tree, R rock, # stone.
var fixedLayout = []string{
	"RRRRRRRRRRR",
	"R.^^.T.^^.R",
	"R^..~..~^.R",
	"R.~oo~oo~.R",
	"RT.~..~.T.R",
	"R...^.^...R", // spawn row
	"R.T.^.^.T.R",
	"R.~oo~oo~.R",
	"R^..~..~^.R",
	"R.^^.T.^^.R",
	"RRRRRRRRRRR",
}

// FixedLayout returns a copy of the authored layout rows.
func FixedLayout() []string {
	rows := make([]string, len(fixedLayout))
	copy(rows, fixedLayout)
	return rows
}

// normalizeLayout converts layout rows into an n×n tile matrix.
// Short rows are right-padded and missing rows appended with the boundary
// tile; long rows and extra rows are truncated. Unknown symbols become the
// boundary tile.
func normalizeLayout(rows []string, n int) [][]TileKind {
	tiles := make([][]TileKind, n)
	for y := range tiles {
		tiles[y] = make([]TileKind, n)
		for x := range tiles[y] {
			tiles[y][x] = TileBoundary
		}
		if y >= len(rows) {
			continue
		}
		x := 0
		for _, r := range rows[y] {
			if x >= n {
				break
			}
			if kind, ok := KindFromRune(r); ok {
				tiles[y][x] = kind
			}
			x++
		}
	}
	return tiles
}
