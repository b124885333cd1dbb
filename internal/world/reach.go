package world

import "github.com/zyedidia/generic/mapset"

// ReachableFrom returns every walkable cell connected to (x, y) through
// cardinal steps, following the same wraparound rule as movement. The start
// cell is included when it is walkable.
func ReachableFrom(g *Grid, x, y int) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !g.IsWalkable(x, y) {
		return visited
	}

	queue := []Point{{x, y}}
	visited.Put(Point{x, y})

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range deflections {
			next := Point{Wrap(current.X+d.X, g.size), Wrap(current.Y+d.Y, g.size)}
			if visited.Has(next) || !g.IsWalkable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return visited
}

// Summary describes the terrain make-up of a grid.
type Summary struct {
	Size      int
	Mode      Mode
	Counts    [KindCount]int
	Walkable  int
	Reachable int // Walkable cells connected to the spawn cell
}

// WalkableRatio returns the share of cells that can be walked on.
func (s Summary) WalkableRatio() float64 {
	if s.Size == 0 {
		return 0
	}
	return float64(s.Walkable) / float64(s.Size*s.Size)
}

// Summarize counts tiles by kind and measures how much terrain is reachable from spawn.
func Summarize(g *Grid) Summary {
	s := Summary{Size: g.size, Mode: g.mode}
	for y := range g.tiles {
		for x := range g.tiles[y] {
			kind := g.tiles[y][x]
			s.Counts[kind]++
			if !g.blocked.Has(kind) {
				s.Walkable++
			}
		}
	}
	sx, sy := g.Spawn()
	s.Reachable = ReachableFrom(g, sx, sy).Size()
	return s
}
