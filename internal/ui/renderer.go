package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/reckoning/internal/entity"
	"github.com/samdwyer/reckoning/internal/gamedata"
	"github.com/samdwyer/reckoning/internal/world"
)

// Frame is everything drawn in one screen refresh.
type Frame struct {
	Grid    *world.Grid
	Terrain *gamedata.TerrainRegistry
	Ground  tcell.Color // Biome tint for plain ground
	Player  *entity.Player
	Enemies []*entity.Enemy
	Status  []string // Lines printed below the map
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen      *Screen
	playerStyle tcell.Style
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	playerStyle := tcell.StyleDefault.
		Foreground(gamedata.MustParseHexColor("#F2D03B")).
		Bold(true)
	return &Renderer{screen: screen, playerStyle: playerStyle}
}

// Render draws the grid, the enemies, the player and the status lines.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	n := f.Grid.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			kind := f.Grid.Tile(x, y)
			r.screen.SetContent(x, y, kind.Rune(), r.tileStyle(f, kind))
		}
	}

	for _, e := range f.Enemies {
		if !e.IsAlive() {
			continue
		}
		r.screen.SetContent(e.X, e.Y, e.Symbol, tcell.StyleDefault.Foreground(e.Color()))
	}

	style := r.playerStyle
	if f.Player.Confused > 0 {
		style = style.Blink(true)
	}
	r.screen.SetContent(f.Player.X, f.Player.Y, f.Player.Symbol, style)

	for i, line := range f.Status {
		r.RenderMessage(line, n+1+i)
	}

	r.screen.Show()
}

// tileStyle returns the style for a tile kind.
func (r *Renderer) tileStyle(f Frame, kind world.TileKind) tcell.Style {
	if kind == world.TileGround && f.Ground != tcell.ColorDefault {
		return tcell.StyleDefault.Foreground(f.Ground)
	}
	if f.Terrain == nil {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(f.Terrain.Color(kind))
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
