package ui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/reckoning/internal/entity"
	"github.com/samdwyer/reckoning/internal/gamedata"
	"github.com/samdwyer/reckoning/internal/world"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom failed: %v", err)
	}
	sim.SetSize(40, 20)
	t.Cleanup(s.Close)
	return s
}

func TestRenderDrawsFrame(t *testing.T) {
	screen := newTestScreen(t)
	g, err := world.Generate(context.Background(), world.Options{Mode: world.ModeFixed}, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	terrain := gamedata.MustLoadTerrainRegistry()

	def := &gamedata.EnemyDef{ID: "goblin", Name: "Goblin", Glyph: "g", Color: "#00FF00"}
	enemy := entity.NewEnemy(def, gamedata.ArchetypeDef{MaxHealth: 3}, 2, 5)
	player := entity.NewPlayer(5, 5)

	NewRenderer(screen).Render(Frame{
		Grid:    g,
		Terrain: terrain,
		Ground:  tcell.ColorDefault,
		Player:  player,
		Enemies: []*entity.Enemy{enemy},
		Status:  []string{"turn 0"},
	})

	if r, _ := screen.Content(0, 0); r != 'R' {
		t.Errorf("Corner = %q, want R", r)
	}
	if r, style := screen.Content(1, 3); r != '.' {
		t.Errorf("(1,3) = %q, want .", r)
	} else if fg, _, _ := style.Decompose(); fg != terrain.Color(world.TileGround) {
		t.Errorf("Ground drawn in %v, want %v", fg, terrain.Color(world.TileGround))
	}
	if r, _ := screen.Content(3, 3); r != 'o' {
		t.Errorf("(3,3) = %q, want o", r)
	}
	if r, _ := screen.Content(5, 5); r != '@' {
		t.Errorf("Player cell = %q, want @", r)
	}
	if r, _ := screen.Content(2, 5); r != 'g' {
		t.Errorf("Enemy cell = %q, want g", r)
	}
	for i, want := range "turn 0" {
		if r, _ := screen.Content(i, g.Size()+1); r != want {
			t.Errorf("Status column %d = %q, want %q", i, r, want)
		}
	}
}

func TestRenderUsesBiomeGround(t *testing.T) {
	screen := newTestScreen(t)
	g, err := world.Generate(context.Background(), world.Options{Mode: world.ModeFixed}, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	tint := gamedata.MustParseHexColor("#5C6B3A")

	NewRenderer(screen).Render(Frame{
		Grid:    g,
		Terrain: gamedata.MustLoadTerrainRegistry(),
		Ground:  tint,
		Player:  entity.NewPlayer(5, 5),
	})

	_, style := screen.Content(1, 3)
	if fg, _, _ := style.Decompose(); fg != tint {
		t.Errorf("Ground drawn in %v, want biome tint %v", fg, tint)
	}
}
