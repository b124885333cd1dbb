package entity

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/reckoning/internal/component"
	"github.com/samdwyer/reckoning/internal/gamedata"
	"github.com/samdwyer/reckoning/internal/world"
)

func testEnemy(x, y int) *Enemy {
	def := &gamedata.EnemyDef{
		ID:             "test",
		Name:           "Test Enemy",
		Glyph:          "e",
		Color:          "#FF0000",
		Archetype:      "tank",
		DetectionRange: 3,
		AttackRange:    1,
		SpawnWeight:    1,
	}
	stats := gamedata.ArchetypeDef{ID: "tank", MaxHealth: 15, AttackDamage: 3, Armor: 0.3, DodgeChance: 0.05}
	return NewEnemy(def, stats, x, y)
}

func TestPlayerIntentAndApply(t *testing.T) {
	p := NewPlayer(5, 5)
	p.Confuse(3)
	p.Confuse(-2) // ignored

	in := p.Intent(1, 0)
	want := world.Intent{X: 5, Y: 5, DX: 1, DY: 0, Confused: 3}
	if in != want {
		t.Errorf("Intent = %+v, want %+v", in, want)
	}

	p.Apply(world.Outcome{X: 6, Y: 5, Confused: 2, Moved: true})
	if x, y := p.Position(); x != 6 || y != 5 || p.Confused != 2 {
		t.Errorf("After Apply: (%d,%d) confused=%d", x, y, p.Confused)
	}
}

func TestNewEnemyUsesArchetypeStats(t *testing.T) {
	e := testEnemy(2, 2)

	if e.HP != 15 || e.MaxHP != 15 || e.Attack != 3 {
		t.Errorf("Stats = hp %d/%d attack %d", e.HP, e.MaxHP, e.Attack)
	}
	if e.Symbol != 'e' {
		t.Errorf("Symbol = %c, want e", e.Symbol)
	}
	if e.Color() == 0 {
		t.Error("Color returned zero color")
	}
	if !e.IsAlive() {
		t.Error("New enemy should be alive")
	}
}

func TestEnemyNextStep(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name           string
		ex, ey         int
		px, py         int
		wantState      component.EntityState
		wantDX, wantDY int
	}{
		{"adjacent attacks", 5, 5, 5, 6, component.StateAttacking, 0, 0},
		{"chases east", 2, 5, 5, 5, component.StateChasing, 1, 0},
		{"chases diagonally", 4, 4, 5, 6, component.StateChasing, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEnemy(tt.ex, tt.ey)
			dx, dy := e.NextStep(tt.px, tt.py, rng)
			if e.State != tt.wantState {
				t.Errorf("State = %s, want %s", e.State, tt.wantState)
			}
			if dx != tt.wantDX || dy != tt.wantDY {
				t.Errorf("Step = (%d,%d), want (%d,%d)", dx, dy, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestEnemyWandersCardinally(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	e := testEnemy(1, 1)

	for i := 0; i < 50; i++ {
		dx, dy := e.NextStep(9, 9, rng)
		if e.State != component.StateWandering {
			t.Fatalf("State = %s, want wandering", e.State)
		}
		if abs(dx)+abs(dy) != 1 {
			t.Fatalf("Wander step (%d,%d) is not cardinal", dx, dy)
		}
	}
}

func TestDeadEnemyStaysPut(t *testing.T) {
	e := testEnemy(1, 1)
	e.HP = 0

	if dx, dy := e.NextStep(2, 1, rand.New(rand.NewSource(1))); dx != 0 || dy != 0 {
		t.Errorf("Dead enemy stepped (%d,%d)", dx, dy)
	}
}
