package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/reckoning/internal/component"
	"github.com/samdwyer/reckoning/internal/gamedata"
	"github.com/samdwyer/reckoning/internal/world"
)

// cardinal are the steps a wandering enemy picks from.
var cardinal = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Enemy represents a hostile creature on the map.
type Enemy struct {
	Def      *gamedata.EnemyDef // Reference to the enemy definition
	Name     string             // Enemy name (e.g., "Bog Wolf")
	Symbol   rune               // Display symbol
	X, Y     int                // Position on the map
	Confused int                // Remaining turns of disorientation
	State    component.EntityState

	HP, MaxHP int
	Attack    int
	Armor     float64
	Dodge     float64
}

// NewEnemy creates an enemy from its definition and archetype stats.
func NewEnemy(def *gamedata.EnemyDef, stats gamedata.ArchetypeDef, x, y int) *Enemy {
	return &Enemy{
		Def:    def,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		X:      x,
		Y:      y,
		State:  component.StateIdle,
		HP:     stats.MaxHealth,
		MaxHP:  stats.MaxHealth,
		Attack: stats.AttackDamage,
		Armor:  stats.Armor,
		Dodge:  stats.DodgeChance,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool {
	return e.HP > 0 && e.State != component.StateDead
}

// NextStep chooses this tick's delta and updates the AI state. Within
// detection range the enemy closes in on (px, py) one cell at a time,
// otherwise it wanders. Distances ignore wraparound.
func (e *Enemy) NextStep(px, py int, rng *rand.Rand) (int, int) {
	if !e.IsAlive() {
		return 0, 0
	}

	dx, dy := px-e.X, py-e.Y
	dist := abs(dx) + abs(dy)

	detection := 0
	attack := 1
	if e.Def != nil {
		detection = e.Def.DetectionRange
		attack = e.Def.AttackRange
	}

	switch {
	case dist <= attack:
		e.State = component.StateAttacking
		return 0, 0
	case dist <= detection:
		e.State = component.StateChasing
		return sign(dx), sign(dy)
	default:
		e.State = component.StateWandering
		step := cardinal[rng.Intn(len(cardinal))]
		return step[0], step[1]
	}
}

// Intent builds a movement request for the given delta.
func (e *Enemy) Intent(dx, dy int) world.Intent {
	return world.Intent{X: e.X, Y: e.Y, DX: dx, DY: dy, Confused: e.Confused}
}

// Apply stores the result of a resolved movement.
func (e *Enemy) Apply(out world.Outcome) {
	e.X, e.Y = out.X, out.Y
	e.Confused = out.Confused
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
