// Package entity provides the player and the creatures roaming the map.
package entity

import "github.com/samdwyer/reckoning/internal/world"

// Player represents the explorer controlled from the keyboard.
type Player struct {
	X, Y     int  // Current cell
	Symbol   rune // Display symbol
	Confused int  // Remaining turns of disorientation

	Health, MaxHealth int
	Gold              int
	Score             int
	Level             int
	Experience        int
}

// NewPlayer creates a new player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Symbol:    '@',
		Health:    10,
		MaxHealth: 10,
		Level:     1,
	}
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Intent builds a movement request for the given delta.
func (p *Player) Intent(dx, dy int) world.Intent {
	return world.Intent{X: p.X, Y: p.Y, DX: dx, DY: dy, Confused: p.Confused}
}

// Apply stores the result of a resolved movement.
func (p *Player) Apply(out world.Outcome) {
	p.X, p.Y = out.X, out.Y
	p.Confused = out.Confused
}

// Confuse adds turns of disorientation.
func (p *Player) Confuse(turns int) {
	if turns > 0 {
		p.Confused += turns
	}
}
