// Package game provides the session model and the interactive game loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player roams the map.
	StateExplore State = iota
	// StateDefeated is entered when the player runs out of health.
	StateDefeated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}
