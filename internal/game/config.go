package game

import (
	"fmt"

	"github.com/samdwyer/reckoning/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible terrain,
	// movement and spawning. A seed of 0 means a random seed will be generated.
	Seed int64

	// Size is the side length of the square map.
	Size int

	// Mode selects the hand-authored or the procedural map.
	Mode world.Mode

	// TerrainFile optionally points at a YAML terrain override.
	TerrainFile string

	// Enemies is how many creatures roam the map.
	Enemies int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Size:    world.DefaultSize,
		Mode:    world.ModeFixed,
		Enemies: 3,
	}
}

// Validate checks the config for values the session cannot work with.
func (c Config) Validate() error {
	if c.Size < world.MinSize {
		return fmt.Errorf("size %d is below the minimum of %d", c.Size, world.MinSize)
	}
	if c.Mode != world.ModeFixed && c.Mode != world.ModeProcedural {
		return fmt.Errorf("unknown mode %d", c.Mode)
	}
	if c.Enemies < 0 {
		return fmt.Errorf("enemy count %d is negative", c.Enemies)
	}
	return nil
}
