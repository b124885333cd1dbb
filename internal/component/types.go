// Package component holds the plain data shared by entities and the world:
// enumerations and the global environment singletons.
package component

import (
	"fmt"
	"strings"
)

// BiomeType is a region of the world with its own terrain mood and modifiers.
type BiomeType int

const (
	BiomeMarsh BiomeType = iota // Starting biome, waterlogged
	BiomeForest
	BiomeDesert
	BiomeTundra
	BiomeCaves

	// BiomeCount is the number of biomes.
	BiomeCount int = iota
)

var biomeNames = [BiomeCount]string{"marsh", "forest", "desert", "tundra", "caves"}

// String returns the biome name.
func (b BiomeType) String() string {
	if b < 0 || int(b) >= BiomeCount {
		return "unknown"
	}
	return biomeNames[b]
}

// ParseBiome looks up a biome by name.
func ParseBiome(s string) (BiomeType, error) {
	i, err := parseName(s, biomeNames[:])
	return BiomeType(i), err
}

// WeatherType is the current weather condition.
type WeatherType int

const (
	WeatherClear WeatherType = iota
	WeatherRain
	WeatherFog
	WeatherSnow
	WeatherStorm

	// WeatherCount is the number of weather types.
	WeatherCount int = iota
)

var weatherNames = [WeatherCount]string{"clear", "rain", "fog", "snow", "storm"}

// String returns the weather name.
func (w WeatherType) String() string {
	if w < 0 || int(w) >= WeatherCount {
		return "unknown"
	}
	return weatherNames[w]
}

// ParseWeather looks up a weather type by name.
func ParseWeather(s string) (WeatherType, error) {
	i, err := parseName(s, weatherNames[:])
	return WeatherType(i), err
}

// TimePhase is a coarse time-of-day bucket.
type TimePhase int

const (
	PhaseDawn TimePhase = iota
	PhaseDay
	PhaseDusk
	PhaseNight
)

// String returns the phase name.
func (p TimePhase) String() string {
	switch p {
	case PhaseDawn:
		return "dawn"
	case PhaseDay:
		return "day"
	case PhaseDusk:
		return "dusk"
	case PhaseNight:
		return "night"
	default:
		return "unknown"
	}
}

// EntityState is the behavioral state of an AI-driven entity.
type EntityState int

const (
	StateIdle EntityState = iota
	StateWandering
	StateChasing
	StateFleeing
	StateAttacking
	StateDead
)

// String returns a human-readable state name.
func (s EntityState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWandering:
		return "wandering"
	case StateChasing:
		return "chasing"
	case StateFleeing:
		return "fleeing"
	case StateAttacking:
		return "attacking"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// CombatArchetype is a combat style used to pick base stats.
type CombatArchetype int

const (
	ArchetypeTank CombatArchetype = iota // High HP, low dodge
	ArchetypeAgile
	ArchetypeBalanced

	// ArchetypeCount is the number of archetypes.
	ArchetypeCount int = iota
)

var archetypeNames = [ArchetypeCount]string{"tank", "agile", "balanced"}

// String returns the archetype name.
func (a CombatArchetype) String() string {
	if a < 0 || int(a) >= ArchetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// ParseArchetype looks up an archetype by name.
func ParseArchetype(s string) (CombatArchetype, error) {
	i, err := parseName(s, archetypeNames[:])
	return CombatArchetype(i), err
}

func parseName(s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown name %q (want one of %s)", s, strings.Join(names, ", "))
}
