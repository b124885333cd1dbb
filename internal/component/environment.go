package component

import "math"

// TimeOfDay is the global clock singleton.
type TimeOfDay struct {
	Hour      float64 // 0-24
	Phase     TimePhase
	TimeScale float64 // Speed multiplier applied by Advance
}

// NewTimeOfDay returns a clock starting at dawn.
func NewTimeOfDay() TimeOfDay {
	return TimeOfDay{Hour: 6, Phase: PhaseDawn, TimeScale: 1}
}

// Advance moves the clock forward, wrapping at midnight, and updates the phase.
func (t *TimeOfDay) Advance(hours float64) {
	t.Hour = math.Mod(t.Hour+hours*t.TimeScale, 24)
	if t.Hour < 0 {
		t.Hour += 24
	}
	t.Phase = PhaseAt(t.Hour)
}

// PhaseAt returns the phase for an hour in [0, 24).
func PhaseAt(hour float64) TimePhase {
	switch {
	case hour >= 5 && hour < 8:
		return PhaseDawn
	case hour >= 8 && hour < 18:
		return PhaseDay
	case hour >= 18 && hour < 21:
		return PhaseDusk
	default:
		return PhaseNight
	}
}

// Weather is the global weather singleton.
type Weather struct {
	Current       WeatherType
	Intensity     float64 // 0-1
	Duration      float64 // Seconds remaining
	WindSpeed     float64
	WindDirection float64 // Radians
}

// NewWeather returns clear skies for five minutes.
func NewWeather() Weather {
	return Weather{Current: WeatherClear, Intensity: 0.5, Duration: 300}
}

// Elapse counts down the remaining duration and reports whether it ran out.
func (w *Weather) Elapse(seconds float64) bool {
	w.Duration -= seconds
	if w.Duration <= 0 {
		w.Duration = 0
		return true
	}
	return false
}

// WorldState is the global progress singleton.
type WorldState struct {
	CurrentBiome    BiomeType
	DifficultyScale float64
	EnemiesDefeated int
	BossesDefeated  int
}

// NewWorldState returns the starting world state in the marsh.
func NewWorldState() WorldState {
	return WorldState{CurrentBiome: BiomeMarsh, DifficultyScale: 1}
}
