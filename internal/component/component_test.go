package component

import "testing"

func TestTimeOfDayAdvance(t *testing.T) {
	clock := NewTimeOfDay()
	if clock.Phase != PhaseDawn {
		t.Fatalf("Expected dawn at start, got %s", clock.Phase)
	}

	tests := []struct {
		hours float64
		hour  float64
		phase TimePhase
	}{
		{3, 9, PhaseDay},
		{10, 19, PhaseDusk},
		{3, 22, PhaseNight},
		{4, 2, PhaseNight},
		{4, 6, PhaseDawn},
	}

	for _, tt := range tests {
		clock.Advance(tt.hours)
		if clock.Hour != tt.hour || clock.Phase != tt.phase {
			t.Errorf("After +%v: hour=%v phase=%s, want hour=%v phase=%s",
				tt.hours, clock.Hour, clock.Phase, tt.hour, tt.phase)
		}
	}
}

func TestTimeScale(t *testing.T) {
	clock := NewTimeOfDay()
	clock.TimeScale = 2
	clock.Advance(1)
	if clock.Hour != 8 || clock.Phase != PhaseDay {
		t.Errorf("Scaled advance: hour=%v phase=%s, want 8 day", clock.Hour, clock.Phase)
	}
}

func TestWeatherElapse(t *testing.T) {
	w := NewWeather()
	if w.Elapse(100) {
		t.Error("Weather should not expire after 100 of 300 seconds")
	}
	if !w.Elapse(250) {
		t.Error("Weather should expire after 350 of 300 seconds")
	}
	if w.Duration != 0 {
		t.Errorf("Expired duration = %v, want 0", w.Duration)
	}
}

func TestEnumNames(t *testing.T) {
	for i := 0; i < BiomeCount; i++ {
		b := BiomeType(i)
		parsed, err := ParseBiome(b.String())
		if err != nil || parsed != b {
			t.Errorf("ParseBiome(%q) = %v, %v", b.String(), parsed, err)
		}
	}
	for i := 0; i < ArchetypeCount; i++ {
		a := CombatArchetype(i)
		parsed, err := ParseArchetype(a.String())
		if err != nil || parsed != a {
			t.Errorf("ParseArchetype(%q) = %v, %v", a.String(), parsed, err)
		}
	}
	for i := 0; i < WeatherCount; i++ {
		w := WeatherType(i)
		parsed, err := ParseWeather(w.String())
		if err != nil || parsed != w {
			t.Errorf("ParseWeather(%q) = %v, %v", w.String(), parsed, err)
		}
	}

	if _, err := ParseBiome("swamp"); err == nil {
		t.Error("ParseBiome(swamp) should fail")
	}
	if StateChasing.String() != "chasing" || EntityState(42).String() != "unknown" {
		t.Error("EntityState names are wrong")
	}
	if BiomeType(-1).String() != "unknown" {
		t.Error("Out-of-range biome should be unknown")
	}
}
