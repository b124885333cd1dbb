package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/reckoning/internal/component"
)

// BiomePalette holds the hex colors a biome tints the map with.
type BiomePalette struct {
	Ground string `json:"ground"`
	Accent string `json:"accent"`
	Water  string `json:"water"`
}

// BiomeDef holds the stat modifiers of a biome.
type BiomeDef struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	StaminaDrain   float64      `json:"staminaDrain"`   // Multiplier on stamina use
	MovementSpeed  float64      `json:"movementSpeed"`  // Multiplier on travel speed
	Visibility     float64      `json:"visibility"`     // 0-1 sight radius factor
	EnemySpawnRate float64      `json:"enemySpawnRate"` // Chance per spawn check
	Colors         BiomePalette `json:"colors"`
}

// GroundColor returns the biome ground tint as a tcell.Color.
func (b *BiomeDef) GroundColor() tcell.Color {
	color, err := ParseHexColor(b.Colors.Ground)
	if err != nil {
		return tcell.ColorGray // fallback
	}
	return color
}

// BiomesFile represents the structure of biomes.json.
type BiomesFile struct {
	Biomes []BiomeDef `json:"biomes"`
}

// BiomeTable holds exactly one definition per biome, indexed by biome.
type BiomeTable [component.BiomeCount]BiomeDef

// LoadBiomes loads biome definitions from the embedded biomes.json file.
func LoadBiomes() (*BiomeTable, error) {
	file, err := Load[BiomesFile]("biomes.json")
	if err != nil {
		return nil, err
	}

	var table BiomeTable
	var seen [component.BiomeCount]bool
	for _, def := range file.Biomes {
		biome, err := component.ParseBiome(def.ID)
		if err != nil {
			return nil, fmt.Errorf("biomes: %w", err)
		}
		if seen[biome] {
			return nil, fmt.Errorf("biomes: duplicate entry for %s", biome)
		}
		seen[biome] = true
		table[biome] = def
	}
	for b, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("biomes: missing entry for %s", component.BiomeType(b))
		}
	}
	return &table, nil
}

// Get returns the definition for biome b.
func (t *BiomeTable) Get(b component.BiomeType) *BiomeDef {
	if b < 0 || int(b) >= component.BiomeCount {
		return nil
	}
	return &t[b]
}
