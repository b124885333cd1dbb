package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Bundle groups every embedded table the game needs.
type Bundle struct {
	Terrain    *TerrainRegistry
	Biomes     *BiomeTable
	Archetypes *ArchetypeTable
	Enemies    *EnemyRegistry
}

// LoadBundle loads all embedded tables, failing on the first bad file.
func LoadBundle() (*Bundle, error) {
	terrain, err := LoadTerrainRegistry()
	if err != nil {
		return nil, err
	}
	biomes, err := LoadBiomes()
	if err != nil {
		return nil, err
	}
	archetypes, err := LoadArchetypes()
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	return &Bundle{
		Terrain:    terrain,
		Biomes:     biomes,
		Archetypes: archetypes,
		Enemies:    enemies,
	}, nil
}
