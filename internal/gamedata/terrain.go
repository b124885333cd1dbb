package gamedata

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/reckoning/internal/world"
)

// TerrainDef describes one tile kind loaded from JSON.
type TerrainDef struct {
	Kind     string  `json:"kind"`     // Tile kind name matching world.TileKind (e.g., "water")
	Symbol   string  `json:"symbol"`   // Layout symbol (e.g., "o")
	Name     string  `json:"name"`     // Display name
	Color    string  `json:"color"`    // Hex color code
	Walkable bool    `json:"walkable"` // Whether entities may stand on it
	Weight   float64 `json:"weight"`   // Relative procedural draw weight
}

// TerrainFile represents the structure of terrain.json.
type TerrainFile struct {
	Tiles []TerrainDef `json:"tiles"`
}

// TerrainOverride is the YAML shape used to retune terrain without rebuilding.
//
//	weights:
//	  ground: 40
//	  water: 5
//	blocked: [water, tree, rock]
type TerrainOverride struct {
	Weights map[string]float64 `yaml:"weights"`
	Blocked []string           `yaml:"blocked"`
}

// TerrainRegistry holds one definition per tile kind, indexed by kind.
type TerrainRegistry struct {
	defs   [world.KindCount]TerrainDef
	colors [world.KindCount]tcell.Color
}

// NewTerrainRegistry validates that defs cover every tile kind exactly once.
func NewTerrainRegistry(defs []TerrainDef) (*TerrainRegistry, error) {
	r := &TerrainRegistry{}
	var seen [world.KindCount]bool

	for _, def := range defs {
		kind, err := world.ParseKind(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("terrain: %w", err)
		}
		if seen[kind] {
			return nil, fmt.Errorf("terrain: duplicate entry for %s", kind)
		}
		if def.Symbol != string(kind.Rune()) {
			return nil, fmt.Errorf("terrain: %s symbol %q does not match layout symbol %q", kind, def.Symbol, kind.Rune())
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("terrain: %s: %w", kind, err)
		}
		seen[kind] = true
		r.defs[kind] = def
		r.colors[kind] = color
	}

	for k, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("terrain: missing entry for %s", world.TileKind(k))
		}
	}

	return r, nil
}

// LoadTerrainRegistry loads and creates a registry from the embedded terrain.json.
func LoadTerrainRegistry() (*TerrainRegistry, error) {
	file, err := Load[TerrainFile]("terrain.json")
	if err != nil {
		return nil, err
	}
	return NewTerrainRegistry(file.Tiles)
}

// MustLoadTerrainRegistry loads a registry, panicking on error.
func MustLoadTerrainRegistry() *TerrainRegistry {
	registry, err := LoadTerrainRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Def returns the definition for kind k.
func (r *TerrainRegistry) Def(k world.TileKind) TerrainDef {
	if !k.Valid() {
		return TerrainDef{Kind: "unknown", Symbol: "?", Name: "Unknown"}
	}
	return r.defs[k]
}

// Color returns the display color for kind k.
func (r *TerrainRegistry) Color(k world.TileKind) tcell.Color {
	if !k.Valid() {
		return tcell.ColorPurple
	}
	return r.colors[k]
}

// Weights returns the procedural draw weights indexed by kind.
func (r *TerrainRegistry) Weights() world.Weights {
	var w world.Weights
	for k, def := range r.defs {
		w[k] = def.Weight
	}
	return w
}

// Terrain builds the normalized draw table from the registry weights.
func (r *TerrainRegistry) Terrain() (*world.Terrain, error) {
	return world.NewTerrain(r.Weights())
}

// Blocked returns every kind marked non-walkable, in kind order.
func (r *TerrainRegistry) Blocked() []world.TileKind {
	var blocked []world.TileKind
	for k, def := range r.defs {
		if !def.Walkable {
			blocked = append(blocked, world.TileKind(k))
		}
	}
	return blocked
}

// WithOverride returns a copy of the registry with the override applied.
// Kinds absent from the override keep their weights; a non-empty blocked
// list replaces walkability for every kind.
func (r *TerrainRegistry) WithOverride(o TerrainOverride) (*TerrainRegistry, error) {
	out := *r

	for name, weight := range o.Weights {
		kind, err := world.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("terrain override: %w", err)
		}
		out.defs[kind].Weight = weight
	}

	if len(o.Blocked) > 0 {
		for k := range out.defs {
			out.defs[k].Walkable = true
		}
		for _, name := range o.Blocked {
			kind, err := world.ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("terrain override: %w", err)
			}
			out.defs[kind].Walkable = false
		}
	}

	return &out, nil
}

// LoadTerrainOverride reads a YAML terrain override from disk.
func LoadTerrainOverride(path string) (TerrainOverride, error) {
	var o TerrainOverride

	content, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("failed to read terrain override %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &o); err != nil {
		return o, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	return o, nil
}
