package gamedata

import (
	"fmt"

	"github.com/samdwyer/reckoning/internal/component"
)

// ArchetypeDef holds the base combat stats of an archetype.
type ArchetypeDef struct {
	ID           string  `json:"id"`
	MaxHealth    int     `json:"maxHealth"`
	MaxStamina   int     `json:"maxStamina"`
	Armor        float64 `json:"armor"`       // Damage reduction (0-1)
	DodgeChance  float64 `json:"dodgeChance"` // Chance to avoid an attack (0-1)
	AttackDamage int     `json:"attackDamage"`
}

// ArchetypesFile represents the structure of archetypes.json.
type ArchetypesFile struct {
	Archetypes []ArchetypeDef `json:"archetypes"`
}

// ArchetypeTable holds exactly one definition per archetype, indexed by archetype.
type ArchetypeTable [component.ArchetypeCount]ArchetypeDef

// LoadArchetypes loads archetype stats from the embedded archetypes.json file.
func LoadArchetypes() (*ArchetypeTable, error) {
	file, err := Load[ArchetypesFile]("archetypes.json")
	if err != nil {
		return nil, err
	}

	var table ArchetypeTable
	var seen [component.ArchetypeCount]bool
	for _, def := range file.Archetypes {
		a, err := component.ParseArchetype(def.ID)
		if err != nil {
			return nil, fmt.Errorf("archetypes: %w", err)
		}
		if seen[a] {
			return nil, fmt.Errorf("archetypes: duplicate entry for %s", a)
		}
		if def.Armor < 0 || def.Armor > 1 || def.DodgeChance < 0 || def.DodgeChance > 1 {
			return nil, fmt.Errorf("archetypes: %s armor and dodge must be within 0-1", a)
		}
		seen[a] = true
		table[a] = def
	}
	for a, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("archetypes: missing entry for %s", component.CombatArchetype(a))
		}
	}
	return &table, nil
}

// Get returns the stats for archetype a, or the balanced stats if a is unknown.
func (t *ArchetypeTable) Get(a component.CombatArchetype) ArchetypeDef {
	if a < 0 || int(a) >= component.ArchetypeCount {
		return t[component.ArchetypeBalanced]
	}
	return t[a]
}
