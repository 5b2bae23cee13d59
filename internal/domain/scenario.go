package domain

import "time"

// Configuration is a scenario file as loaded by the config package.
type Configuration struct {
	Name  string          `json:"name" yaml:"name"`
	Input ProjectionInput `json:"input" yaml:"input"`
	// Slabs overrides the default tax slabs when non-empty.
	Slabs []SlabRow `json:"slabs,omitempty" yaml:"slabs,omitempty"`
	// PermissiveSlabs skips slab table validation (compatibility with hand-edited tables).
	PermissiveSlabs bool `json:"permissive_slabs,omitempty" yaml:"permissive_slabs,omitempty"`
	// Perquisite overrides the statutory monthly perquisite amounts.
	Perquisite *PerquisiteRates `json:"perquisite,omitempty" yaml:"perquisite,omitempty"`
}

// SlabTable returns the configured slabs, falling back to the defaults.
func (c *Configuration) SlabTable() SlabTable {
	if len(c.Slabs) == 0 {
		return DefaultSlabTable()
	}
	return SlabTable(c.Slabs).Clone()
}

// PerquisiteRates returns the configured perquisite amounts, falling back to the defaults.
func (c *Configuration) PerquisiteRates() PerquisiteRates {
	if c.Perquisite == nil {
		return DefaultPerquisiteRates()
	}
	return *c.Perquisite
}

// Scenario is a saved, shareable projection input.
type Scenario struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Input     ProjectionInput `json:"input"`
	Slabs     SlabTable       `json:"slabs"`
	CreatedAt time.Time       `json:"created_at"`
}
