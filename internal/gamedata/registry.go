package gamedata

import (
	"errors"
	"fmt"
)

// PursuerRegistry holds loaded pursuer definitions in file order.
type PursuerRegistry struct {
	pursuers []PursuerDef
}

// NewPursuerRegistry creates a registry from loaded pursuer definitions.
func NewPursuerRegistry(pursuers []PursuerDef) *PursuerRegistry {
	return &PursuerRegistry{pursuers: pursuers}
}

// LoadPursuerRegistry loads and creates a registry from the embedded pursuers.json.
func LoadPursuerRegistry() (*PursuerRegistry, error) {
	pursuers, err := LoadPursuers()
	if err != nil {
		return nil, err
	}
	if len(pursuers) == 0 {
		return nil, errors.New("no pursuers loaded from pursuers.json")
	}
	for i := range pursuers {
		if err := pursuers[i].Validate(); err != nil {
			return nil, err
		}
	}
	return NewPursuerRegistry(pursuers), nil
}

// GetByID returns the pursuer definition with the given ID, or nil if not found.
func (r *PursuerRegistry) GetByID(id string) *PursuerDef {
	for i := range r.pursuers {
		if r.pursuers[i].ID == id {
			return &r.pursuers[i]
		}
	}
	return nil
}

// At returns the i-th definition.
func (r *PursuerRegistry) At(i int) *PursuerDef {
	return &r.pursuers[i]
}

// All returns all pursuer definitions.
func (r *PursuerRegistry) All() []PursuerDef {
	return r.pursuers
}

// Count returns the number of pursuers in the registry.
func (r *PursuerRegistry) Count() int {
	return len(r.pursuers)
}

// =============================================================================
// LevelRegistry
// =============================================================================

// LevelRegistry holds validated level definitions keyed by ID.
type LevelRegistry struct {
	levels map[string]*LevelDef
	all    []LevelDef
}

// NewLevelRegistry validates the definitions and indexes them by ID.
func NewLevelRegistry(levels []LevelDef) (*LevelRegistry, error) {
	registry := &LevelRegistry{
		levels: make(map[string]*LevelDef),
		all:    levels,
	}
	for i := range levels {
		if err := levels[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.levels[levels[i].ID]; dup {
			return nil, fmt.Errorf("duplicate level id %q", levels[i].ID)
		}
		registry.levels[levels[i].ID] = &levels[i]
	}
	return registry, nil
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels)
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	return r.levels[id]
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.all
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.all)
}
