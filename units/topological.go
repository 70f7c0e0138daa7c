// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
)

// visitation states of the definition DFS.
const (
	white = iota
	gray
	black
)

// definitionSorter orders definitions so every referenced unit is built
// before the units that reference it.
type definitionSorter struct {
	defs  map[string]UnitDef
	state map[string]int
	order []UnitDef
}

// resolutionOrder returns defs in dependency order. References to units
// outside defs are leaves; build reports the ones that are not registered.
func resolutionOrder(defs []UnitDef) ([]UnitDef, error) {
	s := &definitionSorter{
		defs:  make(map[string]UnitDef, len(defs)),
		state: make(map[string]int, len(defs)),
		order: make([]UnitDef, 0, len(defs)),
	}
	for _, d := range defs {
		if _, dup := s.defs[d.Name]; dup {
			return nil, unitErrorf(d.Name, ErrDuplicate)
		}
		s.defs[d.Name] = d
	}
	// declaration order keeps the result deterministic
	for _, d := range defs {
		if s.state[d.Name] == white {
			if err := s.visit(d.Name); err != nil {
				return nil, err
			}
		}
	}
	return s.order, nil
}

func dependencies(d UnitDef) []string {
	switch d.Type {
	case "alias":
		return []string{d.Base}
	case "composite":
		deps := make([]string, 0, len(d.Parts))
		for _, p := range d.Parts {
			deps = append(deps, p.Unit)
		}
		return deps
	}
	return nil
}

func (s *definitionSorter) visit(name string) error {
	switch s.state[name] {
	case gray:
		return unitErrorf(name, ErrCycle)
	case black:
		return nil
	}
	def, declared := s.defs[name]
	if !declared {
		return nil
	}
	s.state[name] = gray
	for _, dep := range dependencies(def) {
		if _, ok := s.defs[dep]; !ok {
			continue
		}
		if err := s.visit(dep); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	s.state[name] = black
	s.order = append(s.order, def)
	return nil
}
