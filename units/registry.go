// SPDX-License-Identifier: MIT

package units

import (
	"sort"
	"strings"
)

// Registry indexes units and prefixes by name. It is not safe for concurrent
// mutation; build it once and share it read-only.
type Registry struct {
	units    map[string]Unit
	prefixes map[string]*Prefix
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		units:    make(map[string]Unit),
		prefixes: make(map[string]*Prefix),
	}
}

// Add registers u under its name.
func (r *Registry) Add(u Unit) error {
	if _, dup := r.units[u.Name()]; dup {
		return unitErrorf(u.Name(), ErrDuplicate)
	}
	r.units[u.Name()] = u
	return nil
}

// AddPrefix registers p under its name and, when set, its symbol.
func (r *Registry) AddPrefix(p *Prefix) error {
	if _, dup := r.prefixes[p.Name]; dup {
		return unitErrorf(p.Name, ErrDuplicate)
	}
	r.prefixes[p.Name] = p
	if p.Symbol != "" && p.Symbol != p.Name {
		if _, dup := r.prefixes[p.Symbol]; dup {
			return unitErrorf(p.Symbol, ErrDuplicate)
		}
		r.prefixes[p.Symbol] = p
	}
	return nil
}

// Unit looks up a unit by name.
func (r *Registry) Unit(name string) (Unit, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Prefix looks up a prefix by name or symbol.
func (r *Registry) Prefix(name string) (*Prefix, bool) {
	p, ok := r.prefixes[name]
	return p, ok
}

// Lookup resolves name as a unit, or as a prefix name immediately followed
// by a unit name ("kilometer"). An exact unit name wins over a prefixed
// reading; among prefixes the longest match wins.
func (r *Registry) Lookup(name string) (Unit, *Prefix, bool) {
	if u, ok := r.units[name]; ok {
		return u, nil, true
	}
	var best *Prefix
	var unit Unit
	for key, p := range r.prefixes {
		if key != p.Name || !strings.HasPrefix(name, key) {
			continue
		}
		if best != nil && len(best.Name) >= len(key) {
			continue
		}
		if u, ok := r.units[name[len(key):]]; ok {
			best, unit = p, u
		}
	}
	return unit, best, best != nil
}

// Units returns all registered units sorted by name.
func (r *Registry) Units() []Unit {
	out := make([]Unit, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Len returns the number of registered units.
func (r *Registry) Len() int { return len(r.units) }
