// SPDX-License-Identifier: MIT

package units

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcas/number"
)

//go:embed defaults.yaml
var defaultDefinitions []byte

// Document is the YAML schema of a unit definition file.
type Document struct {
	Prefixes []PrefixDef `yaml:"prefixes" validate:"dive"`
	Units    []UnitDef   `yaml:"units" validate:"dive"`
}

// PrefixDef declares a Prefix. Value is an exact decimal or a fraction "a/b".
type PrefixDef struct {
	Name   string `yaml:"name" validate:"required"`
	Symbol string `yaml:"symbol"`
	Value  string `yaml:"value" validate:"required"`
}

// UnitDef declares one unit.
type UnitDef struct {
	Name        string    `yaml:"name" validate:"required"`
	Type        string    `yaml:"type" validate:"required,oneof=base alias composite"`
	Base        string    `yaml:"base" validate:"required_if=Type alias"`
	Relation    string    `yaml:"relation"`
	Offset      string    `yaml:"offset"`
	Exponent    int       `yaml:"exponent"`
	MixWithBase int       `yaml:"mix_with_base" validate:"gte=0"`
	Parts       []PartDef `yaml:"parts" validate:"required_if=Type composite,dive"`
}

// PartDef declares one factor of a composite unit.
type PartDef struct {
	Unit     string `yaml:"unit" validate:"required"`
	Exponent int    `yaml:"exponent"`
	Prefix   string `yaml:"prefix"`
}

var validate = validator.New()

// DefaultRegistry returns a fresh registry holding the embedded SI-oriented
// definitions (time, length, mass, volume, temperature, energy, ...).
func DefaultRegistry() (*Registry, error) {
	return LoadYAML(bytes.NewReader(defaultDefinitions))
}

// LoadYAML parses, validates and resolves a definition document.
func LoadYAML(r io.Reader) (*Registry, error) {
	reg := NewRegistry()
	if err := reg.LoadYAML(r); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadYAML adds the definitions of a document to r. Definitions may reference
// units already in r or declared anywhere in the document.
func (r *Registry) LoadYAML(in io.Reader) error {
	var doc Document
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return unitErrorf("LoadYAML", fmt.Errorf("%w: %v", ErrInvalidDefinition, err))
	}
	return r.Load(doc)
}

// Load adds the definitions of doc to r.
func (r *Registry) Load(doc Document) error {
	if err := validate.Struct(doc); err != nil {
		return unitErrorf("Load", fmt.Errorf("%w: %v", ErrInvalidDefinition, err))
	}
	for _, pd := range doc.Prefixes {
		v, err := parseValue(pd.Value)
		if err != nil {
			return unitErrorf(pd.Name, err)
		}
		if err := r.AddPrefix(&Prefix{Name: pd.Name, Symbol: pd.Symbol, Value: v}); err != nil {
			return err
		}
	}

	order, err := resolutionOrder(doc.Units)
	if err != nil {
		return err
	}
	for _, def := range order {
		u, err := r.build(def)
		if err != nil {
			return err
		}
		if err := r.Add(u); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) build(def UnitDef) (Unit, error) {
	switch def.Type {
	case "base":
		return NewBase(def.Name), nil

	case "alias":
		first, ok := r.Unit(def.Base)
		if !ok {
			return nil, unitErrorf(def.Name, fmt.Errorf("%w: %q", ErrUnknownUnit, def.Base))
		}
		factor := number.New(1)
		if def.Relation != "" {
			v, err := parseValue(def.Relation)
			if err != nil {
				return nil, unitErrorf(def.Name, err)
			}
			factor = v
		}
		opts := []AliasOption{WithMixWithBase(def.MixWithBase)}
		if def.Offset != "" {
			off, err := parseValue(def.Offset)
			if err != nil {
				return nil, unitErrorf(def.Name, err)
			}
			opts = append(opts, WithOffset(off))
		}
		return NewAlias(def.Name, first, factor, def.Exponent, opts...)

	case "composite":
		parts := make([]Part, 0, len(def.Parts))
		for _, pd := range def.Parts {
			u, ok := r.Unit(pd.Unit)
			if !ok {
				return nil, unitErrorf(def.Name, fmt.Errorf("%w: %q", ErrUnknownUnit, pd.Unit))
			}
			p := Part{Unit: u, Exponent: pd.Exponent}
			if pd.Prefix != "" {
				pre, ok := r.Prefix(pd.Prefix)
				if !ok {
					return nil, unitErrorf(def.Name, fmt.Errorf("%w: %q", ErrUnknownPrefix, pd.Prefix))
				}
				p.Prefix = pre
			}
			parts = append(parts, p)
		}
		return NewComposite(def.Name, parts...)
	}
	return nil, unitErrorf(def.Name, ErrInvalidDefinition)
}

// parseValue accepts an exact decimal ("0.3048") or a fraction of decimals ("5/9").
func parseValue(s string) (number.Number, error) {
	num, den, isFrac := strings.Cut(s, "/")
	n, err := number.ParseDecimal(num)
	if err != nil {
		return number.Number{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	if !isFrac {
		return n, nil
	}
	d, err := number.ParseDecimal(den)
	if err != nil {
		return number.Number{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	q, err := n.Div(d)
	if err != nil {
		return number.Number{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return q, nil
}
