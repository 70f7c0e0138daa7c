// SPDX-License-Identifier: MIT

package calc

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/matrix"
	"github.com/katalvlaran/lvcas/units"
	"github.com/katalvlaran/lvcas/unitsync"
)

// Calculator holds the state shared by kernel operations. It is not safe
// for concurrent mutation; define variables and functions before sharing it.
type Calculator struct {
	log        zerolog.Logger
	reg        *units.Registry
	vars       map[string]*expr.Variable
	funcs      map[string]expr.Function
	matrixOpts []matrix.Option
	syncOpts   []unitsync.Option
}

// New builds a Calculator. Without WithRegistry it loads the embedded
// default unit definitions.
func New(opts ...Option) (*Calculator, error) {
	o := gatherOptions(opts...)
	reg := o.registry
	if reg == nil {
		var err error
		if reg, err = units.DefaultRegistry(); err != nil {
			return nil, calcErrorf("new", err)
		}
	}

	var w io.Writer = o.output
	if o.console {
		w = zerolog.ConsoleWriter{Out: o.output, NoColor: true}
	}
	log := zerolog.New(w).Level(o.level).With().Timestamp().Logger()

	return &Calculator{
		log:        log,
		reg:        reg,
		vars:       make(map[string]*expr.Variable),
		funcs:      make(map[string]expr.Function),
		matrixOpts: o.matrixOpts,
		syncOpts:   o.syncOpts,
	}, nil
}

// Logger returns the diagnostics logger.
func (c *Calculator) Logger() zerolog.Logger { return c.log }

// Registry returns the unit registry.
func (c *Calculator) Registry() *units.Registry { return c.reg }

// Context returns parent carrying the calculator's logger.
func (c *Calculator) Context(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return c.log.WithContext(parent)
}

// Error reports a user-visible diagnostic. The logger attached to ctx is
// used when present, the calculator's own otherwise.
func (c *Calculator) Error(ctx context.Context, isWarning bool, msg string, args ...any) {
	l := &c.log
	if ctx != nil {
		if cl := zerolog.Ctx(ctx); cl.GetLevel() != zerolog.Disabled {
			l = cl
		}
	}
	ev := l.Error()
	if isWarning {
		ev = l.Warn()
	}
	ev.Str("component", "lvcas").Msgf(msg, args...)
}

// Unit returns a unit node for name, which may carry a prefix
// ("kilometer").
func (c *Calculator) Unit(name string) (*expr.Node, error) {
	u, p, ok := c.reg.Lookup(name)
	if !ok {
		return nil, calcErrorf(name, ErrUnknownUnit)
	}
	return expr.PrefixedUnit(u, p), nil
}

// DefineVariable registers v under its name.
func (c *Calculator) DefineVariable(v *expr.Variable) error {
	if _, dup := c.vars[v.Name]; dup {
		return calcErrorf(v.Name, ErrDuplicate)
	}
	c.vars[v.Name] = v
	return nil
}

// Variable looks up a variable by name.
func (c *Calculator) Variable(name string) (*expr.Variable, error) {
	v, ok := c.vars[name]
	if !ok {
		return nil, calcErrorf(name, ErrUnknownVariable)
	}
	return v, nil
}

// Var returns a node referencing the named variable.
func (c *Calculator) Var(name string) (*expr.Node, error) {
	v, err := c.Variable(name)
	if err != nil {
		return nil, err
	}
	return expr.Var(v), nil
}

// DefineFunction registers f under its name.
func (c *Calculator) DefineFunction(f expr.Function) error {
	if _, dup := c.funcs[f.Name()]; dup {
		return calcErrorf(f.Name(), ErrDuplicate)
	}
	c.funcs[f.Name()] = f
	return nil
}

// Function looks up a function by name.
func (c *Calculator) Function(name string) (expr.Function, error) {
	f, ok := c.funcs[name]
	if !ok {
		return nil, calcErrorf(name, ErrUnknownFunction)
	}
	return f, nil
}

// Call returns a call node of the named function.
func (c *Calculator) Call(name string, args ...*expr.Node) (*expr.Node, error) {
	f, err := c.Function(name)
	if err != nil {
		return nil, err
	}
	return expr.Call(f, args...), nil
}
