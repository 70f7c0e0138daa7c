// SPDX-License-Identifier: MIT

package calc

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvcas/matrix"
	"github.com/katalvlaran/lvcas/units"
	"github.com/katalvlaran/lvcas/unitsync"
)

// DefaultLevel is the minimum level written by the diagnostics logger.
const DefaultLevel = zerolog.WarnLevel

const (
	panicOutputNil   = "calc: WithOutput: writer must be non-nil"
	panicRegistryNil = "calc: WithRegistry: registry must be non-nil"
)

// Option configures a Calculator.
type Option func(*Options)

// Options holds the effective Calculator configuration.
type Options struct {
	level      zerolog.Level
	output     io.Writer
	console    bool
	registry   *units.Registry
	matrixOpts []matrix.Option
	syncOpts   []unitsync.Option
}

// WithLevel sets the minimum diagnostics level.
func WithLevel(l zerolog.Level) Option {
	return func(o *Options) { o.level = l }
}

// WithOutput sets the diagnostics sink. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicOutputNil)
	}
	return func(o *Options) { o.output = w }
}

// WithConsole switches diagnostics from JSON lines to human-readable text.
func WithConsole(on bool) Option {
	return func(o *Options) { o.console = on }
}

// WithRegistry replaces the embedded default unit definitions. Panics on nil.
func WithRegistry(r *units.Registry) Option {
	if r == nil {
		panic(panicRegistryNil)
	}
	return func(o *Options) { o.registry = r }
}

// WithMatrixOptions sets the options passed to every matrix operation.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// WithSyncOptions sets the options passed to every unit synchronization.
func WithSyncOptions(opts ...unitsync.Option) Option {
	return func(o *Options) { o.syncOpts = append(o.syncOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{level: DefaultLevel, output: os.Stderr}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
