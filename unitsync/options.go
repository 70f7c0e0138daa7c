// SPDX-License-Identifier: MIT

package unitsync

const (
	// DefaultNonLinear leaves offset conversions disabled.
	DefaultNonLinear = false

	// DefaultMaxRounds bounds the collect/absorb fixpoint.
	DefaultMaxRounds = 64
)

const panicMaxRoundsInvalid = "unitsync: WithMaxRounds: rounds must be > 0"

// Option mutates Options.
type Option func(*Options)

// Options holds the effective configuration of Sync.
type Options struct {
	nonLinear bool
	maxRounds int
}

// WithNonLinear enables offset conversions for coefficient·unit terms.
func WithNonLinear(on bool) Option {
	return func(o *Options) { o.nonLinear = on }
}

// WithMaxRounds sets the absorption round limit. Panics when rounds <= 0.
func WithMaxRounds(rounds int) Option {
	if rounds <= 0 {
		panic(panicMaxRoundsInvalid)
	}
	return func(o *Options) { o.maxRounds = rounds }
}

func gatherOptions(opts ...Option) Options {
	o := Options{nonLinear: DefaultNonLinear, maxRounds: DefaultMaxRounds}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
