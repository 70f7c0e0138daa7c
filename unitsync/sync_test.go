// SPDX-License-Identifier: MIT

package unitsync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvcas/expr"
	"github.com/katalvlaran/lvcas/number"
	"github.com/katalvlaran/lvcas/units"
	"github.com/katalvlaran/lvcas/unitsync"
)

type SyncSuite struct {
	suite.Suite
	ctx context.Context
	reg *units.Registry
}

func (s *SyncSuite) SetupTest() {
	reg, err := units.DefaultRegistry()
	require.NoError(s.T(), err)
	s.reg = reg
	s.ctx = context.Background()
}

func (s *SyncSuite) u(name string) *expr.Node {
	u, ok := s.reg.Unit(name)
	s.Require().True(ok, "unit %q must be registered", name)
	return expr.Unit(u)
}

func (s *SyncSuite) prefixed(prefix, name string) *expr.Node {
	u, ok := s.reg.Unit(name)
	s.Require().True(ok)
	p, ok := s.reg.Prefix(prefix)
	s.Require().True(ok)
	return expr.PrefixedUnit(u, p)
}

func (s *SyncSuite) decimal(v string) *expr.Node {
	n, err := number.ParseDecimal(v)
	s.Require().NoError(err)
	return expr.Num(n)
}

func (s *SyncSuite) sync(n *expr.Node, opts ...unitsync.Option) bool {
	changed, err := unitsync.Sync(s.ctx, n, opts...)
	s.Require().NoError(err)
	return changed
}

func (s *SyncSuite) TestAliasIntoDerivedAlias() {
	n := expr.Sum(s.u("hour"), expr.Product(expr.Int(30), s.u("minute")))
	s.True(s.sync(n))
	want := expr.Product(expr.Frac(3, 2), s.u("hour"))
	s.True(n.Equals(want, false, false), "got %s", n)

	s.False(s.sync(n), "a synchronized tree is stable")
}

func (s *SyncSuite) TestLongerChainWins() {
	n := expr.Sum(s.u("day"), expr.Product(expr.Int(12), s.u("hour")))
	s.True(s.sync(n))
	s.True(n.Equals(expr.Product(expr.Frac(3, 2), s.u("day")), false, false), "got %s", n)
}

func (s *SyncSuite) TestMixedPrefixes() {
	n := expr.Sum(s.prefixed("kilo", "meter"), s.u("meter"))
	s.True(s.sync(n))
	s.True(n.Equals(expr.Product(expr.Int(1001), s.u("meter")), false, false), "got %s", n)
}

func (s *SyncSuite) TestSharedPrefixKept() {
	n := expr.Sum(s.prefixed("kilo", "meter"), expr.Product(expr.Int(2), s.prefixed("kilo", "meter")))
	s.False(s.sync(n))
}

func (s *SyncSuite) TestSiblingAliasesMeetAtRoot() {
	n := expr.Product(s.u("inch"), s.u("liter"))
	s.True(s.sync(n))
	want := expr.Product(expr.Frac(127, 5000000), expr.Pow(s.u("meter"), expr.Int(4)))
	s.True(n.Equals(want, false, false), "got %s", n)
}

func (s *SyncSuite) TestCompositeAbsorbed() {
	newton, _ := s.reg.Unit("newton")
	parts := expr.ExpandComposite(newton.(*units.CompositeUnit))
	n := expr.Sub(expr.Product(expr.Int(2), s.u("newton")), parts.Clone())
	s.True(s.sync(n))
	s.True(n.Equals(parts, false, false), "got %s", n)
}

func (s *SyncSuite) TestAliasOfComposite() {
	n := expr.Sum(s.u("calorie"), s.u("joule"))
	s.True(s.sync(n))
	want := expr.Product(s.decimal("5.184"), s.u("joule"))
	s.True(n.Equals(want, false, false), "got %s", n)
}

func (s *SyncSuite) TestOffsetConversion() {
	build := func() *expr.Node {
		return expr.Vector(
			expr.Product(expr.Int(20), s.u("celsius")),
			expr.Product(expr.Int(300), s.u("kelvin")),
		)
	}

	n := build()
	s.False(s.sync(n), "offsets are off by default")
	s.True(n.Equals(build(), false, false))

	s.True(s.sync(n, unitsync.WithNonLinear(true)))
	want := expr.Product(s.decimal("293.15"), s.u("kelvin"))
	s.True(n.Child(0).Equals(want, false, false), "got %s", n.Child(0))
	s.True(n.Child(1).Equals(expr.Product(expr.Int(300), s.u("kelvin")), false, false))
}

func (s *SyncSuite) TestNoUnits() {
	x := expr.NewUnknown("x", expr.Assumptions{})
	n := expr.Sum(expr.Var(x), expr.Int(1))
	s.False(s.sync(n))
	s.Equal("x + 1", n.String())
}

func (s *SyncSuite) TestFixpointLimit() {
	n := expr.Sum(s.u("joule"), s.u("meter"))
	orig := n.Clone()
	_, err := unitsync.Sync(s.ctx, n, unitsync.WithMaxRounds(1))
	s.ErrorIs(err, unitsync.ErrFixpoint)
	s.True(n.Equals(orig, false, false))
}

func (s *SyncSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	n := expr.Sum(s.u("hour"), s.u("minute"))
	orig := n.Clone()
	_, err := unitsync.Sync(ctx, n)
	s.ErrorIs(err, context.Canceled)
	s.True(n.Equals(orig, false, false))
}

func TestSyncSuite(t *testing.T) {
	suite.Run(t, new(SyncSuite))
}

func TestWithMaxRoundsPanics(t *testing.T) {
	require.Panics(t, func() { unitsync.WithMaxRounds(0) })
}
