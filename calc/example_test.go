// SPDX-License-Identifier: MIT

package calc_test

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/lvcas/calc"
	"github.com/katalvlaran/lvcas/expr"
)

func ExampleCalculator_SyncUnits() {
	c, err := calc.New(calc.WithOutput(io.Discard))
	if err != nil {
		panic(err)
	}
	km, _ := c.Unit("kilometer")
	m, _ := c.Unit("meter")

	n := expr.Sum(km, m)
	changed, err := c.SyncUnits(context.Background(), n)
	if err != nil {
		panic(err)
	}
	fmt.Println(changed, n.Child(0))
	// Output: true 1001
}
