package simplexlp

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gotest.tools/v3/assert"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

const testTol = 1e-6

func TestSolveBoundedMinimum(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 10)
	p.AddCost(x, 10)
	p.AddConstraint("demand", 5, lp.Expr{}.Add(x, 1), lp.Inf())
	p.AddOffset(7)

	sol, err := Adapter{}.Solve(p, solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Optimal)
	assert.Assert(t, scalar.EqualWithinAbs(sol.Primal[x], 5, testTol))
	assert.Assert(t, scalar.EqualWithinAbs(sol.Objective, 57, testTol))
}

func TestSolveEqualityAndBounds(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 4)
	y := p.AddVar("y", 0, lp.Inf())
	p.AddCost(x, 1)
	p.AddCost(y, 2)
	p.AddConstraint("balance", 10, lp.Expr{}.Add(x, 1).Add(y, 1), 10)

	sol, err := Adapter{}.Solve(p, solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Optimal)
	assert.Assert(t, scalar.EqualWithinAbs(sol.Primal[x], 4, testTol))
	assert.Assert(t, scalar.EqualWithinAbs(sol.Primal[y], 6, testTol))
	assert.Assert(t, scalar.EqualWithinAbs(sol.Objective, 16, testTol))
}

func TestSolveRangedRow(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", lp.NegInf(), lp.Inf())
	p.AddCost(x, 1)
	p.AddConstraint("window", -3, lp.Expr{}.Add(x, 1), 3)

	sol, err := Adapter{}.Solve(p, solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Optimal)
	assert.Assert(t, scalar.EqualWithinAbs(sol.Primal[x], -3, testTol))
}

func TestSolveInfeasible(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 4)
	p.AddCost(x, 1)
	p.AddConstraint("demand", 5, lp.Expr{}.Add(x, 1), lp.Inf())

	sol, err := Adapter{}.Solve(p, solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Infeasible)
}

func TestSolveUnbounded(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, lp.Inf())
	p.AddCost(x, -1)

	sol, err := Adapter{}.Solve(p, solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Unbounded)
}

func TestSolveEmptyProgram(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	sol, err := Adapter{}.Solve(p, solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Optimal)
}
