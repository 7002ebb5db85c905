package lp

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestAddVarLookup(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 10)
	y := p.AddVar("y", NegInf(), Inf())

	assert.Equal(t, p.NumVars(), 2)
	assert.Equal(t, p.VarName(x), "x")

	got, ok := p.Var("y")
	assert.Assert(t, ok)
	assert.Equal(t, got, y)

	_, ok = p.Var("z")
	assert.Assert(t, !ok)

	lo, up := p.VarBounds(x)
	assert.Equal(t, lo, 0.0)
	assert.Equal(t, up, 10.0)
}

func TestAddConstraintMergesDuplicates(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 1)
	y := p.AddVar("y", 0, 1)

	e := Expr{}.Add(x, 1).Add(y, 2).Add(x, 3)
	id := p.AddConstraint("c", 0, e, 6)

	row := p.Rows()[id]
	assert.Equal(t, len(row.Expr), 2)
	assert.Equal(t, row.Expr[0].Var, x)
	assert.Equal(t, row.Expr[0].Coeff, 4.0)
	assert.Equal(t, row.Expr[1].Var, y)
	assert.Equal(t, row.Expr[1].Coeff, 2.0)
}

func TestAddCostAccumulates(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 1)
	p.AddCost(x, 2)
	p.AddCost(x, 3)
	p.AddOffset(7)

	assert.Equal(t, p.Costs()[x], 5.0)
	assert.Equal(t, p.Offset(), 7.0)
}

func TestExprAddExprScales(t *testing.T) {
	p, err := New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 1)
	y := p.AddVar("y", 0, 1)

	flow := Expr{}.Add(x, 0.5).Add(y, -0.5)
	e := Expr{}.AddExpr(flow, -2)

	assert.Equal(t, len(e), 2)
	assert.Equal(t, e[0].Coeff, -1.0)
	assert.Equal(t, e[1].Coeff, 1.0)
	// source expression untouched
	assert.Equal(t, flow[0].Coeff, 0.5)
}

func TestNominalVariants(t *testing.T) {
	fixed := FixedNominal(42)
	assert.Assert(t, !fixed.Extendable())
	assert.Equal(t, fixed.Value(), 42.0)

	ext := VarNominal(VarID(3))
	assert.Assert(t, ext.Extendable())
	assert.Equal(t, ext.Var(), VarID(3))
}
