package solver

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
)

func TestWriteLP(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 100)
	y := p.AddVar("y", lp.NegInf(), lp.Inf())
	z := p.AddVar("z", 5, 5)
	p.AddCost(x, 10)
	p.AddCost(y, -2.5)

	p.AddConstraint("balance", 50, lp.Expr{}.Add(x, 1).Add(y, 1), 50)
	p.AddConstraint("flow", -30, lp.Expr{}.Add(y, 1).Add(z, -1), 30)
	p.AddConstraint("cap", lp.NegInf(), lp.Expr{}.Add(x, 1), 80)

	var b strings.Builder
	written, err := WriteLP(&b, p)
	assert.NilError(t, err)

	out := b.String()
	assert.Assert(t, strings.Contains(out, "Minimize"))
	assert.Assert(t, strings.Contains(out, "+ 10 x0"))
	assert.Assert(t, strings.Contains(out, "- 2.5 x1"))
	assert.Assert(t, strings.Contains(out, "r0: + 1 x0 + 1 x1 = 50"))
	assert.Assert(t, strings.Contains(out, "r1_l: + 1 x1 - 1 x2 >= -30"))
	assert.Assert(t, strings.Contains(out, "r1_u: + 1 x1 - 1 x2 <= 30"))
	assert.Assert(t, strings.Contains(out, "r2: + 1 x0 <= 80"))
	assert.Assert(t, strings.Contains(out, "0 <= x0 <= 100"))
	assert.Assert(t, strings.Contains(out, "x1 free"))
	assert.Assert(t, strings.Contains(out, "x2 = 5"))
	assert.Assert(t, strings.HasSuffix(out, "End\n"))

	// the ranged row occupies two written rows, both referring to
	// program row 1
	assert.DeepEqual(t, written, []int{0, 1, 1, 2})
}

func TestWriteLPEmptyObjective(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 1)
	p.AddConstraint("fix", 1, lp.Expr{}.Add(x, 1), 1)

	var b strings.Builder
	_, err = WriteLP(&b, p)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(b.String(), "obj: 0 x0"))
}

func TestWriteLPDefinesUnreferencedColumns(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 1)
	p.AddVar("orphan", 0, 0)
	p.AddCost(x, 1)
	p.AddConstraint("fix", 1, lp.Expr{}.Add(x, 1), 1)

	var b strings.Builder
	_, err = WriteLP(&b, p)
	assert.NilError(t, err)

	// a column used by no row still has to appear before its bounds line
	assert.Assert(t, strings.Contains(b.String(), "+ 0 x1"))
	assert.Assert(t, strings.Contains(b.String(), "x1 = 0"))
}

func TestWriteLPRejectsEmptyRow(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	p.AddVar("x", 0, 1)
	p.AddConstraint("empty", 0, lp.Expr{}, 0)

	var b strings.Builder
	_, err = WriteLP(&b, p)
	assert.ErrorContains(t, err, "no terms")
}

func TestWriteLPRejectsFreeRow(t *testing.T) {
	p, err := lp.New()
	assert.NilError(t, err)

	x := p.AddVar("x", 0, 1)
	p.AddConstraint("free", lp.NegInf(), lp.Expr{}.Add(x, 1), lp.Inf())

	var b strings.Builder
	_, err = WriteLP(&b, p)
	assert.ErrorContains(t, err, "unbounded on both sides")
}
