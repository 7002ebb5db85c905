package solver

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
)

// WriteLP serializes a program in CPLEX LP format. Columns are written as
// x<id> and rows as r<id>; a ranged row is split into the two rows r<id>_l
// and r<id>_u because the format has no ranged rows. The returned slice
// maps written-row order back to program row ids so a solution parser can
// reassemble duals: for a split row at most one side is binding at an
// optimum, the other side's marginal is zero, so the two duals sum to the
// dual of the original ranged row.
func WriteLP(w io.Writer, p *lp.Program) ([]int, error) {
	var written []int

	// a column only exists once it appears in the objective or a row, so
	// variables living purely in the Bounds section get a zero cost term
	seen := make([]bool, p.NumVars())
	for _, row := range p.Rows() {
		for _, t := range row.Expr {
			seen[t.Var] = true
		}
	}

	var b strings.Builder
	b.WriteString("\\ problem: " + p.PID().String() + "\n")
	b.WriteString("Minimize\n obj:")
	wrote := false
	for v, c := range p.Costs() {
		if c != 0 {
			writeTerm(&b, c, v)
			wrote = true
		}
	}
	for v, c := range p.Costs() {
		if c == 0 && !seen[v] {
			writeTerm(&b, 0, v)
			wrote = true
		}
	}
	if !wrote {
		// the format requires a non-empty objective
		b.WriteString(" 0 x0")
	}
	b.WriteString("\nSubject To\n")

	for i, row := range p.Rows() {
		if len(row.Expr) == 0 {
			return nil, fmt.Errorf("row %q has no terms", row.Name)
		}
		loFinite := !math.IsInf(row.Lower, -1)
		upFinite := !math.IsInf(row.Upper, 1)
		switch {
		case loFinite && upFinite && row.Lower == row.Upper:
			writeRow(&b, fmt.Sprintf("r%d", i), row.Expr, "=", row.Lower)
			written = append(written, i)
		case loFinite && upFinite:
			writeRow(&b, fmt.Sprintf("r%d_l", i), row.Expr, ">=", row.Lower)
			written = append(written, i)
			writeRow(&b, fmt.Sprintf("r%d_u", i), row.Expr, "<=", row.Upper)
			written = append(written, i)
		case loFinite:
			writeRow(&b, fmt.Sprintf("r%d", i), row.Expr, ">=", row.Lower)
			written = append(written, i)
		case upFinite:
			writeRow(&b, fmt.Sprintf("r%d", i), row.Expr, "<=", row.Upper)
			written = append(written, i)
		default:
			return nil, fmt.Errorf("row %q is unbounded on both sides", row.Name)
		}
	}

	b.WriteString("Bounds\n")
	lower, upper := p.Lower(), p.Upper()
	for v := range lower {
		lo, up := lower[v], upper[v]
		switch {
		case math.IsInf(lo, -1) && math.IsInf(up, 1):
			fmt.Fprintf(&b, " x%d free\n", v)
		case lo == up:
			fmt.Fprintf(&b, " x%d = %s\n", v, num(lo))
		default:
			fmt.Fprintf(&b, " %s <= x%d <= %s\n", boundNum(lo, "-infinity"), v, boundNum(up, "+infinity"))
		}
	}
	b.WriteString("End\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return nil, err
	}
	return written, nil
}

func writeRow(b *strings.Builder, name string, e lp.Expr, op string, rhs float64) {
	b.WriteString(" " + name + ":")
	for _, t := range e {
		writeTerm(b, t.Coeff, int(t.Var))
	}
	fmt.Fprintf(b, " %s %s\n", op, num(rhs))
}

func writeTerm(b *strings.Builder, c float64, v int) {
	if c < 0 {
		fmt.Fprintf(b, " - %s x%d", num(-c), v)
	} else {
		fmt.Fprintf(b, " + %s x%d", num(c), v)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func boundNum(v float64, inf string) string {
	if math.IsInf(v, -1) || math.IsInf(v, 1) {
		return inf
	}
	return num(v)
}
