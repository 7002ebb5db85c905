// Package simplexlp solves programs in-process with gonum's dense simplex
// implementation. It carries no external solver dependency, which makes it
// the fallback backend, but it does not expose dual values and is only
// suited to modestly sized problems.
package simplexlp

import (
	"errors"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

const tol = 1e-7

// Adapter is the gonum simplex backend.
type Adapter struct{}

// Solve converts the program to standard form and runs the simplex method.
// SolverOptions are ignored: the simplex has no tunables to pass through.
func (Adapter) Solve(p *lp.Program, opts solver.Options) (solver.Solution, error) {
	if opts.KeepFiles {
		keepFile(p)
	}

	n := p.NumVars()
	if n == 0 {
		return solver.Solution{Status: solver.Optimal}, nil
	}

	ineq, eq := split(p)

	var g, a mat.Matrix
	var h, b []float64
	if len(ineq.rhs) > 0 {
		g = mat.NewDense(len(ineq.rhs), n, ineq.coeffs)
		h = ineq.rhs
	}
	if len(eq.rhs) > 0 {
		a = mat.NewDense(len(eq.rhs), n, eq.coeffs)
		b = eq.rhs
	}

	cStd, aStd, bStd := gonumlp.Convert(p.Costs(), g, h, a, b)
	_, xs, err := gonumlp.Simplex(cStd, aStd, bStd, tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, gonumlp.ErrInfeasible):
			return solver.Solution{Status: solver.Infeasible}, nil
		case errors.Is(err, gonumlp.ErrUnbounded):
			return solver.Solution{Status: solver.Unbounded}, nil
		default:
			return solver.Solution{Status: solver.Failed}, err
		}
	}

	// Convert splits every variable into positive and negative parts,
	// laid out [xp, xn, slack].
	x := make([]float64, n)
	for i := range x {
		x[i] = xs[i] - xs[n+i]
	}

	obj := p.Offset()
	for i, c := range p.Costs() {
		obj += c * x[i]
	}

	return solver.Solution{Status: solver.Optimal, Objective: obj, Primal: x}, nil
}

// rowSet is a dense constraint block under assembly.
type rowSet struct {
	n      int
	coeffs []float64
	rhs    []float64
}

func (r *rowSet) add(e lp.Expr, scale, rhs float64) {
	row := make([]float64, r.n)
	for _, t := range e {
		row[t.Var] += scale * t.Coeff
	}
	r.coeffs = append(r.coeffs, row...)
	r.rhs = append(r.rhs, rhs)
}

func (r *rowSet) addUnit(v lp.VarID, scale, rhs float64) {
	r.add(lp.Expr{{Var: v, Coeff: 1}}, scale, rhs)
}

// split expresses the program's ranged rows and variable bounds as the
// G x <= h and A x = b blocks gonum's Convert expects. Ranged rows become
// two inequalities; fixed bounds and equality rows go into the equality
// block directly.
func split(p *lp.Program) (ineq, eq rowSet) {
	n := p.NumVars()
	ineq = rowSet{n: n}
	eq = rowSet{n: n}

	for _, row := range p.Rows() {
		loFinite := !math.IsInf(row.Lower, -1)
		upFinite := !math.IsInf(row.Upper, 1)
		if loFinite && upFinite && row.Lower == row.Upper {
			eq.add(row.Expr, 1, row.Lower)
			continue
		}
		if upFinite {
			ineq.add(row.Expr, 1, row.Upper)
		}
		if loFinite {
			ineq.add(row.Expr, -1, -row.Lower)
		}
	}

	lower, upper := p.Lower(), p.Upper()
	for v := range lower {
		lo, up := lower[v], upper[v]
		if lo == up && !math.IsInf(lo, 0) {
			eq.addUnit(lp.VarID(v), 1, lo)
			continue
		}
		if !math.IsInf(up, 1) {
			ineq.addUnit(lp.VarID(v), 1, up)
		}
		if !math.IsInf(lo, -1) {
			ineq.addUnit(lp.VarID(v), -1, -lo)
		}
	}
	return ineq, eq
}

func keepFile(p *lp.Program) {
	name := "lopf-" + p.PID().String() + ".lp"
	f, err := os.Create(name)
	if err != nil {
		log.Printf("[Simplex] keep files: %v", err)
		return
	}
	defer f.Close()
	if _, err := solver.WriteLP(f, p); err != nil {
		log.Printf("[Simplex] keep files: %v", err)
		return
	}
	log.Printf("[Simplex] problem file kept at %s", name)
}
