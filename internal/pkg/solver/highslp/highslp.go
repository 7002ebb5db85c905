// Package highslp solves programs in-process through the HiGHS bindings.
// HiGHS reports dual values on every row, which downstream becomes the
// nodal marginal price, so this is the preferred backend.
package highslp

import (
	"fmt"
	"log"
	"os"

	highs "github.com/bartolsthoorn/gohighs/highs"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

// Adapter is the HiGHS backend.
type Adapter struct{}

// Solve maps the program onto a highs.Model and runs it. Entries of
// SolverOptions are handed to HiGHS by name and type, uninterpreted.
func (Adapter) Solve(p *lp.Program, opts solver.Options) (solver.Solution, error) {
	m := &highs.Model{
		ColCosts: p.Costs(),
		ColLower: p.Lower(),
		ColUpper: p.Upper(),
		Offset:   p.Offset(),
	}
	for i, row := range p.Rows() {
		m.RowLower = append(m.RowLower, row.Lower)
		m.RowUpper = append(m.RowUpper, row.Upper)
		for _, t := range row.Expr {
			m.ConstMatrix = append(m.ConstMatrix, highs.Nonzero{Row: i, Col: int(t.Var), Val: t.Coeff})
		}
	}

	if opts.KeepFiles {
		keepFile(p)
	}

	sol, err := m.Solve(solveOptions(opts.SolverOptions)...)
	if err != nil {
		return solver.Solution{Status: solver.Failed}, fmt.Errorf("highs: %w", err)
	}

	switch sol.Status {
	case highs.ModelStatusOptimal:
		return solver.Solution{
			Status:    solver.Optimal,
			Objective: sol.Objective,
			Primal:    sol.ColValues,
			RowDuals:  sol.RowDuals,
		}, nil
	case highs.ModelStatusInfeasible:
		return solver.Solution{Status: solver.Infeasible}, nil
	case highs.ModelStatusUnbounded:
		return solver.Solution{Status: solver.Unbounded}, nil
	case highs.ModelStatusTimeLimit:
		return solver.Solution{Status: solver.Timeout}, nil
	default:
		return solver.Solution{Status: solver.Failed}, fmt.Errorf("highs: model status %v", sol.Status)
	}
}

func solveOptions(raw map[string]interface{}) []highs.SolveOption {
	opts := []highs.SolveOption{highs.WithOutput(false)}
	for name, value := range raw {
		switch v := value.(type) {
		case bool:
			opts = append(opts, highs.WithBoolOption(name, v))
		case int:
			opts = append(opts, highs.WithIntOption(name, v))
		case float64:
			opts = append(opts, highs.WithFloatOption(name, v))
		case string:
			opts = append(opts, highs.WithStringOption(name, v))
		default:
			log.Printf("[HiGHS] dropping option %q of unsupported type %T", name, value)
		}
	}
	return opts
}

func keepFile(p *lp.Program) {
	name := "lopf-" + p.PID().String() + ".lp"
	f, err := os.Create(name)
	if err != nil {
		log.Printf("[HiGHS] keep files: %v", err)
		return
	}
	defer f.Close()
	if _, err := solver.WriteLP(f, p); err != nil {
		log.Printf("[HiGHS] keep files: %v", err)
		return
	}
	log.Printf("[HiGHS] problem file kept at %s", name)
}
