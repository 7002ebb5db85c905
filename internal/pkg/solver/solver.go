// Package solver defines the contract between the LOPF engine and the
// LP/MILP solver backends, and the status taxonomy reported upward.
package solver

import "github.com/ohowland/cgc_lopf/internal/pkg/lp"

// Status is the outcome of one solver invocation. Only Optimal carries a
// usable solution; every other status is reported without partial results.
// The zero value is Failed so that a forgotten status never reads as a
// solved problem.
type Status int

const (
	Failed Status = iota
	Optimal
	Infeasible
	Unbounded
	Timeout
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case Timeout:
		return "timeout"
	default:
		return "failed"
	}
}

// Solution is the solver's answer. Primal is indexed by lp.VarID and
// RowDuals by lp.ConID. RowDuals is nil for backends that do not expose
// dual values.
type Solution struct {
	Status    Status
	Objective float64
	Primal    []float64
	RowDuals  []float64
}

// Options configures one solver invocation. SolverOptions is passed through
// to the backend uninterpreted; KeepFiles persists the serialized problem
// file instead of discarding it.
type Options struct {
	SolverOptions map[string]interface{}
	KeepFiles     bool
}

// Adapter serializes a program into a backend's form, runs the backend and
// reports the outcome. A non-nil error accompanies the Failed status only.
type Adapter interface {
	Solve(p *lp.Program, opts Options) (Solution, error)
}
