// Package lopf builds and solves the linear optimal power flow problem for
// a network: dispatch, storage operation and optional capacity expansion
// under DC-linearized power flow, branch limits and an optional CO2 cap.
package lopf

import (
	"fmt"
	"log"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/network"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver/glpk"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver/highslp"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver/simplexlp"
)

// Options configures one solve call.
type Options struct {
	// SolverName selects a registered backend: "highs", "glpk" or
	// "simplex". Empty selects "highs".
	SolverName string

	// SolverOptions is passed to the backend uninterpreted.
	SolverOptions map[string]interface{}

	// KeepFiles persists the serialized problem file.
	KeepFiles bool

	// Snapshots restricts the solve to a subsequence of the network's
	// snapshots. Nil means all of them.
	Snapshots []network.Snapshot

	// ExtraFunctionality is invoked once, after the base variables,
	// constraints and objective exist and before the solver call. It
	// may add variables, constraints and cost terms to the program.
	ExtraFunctionality func(*lp.Program, []network.Snapshot) error

	// Adapter overrides backend selection. Used by tests.
	Adapter solver.Adapter
}

// Result reports the solve outcome. Output attributes on the network are
// populated only when Status is solver.Optimal.
type Result struct {
	Status    solver.Status
	Objective float64
}

func adapterFor(name string) (solver.Adapter, error) {
	switch name {
	case "", "highs":
		return highslp.Adapter{}, nil
	case "glpk":
		return glpk.Adapter{}, nil
	case "simplex":
		return simplexlp.Adapter{}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}

// Solve validates the network, assembles the linear program, hands it to
// the selected solver backend and, on an optimal outcome, writes the solved
// values back onto the network's output attributes. Configuration errors
// abort before any solver work; infeasible, unbounded, timeout and solver
// failure come back as the corresponding status.
func Solve(net *network.Network, opts Options) (Result, error) {
	if err := net.Validate(); err != nil {
		return Result{}, err
	}

	adapter := opts.Adapter
	if adapter == nil {
		var err error
		adapter, err = adapterFor(opts.SolverName)
		if err != nil {
			return Result{}, err
		}
	}

	snaps := opts.Snapshots
	if snaps == nil {
		snaps = net.Snapshots
	}

	prog, err := lp.New()
	if err != nil {
		return Result{}, err
	}

	m := newModel(prog, net, snaps)
	m.declareGenerators()
	m.declareStorageUnits()
	m.declareStores()
	m.declareLinks()
	m.declareAngles()
	m.declarePassiveBranchFlows()
	m.assembleBalance()
	m.assembleCO2()
	m.assembleObjective()

	if opts.ExtraFunctionality != nil {
		if err := opts.ExtraFunctionality(prog, snaps); err != nil {
			return Result{}, fmt.Errorf("extra functionality: %w", err)
		}
	}

	log.Printf("[LOPF] solving %s: %d variables, %d constraints", prog.PID(), prog.NumVars(), prog.NumRows())

	sol, err := adapter.Solve(prog, solver.Options{
		SolverOptions: opts.SolverOptions,
		KeepFiles:     opts.KeepFiles,
	})
	if err != nil {
		return Result{Status: sol.Status}, err
	}

	log.Printf("[LOPF] solver status: %s", sol.Status)
	if sol.Status == solver.Optimal {
		m.writeResults(sol)
	}
	return Result{Status: sol.Status, Objective: sol.Objective}, nil
}
