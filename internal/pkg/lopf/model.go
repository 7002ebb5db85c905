package lopf

import (
	"math"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/network"
)

// model carries the variable and row bookkeeping built up while the program
// is assembled: which column belongs to which (asset, snapshot) pair, the
// flow expression of every passive branch, the injection expression under
// construction at every bus, and the balance row ids whose duals become
// marginal prices.
type model struct {
	prog *lp.Program
	net  *network.Network

	snaps  []network.Snapshot
	w      []float64
	busIdx map[string]int

	genP   [][]lp.VarID
	genNom []lp.Nominal

	suDispatch [][]lp.VarID
	suStore    [][]lp.VarID
	suSOC      [][]lp.VarID
	suSpill    [][]lp.VarID
	suNom      []lp.Nominal

	stP   [][]lp.VarID
	stE   [][]lp.VarID
	stNom []lp.Nominal

	linkP   [][]lp.VarID
	linkNom []lp.Nominal

	passives []*network.PassiveBranch
	pbImp    []float64
	pbFlow   [][]lp.Expr
	pbNom    []lp.Nominal

	angle [][]lp.VarID

	// injection expression and summed load per (bus, snapshot)
	inj     [][]lp.Expr
	loadSum [][]float64

	balanceRows [][]lp.ConID
}

func newModel(prog *lp.Program, net *network.Network, snaps []network.Snapshot) *model {
	m := &model{
		prog:     prog,
		net:      net,
		snaps:    snaps,
		busIdx:   net.BusIndex(),
		passives: net.PassiveBranches(),
	}
	m.w = make([]float64, len(snaps))
	for i, t := range snaps {
		m.w[i] = net.Weighting(t)
	}
	m.inj = make([][]lp.Expr, len(net.Buses))
	m.loadSum = make([][]float64, len(net.Buses))
	for i := range net.Buses {
		m.inj[i] = make([]lp.Expr, len(snaps))
		m.loadSum[i] = make([]float64, len(snaps))
	}
	for _, l := range net.Loads {
		bi := m.busIdx[l.Bus]
		for ti, t := range snaps {
			m.loadSum[bi][ti] += l.PSet[t]
		}
	}
	return m
}

// nominal resolves an asset's capacity for bound construction: a constant
// for fixed assets, a fresh capacity-extension variable for extendable
// ones. NaN limits mean the default [0, +inf) range.
func (m *model) nominal(name string, value float64, extendable bool, min, max float64) lp.Nominal {
	if !extendable {
		return lp.FixedNominal(value)
	}
	lower := 0.0
	if !math.IsNaN(min) {
		lower = min
	}
	upper := lp.Inf()
	if !math.IsNaN(max) {
		upper = max
	}
	return lp.VarNominal(m.prog.AddVar(name, lower, upper))
}

// addToBalance accumulates a variable term onto a bus's injection.
func (m *model) addToBalance(bus string, ti int, v lp.VarID, coeff float64) {
	bi := m.busIdx[bus]
	m.inj[bi][ti] = m.inj[bi][ti].Add(v, coeff)
}

// addExprToBalance accumulates a scaled expression onto a bus's injection.
func (m *model) addExprToBalance(bus string, ti int, e lp.Expr, scale float64) {
	bi := m.busIdx[bus]
	m.inj[bi][ti] = m.inj[bi][ti].AddExpr(e, scale)
}
