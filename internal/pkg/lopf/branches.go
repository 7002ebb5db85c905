package lopf

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
)

// declareLinks creates the free flow variable of every controllable branch.
// The flow is withdrawn from bus0 and injected into bus1 scaled by the link
// efficiency; the conversion loss is not split between the terminals.
func (m *model) declareLinks() {
	for _, l := range m.net.Links {
		nom := m.nominal(fmt.Sprintf("link_p_nom(%s)", l.Name), l.PNom, l.PNomExtendable, l.PNomMin, l.PNomMax)
		m.linkNom = append(m.linkNom, nom)

		vars := make([]lp.VarID, len(m.snaps))
		for ti, t := range m.snaps {
			name := fmt.Sprintf("link_p(%s,%s)", l.Name, t)
			if !nom.Extendable() {
				vars[ti] = m.prog.AddVar(name, l.PMinPU*nom.Value(), l.PMaxPU*nom.Value())
			} else {
				v := m.prog.AddVar(name, lp.NegInf(), lp.Inf())
				m.prog.AddConstraint(name+"_lower", 0,
					lp.Expr{}.Add(v, 1).Add(nom.Var(), -l.PMinPU), lp.Inf())
				m.prog.AddConstraint(name+"_upper", lp.NegInf(),
					lp.Expr{}.Add(v, 1).Add(nom.Var(), -l.PMaxPU), 0)
				vars[ti] = v
			}
			m.addToBalance(l.Bus0, ti, vars[ti], -1)
			m.addToBalance(l.Bus1, ti, vars[ti], l.Efficiency)
		}
		m.linkP = append(m.linkP, vars)
	}
}

// declareAngles creates one voltage-angle variable per (bus, snapshot).
// The bus graph is split into connected components over the passive
// branches, and the first bus of each component is pinned to angle zero:
// without a reference the DC power-flow relations only determine angle
// differences and the program would be degenerate.
func (m *model) declareAngles() {
	g := simple.NewUndirectedGraph()
	for i := range m.net.Buses {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, b := range m.passives {
		n0 := simple.Node(int64(m.busIdx[b.Bus0]))
		n1 := simple.Node(int64(m.busIdx[b.Bus1]))
		g.SetEdge(g.NewEdge(n0, n1))
	}

	reference := make([]bool, len(m.net.Buses))
	for _, component := range topo.ConnectedComponents(g) {
		ref := component[0].ID()
		for _, node := range component[1:] {
			if node.ID() < ref {
				ref = node.ID()
			}
		}
		reference[ref] = true
	}

	m.angle = make([][]lp.VarID, len(m.net.Buses))
	for bi, b := range m.net.Buses {
		vars := make([]lp.VarID, len(m.snaps))
		for ti, t := range m.snaps {
			name := fmt.Sprintf("voltage_angle(%s,%s)", b.Name, t)
			if reference[bi] {
				vars[ti] = m.prog.AddVar(name, 0, 0)
			} else {
				vars[ti] = m.prog.AddVar(name, lp.NegInf(), lp.Inf())
			}
		}
		m.angle[bi] = vars
	}
}

// declarePassiveBranchFlows builds the flow expression of every line and
// transformer: the angle difference across the branch divided by its
// impedance. The flow is not a variable of its own; the capacity rows and
// the nodal balance reference the expression directly.
func (m *model) declarePassiveBranchFlows() {
	m.pbFlow = make([][]lp.Expr, len(m.passives))
	m.pbImp = make([]float64, len(m.passives))

	for bi, b := range m.passives {
		imp := m.net.EffectiveImpedance(b)
		m.pbImp[bi] = imp

		nom := m.nominal(fmt.Sprintf("branch_s_nom(%s,%s)", b.Kind, b.Name), b.SNom, b.SNomExtendable, b.SNomMin, b.SNomMax)
		m.pbNom = append(m.pbNom, nom)

		flows := make([]lp.Expr, len(m.snaps))
		for ti, t := range m.snaps {
			flow := lp.Expr{}.
				Add(m.angle[m.busIdx[b.Bus0]][ti], 1/imp).
				Add(m.angle[m.busIdx[b.Bus1]][ti], -1/imp)
			flows[ti] = flow

			name := fmt.Sprintf("flow(%s,%s,%s)", b.Kind, b.Name, t)
			if !nom.Extendable() {
				m.prog.AddConstraint(name, -nom.Value(), lp.Expr{}.AddExpr(flow, 1), nom.Value())
			} else {
				m.prog.AddConstraint(name+"_lower", 0,
					lp.Expr{}.AddExpr(flow, 1).Add(nom.Var(), 1), lp.Inf())
				m.prog.AddConstraint(name+"_upper", lp.NegInf(),
					lp.Expr{}.AddExpr(flow, 1).Add(nom.Var(), -1), 0)
			}

			m.addExprToBalance(b.Bus0, ti, flow, -1)
			m.addExprToBalance(b.Bus1, ti, flow, 1)
		}
		m.pbFlow[bi] = flows
	}
}
