package lopf

import (
	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/network"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

// writeResults copies the solved primal values back onto the network's
// output attributes. Passive-branch flows and bus injections are
// reconstructed from the solved angles; marginal prices come from the
// balance-row duals and stay empty for backends that report none.
func (m *model) writeResults(sol solver.Solution) {
	primal := func(v lp.VarID) float64 { return sol.Primal[v] }
	nomOpt := func(nom lp.Nominal) float64 {
		if nom.Extendable() {
			return primal(nom.Var())
		}
		return nom.Value()
	}

	injection := make([][]float64, len(m.net.Buses))
	for bi := range m.net.Buses {
		injection[bi] = make([]float64, len(m.snaps))
	}

	for gi, g := range m.net.Generators {
		g.P = make(network.Series, len(m.snaps))
		for ti, t := range m.snaps {
			p := primal(m.genP[gi][ti])
			g.P[t] = p
			injection[m.busIdx[g.Bus]][ti] += p
		}
		g.PNomOpt = nomOpt(m.genNom[gi])
	}

	for si, s := range m.net.StorageUnits {
		s.P = make(network.Series, len(m.snaps))
		s.StateOfCharge = make(network.Series, len(m.snaps))
		if m.suSpill[si] != nil {
			s.Spill = make(network.Series, len(m.snaps))
		}
		for ti, t := range m.snaps {
			p := primal(m.suDispatch[si][ti]) - primal(m.suStore[si][ti])
			s.P[t] = p
			s.StateOfCharge[t] = primal(m.suSOC[si][ti])
			if m.suSpill[si] != nil {
				s.Spill[t] = primal(m.suSpill[si][ti])
			}
			injection[m.busIdx[s.Bus]][ti] += p
		}
		s.PNomOpt = nomOpt(m.suNom[si])
	}

	for si, s := range m.net.Stores {
		s.P = make(network.Series, len(m.snaps))
		s.E = make(network.Series, len(m.snaps))
		for ti, t := range m.snaps {
			p := primal(m.stP[si][ti])
			s.P[t] = p
			s.E[t] = primal(m.stE[si][ti])
			injection[m.busIdx[s.Bus]][ti] += p
		}
		s.ENomOpt = nomOpt(m.stNom[si])
	}

	for li, l := range m.net.Links {
		l.P0 = make(network.Series, len(m.snaps))
		l.P1 = make(network.Series, len(m.snaps))
		for ti, t := range m.snaps {
			f := primal(m.linkP[li][ti])
			l.P0[t] = f
			l.P1[t] = -l.Efficiency * f
			injection[m.busIdx[l.Bus0]][ti] -= f
			injection[m.busIdx[l.Bus1]][ti] += l.Efficiency * f
		}
		l.PNomOpt = nomOpt(m.linkNom[li])
	}

	for pi, b := range m.passives {
		b.P0 = make(network.Series, len(m.snaps))
		b.P1 = make(network.Series, len(m.snaps))
		bi0, bi1 := m.busIdx[b.Bus0], m.busIdx[b.Bus1]
		for ti, t := range m.snaps {
			f := (primal(m.angle[bi0][ti]) - primal(m.angle[bi1][ti])) / m.pbImp[pi]
			b.P0[t] = f
			b.P1[t] = -f
		}
		b.SNomOpt = nomOpt(m.pbNom[pi])
	}

	for _, l := range m.net.Loads {
		l.P = make(network.Series, len(m.snaps))
		for ti, t := range m.snaps {
			l.P[t] = l.PSet[t]
			injection[m.busIdx[l.Bus]][ti] -= l.PSet[t]
		}
	}

	for bi, b := range m.net.Buses {
		b.P = make(network.Series, len(m.snaps))
		b.VAng = make(network.Series, len(m.snaps))
		b.MarginalPrice = make(network.Series, len(m.snaps))
		for ti, t := range m.snaps {
			b.P[t] = injection[bi][ti]
			b.VAng[t] = primal(m.angle[bi][ti])
			if sol.RowDuals != nil {
				if row := m.balanceRows[bi][ti]; row >= 0 {
					b.MarginalPrice[t] = sol.RowDuals[row]
				}
			}
		}
	}
}
