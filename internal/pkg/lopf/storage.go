package lopf

import (
	"fmt"
	"math"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
)

// declareStorageUnits creates the three coupled variables of every storage
// unit (dispatch, uptake, state of charge) plus the spillage variable when
// the unit has inflow, and ties adjacent snapshots together with the state
// recursion. The state before the first snapshot is the state at the last
// snapshot for a cyclic unit and a constant otherwise.
func (m *model) declareStorageUnits() {
	for _, s := range m.net.StorageUnits {
		nom := m.nominal(fmt.Sprintf("storage_p_nom(%s)", s.Name), s.PNom, s.PNomExtendable, s.PNomMin, s.PNomMax)
		m.suNom = append(m.suNom, nom)

		T := len(m.snaps)
		dispatch := make([]lp.VarID, T)
		store := make([]lp.VarID, T)
		soc := make([]lp.VarID, T)
		var spill []lp.VarID
		if s.Inflow != nil {
			spill = make([]lp.VarID, T)
		}

		for ti, t := range m.snaps {
			dispatch[ti] = m.boundedByNominal(fmt.Sprintf("storage_p_dispatch(%s,%s)", s.Name, t), nom, s.PMaxPU)
			store[ti] = m.boundedByNominal(fmt.Sprintf("storage_p_store(%s,%s)", s.Name, t), nom, -s.PMinPU)
			soc[ti] = m.boundedByNominal(fmt.Sprintf("state_of_charge(%s,%s)", s.Name, t), nom, s.MaxHours)
			if spill != nil {
				spill[ti] = m.prog.AddVar(fmt.Sprintf("storage_spill(%s,%s)", s.Name, t), 0, s.Inflow[t])
			}

			m.addToBalance(s.Bus, ti, dispatch[ti], 1)
			m.addToBalance(s.Bus, ti, store[ti], -1)
		}

		for ti, t := range m.snaps {
			w := m.w[ti]
			retained := math.Pow(1-s.StandingLoss, w)

			e := lp.Expr{}.Add(soc[ti], 1)
			rhs := w * s.InflowAt(t)
			switch {
			case ti > 0:
				e = e.Add(soc[ti-1], -retained)
			case s.CyclicStateOfCharge:
				e = e.Add(soc[T-1], -retained)
			default:
				rhs += retained * s.StateOfChargeInitial
			}
			e = e.Add(store[ti], -s.EfficiencyStore*w)
			e = e.Add(dispatch[ti], w/s.EfficiencyDispatch)
			if spill != nil {
				e = e.Add(spill[ti], w)
			}
			m.prog.AddConstraint(fmt.Sprintf("state_of_charge_constraint(%s,%s)", s.Name, t), rhs, e, rhs)

			// a fixed setpoint is added alongside the recursion; an
			// inconsistent setpoint surfaces as infeasibility
			if set, ok := s.StateOfChargeSet.At(t); ok {
				m.prog.AddConstraint(fmt.Sprintf("state_of_charge_set(%s,%s)", s.Name, t),
					set, lp.Expr{}.Add(soc[ti], 1), set)
			}
		}

		m.suDispatch = append(m.suDispatch, dispatch)
		m.suStore = append(m.suStore, store)
		m.suSOC = append(m.suSOC, soc)
		m.suSpill = append(m.suSpill, spill)
	}
}

// boundedByNominal declares a non-negative variable capped by
// perUnit * nominal, as a literal bound or a constraint depending on the
// nominal's variant.
func (m *model) boundedByNominal(name string, nom lp.Nominal, perUnit float64) lp.VarID {
	if !nom.Extendable() {
		return m.prog.AddVar(name, 0, perUnit*nom.Value())
	}
	v := m.prog.AddVar(name, 0, lp.Inf())
	m.prog.AddConstraint(name+"_upper", lp.NegInf(),
		lp.Expr{}.Add(v, 1).Add(nom.Var(), -perUnit), 0)
	return v
}

// declareStores creates the signed dispatch and bounded energy variables of
// every store with the energy recursion, mirroring storage units without
// the power-conversion efficiencies.
func (m *model) declareStores() {
	for _, s := range m.net.Stores {
		nom := m.nominal(fmt.Sprintf("store_e_nom(%s)", s.Name), s.ENom, s.ENomExtendable, s.ENomMin, s.ENomMax)
		m.stNom = append(m.stNom, nom)

		T := len(m.snaps)
		p := make([]lp.VarID, T)
		e := make([]lp.VarID, T)

		for ti, t := range m.snaps {
			p[ti] = m.prog.AddVar(fmt.Sprintf("store_p(%s,%s)", s.Name, t), lp.NegInf(), lp.Inf())

			eName := fmt.Sprintf("store_e(%s,%s)", s.Name, t)
			if !nom.Extendable() {
				e[ti] = m.prog.AddVar(eName, s.EMinPU*nom.Value(), s.EMaxPU*nom.Value())
			} else {
				e[ti] = m.prog.AddVar(eName, lp.NegInf(), lp.Inf())
				m.prog.AddConstraint(eName+"_lower", 0,
					lp.Expr{}.Add(e[ti], 1).Add(nom.Var(), -s.EMinPU), lp.Inf())
				m.prog.AddConstraint(eName+"_upper", lp.NegInf(),
					lp.Expr{}.Add(e[ti], 1).Add(nom.Var(), -s.EMaxPU), 0)
			}

			m.addToBalance(s.Bus, ti, p[ti], 1)
		}

		for ti, t := range m.snaps {
			w := m.w[ti]
			retained := math.Pow(1-s.StandingLoss, w)

			expr := lp.Expr{}.Add(e[ti], 1).Add(p[ti], w)
			rhs := 0.0
			switch {
			case ti > 0:
				expr = expr.Add(e[ti-1], -retained)
			case s.ECyclic:
				expr = expr.Add(e[T-1], -retained)
			default:
				rhs = retained * s.EInitial
			}
			m.prog.AddConstraint(fmt.Sprintf("store_e_constraint(%s,%s)", s.Name, t), rhs, expr, rhs)
		}

		m.stP = append(m.stP, p)
		m.stE = append(m.stE, e)
	}
}
