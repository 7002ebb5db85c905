package lopf

// assembleObjective accumulates the minimization costs: snapshot-weighted
// marginal cost on every dispatch variable, and capital cost on every
// capacity-extension variable.
func (m *model) assembleObjective() {
	for gi, g := range m.net.Generators {
		for ti := range m.snaps {
			m.prog.AddCost(m.genP[gi][ti], m.w[ti]*g.MarginalCost)
		}
		if m.genNom[gi].Extendable() {
			m.prog.AddCost(m.genNom[gi].Var(), g.CapitalCost)
		}
	}

	for si, s := range m.net.StorageUnits {
		for ti := range m.snaps {
			m.prog.AddCost(m.suDispatch[si][ti], m.w[ti]*s.MarginalCost)
		}
		if m.suNom[si].Extendable() {
			m.prog.AddCost(m.suNom[si].Var(), s.CapitalCost)
		}
	}

	for si, s := range m.net.Stores {
		for ti := range m.snaps {
			m.prog.AddCost(m.stP[si][ti], m.w[ti]*s.MarginalCost)
		}
		if m.stNom[si].Extendable() {
			m.prog.AddCost(m.stNom[si].Var(), s.CapitalCost)
		}
	}

	for bi, b := range m.passives {
		if m.pbNom[bi].Extendable() {
			m.prog.AddCost(m.pbNom[bi].Var(), b.CapitalCost)
		}
	}

	for li, l := range m.net.Links {
		if m.linkNom[li].Extendable() {
			m.prog.AddCost(m.linkNom[li].Var(), l.CapitalCost)
		}
	}
}
