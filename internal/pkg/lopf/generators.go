package lopf

import (
	"fmt"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
)

// declareGenerators creates one dispatch variable per (generator, snapshot)
// bounded by per-unit availability times nominal power. For an extendable
// generator the nominal power is itself a variable, so the availability
// bounds become constraints against it instead of literal bounds.
func (m *model) declareGenerators() {
	for _, g := range m.net.Generators {
		nom := m.nominal(fmt.Sprintf("generator_p_nom(%s)", g.Name), g.PNom, g.PNomExtendable, g.PNomMin, g.PNomMax)
		m.genNom = append(m.genNom, nom)

		vars := make([]lp.VarID, len(m.snaps))
		for ti, t := range m.snaps {
			name := fmt.Sprintf("generator_p(%s,%s)", g.Name, t)
			minPU, maxPU := g.PMinPUAt(t), g.PMaxPUAt(t)

			if !nom.Extendable() {
				vars[ti] = m.prog.AddVar(name, minPU*nom.Value(), maxPU*nom.Value())
			} else {
				v := m.prog.AddVar(name, lp.NegInf(), lp.Inf())
				m.prog.AddConstraint(name+"_lower", 0,
					lp.Expr{}.Add(v, 1).Add(nom.Var(), -minPU), lp.Inf())
				m.prog.AddConstraint(name+"_upper", lp.NegInf(),
					lp.Expr{}.Add(v, 1).Add(nom.Var(), -maxPU), 0)
				vars[ti] = v
			}
			m.addToBalance(g.Bus, ti, vars[ti], 1)
		}
		m.genP = append(m.genP, vars)
	}
}
