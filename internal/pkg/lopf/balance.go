package lopf

import (
	"fmt"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
)

// assembleBalance adds the nodal power-balance equality for every
// (bus, snapshot): generation plus storage discharge minus storage uptake
// plus store dispatch plus signed branch flows equals the summed load. The
// dual of this row is the bus's marginal price. A bus with neither
// connected assets nor load needs no row.
func (m *model) assembleBalance() {
	m.balanceRows = make([][]lp.ConID, len(m.net.Buses))
	for bi, b := range m.net.Buses {
		rows := make([]lp.ConID, len(m.snaps))
		for ti, t := range m.snaps {
			expr := m.inj[bi][ti]
			load := m.loadSum[bi][ti]
			if len(expr) == 0 && load == 0 {
				rows[ti] = -1
				continue
			}
			rows[ti] = m.prog.AddConstraint(
				fmt.Sprintf("power_balance(%s,%s)", b.Name, t), load, expr, load)
		}
		m.balanceRows[bi] = rows
	}
}

// assembleCO2 adds the single global emissions cap when one is configured.
// A nil cap means the constraint is absent, which is not the same as a cap
// of zero.
func (m *model) assembleCO2() {
	if m.net.CO2Limit == nil {
		return
	}

	expr := lp.Expr{}
	for gi, g := range m.net.Generators {
		carrier := m.net.Carrier(g.Carrier)
		if carrier == nil || carrier.CO2Emissions == 0 {
			continue
		}
		for ti := range m.snaps {
			expr = expr.Add(m.genP[gi][ti], m.w[ti]*carrier.CO2Emissions/g.Efficiency)
		}
	}
	if len(expr) == 0 {
		return
	}
	m.prog.AddConstraint("co2_limit", lp.NegInf(), expr, *m.net.CO2Limit)
}
