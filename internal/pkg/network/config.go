package network

import (
	"encoding/json"
	"math"
)

// FromConfig builds a network from its JSON description and fills in the
// library defaults for attributes left at their zero value: per-unit
// availability limits, efficiencies, storage hours, and unbounded (NaN)
// expansion limits on extendable assets. Networks assembled directly in
// code take every field literally and skip defaulting.
func FromConfig(jsonConfig []byte) (*Network, error) {
	n := &Network{}
	if err := json.Unmarshal(jsonConfig, n); err != nil {
		return nil, err
	}
	n.applyDefaults()
	return n, nil
}

func (n *Network) applyDefaults() {
	for _, g := range n.Generators {
		if g.PMaxPU == 0 && g.PMaxPUT == nil {
			g.PMaxPU = 1
		}
		if g.Efficiency == 0 {
			g.Efficiency = 1
		}
		if g.PNomExtendable && g.PNomMax == 0 {
			g.PNomMax = math.NaN()
		}
	}
	for _, s := range n.StorageUnits {
		if s.PMaxPU == 0 {
			s.PMaxPU = 1
		}
		if s.PMinPU == 0 {
			s.PMinPU = -1
		}
		if s.MaxHours == 0 {
			s.MaxHours = 1
		}
		if s.EfficiencyStore == 0 {
			s.EfficiencyStore = 1
		}
		if s.EfficiencyDispatch == 0 {
			s.EfficiencyDispatch = 1
		}
		if s.PNomExtendable && s.PNomMax == 0 {
			s.PNomMax = math.NaN()
		}
	}
	for _, s := range n.Stores {
		if s.EMaxPU == 0 {
			s.EMaxPU = 1
		}
		if s.ENomExtendable && s.ENomMax == 0 {
			s.ENomMax = math.NaN()
		}
	}
	for _, l := range n.Links {
		if l.PMaxPU == 0 {
			l.PMaxPU = 1
		}
		if l.Efficiency == 0 {
			l.Efficiency = 1
		}
		if l.PNomExtendable && l.PNomMax == 0 {
			l.PNomMax = math.NaN()
		}
	}
	for _, l := range n.Lines {
		if l.SNomExtendable && l.SNomMax == 0 {
			l.SNomMax = math.NaN()
		}
	}
	for _, t := range n.Transformers {
		if t.SNomExtendable && t.SNomMax == 0 {
			t.SNomMax = math.NaN()
		}
	}
}
