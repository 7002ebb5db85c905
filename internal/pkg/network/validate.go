package network

import "fmt"

// Validate checks the network for configuration errors before any model
// building starts: unknown bus references, incomplete required series,
// non-positive impedance on passive branches, and negative snapshot
// weightings. The first error found is returned; nothing is defaulted.
func (n *Network) Validate() error {
	if len(n.Snapshots) == 0 {
		return fmt.Errorf("network has no snapshots")
	}

	for t, w := range n.SnapshotWeightings {
		if w < 0 {
			return fmt.Errorf("snapshot %q has negative weighting %v", t, w)
		}
	}

	buses := n.BusIndex()
	if len(buses) != len(n.Buses) {
		return fmt.Errorf("duplicate bus names in network")
	}

	for _, l := range n.Loads {
		if _, ok := buses[l.Bus]; !ok {
			return fmt.Errorf("load %q references unknown bus %q", l.Name, l.Bus)
		}
		if err := n.requireSeries(l.PSet, "load", l.Name, "PSet"); err != nil {
			return err
		}
	}

	for _, g := range n.Generators {
		if _, ok := buses[g.Bus]; !ok {
			return fmt.Errorf("generator %q references unknown bus %q", g.Name, g.Bus)
		}
		if g.PMinPUT != nil {
			if err := n.requireSeries(g.PMinPUT, "generator", g.Name, "PMinPUT"); err != nil {
				return err
			}
		}
		if g.PMaxPUT != nil {
			if err := n.requireSeries(g.PMaxPUT, "generator", g.Name, "PMaxPUT"); err != nil {
				return err
			}
		}
	}

	for _, s := range n.StorageUnits {
		if _, ok := buses[s.Bus]; !ok {
			return fmt.Errorf("storage unit %q references unknown bus %q", s.Name, s.Bus)
		}
		if s.Inflow != nil {
			if err := n.requireSeries(s.Inflow, "storage unit", s.Name, "Inflow"); err != nil {
				return err
			}
		}
	}

	for _, s := range n.Stores {
		if _, ok := buses[s.Bus]; !ok {
			return fmt.Errorf("store %q references unknown bus %q", s.Name, s.Bus)
		}
	}

	for _, b := range n.PassiveBranches() {
		if _, ok := buses[b.Bus0]; !ok {
			return fmt.Errorf("%s %q references unknown bus %q", b.Kind, b.Name, b.Bus0)
		}
		if _, ok := buses[b.Bus1]; !ok {
			return fmt.Errorf("%s %q references unknown bus %q", b.Kind, b.Name, b.Bus1)
		}
		if b.Bus0 == b.Bus1 {
			return fmt.Errorf("%s %q connects bus %q to itself", b.Kind, b.Name, b.Bus0)
		}
		if n.EffectiveImpedance(b) == 0 {
			return fmt.Errorf("%s %q has zero impedance", b.Kind, b.Name)
		}
	}

	for _, l := range n.Links {
		if _, ok := buses[l.Bus0]; !ok {
			return fmt.Errorf("link %q references unknown bus %q", l.Name, l.Bus0)
		}
		if _, ok := buses[l.Bus1]; !ok {
			return fmt.Errorf("link %q references unknown bus %q", l.Name, l.Bus1)
		}
	}

	return nil
}

// EffectiveImpedance returns the impedance dividing the angle difference in
// the branch flow relation: reactance, or resistance when both terminal
// buses carry the DC carrier.
func (n *Network) EffectiveImpedance(b *PassiveBranch) float64 {
	buses := n.BusIndex()
	i0, ok0 := buses[b.Bus0]
	i1, ok1 := buses[b.Bus1]
	if ok0 && ok1 && n.Buses[i0].Carrier == "DC" && n.Buses[i1].Carrier == "DC" {
		return b.R
	}
	return b.X
}

func (n *Network) requireSeries(s Series, kind, name, attr string) error {
	for _, t := range n.Snapshots {
		if _, ok := s[t]; !ok {
			return fmt.Errorf("%s %q series %s missing snapshot %q", kind, name, attr, t)
		}
	}
	return nil
}
