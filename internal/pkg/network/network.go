package network

// Snapshot is an opaque time index. Snapshot order matters: the storage and
// store state recursions link each snapshot to the one before it.
type Snapshot string

// Series holds a per-snapshot time series. Required series must carry a
// value for every snapshot of the network; override series (for example a
// fixed state-of-charge setpoint) may be sparse, a missing key meaning
// "no value".
type Series map[Snapshot]float64

// At returns the series value at a snapshot and whether one is present.
func (s Series) At(t Snapshot) (float64, bool) {
	v, ok := s[t]
	return v, ok
}

// Network is the asset graph and snapshot scheme consumed by the LOPF
// engine. The engine reads the input attributes, and writes the output
// attributes (the Series and *Opt fields of the member assets) only after
// an optimal solve.
type Network struct {
	Snapshots          []Snapshot          `json:"Snapshots"`
	SnapshotWeightings map[Snapshot]float64 `json:"SnapshotWeightings"`

	// CO2Limit caps total weighted emissions when present. nil means the
	// constraint is absent from the model, which is not the same as a
	// cap of zero.
	CO2Limit *float64 `json:"CO2Limit"`

	Buses        []*Bus         `json:"Buses"`
	Loads        []*Load        `json:"Loads"`
	Generators   []*Generator   `json:"Generators"`
	StorageUnits []*StorageUnit `json:"StorageUnits"`
	Stores       []*Store       `json:"Stores"`
	Lines        []*Line        `json:"Lines"`
	Transformers []*Transformer `json:"Transformers"`
	Links        []*Link        `json:"Links"`
	Carriers     []*Carrier     `json:"Carriers"`
}

// Weighting returns the weighting of a snapshot, defaulting to 1.
func (n *Network) Weighting(t Snapshot) float64 {
	if w, ok := n.SnapshotWeightings[t]; ok {
		return w
	}
	return 1.0
}

// BusIndex maps bus names to their position in the bus collection.
func (n *Network) BusIndex() map[string]int {
	idx := make(map[string]int, len(n.Buses))
	for i, b := range n.Buses {
		idx[b.Name] = i
	}
	return idx
}

// Carrier returns the carrier registered under a name, or nil.
func (n *Network) Carrier(name string) *Carrier {
	for _, c := range n.Carriers {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// PassiveBranches returns the lines and transformers of the network as one
// ordered collection, lines first.
func (n *Network) PassiveBranches() []*PassiveBranch {
	out := make([]*PassiveBranch, 0, len(n.Lines)+len(n.Transformers))
	for _, l := range n.Lines {
		l.Kind = "Line"
		out = append(out, &l.PassiveBranch)
	}
	for _, t := range n.Transformers {
		t.Kind = "Transformer"
		out = append(out, &t.PassiveBranch)
	}
	return out
}
