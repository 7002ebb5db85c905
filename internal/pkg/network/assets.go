package network

// Bus is a node of the electrical network and the target of the nodal
// power-balance constraint.
type Bus struct {
	Name    string  `json:"Name"`
	VNom    float64 `json:"VNom"`
	Carrier string  `json:"Carrier"`

	// Outputs, written on an optimal solve.
	P             Series  `json:"-"`
	VAng          Series  `json:"-"`
	MarginalPrice Series  `json:"-"`
}

// Load is exogenous demand attached to a bus. PSet is a required series.
type Load struct {
	Name string `json:"Name"`
	Bus  string `json:"Bus"`
	PSet Series `json:"PSet"`

	P Series `json:"-"`
}

// Generator is a dispatchable source attached to a bus. Availability is the
// static PMinPU/PMaxPU pair unless the per-snapshot PMinPUT/PMaxPUT series
// are supplied.
type Generator struct {
	Name    string `json:"Name"`
	Bus     string `json:"Bus"`
	Carrier string `json:"Carrier"`

	PNom           float64 `json:"PNom"`
	PNomExtendable bool    `json:"PNomExtendable"`
	PNomMin        float64 `json:"PNomMin"`
	PNomMax        float64 `json:"PNomMax"`

	PMinPU  float64 `json:"PMinPU"`
	PMaxPU  float64 `json:"PMaxPU"`
	PMinPUT Series  `json:"PMinPUT"`
	PMaxPUT Series  `json:"PMaxPUT"`

	MarginalCost float64 `json:"MarginalCost"`
	CapitalCost  float64 `json:"CapitalCost"`
	Efficiency   float64 `json:"Efficiency"`

	P       Series  `json:"-"`
	PNomOpt float64 `json:"-"`
}

// PMinPUAt returns the minimum per-unit availability at a snapshot.
func (g *Generator) PMinPUAt(t Snapshot) float64 {
	if g.PMinPUT != nil {
		return g.PMinPUT[t]
	}
	return g.PMinPU
}

// PMaxPUAt returns the maximum per-unit availability at a snapshot.
func (g *Generator) PMaxPUAt(t Snapshot) float64 {
	if g.PMaxPUT != nil {
		return g.PMaxPUT[t]
	}
	return g.PMaxPU
}

// StorageUnit couples a dispatch variable, an uptake variable and a
// state-of-charge variable at every snapshot. PMinPU is the (negative)
// per-unit bound on uptake; MaxHours scales nominal power into
// state-of-charge capacity.
type StorageUnit struct {
	Name string `json:"Name"`
	Bus  string `json:"Bus"`

	PNom           float64 `json:"PNom"`
	PNomExtendable bool    `json:"PNomExtendable"`
	PNomMin        float64 `json:"PNomMin"`
	PNomMax        float64 `json:"PNomMax"`

	PMinPU   float64 `json:"PMinPU"`
	PMaxPU   float64 `json:"PMaxPU"`
	MaxHours float64 `json:"MaxHours"`

	EfficiencyStore    float64 `json:"EfficiencyStore"`
	EfficiencyDispatch float64 `json:"EfficiencyDispatch"`
	StandingLoss       float64 `json:"StandingLoss"`

	// CyclicStateOfCharge ties the state of charge before the first
	// snapshot to the state at the last snapshot; otherwise
	// StateOfChargeInitial is used as a constant.
	CyclicStateOfCharge  bool    `json:"CyclicStateOfCharge"`
	StateOfChargeInitial float64 `json:"StateOfChargeInitial"`

	// StateOfChargeSet fixes the state of charge wherever a value is
	// present, in addition to the recursive relation.
	StateOfChargeSet Series `json:"StateOfChargeSet"`

	// Inflow enables the spillage variable; without it inflow and
	// spillage are both zero.
	Inflow Series `json:"Inflow"`

	MarginalCost float64 `json:"MarginalCost"`
	CapitalCost  float64 `json:"CapitalCost"`

	P             Series  `json:"-"`
	StateOfCharge Series  `json:"-"`
	Spill         Series  `json:"-"`
	PNomOpt       float64 `json:"-"`
}

// InflowAt returns the inflow at a snapshot, zero when no series is set.
func (s *StorageUnit) InflowAt(t Snapshot) float64 {
	if s.Inflow == nil {
		return 0
	}
	return s.Inflow[t]
}

// Store holds energy directly: a signed dispatch variable and an energy
// level bounded by [EMinPU, EMaxPU] x nominal energy.
type Store struct {
	Name string `json:"Name"`
	Bus  string `json:"Bus"`

	ENom           float64 `json:"ENom"`
	ENomExtendable bool    `json:"ENomExtendable"`
	ENomMin        float64 `json:"ENomMin"`
	ENomMax        float64 `json:"ENomMax"`

	EMinPU float64 `json:"EMinPU"`
	EMaxPU float64 `json:"EMaxPU"`

	ECyclic      bool    `json:"ECyclic"`
	EInitial     float64 `json:"EInitial"`
	StandingLoss float64 `json:"StandingLoss"`

	MarginalCost float64 `json:"MarginalCost"`
	CapitalCost  float64 `json:"CapitalCost"`

	P       Series  `json:"-"`
	E       Series  `json:"-"`
	ENomOpt float64 `json:"-"`
}

// PassiveBranch is the shared body of lines and transformers: flow is not a
// free variable but the angle difference across the branch divided by the
// branch impedance.
type PassiveBranch struct {
	Kind string `json:"-"`

	Name string `json:"Name"`
	Bus0 string `json:"Bus0"`
	Bus1 string `json:"Bus1"`

	X float64 `json:"X"`
	R float64 `json:"R"`

	SNom           float64 `json:"SNom"`
	SNomExtendable bool    `json:"SNomExtendable"`
	SNomMin        float64 `json:"SNomMin"`
	SNomMax        float64 `json:"SNomMax"`

	CapitalCost float64 `json:"CapitalCost"`

	P0      Series  `json:"-"`
	P1      Series  `json:"-"`
	SNomOpt float64 `json:"-"`
}

// Line is a passive AC (or DC) branch.
type Line struct {
	PassiveBranch
}

// Transformer is a passive branch between voltage levels.
type Transformer struct {
	PassiveBranch
}

// Link is a controllable branch: a free flow variable that withdraws its
// flow from Bus0 and injects Efficiency times the flow into Bus1.
type Link struct {
	Name string `json:"Name"`
	Bus0 string `json:"Bus0"`
	Bus1 string `json:"Bus1"`

	PNom           float64 `json:"PNom"`
	PNomExtendable bool    `json:"PNomExtendable"`
	PNomMin        float64 `json:"PNomMin"`
	PNomMax        float64 `json:"PNomMax"`

	PMinPU float64 `json:"PMinPU"`
	PMaxPU float64 `json:"PMaxPU"`

	Efficiency  float64 `json:"Efficiency"`
	CapitalCost float64 `json:"CapitalCost"`

	P0      Series  `json:"-"`
	P1      Series  `json:"-"`
	PNomOpt float64 `json:"-"`
}

// Carrier tags generators with a CO2 intensity for the emissions cap.
type Carrier struct {
	Name         string  `json:"Name"`
	CO2Emissions float64 `json:"CO2Emissions"`
}
