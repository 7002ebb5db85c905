package network

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestValidateAcceptsWellFormedNetwork(t *testing.T) {
	assert.NilError(t, twoBusNetwork().Validate())
}

func TestValidateRejectsEmptySnapshots(t *testing.T) {
	n := twoBusNetwork()
	n.Snapshots = nil
	assert.ErrorContains(t, n.Validate(), "no snapshots")
}

func TestValidateRejectsNegativeWeighting(t *testing.T) {
	n := twoBusNetwork()
	n.SnapshotWeightings = map[Snapshot]float64{"t0": -1}
	assert.ErrorContains(t, n.Validate(), "negative weighting")
}

func TestValidateRejectsDuplicateBusNames(t *testing.T) {
	n := twoBusNetwork()
	n.Buses = append(n.Buses, &Bus{Name: "bus-1"})
	assert.ErrorContains(t, n.Validate(), "duplicate bus names")
}

func TestValidateRejectsUnknownBusReference(t *testing.T) {
	n := twoBusNetwork()
	n.Generators[0].Bus = "no-such-bus"
	assert.ErrorContains(t, n.Validate(), "unknown bus")
}

func TestValidateRejectsIncompleteLoadSeries(t *testing.T) {
	n := twoBusNetwork()
	delete(n.Loads[0].PSet, "t1")
	assert.ErrorContains(t, n.Validate(), "missing snapshot")
}

func TestValidateRejectsIncompleteAvailabilitySeries(t *testing.T) {
	n := twoBusNetwork()
	n.Generators[0].PMaxPUT = Series{"t0": 0.5}
	assert.ErrorContains(t, n.Validate(), "PMaxPUT")
}

func TestValidateRejectsZeroImpedance(t *testing.T) {
	n := twoBusNetwork()
	n.Lines[0].X = 0
	assert.ErrorContains(t, n.Validate(), "zero impedance")
}

func TestValidateRejectsSelfLoopBranch(t *testing.T) {
	n := twoBusNetwork()
	n.Lines[0].Bus1 = "bus-1"
	assert.ErrorContains(t, n.Validate(), "itself")
}

func TestValidateRejectsIncompleteInflow(t *testing.T) {
	n := twoBusNetwork()
	n.StorageUnits = []*StorageUnit{{
		Name:   "hydro-1",
		Bus:    "bus-1",
		PNom:   10,
		Inflow: Series{"t0": 2},
	}}
	assert.ErrorContains(t, n.Validate(), "Inflow")
}
