package glpk

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

var optimalSol = []byte(`c Problem:    lopf
c Rows:       3
c Columns:    2
c Status:     OPTIMAL
s bas 3 2 f f 500
i 1 b 50 25
i 2 u 30 1.5
i 3 b 30 0
j 1 b 50 0
j 2 b 30 -2
e o f
`)

func TestParseSolutionOptimal(t *testing.T) {
	// written rows 2 and 3 are the two halves of one ranged program row
	rowRefs := []int{0, 1, 1}

	sol, err := ParseSolution(optimalSol, rowRefs, 2, 2)
	assert.NilError(t, err)

	assert.Equal(t, sol.Status, solver.Optimal)
	assert.Equal(t, sol.Objective, 500.0)
	assert.DeepEqual(t, sol.Primal, []float64{50, 30})
	// split-row duals accumulate onto the originating program row
	assert.DeepEqual(t, sol.RowDuals, []float64{25, 1.5})
}

func TestParseSolutionInfeasible(t *testing.T) {
	data := []byte("s bas 1 1 n f 0\n")
	sol, err := ParseSolution(data, []int{0}, 1, 1)
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Infeasible)
}

func TestParseSolutionUnbounded(t *testing.T) {
	data := []byte("s bas 1 1 f n 0\n")
	sol, err := ParseSolution(data, []int{0}, 1, 1)
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Unbounded)
}

func TestParseSolutionRejectsWrongClass(t *testing.T) {
	data := []byte("s ipt 1 1 o o 0\n")
	_, err := ParseSolution(data, []int{0}, 1, 1)
	assert.ErrorContains(t, err, "solution class")
}

func TestParseSolutionRejectsRowOutOfRange(t *testing.T) {
	data := []byte("s bas 1 1 f f 0\ni 2 b 0 0\n")
	_, err := ParseSolution(data, []int{0}, 1, 1)
	assert.ErrorContains(t, err, "out of range")
}
