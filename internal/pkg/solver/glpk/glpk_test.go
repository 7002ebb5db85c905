package glpk

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

// fakeGlpsol installs a stand-in binary that writes a canned solution file
// to the --write target, so the adapter's plumbing is testable without
// glpsol on the path.
func fakeGlpsol(t *testing.T, solution string) string {
	t.Helper()
	dir := t.TempDir()
	script := filepath.Join(dir, "glpsol")
	body := `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
	if [ "$1" = "--write" ]; then out="$2"; fi
	shift
done
cat > "$out" <<'EOF'
` + solution + `EOF
`
	assert.NilError(t, os.WriteFile(script, []byte(body), 0755))
	return script
}

func minimalProgram(t *testing.T) *lp.Program {
	t.Helper()
	p, err := lp.New()
	assert.NilError(t, err)
	x := p.AddVar("x", 0, 10)
	p.AddCost(x, 10)
	p.AddConstraint("demand", 5, lp.Expr{}.Add(x, 1), lp.Inf())
	p.AddOffset(7)
	return p
}

func TestSolveParsesBackSolution(t *testing.T) {
	cmd := fakeGlpsol(t, "s bas 1 1 f f 50\ni 1 b 5 10\nj 1 b 5 0\n")

	sol, err := Adapter{Command: cmd}.Solve(minimalProgram(t), solver.Options{})
	assert.NilError(t, err)

	assert.Equal(t, sol.Status, solver.Optimal)
	// the objective offset never reaches the LP file, so it is added back
	assert.Equal(t, sol.Objective, 57.0)
	assert.DeepEqual(t, sol.Primal, []float64{5})
	assert.DeepEqual(t, sol.RowDuals, []float64{10})
}

func TestSolveReportsInfeasible(t *testing.T) {
	cmd := fakeGlpsol(t, "s bas 1 1 n f 0\n")

	sol, err := Adapter{Command: cmd}.Solve(minimalProgram(t), solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Infeasible)
}

func TestSolveReportsMissingBinary(t *testing.T) {
	_, err := Adapter{Command: "no-such-binary-on-path"}.Solve(minimalProgram(t), solver.Options{})
	assert.ErrorContains(t, err, "glpsol")
}

func TestSolveIntegration(t *testing.T) {
	if _, err := exec.LookPath("glpsol"); err != nil {
		t.Skip("glpsol not installed")
	}

	sol, err := Adapter{}.Solve(minimalProgram(t), solver.Options{})
	assert.NilError(t, err)
	assert.Equal(t, sol.Status, solver.Optimal)
	assert.Equal(t, sol.Objective, 57.0)
	assert.DeepEqual(t, sol.Primal, []float64{5})
}
