// Package glpk drives the external glpsol binary: the program is written
// out in CPLEX LP format, glpsol is invoked as a child process, and its
// machine-readable solution file is parsed back, dual values included.
package glpk

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ohowland/cgc_lopf/internal/pkg/lp"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

// Adapter is the glpsol process backend.
type Adapter struct {
	// Command overrides the binary name, for tests. Empty means "glpsol".
	Command string
}

// Solve serializes, invokes and parses. Entries of SolverOptions become
// long-form glpsol flags (--key value, or just --key for a true bool).
// KeepFiles leaves the problem and solution files in the working directory
// instead of a discarded temp directory.
func (a Adapter) Solve(p *lp.Program, opts solver.Options) (solver.Solution, error) {
	dir := ""
	if !opts.KeepFiles {
		tmp, err := os.MkdirTemp("", "lopf")
		if err != nil {
			return solver.Solution{Status: solver.Failed}, err
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	base := "lopf-" + p.PID().String()
	lpPath := filepath.Join(dir, base+".lp")
	solPath := filepath.Join(dir, base+".sol")

	f, err := os.Create(lpPath)
	if err != nil {
		return solver.Solution{Status: solver.Failed}, err
	}
	rowRefs, err := solver.WriteLP(f, p)
	f.Close()
	if err != nil {
		return solver.Solution{Status: solver.Failed}, err
	}
	if opts.KeepFiles {
		log.Printf("[GLPK] problem file kept at %s", lpPath)
	}

	args := []string{"--lp", lpPath, "--write", solPath}
	for name, value := range opts.SolverOptions {
		if b, ok := value.(bool); ok {
			if b {
				args = append(args, "--"+name)
			}
			continue
		}
		args = append(args, "--"+name, fmt.Sprint(value))
	}

	command := a.Command
	if command == "" {
		command = "glpsol"
	}
	out, err := exec.Command(command, args...).CombinedOutput()
	if err != nil {
		return solver.Solution{Status: solver.Failed}, fmt.Errorf("glpsol: %w: %s", err, tail(out))
	}

	stdout := string(out)
	data, err := os.ReadFile(solPath)
	if err != nil {
		return solver.Solution{Status: solver.Failed}, fmt.Errorf("glpsol wrote no solution: %w: %s", err, tail(out))
	}

	sol, err := ParseSolution(data, rowRefs, p.NumRows(), p.NumVars())
	if err != nil {
		return solver.Solution{Status: solver.Failed}, err
	}
	switch sol.Status {
	case solver.Optimal:
		sol.Objective += p.Offset()
	case solver.Failed:
		if strings.Contains(stdout, "TIME LIMIT EXCEEDED") {
			sol = solver.Solution{Status: solver.Timeout}
		} else {
			err = fmt.Errorf("glpsol terminated without a solution: %s", tail(out))
		}
	}
	return sol, err
}

func tail(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.Join(lines, " / ")
}
