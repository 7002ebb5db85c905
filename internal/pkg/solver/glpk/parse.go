package glpk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

// ParseSolution reads the file glpsol emits for --write (glp_write_sol
// format): one "s" line with the basic-solution status and objective, one
// "i" line per row with activity and marginal, one "j" line per column.
// rowRefs maps the file's row order back to program row ids; duals of rows
// split by the LP writer accumulate onto the originating program row.
func ParseSolution(data []byte, rowRefs []int, numRows, numVars int) (solver.Solution, error) {
	sol := solver.Solution{Status: solver.Failed}

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c", "e":
			continue

		case "s":
			if len(fields) < 7 {
				return sol, fmt.Errorf("glpk: malformed status line %q", line)
			}
			if fields[1] != "bas" {
				return sol, fmt.Errorf("glpk: unexpected solution class %q", fields[1])
			}
			pstat, dstat := fields[4], fields[5]
			switch {
			case pstat == "f" && dstat == "f":
				obj, err := strconv.ParseFloat(fields[6], 64)
				if err != nil {
					return sol, fmt.Errorf("glpk: bad objective in %q", line)
				}
				sol.Status = solver.Optimal
				sol.Objective = obj
				sol.Primal = make([]float64, numVars)
				sol.RowDuals = make([]float64, numRows)
			case pstat == "n":
				sol.Status = solver.Infeasible
			case dstat == "n":
				sol.Status = solver.Unbounded
			}

		case "i":
			if sol.Status != solver.Optimal {
				continue
			}
			idx, dual, err := parseEntry(fields, 4)
			if err != nil {
				return sol, err
			}
			if idx < 1 || idx > len(rowRefs) {
				return sol, fmt.Errorf("glpk: row %d out of range", idx)
			}
			sol.RowDuals[rowRefs[idx-1]] += dual

		case "j":
			if sol.Status != solver.Optimal {
				continue
			}
			idx, prim, err := parseEntry(fields, 3)
			if err != nil {
				return sol, err
			}
			if idx < 1 || idx > numVars {
				return sol, fmt.Errorf("glpk: column %d out of range", idx)
			}
			sol.Primal[idx-1] = prim
		}
	}
	return sol, nil
}

func parseEntry(fields []string, pos int) (int, float64, error) {
	if len(fields) <= pos {
		return 0, 0, fmt.Errorf("glpk: malformed entry %q", strings.Join(fields, " "))
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("glpk: bad index in %q", strings.Join(fields, " "))
	}
	val, err := strconv.ParseFloat(fields[pos], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("glpk: bad value in %q", strings.Join(fields, " "))
	}
	return idx, val, nil
}
