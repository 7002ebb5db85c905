package lp

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

// VarID indexes a decision variable (column) in a Program.
type VarID int

// ConID indexes a constraint (row) in a Program.
type ConID int

// Term is a single coefficient*variable entry of a linear expression.
type Term struct {
	Var   VarID
	Coeff float64
}

// Expr is a sparse linear expression over Program variables.
type Expr []Term

// Add appends a term to the expression.
func (e Expr) Add(v VarID, coeff float64) Expr {
	return append(e, Term{v, coeff})
}

// AddExpr appends another expression, scaling every term.
func (e Expr) AddExpr(o Expr, scale float64) Expr {
	for _, t := range o {
		e = append(e, Term{t.Var, scale * t.Coeff})
	}
	return e
}

// Row is a ranged linear constraint Lower <= Expr <= Upper.
// Equality rows have Lower == Upper.
type Row struct {
	Name  string
	Lower float64
	Upper float64
	Expr  Expr
}

// Program is a mutable linear program under construction. It is handed by
// reference to extra-functionality callbacks, which may add variables,
// constraints and cost terms before the solver adapter serializes it.
type Program struct {
	pid      uuid.UUID
	names    []string
	varIndex map[string]VarID
	lower    []float64
	upper    []float64
	cost     []float64
	offset   float64
	rows     []Row
}

// New returns an empty minimization program.
func New() (*Program, error) {
	pid, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	return &Program{
		pid:      pid,
		varIndex: make(map[string]VarID),
	}, nil
}

// PID is a getter for the program PID.
func (p *Program) PID() uuid.UUID {
	return p.pid
}

// AddVar declares a bounded continuous variable and returns its column id.
func (p *Program) AddVar(name string, lower, upper float64) VarID {
	id := VarID(len(p.names))
	p.names = append(p.names, name)
	p.lower = append(p.lower, lower)
	p.upper = append(p.upper, upper)
	p.cost = append(p.cost, 0)
	p.varIndex[name] = id
	return id
}

// Var looks a variable up by name.
func (p *Program) Var(name string) (VarID, bool) {
	id, ok := p.varIndex[name]
	return id, ok
}

// AddConstraint adds the ranged row lower <= e <= upper and returns its row
// id. Duplicate variables in e are merged so that backends never see two
// coefficients for the same column of one row.
func (p *Program) AddConstraint(name string, lower float64, e Expr, upper float64) ConID {
	id := ConID(len(p.rows))
	p.rows = append(p.rows, Row{Name: name, Lower: lower, Upper: upper, Expr: merge(e)})
	return id
}

// AddCost accumulates a minimization cost coefficient onto a variable.
func (p *Program) AddCost(v VarID, coeff float64) {
	p.cost[v] += coeff
}

// AddOffset accumulates a constant onto the objective.
func (p *Program) AddOffset(c float64) {
	p.offset += c
}

// NumVars returns the number of declared variables.
func (p *Program) NumVars() int { return len(p.names) }

// NumRows returns the number of declared constraints.
func (p *Program) NumRows() int { return len(p.rows) }

// VarName returns the name a variable was declared with.
func (p *Program) VarName(v VarID) string { return p.names[v] }

// VarBounds returns the declared bounds of a variable.
func (p *Program) VarBounds(v VarID) (lower, upper float64) {
	return p.lower[v], p.upper[v]
}

// Costs returns the dense minimization cost vector.
func (p *Program) Costs() []float64 { return p.cost }

// Offset returns the constant objective term.
func (p *Program) Offset() float64 { return p.offset }

// Rows returns the constraint rows in declaration order.
func (p *Program) Rows() []Row { return p.rows }

// Lower returns the dense vector of variable lower bounds.
func (p *Program) Lower() []float64 { return p.lower }

// Upper returns the dense vector of variable upper bounds.
func (p *Program) Upper() []float64 { return p.upper }

func merge(e Expr) Expr {
	if len(e) < 2 {
		return e
	}
	sort.SliceStable(e, func(i, j int) bool { return e[i].Var < e[j].Var })
	out := e[:1]
	for _, t := range e[1:] {
		if last := &out[len(out)-1]; last.Var == t.Var {
			last.Coeff += t.Coeff
		} else {
			out = append(out, t)
		}
	}
	return out
}

// Nominal is the capacity of an asset as seen by bound construction: either
// a constant taken from the asset's static attributes, or a reference to the
// capacity-extension variable of an extendable asset. Bounds built against a
// Nominal therefore come out as literal bounds in the constant case and as
// linear constraints in the variable case.
type Nominal struct {
	value      float64
	v          VarID
	extendable bool
}

// FixedNominal wraps a constant nominal capacity.
func FixedNominal(value float64) Nominal {
	return Nominal{value: value}
}

// VarNominal wraps a capacity-extension decision variable.
func VarNominal(v VarID) Nominal {
	return Nominal{v: v, extendable: true}
}

// Extendable reports whether the nominal capacity is a decision variable.
func (n Nominal) Extendable() bool { return n.extendable }

// Value returns the constant capacity. Calling Value on an extendable
// Nominal is a programming error.
func (n Nominal) Value() float64 {
	if n.extendable {
		panic(fmt.Errorf("lp: nominal is a decision variable, not a constant"))
	}
	return n.value
}

// Var returns the capacity-extension variable.
func (n Nominal) Var() VarID {
	if !n.extendable {
		panic(fmt.Errorf("lp: nominal is a constant, not a decision variable"))
	}
	return n.v
}

// Inf returns positive infinity, for open bounds.
func Inf() float64 { return math.Inf(1) }

// NegInf returns negative infinity, for open bounds.
func NegInf() float64 { return math.Inf(-1) }
