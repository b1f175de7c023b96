// Package runtime binds a grid.Grid to a per-sweep variable environment,
// implementing eval.Runtime for the evaluator to read and write through.
package runtime

import (
	"github.com/joshm20/gridsheet/eval"
	"github.com/joshm20/gridsheet/grid"
)

// Runtime is created fresh (variables cleared) before every whole-grid
// recomputation sweep; the grid itself persists across sweeps.
type Runtime struct {
	g    *grid.Grid
	vars map[string]eval.Value
}

// New builds a Runtime over g with an empty variable map.
func New(g *grid.Grid) *Runtime {
	return &Runtime{g: g, vars: make(map[string]eval.Value)}
}

// GetCellValue returns the cell's cached value and whether (r, c) was in
// range, satisfying eval.Runtime.
func (rt *Runtime) GetCellValue(r, c int) (eval.Value, bool) {
	return rt.g.ValueAt(r, c)
}

// SetVariable binds name to a copy of v.
func (rt *Runtime) SetVariable(name string, v eval.Value) {
	rt.vars[name] = v
}

// GetVariable returns the value bound to name, or Integer 0 if name has
// never been assigned in this sweep — reading a variable never fails.
func (rt *Runtime) GetVariable(name string) eval.Value {
	if v, ok := rt.vars[name]; ok {
		return v
	}
	return eval.Integer(0)
}
