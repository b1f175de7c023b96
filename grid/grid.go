// Package grid owns the fixed rectangular table of cells the formula
// core reads from and writes to.
package grid

import (
	"github.com/joshm20/gridsheet/ast"
	"github.com/joshm20/gridsheet/eval"
)

// Cell is one grid slot: the source text the user typed, the AST parsed
// from it, the value cached from the most recent sweep, and an error
// message set when that AST failed to evaluate (or failed to parse in
// the first place).
type Cell struct {
	Source string
	AST    ast.Node
	Cached eval.Value
	Error  string

	// compileErr is the lex/parse error installed by SetCell; a sweep
	// restores it when the AST evaluates cleanly.
	compileErr string
}

// DefaultCell is the zero-value state every grid slot starts in.
func DefaultCell() Cell {
	return Cell{
		Source: "",
		AST:    ast.EmptyStringLiteral(),
		Cached: eval.EmptyString(),
		Error:  "",
	}
}

// Grid is a fixed R x C rectangle of cells, addressed row-major. Cells are
// owned by value; nothing outside Grid holds a live reference to one, so
// Eval reads the current value through Runtime.GetCellValue instead of a
// shared pointer.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// New creates an R x C grid with every cell in its default state.
func New(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for r := range cells {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = DefaultCell()
		}
		cells[r] = row
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inRange(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// GetCell returns a copy of the cell at (r, c) and whether it was in
// range.
func (g *Grid) GetCell(r, c int) (Cell, bool) {
	if !g.inRange(r, c) {
		return Cell{}, false
	}
	return g.cells[r][c], true
}

// SetCell installs new source/AST/error state on a cell and resets its
// cached value to the empty string pending the next sweep.
func (g *Grid) SetCell(r, c int, source string, node ast.Node, errMsg string) {
	if !g.inRange(r, c) {
		return
	}
	g.cells[r][c] = Cell{
		Source:     source,
		AST:        node,
		Cached:     eval.EmptyString(),
		Error:      errMsg,
		compileErr: errMsg,
	}
}

// ValueAt returns the cached value at (r, c). It never re-evaluates; the
// value reflects the most recent RecomputeAll sweep.
func (g *Grid) ValueAt(r, c int) (eval.Value, bool) {
	if !g.inRange(r, c) {
		return eval.Value{}, false
	}
	return g.cells[r][c].Cached, true
}

// RecomputeAll re-evaluates every cell's AST in row-major order against rt,
// updating each cell's cached value in place. A cell whose AST raises a
// RuntimeError is isolated: it gets the "NULL" string sentinel and its
// error field set, and the sweep continues with the remaining cells.
func (g *Grid) RecomputeAll(rt eval.Runtime) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.RecomputeCell(r, c, rt)
		}
	}
}

// RecomputeCell re-evaluates a single cell's AST against rt, updating its
// cached value and error field in place, and returns the value it had
// before and after the re-evaluation. Exposed separately from
// RecomputeAll so callers (the trace package) can observe per-cell
// transitions without reimplementing the isolation logic.
func (g *Grid) RecomputeCell(r, c int, rt eval.Runtime) (before, after eval.Value) {
	if !g.inRange(r, c) {
		return eval.Value{}, eval.Value{}
	}
	cell := g.cells[r][c]
	before = cell.Cached

	v, err := eval.Eval(cell.AST, rt)
	if err != nil {
		cell.Cached = eval.NullString()
		cell.Error = err.Error()
	} else {
		cell.Cached = v
		cell.Error = cell.compileErr
	}
	g.cells[r][c] = cell
	return before, cell.Cached
}
