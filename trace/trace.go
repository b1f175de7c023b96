// Package trace logs cell recomputation sweeps, generalizing the
// teacher's optional instruction/register trace writers to the grid's
// row-major recompute sweep.
package trace

import (
	"fmt"
	"io"
	"time"

	"github.com/joshm20/gridsheet/eval"
	"github.com/joshm20/gridsheet/grid"
)

// CellTrace writes one line per recomputed cell that has source text when
// enabled. A nil
// *CellTrace (or one with a nil Writer) performs no logging; callers
// don't need to branch on whether tracing is on before calling Sweep.
type CellTrace struct {
	Writer io.Writer
}

// New creates a CellTrace writing to w. Passing a nil w disables logging.
func New(w io.Writer) *CellTrace {
	return &CellTrace{Writer: w}
}

// Sweep runs one row-major recompute over g against rt, writing a trace
// line for every cell whose AST is non-trivial (source is non-empty).
func (t *CellTrace) Sweep(g *grid.Grid, rt eval.Runtime) {
	if t == nil || t.Writer == nil {
		g.RecomputeAll(rt)
		return
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, ok := g.GetCell(r, c)
			if !ok {
				continue
			}

			start := time.Now()
			before, after := g.RecomputeCell(r, c, rt)
			elapsed := time.Since(start)

			if cell.Source != "" {
				fmt.Fprintf(t.Writer, "[%d,%d] %s -> %s (%s)\n", r, c, before.Render(), after.Render(), elapsed)
			}
		}
	}
}
