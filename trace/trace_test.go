package trace

import (
	"strings"
	"testing"

	"github.com/joshm20/gridsheet/ast"
	"github.com/joshm20/gridsheet/grid"
	"github.com/joshm20/gridsheet/runtime"
	"github.com/joshm20/gridsheet/token"
)

func addOneAndOne() ast.Node {
	return &ast.BinaryExpr{
		Op:    token.PLUS,
		Left:  &ast.IntegerLit{Value: 1},
		Right: &ast.IntegerLit{Value: 1},
	}
}

func TestSweepWritesOneLinePerNonEmptyCell(t *testing.T) {
	g := grid.New(2, 2)
	g.SetCell(0, 0, "1 + 1", addOneAndOne(), "")

	var buf strings.Builder
	tr := New(&buf)
	tr.Sweep(g, runtime.New(g))

	out := buf.String()
	if !strings.Contains(out, "[0,0]") {
		t.Fatalf("expected trace output to mention cell [0,0], got %q", out)
	}
	if strings.Contains(out, "[0,1]") || strings.Contains(out, "[1,0]") || strings.Contains(out, "[1,1]") {
		t.Errorf("expected no trace lines for untouched default cells, got %q", out)
	}
}

func TestNilWriterSkipsLoggingButStillRecomputes(t *testing.T) {
	g := grid.New(1, 1)
	g.SetCell(0, 0, "1 + 1", addOneAndOne(), "")

	tr := New(nil)
	tr.Sweep(g, runtime.New(g))

	v, ok := g.ValueAt(0, 0)
	if !ok || v.Int != 2 {
		t.Fatalf("expected cell to recompute to 2 even without a trace writer, got %+v (ok=%v)", v, ok)
	}
}

func TestNilTraceIsANoOp(t *testing.T) {
	var tr *CellTrace
	g := grid.New(1, 1)
	g.SetCell(0, 0, "1 + 1", addOneAndOne(), "")
	tr.Sweep(g, runtime.New(g))

	v, ok := g.ValueAt(0, 0)
	if !ok || v.Int != 2 {
		t.Fatalf("expected a nil *CellTrace to still recompute, got %+v (ok=%v)", v, ok)
	}
}
