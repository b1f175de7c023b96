// Package session is the façade the UI frontends drive: edit a cell's
// source text, read back its rendered value, source, or error.
package session

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshm20/gridsheet/ast"
	"github.com/joshm20/gridsheet/eval"
	"github.com/joshm20/gridsheet/grid"
	"github.com/joshm20/gridsheet/lexer"
	"github.com/joshm20/gridsheet/parser"
	"github.com/joshm20/gridsheet/runtime"
	"github.com/joshm20/gridsheet/trace"
)

// Session owns the one Grid for an interactive run and mediates every
// edit through lex -> parse -> install -> recompute.
type Session struct {
	Grid  *grid.Grid
	Trace *trace.CellTrace
}

// New creates a Session over a fresh rows x cols grid.
func New(rows, cols int) *Session {
	return &Session{Grid: grid.New(rows, cols)}
}

// EditCell lexes and parses source for (r, c). On success the new AST is
// installed and the error cleared; on a LexError or ParseError the cell's
// AST becomes the "NULL" string literal and the error field carries the
// failure message. Either way a full recompute sweep follows, matching
// the single-threaded edit_cell contract: the sweep always runs to
// completion before control returns to the caller.
func (s *Session) EditCell(r, c int, source string) {
	node, errMsg := compile(source)
	s.Grid.SetCell(r, c, source, node, errMsg)
	s.Recompute()
}

func compile(source string) (ast.Node, string) {
	toks, err := lexer.New(source).Lex()
	if err != nil {
		return &ast.StringLit{Value: "NULL", Sp: ast.NoSpan}, err.Error()
	}
	node, err := parser.Parse(toks)
	if err != nil {
		return &ast.StringLit{Value: "NULL", Sp: ast.NoSpan}, err.Error()
	}
	return node, ""
}

// Recompute runs one full row-major recomputation sweep against a fresh
// Runtime, optionally logging each cell to s.Trace.
func (s *Session) Recompute() {
	rt := runtime.New(s.Grid)
	if s.Trace == nil {
		s.Grid.RecomputeAll(rt)
		return
	}
	s.Trace.Sweep(s.Grid, rt)
}

// RenderValue serializes the cached value at (r, c) for display.
func (s *Session) RenderValue(r, c int) string {
	cell, ok := s.Grid.GetCell(r, c)
	if !ok {
		return ""
	}
	return cell.Cached.Render()
}

// RenderSource returns the raw source text last installed at (r, c).
func (s *Session) RenderSource(r, c int) string {
	cell, ok := s.Grid.GetCell(r, c)
	if !ok {
		return ""
	}
	return cell.Source
}

// RenderError returns the error message, if any, for (r, c).
func (s *Session) RenderError(r, c int) string {
	cell, ok := s.Grid.GetCell(r, c)
	if !ok {
		return ""
	}
	return cell.Error
}

// LoadFile reads a batch cell-definition file: one "row,col: source text"
// statement per non-blank line. It installs every cell before running a
// single recompute sweep at the end, rather than one sweep per line, so
// loading a large file stays cheap. This is initial text input only —
// there is no corresponding save-back of computed state.
func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path) // #nosec G304 -- user-provided batch file path
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r, c, src, err := ParseStatement(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		node, errMsg := compile(src)
		s.Grid.SetCell(r, c, src, node, errMsg)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}
	s.Recompute()
	return nil
}

// ParseStatement splits one "row,col: source text" line into its address
// and source text, shared by LoadFile and the lint/format tools.
func ParseStatement(line string) (row, col int, source string, err error) {
	colonIdx := strings.Index(line, ":")
	if colonIdx < 0 {
		return 0, 0, "", fmt.Errorf("missing ':' separating address from source: %q", line)
	}
	addr := strings.TrimSpace(line[:colonIdx])
	source = strings.TrimSpace(line[colonIdx+1:])

	parts := strings.SplitN(addr, ",", 2)
	if len(parts) != 2 {
		return 0, 0, "", fmt.Errorf("expected \"row,col\" address, got %q", addr)
	}
	row, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid row %q: %w", parts[0], err)
	}
	col, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid col %q: %w", parts[1], err)
	}
	return row, col, source, nil
}

// Value exposes the evaluator's Value type to callers that need more than
// the rendered string.
type Value = eval.Value
