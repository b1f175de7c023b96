// Package format is a canonicalizing pretty-printer for formula text,
// grounded on the teacher's tools/format.go: lex, parse, then reprint
// from the tree rather than the raw source, so two formulas that mean
// the same thing converge on the same text.
package format

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshm20/gridsheet/ast"
	"github.com/joshm20/gridsheet/lexer"
	"github.com/joshm20/gridsheet/parser"
	"github.com/joshm20/gridsheet/session"
)

// Format lexes and parses source, then reprints each top-level statement
// via the AST's Serialize method, joined with "; ". A formula with a lex or parse error is returned
// unchanged, paired with that error.
func Format(source string) (string, error) {
	toks, err := lexer.New(source).Lex()
	if err != nil {
		return source, err
	}
	node, err := parser.Parse(toks)
	if err != nil {
		return source, err
	}
	if block, ok := node.(*ast.Block); ok {
		parts := make([]string, len(block.Statements))
		for i, stmt := range block.Statements {
			parts[i] = stmt.Serialize()
		}
		return strings.Join(parts, "; "), nil
	}
	return node.Serialize(), nil
}

// FormatFile rewrites every statement in a batch cell-definition file in
// place, canonicalizing each formula's text and leaving comments and
// blank lines untouched. A statement that fails to format is left as-is
// in the rewritten file and its error is appended to the returned list.
func FormatFile(path string) ([]error, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided batch file path
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}

	var out strings.Builder
	var errs []error
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}
		row, col, src, err := session.ParseStatement(trimmed)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineNo, err))
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}
		formatted, err := Format(src)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d [%d,%d]: %w", lineNo, row, col, err))
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}
		out.WriteString(strconv.Itoa(row))
		out.WriteByte(',')
		out.WriteString(strconv.Itoa(col))
		out.WriteString(": ")
		out.WriteString(formatted)
		out.WriteByte('\n')
	}
	scanErr := scanner.Err()
	f.Close()
	if scanErr != nil {
		return errs, fmt.Errorf("reading batch file: %w", scanErr)
	}

	if err := os.WriteFile(path, []byte(out.String()), 0o600); err != nil {
		return errs, fmt.Errorf("writing formatted batch file: %w", err)
	}
	return errs, nil
}
