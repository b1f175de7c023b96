// Package lint statically validates a batch cell-definition file without
// installing anything on a grid: every non-blank statement is lexed and
// parsed, and every failure is collected rather than stopping at the
// first, mirroring the teacher's tools/lint.go one-pass-over-everything
// design (there applied to labels and reachability, here to formula
// syntax).
package lint

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joshm20/gridsheet/lexer"
	"github.com/joshm20/gridsheet/parser"
	"github.com/joshm20/gridsheet/session"
)

// Issue is one formula that failed to lex or parse.
type Issue struct {
	Row     int
	Col     int
	Line    int
	Message string
}

func (i *Issue) Error() string {
	return fmt.Sprintf("line %d [%d,%d]: %s", i.Line, i.Row, i.Col, i.Message)
}

// LintFile reads a batch cell-definition file and reports every statement
// whose source text fails to lex or parse. It never touches a grid.
func LintFile(path string) (*parser.ErrorList, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided batch file path
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	issues := &parser.ErrorList{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, col, src, err := session.ParseStatement(line)
		if err != nil {
			issues.Add(&Issue{Line: lineNo, Message: err.Error()})
			continue
		}
		if issue := LintSource(row, col, src); issue != nil {
			issue.Line = lineNo
			issues.Add(issue)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return issues, nil
}

// LintSource lexes and parses a single cell's formula text and reports the
// first failure, if any. A nil result means the formula is well-formed.
func LintSource(row, col int, source string) *Issue {
	toks, err := lexer.New(source).Lex()
	if err != nil {
		return &Issue{Row: row, Col: col, Message: err.Error()}
	}
	if _, err := parser.Parse(toks); err != nil {
		return &Issue{Row: row, Col: col, Message: err.Error()}
	}
	return nil
}
