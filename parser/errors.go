package parser

import "fmt"

// Error reports a parse failure. Message is the exact wording the parser
// tests and the UI error pane rely on; expected-token messages that carry
// an index are filled in from the offending token's start offset.
type Error struct {
	Message string
	Offset  int
}

func (e *Error) Error() string { return e.Message }

// ErrorList aggregates parse failures across multiple cells, used by the
// lint tool to report every bad formula in a batch-loaded file in one pass
// instead of stopping at the first.
type ErrorList struct {
	Errors []error
}

func (l *ErrorList) Add(err error) {
	l.Errors = append(l.Errors, err)
}

func (l *ErrorList) Len() int { return len(l.Errors) }

func (l *ErrorList) Error() string {
	if len(l.Errors) == 0 {
		return ""
	}
	s := fmt.Sprintf("%d error(s):", len(l.Errors))
	for _, e := range l.Errors {
		s += "\n  " + e.Error()
	}
	return s
}
