// Package eval implements the tree-walking evaluator: Eval(node, runtime)
// turns an ast.Node into a Value, or returns the first RuntimeError raised.
package eval

import "fmt"

// Kind tags a Value's underlying representation.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBoolean
	KindString
	KindCellAddress
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindCellAddress:
		return "CellAddress"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the tagged result of evaluating an expression. Only the field
// matching Kind is meaningful; copying a Value by assignment is always
// safe and is how Runtime.GetVariable hands back stored values.
type Value struct {
	Kind Kind

	Int   int64
	Float float64
	Bool  bool
	Str   string
	Row   int
	Col   int
}

func Integer(v int64) Value    { return Value{Kind: KindInteger, Int: v} }
func Float(v float64) Value    { return Value{Kind: KindFloat, Float: v} }
func Boolean(v bool) Value     { return Value{Kind: KindBoolean, Bool: v} }
func String(v string) Value    { return Value{Kind: KindString, Str: v} }
func CellAddress(r, c int) Value {
	return Value{Kind: KindCellAddress, Row: r, Col: c}
}

// EmptyString is the zero-value cell's cached value, and the value of an
// empty Block.
func EmptyString() Value { return String("") }

// NullString is the sentinel cached value installed on a cell whose AST
// raised an error during a sweep.
func NullString() Value { return String("NULL") }

// Render formats a Value the way the UI's display column shows it.
func (v Value) Render() string {
	switch v.Kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("%.2f", v.Float)
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindString:
		return v.Str
	case KindCellAddress:
		return fmt.Sprintf("[%d, %d]", v.Row, v.Col)
	default:
		return ""
	}
}
