package ast_test

import (
	"testing"

	"github.com/joshm20/gridsheet/ast"
	"github.com/joshm20/gridsheet/token"
)

func TestSerializeBinaryForms(t *testing.T) {
	one := &ast.IntegerLit{Value: 1}
	two := &ast.IntegerLit{Value: 2}

	tests := []struct {
		op   token.Type
		want string
	}{
		{token.PLUS, "(1 + 2)"},
		{token.MINUS, "(1 - 2)"},
		{token.MULTIPLY, "(1 * 2)"},
		{token.DIVIDE, "(1 / 2)"},
		{token.MODULO, "(1 % 2)"},
		{token.EXPONENTIATE, "(1 ** 2)"},
		{token.AND, "(1 && 2)"},
		{token.OR, "(1 || 2)"},
		{token.BITAND, "(1 & 2)"},
		{token.BITOR, "(1 | 2)"},
		{token.BITXOR, "(1 ^^ 2)"},
		{token.LEFTSHIFT, "(1 << 2)"},
		{token.RIGHTSHIFT, "(1 >> 2)"},
		{token.EQUALS, "(1 == 2)"},
		{token.NOTEQUALS, "(1 != 2)"},
		{token.LESSTHAN, "(1 < 2)"},
		{token.LESSTHANEQUAL, "(1 <= 2)"},
		{token.GREATERTHAN, "(1 > 2)"},
		{token.GREATERTHANEQUAL, "(1 >= 2)"},
		{token.ASSIGNMENT, "1 = 2"},
		{token.LEFTBRACKET, "[1, 2]"},
		{token.HASHTAG, "#[1, 2]"},
		{token.MAX, "(max(1, 2))"},
		{token.MIN, "(min(1, 2))"},
		{token.MEAN, "mean(1, 2)"},
		{token.SUM, "sum(1, 2)"},
	}

	for _, tt := range tests {
		n := &ast.BinaryExpr{Op: tt.op, Left: one, Right: two}
		if got := n.Serialize(); got != tt.want {
			t.Errorf("Serialize(%s) = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestSerializeUnaryForms(t *testing.T) {
	inner := &ast.IntegerLit{Value: 3}
	tests := []struct {
		op   token.Type
		want string
	}{
		{token.MINUS, "(-(3))"},
		{token.NOT, "!(3)"},
		{token.BITNOT, "~(3)"},
		{token.FLOATTOINT, "(int(3))"},
		{token.INTTOFLOAT, "(float(3))"},
	}
	for _, tt := range tests {
		n := &ast.UnaryExpr{Op: tt.op, Operand: inner}
		if got := n.Serialize(); got != tt.want {
			t.Errorf("Serialize(%s) = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestSerializeVariableBlockIfFor(t *testing.T) {
	v := &ast.Variable{Name: "x"}
	if got, want := v.Serialize(), "Variable:x"; got != want {
		t.Errorf("Variable.Serialize() = %q, want %q", got, want)
	}

	block := &ast.Block{Statements: []ast.Node{
		&ast.IntegerLit{Value: 1},
		&ast.IntegerLit{Value: 2},
	}}
	if got, want := block.Serialize(), "Block: {1; 2}"; got != want {
		t.Errorf("Block.Serialize() = %q, want %q", got, want)
	}

	ifNode := &ast.If{
		Cond: &ast.BooleanLit{Value: true},
		Then: &ast.Block{Statements: []ast.Node{&ast.IntegerLit{Value: 1}}},
		Else: &ast.Block{Statements: []ast.Node{&ast.IntegerLit{Value: 2}}},
	}
	if got, want := ifNode.Serialize(), "IF true: Block: {1} ELSE Block: {2}"; got != want {
		t.Errorf("If.Serialize() = %q, want %q", got, want)
	}

	forNode := &ast.For{
		Var:    "i",
		Top:    &ast.IntegerLit{Value: 0},
		Bottom: &ast.IntegerLit{Value: 1},
		Body:   &ast.Block{Statements: []ast.Node{&ast.Variable{Name: "i"}}},
	}
	if got, want := forNode.Serialize(), "FOR i IN 0..1: Block: {Variable:i}"; got != want {
		t.Errorf("For.Serialize() = %q, want %q", got, want)
	}
}

func TestEmptyStringLiteral(t *testing.T) {
	n := ast.EmptyStringLiteral()
	lit, ok := n.(*ast.StringLit)
	if !ok {
		t.Fatalf("expected *ast.StringLit, got %T", n)
	}
	if lit.Value != "" {
		t.Errorf("expected empty string value, got %q", lit.Value)
	}
	if n.Span() != ast.NoSpan {
		t.Errorf("expected the sentinel span, got %+v", n.Span())
	}
}

func TestSpanSentinel(t *testing.T) {
	if ast.NoSpan.Start != -1 || ast.NoSpan.End != -1 {
		t.Errorf("NoSpan = %+v, want (-1, -1)", ast.NoSpan)
	}
}
