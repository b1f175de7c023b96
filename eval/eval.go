package eval

import (
	"fmt"
	"math"

	"github.com/joshm20/gridsheet/ast"
	"github.com/joshm20/gridsheet/token"
)

// Runtime is the evaluation environment: cell lookup plus a variable
// store. runtime.Runtime is the concrete implementation; Eval only depends
// on this interface so that eval never imports grid, avoiding a cycle.
type Runtime interface {
	GetCellValue(row, col int) (Value, bool)
	GetVariable(name string) Value
	SetVariable(name string, v Value)
}

// Eval walks node against rt and returns its Value, or the first
// RuntimeError raised. Dispatch is a type switch over the concrete
// ast.Node implementations, since Go has no virtual-dispatch evaluate
// method to override.
func Eval(node ast.Node, rt Runtime) (Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLit:
		return Integer(n.Value), nil
	case *ast.FloatLit:
		return Float(n.Value), nil
	case *ast.BooleanLit:
		return Boolean(n.Value), nil
	case *ast.StringLit:
		return String(n.Value), nil
	case *ast.CellAddressLit:
		return CellAddress(n.Row, n.Col), nil
	case *ast.Variable:
		return rt.GetVariable(n.Name), nil
	case *ast.Block:
		return evalBlock(n, rt)
	case *ast.If:
		return evalIf(n, rt)
	case *ast.For:
		return evalFor(n, rt)
	case *ast.UnaryExpr:
		return evalUnary(n, rt)
	case *ast.BinaryExpr:
		return evalBinary(n, rt)
	default:
		return Value{}, errf(fmt.Sprintf("unsupported node type %T", node))
	}
}

func evalBlock(n *ast.Block, rt Runtime) (Value, error) {
	if len(n.Statements) == 0 {
		return EmptyString(), nil
	}
	var result Value
	for _, stmt := range n.Statements {
		v, err := Eval(stmt, rt)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

func evalIf(n *ast.If, rt Runtime) (Value, error) {
	cond, err := Eval(n.Cond, rt)
	if err != nil {
		return Value{}, err
	}
	if cond.Kind != KindBoolean {
		return Value{}, errf("Condition must evaluate to a boolean")
	}
	if cond.Bool {
		return Eval(n.Then, rt)
	}
	return Eval(n.Else, rt)
}

func evalFor(n *ast.For, rt Runtime) (Value, error) {
	top, err := Eval(n.Top, rt)
	if err != nil {
		return Value{}, err
	}
	bottom, err := Eval(n.Bottom, rt)
	if err != nil {
		return Value{}, err
	}
	if top.Kind != KindCellAddress || bottom.Kind != KindCellAddress {
		return Value{}, errf("For range endpoints must be cell addresses")
	}
	if top.Row > bottom.Row || top.Col > bottom.Col {
		return Value{}, errf("Cells must be ordered (topLeft, bottomRight)")
	}

	result := EmptyString()
	for r := top.Row; r <= bottom.Row; r++ {
		for c := top.Col; c <= bottom.Col; c++ {
			cell, ok := rt.GetCellValue(r, c)
			if !ok {
				return Value{}, errf("Cell address out of range")
			}
			rt.SetVariable(n.Var, cell)
			result, err = Eval(n.Body, rt)
			if err != nil {
				return Value{}, err
			}
		}
	}
	return result, nil
}

func evalUnary(n *ast.UnaryExpr, rt Runtime) (Value, error) {
	v, err := Eval(n.Operand, rt)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case token.MINUS:
		switch v.Kind {
		case KindInteger:
			return Integer(-v.Int), nil
		case KindFloat:
			return Float(-v.Float), nil
		}
		return Value{}, errf(fmt.Sprintf("Unary - requires Integer or Float, got %s", v.Kind))

	case token.NOT:
		if v.Kind != KindBoolean {
			return Value{}, errf(fmt.Sprintf("Unary ! requires Boolean, got %s", v.Kind))
		}
		return Boolean(!v.Bool), nil

	case token.BITNOT:
		if v.Kind != KindInteger {
			return Value{}, errf(fmt.Sprintf("Unary ~ requires Integer, got %s", v.Kind))
		}
		return Integer(^v.Int), nil

	case token.FLOATTOINT: // int(x): truncate Float to Integer, identity on Integer
		switch v.Kind {
		case KindFloat:
			return Integer(int64(v.Float)), nil
		case KindInteger:
			return v, nil
		}
		return Value{}, errf(fmt.Sprintf("int() requires Integer or Float, got %s", v.Kind))

	case token.INTTOFLOAT: // float(x): promote Integer to Float, identity on Float
		switch v.Kind {
		case KindInteger:
			return Float(float64(v.Int)), nil
		case KindFloat:
			return v, nil
		}
		return Value{}, errf(fmt.Sprintf("float() requires Integer or Float, got %s", v.Kind))

	default:
		return Value{}, errf(fmt.Sprintf("unsupported unary operator %s", n.Op))
	}
}

func evalBinary(n *ast.BinaryExpr, rt Runtime) (Value, error) {
	switch n.Op {
	case token.ASSIGNMENT:
		return evalAssignment(n, rt)
	case token.LEFTBRACKET:
		return evalLValue(n, rt)
	case token.HASHTAG:
		return evalRValue(n, rt)
	case token.SUM, token.MEAN, token.MIN, token.MAX:
		return evalAggregate(n, rt)
	case token.AND:
		return evalAnd(n, rt)
	case token.OR:
		return evalOr(n, rt)
	}

	left, err := Eval(n.Left, rt)
	if err != nil {
		return Value{}, err
	}
	right, err := Eval(n.Right, rt)
	if err != nil {
		return Value{}, err
	}
	return evalArith(n.Op, left, right)
}

func evalAssignment(n *ast.BinaryExpr, rt Runtime) (Value, error) {
	v, err := Eval(n.Right, rt)
	if err != nil {
		return Value{}, err
	}
	lhs, ok := n.Left.(*ast.Variable)
	if !ok {
		return Value{}, errf("Assignment target must be a variable")
	}
	rt.SetVariable(lhs.Name, v)
	return v, nil
}

func evalLValue(n *ast.BinaryExpr, rt Runtime) (Value, error) {
	left, err := Eval(n.Left, rt)
	if err != nil {
		return Value{}, err
	}
	right, err := Eval(n.Right, rt)
	if err != nil {
		return Value{}, err
	}
	if left.Kind != KindInteger || right.Kind != KindInteger {
		return Value{}, errf("Cell reference indices must be Integer")
	}
	return CellAddress(int(left.Int), int(right.Int)), nil
}

func evalRValue(n *ast.BinaryExpr, rt Runtime) (Value, error) {
	left, err := Eval(n.Left, rt)
	if err != nil {
		return Value{}, err
	}
	right, err := Eval(n.Right, rt)
	if err != nil {
		return Value{}, err
	}
	if left.Kind != KindInteger || right.Kind != KindInteger {
		return Value{}, errf("Cell reference indices must be Integer")
	}
	v, ok := rt.GetCellValue(int(left.Int), int(right.Int))
	if !ok {
		return Value{}, errf("Cell address out of range")
	}
	return v, nil
}

func evalAggregate(n *ast.BinaryExpr, rt Runtime) (Value, error) {
	tl, err := Eval(n.Left, rt)
	if err != nil {
		return Value{}, err
	}
	br, err := Eval(n.Right, rt)
	if err != nil {
		return Value{}, err
	}
	if tl.Kind != KindCellAddress || br.Kind != KindCellAddress {
		return Value{}, errf("Aggregate arguments must be cell addresses")
	}
	if tl.Row > br.Row || tl.Col > br.Col {
		return Value{}, errf("Cells must be ordered (topLeft, bottomRight)")
	}

	var sum float64
	var count int
	var maxV, minV float64
	haveExtreme := false

	for r := tl.Row; r <= br.Row; r++ {
		for c := tl.Col; c <= br.Col; c++ {
			cell, ok := rt.GetCellValue(r, c)
			if !ok {
				return Value{}, errf("Cell address out of range")
			}
			switch cell.Kind {
			case KindBoolean, KindCellAddress:
				continue
			case KindString:
				continue
			case KindInteger:
				f := float64(cell.Int)
				sum += f
				count++
				if !haveExtreme || f > maxV {
					maxV = f
				}
				if !haveExtreme || f < minV {
					minV = f
				}
				haveExtreme = true
			case KindFloat:
				f := cell.Float
				sum += f
				count++
				if !haveExtreme || f > maxV {
					maxV = f
				}
				if !haveExtreme || f < minV {
					minV = f
				}
				haveExtreme = true
			default:
				return Value{}, errf("Unsupported type in Sum operation (Supports Integers and Floats)")
			}
		}
	}

	switch n.Op {
	case token.SUM:
		return Float(sum), nil
	case token.MEAN:
		if count == 0 {
			return Float(0), nil
		}
		return Float(sum / float64(count)), nil
	case token.MAX:
		if !haveExtreme {
			return Float(0), nil
		}
		return Float(maxV), nil
	case token.MIN:
		if !haveExtreme {
			return Float(0), nil
		}
		return Float(minV), nil
	default:
		return Value{}, errf(fmt.Sprintf("unsupported aggregate operator %s", n.Op))
	}
}

// evalAnd/evalOr short-circuit on the left operand; the right side is
// only evaluated (and only then can it raise) when necessary. The Or
// case intentionally computes logical ||, correcting a bug in the
// original evaluator that computed && here instead.
func evalAnd(n *ast.BinaryExpr, rt Runtime) (Value, error) {
	left, err := Eval(n.Left, rt)
	if err != nil {
		return Value{}, err
	}
	if left.Kind != KindBoolean {
		return Value{}, errf(fmt.Sprintf("&& requires Boolean operands, got %s", left.Kind))
	}
	if !left.Bool {
		return Boolean(false), nil
	}
	right, err := Eval(n.Right, rt)
	if err != nil {
		return Value{}, err
	}
	if right.Kind != KindBoolean {
		return Value{}, errf(fmt.Sprintf("&& requires Boolean operands, got %s", right.Kind))
	}
	return Boolean(right.Bool), nil
}

func evalOr(n *ast.BinaryExpr, rt Runtime) (Value, error) {
	left, err := Eval(n.Left, rt)
	if err != nil {
		return Value{}, err
	}
	if left.Kind != KindBoolean {
		return Value{}, errf(fmt.Sprintf("|| requires Boolean operands, got %s", left.Kind))
	}
	if left.Bool {
		return Boolean(true), nil
	}
	right, err := Eval(n.Right, rt)
	if err != nil {
		return Value{}, err
	}
	if right.Kind != KindBoolean {
		return Value{}, errf(fmt.Sprintf("|| requires Boolean operands, got %s", right.Kind))
	}
	return Boolean(right.Bool), nil
}

func evalArith(op token.Type, left, right Value) (Value, error) {
	switch op {
	case token.PLUS:
		return evalAdd(left, right)
	case token.MINUS:
		return evalNumeric(op, left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case token.MULTIPLY:
		return evalNumeric(op, left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case token.DIVIDE:
		return evalDivide(left, right)
	case token.MODULO:
		return evalModulo(left, right)
	case token.EXPONENTIATE:
		return evalExponent(left, right)
	case token.BITAND:
		return evalBitwise(op, left, right, func(a, b int64) int64 { return a & b })
	case token.BITOR:
		return evalBitwise(op, left, right, func(a, b int64) int64 { return a | b })
	case token.BITXOR:
		return evalBitwise(op, left, right, func(a, b int64) int64 { return a ^ b })
	case token.LEFTSHIFT:
		return evalBitwise(op, left, right, func(a, b int64) int64 { return a << uint(b) })
	case token.RIGHTSHIFT:
		return evalBitwise(op, left, right, func(a, b int64) int64 { return a >> uint(b) })
	case token.EQUALS:
		return evalEquality(left, right, true)
	case token.NOTEQUALS:
		return evalEquality(left, right, false)
	case token.LESSTHAN, token.LESSTHANEQUAL, token.GREATERTHAN, token.GREATERTHANEQUAL:
		return evalCompare(op, left, right)
	default:
		return Value{}, errf(fmt.Sprintf("unsupported binary operator %s", op))
	}
}

func evalAdd(left, right Value) (Value, error) {
	switch {
	case left.Kind == KindInteger && right.Kind == KindInteger:
		return Integer(left.Int + right.Int), nil
	case left.Kind == KindFloat && right.Kind == KindFloat:
		return Float(left.Float + right.Float), nil
	case left.Kind == KindInteger && right.Kind == KindFloat:
		return Float(float64(left.Int) + right.Float), nil
	case left.Kind == KindFloat && right.Kind == KindInteger:
		return Float(left.Float + float64(right.Int)), nil
	case left.Kind == KindString && right.Kind == KindString:
		return String(left.Str + right.Str), nil
	default:
		return Value{}, errf(fmt.Sprintf("Type mismatch for +: (%s, %s)", left.Kind, right.Kind))
	}
}

func evalNumeric(op token.Type, left, right Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (Value, error) {
	switch {
	case left.Kind == KindInteger && right.Kind == KindInteger:
		return Integer(intOp(left.Int, right.Int)), nil
	case left.Kind == KindFloat && right.Kind == KindFloat:
		return Float(floatOp(left.Float, right.Float)), nil
	case left.Kind == KindInteger && right.Kind == KindFloat:
		return Float(floatOp(float64(left.Int), right.Float)), nil
	case left.Kind == KindFloat && right.Kind == KindInteger:
		return Float(floatOp(left.Float, float64(right.Int))), nil
	default:
		return Value{}, errf(fmt.Sprintf("Type mismatch for %s: (%s, %s)", op, left.Kind, right.Kind))
	}
}

func evalDivide(left, right Value) (Value, error) {
	switch {
	case left.Kind == KindInteger && right.Kind == KindInteger:
		if right.Int == 0 {
			return Value{}, errf("Division by zero error")
		}
		return Integer(truncDiv(left.Int, right.Int)), nil
	case left.Kind == KindFloat && right.Kind == KindFloat:
		if right.Float == 0 {
			return Value{}, errf("Division by zero error")
		}
		return Float(left.Float / right.Float), nil
	case left.Kind == KindInteger && right.Kind == KindFloat:
		if right.Float == 0 {
			return Value{}, errf("Division by zero error")
		}
		return Float(float64(left.Int) / right.Float), nil
	case left.Kind == KindFloat && right.Kind == KindInteger:
		if right.Int == 0 {
			return Value{}, errf("Division by zero error")
		}
		return Float(left.Float / float64(right.Int)), nil
	default:
		return Value{}, errf(fmt.Sprintf("Type mismatch for /: (%s, %s)", left.Kind, right.Kind))
	}
}

func truncDiv(a, b int64) int64 {
	q := a / b // Go's integer division already truncates toward zero.
	return q
}

func evalModulo(left, right Value) (Value, error) {
	if left.Kind != KindInteger || right.Kind != KindInteger {
		return Value{}, errf(fmt.Sprintf("Type mismatch for %%: (%s, %s)", left.Kind, right.Kind))
	}
	if right.Int == 0 {
		return Value{}, errf("Modulo by zero error")
	}
	return Integer(left.Int % right.Int), nil
}

func evalExponent(left, right Value) (Value, error) {
	switch {
	case left.Kind == KindInteger && right.Kind == KindInteger:
		return Integer(int64(math.Trunc(math.Pow(float64(left.Int), float64(right.Int))))), nil
	case left.Kind == KindFloat && right.Kind == KindFloat:
		return Float(math.Pow(left.Float, right.Float)), nil
	default:
		return Value{}, errf(fmt.Sprintf("** requires identical Integer or Float operands, got (%s, %s)", left.Kind, right.Kind))
	}
}

func evalBitwise(op token.Type, left, right Value, f func(a, b int64) int64) (Value, error) {
	if left.Kind != KindInteger || right.Kind != KindInteger {
		return Value{}, errf(fmt.Sprintf("Type mismatch for %s: (%s, %s)", op, left.Kind, right.Kind))
	}
	return Integer(f(left.Int, right.Int)), nil
}

func evalEquality(left, right Value, wantEqual bool) (Value, error) {
	if left.Kind != right.Kind {
		return Value{}, errf(fmt.Sprintf("Type mismatch for equality: (%s, %s)", left.Kind, right.Kind))
	}
	var equal bool
	switch left.Kind {
	case KindInteger:
		equal = left.Int == right.Int
	case KindFloat:
		equal = left.Float == right.Float
	case KindBoolean:
		equal = left.Bool == right.Bool
	case KindString:
		equal = left.Str == right.Str
	case KindCellAddress:
		equal = left.Row == right.Row && left.Col == right.Col
	}
	if wantEqual {
		return Boolean(equal), nil
	}
	return Boolean(!equal), nil
}

func evalCompare(op token.Type, left, right Value) (Value, error) {
	var cmp int
	switch {
	case left.Kind == KindInteger && right.Kind == KindInteger:
		switch {
		case left.Int < right.Int:
			cmp = -1
		case left.Int > right.Int:
			cmp = 1
		}
	case left.Kind == KindFloat && right.Kind == KindFloat:
		switch {
		case left.Float < right.Float:
			cmp = -1
		case left.Float > right.Float:
			cmp = 1
		}
	default:
		return Value{}, errf(fmt.Sprintf("Comparison requires matching Integer or Float operands, got (%s, %s)", left.Kind, right.Kind))
	}

	switch op {
	case token.LESSTHAN:
		return Boolean(cmp < 0), nil
	case token.LESSTHANEQUAL:
		return Boolean(cmp <= 0), nil
	case token.GREATERTHAN:
		return Boolean(cmp > 0), nil
	case token.GREATERTHANEQUAL:
		return Boolean(cmp >= 0), nil
	default:
		return Value{}, errf(fmt.Sprintf("unsupported comparison operator %s", op))
	}
}
