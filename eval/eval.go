package eval

import (
	"strings"

	"github.com/pkg/errors"
)

// Number is the set of numeric kinds a node can evaluate to.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type OperatorType string
type NodeType string

const (
	OpAdd      OperatorType = "add"
	OpSubtract OperatorType = "subtract"
	OpMultiply OperatorType = "multiply"
	OpDivide   OperatorType = "divide"
)

var symbols = map[OperatorType]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

func (op OperatorType) Symbol() string {
	if s, ok := symbols[op]; ok {
		return s
	}
	return string(op)
}

const (
	OperandNode    NodeType = "operand"
	ExpressionNode NodeType = "expression"
)

// Node is an element of an expression tree of family F evaluating to T.
//
// Family is part of the method set, so nodes of different families are
// distinct types and cannot be combined by the builders.
type Node[F Family, T Number] interface {
	Eval() (T, error)
	Type() NodeType
	Family() F

	render(sb *strings.Builder)
	snapshot() Node[F, T]
}

// Expression combines two child nodes with an arithmetic operator. Children
// are evaluated on every call, left before right.
type Expression[F Family, T Number] struct {
	Operator OperatorType

	Left  Node[F, T]
	Right Node[F, T]
}

func Binary[F Family, T Number](op OperatorType, lhs, rhs Node[F, T]) *Expression[F, T] {
	return &Expression[F, T]{
		Operator: op,
		Left:     lhs,
		Right:    rhs,
	}
}

func Add[F Family, T Number](lhs, rhs Node[F, T]) *Expression[F, T] {
	return Binary(OpAdd, lhs, rhs)
}

func Subtract[F Family, T Number](lhs, rhs Node[F, T]) *Expression[F, T] {
	return Binary(OpSubtract, lhs, rhs)
}

func Multiply[F Family, T Number](lhs, rhs Node[F, T]) *Expression[F, T] {
	return Binary(OpMultiply, lhs, rhs)
}

func Divide[F Family, T Number](lhs, rhs Node[F, T]) *Expression[F, T] {
	return Binary(OpDivide, lhs, rhs)
}

// BinaryValue combines lhs with a raw value promoted to an operand of the
// same family.
func BinaryValue[F ImplicitConversion, T Number](op OperatorType, lhs Node[F, T], v T) *Expression[F, T] {
	return Binary[F, T](op, lhs, Value[F](v))
}

// ValueBinary is BinaryValue with the raw value on the left.
func ValueBinary[F ImplicitConversion, T Number](op OperatorType, v T, rhs Node[F, T]) *Expression[F, T] {
	return Binary[F, T](op, Value[F](v), rhs)
}

func AddValue[F ImplicitConversion, T Number](lhs Node[F, T], v T) *Expression[F, T] {
	return BinaryValue(OpAdd, lhs, v)
}

func SubtractValue[F ImplicitConversion, T Number](lhs Node[F, T], v T) *Expression[F, T] {
	return BinaryValue(OpSubtract, lhs, v)
}

func MultiplyValue[F ImplicitConversion, T Number](lhs Node[F, T], v T) *Expression[F, T] {
	return BinaryValue(OpMultiply, lhs, v)
}

func DivideValue[F ImplicitConversion, T Number](lhs Node[F, T], v T) *Expression[F, T] {
	return BinaryValue(OpDivide, lhs, v)
}

func ValueAdd[F ImplicitConversion, T Number](v T, rhs Node[F, T]) *Expression[F, T] {
	return ValueBinary(OpAdd, v, rhs)
}

func ValueSubtract[F ImplicitConversion, T Number](v T, rhs Node[F, T]) *Expression[F, T] {
	return ValueBinary(OpSubtract, v, rhs)
}

func ValueMultiply[F ImplicitConversion, T Number](v T, rhs Node[F, T]) *Expression[F, T] {
	return ValueBinary(OpMultiply, v, rhs)
}

func ValueDivide[F ImplicitConversion, T Number](v T, rhs Node[F, T]) *Expression[F, T] {
	return ValueBinary(OpDivide, v, rhs)
}

func (expr *Expression[F, T]) Eval() (T, error) {
	if expr.Left == nil || expr.Right == nil {
		return 0, errors.Errorf("%s expression is missing an operand", expr.Operator)
	}

	left, err := expr.Left.Eval()
	if err != nil {
		return 0, err
	}

	right, err := expr.Right.Eval()
	if err != nil {
		return 0, err
	}

	if isChecked[F]() {
		return evaluateChecked(expr.Operator, left, right)
	}
	return evaluate(expr.Operator, left, right)
}

func (expr *Expression[F, T]) Type() NodeType {
	return ExpressionNode
}

func (expr *Expression[F, T]) Family() F {
	var f F
	return f
}

func (expr *Expression[F, T]) render(sb *strings.Builder) {
	renderOperand(sb, expr.Left)
	sb.WriteString(" ")
	sb.WriteString(expr.Operator.Symbol())
	sb.WriteString(" ")
	renderOperand(sb, expr.Right)
}

func (expr *Expression[F, T]) snapshot() Node[F, T] {
	return &Expression[F, T]{
		Operator: expr.Operator,
		Left:     snapshotNode(expr.Left),
		Right:    snapshotNode(expr.Right),
	}
}

// CheckOverflow evaluates n and reports the first overflow or division by
// zero found in it.
func CheckOverflow[F OverflowChecked, T Number](n Node[F, T]) error {
	_, err := n.Eval()
	return err
}

// Snapshot copies n with every operand value frozen at its current value. The
// copy is unaffected by later Set or Assign calls on the original operands.
func Snapshot[F Family, T Number](n Node[F, T]) Node[F, T] {
	return snapshotNode(n)
}

// snapshotNode keeps missing children missing.
func snapshotNode[F Family, T Number](n Node[F, T]) Node[F, T] {
	if n == nil {
		return nil
	}
	return n.snapshot()
}
