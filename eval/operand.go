package eval

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Operand is a leaf holding a value. Trees reference operands by pointer, so
// a Set or Assign on an operand is seen by every later evaluation of a tree
// that contains it.
type Operand[F Family, T Number] struct {
	value  T
	logger *zap.Logger
}

type operandOptions struct {
	logger *zap.Logger
}

type OperandOption func(*operandOptions)

// WithLogger sets the logger that receives assignment statements of loggable
// families.
func WithLogger(logger *zap.Logger) OperandOption {
	return func(o *operandOptions) {
		o.logger = logger
	}
}

func NewOperand[F Family, T Number](v T, opts ...OperandOption) *Operand[F, T] {
	o := operandOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Operand[F, T]{
		value:  v,
		logger: o.logger,
	}
}

// Value promotes a raw value to an operand. It is only available to families
// that allow implicit conversion.
func Value[F ImplicitConversion, T Number](v T) *Operand[F, T] {
	return NewOperand[F](v)
}

// log falls back to a no-op logger for zero-value operands.
func (o *Operand[F, T]) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

func (o *Operand[F, T]) Value() T {
	return o.value
}

func (o *Operand[F, T]) Set(v T) {
	o.value = v
}

func (o *Operand[F, T]) Eval() (T, error) {
	return o.value, nil
}

func (o *Operand[F, T]) Type() NodeType {
	return OperandNode
}

func (o *Operand[F, T]) Family() F {
	var f F
	return f
}

func (o *Operand[F, T]) render(sb *strings.Builder) {
	fmt.Fprint(sb, o.value)
}

func (o *Operand[F, T]) snapshot() Node[F, T] {
	return &Operand[F, T]{
		value:  o.value,
		logger: o.logger,
	}
}

// Assign evaluates src and stores the result in dst, converting it to dst's
// numeric kind. Overflow checked families reject values that do not fit.
// Loggable families log the statement as "<value> = <src>", rendered before
// the store.
func Assign[F Family, T, S Number](dst *Operand[F, T], src Node[F, S]) error {
	v, err := src.Eval()
	if err != nil {
		return err
	}

	t, err := convert[F, T](v)
	if err != nil {
		return err
	}

	if isLoggable[F]() {
		dst.log().Info("assign",
			zap.String("family", dst.Family().Name()),
			zap.String("statement", fmt.Sprintf("%v = %s", t, render(src))),
		)
	}
	dst.value = t
	return nil
}
