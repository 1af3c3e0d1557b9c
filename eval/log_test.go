package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// tracedSafe is both loggable and overflow checked.
type tracedSafe struct{}

func (tracedSafe) Name() string     { return "traced_safe" }
func (tracedSafe) Loggable()        {}
func (tracedSafe) OverflowChecked() {}

func TestLog(t *testing.T) {
	a := NewOperand[Logging](3)
	b := NewOperand[Logging](4)
	c := NewOperand[Logging](5)

	tests := []struct {
		name string
		expr Node[Logging, int]
		want string
	}{
		{name: "operand", expr: a, want: "3"},
		{name: "flat", expr: Add(a, b), want: "3 + 4"},
		{name: "right expression is grouped", expr: Add(a, Divide(b, Multiply(a, b))), want: "3 + (4 / (3 * 4))"},
		{name: "left expression is grouped", expr: Subtract(Add(a, b), c), want: "(3 + 4) - 5"},
		{name: "both sides grouped", expr: Multiply(Add(a, b), Subtract(c, a)), want: "(3 + 4) * (5 - 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Log(tt.expr))
		})
	}
}

func TestLogReflectsCurrentValues(t *testing.T) {
	a := NewOperand[Logging](1.5)
	sum := Add(a, a)

	assert.Equal(t, "1.5 + 1.5", Log[Logging, float64](sum))
	a.Set(-2)
	assert.Equal(t, "-2 + -2", Log[Logging, float64](sum))
}

func TestAssignLogsStatement(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	op := NewOperand[Logging](int64(3), WithLogger(logger))
	op2 := NewOperand[Logging](5.0)

	opf := Convert[float64](op)
	err := Assign(op, Add(opf, Divide(op2, Multiply(opf, op2))))
	require.NoError(t, err)
	assert.Equal(t, int64(3), op.Value())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "assign", entries[0].Message)
	assert.Equal(t, "3 = 3 + (5 / (3 * 5))", entries[0].ContextMap()["statement"])
	assert.Equal(t, "logging", entries[0].ContextMap()["family"])
}

func TestAssignIntoZeroValueOperand(t *testing.T) {
	one := NewOperand[Logging](1)

	var x Operand[Logging, int]
	require.NoError(t, Assign(&x, Add(one, one)))
	assert.Equal(t, 2, x.Value())

	y := NewOperand[Logging](0, WithLogger(nil))
	require.NoError(t, Assign(y, Multiply(one, one)))
	assert.Equal(t, 1, y.Value())
}

func TestAssignDoesNotLogPlainFamily(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	op := NewOperand[Plain](1, WithLogger(zap.New(core)))
	require.NoError(t, Assign(op, Add(op, Value[Plain](1))))

	assert.Equal(t, 2, op.Value())
	assert.Zero(t, logs.Len())
}

func TestCustomFamilyCombinesCapabilities(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	x := NewOperand[tracedSafe](uint16(65535), WithLogger(zap.New(core)))
	one := NewOperand[tracedSafe](uint16(1))

	err := Assign(x, Add(x, one))
	require.ErrorIs(t, err, ErrOverflow)
	assert.Zero(t, logs.Len())

	require.NoError(t, Assign(x, Subtract(x, one)))
	assert.Equal(t, "65534 = 65535 - 1", logs.All()[0].ContextMap()["statement"])
	assert.Equal(t, "65534 - 1", Log(Subtract(x, one)))
}
