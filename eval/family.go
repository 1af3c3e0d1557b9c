package eval

// Family identifies a set of node kinds that may be combined into one tree.
// Families are zero-size marker types; what a family can do is expressed by
// the capability interfaces it implements.
type Family interface {
	Name() string
}

// ImplicitConversion is implemented by families whose raw values may be
// promoted to operands with Value.
type ImplicitConversion interface {
	Family
	AllowImplicitConversion()
}

// Loggable is implemented by families that can be rendered with Log. Assigning
// a loggable tree to an operand logs the rendered statement.
type Loggable interface {
	Family
	Loggable()
}

// OverflowChecked is implemented by families whose evaluation verifies every
// intermediate result fits its numeric kind.
type OverflowChecked interface {
	Family
	OverflowChecked()
}

// Plain nodes evaluate with Go's wrapping arithmetic.
type Plain struct{}

func (Plain) Name() string             { return "plain" }
func (Plain) AllowImplicitConversion() {}

// Logging nodes render themselves. Raw values are not promoted implicitly,
// every leaf has to be an explicit operand.
type Logging struct{}

func (Logging) Name() string { return "logging" }
func (Logging) Loggable()    {}

// Safe nodes fail with ErrOverflow instead of wrapping.
type Safe struct{}

func (Safe) Name() string             { return "overflow_checked" }
func (Safe) AllowImplicitConversion() {}
func (Safe) OverflowChecked()         {}

func isLoggable[F Family]() bool {
	var f F
	_, ok := any(f).(Loggable)
	return ok
}

func isChecked[F Family]() bool {
	var f F
	_, ok := any(f).(OverflowChecked)
	return ok
}
