package eval

import "github.com/pkg/errors"

func evaluate[T Number](op OperatorType, left, right T) (T, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSubtract:
		return left - right, nil
	case OpMultiply:
		return left * right, nil
	case OpDivide:
		if right == 0 && classOf[T]() != floatClass {
			return 0, errors.Wrapf(ErrDivideByZero, "evaluating %v / %v", left, right)
		}
		return left / right, nil
	}

	return 0, errors.Errorf("unknown operator %q", op)
}

func evaluateChecked[T Number](op OperatorType, left, right T) (T, error) {
	var (
		v  T
		ok bool
	)

	switch op {
	case OpAdd:
		v, ok = addChecked(left, right)
	case OpSubtract:
		v, ok = subtractChecked(left, right)
	case OpMultiply:
		v, ok = multiplyChecked(left, right)
	case OpDivide:
		if right == 0 {
			return 0, errors.Wrapf(ErrDivideByZero, "evaluating %v / %v", left, right)
		}
		v, ok = divideChecked(left, right)
	default:
		return 0, errors.Errorf("unknown operator %q", op)
	}

	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "evaluating %v %s %v as %s", left, op.Symbol(), right, typeName[T]())
	}
	return v, nil
}

func addChecked[T Number](a, b T) (T, bool) {
	s := a + b
	switch classOf[T]() {
	case floatClass:
		return s, !becameInf(s, a, b)
	case unsignedClass:
		return s, s >= a
	}
	// signed: operands of the same sign must not flip the sign of the sum
	return s, (a >= 0) != (b >= 0) || (s >= 0) == (a >= 0)
}

func subtractChecked[T Number](a, b T) (T, bool) {
	d := a - b
	switch classOf[T]() {
	case floatClass:
		return d, !becameInf(d, a, b)
	case unsignedClass:
		return d, a >= b
	}
	return d, (a >= 0) == (b >= 0) || (d >= 0) == (a >= 0)
}

func multiplyChecked[T Number](a, b T) (T, bool) {
	p := a * b
	switch classOf[T]() {
	case floatClass:
		return p, !becameInf(p, a, b)
	case signedClass:
		var one T = 1
		if (a == -one && isMinSigned(b)) || (b == -one && isMinSigned(a)) {
			return p, false
		}
	}
	if a == 0 || b == 0 {
		return p, true
	}
	return p, p/b == a
}

func divideChecked[T Number](a, b T) (T, bool) {
	switch classOf[T]() {
	case floatClass:
		q := a / b
		return q, !becameInf(q, a, b)
	case signedClass:
		var one T = 1
		if isMinSigned(a) && b == -one {
			return a, false
		}
	}
	return a / b, true
}
