package eval

import (
	"math"
	"reflect"
)

type numberClass int

const (
	signedClass numberClass = iota
	unsignedClass
	floatClass
)

func classOf[T Number]() numberClass {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Float32, reflect.Float64:
		return floatClass
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsignedClass
	default:
		return signedClass
	}
}

func typeName[T Number]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// integerRange returns the inclusive lower and exclusive upper bound of the
// integer kind T.
func integerRange[T Number]() (lo, hi float64) {
	bits := reflect.TypeOf((*T)(nil)).Elem().Bits()
	if classOf[T]() == unsignedClass {
		return 0, math.Ldexp(1, bits)
	}
	return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
}

func isMinSigned[T Number](v T) bool {
	return v < 0 && -v == v
}

func becameInf[T Number](result, a, b T) bool {
	return math.IsInf(float64(result), 0) && !math.IsInf(float64(a), 0) && !math.IsInf(float64(b), 0)
}

// fits reports whether v survives conversion to To without wrapping,
// truncating out of range or turning into infinity.
func fits[To, From Number](v From) bool {
	if classOf[From]() == floatClass {
		f := float64(v)
		if classOf[To]() == floatClass {
			return math.IsInf(f, 0) || math.IsNaN(f) || !math.IsInf(float64(To(v)), 0)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
		lo, hi := integerRange[To]()
		f = math.Trunc(f)
		return f >= lo && f < hi
	}

	if classOf[To]() == floatClass {
		return true
	}
	t := To(v)
	return From(t) == v && (v < 0) == (t < 0)
}
