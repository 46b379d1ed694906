package tuple

import (
	"math"
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// Shape is the ordered list of slot types of a tuple. Slot i (1-based) holds
// values of the i-th type. A Shape never changes once created.
type Shape struct {
	types []reflect.Type
}

// ShapeOf declares a shape. A nil descriptor declares a slot that accepts any value.
func ShapeOf(types ...reflect.Type) Shape {
	ts := slices.Clone(types)
	for i, t := range ts {
		if t == nil {
			ts[i] = anyType
		}
	}
	return Shape{types: ts}
}

// Type returns the descriptor for T, for use with [ShapeOf].
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (s Shape) Len() int {
	return len(s.types)
}

// At returns the declared type of slot [idx].
func (s Shape) At(idx int) (reflect.Type, error) {
	if idx < 1 || idx > len(s.types) {
		return nil, indexErr(ErrShapeMismatch, len(s.types), idx)
	}
	return s.types[idx-1], nil
}

func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s.types, o.types)
}

func (s Shape) String() string {
	names := make([]string, len(s.types))
	for i, t := range s.types {
		names[i] = t.String()
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// 1..n
func (s Shape) indices() []int {
	idx := make([]int, len(s.types))
	for i := range idx {
		idx[i] = i + 1
	}
	return idx
}

// coerce checks that v may be stored in slot idx of type want and returns the
// value to store. Assignable values are accepted as is. A numeric value may
// land in a slot of another numeric kind when the conversion loses nothing.
func coerce(idx int, v any, want reflect.Type) (any, error) {
	if v == nil {
		if nilable(want.Kind()) {
			return reflect.Zero(want).Interface(), nil
		}
		return nil, &TypeError{Index: idx, Want: want}
	}

	rv := reflect.ValueOf(v)
	got := rv.Type()

	if got.AssignableTo(want) {
		if want.Kind() == reflect.Interface || got == want {
			return v, nil
		}
		return rv.Convert(want).Interface(), nil
	}

	if numeric(got.Kind()) && numeric(want.Kind()) && lossless(rv, want) {
		return rv.Convert(want).Interface(), nil
	}

	return nil, &TypeError{Index: idx, Want: want, Got: got}
}

// readable reports whether a slot of type slotT can be read as a T of type asT.
func readable(slotT, asT reflect.Type) bool {
	if slotT == asT {
		return true
	}
	return asT.Kind() == reflect.Interface && slotT.AssignableTo(asT)
}

func lossless(rv reflect.Value, want reflect.Type) bool {
	cv := rv.Convert(want)
	if sign(rv) != sign(cv) {
		return false
	}
	if isFloat(rv.Kind()) && math.IsNaN(rv.Float()) {
		return isFloat(want.Kind())
	}
	return cv.Convert(rv.Type()).Equal(rv)
}

func sign(v reflect.Value) int {
	switch {
	case v.CanInt():
		return cmpZero(float64(v.Int()))
	case v.CanUint():
		return cmpZero(float64(v.Uint()))
	case v.CanFloat():
		return cmpZero(v.Float())
	}
	return 0
}

func cmpZero(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
