package tuple

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Errors returned by construction and slot access.
// Use [errors.Is] to check for specific error conditions.
var (
	// ErrShapeMismatch is returned when a tag, read or write names an index
	// that does not exist in the tuple's shape.
	ErrShapeMismatch = errors.New("index out of shape")

	// ErrDuplicateIndex is returned by strict construction when two tags
	// target the same slot.
	ErrDuplicateIndex = errors.New("duplicate index")

	// ErrMissingIndex is returned by strict construction when one or more
	// slots were not addressed by any tag.
	ErrMissingIndex = errors.New("missing index")

	// ErrTypeMismatch is returned when a value is not compatible with the
	// slot's declared type, or a typed read asks for the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrEmptySlot is returned when reading a slot whose value was taken.
	ErrEmptySlot = errors.New("slot is empty")

	// ErrReleased is returned by every operation on a released tuple.
	ErrReleased = errors.New("tuple released")

	// ErrBuilderUsed is returned when [Builder.Build] is called twice.
	ErrBuilderUsed = errors.New("builder already used")
)

// IndexError carries the indices behind an [ErrShapeMismatch],
// [ErrDuplicateIndex] or [ErrMissingIndex].
//
//	_, err := tuple.New(shape, tuple.At(1, true))
//	var idxErr *tuple.IndexError
//	if errors.As(err, &idxErr) {
//		fmt.Printf("missing: %v\n", idxErr.Indices)
//	}
type IndexError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Indices are 1-based and ascending for missing indices.
	Indices []int
	// Arity of the shape the indices were checked against.
	Arity int
}

func (e *IndexError) Error() string {
	idx := make([]string, len(e.Indices))
	for i, v := range e.Indices {
		idx[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%v: [%s] (arity %d)", e.Kind, strings.Join(idx, " "), e.Arity)
}

// Unwrap returns the Kind so that [errors.Is] works correctly.
func (e *IndexError) Unwrap() error {
	return e.Kind
}

// TypeError is returned when a value of type Got was offered to, or requested
// from, slot Index whose declared type is Want. It unwraps to [ErrTypeMismatch].
type TypeError struct {
	Index int
	Want  reflect.Type
	Got   reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: slot %d holds %s, got %s", ErrTypeMismatch, e.Index, typeName(e.Want), typeName(e.Got))
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

func indexErr(kind error, arity int, indices ...int) error {
	return &IndexError{Kind: kind, Indices: indices, Arity: arity}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
