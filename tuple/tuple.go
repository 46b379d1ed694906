package tuple

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/uberbrodt/fungo/fun"
)

type SlotState int

const (
	// Only observable inside an unfinished [Builder].
	Uninitialized SlotState = iota
	Initialized
	// The slot's value was taken. A [Tuple.Set] makes it Initialized again.
	MovedFrom
)

func (s SlotState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case MovedFrom:
		return "moved_from"
	default:
		return fmt.Sprintf("SlotState(%d)", int(s))
	}
}

type slot struct {
	value any
	state SlotState
}

// Tuple is a fixed set of slots, one per type in its [Shape], addressed by
// 1-based index. Create one with [New] or a [Builder].
//
// A Tuple is not safe for concurrent use.
type Tuple struct {
	ref      string
	shape    Shape
	slots    []slot
	released bool
}

// Ref is an opaque id for this instance, as printed in debug logs.
func (t *Tuple) Ref() string {
	return t.ref
}

func (t *Tuple) Shape() Shape {
	return t.shape
}

func (t *Tuple) Len() int {
	return t.shape.Len()
}

func (t *Tuple) State(idx int) (SlotState, error) {
	if err := t.check(idx); err != nil {
		return Uninitialized, err
	}
	return t.slots[idx-1].state, nil
}

// Peek returns the value of slot [idx] and leaves it in place.
func (t *Tuple) Peek(idx int) (any, error) {
	if err := t.check(idx); err != nil {
		return nil, err
	}
	s := t.slots[idx-1]
	if s.state != Initialized {
		return nil, fmt.Errorf("%w: slot %d is %s", ErrEmptySlot, idx, s.state)
	}
	return s.value, nil
}

// Take moves the value out of slot [idx]. The slot is [MovedFrom] afterwards
// and further reads fail with [ErrEmptySlot] until the next [Tuple.Set].
func (t *Tuple) Take(idx int) (any, error) {
	v, err := t.Peek(idx)
	if err != nil {
		return nil, err
	}
	t.slots[idx-1] = slot{state: MovedFrom}
	debugPrintf("tuple %s: took slot %d", t.ref, idx)
	return v, nil
}

// Set overwrites slot [idx] with [v], whatever state the slot is in. The value
// must be compatible with the slot's type the same way a construction tag is.
func (t *Tuple) Set(idx int, v any) error {
	if err := t.check(idx); err != nil {
		return err
	}
	cv, err := coerce(idx, v, t.shape.types[idx-1])
	if err != nil {
		return err
	}
	t.slots[idx-1] = slot{value: cv, state: Initialized}
	debugPrintf("tuple %s: set slot %d", t.ref, idx)
	return nil
}

// Release destroys the tuple. Slots are visited from last to first and every
// held value implementing [io.Closer] is closed. All later operations return
// [ErrReleased]; releasing twice is a no-op.
func (t *Tuple) Release() error {
	if t.released {
		return nil
	}
	t.released = true

	reversed := t.shape.indices()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	closers := fun.Filter(reversed, func(idx int) bool {
		s := t.slots[idx-1]
		if s.state != Initialized || isNilValue(s.value) {
			return false
		}
		_, ok := s.value.(io.Closer)
		return ok
	})

	err := fun.Reduce(closers, error(nil), func(idx int, acc error) error {
		if cerr := t.slots[idx-1].value.(io.Closer).Close(); cerr != nil {
			return errors.Join(acc, fmt.Errorf("slot %d: %w", idx, cerr))
		}
		return acc
	})

	t.slots = nil
	debugPrintf("tuple %s: released, closed %d slots", t.ref, len(closers))
	return err
}

func (t *Tuple) String() string {
	return fmt.Sprintf("Tuple%s{%s}", t.shape, t.ref)
}

func (t *Tuple) check(idx int) error {
	if t.released {
		return ErrReleased
	}
	if idx < 1 || idx > len(t.slots) {
		return indexErr(ErrShapeMismatch, t.shape.Len(), idx)
	}
	return nil
}

// Peek reads slot [idx] as a T without consuming it. T must be the slot's
// declared type or an interface that type implements.
func Peek[T any](t *Tuple, idx int) (T, error) {
	if err := checkAs[T](t, idx); err != nil {
		var zero T
		return zero, err
	}
	v, err := t.Peek(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](v), nil
}

// Take reads slot [idx] as a T and leaves it [MovedFrom].
func Take[T any](t *Tuple, idx int) (T, error) {
	if err := checkAs[T](t, idx); err != nil {
		var zero T
		return zero, err
	}
	v, err := t.Take(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](v), nil
}

func checkAs[T any](t *Tuple, idx int) error {
	if err := t.check(idx); err != nil {
		return err
	}
	want := t.shape.types[idx-1]
	if got := Type[T](); !readable(want, got) {
		return &TypeError{Index: idx, Want: want, Got: got}
	}
	return nil
}

// nil interface values can't be asserted
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return nilable(rv.Kind()) && rv.IsNil()
}
