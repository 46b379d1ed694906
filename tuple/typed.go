package tuple

import "fmt"

// Slot is a typed handle on one slot of a typed tuple view such as [T3]. The
// index and type are fixed by the view method that returned it, so reads and
// writes through a Slot are checked by the compiler.
type Slot[T any] struct {
	tup *Tuple
	idx int
}

func (s Slot[T]) Index() int {
	return s.idx
}

func (s Slot[T]) State() (SlotState, error) {
	return s.tup.State(s.idx)
}

func (s Slot[T]) Peek() (T, error) {
	return Peek[T](s.tup, s.idx)
}

func (s Slot[T]) Take() (T, error) {
	return Take[T](s.tup, s.idx)
}

// Set only fails on a released tuple.
func (s Slot[T]) Set(v T) error {
	return s.tup.Set(s.idx, v)
}

func adopt(t *Tuple, want Shape) error {
	if t == nil {
		return fmt.Errorf("%w: nil tuple is not %s", ErrTypeMismatch, want)
	}
	if !t.shape.Equal(want) {
		return fmt.Errorf("%w: tuple %s is not %s", ErrTypeMismatch, t.shape, want)
	}
	return nil
}

// T1 is a 1-slot tuple with compile-time checked slots.
type T1[A any] struct{ *Tuple }

func Shape1[A any]() Shape {
	return ShapeOf(Type[A]())
}

// New1 builds a T1 from [tags] under the strict contract.
func New1[A any](tags ...Tag) (T1[A], error) {
	t, err := New(Shape1[A](), tags...)
	if err != nil {
		return T1[A]{}, err
	}
	return T1[A]{t}, nil
}

// Wrap1 adopts a tuple built elsewhere, e.g. by a permissive [Builder].
// The tuple's shape must match exactly.
func Wrap1[A any](t *Tuple) (T1[A], error) {
	if err := adopt(t, Shape1[A]()); err != nil {
		return T1[A]{}, err
	}
	return T1[A]{t}, nil
}

func (t T1[A]) Slot1() Slot[A] { return Slot[A]{t.Tuple, 1} }

// T2 is a 2-slot tuple with compile-time checked slots.
type T2[A, B any] struct{ *Tuple }

func Shape2[A, B any]() Shape {
	return ShapeOf(Type[A](), Type[B]())
}

func New2[A, B any](tags ...Tag) (T2[A, B], error) {
	t, err := New(Shape2[A, B](), tags...)
	if err != nil {
		return T2[A, B]{}, err
	}
	return T2[A, B]{t}, nil
}

func Wrap2[A, B any](t *Tuple) (T2[A, B], error) {
	if err := adopt(t, Shape2[A, B]()); err != nil {
		return T2[A, B]{}, err
	}
	return T2[A, B]{t}, nil
}

func (t T2[A, B]) Slot1() Slot[A] { return Slot[A]{t.Tuple, 1} }

func (t T2[A, B]) Slot2() Slot[B] { return Slot[B]{t.Tuple, 2} }

// T3 is a 3-slot tuple with compile-time checked slots.
type T3[A, B, C any] struct{ *Tuple }

func Shape3[A, B, C any]() Shape {
	return ShapeOf(Type[A](), Type[B](), Type[C]())
}

func New3[A, B, C any](tags ...Tag) (T3[A, B, C], error) {
	t, err := New(Shape3[A, B, C](), tags...)
	if err != nil {
		return T3[A, B, C]{}, err
	}
	return T3[A, B, C]{t}, nil
}

func Wrap3[A, B, C any](t *Tuple) (T3[A, B, C], error) {
	if err := adopt(t, Shape3[A, B, C]()); err != nil {
		return T3[A, B, C]{}, err
	}
	return T3[A, B, C]{t}, nil
}

func (t T3[A, B, C]) Slot1() Slot[A] { return Slot[A]{t.Tuple, 1} }

func (t T3[A, B, C]) Slot2() Slot[B] { return Slot[B]{t.Tuple, 2} }

func (t T3[A, B, C]) Slot3() Slot[C] { return Slot[C]{t.Tuple, 3} }

// T4 is a 4-slot tuple with compile-time checked slots.
type T4[A, B, C, D any] struct{ *Tuple }

func Shape4[A, B, C, D any]() Shape {
	return ShapeOf(Type[A](), Type[B](), Type[C](), Type[D]())
}

func New4[A, B, C, D any](tags ...Tag) (T4[A, B, C, D], error) {
	t, err := New(Shape4[A, B, C, D](), tags...)
	if err != nil {
		return T4[A, B, C, D]{}, err
	}
	return T4[A, B, C, D]{t}, nil
}

func Wrap4[A, B, C, D any](t *Tuple) (T4[A, B, C, D], error) {
	if err := adopt(t, Shape4[A, B, C, D]()); err != nil {
		return T4[A, B, C, D]{}, err
	}
	return T4[A, B, C, D]{t}, nil
}

func (t T4[A, B, C, D]) Slot1() Slot[A] { return Slot[A]{t.Tuple, 1} }

func (t T4[A, B, C, D]) Slot2() Slot[B] { return Slot[B]{t.Tuple, 2} }

func (t T4[A, B, C, D]) Slot3() Slot[C] { return Slot[C]{t.Tuple, 3} }

func (t T4[A, B, C, D]) Slot4() Slot[D] { return Slot[D]{t.Tuple, 4} }

// T5 is a 5-slot tuple with compile-time checked slots.
type T5[A, B, C, D, E any] struct{ *Tuple }

func Shape5[A, B, C, D, E any]() Shape {
	return ShapeOf(Type[A](), Type[B](), Type[C](), Type[D](), Type[E]())
}

func New5[A, B, C, D, E any](tags ...Tag) (T5[A, B, C, D, E], error) {
	t, err := New(Shape5[A, B, C, D, E](), tags...)
	if err != nil {
		return T5[A, B, C, D, E]{}, err
	}
	return T5[A, B, C, D, E]{t}, nil
}

func Wrap5[A, B, C, D, E any](t *Tuple) (T5[A, B, C, D, E], error) {
	if err := adopt(t, Shape5[A, B, C, D, E]()); err != nil {
		return T5[A, B, C, D, E]{}, err
	}
	return T5[A, B, C, D, E]{t}, nil
}

func (t T5[A, B, C, D, E]) Slot1() Slot[A] { return Slot[A]{t.Tuple, 1} }

func (t T5[A, B, C, D, E]) Slot2() Slot[B] { return Slot[B]{t.Tuple, 2} }

func (t T5[A, B, C, D, E]) Slot3() Slot[C] { return Slot[C]{t.Tuple, 3} }

func (t T5[A, B, C, D, E]) Slot4() Slot[D] { return Slot[D]{t.Tuple, 4} }

func (t T5[A, B, C, D, E]) Slot5() Slot[E] { return Slot[E]{t.Tuple, 5} }

// T6 is a 6-slot tuple with compile-time checked slots.
type T6[A, B, C, D, E, F any] struct{ *Tuple }

func Shape6[A, B, C, D, E, F any]() Shape {
	return ShapeOf(Type[A](), Type[B](), Type[C](), Type[D](), Type[E](), Type[F]())
}

func New6[A, B, C, D, E, F any](tags ...Tag) (T6[A, B, C, D, E, F], error) {
	t, err := New(Shape6[A, B, C, D, E, F](), tags...)
	if err != nil {
		return T6[A, B, C, D, E, F]{}, err
	}
	return T6[A, B, C, D, E, F]{t}, nil
}

func Wrap6[A, B, C, D, E, F any](t *Tuple) (T6[A, B, C, D, E, F], error) {
	if err := adopt(t, Shape6[A, B, C, D, E, F]()); err != nil {
		return T6[A, B, C, D, E, F]{}, err
	}
	return T6[A, B, C, D, E, F]{t}, nil
}

func (t T6[A, B, C, D, E, F]) Slot1() Slot[A] { return Slot[A]{t.Tuple, 1} }

func (t T6[A, B, C, D, E, F]) Slot2() Slot[B] { return Slot[B]{t.Tuple, 2} }

func (t T6[A, B, C, D, E, F]) Slot3() Slot[C] { return Slot[C]{t.Tuple, 3} }

func (t T6[A, B, C, D, E, F]) Slot4() Slot[D] { return Slot[D]{t.Tuple, 4} }

func (t T6[A, B, C, D, E, F]) Slot5() Slot[E] { return Slot[E]{t.Tuple, 5} }

func (t T6[A, B, C, D, E, F]) Slot6() Slot[F] { return Slot[F]{t.Tuple, 6} }
