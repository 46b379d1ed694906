/*
Package tuple provides a fixed-size, heterogeneous tuple that is built from
values tagged with their 1-based position, given in any order.

A [Shape] fixes the number of slots and the type of each. [At] tags a value
for a slot, and [New] (or a [Builder]) places every tagged value into its
slot:

	shape := tuple.ShapeOf(tuple.Type[bool](), tuple.Type[int16](), tuple.Type[string]())
	t, err := tuple.New(shape, tuple.At(3, "pink pig"), tuple.At(1, false), tuple.At(2, 4))

Construction is strict by default. A tag outside the shape, a value that does
not fit its slot, two tags for the same slot, or a slot with no tag at all are
errors ([ErrShapeMismatch], [ErrTypeMismatch], [ErrDuplicateIndex],
[ErrMissingIndex]). The legacy behaviour, where the first duplicate wins and
unaddressed slots hold their zero value, is available with [Permissive].

After construction a slot can be read with [Tuple.Peek], which leaves the value
in place, or [Tuple.Take], which moves it out and leaves the slot
[MovedFrom]. [Tuple.Set] overwrites a slot in any state.

The typed views [T1] through [T6] do the same with the index and type checked
by the compiler:

	t, err := tuple.New3[bool, int16, string](tuple.At(3, "pink pig"), tuple.At(1, false), tuple.At(2, 4))
	_ = t.Slot3().Set("black dog")
	s, _ := t.Slot3().Take()

Tuples are not safe for concurrent use.
*/
package tuple
