package tuple

import (
	"errors"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

// permutations returns every ordering of tags.
func permutations(tags []Tag) [][]Tag {
	if len(tags) <= 1 {
		return [][]Tag{append([]Tag(nil), tags...)}
	}
	var out [][]Tag
	for i := range tags {
		rest := make([]Tag, 0, len(tags)-1)
		rest = append(rest, tags[:i]...)
		rest = append(rest, tags[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Tag{tags[i]}, p...))
		}
	}
	return out
}

func TestNew_OrderIndependent(t *testing.T) {
	shape := ShapeOf(Type[bool](), Type[rune](), Type[float64](), Type[int](), Type[string]())
	tags := []Tag{At(1, true), At(2, 'm'), At(3, 3.14), At(4, 4), At(5, "five")}

	declared, err := New(shape, tags...)
	assert.NilError(t, err)
	want := snapshot(t, declared)

	perms := permutations(tags)
	assert.Equal(t, len(perms), 120)

	for _, p := range perms {
		tup, err := New(shape, p...)
		assert.NilError(t, err)
		if diff := gocmp.Diff(want, snapshot(t, tup)); diff != "" {
			t.Fatalf("order %v built a different tuple (-want +got):\n%s", tagOrder(p), diff)
		}
	}
}

func tagOrder(tags []Tag) []int {
	out := make([]int, len(tags))
	for i, tag := range tags {
		out[i] = tag.Index()
	}
	return out
}

func TestNew_ZeroArity(t *testing.T) {
	tup, err := New(ShapeOf())

	assert.NilError(t, err)
	assert.Equal(t, tup.Len(), 0)

	_, err = New(ShapeOf(), At(1, true))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNew_RejectsDuplicateIndex(t *testing.T) {
	_, err := New(Shape2[int, string](), At(1, 1), At(2, "a"), At(1, 2))

	assert.ErrorIs(t, err, ErrDuplicateIndex)
	var idxErr *IndexError
	assert.Assert(t, errors.As(err, &idxErr))
	assert.DeepEqual(t, idxErr.Indices, []int{1})
}

func TestNew_RejectsMissingIndex(t *testing.T) {
	_, err := New(Shape3[int, string, bool](), At(2, "a"))

	assert.ErrorIs(t, err, ErrMissingIndex)
	var idxErr *IndexError
	assert.Assert(t, errors.As(err, &idxErr))
	assert.DeepEqual(t, idxErr.Indices, []int{1, 3})
	assert.Equal(t, idxErr.Arity, 3)
	assert.Error(t, err, "missing index: [1 3] (arity 3)")
}

func TestNew_RejectsOutOfRangeIndex(t *testing.T) {
	for _, idx := range []int{0, -2, 3} {
		_, err := New(Shape2[int, string](), At(1, 1), At(2, "a"), At(idx, 5))
		assert.ErrorIs(t, err, ErrShapeMismatch)
	}
}

func TestNew_RejectsIncompatibleValue(t *testing.T) {
	_, err := New(Shape2[int, string](), At(1, 3.14), At(2, "a"))

	assert.ErrorIs(t, err, ErrTypeMismatch)
	var typeErr *TypeError
	assert.Assert(t, errors.As(err, &typeErr))
	assert.Equal(t, typeErr.Index, 1)
}

func TestNew_FirstErrorWins(t *testing.T) {
	_, err := New(Shape2[int, string](), At(7, 1), At(1, "wrong"), At(1, 1), At(1, 1))

	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Assert(t, !errors.Is(err, ErrTypeMismatch))
	assert.Assert(t, !errors.Is(err, ErrDuplicateIndex))
}

func TestBuilder_AddIncrementally(t *testing.T) {
	b := NewBuilder(Shape3[int, string, bool]())
	b.Add(At(3, true))
	b.Add(At(1, 1), At(2, "two"))

	tup, err := b.Build()

	assert.NilError(t, err)
	assert.DeepEqual(t, snapshot(t, tup), []any{1, "two", true})
}

func TestBuilder_SingleUse(t *testing.T) {
	b := NewBuilder(Shape1[int]()).Add(At(1, 1))

	_, err := b.Build()
	assert.NilError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrBuilderUsed)

	failed := NewBuilder(Shape1[int]())
	_, err = failed.Build()
	assert.ErrorIs(t, err, ErrMissingIndex)
	_, err = failed.Build()
	assert.ErrorIs(t, err, ErrMissingIndex)
}

func TestBuilder_PermissiveFirstDuplicateWins(t *testing.T) {
	tup, err := NewBuilder(Shape2[int, string](), Permissive()).
		Add(At(1, 1), At(2, "first"), At(2, "second")).
		Build()

	assert.NilError(t, err)
	v, err := Peek[string](tup, 2)
	assert.NilError(t, err)
	assert.Equal(t, v, "first")
}

func TestBuilder_PermissiveZeroFills(t *testing.T) {
	tup, err := NewBuilder(ShapeOf(Type[int](), Type[string](), Type[*float64](), nil), Permissive()).
		Add(At(2, "set")).
		Build()

	assert.NilError(t, err)
	assert.DeepEqual(t, snapshot(t, tup), []any{0, "set", (*float64)(nil), nil})
	for i := 1; i <= tup.Len(); i++ {
		st, err := tup.State(i)
		assert.NilError(t, err)
		assert.Equal(t, st, Initialized)
	}
}

func TestBuilder_PermissiveStillRejectsShapeAndType(t *testing.T) {
	_, err := NewBuilder(Shape1[int](), Permissive()).Add(At(2, 1)).Build()
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewBuilder(Shape1[int](), Permissive()).Add(At(1, "one")).Build()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestOpts(t *testing.T) {
	assert.Assert(t, !DefaultOpts().GetPermissive())
	assert.Assert(t, applyOpts([]BuildOpt{Permissive()}).GetPermissive())
	assert.Assert(t, !applyOpts([]BuildOpt{Permissive(), Strict()}).GetPermissive())

	base := applyOpts([]BuildOpt{Permissive()})
	assert.Assert(t, applyOpts([]BuildOpt{InheritOpts(base)}).GetPermissive())
}

// (bool, char, double, int) from (1,false), (3,3.14), (2,'m')
func TestScenarioA(t *testing.T) {
	shape := Shape4[bool, rune, float64, int]()
	tags := []Tag{At(1, false), At(3, 3.14), At(2, 'm')}

	t.Run("strict", func(t *testing.T) {
		_, err := New(shape, tags...)

		assert.ErrorIs(t, err, ErrMissingIndex)
		var idxErr *IndexError
		assert.Assert(t, errors.As(err, &idxErr))
		assert.DeepEqual(t, idxErr.Indices, []int{4})
	})

	t.Run("permissive", func(t *testing.T) {
		tup, err := NewBuilder(shape, Permissive()).Add(tags...).Build()

		assert.NilError(t, err)
		assert.DeepEqual(t, snapshot(t, tup), []any{false, 'm', 3.14, 0})
	})
}

// (bool, short, string) from (1,false), (2,4), (3,"pink pig"), then set 3.
func TestScenarioB(t *testing.T) {
	tup, err := New(Shape3[bool, int16, string](), At(1, false), At(2, 4), At(3, "pink pig"))
	assert.NilError(t, err)

	assert.NilError(t, tup.Set(3, "black dog"))

	v, err := Take[string](tup, 3)
	assert.NilError(t, err)
	assert.Equal(t, v, "black dog")
}

// (int, int, int, *float64, string, bool) from (4, ptr) only.
func TestScenarioC(t *testing.T) {
	shape := Shape6[int, int, int, *float64, string, bool]()
	d := 3.0
	ptr := &d

	t.Run("strict", func(t *testing.T) {
		_, err := New(shape, At(4, ptr))

		var idxErr *IndexError
		assert.Assert(t, errors.As(err, &idxErr))
		assert.Equal(t, idxErr.Kind, ErrMissingIndex)
		assert.DeepEqual(t, idxErr.Indices, []int{1, 2, 3, 5, 6})
	})

	t.Run("permissive", func(t *testing.T) {
		tup, err := NewBuilder(shape, Permissive()).Add(At(4, ptr)).Build()
		assert.NilError(t, err)

		p, err := Peek[*float64](tup, 4)
		assert.NilError(t, err)
		assert.Assert(t, p == ptr)

		assert.NilError(t, tup.Set(5, "ciao"))
		s, err := Take[string](tup, 5)
		assert.NilError(t, err)
		assert.Equal(t, s, "ciao")

		assert.Assert(t, cmp.DeepEqual(snapshot(t, withSlot(t, tup, 5, "")), []any{0, 0, 0, ptr, "", false}))
	})
}

func withSlot(t *testing.T, tup *Tuple, idx int, v any) *Tuple {
	t.Helper()
	assert.NilError(t, tup.Set(idx, v))
	return tup
}
