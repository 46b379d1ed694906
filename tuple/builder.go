package tuple

import (
	"reflect"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/xid"
	"github.com/uberbrodt/fungo/fun"
)

// Tag pairs a slot index with the value destined for it. Tags only exist
// while a tuple is being built.
type Tag struct {
	index int
	value any
}

// At tags [value] for slot [index] (1-based). The tag owns the value from here
// on; construction moves it into the slot. Nothing is checked until then.
func At(index int, value any) Tag {
	return Tag{index: index, value: value}
}

func (t Tag) Index() int {
	return t.index
}

// Builder resolves an unordered set of tags into a [Tuple]. Each tag is
// validated and placed as it is added; the first failure sticks and is
// returned by [Builder.Build]. A Builder builds at most one Tuple.
type Builder struct {
	shape   Shape
	opts    BuildOpts
	slots   []slot
	present *bitset.BitSet
	err     error
	used    bool
}

func NewBuilder(shape Shape, opts ...BuildOpt) *Builder {
	return &Builder{
		shape:   shape,
		opts:    applyOpts(opts),
		slots:   make([]slot, shape.Len()),
		present: bitset.New(uint(shape.Len())),
	}
}

// New builds a tuple of [shape] from [tags] using the strict contract: every
// slot must be addressed exactly once.
func New(shape Shape, tags ...Tag) (*Tuple, error) {
	return NewBuilder(shape).Add(tags...).Build()
}

func (b *Builder) Add(tags ...Tag) *Builder {
	for _, tag := range tags {
		if b.err != nil || b.used {
			return b
		}
		b.err = b.place(tag)
	}
	return b
}

func (b *Builder) place(tag Tag) error {
	n := b.shape.Len()
	if tag.index < 1 || tag.index > n {
		return indexErr(ErrShapeMismatch, n, tag.index)
	}

	pos := uint(tag.index - 1)
	v, err := coerce(tag.index, tag.value, b.shape.types[pos])
	if err != nil {
		return err
	}

	if b.present.Test(pos) {
		if b.opts.GetPermissive() {
			debugPrintf("builder %s: ignoring duplicate tag for slot %d", b.shape, tag.index)
			return nil
		}
		return indexErr(ErrDuplicateIndex, n, tag.index)
	}

	b.slots[pos] = slot{value: v, state: Initialized}
	b.present.Set(pos)
	return nil
}

// Build checks that every slot was addressed and returns the tuple. Under
// [Permissive] unaddressed slots hold their type's zero value instead.
func (b *Builder) Build() (*Tuple, error) {
	if b.used {
		if b.err != nil {
			return nil, b.err
		}
		return nil, ErrBuilderUsed
	}
	b.used = true

	if b.err != nil {
		debugPrintf("builder %s: rejected: %v", b.shape, b.err)
		return nil, b.err
	}

	n := b.shape.Len()
	if b.present.Count() != uint(n) {
		missing := fun.Filter(b.shape.indices(), func(idx int) bool {
			return !b.present.Test(uint(idx - 1))
		})

		if !b.opts.GetPermissive() {
			b.err = indexErr(ErrMissingIndex, n, missing...)
			debugPrintf("builder %s: rejected: %v", b.shape, b.err)
			return nil, b.err
		}

		for _, idx := range missing {
			b.slots[idx-1] = slot{value: zeroOf(b.shape.types[idx-1]), state: Initialized}
			b.present.Set(uint(idx - 1))
		}
		debugPrintf("builder %s: zero filled slots %v", b.shape, missing)
	}

	t := &Tuple{ref: xid.New().String(), shape: b.shape, slots: b.slots}
	b.slots = nil
	debugPrintf("tuple %s: built %s", t.ref, t.shape)
	return t, nil
}

func zeroOf(t reflect.Type) any {
	return reflect.Zero(t).Interface()
}
