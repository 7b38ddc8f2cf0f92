package shape_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specializer/identity"
	"specializer/shape"
)

type thingKind int

const (
	nothing thingKind = iota
	byRef
	byMut
	byValue
)

// things is an application-defined wrapper that opts into shape casting.
type things[T any] struct {
	kind thingKind
	ref  identity.Ref[T]
	mut  identity.Mut[T]
	val  T
}

func (things[T]) Describe() shape.Descriptor {
	return shape.Custom("things", shape.DescriptorOf[T]())
}

func (t things[T]) Accepts(dst shape.Descriptor) bool {
	if dst.Kind != shape.KindCustom || dst.Name != "things" || len(dst.Elems) != 1 {
		return false
	}

	if t.kind == nothing {
		return true
	}

	return shape.Matches(shape.DescriptorOf[T](), dst.Elems[0])
}

func (t *things[T]) Receive(src any) bool {
	s, ok := src.(interface{ thingParts() (thingKind, any) })
	if !ok {
		return false
	}

	kind, part := s.thingParts()
	out := things[T]{kind: kind}
	ok = true

	switch kind {
	case nothing:
	case byRef:
		out.ref, ok = shape.Recast[identity.Ref[T]](part)
	case byMut:
		out.mut, ok = shape.Recast[identity.Mut[T]](part)
	case byValue:
		out.val, ok = shape.Recast[T](part)
	}

	if !ok {
		return false
	}

	*t = out

	return true
}

func (t *things[T]) thingParts() (thingKind, any) {
	switch t.kind {
	case byRef:
		return byRef, &t.ref
	case byMut:
		return byMut, &t.mut
	case byValue:
		return byValue, &t.val
	}

	return nothing, nil
}

func onlyUint32Things[T any](t things[T]) (things[uint32], bool) {
	return shape.CastBorrowed[things[uint32]](t)
}

func TestCustomShape(t *testing.T) {
	t.Parallel()

	u := uint32(42)
	got, ok := onlyUint32Things(things[uint32]{kind: byMut, mut: identity.NewMut(&u)})
	require.True(t, ok)
	got.mut.Set(43)
	assert.Equal(t, uint32(43), u)

	got, ok = onlyUint32Things(things[uint32]{kind: byRef, ref: identity.NewRef(&u)})
	require.True(t, ok)
	assert.True(t, got.ref.Is(&u))

	got, ok = onlyUint32Things(things[uint32]{kind: byValue, val: 7})
	require.True(t, ok)
	assert.Equal(t, uint32(7), got.val)

	i := int32(42)
	_, ok = onlyUint32Things(things[int32]{kind: byMut, mut: identity.NewMut(&i)})
	assert.False(t, ok)

	_, ok = onlyUint32Things(things[int32]{kind: byValue, val: 1})
	assert.False(t, ok)

	got, ok = onlyUint32Things(things[int32]{kind: nothing})
	require.True(t, ok, "the empty variant carries no type to check")
	assert.Equal(t, nothing, got.kind)
}

func TestCustomShapeInsideBuiltins(t *testing.T) {
	t.Parallel()

	u := uint32(1)
	src := shape.Some(shape.NewTuple2(things[uint32]{kind: byRef, ref: identity.NewRef(&u)}, "label"))

	got, ok := shape.CastBorrowed[shape.Optional[shape.Tuple2[things[uint32], string]]](src)
	require.True(t, ok)

	tuple, present := got.Get()
	require.True(t, present)
	assert.True(t, tuple.V0.ref.Is(&u))

	_, ok = shape.CastBorrowed[shape.Optional[shape.Tuple2[things[int], string]]](src)
	assert.False(t, ok)
}

func ExampleCastBorrowed() {
	describe := func(d shape.Descriptor, ok bool) {
		fmt.Println(d, ok)
	}

	n := 3
	ref := identity.NewRef(&n)

	_, ok := shape.CastBorrowed[identity.Ref[int]](ref)
	describe(shape.DescriptorOf[identity.Ref[int]](), ok)

	_, ok = shape.CastBorrowed[identity.Mut[int]](ref)
	describe(shape.DescriptorOf[identity.Mut[int]](), ok)

	_, ok = shape.CastBorrowed[shape.Optional[string]](shape.None[int]())
	describe(shape.DescriptorOf[shape.Optional[string]](), ok)
	// Output:
	// SharedRef(int) true
	// ExclusiveRef(int) false
	// Optional(Owned(string)) true
}
