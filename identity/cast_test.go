package identity_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specializer/identity"
)

type emptyA struct{}
type emptyB struct{}

type celsius float64

func TestIsSame(t *testing.T) {
	t.Parallel()

	assert.True(t, identity.IsSame[int, int]())
	assert.True(t, identity.IsSame[emptyA, emptyA]())
	assert.True(t, identity.IsSame[any, any]())

	assert.False(t, identity.IsSame[int, int32]())
	assert.False(t, identity.IsSame[emptyA, emptyB](), "distinct empty types must not be the same")
	assert.False(t, identity.IsSame[emptyA, struct{}]())
	assert.False(t, identity.IsSame[celsius, float64](), "named type differs from its underlying type")
	assert.False(t, identity.IsSame[fmt.Stringer, any]())
	assert.False(t, identity.IsSame[*int, int]())
}

func TestTypeTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, identity.TagOf[int](), identity.TagOf[int]())
	assert.NotEqual(t, identity.TagOf[int](), identity.TagOf[uint]())
	assert.Equal(t, "int", identity.TagOf[int]().String())
	assert.Equal(t, "specializer/identity_test.celsius", identity.TagOf[celsius]().String())
	assert.Equal(t, "[]string", identity.TagOf[[]string]().String())

	var zero identity.TypeTag
	assert.True(t, zero.IsZero())
	assert.Equal(t, "<nil>", zero.String())

	tags := map[identity.TypeTag]string{
		identity.TagOf[int]():    "int",
		identity.TagOf[string](): "string",
	}
	assert.Equal(t, "string", tags[identity.TagOf[string]()])
}

func TestCast(t *testing.T) {
	t.Parallel()

	t.Run("same type", func(t *testing.T) {
		t.Parallel()

		got, ok := identity.Cast[string]("hello")
		require.True(t, ok)
		assert.Equal(t, "hello", got)
	})

	t.Run("different type leaves the source intact", func(t *testing.T) {
		t.Parallel()

		src := []int{1, 2, 3}
		got, ok := identity.Cast[[]int64](src)
		assert.False(t, ok)
		assert.Nil(t, got)
		assert.Equal(t, []int{1, 2, 3}, src)
	})

	t.Run("no interface conformance", func(t *testing.T) {
		t.Parallel()

		_, ok := identity.Cast[fmt.Stringer](stringer("x"))
		assert.False(t, ok)

		_, ok = identity.Cast[any](42)
		assert.False(t, ok)
	})

	t.Run("nil interfaces of the same static type", func(t *testing.T) {
		t.Parallel()

		var err error
		got, ok := identity.Cast[error](err)
		require.True(t, ok)
		assert.NoError(t, got)
	})

	t.Run("empty types", func(t *testing.T) {
		t.Parallel()

		_, ok := identity.Cast[emptyA](emptyA{})
		assert.True(t, ok)

		_, ok = identity.Cast[emptyB](emptyA{})
		assert.False(t, ok)
	})
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestCastIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	roundTrip := func(v any) {
		t.Helper()

		back, ok := identity.Cast[any](v)
		require.True(t, ok)
		assert.Equal(t, v, back)
	}

	roundTrip(3)
	roundTrip("text")
	roundTrip(map[string]int{"a": 1})
	roundTrip(nil)

	type point struct{ X, Y int }

	p, ok := identity.Cast[point](point{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, point{X: 1, Y: 2}, p)
}

func TestCastBorrows(t *testing.T) {
	t.Parallel()

	t.Run("ref keeps the referent", func(t *testing.T) {
		t.Parallel()

		v := 7
		r, ok := identity.CastRef[int](identity.NewRef(&v))
		require.True(t, ok)
		assert.True(t, r.Is(&v))
		assert.Equal(t, 7, r.Get())

		_, ok = identity.CastRef[int32](identity.NewRef(&v))
		assert.False(t, ok)
	})

	t.Run("mut writes through", func(t *testing.T) {
		t.Parallel()

		v := "a"
		m, ok := identity.CastMut[string](identity.NewMut(&v))
		require.True(t, ok)
		m.Set("b")
		assert.Equal(t, "b", v)
		assert.Same(t, &v, m.Ptr())

		_, ok = identity.CastMut[[]byte](identity.NewMut(&v))
		assert.False(t, ok)
	})

	t.Run("pins stay on the same location", func(t *testing.T) {
		t.Parallel()

		v := 1.5
		pm, ok := identity.CastPinMut[float64](identity.NewPinMut(&v))
		require.True(t, ok)
		assert.True(t, pm.Is(&v))
		pm.Set(2.5)
		assert.InDelta(t, 2.5, v, 0)

		pr, ok := identity.CastPinRef[float64](pm.Ref())
		require.True(t, ok)
		assert.True(t, pr.Is(&v))

		_, ok = identity.CastPinRef[celsius](pm.Ref())
		assert.False(t, ok)
	})

	t.Run("borrow forms do not mix", func(t *testing.T) {
		t.Parallel()

		v := 1
		_, ok := identity.Cast[identity.Mut[int]](identity.NewRef(&v))
		assert.False(t, ok)

		_, ok = identity.Cast[identity.Ref[int]](identity.NewMut(&v))
		assert.False(t, ok)

		_, ok = identity.Cast[identity.PinRef[int]](identity.NewRef(&v))
		assert.False(t, ok)
	})

	t.Run("nil pointers are rejected", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { identity.NewRef[int](nil) })
		assert.Panics(t, func() { identity.NewMut[int](nil) })
		assert.Panics(t, func() { identity.NewPinRef[int](nil) })
		assert.Panics(t, func() { identity.NewPinMut[int](nil) })
	})
}

func TestBorrowKinds(t *testing.T) {
	t.Parallel()

	v := 0
	forms := []identity.Borrowed{
		identity.NewRef(&v),
		identity.NewMut(&v),
		identity.NewPinRef(&v),
		identity.NewPinMut(&v),
	}

	want := []identity.Borrow{
		identity.BorrowShared,
		identity.BorrowExclusive,
		identity.BorrowPinnedShared,
		identity.BorrowPinnedExclusive,
	}

	require.Len(t, forms, identity.BorrowTotal-1)

	for i, b := range forms {
		assert.Equal(t, want[i], b.Borrow())
		assert.Equal(t, identity.TagOf[int](), b.ElemTag())
	}

	assert.True(t, identity.BorrowPinnedShared.IsPinned())
	assert.False(t, identity.BorrowShared.IsPinned())
	assert.True(t, identity.BorrowPinnedExclusive.IsExclusive())
	assert.False(t, identity.BorrowPinnedShared.IsExclusive())
	assert.Equal(t, "BorrowExclusive", identity.BorrowExclusive.String())
	assert.Equal(t, "Borrow(0)", identity.Borrow(0).String())
}
