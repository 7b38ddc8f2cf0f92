package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"specializer/dispatch"
	"specializer/shape"
	"specializer/utils"
)

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)

	return err
}

// describe names the few integer types it knows about.
func describe[T any](v T) string {
	b := dispatch.New(v, func(T) string { return "unknown" })
	b = dispatch.SpecializeParam(b, func(int32) string { return "int32" })
	b = dispatch.SpecializeParam(b, func(uint8) string { return "uint8" })

	return b.Run()
}

// widen converts any number to int64, doubling int32 and tripling uint8.
func widen[T utils.Number](v T) int64 {
	b := dispatch.New(v, utils.Convert[int64, T])
	b = dispatch.SpecializeParam(b, func(i int32) int64 { return int64(i) * 2 })
	b = dispatch.SpecializeParam(b, func(u uint8) int64 { return int64(u) * 3 })

	return b.Run()
}

// flaky claims to fit sturdy, but sturdy cannot be built from it.
type flaky struct{}

func (flaky) Describe() shape.Descriptor { return shape.Custom("flaky") }

func (flaky) Accepts(dst shape.Descriptor) bool { return dst.Name == "sturdy" }

type sturdy struct{}

func (sturdy) Describe() shape.Descriptor { return shape.Custom("sturdy") }

func (*sturdy) Receive(any) bool { return false }
