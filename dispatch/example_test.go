package dispatch_test

import (
	"context"
	"errors"
	"fmt"

	"specializer/dispatch"
	"specializer/identity"
	"specializer/utils"
)

func double[T utils.Number](v T) T {
	b := dispatch.New(v, func(x T) T { return x * 2 })
	b = dispatch.Specialize(b, func(s uint8) uint8 { return s << 2 })

	return b.Run()
}

func Example() {
	fmt.Println(double(int32(5)))
	fmt.Println(double(uint8(5)))
	fmt.Println(describe(int16(7)))
	fmt.Println(widen(uint8(3)))

	// Output:
	// 10
	// 20
	// unknown
	// 9
}

func ExampleSpecializeMap() {
	counter := 0
	b := dispatch.New(identity.NewMut(&counter), func(m identity.Mut[int]) string { return fmt.Sprint(m.Get()) })
	b = dispatch.SpecializeMap(b,
		func(m identity.Mut[int]) identity.Mut[int] {
			m.Set(m.Get() + 1)
			return m
		},
		func(m identity.Mut[int]) string { return fmt.Sprint(m.Get()) },
		func(s string) string { return "count=" + s },
	)

	fmt.Println(b.Run(), counter)

	// Output:
	// count=1 1
}

func ExampleAsyncBuilder_Run() {
	b := dispatch.NewAsync(int32(21), func(context.Context, int32) (string, error) {
		return "", errors.New("no handler")
	})
	b = dispatch.SpecializeAsync(b, func(_ context.Context, v int32) (string, error) {
		return fmt.Sprint(v * 2), nil
	})

	out, err := b.Run(context.Background())
	fmt.Println(out, err)

	// Output:
	// 42 <nil>
}

func ExampleBuilder_Explain() {
	b := dispatch.New(int16(1), func(int16) string { return "unknown" })
	b = dispatch.SpecializeParam(b, func(int32) string { return "int32" })

	r := b.Explain()
	fmt.Println(r.Selected, r.Candidates[0].Guard, r.Candidates[0].Param)

	// Output:
	// -1 Owned(int32) -> _ tag_mismatch
}
