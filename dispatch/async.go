package dispatch

import "context"

// AsyncFunc is the closure type of the asynchronous flavor. Errors it
// returns reach the caller of AsyncBuilder.Run unchanged.
type AsyncFunc[P, R any] func(context.Context, P) (R, error)

// AsyncBuilder is Builder over context-aware closures that may fail. Guards
// are evaluated before anything is awaited, so only the selected closures
// ever observe the context.
type AsyncBuilder[T, U any] struct {
	chain chain[T, AsyncFunc[T, U]]
}

// NewAsync starts an asynchronous builder over fallback.
func NewAsync[T, U any](
	input T,
	fallback func(context.Context, T) (U, error),
	opts ...Option,
) *AsyncBuilder[T, U] {
	mustFunc(fallback, "NewAsync")

	return &AsyncBuilder[T, U]{chain: newChain[T, U](input, AsyncFunc[T, U](fallback), opts)}
}

// Len returns the number of candidates registered so far.
func (b *AsyncBuilder[T, U]) Len() int {
	return len(b.chain.entries)
}

// Run selects a closure the way Builder.Run does and awaits it.
func (b *AsyncBuilder[T, U]) Run(ctx context.Context) (U, error) {
	input, call := b.chain.seal("Run")

	return call(ctx, input)
}

// Explain is Builder.Explain for the asynchronous flavor.
func (b *AsyncBuilder[T, U]) Explain() Report {
	return explain(&b.chain)
}

func (b *AsyncBuilder[T, U]) derive(op string, e entry[T, AsyncFunc[T, U]]) *AsyncBuilder[T, U] {
	return &AsyncBuilder[T, U]{chain: b.chain.extend(op, e)}
}

// SpecializeAsync is Specialize for AsyncBuilder.
func SpecializeAsync[T, U, P, R any](
	b *AsyncBuilder[T, U],
	f func(context.Context, P) (R, error),
) *AsyncBuilder[T, U] {
	mustFunc(f, "SpecializeAsync")

	e := newEntry[T, U, P, R, AsyncFunc[T, U]](b.chain.next(), FormSpecialize, f)
	meta := e.meta
	e.call = func(ctx context.Context, t T) (U, error) {
		r, err := f(ctx, mustCast[P](t, meta, "param"))
		if err != nil {
			var zero U
			return zero, err
		}

		return mustCast[U](r, meta, "return"), nil
	}

	return b.derive("SpecializeAsync", e)
}

// SpecializeParamAsync is SpecializeParam for AsyncBuilder.
func SpecializeParamAsync[T, U, P any](
	b *AsyncBuilder[T, U],
	f func(context.Context, P) (U, error),
) *AsyncBuilder[T, U] {
	mustFunc(f, "SpecializeParamAsync")

	e := newEntry[T, U, P, U, AsyncFunc[T, U]](b.chain.next(), FormParam, f)
	meta := e.meta
	e.call = func(ctx context.Context, t T) (U, error) {
		return f(ctx, mustCast[P](t, meta, "param"))
	}

	return b.derive("SpecializeParamAsync", e)
}

// SpecializeReturnAsync is SpecializeReturn for AsyncBuilder.
func SpecializeReturnAsync[T, U, R any](
	b *AsyncBuilder[T, U],
	f func(context.Context, T) (R, error),
) *AsyncBuilder[T, U] {
	mustFunc(f, "SpecializeReturnAsync")

	e := newEntry[T, U, T, R, AsyncFunc[T, U]](b.chain.next(), FormReturn, f)
	meta := e.meta
	e.call = func(ctx context.Context, t T) (U, error) {
		r, err := f(ctx, t)
		if err != nil {
			var zero U
			return zero, err
		}

		return mustCast[U](r, meta, "return"), nil
	}

	return b.derive("SpecializeReturnAsync", e)
}

// SpecializeMapAsync is SpecializeMap for AsyncBuilder. An error from pre
// or f stops the pipeline; post only runs on a successful result.
func SpecializeMapAsync[T, U, P, R any](
	b *AsyncBuilder[T, U],
	pre func(context.Context, P) (P, error),
	f func(context.Context, T) (U, error),
	post func(context.Context, R) (R, error),
) *AsyncBuilder[T, U] {
	mustFunc(pre, "SpecializeMapAsync")
	mustFunc(f, "SpecializeMapAsync")
	mustFunc(post, "SpecializeMapAsync")

	e := newEntry[T, U, P, R, AsyncFunc[T, U]](b.chain.next(), FormMap, pre)
	meta := e.meta
	e.call = func(ctx context.Context, t T) (U, error) {
		var zero U

		p, err := pre(ctx, mustCast[P](t, meta, "param"))
		if err != nil {
			return zero, err
		}

		u, err := f(ctx, mustCast[T](p, meta, "premap"))
		if err != nil {
			return zero, err
		}

		r, err := post(ctx, mustCast[R](u, meta, "result"))
		if err != nil {
			return zero, err
		}

		return mustCast[U](r, meta, "return"), nil
	}

	return b.derive("SpecializeMapAsync", e)
}

// SpecializeMapParamAsync is SpecializeMapParam for AsyncBuilder.
func SpecializeMapParamAsync[T, U, P any](
	b *AsyncBuilder[T, U],
	pre func(context.Context, P) (P, error),
	f func(context.Context, T) (U, error),
) *AsyncBuilder[T, U] {
	mustFunc(pre, "SpecializeMapParamAsync")
	mustFunc(f, "SpecializeMapParamAsync")

	e := newEntry[T, U, P, U, AsyncFunc[T, U]](b.chain.next(), FormMapParam, pre)
	meta := e.meta
	e.call = func(ctx context.Context, t T) (U, error) {
		p, err := pre(ctx, mustCast[P](t, meta, "param"))
		if err != nil {
			var zero U
			return zero, err
		}

		return f(ctx, mustCast[T](p, meta, "premap"))
	}

	return b.derive("SpecializeMapParamAsync", e)
}

// SpecializeMapReturnAsync is SpecializeMapReturn for AsyncBuilder.
func SpecializeMapReturnAsync[T, U, R any](
	b *AsyncBuilder[T, U],
	f func(context.Context, T) (U, error),
	post func(context.Context, R) (R, error),
) *AsyncBuilder[T, U] {
	mustFunc(f, "SpecializeMapReturnAsync")
	mustFunc(post, "SpecializeMapReturnAsync")

	e := newEntry[T, U, T, R, AsyncFunc[T, U]](b.chain.next(), FormMapReturn, post)
	meta := e.meta
	e.call = func(ctx context.Context, t T) (U, error) {
		var zero U

		u, err := f(ctx, t)
		if err != nil {
			return zero, err
		}

		r, err := post(ctx, mustCast[R](u, meta, "result"))
		if err != nil {
			return zero, err
		}

		return mustCast[U](r, meta, "return"), nil
	}

	return b.derive("SpecializeMapReturnAsync", e)
}
