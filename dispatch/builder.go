package dispatch

// Builder accumulates candidates over a fallback for one input and one
// target type. See the package documentation for the resolution order.
type Builder[T, U any] struct {
	chain chain[T, func(T) U]
}

// New starts a builder that returns fallback(input) unless a candidate added
// later claims the input.
func New[T, U any](input T, fallback func(T) U, opts ...Option) *Builder[T, U] {
	mustFunc(fallback, "New")

	return &Builder[T, U]{chain: newChain[T, U](input, fallback, opts)}
}

// Len returns the number of candidates registered so far.
func (b *Builder[T, U]) Len() int {
	return len(b.chain.entries)
}

// Run invokes exactly one closure, the newest matching candidate or the
// fallback, and returns its result. The builder cannot be used afterwards.
func (b *Builder[T, U]) Run() U {
	input, call := b.chain.seal("Run")

	return call(input)
}

// Explain evaluates every guard against the input without invoking any
// closure and without consuming the builder.
func (b *Builder[T, U]) Explain() Report {
	return explain(&b.chain)
}

func (b *Builder[T, U]) derive(op string, e entry[T, func(T) U]) *Builder[T, U] {
	return &Builder[T, U]{chain: b.chain.extend(op, e)}
}

// Specialize adds a candidate that runs when the input has the shape of P
// and U has the shape of R.
func Specialize[T, U, P, R any](b *Builder[T, U], f func(P) R) *Builder[T, U] {
	mustFunc(f, "Specialize")

	e := newEntry[T, U, P, R, func(T) U](b.chain.next(), FormSpecialize, f)
	meta := e.meta
	e.call = func(t T) U {
		return mustCast[U](f(mustCast[P](t, meta, "param")), meta, "return")
	}

	return b.derive("Specialize", e)
}

// SpecializeParam adds a candidate that runs when the input has the shape
// of P. f already produces the target type.
func SpecializeParam[T, U, P any](b *Builder[T, U], f func(P) U) *Builder[T, U] {
	mustFunc(f, "SpecializeParam")

	e := newEntry[T, U, P, U, func(T) U](b.chain.next(), FormParam, f)
	meta := e.meta
	e.call = func(t T) U {
		return f(mustCast[P](t, meta, "param"))
	}

	return b.derive("SpecializeParam", e)
}

// SpecializeReturn adds a candidate that takes the input as is and runs
// when U has the shape of R.
func SpecializeReturn[T, U, R any](b *Builder[T, U], f func(T) R) *Builder[T, U] {
	mustFunc(f, "SpecializeReturn")

	e := newEntry[T, U, T, R, func(T) U](b.chain.next(), FormReturn, f)
	meta := e.meta
	e.call = func(t T) U {
		return mustCast[U](f(t), meta, "return")
	}

	return b.derive("SpecializeReturn", e)
}

// SpecializeMap adds a candidate guarded like Specialize on P and R that
// runs pre on the input seen as a P, f on the result seen as a T again,
// and post on f's result seen as an R. pre and post can observe or modify
// borrowed values even when P equals T and R equals U.
//
// The input must have the shape of P exactly: an absent Optional is not
// admitted into a differently typed optional here, because the premapped
// value has to be cast back to T.
func SpecializeMap[T, U, P, R any](
	b *Builder[T, U],
	pre func(P) P,
	f func(T) U,
	post func(R) R,
) *Builder[T, U] {
	mustFunc(pre, "SpecializeMap")
	mustFunc(f, "SpecializeMap")
	mustFunc(post, "SpecializeMap")

	e := newEntry[T, U, P, R, func(T) U](b.chain.next(), FormMap, pre)
	meta := e.meta
	e.call = func(t T) U {
		p := pre(mustCast[P](t, meta, "param"))
		r := post(mustCast[R](f(mustCast[T](p, meta, "premap")), meta, "result"))

		return mustCast[U](r, meta, "return")
	}

	return b.derive("SpecializeMap", e)
}

// SpecializeMapParam is SpecializeMap without a return guard or post-map.
func SpecializeMapParam[T, U, P any](b *Builder[T, U], pre func(P) P, f func(T) U) *Builder[T, U] {
	mustFunc(pre, "SpecializeMapParam")
	mustFunc(f, "SpecializeMapParam")

	e := newEntry[T, U, P, U, func(T) U](b.chain.next(), FormMapParam, pre)
	meta := e.meta
	e.call = func(t T) U {
		p := pre(mustCast[P](t, meta, "param"))

		return f(mustCast[T](p, meta, "premap"))
	}

	return b.derive("SpecializeMapParam", e)
}

// SpecializeMapReturn is SpecializeMap without a parameter guard or pre-map.
func SpecializeMapReturn[T, U, R any](b *Builder[T, U], f func(T) U, post func(R) R) *Builder[T, U] {
	mustFunc(f, "SpecializeMapReturn")
	mustFunc(post, "SpecializeMapReturn")

	e := newEntry[T, U, T, R, func(T) U](b.chain.next(), FormMapReturn, post)
	meta := e.meta
	e.call = func(t T) U {
		r := post(mustCast[R](f(t), meta, "result"))

		return mustCast[U](r, meta, "return")
	}

	return b.derive("SpecializeMapReturn", e)
}
