package identity

// Cast returns v re-typed as U when T and U are the same type.
//
// The check goes through a pointer to v, so interface-typed values holding
// nil still cast when the static types agree, and a value whose dynamic
// type merely implements U never does.
func Cast[U, T any](v T) (U, bool) {
	p, ok := any(&v).(*U)
	if !ok {
		var zero U
		return zero, false
	}

	return *p, true
}

// CastRef casts a shared borrow without copying the referent.
func CastRef[U, T any](r Ref[T]) (Ref[U], bool) {
	return Cast[Ref[U]](r)
}

// CastMut casts an exclusive borrow without copying the referent.
func CastMut[U, T any](m Mut[T]) (Mut[U], bool) {
	return Cast[Mut[U]](m)
}

// CastPinRef casts a pinned shared borrow. The result refers to the same location.
func CastPinRef[U, T any](r PinRef[T]) (PinRef[U], bool) {
	return Cast[PinRef[U]](r)
}

// CastPinMut casts a pinned exclusive borrow. The result refers to the same location.
func CastPinMut[U, T any](m PinMut[T]) (PinMut[U], bool) {
	return Cast[PinMut[U]](m)
}
