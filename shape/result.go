package shape

// Result holds either a success value T or a failure value E.
type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Ok returns a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Fail returns a failed Result holding e.
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, failed: true}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return !r.failed
}

// Value returns the success value and whether r holds one.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, !r.failed
}

// Failure returns the failure value and whether r holds one.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, r.failed
}

// Describe returns TwoArm(T, E).
func (Result[T, E]) Describe() Descriptor {
	return Wrap(KindTwoArm, DescriptorOf[T](), DescriptorOf[E]())
}

// Accepts checks the live arm by value and the idle arm by descriptor.
func (r Result[T, E]) Accepts(dst Descriptor) bool {
	if dst.Kind != KindTwoArm || len(dst.Elems) != 2 {
		return false
	}

	if r.failed {
		return Matches(DescriptorOf[T](), dst.Elems[0]) && Accepts(r.err, dst.Elems[1])
	}

	return Accepts(r.value, dst.Elems[0]) && Matches(DescriptorOf[E](), dst.Elems[1])
}

// Receive rebuilds r from a result whose live arm recasts and whose idle
// arm matches.
func (r *Result[T, E]) Receive(src any) bool {
	if kindOf(src) != KindTwoArm {
		return false
	}

	s, ok := src.(interface {
		resultParts() (failed bool, live any, idle Descriptor)
	})
	if !ok {
		return false
	}

	failed, live, idle := s.resultParts()
	if failed {
		if !Matches(idle, DescriptorOf[T]()) {
			return false
		}

		e, ok := Recast[E](live)
		if !ok {
			return false
		}

		*r = Fail[T](e)

		return true
	}

	if !Matches(idle, DescriptorOf[E]()) {
		return false
	}

	v, ok := Recast[T](live)
	if !ok {
		return false
	}

	*r = Ok[T, E](v)

	return true
}

func (r *Result[T, E]) resultParts() (bool, any, Descriptor) {
	if r.failed {
		return true, &r.err, DescriptorOf[T]()
	}

	return false, &r.value, DescriptorOf[E]()
}
