package shape

// Poll is a tri-state progress value: pending, or ready with a T.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a Poll that is ready with v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending returns a Poll still waiting for its value.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether p holds its value.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// Get returns the ready value and whether p is ready.
func (p Poll[T]) Get() (T, bool) {
	return p.value, p.ready
}

// Describe returns TriState(T).
func (Poll[T]) Describe() Descriptor {
	return Wrap(KindTriState, DescriptorOf[T]())
}

// Accepts checks a ready value by value. Unlike Optional, a pending poll
// still has to agree with the target on its component shape.
func (p Poll[T]) Accepts(dst Descriptor) bool {
	if dst.Kind != KindTriState || len(dst.Elems) != 1 {
		return false
	}

	if !p.ready {
		return Matches(DescriptorOf[T](), dst.Elems[0])
	}

	return Accepts(p.value, dst.Elems[0])
}

// Receive rebuilds p from a ready poll whose value recasts to T, or from a
// pending poll of the same component shape.
func (p *Poll[T]) Receive(src any) bool {
	if kindOf(src) != KindTriState {
		return false
	}

	s, ok := src.(interface {
		pollParts() (ready bool, inner any, desc Descriptor)
	})
	if !ok {
		return false
	}

	ready, inner, desc := s.pollParts()
	if !ready {
		if !Matches(desc, DescriptorOf[T]()) {
			return false
		}

		*p = Pending[T]()

		return true
	}

	v, ok := Recast[T](inner)
	if !ok {
		return false
	}

	*p = Ready(v)

	return true
}

func (p *Poll[T]) pollParts() (bool, any, Descriptor) {
	return p.ready, &p.value, DescriptorOf[T]()
}
