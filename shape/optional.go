package shape

// Optional holds a T or nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether there is one.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Optional[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the held value or def when there is none.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}

	return o.value
}

// Describe returns Optional(T).
func (Optional[T]) Describe() Descriptor {
	return Wrap(KindOptional, DescriptorOf[T]())
}

// Accepts admits an absent value into any optional target: there is no
// value whose type could disagree.
func (o Optional[T]) Accepts(dst Descriptor) bool {
	if dst.Kind != KindOptional || len(dst.Elems) != 1 {
		return false
	}

	if !o.ok {
		return true
	}

	return Accepts(o.value, dst.Elems[0])
}

// Receive rebuilds o from any optional whose value recasts to T.
func (o *Optional[T]) Receive(src any) bool {
	if kindOf(src) != KindOptional {
		return false
	}

	s, ok := src.(interface{ optionalParts() (bool, any) })
	if !ok {
		return false
	}

	present, inner := s.optionalParts()
	if !present {
		*o = Optional[T]{}
		return true
	}

	v, ok := Recast[T](inner)
	if !ok {
		return false
	}

	*o = Some(v)

	return true
}

func (o *Optional[T]) optionalParts() (bool, any) {
	return o.ok, &o.value
}
