package shape

// Accepts reports whether v can be cast to the shape dst.
//
// For leaves and for wrappers without an Acceptor this is Matches on the
// descriptor of T. Built-in wrappers refine it by their contents: an
// absent Optional is accepted by every optional target whatever its
// component shape.
func Accepts[T any](v T, dst Descriptor) bool {
	src := DescriptorOf[T]()
	if src.Kind.IsStructural() {
		if a, ok := any(v).(Acceptor); ok {
			return a.Accepts(dst)
		}
	}

	return Matches(src, dst)
}

// CastBorrowed casts v to U when Accepts allows it. Borrows inside v keep
// referring to the same locations.
func CastBorrowed[U, T any](v T) (U, bool) {
	if !Accepts(v, DescriptorOf[U]()) {
		var zero U
		return zero, false
	}

	return Recast[U](&v)
}

// Recast converts the value src points to into a U.
//
// Identical types are copied through. Otherwise U must be a structural
// shape implementing Receiver on its pointer and rebuild itself from src. Custom shapes call Recast on
// each of their components from Receive.
func Recast[U any](src any) (U, bool) {
	if p, ok := src.(*U); ok {
		return *p, true
	}

	var out U
	if !DescriptorOf[U]().Kind.IsStructural() {
		return out, false
	}

	if r, ok := any(&out).(Receiver); ok && r.Receive(src) {
		return out, true
	}

	var zero U
	return zero, false
}
