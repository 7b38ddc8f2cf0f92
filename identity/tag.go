package identity

import "reflect"

// TypeTag identifies a concrete Go type. Two tags are equal iff they were
// taken from identical types.
type TypeTag struct {
	t reflect.Type
}

// TagOf returns the tag of T. Interface types are tagged as themselves,
// not by the dynamic type they may hold.
func TagOf[T any]() TypeTag {
	return TypeTag{t: reflect.TypeFor[T]()}
}

// IsSame reports whether A and B are the same type.
func IsSame[A, B any]() bool {
	return TagOf[A]() == TagOf[B]()
}

// Type returns the underlying reflect type, nil for the zero tag.
func (t TypeTag) Type() reflect.Type {
	return t.t
}

// IsZero reports whether the tag was never assigned.
func (t TypeTag) IsZero() bool {
	return t.t == nil
}

func (t TypeTag) String() string {
	if t.t == nil {
		return "<nil>"
	}

	if t.t.PkgPath() == "" || t.t.Name() == "" {
		return t.t.String()
	}

	return t.t.PkgPath() + "." + t.t.Name()
}
