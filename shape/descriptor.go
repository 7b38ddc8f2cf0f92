package shape

import (
	"reflect"
	"strings"

	"specializer/identity"
)

// Descriptor is the value-independent shape of a static type.
type Descriptor struct {
	Kind Kind
	// Tag identifies the element type of a leaf. Empty for wrappers.
	Tag identity.TypeTag
	// Name tells custom wrappers apart. Empty for built-in kinds.
	Name string
	// Elems are the component shapes of a wrapper, in declaration order.
	Elems []Descriptor
}

// Shape is implemented, with a value receiver, by every structural type
// the casting layer can see through. Describe must not depend on the
// receiver's contents: it is called on zero values.
//
// A struct that embeds a shape or a borrow is an owned leaf whatever
// methods it declares: promoted methods never lend it another type's
// identity.
type Shape interface {
	Describe() Descriptor
}

// Acceptor refines Matches with knowledge of the actual value, for shapes
// whose contents make some target shapes reachable that the static
// descriptor alone would reject.
type Acceptor interface {
	Accepts(dst Descriptor) bool
}

// Receiver is implemented, with a pointer receiver, by shapes that can
// rebuild themselves from a differently typed source of the same kind.
// src is always a pointer to the source value. Receive reports false when
// any component cannot be recast; the receiver's contents are then
// unspecified.
type Receiver interface {
	Receive(src any) bool
}

// Leaf returns the descriptor of a leaf kind.
func Leaf(kind Kind, tag identity.TypeTag) Descriptor {
	if !kind.IsLeaf() {
		panic("leaf descriptor requested for non-leaf kind: " + kind.String())
	}

	return Descriptor{Kind: kind, Tag: tag}
}

// Wrap returns the descriptor of a built-in structural kind.
func Wrap(kind Kind, elems ...Descriptor) Descriptor {
	if !kind.IsStructural() || kind == KindCustom {
		panic("wrap descriptor requested for non-wrapper kind: " + kind.String())
	}

	if kind.Arity() != len(elems) {
		panic("wrong number of components for " + kind.Label())
	}

	return Descriptor{Kind: kind, Elems: elems}
}

// Custom returns the descriptor of an application-defined wrapper. Two
// custom descriptors only match when their names are equal.
func Custom(name string, elems ...Descriptor) Descriptor {
	if name == "" {
		panic("custom descriptor needs a name")
	}

	return Descriptor{Kind: KindCustom, Name: name, Elems: elems}
}

// DescriptorOf returns the descriptor of T.
//
// Pointer and interface types are owned leaves: the shape of a value held
// behind them is never inspected. So are structs embedding a shape.
func DescriptorOf[T any]() Descriptor {
	rt := reflect.TypeFor[T]()
	switch rt.Kind() {
	case reflect.Pointer, reflect.Interface:
		return Leaf(KindOwned, identity.TagOf[T]())
	}

	if embedsShape(rt) {
		return Leaf(KindOwned, identity.TagOf[T]())
	}

	var zero T
	switch s := any(zero).(type) {
	case Shape:
		return s.Describe()
	case identity.Borrowed:
		return Leaf(borrowKind(s.Borrow()), s.ElemTag())
	}

	return Leaf(KindOwned, identity.TagOf[T]())
}

func (d Descriptor) String() string {
	var sb strings.Builder
	d.write(&sb)

	return sb.String()
}

func (d Descriptor) write(sb *strings.Builder) {
	switch {
	case d.Kind.IsLeaf():
		sb.WriteString(d.Kind.Label())
		sb.WriteByte('(')
		sb.WriteString(d.Tag.String())
		sb.WriteByte(')')
		return

	case d.Kind == KindCustom:
		sb.WriteString(d.Name)

	case d.Kind.IsValid():
		sb.WriteString(d.Kind.Label())

	default:
		sb.WriteString(d.Kind.Label())
		return
	}

	sb.WriteByte('(')
	for i, e := range d.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		e.write(sb)
	}
	sb.WriteByte(')')
}

// kindOf returns the kind src describes itself as, or the invalid kind
// when src is not a shape.
func kindOf(src any) Kind {
	if t := reflect.TypeOf(src); t != nil && t.Kind() == reflect.Pointer && embedsShape(t.Elem()) {
		return 0
	}

	if s, ok := src.(Shape); ok {
		return s.Describe().Kind
	}

	return 0
}

var (
	shapeType    = reflect.TypeFor[Shape]()
	receiverType = reflect.TypeFor[Receiver]()
	borrowedType = reflect.TypeFor[identity.Borrowed]()
)

// embedsShape reports whether t is a struct with an embedded field that
// promotes shape, receiver or borrow methods into it.
func embedsShape(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}

		if f.Type.Implements(shapeType) || f.Type.Implements(borrowedType) ||
			reflect.PointerTo(f.Type).Implements(receiverType) {
			return true
		}
	}

	return false
}
