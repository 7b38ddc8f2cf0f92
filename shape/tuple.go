package shape

// Tuple1 is a one-component tuple.
type Tuple1[A any] struct {
	V0 A
}

// Tuple2 is a two-component tuple.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 is a three-component tuple.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// NewTuple1 returns the tuple (a).
func NewTuple1[A any](a A) Tuple1[A] {
	return Tuple1[A]{V0: a}
}

// NewTuple2 returns the tuple (a, b).
func NewTuple2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{V0: a, V1: b}
}

// NewTuple3 returns the tuple (a, b, c).
func NewTuple3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V0: a, V1: b, V2: c}
}

// Unpack returns the components in order.
func (t Tuple1[A]) Unpack() A               { return t.V0 }
func (t Tuple2[A, B]) Unpack() (A, B)       { return t.V0, t.V1 }
func (t Tuple3[A, B, C]) Unpack() (A, B, C) { return t.V0, t.V1, t.V2 }

func (Tuple1[A]) Describe() Descriptor {
	return Wrap(KindTuple1, DescriptorOf[A]())
}

func (Tuple2[A, B]) Describe() Descriptor {
	return Wrap(KindTuple2, DescriptorOf[A](), DescriptorOf[B]())
}

func (Tuple3[A, B, C]) Describe() Descriptor {
	return Wrap(KindTuple3, DescriptorOf[A](), DescriptorOf[B](), DescriptorOf[C]())
}

func (t Tuple1[A]) Accepts(dst Descriptor) bool {
	return dst.Kind == KindTuple1 && len(dst.Elems) == 1 &&
		Accepts(t.V0, dst.Elems[0])
}

func (t Tuple2[A, B]) Accepts(dst Descriptor) bool {
	return dst.Kind == KindTuple2 && len(dst.Elems) == 2 &&
		Accepts(t.V0, dst.Elems[0]) &&
		Accepts(t.V1, dst.Elems[1])
}

func (t Tuple3[A, B, C]) Accepts(dst Descriptor) bool {
	return dst.Kind == KindTuple3 && len(dst.Elems) == 3 &&
		Accepts(t.V0, dst.Elems[0]) &&
		Accepts(t.V1, dst.Elems[1]) &&
		Accepts(t.V2, dst.Elems[2])
}

type tupleSource interface {
	tupleParts() []any
}

// tupleParts returns the components of src when it is a tuple of kind.
func tupleParts(src any, kind Kind) ([]any, bool) {
	if kindOf(src) != kind {
		return nil, false
	}

	s, ok := src.(tupleSource)
	if !ok {
		return nil, false
	}

	parts := s.tupleParts()

	return parts, len(parts) == kind.Arity()
}

func (t *Tuple1[A]) Receive(src any) bool {
	parts, ok := tupleParts(src, KindTuple1)
	if !ok {
		return false
	}

	a, ok := Recast[A](parts[0])
	if !ok {
		return false
	}

	*t = Tuple1[A]{V0: a}

	return true
}

func (t *Tuple2[A, B]) Receive(src any) bool {
	parts, ok := tupleParts(src, KindTuple2)
	if !ok {
		return false
	}

	a, ok := Recast[A](parts[0])
	if !ok {
		return false
	}

	b, ok := Recast[B](parts[1])
	if !ok {
		return false
	}

	*t = Tuple2[A, B]{V0: a, V1: b}

	return true
}

func (t *Tuple3[A, B, C]) Receive(src any) bool {
	parts, ok := tupleParts(src, KindTuple3)
	if !ok {
		return false
	}

	a, ok := Recast[A](parts[0])
	if !ok {
		return false
	}

	b, ok := Recast[B](parts[1])
	if !ok {
		return false
	}

	c, ok := Recast[C](parts[2])
	if !ok {
		return false
	}

	*t = Tuple3[A, B, C]{V0: a, V1: b, V2: c}

	return true
}

func (t *Tuple1[A]) tupleParts() []any       { return []any{&t.V0} }
func (t *Tuple2[A, B]) tupleParts() []any    { return []any{&t.V0, &t.V1} }
func (t *Tuple3[A, B, C]) tupleParts() []any { return []any{&t.V0, &t.V1, &t.V2} }
