package identity

//go:generate go tool stringer -type=Borrow -output=borrow_string.go

// Borrow is the ownership form of a borrow wrapper.
type Borrow int

const (
	_ Borrow = iota // zero value is reserved for "not a borrow"

	BorrowShared
	BorrowExclusive
	BorrowPinnedShared
	BorrowPinnedExclusive

	// BorrowTotal is a constant that represents the total number of borrow forms defined
	BorrowTotal = int(iota)
)

// IsPinned reports whether the borrow form guarantees a fixed location.
func (b Borrow) IsPinned() bool {
	switch b {
	default:
		return false
	case BorrowPinnedShared, BorrowPinnedExclusive:
		return true
	}
}

// IsExclusive reports whether the borrow form allows writes through it.
func (b Borrow) IsExclusive() bool {
	switch b {
	default:
		return false
	case BorrowExclusive, BorrowPinnedExclusive:
		return true
	}
}

// Borrowed is implemented by the borrow wrappers of this package.
type Borrowed interface {
	Borrow() Borrow
	ElemTag() TypeTag
}

func mustPointer[T any](p *T, what string) *T {
	if p == nil {
		panic(what + " cannot borrow a nil pointer")
	}

	return p
}

// Ref is a shared borrow of a T. It only hands out copies of the referent.
type Ref[T any] struct {
	p *T
}

// NewRef borrows *p for reading.
func NewRef[T any](p *T) Ref[T] {
	return Ref[T]{p: mustPointer(p, "Ref")}
}

// Get returns a copy of the referent.
func (r Ref[T]) Get() T { return *r.p }

// Is reports whether r borrows exactly p.
func (r Ref[T]) Is(p *T) bool { return r.p == p }

// Borrow reports BorrowShared.
func (Ref[T]) Borrow() Borrow { return BorrowShared }

// ElemTag returns the tag of T.
func (Ref[T]) ElemTag() TypeTag { return TagOf[T]() }

// Mut is an exclusive borrow of a T. Holders must not let the same location
// be reachable through another Mut while this one is in use.
type Mut[T any] struct {
	p *T
}

// NewMut borrows *p for reading and writing.
func NewMut[T any](p *T) Mut[T] {
	return Mut[T]{p: mustPointer(p, "Mut")}
}

// Get returns a copy of the referent.
func (m Mut[T]) Get() T { return *m.p }

// Set overwrites the referent.
func (m Mut[T]) Set(v T) { *m.p = v }

// Ptr exposes the borrowed location.
func (m Mut[T]) Ptr() *T { return m.p }

// Is reports whether m borrows exactly p.
func (m Mut[T]) Is(p *T) bool { return m.p == p }

// Borrow reports BorrowExclusive.
func (Mut[T]) Borrow() Borrow { return BorrowExclusive }

// ElemTag returns the tag of T.
func (Mut[T]) ElemTag() TypeTag { return TagOf[T]() }

// Ref downgrades the exclusive borrow to a shared one.
func (m Mut[T]) Ref() Ref[T] { return Ref[T](m) }

// PinRef is a shared borrow whose location never changes after construction.
type PinRef[T any] struct {
	p *T
}

// NewPinRef pins *p for reading.
func NewPinRef[T any](p *T) PinRef[T] {
	return PinRef[T]{p: mustPointer(p, "PinRef")}
}

// Get returns a copy of the referent.
func (r PinRef[T]) Get() T { return *r.p }

// Is reports whether r pins exactly p.
func (r PinRef[T]) Is(p *T) bool { return r.p == p }

// Borrow reports BorrowPinnedShared.
func (PinRef[T]) Borrow() Borrow { return BorrowPinnedShared }

// ElemTag returns the tag of T.
func (PinRef[T]) ElemTag() TypeTag { return TagOf[T]() }

// PinMut is an exclusive borrow whose location never changes after
// construction. Writes go through Set; the pointer itself is not exposed so
// the referent cannot be moved out from under the pin.
type PinMut[T any] struct {
	p *T
}

// NewPinMut pins *p for reading and writing.
func NewPinMut[T any](p *T) PinMut[T] {
	return PinMut[T]{p: mustPointer(p, "PinMut")}
}

// Get returns a copy of the referent.
func (m PinMut[T]) Get() T { return *m.p }

// Set overwrites the referent in place.
func (m PinMut[T]) Set(v T) { *m.p = v }

// Is reports whether m pins exactly p.
func (m PinMut[T]) Is(p *T) bool { return m.p == p }

// Borrow reports BorrowPinnedExclusive.
func (PinMut[T]) Borrow() Borrow { return BorrowPinnedExclusive }

// ElemTag returns the tag of T.
func (PinMut[T]) ElemTag() TypeTag { return TagOf[T]() }

// Ref downgrades the pinned exclusive borrow to a pinned shared one.
func (m PinMut[T]) Ref() PinRef[T] { return PinRef[T](m) }
