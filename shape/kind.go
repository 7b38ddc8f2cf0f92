package shape

import (
	"specializer/identity"
	"specializer/utils"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind enumerates the closed set of shapes.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindOwned
	KindShared
	KindExclusive
	KindPinnedShared
	KindPinnedExclusive
	KindOptional
	KindTwoArm
	KindTriState
	KindTuple1
	KindTuple2
	KindTuple3
	KindCustom // application-defined wrapper, told apart by Descriptor.Name

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsValid() bool {
	return utils.IsInRange(int(KindOwned), int(k), KindTotal-1)
}

// IsLeaf reports whether the kind carries a type tag instead of components.
func (k Kind) IsLeaf() bool {
	switch k {
	default:
		return false
	case KindOwned, KindShared, KindExclusive, KindPinnedShared, KindPinnedExclusive:
		return true
	}
}

func (k Kind) IsStructural() bool {
	return k.IsValid() && !k.IsLeaf()
}

// Arity is the number of components a structural kind holds, 0 for leaves
// and -1 for custom wrappers, which may hold any number.
func (k Kind) Arity() int {
	switch k {
	default:
		return 0
	case KindOptional, KindTriState, KindTuple1:
		return 1
	case KindTwoArm, KindTuple2:
		return 2
	case KindTuple3:
		return 3
	case KindCustom:
		return -1
	}
}

// Label is the shape name used in descriptor strings.
func (k Kind) Label() string {
	switch k {
	default:
		return "Invalid"
	case KindOwned:
		return "Owned"
	case KindShared:
		return "SharedRef"
	case KindExclusive:
		return "ExclusiveRef"
	case KindPinnedShared:
		return "PinnedSharedRef"
	case KindPinnedExclusive:
		return "PinnedExclusiveRef"
	case KindOptional:
		return "Optional"
	case KindTwoArm:
		return "TwoArm"
	case KindTriState:
		return "TriState"
	case KindTuple1:
		return "Tuple1"
	case KindTuple2:
		return "Tuple2"
	case KindTuple3:
		return "Tuple3"
	case KindCustom:
		return "Custom"
	}
}

// TupleKind returns the tuple kind of the given arity.
func TupleKind(arity int) Kind {
	if !utils.IsInRange(1, arity, 3) {
		panic("tuple arity must be within [1, 3]")
	}

	return KindTuple1 + Kind(arity-1)
}

func borrowKind(b identity.Borrow) Kind {
	switch b {
	default:
		return 0
	case identity.BorrowShared:
		return KindShared
	case identity.BorrowExclusive:
		return KindExclusive
	case identity.BorrowPinnedShared:
		return KindPinnedShared
	case identity.BorrowPinnedExclusive:
		return KindPinnedExclusive
	}
}
