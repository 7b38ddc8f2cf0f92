package shape

// Verdict is the outcome of comparing two descriptors.
type Verdict int

const (
	VerdictMatch Verdict = iota
	VerdictInvalid
	VerdictKindMismatch
	VerdictTagMismatch
	VerdictNameMismatch
	VerdictArityMismatch
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictMatch:
		return "match"
	case VerdictInvalid:
		return "invalid"
	case VerdictKindMismatch:
		return "kind_mismatch"
	case VerdictTagMismatch:
		return "tag_mismatch"
	case VerdictNameMismatch:
		return "name_mismatch"
	case VerdictArityMismatch:
		return "arity_mismatch"
	default:
		return "unknown"
	}
}

// Compare walks both descriptors in lockstep and reports the first
// difference. It is defined for every pair of descriptors, including zero
// ones, which are never a match.
func Compare(src, dst Descriptor) Verdict {
	if !src.Kind.IsValid() || !dst.Kind.IsValid() {
		return VerdictInvalid
	}

	if src.Kind != dst.Kind {
		return VerdictKindMismatch
	}

	if src.Kind.IsLeaf() {
		if src.Tag.IsZero() || src.Tag != dst.Tag {
			return VerdictTagMismatch
		}

		return VerdictMatch
	}

	if src.Name != dst.Name {
		return VerdictNameMismatch
	}

	if len(src.Elems) != len(dst.Elems) {
		return VerdictArityMismatch
	}

	for i := range src.Elems {
		if v := Compare(src.Elems[i], dst.Elems[i]); v != VerdictMatch {
			return v
		}
	}

	return VerdictMatch
}

// Matches reports whether a value shaped like src can always be cast to dst.
func Matches(src, dst Descriptor) bool {
	return Compare(src, dst) == VerdictMatch
}

// MatchesType is Matches over the descriptors of T and U. It never looks at
// a value.
func MatchesType[T, U any]() bool {
	return Matches(DescriptorOf[T](), DescriptorOf[U]())
}
