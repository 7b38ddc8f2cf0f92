// Package identity provides exact type-identity tests and checked casts
// between generically typed values.
//
// Casts never convert, coerce or check interface conformance: a value of
// static type T becomes a value of static type U only when T and U are the
// same type. Mismatches are reported with the comma-ok idiom.
//
// Key pieces:
//   - TypeTag, TagOf, IsSame: comparable type identifiers
//   - Cast: owned cast
//   - Ref, Mut, PinRef, PinMut: shared, exclusive and pinned borrows
//   - CastRef, CastMut, CastPinRef, CastPinMut: borrow-preserving casts
package identity
