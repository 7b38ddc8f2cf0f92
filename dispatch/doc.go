// Package dispatch lets one generic function behave differently depending
// on the concrete types bound to its type parameters.
//
// A Builder owns an input of type T, a mandatory fallback func(T) U and an
// append-only chain of candidates. Each candidate is guarded by the shape
// of its parameter and result types; Run walks the chain from the most
// recently added candidate to the oldest and invokes the first one whose
// guard holds, or the fallback when none does. Exactly one closure runs.
//
//	func specialized[T any, U utils.Number](v T, conv func(T) U) U {
//		b := dispatch.New(v, conv)
//		b = dispatch.Specialize(b, func(i int32) int32 { return i * 2 })
//		b = dispatch.SpecializeParam(b, func(u uint8) U { return U(u * 3) })
//		return b.Run()
//	}
//
// Guards compare shapes, never interface conformance: see package shape.
// Borrowed inputs and results are ordinary identity.Ref, identity.Mut and
// pinned wrappers, so one builder covers owned and borrowed flavors alike.
// AsyncBuilder is the same algorithm over context-aware closures.
//
// Every Specialize* call consumes the builder it is given and Run seals
// it; using either again panics with ErrBuilderConsumed.
package dispatch
