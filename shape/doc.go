// Package shape extends identity casting through borrow forms and
// structural containers.
//
// Every static type has a value-independent Descriptor: a leaf (owned
// value, shared, exclusive or pinned borrow) tagged with its element
// type, or a structural wrapper (optional, two-armed result, tri-state
// poll, tuples of arity 1 to 3, application-defined wrappers) over the
// descriptors of its components. Compare is total over every pair of
// descriptors; there is no implicit accept.
//
// Casting is split in two steps:
//   - Accepts decides, for a concrete value, whether it can become the
//     target shape. It equals Matches except that an absent Optional is
//     accepted by any optional target, since it carries no value to check.
//   - Recast rebuilds the target component by component. Identical types
//     are copied through, so borrows keep pointing at the same location.
//
// Application types join in by implementing Shape (value receiver),
// optionally Acceptor, and Receiver (pointer receiver) in terms of Recast
// on their own components.
package shape
