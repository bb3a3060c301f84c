// Package capability declares interface-backed capability sets over a
// sealed schema.
//
// A Set computes, once at construction, which schema entries satisfy its
// interface type parameter. The handle for an entry storing V is *V, so
// methods with pointer and value receivers both count:
//
//	type Printable interface{ Print() string }
//
//	printables, err := capability.NewSet[Printable](s, "printable")
//
// Membership is kept as an ordered index list plus a Roaring bitmap Mask.
// Iteration over a live registry, including the runtime-typed dynamic half
// of the predicate, lives in the registry package. A read-only capability
// is simply an interface exposing no mutating methods; the handle type
// itself then forbids mutation.
//
// # Refinement
//
// Typed sets refine by intersection and subtraction, which can only shrink
// membership and therefore stay sound for I:
//
//	quiet := printables.AndNot(noisyMask)
//
// Union on typed sets is deliberately absent; a union could admit slots
// whose handles do not implement I. Raw masks carry the full algebra:
//
//   - And: intersection
//   - Or: union
//   - AndNot: difference
package capability
