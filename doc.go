// Package slotgo provides a typed slot registry for Go.
//
// A registry is built from a sealed schema: a closed, ordered list of
// types, each owning one default-initialized storage slot. Keys minted
// from the schema carry their slot index, so keyed access is a slice
// index plus a type assertion with no map probe:
//
//	b := schema.NewBuilder().Named("plugins")
//	schema.MustRegister[Counter](b)
//	schema.MustRegister[Flag](b)
//	s := b.MustBuild()
//
//	counterKey := schema.MustKeyFor[Counter](s)
//	flagKey := schema.MustKeyFor[Flag](s)
//
//	r, _ := slotgo.New(s)
//	defer r.Close()
//
//	slotgo.Get(r, counterKey).Hits++
//	slotgo.Set(r, flagKey, Flag{Enabled: true})
//
// Marker-keyed entries store a value type under a distinct key identity,
// so several slots may hold the same value type:
//
//	schema.MustRegisterAs[MetricsKey, map[string]uint64](b,
//	    schema.WithInit(buildInitialMetrics))
//	metricsKey := schema.MustKeyAs[MetricsKey, map[string]uint64](s)
//
// # Capability Views
//
// A capability set selects, once at construction, every slot whose handle
// satisfies an interface. Iteration yields live polymorphic handles in
// ascending slot-index order:
//
//	printables := capability.MustNewSet[Printable](s, "printable")
//	for idx, p := range slotgo.Iter(r, printables) {
//	    fmt.Println(idx, p.Print())
//	}
//
// Membership is exposed as a Roaring-backed Mask; masks combine with
// And/Or/AndNot for refined views and bulk restores (Registry.ResetMask).
//
// # Dynamic Section
//
// Schemas built with EnableDynamic accept values of types unknown at
// build time, keyed by runtime type identity and iterated in insertion
// order after all fixed slots:
//
//	prev, replaced := slotgo.Insert(r, SpamFilter{Threshold: 3})
//	v, ok := slotgo.Remove[SpamFilter](r)
//
// The fixed and dynamic sections partition the type space: inserting a
// type that owns a fixed slot panics with *PartitionError rather than
// shadowing the slot.
//
// # Unified Access
//
// Lookup and Store route by type membership, fixed section first:
//
//	if c, ok := slotgo.Lookup[Counter](r); ok {
//	    c.Hits++
//	}
//	prev, replaced, err := slotgo.Store(r, Counter{Hits: 10})
//
// # Error Model
//
// Absence is data: Lookup, Remove and Has report a boolean, never an
// error. Wiring mistakes surface as errors from the schema and capability
// constructors, with Must variants for init-time use. Invariant
// violations (partition breaches, keys from a foreign schema, use after
// Close) panic with typed error values.
//
// # Concurrency
//
// A registry performs no internal locking and no operation blocks.
// Callers that share one across goroutines must synchronize externally.
package slotgo
