// Package schema defines the build-time half of a slot registry: an
// ordered, closed list of type registrations sealed into an immutable
// Schema.
//
// # Building
//
// A Builder accumulates entries in registration order. Build seals them,
// assigning every entry a dense slot index and resolving the type-to-index
// side table once, before any registry exists:
//
//	b := schema.NewBuilder().Named("app").EnableDynamic()
//	schema.MustRegister[Counter](b)
//	schema.MustRegister[Config](b, schema.WithInit(func() Config {
//	    return Config{Addr: ":8080"}
//	}))
//	s := b.MustBuild()
//
// Registration rejects duplicates: no two entries may share a key type
// identity. Builders are single-use; a sealed builder rejects further
// registrations with ErrSealed.
//
// # Keys
//
// Keys minted from the sealed Schema carry their slot index, so registry
// access through a Key is a slice index, not a map probe:
//
//	key := schema.MustKeyFor[Counter](s)
//
// # Marker Keys
//
// RegisterAs stores a value type under a distinct key identity, letting
// several entries share one value type:
//
//	schema.MustRegisterAs[RequestCount, map[string]uint64](b)
//	schema.MustRegisterAs[ErrorCount, map[string]uint64](b)
//
//	key := schema.MustKeyAs[RequestCount, map[string]uint64](s)
package schema
