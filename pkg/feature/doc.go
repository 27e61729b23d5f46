// Package feature implements the attribute record at the heart of the
// mapping toolkit: a feature with named attribute values, owned
// geometries, an optional raster, and a derived spatial envelope.
//
// # Shared Schema
//
// Attribute names are not stored per feature. A Context maps each name to
// a slot index once, and every feature built against that Context keeps
// only a dense value array indexed by slot:
//
//	ctx := feature.NewContext()
//	ctx.Push("name")
//	ctx.Push("pop")
//
//	f := feature.New(ctx, 7)
//	f.Put("name", value.NewString("NYC"))
//	f.Put("pop", value.NewInteger(100))
//
// A feature's array length is a snapshot of the Context size at
// construction. The Context may grow afterwards (PutNew on any sibling
// feature grows it), so a slot that is valid in the Context is not
// necessarily covered by every feature's array. Reads are always safe and
// return the null value for uncovered slots; strict writes fail instead.
//
// # Geometry and Envelope
//
// Features own their geometries exclusively, in insertion order. The
// envelope is recomputed from the geometries on every call, seeded from
// the first geometry's bounding box:
//
//	f.AddGeometry(geom.Point{X: -71.06, Y: 42.36})
//	box := f.Envelope()
//
// # Spatial Queries
//
// Index holds features in an R-tree keyed by envelope for fast intersect
// queries:
//
//	idx := feature.NewIndex(features...)
//	hits := idx.Search(viewport)
//
// # Concurrency
//
// Nothing in this package synchronizes internally. Reading a stable
// Context or feature from multiple goroutines is safe. Any growth or
// write (Push, Add, Put, PutNew, AddGeometry, Index.Insert) requires
// external locking or a single-writer discipline; this is the caller's
// responsibility.
package feature
