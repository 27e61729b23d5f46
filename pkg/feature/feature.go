package feature

import (
	"fmt"
	"strings"

	"github.com/ice200117/mapnik/pkg/geom"
	"github.com/ice200117/mapnik/pkg/raster"
	"github.com/ice200117/mapnik/pkg/value"
)

// Feature is one geospatial entity: an integer id, a dense attribute
// value array aligned to a shared Context, an exclusively-owned ordered
// geometry collection, and an optional shared raster.
//
// The value array length is a snapshot of the Context size at
// construction. It may fall behind if the Context grows afterwards; see
// Put, PutNew, and Get for how each operation treats uncovered slots.
type Feature struct {
	id          int64
	ctx         *Context
	data        []value.Value
	geometries  []geom.Geometry
	raster      *raster.Raster
	droppedPuts int
}

// New creates a feature against ctx with the given id. The value array is
// sized to ctx.Size() at this instant, every slot null.
func New(ctx *Context, id int64) *Feature {
	return &Feature{
		id:   id,
		ctx:  ctx,
		data: make([]value.Value, ctx.Size()),
	}
}

// ID returns the feature identifier. Uniqueness is the caller's concern.
func (f *Feature) ID() int64 {
	return f.id
}

// SetID replaces the feature identifier.
func (f *Feature) SetID(id int64) {
	f.id = id
}

// Context returns the shared schema this feature was built against.
func (f *Feature) Context() *Context {
	return f.ctx
}

// Put stores val under key. It succeeds only when key is registered in
// the Context and its slot is covered by this feature's value array;
// otherwise it returns *ErrKeyNotFound. Schema membership alone is not
// enough: a sibling feature may have grown the Context past this
// feature's array.
func (f *Feature) Put(key string, val value.Value) error {
	index, ok := f.ctx.Lookup(key)
	if !ok || index >= len(f.data) {
		return &ErrKeyNotFound{Key: key}
	}
	f.data[index] = val
	return nil
}

// PutNew stores val under key, registering key in the shared Context if
// needed. When key resolves to a covered slot it behaves like Put. When
// it does not, the Context is pushed (growing the schema for every
// feature sharing it) and the value is appended only if the candidate
// slot lands exactly at the end of this feature's array.
//
// If the Context had already grown past this feature's array, the schema
// still grows but the value is dropped: the array does not catch up and
// the write is lost. The drop is counted (see DroppedPuts) and logged at
// debug level, but it is not an error.
func (f *Feature) PutNew(key string, val value.Value) {
	if index, ok := f.ctx.Lookup(key); ok && index < len(f.data) {
		f.data[index] = val
		return
	}
	index := f.ctx.Push(key)
	if index == len(f.data) {
		f.data = append(f.data, val)
		return
	}
	f.droppedPuts++
	logger.Debug("put_new dropped value, feature array behind schema",
		"feature", f.id,
		"key", key,
		"slot", index,
		"array_len", len(f.data),
	)
}

// HasKey reports whether key is registered in the Context. It does not
// imply the value is retrievable from this feature: the slot may lie
// beyond this feature's array.
func (f *Feature) HasKey(key string) bool {
	_, ok := f.ctx.Lookup(key)
	return ok
}

// Get returns the value stored under key, or the null value when key is
// unregistered or its slot is beyond this feature's array. Get never
// fails; it is the safe-read counterpart to the strict Put.
func (f *Feature) Get(key string) value.Value {
	index, ok := f.ctx.Lookup(key)
	if !ok {
		return value.Null()
	}
	return f.GetByIndex(index)
}

// GetByIndex returns the value at slot index, or the null value when the
// slot is beyond this feature's array.
func (f *Feature) GetByIndex(index int) value.Value {
	if index < 0 || index >= len(f.data) {
		return value.Null()
	}
	return f.data[index]
}

// Size returns the length of this feature's value array. It may be less
// than the Context size when the schema has grown since construction.
func (f *Feature) Size() int {
	return len(f.data)
}

// Data returns the value array. Callers must not modify it; use SetData
// to replace it wholesale.
func (f *Feature) Data() []value.Value {
	return f.data
}

// SetData replaces the entire value array. Keeping the array aligned with
// the Context's slot assignment is the caller's responsibility.
func (f *Feature) SetData(data []value.Value) {
	f.data = data
}

// DroppedPuts returns how many PutNew values this feature has lost to the
// array-behind-schema condition.
func (f *Feature) DroppedPuts() int {
	return f.droppedPuts
}

// AddGeometry appends g to the feature's geometry collection. The feature
// takes sole ownership; insertion order is preserved.
func (f *Feature) AddGeometry(g geom.Geometry) {
	f.geometries = append(f.geometries, g)
}

// NumGeometries returns the number of owned geometries.
func (f *Feature) NumGeometries() int {
	return len(f.geometries)
}

// Geometry returns the geometry at index, or *ErrIndexOutOfRange when
// index is outside the collection.
func (f *Feature) Geometry(index int) (geom.Geometry, error) {
	if index < 0 || index >= len(f.geometries) {
		return nil, &ErrIndexOutOfRange{Index: index, Length: len(f.geometries)}
	}
	return f.geometries[index], nil
}

// Geometries returns the owned geometry collection in insertion order.
// Callers must not modify it.
func (f *Feature) Geometries() []geom.Geometry {
	return f.geometries
}

// Envelope returns the minimal bounding box covering every owned
// geometry. It is recomputed on every call, never cached.
//
// With no geometries it returns the empty sentinel. Otherwise the box is
// seeded from the first geometry's envelope and each later envelope is
// unioned in, so the sentinel never participates in a union with real
// coordinates.
func (f *Feature) Envelope() geom.Box2D {
	result := geom.EmptyBox2D()
	for i, g := range f.geometries {
		if i == 0 {
			box := g.Envelope()
			result.Init(box.MinX, box.MinY, box.MaxX, box.MaxY)
		} else {
			result.ExpandToInclude(g.Envelope())
		}
	}
	return result
}

// Raster returns the attached raster and whether one is attached.
func (f *Feature) Raster() (*raster.Raster, bool) {
	return f.raster, f.raster != nil
}

// SetRaster attaches r, replacing any previous raster. The raster is
// shared, not owned: other holders may keep referencing it.
func (f *Feature) SetRaster(r *raster.Raster) {
	f.raster = r
}

// String renders the debug text form:
//
//	Feature ( id=7
//	  name:NYC
//	  pop:100
//	)
//
// Context entries are walked in sorted name order. An entry whose slot is
// beyond this feature's array is omitted entirely (unlike iteration,
// which yields null for it). A null value renders the literal "null".
func (f *Feature) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Feature ( id=%d\n", f.id)
	for _, entry := range f.ctx.Entries() {
		if entry.Index >= len(f.data) {
			continue
		}
		v := f.data[entry.Index]
		if v.IsNull() {
			fmt.Fprintf(&sb, "  %s:null\n", entry.Name)
		} else {
			fmt.Fprintf(&sb, "  %s:%s\n", entry.Name, v.String())
		}
	}
	sb.WriteString(")\n")
	return sb.String()
}
