// Package raster provides the opaque pixel raster handle a feature record
// can carry. The feature core stores and returns the handle; it never
// inspects the pixel data.
package raster

import "github.com/ice200117/mapnik/pkg/geom"

// Raster is an immutable pixel buffer with a geographic extent. A single
// Raster is typically shared by pointer among every holder that renders
// the same underlying image.
type Raster struct {
	extent geom.Box2D
	width  int
	height int
	data   []byte
}

// New creates a raster covering extent with width x height pixels. The
// pixel encoding is the producer's concern; data is carried as-is.
func New(extent geom.Box2D, width, height int, data []byte) *Raster {
	return &Raster{
		extent: extent,
		width:  width,
		height: height,
		data:   data,
	}
}

// Extent returns the geographic area the raster covers.
func (r *Raster) Extent() geom.Box2D {
	return r.extent
}

// Width returns the pixel width.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the pixel height.
func (r *Raster) Height() int {
	return r.height
}

// Data returns the raw pixel buffer. Callers must not modify it.
func (r *Raster) Data() []byte {
	return r.data
}
