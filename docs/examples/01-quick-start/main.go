package main

import (
	"fmt"
	"log"

	"github.com/ice200117/mapnik/pkg/feature"
	"github.com/ice200117/mapnik/pkg/geom"
	"github.com/ice200117/mapnik/pkg/value"
)

func main() {
	// Build one shared schema for all features
	ctx := feature.NewContext()
	ctx.Push("name")
	ctx.Push("pop")

	// Create a feature against the schema
	f := feature.New(ctx, 7)
	if err := f.Put("name", value.NewString("NYC")); err != nil {
		log.Fatal(err)
	}
	if err := f.Put("pop", value.NewInteger(100)); err != nil {
		log.Fatal(err)
	}
	f.AddGeometry(geom.Point{X: -74.006, Y: 40.7128})

	// Print the debug text form
	fmt.Print(f.String())

	// Derive the spatial envelope
	box := f.Envelope()
	fmt.Printf("Envelope: [%.4f,%.4f] to [%.4f,%.4f]\n",
		box.MinX, box.MinY, box.MaxX, box.MaxY)

	// Spatial queries over many features
	idx := feature.NewIndex(f)
	hits := idx.Search(geom.NewBox2D(-75.0, 40.0, -73.0, 41.0))
	fmt.Printf("Features in viewport: %d\n", len(hits))
}
