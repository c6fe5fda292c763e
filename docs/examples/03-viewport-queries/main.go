package main

import (
	"fmt"

	"github.com/paulmach/orb"

	vectorio "github.com/beetlebugorg/vectorio/pkg/v1"
)

func main() {
	features := []vectorio.Feature{
		{ID: 1, Geometry: orb.Point{6.96, 50.94}},                       // Cologne
		{ID: 2, Geometry: orb.Point{7.10, 50.73}},                       // Bonn
		{ID: 3, Geometry: orb.Point{11.58, 48.14}},                      // Munich
		{ID: 4, Geometry: orb.LineString{{6.97, 50.93}, {7.12, 50.72}}}, // Rhine stretch
	}

	// Build the R-tree index
	idx := vectorio.NewFeatureIndex()
	for i := range features {
		idx.Add(&features[i])
	}

	// Rhineland viewport (O(log n) against the index)
	viewport := orb.Bound{
		Min: orb.Point{6.5, 50.5},
		Max: orb.Point{7.5, 51.0},
	}

	visible := idx.Query(viewport)
	fmt.Printf("Visible features: %d of %d\n", len(visible), idx.Count())
	for _, f := range visible {
		fmt.Printf("  #%d %s\n", f.ID, f.Geometry.GeoJSONType())
	}
}
