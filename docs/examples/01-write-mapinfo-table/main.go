package main

import (
	"fmt"
	"log"

	"github.com/paulmach/orb"

	vectorio "github.com/beetlebugorg/vectorio/pkg/v1"
)

func main() {
	// Create an in-memory MapInfo table
	table := vectorio.NewTable()

	// Define fields (widths outside MapInfo limits are narrowed)
	fields := []vectorio.FieldDefn{
		{Name: "name", Type: vectorio.FieldString, Width: 40},
		{Name: "area", Type: vectorio.FieldReal, Width: 25, Precision: 20},
	}
	for _, f := range fields {
		if err := table.DefineField(f, true); err != nil {
			log.Fatal(err)
		}
	}

	// A polygon becomes a region record
	_, err := table.CreateFeature(&vectorio.Feature{
		Fields:   []any{"Flur 7", 1250.5},
		Geometry: orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 0}}},
		Style:    `PEN(w:2px,c:#FF0000);BRUSH(fc:#00FF00)`,
	})
	if err != nil {
		log.Fatal(err)
	}

	// A multipoint fans out into one point record per part
	id, err := table.CreateFeature(&vectorio.Feature{
		Fields:   []any{"Grenzpunkte", 0.0},
		Geometry: orb.MultiPoint{{1, 1}, {2, 2}, {3, 3}},
	})
	if err != nil {
		log.Fatal(err)
	}
	if id == vectorio.NoID {
		fmt.Println("multipoint was fanned out")
	}

	// Inspect the written records
	for _, rec := range table.Written() {
		fmt.Printf("#%d %s %v\n", rec.ID, rec.Kind, rec.Fields)
	}
}
