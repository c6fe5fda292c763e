package main

import (
	"fmt"
	"log"

	vectorio "github.com/beetlebugorg/vectorio/pkg/v1"
)

// newReader would come from a NAS/GML reader implementation; the engine is
// pluggable and not part of the vectorio module itself.
func newReader(path string) vectorio.SchemaReader {
	return nil // plug your reader in here
}

func main() {
	reader := newReader("gid6.xml")

	// Open the dataset: schema from the .gfs cache when current, otherwise
	// from a prescan of the source
	ds, err := vectorio.OpenDataset("gid6.xml", reader, vectorio.DefaultDatasetOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Dataset: %s\n", ds.Name())
	fmt.Printf("Layers: %d\n", ds.LayerCount())

	for _, layer := range ds.Layers() {
		fmt.Printf("  %s (%s, %d fields)\n", layer.Name, layer.GeometryType, len(layer.Fields))
		if layer.SRS != nil {
			fmt.Printf("    CRS: %s:%d\n", layer.SRS.Authority, layer.SRS.Code)
		}
	}

	// Extract inter-feature relationships (one full pass over the stream)
	ds.PopulateRelations()
	for _, rel := range ds.Relations() {
		fmt.Printf("%s -[%s]-> %s\n", rel.SourceID, rel.Name, rel.TargetID)
	}
}
