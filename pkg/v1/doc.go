// Package vectorio translates between a generic vector feature model and
// two native formats: it writes features into MapInfo TAB/MIF tables and
// reads NAS cadastral exchange files into generic layers.
//
// Geometry uses github.com/paulmach/orb throughout; attributes are typed,
// positional field values; style is carried as an OGR feature style string.
//
// # Writing MapInfo tables
//
// A Table maps each generic feature onto the MapInfo variant its geometry
// kind calls for (point, region, polyline, or a geometry-less record) and
// narrows field definitions to MapInfo's type system:
//
//	table := vectorio.NewTable()
//	table.DefineField(vectorio.FieldDefn{Name: "name", Type: vectorio.FieldString}, false)
//	table.DefineField(vectorio.FieldDefn{Name: "area", Type: vectorio.FieldReal, Width: 12, Precision: 3}, false)
//
//	id, err := table.CreateFeature(&vectorio.Feature{
//	    Fields:   []any{"parcel 7", 1523.75},
//	    Geometry: orb.Point{7.1, 50.7},
//	})
//
// Multipoint and geometry-collection features have no MapInfo equivalent:
// CreateFeature writes each part as its own record and returns NoID to
// signal that everything was already emitted.
//
// # Reading NAS datasets
//
// A Dataset drives an external NAS/GML schema reader (supplied by the
// caller), translates every feature class into a generic layer schema, and
// extracts inter-feature relationship links into a dedicated relation
// layer:
//
//	ds, err := vectorio.OpenDataset("parcels.xml", reader, vectorio.DefaultDatasetOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ds.PopulateRelations()
//	for _, rel := range ds.Relations() {
//	    fmt.Printf("%s -[%s]-> %s\n", rel.SourceID, rel.Name, rel.TargetID)
//	}
//
// # Spatial queries
//
// FeatureIndex answers bounding-box queries over a set of features with an
// R-tree, for viewport-style access patterns:
//
//	idx := vectorio.NewFeatureIndex()
//	for i := range features {
//	    idx.Add(&features[i])
//	}
//	visible := idx.Query(viewport)
package vectorio
