package vectorio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader is a canned SchemaReader for dataset tests.
type scriptedReader struct {
	classes  []*ClassSchema
	features []*StreamFeature
	pos      int
}

func (r *scriptedReader) ClassCount() int          { return len(r.classes) }
func (r *scriptedReader) Class(i int) *ClassSchema { return r.classes[i] }
func (r *scriptedReader) LoadClasses(string) bool  { return false }
func (r *scriptedReader) SaveClasses(string) error { return nil }
func (r *scriptedReader) PrescanForSchema() bool   { return true }
func (r *scriptedReader) ResetReading()            { r.pos = 0 }

func (r *scriptedReader) NextFeature() *StreamFeature {
	if r.pos >= len(r.features) {
		return nil
	}
	f := r.features[r.pos]
	r.pos++
	return f
}

func sourceFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bestand.xml")
	require.NoError(t, os.WriteFile(path, []byte("<AX_Bestandsdatenauszug/>"), 0o644))
	return path
}

func TestOpenDatasetNilReader(t *testing.T) {
	_, err := OpenDataset("bestand.xml", nil, DefaultDatasetOptions())
	require.Error(t, err)
}

func TestOpenDatasetLayers(t *testing.T) {
	path := sourceFile(t)
	reader := &scriptedReader{
		classes: []*ClassSchema{
			{
				Name:         "ax_flurstueck",
				FeatureCount: 4,
				Properties: []PropertySchema{
					{Name: "ogr:gml_id", Type: PropString, Width: 16},
					{Name: "flurnummer", Type: PropInteger},
				},
				GeometryProperties: []GeometryProperty{{Name: "position", Type: GeomPolygon}},
				SRSName:            "urn:adv:crs:ETRS89_UTM32",
			},
		},
	}

	ds, err := OpenDataset(path, reader, DefaultDatasetOptions())
	require.NoError(t, err)
	assert.Equal(t, path, ds.Name())
	require.Equal(t, 2, ds.LayerCount())

	parcels, ok := ds.Layer("ax_flurstueck")
	require.True(t, ok)
	assert.Equal(t, GeomPolygon, parcels.GeometryType)
	require.NotNil(t, parcels.SRS)
	assert.Equal(t, 25832, parcels.SRS.Code)
	require.Len(t, parcels.Fields, 2)
	assert.Equal(t, FieldDefn{Name: "gml_id", Type: FieldString, Width: 16}, parcels.Fields[0])
	assert.Equal(t, FieldDefn{Name: "flurnummer", Type: FieldInteger}, parcels.Fields[1])

	relations, ok := ds.Layer("alkis_beziehungen")
	require.True(t, ok)
	assert.Equal(t, GeomNone, relations.GeometryType)

	_, ok = ds.Layer("missing")
	assert.False(t, ok)
}

func TestOpenDatasetCustomSRSFactory(t *testing.T) {
	path := sourceFile(t)
	reader := &scriptedReader{
		classes: []*ClassSchema{{
			Name:               "ax_gebaeude",
			FeatureCount:       1,
			GeometryProperties: []GeometryProperty{{Name: "position", Type: GeomPolygon}},
			SRSName:            "urn:adv:crs:ETRS89_UTM33",
		}},
	}

	opts := DefaultDatasetOptions()
	var seen string
	opts.SRS = func(name string) (*SpatialRef, error) {
		seen = name
		return &SpatialRef{Name: name, Authority: "EPSG", Code: 25833}, nil
	}

	ds, err := OpenDataset(path, reader, opts)
	require.NoError(t, err)
	assert.Equal(t, "EPSG:25833", seen, "alias resolution happens before the factory")

	layer, ok := ds.Layer("ax_gebaeude")
	require.True(t, ok)
	require.NotNil(t, layer.SRS)
	assert.Equal(t, 25833, layer.SRS.Code)
}

func TestDatasetPopulateRelations(t *testing.T) {
	path := sourceFile(t)
	class := &ClassSchema{
		Name:         "ax_flurstueck",
		FeatureCount: 2,
		Properties:   []PropertySchema{{Name: "gml_id", Type: PropString}},
	}
	reader := &scriptedReader{
		classes: []*ClassSchema{class},
		features: []*StreamFeature{
			{
				Class:  class,
				Values: [][]string{{"DENW18001"}},
				OBProperties: []OBProperty{
					{Name: "istGebucht", Value: "urn:adv:oid:DENW18077"},
				},
			},
			{
				Class:        class,
				Values:       [][]string{nil},
				OBProperties: []OBProperty{{Name: "zeigtAuf", Value: "urn:adv:oid:DENW18099"}},
			},
		},
	}

	ds, err := OpenDataset(path, reader, DefaultDatasetOptions())
	require.NoError(t, err)
	assert.False(t, ds.RelationsPopulated())

	ds.PopulateRelations()

	assert.True(t, ds.RelationsPopulated())
	want := []Relation{{SourceID: "DENW18001", Name: "istGebucht", TargetID: "DENW18077"}}
	assert.Equal(t, want, ds.Relations())
}
