package nas

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/beetlebugorg/vectorio/internal/model"
)

// oidPrefix marries a property value to another feature: values of the form
// "urn:adv:oid:<id>" reference the feature with that object identifier.
const oidPrefix = "urn:adv:oid:"

// idProperty is the schema property carrying a feature's own identifier.
const idProperty = "gml_id"

// OpenOptions configures opening a NAS datasource.
type OpenOptions struct {
	// SchemaCachePath overrides the sidecar file used to persist prescanned
	// schemas. Empty derives it from the source path with a .gfs extension.
	SchemaCachePath string

	// SRSFactory builds layer spatial references from resolved names.
	// Nil uses model.ParseSRS.
	SRSFactory model.SRSFactory
}

// DefaultOpenOptions returns open options with defaults.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{SRSFactory: model.ParseSRS}
}

// DataSource is an opened NAS file: one layer schema per feature class plus
// the relation layer.
type DataSource struct {
	name      string
	reader    Reader
	layers    []*model.LayerSchema
	relations *RelationLayer
}

// Open opens a NAS source file through the reader the factory provides.
//
// A schema cache sidecar next to the source is used when it is not older
// than the source itself; otherwise the reader prescans the file, and the
// discovered schema is saved back when no cache exists yet (failure to save
// is a debug-level event only). Every feature class becomes a layer; the
// relation layer is appended last, except that a trailing "Delete" layer
// keeps its position at the very end.
func Open(path string, newReader ReaderFactory, opts OpenOptions) (*DataSource, error) {
	reader := newReader(path)
	if reader == nil {
		return nil, &ErrSchemaUnavailable{Path: path}
	}

	srsFactory := opts.SRSFactory
	if srsFactory == nil {
		srsFactory = model.ParseSRS
	}
	cachePath := opts.SchemaCachePath
	if cachePath == "" {
		cachePath = schemaCachePath(path)
	}

	haveSchema := false
	if cacheStat, err := os.Stat(cachePath); err == nil {
		if srcStat, err := os.Stat(path); err == nil && srcStat.ModTime().After(cacheStat.ModTime()) {
			log.WithField("cache", cachePath).
				Debug("nas: ignoring schema cache older than the source file")
		} else {
			haveSchema = reader.LoadClasses(cachePath)
		}
	}

	if !haveSchema && !reader.PrescanForSchema() {
		return nil, &ErrPrescanFailed{Path: path}
	}

	if !haveSchema && reader.ClassCount() > 0 {
		if _, err := os.Stat(cachePath); os.IsNotExist(err) {
			if err := reader.SaveClasses(cachePath); err != nil {
				log.WithField("cache", cachePath).WithError(err).
					Debug("nas: could not save schema cache")
			}
		} else {
			log.WithField("cache", cachePath).
				Debug("nas: not saving schema cache, file already exists")
		}
	}

	ds := &DataSource{
		name:      path,
		reader:    reader,
		relations: NewRelationLayer(),
	}

	for i := 0; i < reader.ClassCount(); i++ {
		ds.layers = append(ds.layers, TranslateSchema(reader.Class(i), srsFactory))
	}

	// The "Delete" pseudo-class lists withdrawn objects and conventionally
	// stays the last layer of the dataset.
	relSchema := ds.relations.Schema()
	if n := len(ds.layers); n > 0 && strings.EqualFold(ds.layers[n-1].Name, "Delete") {
		deleteLayer := ds.layers[n-1]
		ds.layers[n-1] = relSchema
		ds.layers = append(ds.layers, deleteLayer)
	} else {
		ds.layers = append(ds.layers, relSchema)
	}

	return ds, nil
}

// schemaCachePath derives the schema cache sidecar from the source path.
func schemaCachePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".gfs"
}

// Name returns the source path the datasource was opened from.
func (ds *DataSource) Name() string { return ds.name }

// LayerCount returns the number of layers, relation layer included.
func (ds *DataSource) LayerCount() int { return len(ds.layers) }

// Layer returns the i-th layer schema, or nil when out of range.
func (ds *DataSource) Layer(i int) *model.LayerSchema {
	if i < 0 || i >= len(ds.layers) {
		return nil
	}
	return ds.layers[i]
}

// Layers returns all layer schemas in dataset order.
func (ds *DataSource) Layers() []*model.LayerSchema { return ds.layers }

// RelationLayer returns the dataset's relation layer.
func (ds *DataSource) RelationLayer() *RelationLayer { return ds.relations }

// PopulateRelations extracts inter-feature relationship links from the
// decoded feature stream into the relation layer.
//
// The stream is rewound and decoded once, front to back. A feature
// contributes one relation per out-of-band property whose value carries the
// object-identifier prefix, but only while the feature itself has exactly
// one gml_id value; features with zero or several identifier values
// contribute nothing. Completing the pass marks the relation layer
// populated.
func (ds *DataSource) PopulateRelations() {
	ds.reader.ResetReading()

	for {
		feature := ds.reader.NextFeature()
		if feature == nil {
			break
		}

		idValues := feature.PropertyValues(idProperty)

		for _, ob := range feature.OBProperties {
			if !hasPrefixFold(ob.Value, oidPrefix) {
				continue
			}
			if len(idValues) != 1 {
				continue
			}
			ds.relations.AddRelation(idValues[0], ob.Name, ob.Value[len(oidPrefix):])
		}
	}

	ds.relations.MarkPopulated()
}
