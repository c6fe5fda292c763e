package vectorio

import (
	"github.com/beetlebugorg/vectorio/internal/model"
	"github.com/beetlebugorg/vectorio/internal/nas"
)

// PropertyType is the semantic type of a NAS feature-class property.
type PropertyType int

const (
	PropUntyped PropertyType = iota
	PropString
	PropInteger
	PropReal
	PropStringList
	PropIntegerList
	PropRealList
)

// String returns the property type name.
func (t PropertyType) String() string { return nas.PropertyType(t).String() }

// PropertySchema describes one property of a NAS feature class.
type PropertySchema struct {
	Name  string
	Type  PropertyType
	Width int
}

// GeometryProperty describes one geometry-bearing property of a class.
type GeometryProperty struct {
	Name string
	Type GeometryType
}

// ClassSchema is the parsed description of one NAS feature class, as
// produced by the caller's schema reader.
type ClassSchema struct {
	Name               string
	FeatureCount       int
	Properties         []PropertySchema
	GeometryProperties []GeometryProperty
	SRSName            string
}

// OBProperty is an out-of-band property attached to a decoded feature:
// a name/value pair outside the class schema.
type OBProperty struct {
	Name  string
	Value string
}

// StreamFeature is one decoded feature from the reader's forward pass.
// Values holds the sub-values of each schema property, indexed like
// Class.Properties.
type StreamFeature struct {
	Class        *ClassSchema
	Values       [][]string
	OBProperties []OBProperty
}

// SchemaReader is the NAS/GML reader the dataset drives. Callers supply the
// implementation; the XML parsing engine is not part of this module.
type SchemaReader interface {
	ClassCount() int
	Class(i int) *ClassSchema
	LoadClasses(path string) bool
	SaveClasses(path string) error
	PrescanForSchema() bool
	ResetReading()
	NextFeature() *StreamFeature
}

// DatasetOptions configures opening a NAS dataset.
type DatasetOptions struct {
	// SchemaCachePath overrides the sidecar file used to persist prescanned
	// schemas. Empty derives it from the source path with a .gfs extension.
	SchemaCachePath string

	// SRS builds layer spatial references from resolved names. Nil uses the
	// built-in EPSG name parser.
	SRS func(name string) (*SpatialRef, error)
}

// DefaultDatasetOptions returns dataset options with defaults.
func DefaultDatasetOptions() DatasetOptions {
	return DatasetOptions{}
}

// Dataset is an opened NAS file: one layer per feature class plus the
// relation layer.
type Dataset struct {
	inner *nas.DataSource
}

// OpenDataset opens a NAS source file through the supplied reader.
//
// A nil reader fails (the reader implementation is an optional dependency).
// The schema comes from a cache sidecar when one exists and is current,
// otherwise from a prescan of the source; see PopulateRelations for the
// relation pass.
func OpenDataset(path string, reader SchemaReader, opts DatasetOptions) (*Dataset, error) {
	factory := func(string) nas.Reader {
		if reader == nil {
			return nil
		}
		return &readerAdapter{pub: reader}
	}

	internalOpts := nas.OpenOptions{SchemaCachePath: opts.SchemaCachePath}
	if opts.SRS != nil {
		srs := opts.SRS
		internalOpts.SRSFactory = func(name string) (*model.SpatialRef, error) {
			ref, err := srs(name)
			if err != nil || ref == nil {
				return nil, err
			}
			return &model.SpatialRef{Name: ref.Name, Authority: ref.Authority, Code: ref.Code}, nil
		}
	}

	inner, err := nas.Open(path, factory, internalOpts)
	if err != nil {
		return nil, err
	}
	return &Dataset{inner: inner}, nil
}

// Name returns the source path the dataset was opened from.
func (d *Dataset) Name() string { return d.inner.Name() }

// LayerCount returns the number of layers, relation layer included.
func (d *Dataset) LayerCount() int { return d.inner.LayerCount() }

// Layers returns all layer schemas in dataset order.
func (d *Dataset) Layers() []LayerSchema {
	layers := d.inner.Layers()
	out := make([]LayerSchema, len(layers))
	for i, l := range layers {
		out[i] = fromModelSchema(l)
	}
	return out
}

// Layer returns the named layer schema.
func (d *Dataset) Layer(name string) (LayerSchema, bool) {
	for _, l := range d.inner.Layers() {
		if l.Name == name {
			return fromModelSchema(l), true
		}
	}
	return LayerSchema{}, false
}

// PopulateRelations runs the relation pass over the full feature stream.
// Call it once per dataset; afterwards RelationsPopulated reports true and
// Relations returns the extracted links.
func (d *Dataset) PopulateRelations() {
	d.inner.PopulateRelations()
}

// RelationsPopulated reports whether the relation pass has completed.
func (d *Dataset) RelationsPopulated() bool {
	return d.inner.RelationLayer().Populated()
}

// Relations returns the extracted relations in insertion order.
func (d *Dataset) Relations() []Relation {
	internal := d.inner.RelationLayer().Relations()
	out := make([]Relation, len(internal))
	for i, r := range internal {
		out[i] = fromInternalRelation(r)
	}
	return out
}

// readerAdapter bridges the public SchemaReader onto the internal reader
// interface. Classes convert lazily and are cached by index so the stream
// features can point at stable schema objects.
type readerAdapter struct {
	pub     SchemaReader
	classes map[int]*nas.ClassSchema
	byName  map[string]*nas.ClassSchema
}

func (a *readerAdapter) ClassCount() int { return a.pub.ClassCount() }

func (a *readerAdapter) Class(i int) *nas.ClassSchema {
	if c, ok := a.classes[i]; ok {
		return c
	}
	converted := toInternalClass(a.pub.Class(i))
	if a.classes == nil {
		a.classes = make(map[int]*nas.ClassSchema)
		a.byName = make(map[string]*nas.ClassSchema)
	}
	a.classes[i] = converted
	if converted != nil {
		a.byName[converted.Name] = converted
	}
	return converted
}

func (a *readerAdapter) LoadClasses(path string) bool  { return a.pub.LoadClasses(path) }
func (a *readerAdapter) SaveClasses(path string) error { return a.pub.SaveClasses(path) }
func (a *readerAdapter) PrescanForSchema() bool        { return a.pub.PrescanForSchema() }
func (a *readerAdapter) ResetReading()                 { a.pub.ResetReading() }

func (a *readerAdapter) NextFeature() *nas.StreamFeature {
	f := a.pub.NextFeature()
	if f == nil {
		return nil
	}
	out := &nas.StreamFeature{Values: f.Values}
	if f.Class != nil {
		if cached, ok := a.byName[f.Class.Name]; ok {
			out.Class = cached
		} else {
			out.Class = toInternalClass(f.Class)
		}
	}
	for _, ob := range f.OBProperties {
		out.OBProperties = append(out.OBProperties, nas.OBProperty{Name: ob.Name, Value: ob.Value})
	}
	return out
}
