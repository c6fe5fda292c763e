package nas

import "github.com/beetlebugorg/vectorio/internal/model"

// PropertyType is the semantic type of a NAS feature-class property as
// reported by the external schema reader.
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
func (t PropertyType) String() string {
	switch t {
	case PropString:
		return "String"
	case PropInteger:
		return "Integer"
	case PropReal:
		return "Real"
	case PropStringList:
		return "StringList"
	case PropIntegerList:
		return "IntegerList"
	case PropRealList:
		return "RealList"
	default:
		return "Untyped"
	}
}

// PropertySchema describes one property of a NAS feature class.
type PropertySchema struct {
	Name  string
	Type  PropertyType
	Width int // 0 when the reader observed no width
}

// GeometryProperty describes one geometry-bearing property of a class.
type GeometryProperty struct {
	Name string
	Type model.GeometryType
}

// ClassSchema is the externally parsed description of one NAS feature
// class. It is produced once per source file by the schema reader and
// consumed read-only here.
type ClassSchema struct {
	Name               string
	FeatureCount       int // observed feature instances, 0 for empty classes
	Properties         []PropertySchema
	GeometryProperties []GeometryProperty
	SRSName            string // e.g. "urn:adv:crs:ETRS89_UTM32", "" when unknown
}

// PropertyIndex returns the index of the named property, or -1.
func (c *ClassSchema) PropertyIndex(name string) int {
	for i, p := range c.Properties {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// OBProperty is an out-of-band property attached to a decoded feature:
// a name/value pair outside the class schema. NAS encodes inter-feature
// relationship links this way.
type OBProperty struct {
	Name  string
	Value string
}

// StreamFeature is one decoded feature from the reader's forward pass.
//
// Values holds the sub-values of each schema property, indexed like
// Class.Properties; a property the feature does not carry has a nil entry.
type StreamFeature struct {
	Class        *ClassSchema
	Values       [][]string
	OBProperties []OBProperty
}

// PropertyValues returns the values of the named schema property, or nil.
func (f *StreamFeature) PropertyValues(name string) []string {
	if f.Class == nil {
		return nil
	}
	i := f.Class.PropertyIndex(name)
	if i < 0 || i >= len(f.Values) {
		return nil
	}
	return f.Values[i]
}

// Reader is the external NAS/GML reader the datasource drives. The XML
// parsing engine behind it is not part of this package.
type Reader interface {
	// ClassCount returns the number of known feature classes.
	ClassCount() int

	// Class returns the i-th feature class.
	Class(i int) *ClassSchema

	// LoadClasses loads a previously saved schema cache. Returns false when
	// the cache could not be used.
	LoadClasses(path string) bool

	// SaveClasses persists the current classes as a schema cache.
	SaveClasses(path string) error

	// PrescanForSchema runs a schema-discovery pass over the source file.
	// Returns false when the pass failed.
	PrescanForSchema() bool

	// ResetReading rewinds the feature stream to the beginning.
	ResetReading()

	// NextFeature decodes the next feature, or nil at end of stream.
	NextFeature() *StreamFeature
}

// ReaderFactory creates the reader for one source file. Returning nil means
// the reader implementation is unavailable (missing optional dependency).
type ReaderFactory func(path string) Reader
