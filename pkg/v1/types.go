package vectorio

import (
	"github.com/paulmach/orb"

	"github.com/beetlebugorg/vectorio/internal/model"
)

// NoID marks a feature whose identifier has not been assigned by a writer
// yet. CreateFeature also returns it when a multipoint or collection
// feature was fanned out into individual records.
const NoID int64 = model.NoID

// FieldType is the semantic type of an attribute field.
type FieldType int

const (
	FieldString FieldType = iota
	FieldInteger
	FieldReal
	FieldDate
	FieldTime
	FieldDateTime
	FieldStringList
	FieldIntegerList
	FieldRealList
)

// String returns the field type name.
func (t FieldType) String() string { return model.FieldType(t).String() }

// GeometryType classifies a geometry at the schema level.
type GeometryType int

const (
	GeomUnknown GeometryType = iota
	GeomNone
	GeomPoint
	GeomLineString
	GeomPolygon
	GeomMultiPoint
	GeomMultiLineString
	GeomMultiPolygon
	GeomCollection
)

// String returns the geometry type name.
func (t GeometryType) String() string { return model.GeometryType(t).String() }

// FieldDefn describes one attribute field of a layer schema. Width and
// Precision are storage hints; zero means "use the format default".
type FieldDefn struct {
	Name      string
	Type      FieldType
	Width     int
	Precision int
}

// Feature is a format-agnostic vector record: an optional orb geometry,
// attribute values in schema order, an optional OGR feature style string
// and an identifier.
type Feature struct {
	ID       int64
	Fields   []any
	Geometry orb.Geometry
	Style    string
}

// SpatialRef identifies a coordinate reference system by authority and
// code. Name keeps the string the reference was built from.
type SpatialRef struct {
	Name      string
	Authority string
	Code      int
}

// LayerSchema describes one layer: name, declared geometry type, optional
// spatial reference and the ordered field list.
type LayerSchema struct {
	Name         string
	GeometryType GeometryType
	SRS          *SpatialRef // nil when unresolved
	Fields       []FieldDefn
}

// Relation links two features by identifier through a named association.
type Relation struct {
	SourceID string
	Name     string
	TargetID string
}
