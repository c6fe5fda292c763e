package model

import "github.com/paulmach/orb"

// GeometryType classifies a geometry at the schema level.
//
// GeomUnknown is deliberately permissive: a layer declared GeomUnknown
// accepts features of any geometry kind. GeomNone declares an attribute-only
// layer.
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
func (t GeometryType) String() string {
	switch t {
	case GeomNone:
		return "None"
	case GeomPoint:
		return "Point"
	case GeomLineString:
		return "LineString"
	case GeomPolygon:
		return "Polygon"
	case GeomMultiPoint:
		return "MultiPoint"
	case GeomMultiLineString:
		return "MultiLineString"
	case GeomMultiPolygon:
		return "MultiPolygon"
	case GeomCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// GeometryTypeOf returns the schema-level type of a concrete geometry.
// A nil geometry maps to GeomNone; orb kinds with no schema equivalent
// (Bound, Ring) map to GeomUnknown.
func GeometryTypeOf(g orb.Geometry) GeometryType {
	switch g.(type) {
	case nil:
		return GeomNone
	case orb.Point:
		return GeomPoint
	case orb.LineString:
		return GeomLineString
	case orb.Polygon:
		return GeomPolygon
	case orb.MultiPoint:
		return GeomMultiPoint
	case orb.MultiLineString:
		return GeomMultiLineString
	case orb.MultiPolygon:
		return GeomMultiPolygon
	case orb.Collection:
		return GeomCollection
	default:
		return GeomUnknown
	}
}
