package mitab

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/vectorio/internal/model"
)

// FeatureKind selects the MapInfo feature variant. Each variant accepts a
// fixed set of geometry kinds and carries the graphical spec that MapInfo
// stores with it (symbol for points, pen for polylines, pen and brush for
// regions).
type FeatureKind int

const (
	// KindPlain is a record without geometry (MapInfo "NONE" object).
	KindPlain FeatureKind = iota
	KindPoint
	KindRegion
	KindPolyline
)

// String returns the variant name.
func (k FeatureKind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindRegion:
		return "Region"
	case KindPolyline:
		return "Polyline"
	default:
		return "None"
	}
}

// Feature is a single MapInfo record: one variant, one geometry whose
// concrete type matches the variant, attribute values in schema order and
// the variant's graphical spec.
//
// Variant and geometry are fixed together at construction time; there is no
// way to retype a feature after the fact.
type Feature struct {
	kind   FeatureKind
	id     int64
	fields []any
	geom   orb.Geometry

	pen    *PenSpec
	brush  *BrushSpec
	symbol *SymbolSpec
}

func newFeature(kind FeatureKind, fieldCount int) *Feature {
	return &Feature{
		kind:   kind,
		id:     model.NoID,
		fields: make([]any, fieldCount),
	}
}

// NewPlainFeature returns a geometry-less record with fieldCount attribute
// slots.
func NewPlainFeature(fieldCount int) *Feature {
	return newFeature(KindPlain, fieldCount)
}

// NewPointFeature returns a point-variant record.
func NewPointFeature(fieldCount int) *Feature {
	return newFeature(KindPoint, fieldCount)
}

// NewRegionFeature returns a region-variant record. Regions accept polygon
// and multi-polygon geometry.
func NewRegionFeature(fieldCount int) *Feature {
	return newFeature(KindRegion, fieldCount)
}

// NewPolylineFeature returns a polyline-variant record. Polylines accept
// line-string and multi-line-string geometry.
func NewPolylineFeature(fieldCount int) *Feature {
	return newFeature(KindPolyline, fieldCount)
}

// Kind returns the feature variant.
func (f *Feature) Kind() FeatureKind { return f.kind }

// ID returns the feature identifier (model.NoID until a writer assigns one).
func (f *Feature) ID() int64 { return f.id }

// SetID records the identifier assigned by a writer.
func (f *Feature) SetID(id int64) { f.id = id }

// Fields returns the attribute values in schema order.
func (f *Feature) Fields() []any { return f.fields }

// SetField stores v as the i-th attribute value.
func (f *Feature) SetField(i int, v any) { f.fields[i] = v }

// Geometry returns the feature geometry (nil for plain records).
func (f *Feature) Geometry() orb.Geometry { return f.geom }

// Pen returns the pen spec, or nil when none was set.
func (f *Feature) Pen() *PenSpec { return f.pen }

// Brush returns the brush spec, or nil when none was set.
func (f *Feature) Brush() *BrushSpec { return f.brush }

// Symbol returns the symbol spec, or nil when none was set.
func (f *Feature) Symbol() *SymbolSpec { return f.symbol }

// setGeometry installs a deep copy of g. The concrete geometry type must
// match the variant; a mismatch is a caller bug, not a runtime condition,
// and panics.
func (f *Feature) setGeometry(g orb.Geometry) {
	if g == nil {
		return
	}
	if !geometryMatchesKind(g, f.kind) {
		panic(fmt.Sprintf("mitab: %s geometry on %s feature", model.GeometryTypeOf(g), f.kind))
	}
	f.geom = orb.Clone(g)
}

func geometryMatchesKind(g orb.Geometry, kind FeatureKind) bool {
	switch kind {
	case KindPoint:
		_, ok := g.(orb.Point)
		return ok
	case KindRegion:
		switch g.(type) {
		case orb.Polygon, orb.MultiPolygon:
			return true
		}
		return false
	case KindPolyline:
		switch g.(type) {
		case orb.LineString, orb.MultiLineString:
			return true
		}
		return false
	default:
		return false
	}
}
