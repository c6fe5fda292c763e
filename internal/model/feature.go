package model

import "github.com/paulmach/orb"

// NoID marks a feature whose identifier has not been assigned by a writer yet.
const NoID int64 = -1

// Feature is a format-agnostic vector record: an optional geometry, attribute
// values in schema order, an optional feature style string and an identifier.
//
// Fields are positional; Fields[i] corresponds to the i-th field of the layer
// schema the feature was built against. There is no name lookup at this level.
type Feature struct {
	ID       int64
	Fields   []any
	Geometry orb.Geometry // nil when the feature has no geometry
	Style    string       // OGR feature style string, empty when unset
}

// NewFeature returns a feature with fieldCount unset attribute slots and an
// unassigned identifier.
func NewFeature(fieldCount int) *Feature {
	return &Feature{
		ID:     NoID,
		Fields: make([]any, fieldCount),
	}
}

// Clone returns an independent copy of the feature. The geometry is
// deep-copied so the clone never aliases coordinate storage with the
// original.
func (f *Feature) Clone() *Feature {
	dup := &Feature{
		ID:     f.ID,
		Style:  f.Style,
		Fields: make([]any, len(f.Fields)),
	}
	copy(dup.Fields, f.Fields)
	if f.Geometry != nil {
		dup.Geometry = orb.Clone(f.Geometry)
	}
	return dup
}

// SetField stores v as the i-th attribute value.
func (f *Feature) SetField(i int, v any) {
	f.Fields[i] = v
}
