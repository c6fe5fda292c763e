package mitab

import (
	"fmt"

	"github.com/paulmach/orb"
	log "github.com/sirupsen/logrus"

	"github.com/beetlebugorg/vectorio/internal/model"
)

// RecordWriter persists native MapInfo features and assigns their
// identifiers. It stands in for the TAB and MIF record codecs, which live
// outside this package.
type RecordWriter interface {
	WriteFeature(*Feature) (int64, error)
}

// NativeField is a field registered in a MapInfo table.
type NativeField struct {
	Name      string
	Type      FieldType
	Width     int
	Precision int
}

// Table adapts generic features onto a MapInfo record stream.
//
// Fields are defined up front with DefineField; CreateFeature then runs the
// classify-adapt-write pipeline for each generic feature. The table and the
// features handed to it are required to share field ordering.
type Table struct {
	fields  []NativeField
	out     RecordWriter
	charset *Charset
	written int
}

// NewTable returns a table writing through out.
func NewTable(out RecordWriter) *Table {
	return &Table{out: out}
}

// Fields returns the registered native fields.
func (t *Table) Fields() []NativeField { return t.fields }

// WrittenCount returns the number of native features written so far,
// fan-out parts included.
func (t *Table) WrittenCount() int { return t.written }

// SetCharset declares the table charset by its MapInfo name. String field
// values pass through the charset on the write path.
func (t *Table) SetCharset(name string) error {
	cs, err := NewCharset(name)
	if err != nil {
		return err
	}
	t.charset = cs
	return nil
}

// Charset returns the MapInfo charset name, or "" when none is set.
func (t *Table) Charset() string {
	if t.charset == nil {
		return ""
	}
	return t.charset.Name()
}

// maxFieldNameLen is the MapInfo limit on field name length.
const maxFieldNameLen = 31

// DefineField maps def onto a native MapInfo field and registers it.
//
// Mapping failures (list types) are errors regardless of approxOK. A field
// name that needs laundering to MapInfo rules is an error when approxOK is
// false and a debug-logged adjustment when it is true.
func (t *Table) DefineField(def model.FieldDefn, approxOK bool) error {
	fieldType, width, precision, err := MapFieldType(def)
	if err != nil {
		return err
	}

	name, changed := cleanFieldName(def.Name)
	if changed {
		if !approxOK {
			return &ErrInvalidFieldName{Name: def.Name, Cleaned: name}
		}
		log.WithFields(log.Fields{"from": def.Name, "to": name}).
			Debug("mitab: laundered field name")
	}

	t.fields = append(t.fields, NativeField{
		Name:      name,
		Type:      fieldType,
		Width:     width,
		Precision: precision,
	})
	return nil
}

// cleanFieldName maps a name onto MapInfo's field-name rules: letters,
// digits and underscores only, no leading digit, at most 31 characters.
// Returns the cleaned name and whether anything changed.
func cleanFieldName(name string) (string, bool) {
	cleaned := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			cleaned = append(cleaned, c)
		default:
			cleaned = append(cleaned, '_')
		}
	}
	if len(cleaned) > 0 && cleaned[0] >= '0' && cleaned[0] <= '9' {
		cleaned = append([]byte{'_'}, cleaned...)
	}
	if len(cleaned) > maxFieldNameLen {
		cleaned = cleaned[:maxFieldNameLen]
	}
	out := string(cleaned)
	return out, out != name
}

// maxFanOutDepth bounds the recursion of collection fan-out. Real data nests
// one or two levels; anything deeper is treated as pathological input.
const maxFanOutDepth = 32

// CreateFeature runs the classify-adapt-write pipeline for one generic
// feature.
//
// Returns the identifier assigned by the record writer. Multipoint and
// geometry-collection features have no single MapInfo record: their parts
// are written individually through the same pipeline and the call returns
// model.NoID to signal that everything was already emitted. Parts written
// before a failing part stay written; there is no rollback.
func (t *Table) CreateFeature(f *model.Feature) (int64, error) {
	return t.createFeature(f, 0)
}

func (t *Table) createFeature(f *model.Feature, depth int) (int64, error) {
	if depth > maxFanOutDepth {
		return 0, &ErrNestingTooDeep{Depth: depth}
	}

	native, err := t.newNativeFeature(f, depth)
	if err != nil {
		return 0, err
	}
	if native == nil {
		// Fan-out path: parts already written.
		return model.NoID, nil
	}

	if t.charset != nil {
		encodeStringFields(native, t.charset)
	}

	id, err := t.out.WriteFeature(native)
	if err != nil {
		return 0, err
	}
	t.written++
	return id, nil
}

// newNativeFeature selects the MapInfo variant for the feature's geometry
// kind and transfers geometry, attribute values and identifier onto it.
//
// Multipoint and collection geometries have no MapInfo variant; their parts
// are fanned out through the full pipeline and nil is returned. Absent and
// unrepresentable geometry kinds fall back to the plain variant.
func (t *Table) newNativeFeature(src *model.Feature, depth int) (*Feature, error) {
	fieldCount := len(src.Fields)
	var native *Feature

	switch g := src.Geometry.(type) {
	case orb.Point:
		native = NewPointFeature(fieldCount)
		if src.Style != "" {
			native.SetSymbolFromStyle(src.Style)
		}

	case orb.Polygon, orb.MultiPolygon:
		native = NewRegionFeature(fieldCount)
		if src.Style != "" {
			native.SetPenFromStyle(src.Style)
			native.SetBrushFromStyle(src.Style)
		}

	case orb.LineString, orb.MultiLineString:
		native = NewPolylineFeature(fieldCount)
		if src.Style != "" {
			native.SetPenFromStyle(src.Style)
		}

	case orb.MultiPoint:
		parts := make([]orb.Geometry, len(g))
		for i, p := range g {
			parts[i] = p
		}
		return nil, t.fanOut(src, parts, depth)

	case orb.Collection:
		return nil, t.fanOut(src, g, depth)

	default:
		// No geometry, or a kind MapInfo cannot represent.
		native = NewPlainFeature(fieldCount)
	}

	transfer(src, native)
	return native, nil
}

// fanOut writes every part of a collection geometry as its own feature, in
// original order. The source is cloned once; per part the clone's identifier
// is reset so the writer assigns a fresh one. A failing part stops the
// fan-out immediately and parts already written stay written.
func (t *Table) fanOut(src *model.Feature, parts []orb.Geometry, depth int) error {
	clone := src.Clone()
	for i, part := range parts {
		clone.ID = model.NoID
		clone.Geometry = part
		if _, err := t.createFeature(clone, depth+1); err != nil {
			return fmt.Errorf("collection part %d: %w", i, err)
		}
	}
	return nil
}

// transfer copies geometry (deep copy), attribute values (positionally,
// index for index) and the identifier from the generic feature onto the
// native one. Both sides must share field ordering; a mismatch is a caller
// bug, not a runtime condition.
func transfer(src *model.Feature, dst *Feature) {
	if src.Geometry != nil && dst.kind != KindPlain {
		dst.setGeometry(src.Geometry)
	}
	copy(dst.fields, src.Fields)
	dst.id = src.ID
}

func encodeStringFields(f *Feature, cs *Charset) {
	for i, v := range f.fields {
		if s, ok := v.(string); ok {
			f.fields[i] = cs.Encode(s)
		}
	}
}
