package vectorio

import (
	"github.com/paulmach/orb"

	"github.com/beetlebugorg/vectorio/internal/mitab"
)

// Table writes generic features into a MapInfo table held in memory.
//
// Each generic feature is mapped onto the MapInfo variant its geometry kind
// calls for; multipoint and collection features fan out into one record per
// part. The on-disk TAB/MIF codecs are separate concerns; Written exposes
// the adapted records for whatever sink consumes them.
type Table struct {
	inner *mitab.Table
	mem   *mitab.MemWriter
}

// NativeField is a field as registered in the MapInfo table, after type
// mapping and width/precision narrowing.
type NativeField struct {
	Name      string
	Type      string // native type name ("Char", "Integer", "Decimal", ...)
	Width     int
	Precision int
}

// PenSpec is the MapInfo pen derived from a feature style string.
type PenSpec struct {
	Width   int // pixels
	Pattern int
	Color   int // 0xRRGGBB
}

// BrushSpec is the MapInfo fill brush derived from a feature style string.
type BrushSpec struct {
	Pattern int
	Fore    int // 0xRRGGBB
	Back    int // 0xRRGGBB
}

// SymbolSpec is the MapInfo point symbol derived from a feature style string.
type SymbolSpec struct {
	Number int
	Color  int // 0xRRGGBB
	Size   int // points
}

// WrittenFeature is a read-only view of one adapted MapInfo record. The
// graphical specs are nil unless the source feature's style string set them.
type WrittenFeature struct {
	ID       int64
	Kind     string // "Point", "Region", "Polyline" or "None"
	Geometry orb.Geometry
	Fields   []any
	Pen      *PenSpec
	Brush    *BrushSpec
	Symbol   *SymbolSpec
}

// NewTable returns an empty in-memory MapInfo table.
func NewTable() *Table {
	mem := mitab.NewMemWriter()
	return &Table{
		inner: mitab.NewTable(mem),
		mem:   mem,
	}
}

// DefineField maps def onto a native MapInfo field and registers it.
//
// List field types have no MapInfo representation and always fail. Width
// and precision outside MapInfo limits are narrowed silently. A field name
// that breaks MapInfo naming rules fails when approxOK is false and is
// adjusted when it is true.
func (t *Table) DefineField(def FieldDefn, approxOK bool) error {
	return t.inner.DefineField(toModelDefn(def), approxOK)
}

// CreateFeature classifies, adapts and writes one generic feature.
//
// Returns the assigned record identifier, or NoID when the feature was a
// multipoint or collection whose parts were written individually. Parts
// written before a failing part stay written.
func (t *Table) CreateFeature(f *Feature) (int64, error) {
	return t.inner.CreateFeature(toModelFeature(f))
}

// SetCharset declares the table charset by its MapInfo name (for example
// "WindowsLatin1"). String field values are encoded on the write path.
func (t *Table) SetCharset(name string) error {
	return t.inner.SetCharset(name)
}

// Fields returns the registered native fields.
func (t *Table) Fields() []NativeField {
	fields := t.inner.Fields()
	out := make([]NativeField, len(fields))
	for i, f := range fields {
		out[i] = NativeField{
			Name:      f.Name,
			Type:      f.Type.String(),
			Width:     f.Width,
			Precision: f.Precision,
		}
	}
	return out
}

// WrittenCount returns the number of records written, fan-out parts
// included.
func (t *Table) WrittenCount() int {
	return t.inner.WrittenCount()
}

// Written returns views of all written records in write order.
func (t *Table) Written() []WrittenFeature {
	features := t.mem.Features()
	out := make([]WrittenFeature, len(features))
	for i, f := range features {
		out[i] = WrittenFeature{
			ID:       f.ID(),
			Kind:     f.Kind().String(),
			Geometry: f.Geometry(),
			Fields:   f.Fields(),
		}
		if p := f.Pen(); p != nil {
			out[i].Pen = &PenSpec{Width: p.Width, Pattern: p.Pattern, Color: p.Color}
		}
		if b := f.Brush(); b != nil {
			out[i].Brush = &BrushSpec{Pattern: b.Pattern, Fore: b.Fore, Back: b.Back}
		}
		if s := f.Symbol(); s != nil {
			out[i].Symbol = &SymbolSpec{Number: s.Number, Color: s.Color, Size: s.Size}
		}
	}
	return out
}

// FileClass identifies which flavor of MapInfo dataset a path holds.
type FileClass int

const (
	FileClassNone FileClass = iota
	FileClassTable
	FileClassView
	FileClassSeamless
	FileClassMIF
)

// String returns the file class name.
func (c FileClass) String() string { return mitab.FileClass(c).String() }

// DetectFileClass sniffs the MapInfo dataset flavor behind path: MIF/MID by
// extension, .tab headers by scanning for the table, view and seamless
// markers.
func DetectFileClass(path string) (FileClass, error) {
	class, err := mitab.DetectFileClass(path)
	return FileClass(class), err
}
