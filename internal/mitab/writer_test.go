package mitab

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/vectorio/internal/model"
)

func TestDefineField(t *testing.T) {
	table := NewTable(NewMemWriter())

	if err := table.DefineField(model.FieldDefn{Name: "parcel_id", Type: model.FieldInteger}, false); err != nil {
		t.Fatalf("DefineField(parcel_id): %v", err)
	}
	if err := table.DefineField(model.FieldDefn{Name: "area", Type: model.FieldReal, Width: 25, Precision: 20}, false); err != nil {
		t.Fatalf("DefineField(area): %v", err)
	}

	fields := table.Fields()
	if len(fields) != 2 {
		t.Fatalf("Fields() has %d entries, want 2", len(fields))
	}
	if fields[0].Type != FieldInteger || fields[0].Width != 12 {
		t.Errorf("parcel_id registered as %s width %d, want Integer width 12", fields[0].Type, fields[0].Width)
	}
	if fields[1].Type != FieldDecimal || fields[1].Width != 20 || fields[1].Precision != 16 {
		t.Errorf("area registered as %s %d.%d, want Decimal 20.16",
			fields[1].Type, fields[1].Width, fields[1].Precision)
	}
}

func TestDefineFieldNameLaundering(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		cleaned string
	}{
		{"space and dash", "land use-class", "land_use_class"},
		{"leading digit", "3d_height", "_3d_height"},
		{"too long", "a23456789012345678901234567890123", "a234567890123456789012345678901"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := model.FieldDefn{Name: tc.field, Type: model.FieldString}

			strict := NewTable(NewMemWriter())
			err := strict.DefineField(def, false)
			var invalid *ErrInvalidFieldName
			if !errors.As(err, &invalid) {
				t.Fatalf("strict DefineField(%q) error = %v, want ErrInvalidFieldName", tc.field, err)
			}
			if invalid.Cleaned != tc.cleaned {
				t.Errorf("error proposes %q, want %q", invalid.Cleaned, tc.cleaned)
			}

			lax := NewTable(NewMemWriter())
			if err := lax.DefineField(def, true); err != nil {
				t.Fatalf("approx DefineField(%q): %v", tc.field, err)
			}
			if got := lax.Fields()[0].Name; got != tc.cleaned {
				t.Errorf("approx DefineField(%q) registered %q, want %q", tc.field, got, tc.cleaned)
			}
		})
	}
}

func TestDefineFieldCleanNameUnchanged(t *testing.T) {
	table := NewTable(NewMemWriter())
	if err := table.DefineField(model.FieldDefn{Name: "Already_OK_42", Type: model.FieldString}, false); err != nil {
		t.Fatalf("DefineField: %v", err)
	}
	if got := table.Fields()[0].Name; got != "Already_OK_42" {
		t.Errorf("clean name was altered to %q", got)
	}
}

func TestCreateFeatureClassification(t *testing.T) {
	polygon := orb.Polygon{{{0, 0}, {4, 0}, {4, 4}, {0, 0}}}
	tests := []struct {
		name     string
		geom     orb.Geometry
		wantKind FeatureKind
	}{
		{"point", orb.Point{7.1, 50.7}, KindPoint},
		{"polygon", polygon, KindRegion},
		{"multipolygon", orb.MultiPolygon{polygon}, KindRegion},
		{"linestring", orb.LineString{{0, 0}, {1, 1}}, KindPolyline},
		{"multilinestring", orb.MultiLineString{{{0, 0}, {1, 1}}}, KindPolyline},
		{"no geometry", nil, KindPlain},
		{"unrepresentable kind", orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, KindPlain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mem := NewMemWriter()
			table := NewTable(mem)

			src := model.NewFeature(1)
			src.SetField(0, "value")
			src.Geometry = tc.geom

			id, err := table.CreateFeature(src)
			if err != nil {
				t.Fatalf("CreateFeature: %v", err)
			}
			if id != 1 {
				t.Errorf("CreateFeature id = %d, want 1", id)
			}
			if mem.Len() != 1 {
				t.Fatalf("wrote %d features, want 1", mem.Len())
			}
			if got := mem.Features()[0].Kind(); got != tc.wantKind {
				t.Errorf("feature kind = %s, want %s", got, tc.wantKind)
			}
		})
	}
}

func TestCreateFeatureCopiesFieldsAndGeometry(t *testing.T) {
	mem := NewMemWriter()
	table := NewTable(mem)

	line := orb.LineString{{0, 0}, {2, 2}}
	src := model.NewFeature(3)
	src.SetField(0, "Bundesstrasse 9")
	src.SetField(1, 42)
	src.SetField(2, 1.5)
	src.Geometry = line

	if _, err := table.CreateFeature(src); err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}

	written := mem.Features()[0]
	fields := written.Fields()
	if fields[0] != "Bundesstrasse 9" || fields[1] != 42 || fields[2] != 1.5 {
		t.Errorf("field values = %v, not copied positionally", fields)
	}

	// The written geometry must be a deep copy: mutating the source afterwards
	// must not leak into the record.
	line[0][0] = 99
	if written.Geometry().(orb.LineString)[0][0] != 0 {
		t.Error("written geometry aliases the source geometry")
	}
}

func TestCreateFeatureMultiPointFanOut(t *testing.T) {
	mem := NewMemWriter()
	table := NewTable(mem)

	src := model.NewFeature(1)
	src.ID = 77
	src.SetField(0, "lamp")
	src.Geometry = orb.MultiPoint{{0, 0}, {1, 1}, {2, 2}}

	id, err := table.CreateFeature(src)
	if err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}
	if id != model.NoID {
		t.Errorf("fan-out returned id %d, want NoID", id)
	}
	if mem.Len() != 3 {
		t.Fatalf("wrote %d features, want one per part (3)", mem.Len())
	}
	if table.WrittenCount() != 3 {
		t.Errorf("WrittenCount = %d, want 3", table.WrittenCount())
	}
	for i, f := range mem.Features() {
		if f.Kind() != KindPoint {
			t.Errorf("part %d kind = %s, want Point", i, f.Kind())
		}
		if f.ID() != int64(i+1) {
			t.Errorf("part %d id = %d, want writer-assigned %d", i, f.ID(), i+1)
		}
		if f.Fields()[0] != "lamp" {
			t.Errorf("part %d fields = %v, want the source values", i, f.Fields())
		}
		want := orb.Point{float64(i), float64(i)}
		if f.Geometry().(orb.Point) != want {
			t.Errorf("part %d geometry = %v, want %v (original order)", i, f.Geometry(), want)
		}
	}
}

func TestCreateFeatureNestedCollectionFanOut(t *testing.T) {
	mem := NewMemWriter()
	table := NewTable(mem)

	src := model.NewFeature(0)
	src.Geometry = orb.Collection{
		orb.Point{0, 0},
		orb.LineString{{0, 0}, {1, 1}},
		orb.MultiPoint{{2, 2}, {3, 3}},
	}

	id, err := table.CreateFeature(src)
	if err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}
	if id != model.NoID {
		t.Errorf("fan-out returned id %d, want NoID", id)
	}
	if mem.Len() != 4 {
		t.Fatalf("wrote %d features, want 4 (nested multipoint flattened)", mem.Len())
	}
	wantKinds := []FeatureKind{KindPoint, KindPolyline, KindPoint, KindPoint}
	for i, f := range mem.Features() {
		if f.Kind() != wantKinds[i] {
			t.Errorf("record %d kind = %s, want %s", i, f.Kind(), wantKinds[i])
		}
	}
}

// flakyWriter fails every write after the first limit succeed.
type flakyWriter struct {
	mem   *MemWriter
	limit int
}

func (w *flakyWriter) WriteFeature(f *Feature) (int64, error) {
	if w.mem.Len() >= w.limit {
		return 0, errors.New("record stream full")
	}
	return w.mem.WriteFeature(f)
}

func TestCreateFeatureFanOutKeepsPartsWrittenBeforeFailure(t *testing.T) {
	mem := NewMemWriter()
	table := NewTable(&flakyWriter{mem: mem, limit: 2})

	src := model.NewFeature(0)
	src.Geometry = orb.MultiPoint{{0, 0}, {1, 1}, {2, 2}, {3, 3}}

	_, err := table.CreateFeature(src)
	if err == nil {
		t.Fatal("CreateFeature succeeded, want error from third part")
	}
	if mem.Len() != 2 {
		t.Errorf("%d parts remain written, want 2 (no rollback)", mem.Len())
	}
}

func TestCreateFeatureNestingGuard(t *testing.T) {
	table := NewTable(NewMemWriter())

	geom := orb.Geometry(orb.Point{0, 0})
	for i := 0; i < 2*maxFanOutDepth; i++ {
		geom = orb.Collection{geom}
	}
	src := model.NewFeature(0)
	src.Geometry = geom

	_, err := table.CreateFeature(src)
	var tooDeep *ErrNestingTooDeep
	if !errors.As(err, &tooDeep) {
		t.Fatalf("CreateFeature error = %v, want ErrNestingTooDeep", err)
	}
}

func TestCreateFeatureEncodesStringFields(t *testing.T) {
	mem := NewMemWriter()
	table := NewTable(mem)
	if err := table.SetCharset("WindowsLatin1"); err != nil {
		t.Fatalf("SetCharset: %v", err)
	}

	src := model.NewFeature(2)
	src.SetField(0, "Café") // é is 0xE9 in windows-1252
	src.SetField(1, 42)     // non-strings pass through untouched
	src.Geometry = orb.Point{0, 0}

	if _, err := table.CreateFeature(src); err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}

	fields := mem.Features()[0].Fields()
	if got := fields[0].(string); got != "Caf\xe9" {
		t.Errorf("encoded field = %q, want windows-1252 bytes", got)
	}
	if fields[1] != 42 {
		t.Errorf("numeric field = %v, want 42", fields[1])
	}
}
