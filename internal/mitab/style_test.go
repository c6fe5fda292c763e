package mitab

import "testing"

func TestSetPenFromStyle(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  PenSpec
	}{
		{"full spec", `PEN(w:2px,c:#FF0000,id:"mapinfo-pen-5,ogr-pen-3")`, PenSpec{Width: 2, Pattern: 5, Color: 0xFF0000}},
		{"color only", `PEN(c:#00FF00)`, PenSpec{Width: 1, Pattern: 2, Color: 0x00FF00}},
		{"after another tool", `BRUSH(fc:#0000FF);PEN(w:3px)`, PenSpec{Width: 3, Pattern: 2, Color: 0x000000}},
		{"lowercase tool name", `pen(w:4px)`, PenSpec{Width: 4, Pattern: 2, Color: 0x000000}},
		{"garbage params keep defaults", `PEN(w:wide,c:red)`, PenSpec{Width: 1, Pattern: 2, Color: 0x000000}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewPolylineFeature(0)
			f.SetPenFromStyle(tc.style)
			if f.Pen() == nil {
				t.Fatal("no pen set")
			}
			if *f.Pen() != tc.want {
				t.Errorf("pen = %+v, want %+v", *f.Pen(), tc.want)
			}
		})
	}
}

func TestSetPenFromStyleWithoutPenTool(t *testing.T) {
	f := NewPolylineFeature(0)
	f.SetPenFromStyle(`BRUSH(fc:#00FF00)`)
	if f.Pen() != nil {
		t.Errorf("pen = %+v, want none for a style without a PEN tool", *f.Pen())
	}
}

func TestSetBrushFromStyle(t *testing.T) {
	f := NewRegionFeature(0)
	f.SetBrushFromStyle(`PEN(w:1px);BRUSH(fc:#00FF00,bc:#FFFFFF,id:"mapinfo-brush-6")`)
	if f.Brush() == nil {
		t.Fatal("no brush set")
	}
	want := BrushSpec{Pattern: 6, Fore: 0x00FF00, Back: 0xFFFFFF}
	if *f.Brush() != want {
		t.Errorf("brush = %+v, want %+v", *f.Brush(), want)
	}
}

func TestSetSymbolFromStyle(t *testing.T) {
	f := NewPointFeature(0)
	f.SetSymbolFromStyle(`SYMBOL(c:#0000FF,s:14pt,id:"mapinfo-sym-33,ogr-sym-2")`)
	if f.Symbol() == nil {
		t.Fatal("no symbol set")
	}
	want := SymbolSpec{Number: 33, Color: 0x0000FF, Size: 14}
	if *f.Symbol() != want {
		t.Errorf("symbol = %+v, want %+v", *f.Symbol(), want)
	}
}

func TestSymbolDefaults(t *testing.T) {
	f := NewPointFeature(0)
	f.SetSymbolFromStyle(`SYMBOL(x:unknown)`)
	want := defaultSymbol()
	if f.Symbol() == nil || *f.Symbol() != want {
		t.Errorf("symbol = %+v, want defaults %+v", f.Symbol(), want)
	}
}
