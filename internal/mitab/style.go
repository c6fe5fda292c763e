package mitab

import (
	"strconv"
	"strings"
)

// PenSpec is the MapInfo pen: line width, pattern number and color.
type PenSpec struct {
	Width   int // pixels
	Pattern int
	Color   int // 0xRRGGBB
}

// BrushSpec is the MapInfo brush: fill pattern and foreground/background
// colors.
type BrushSpec struct {
	Pattern int
	Fore    int // 0xRRGGBB
	Back    int // 0xRRGGBB
}

// SymbolSpec is the MapInfo point symbol: symbol number, color and size.
type SymbolSpec struct {
	Number int
	Color  int // 0xRRGGBB
	Size   int // points
}

func defaultPen() PenSpec       { return PenSpec{Width: 1, Pattern: 2, Color: 0x000000} }
func defaultBrush() BrushSpec   { return BrushSpec{Pattern: 1, Fore: 0x000000, Back: 0xFFFFFF} }
func defaultSymbol() SymbolSpec { return SymbolSpec{Number: 35, Color: 0x000000, Size: 12} }

// SetPenFromStyle derives the pen spec from a feature style string like
// `PEN(w:2px,c:#FF0000)`. Strings without a PEN tool leave the feature
// untouched; unparseable parameters keep their defaults.
func (f *Feature) SetPenFromStyle(style string) {
	params, ok := styleTool(style, "PEN")
	if !ok {
		return
	}
	pen := defaultPen()
	if c, ok := styleColor(params["c"]); ok {
		pen.Color = c
	}
	if w, ok := styleUnit(params["w"]); ok {
		pen.Width = w
	}
	if n, ok := mapinfoToolNumber(params["id"], "mapinfo-pen-"); ok {
		pen.Pattern = n
	}
	f.pen = &pen
}

// SetBrushFromStyle derives the brush spec from a `BRUSH(...)` tool.
func (f *Feature) SetBrushFromStyle(style string) {
	params, ok := styleTool(style, "BRUSH")
	if !ok {
		return
	}
	brush := defaultBrush()
	if c, ok := styleColor(params["fc"]); ok {
		brush.Fore = c
	}
	if c, ok := styleColor(params["bc"]); ok {
		brush.Back = c
	}
	if n, ok := mapinfoToolNumber(params["id"], "mapinfo-brush-"); ok {
		brush.Pattern = n
	}
	f.brush = &brush
}

// SetSymbolFromStyle derives the symbol spec from a `SYMBOL(...)` tool.
func (f *Feature) SetSymbolFromStyle(style string) {
	params, ok := styleTool(style, "SYMBOL")
	if !ok {
		return
	}
	symbol := defaultSymbol()
	if c, ok := styleColor(params["c"]); ok {
		symbol.Color = c
	}
	if s, ok := styleUnit(params["s"]); ok {
		symbol.Size = s
	}
	if n, ok := mapinfoToolNumber(params["id"], "mapinfo-sym-"); ok {
		symbol.Number = n
	}
	f.symbol = &symbol
}

// styleTool extracts the parameters of one tool from an OGR feature style
// string, e.g. styleTool(`PEN(w:2px,c:#FF0000);BRUSH(fc:#00FF00)`, "PEN").
// Tool names match case-insensitively at tool-part boundaries.
func styleTool(style, tool string) (map[string]string, bool) {
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		open := strings.IndexByte(part, '(')
		if open < 0 || !strings.EqualFold(part[:open], tool) {
			continue
		}
		end := strings.LastIndexByte(part, ')')
		if end < open {
			continue
		}
		params := make(map[string]string)
		for _, kv := range strings.Split(part[open+1:end], ",") {
			key, value, ok := strings.Cut(kv, ":")
			if !ok {
				continue
			}
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.Trim(strings.TrimSpace(value), `"`)
			params[key] = value
		}
		return params, true
	}
	return nil, false
}

// styleColor parses an "#RRGGBB" color parameter.
func styleColor(s string) (int, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, false
	}
	c, err := strconv.ParseInt(s[1:], 16, 32)
	if err != nil {
		return 0, false
	}
	return int(c), true
}

// styleUnit parses a numeric parameter with an optional trailing unit
// ("2px", "12pt", "3").
func styleUnit(s string) (int, bool) {
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// mapinfoToolNumber extracts N from an id list containing "<prefix>N",
// e.g. "mapinfo-pen-5,ogr-pen-3" with prefix "mapinfo-pen-".
func mapinfoToolNumber(ids, prefix string) (int, bool) {
	for _, id := range strings.Split(ids, ",") {
		id = strings.TrimSpace(id)
		if len(id) > len(prefix) && strings.EqualFold(id[:len(prefix)], prefix) {
			if n, err := strconv.Atoi(id[len(prefix):]); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
