package model

// LayerSchema is the generic description of one layer: a name, the declared
// geometry type, an optional spatial reference and the ordered field list.
//
// A schema is built once (by a format driver translating its native schema)
// and then owned by the layer for its lifetime.
type LayerSchema struct {
	Name     string
	GeomType GeometryType
	SRS      *SpatialRef // nil when unresolved
	Fields   []FieldDefn
}

// AddField appends a field definition to the schema.
func (s *LayerSchema) AddField(d FieldDefn) {
	s.Fields = append(s.Fields, d)
}

// FieldCount returns the number of fields.
func (s *LayerSchema) FieldCount() int {
	return len(s.Fields)
}

// FieldIndex returns the index of the named field, or -1.
func (s *LayerSchema) FieldIndex(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
