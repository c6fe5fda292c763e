package model

// FieldType is the semantic type of an attribute field.
//
// The list types (StringList, IntegerList, RealList) hold several values per
// feature. Not every target format can represent them; format drivers decide
// whether to reject or coerce them.
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
func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "String"
	case FieldInteger:
		return "Integer"
	case FieldReal:
		return "Real"
	case FieldDate:
		return "Date"
	case FieldTime:
		return "Time"
	case FieldDateTime:
		return "DateTime"
	case FieldStringList:
		return "StringList"
	case FieldIntegerList:
		return "IntegerList"
	case FieldRealList:
		return "RealList"
	default:
		return "Unknown"
	}
}

// IsList reports whether the type carries multiple values per feature.
func (t FieldType) IsList() bool {
	return t == FieldStringList || t == FieldIntegerList || t == FieldRealList
}

// FieldDefn describes one attribute field of a layer schema.
//
// Width and Precision are the declared storage hints; zero means "use the
// format default". Drivers may narrow both to fit their format's limits.
type FieldDefn struct {
	Name      string
	Type      FieldType
	Width     int
	Precision int
}
