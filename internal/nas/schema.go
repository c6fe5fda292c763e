package nas

import "github.com/beetlebugorg/vectorio/internal/model"

// TranslateSchema converts an externally parsed feature class into the
// generic layer schema.
//
// The geometry type comes from the class's first geometry property. A class
// with no recorded feature instances gets GeomUnknown instead of its nominal
// type, so empty layers stay permissive about what they would accept.
//
// Every property becomes a field. The "ogr:" namespace prefix is stripped
// from field names, and a positive declared width is carried over; zero
// stays zero, leaving the width to the consuming format's default.
func TranslateSchema(class *ClassSchema, newSRS model.SRSFactory) *model.LayerSchema {
	geomType := model.GeomNone
	if len(class.GeometryProperties) > 0 {
		geomType = class.GeometryProperties[0].Type
		if class.FeatureCount == 0 {
			geomType = model.GeomUnknown
		}
	}

	var srs *model.SpatialRef
	if class.SRSName != "" {
		srs = translateSRS(class.SRSName, newSRS)
	}

	schema := &model.LayerSchema{
		Name:     class.Name,
		GeomType: geomType,
		SRS:      srs,
		Fields:   make([]model.FieldDefn, 0, len(class.Properties)),
	}

	for _, prop := range class.Properties {
		defn := model.FieldDefn{
			Name: fieldName(prop.Name),
			Type: fieldType(prop.Type),
		}
		if prop.Width > 0 {
			defn.Width = prop.Width
		}
		schema.AddField(defn)
	}

	return schema
}

// fieldType maps a reader property type onto a generic field type. Untyped
// and unrecognized properties are read as strings.
func fieldType(t PropertyType) model.FieldType {
	switch t {
	case PropInteger:
		return model.FieldInteger
	case PropReal:
		return model.FieldReal
	case PropStringList:
		return model.FieldStringList
	case PropIntegerList:
		return model.FieldIntegerList
	case PropRealList:
		return model.FieldRealList
	default:
		return model.FieldString
	}
}

// fieldName strips the "ogr:" namespace prefix the reader attaches to
// schema-level properties.
func fieldName(name string) string {
	if hasPrefixFold(name, "ogr:") {
		return name[4:]
	}
	return name
}
