package vectorio

import (
	"github.com/beetlebugorg/vectorio/internal/model"
	"github.com/beetlebugorg/vectorio/internal/nas"
)

// Converters between the public API types and the internal model. The enums
// share underlying values, so those convert by cast; structs are copied
// field by field.

func toModelDefn(d FieldDefn) model.FieldDefn {
	return model.FieldDefn{
		Name:      d.Name,
		Type:      model.FieldType(d.Type),
		Width:     d.Width,
		Precision: d.Precision,
	}
}

func toModelFeature(f *Feature) *model.Feature {
	return &model.Feature{
		ID:       f.ID,
		Fields:   f.Fields,
		Geometry: f.Geometry,
		Style:    f.Style,
	}
}

func fromModelSchema(s *model.LayerSchema) LayerSchema {
	out := LayerSchema{
		Name:         s.Name,
		GeometryType: GeometryType(s.GeomType),
		Fields:       make([]FieldDefn, len(s.Fields)),
	}
	if s.SRS != nil {
		out.SRS = &SpatialRef{Name: s.SRS.Name, Authority: s.SRS.Authority, Code: s.SRS.Code}
	}
	for i, f := range s.Fields {
		out.Fields[i] = FieldDefn{
			Name:      f.Name,
			Type:      FieldType(f.Type),
			Width:     f.Width,
			Precision: f.Precision,
		}
	}
	return out
}

func fromInternalRelation(r nas.Relation) Relation {
	return Relation{SourceID: r.SourceID, Name: r.Name, TargetID: r.TargetID}
}

func toInternalClass(c *ClassSchema) *nas.ClassSchema {
	if c == nil {
		return nil
	}
	out := &nas.ClassSchema{
		Name:         c.Name,
		FeatureCount: c.FeatureCount,
		SRSName:      c.SRSName,
	}
	for _, p := range c.Properties {
		out.Properties = append(out.Properties, nas.PropertySchema{
			Name:  p.Name,
			Type:  nas.PropertyType(p.Type),
			Width: p.Width,
		})
	}
	for _, g := range c.GeometryProperties {
		out.GeometryProperties = append(out.GeometryProperties, nas.GeometryProperty{
			Name: g.Name,
			Type: model.GeometryType(g.Type),
		})
	}
	return out
}
