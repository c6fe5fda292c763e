package nas

import "github.com/beetlebugorg/vectorio/internal/model"

// Relation links two features by identifier through a named association,
// e.g. a parcel pointing at its owner record.
type Relation struct {
	SourceID string // identifier of the feature carrying the link
	Name     string // association name (the property's local name)
	TargetID string // identifier of the referenced feature
}

// RelationLayer collects the relations extracted from a dataset.
//
// The layer transitions once from unpopulated to populated when the
// relation pass completes; consumers treat it as immutable afterwards.
// Insertion order is preserved.
type RelationLayer struct {
	relations []Relation
	populated bool
}

// NewRelationLayer returns an empty, unpopulated relation layer.
func NewRelationLayer() *RelationLayer {
	return &RelationLayer{}
}

// AddRelation appends one relation triple.
func (l *RelationLayer) AddRelation(sourceID, name, targetID string) {
	l.relations = append(l.relations, Relation{
		SourceID: sourceID,
		Name:     name,
		TargetID: targetID,
	})
}

// MarkPopulated records that the relation pass has completed. The
// transition is one-way.
func (l *RelationLayer) MarkPopulated() {
	l.populated = true
}

// Populated reports whether the relation pass has completed.
func (l *RelationLayer) Populated() bool {
	return l.populated
}

// Relations returns the collected relations in insertion order.
func (l *RelationLayer) Relations() []Relation {
	return l.relations
}

// Len returns the number of collected relations.
func (l *RelationLayer) Len() int {
	return len(l.relations)
}

// Schema returns the fixed attribute-only schema of the relation layer.
func (l *RelationLayer) Schema() *model.LayerSchema {
	return &model.LayerSchema{
		Name:     relationLayerName,
		GeomType: model.GeomNone,
		Fields: []model.FieldDefn{
			{Name: "beziehung_von", Type: model.FieldString},
			{Name: "beziehungsart", Type: model.FieldString},
			{Name: "beziehung_zu", Type: model.FieldString},
		},
	}
}

const relationLayerName = "alkis_beziehungen"
