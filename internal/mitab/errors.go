package mitab

import (
	"fmt"

	"github.com/beetlebugorg/vectorio/internal/model"
)

// ErrUnsupportedFieldType indicates a generic field type with no MapInfo
// representation. MapInfo tables have no list field types.
type ErrUnsupportedFieldType struct {
	Field string
	Type  model.FieldType
}

func (e *ErrUnsupportedFieldType) Error() string {
	return fmt.Sprintf("field %q: unsupported field type %s (MapInfo files do not support list field types)",
		e.Field, e.Type)
}

// ErrInvalidFieldName indicates a field name that is not usable in a MapInfo
// table as-is. Cleaned holds the name after laundering to MapInfo rules.
type ErrInvalidFieldName struct {
	Name    string
	Cleaned string
}

func (e *ErrInvalidFieldName) Error() string {
	return fmt.Sprintf("field name %q not representable in a MapInfo table (would become %q)",
		e.Name, e.Cleaned)
}

// ErrUnknownCharset indicates a charset name with no MapInfo table equivalent.
type ErrUnknownCharset struct {
	Name string
}

func (e *ErrUnknownCharset) Error() string {
	return fmt.Sprintf("unknown MapInfo charset %q", e.Name)
}

// ErrNestingTooDeep indicates geometry-collection nesting beyond the fan-out
// recursion guard.
type ErrNestingTooDeep struct {
	Depth int
}

func (e *ErrNestingTooDeep) Error() string {
	return fmt.Sprintf("geometry collection nested %d levels deep exceeds the fan-out limit", e.Depth)
}

// ErrNotMapInfo indicates a path that does not hold any recognized flavor of
// MapInfo dataset.
type ErrNotMapInfo struct {
	Path   string
	Reason string
}

func (e *ErrNotMapInfo) Error() string {
	return fmt.Sprintf("%s could not be opened as a MapInfo dataset: %s", e.Path, e.Reason)
}
