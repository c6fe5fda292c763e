package nas

import "fmt"

// ErrSchemaUnavailable indicates the NAS reader could not be instantiated
// for a source file, usually because the optional XML engine is missing.
type ErrSchemaUnavailable struct {
	Path string
}

func (e *ErrSchemaUnavailable) Error() string {
	return fmt.Sprintf("file %s appears to be NAS but no NAS reader could be instantiated", e.Path)
}

// ErrPrescanFailed indicates the schema-discovery pass over the source file
// failed and no usable schema cache existed.
type ErrPrescanFailed struct {
	Path string
}

func (e *ErrPrescanFailed) Error() string {
	return fmt.Sprintf("schema prescan of %s failed", e.Path)
}
