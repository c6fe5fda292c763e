package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SpatialRef identifies a coordinate reference system by authority and code.
//
// Name keeps the user string the reference was built from, so callers can
// round-trip the original srsName of a source file.
type SpatialRef struct {
	Name      string
	Authority string
	Code      int
}

// SRSFactory builds a spatial reference from a user-supplied name.
// Implementations report failure through the error; a failed construction is
// usually non-fatal for the caller (the layer proceeds without a reference).
type SRSFactory func(name string) (*SpatialRef, error)

// UnknownSRSError reports a spatial reference name no factory rule matched.
type UnknownSRSError struct {
	Name string
}

func (e *UnknownSRSError) Error() string {
	return fmt.Sprintf("unrecognized spatial reference name %q", e.Name)
}

// ParseSRS is the default SRSFactory. It accepts authority:code names like
// "EPSG:25832" and OGC URN forms like "urn:ogc:def:crs:EPSG::25832".
func ParseSRS(name string) (*SpatialRef, error) {
	trimmed := strings.TrimSpace(name)

	if rest, ok := cutPrefixFold(trimmed, "urn:ogc:def:crs:"); ok {
		// urn:ogc:def:crs:AUTHORITY:[version]:code
		parts := strings.Split(rest, ":")
		if len(parts) == 3 {
			code, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, &UnknownSRSError{Name: name}
			}
			return &SpatialRef{Name: name, Authority: strings.ToUpper(parts[0]), Code: code}, nil
		}
		return nil, &UnknownSRSError{Name: name}
	}

	if authority, codeStr, ok := strings.Cut(trimmed, ":"); ok {
		code, err := strconv.Atoi(codeStr)
		if err == nil && authority != "" {
			return &SpatialRef{Name: name, Authority: strings.ToUpper(authority), Code: code}, nil
		}
	}

	return nil, &UnknownSRSError{Name: name}
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}
