package nas

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/beetlebugorg/vectorio/internal/model"
)

// srsAliases substitutes German cadastral CRS handles with EPSG names.
// Entries ending in '*' match any handle sharing the prefix. The table is
// fixed at process start and never mutated.
var srsAliases = [...]struct{ handle, name string }{
	{"DE_DHDN_3GK2_*", "EPSG:31466"},
	{"DE_DHDN_3GK3_*", "EPSG:31467"},
	{"ETRS89_UTM32", "EPSG:25832"},
	{"ETRS89_UTM33", "EPSG:25833"},
}

// resolveSRSName maps a class srsName onto the name handed to the spatial
// reference factory.
//
// The handle is the token after the last colon of the srsName. An alias hit
// (exact or wildcard-prefix) substitutes the EPSG name; otherwise the
// original srsName passes through unchanged. Returns "" when the name
// carries no handle at all.
func resolveSRSName(srsName string) string {
	i := strings.LastIndex(srsName, ":")
	if i < 0 {
		return ""
	}
	handle := srsName[i+1:]

	for _, alias := range srsAliases {
		if strings.HasSuffix(alias.handle, "*") {
			prefix := alias.handle[:len(alias.handle)-1]
			if hasPrefixFold(handle, prefix) {
				return alias.name
			}
		} else if strings.EqualFold(alias.handle, handle) {
			return alias.name
		}
	}
	return srsName
}

// translateSRS builds the layer spatial reference from a class srsName.
// Construction failure is non-fatal: the layer proceeds without a reference
// and the failure is logged at debug level.
func translateSRS(srsName string, newSRS model.SRSFactory) *model.SpatialRef {
	name := resolveSRSName(srsName)
	if name == "" {
		return nil
	}
	srs, err := newSRS(name)
	if err != nil {
		log.WithField("srsName", name).Debug("nas: failed to translate srsName")
		return nil
	}
	return srs
}

// hasPrefixFold is strings.HasPrefix with ASCII case folding.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
