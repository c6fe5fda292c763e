package nas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/vectorio/internal/model"
)

func TestResolveSRSName(t *testing.T) {
	tests := []struct {
		name    string
		srsName string
		want    string
	}{
		{"utm32 exact alias", "urn:adv:crs:ETRS89_UTM32", "EPSG:25832"},
		{"utm33 exact alias", "urn:adv:crs:ETRS89_UTM33", "EPSG:25833"},
		{"gk2 wildcard alias", "urn:adv:crs:DE_DHDN_3GK2_NW177", "EPSG:31466"},
		{"gk3 wildcard alias", "urn:adv:crs:DE_DHDN_3GK3_BY120", "EPSG:31467"},
		{"alias matches case-insensitively", "urn:adv:crs:etrs89_utm32", "EPSG:25832"},
		{"unmatched handle passes through whole", "urn:adv:crs:ETRS89_UTM99", "urn:adv:crs:ETRS89_UTM99"},
		{"epsg urn passes through", "urn:ogc:def:crs:EPSG::4326", "urn:ogc:def:crs:EPSG::4326"},
		{"no colon means no reference", "ETRS89_UTM32", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveSRSName(tc.srsName))
		})
	}
}

func TestTranslateSRS(t *testing.T) {
	srs := translateSRS("urn:adv:crs:ETRS89_UTM32", model.ParseSRS)
	require.NotNil(t, srs)
	assert.Equal(t, "EPSG", srs.Authority)
	assert.Equal(t, 25832, srs.Code)
}

func TestTranslateSRSFactoryFailureIsNonFatal(t *testing.T) {
	failing := func(name string) (*model.SpatialRef, error) {
		return nil, errors.New("no database")
	}
	assert.Nil(t, translateSRS("urn:adv:crs:ETRS89_UTM32", failing))
}

func TestTranslateSRSEmptyHandle(t *testing.T) {
	called := false
	factory := func(name string) (*model.SpatialRef, error) {
		called = true
		return nil, nil
	}
	assert.Nil(t, translateSRS("ETRS89_UTM32", factory))
	assert.False(t, called, "factory must not run without a handle")
}
