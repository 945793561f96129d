package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Scenarios, 2)

	sc, ok := c.Scenario("clear")
	require.True(t, ok)
	assert.Equal(t, "Clear Day", sc.Label)
	assert.NotEmpty(t, sc.TrackingPath)
	assert.NotEmpty(t, sc.FixedPath)
	assert.NotEmpty(t, c.DiagramPath)
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("testdata/catalog.yaml")
	require.NoError(t, err)
	require.Len(t, c.Scenarios, 1)
	assert.Equal(t, "clear", c.Scenarios[0].ID)
	assert.Equal(t, "tracking.csv", c.Scenarios[0].TrackingPath)
	assert.Equal(t, "model.png", c.DiagramPath)
}

func TestLoadCatalogMissing(t *testing.T) {
	_, err := LoadCatalog("testdata/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestLoadCatalogDuplicateID(t *testing.T) {
	_, err := LoadCatalog("testdata/duplicate_catalog.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate scenario id")
}
