package charts

import (
	"bytes"
	"context"
	"testing"

	"github.com/helioview/helioview/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func loadTable(t *testing.T, name string) dataset.Table {
	t.Helper()
	tbl := dataset.Load(context.Background(), "testdata/"+name)
	require.False(t, tbl.Empty(), "fixture %s should load", name)
	return tbl
}

func missingTable(t *testing.T) dataset.Table {
	t.Helper()
	return dataset.Load(context.Background(), "testdata/does_not_exist.csv")
}

func TestPower(t *testing.T) {
	tracking := loadTable(t, "tracking.csv")
	fixed := loadTable(t, "fixed.csv")

	var buf bytes.Buffer
	require.NoError(t, Power(&buf, tracking, fixed))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestPowerOneRunMissing(t *testing.T) {
	tracking := loadTable(t, "tracking.csv")

	// a single usable run still renders
	var buf bytes.Buffer
	require.NoError(t, Power(&buf, tracking, missingTable(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestPowerMissingColumns(t *testing.T) {
	var buf bytes.Buffer
	err := Power(&buf, missingTable(t), missingTable(t))
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestCumulativeEnergy(t *testing.T) {
	tracking := loadTable(t, "tracking.csv")
	fixed := loadTable(t, "fixed.csv")

	var buf bytes.Buffer
	require.NoError(t, CumulativeEnergy(&buf, tracking, fixed))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestConversion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Conversion(&buf, loadTable(t, "tracking.csv")))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	assert.ErrorIs(t, Conversion(&buf, missingTable(t)), ErrMissingColumns)
}

func TestEfficiency(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Efficiency(&buf, loadTable(t, "tracking.csv")))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	// the weather table has no power columns, so no efficiency samples
	buf.Reset()
	assert.ErrorIs(t, Efficiency(&buf, loadTable(t, "weather.csv")), ErrMissingColumns)
}

func TestWeatherCharts(t *testing.T) {
	weather := loadTable(t, "weather.csv")

	var buf bytes.Buffer
	require.NoError(t, Temperature(&buf, weather))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	require.NoError(t, Irradiance(&buf, weather))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	// simulation outputs carry no weather columns
	buf.Reset()
	assert.ErrorIs(t, Temperature(&buf, loadTable(t, "tracking.csv")), ErrMissingColumns)
	assert.ErrorIs(t, Irradiance(&buf, loadTable(t, "tracking.csv")), ErrMissingColumns)
}

func TestMPPTCharts(t *testing.T) {
	tracking := loadTable(t, "tracking.csv")

	var buf bytes.Buffer
	require.NoError(t, MPPTPanel(&buf, tracking))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	require.NoError(t, MPPTLoad(&buf, tracking))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	assert.ErrorIs(t, MPPTPanel(&buf, missingTable(t)), ErrMissingColumns)
}
