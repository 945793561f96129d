package dataset

import (
	"context"
	"os"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/helioview/helioview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	tbl := Load(context.Background(), "testdata/does_not_exist.csv")

	assert.Equal(t, types.StateMissing, tbl.State())
	assert.True(t, tbl.Empty())
	assert.Zero(t, tbl.Rows())
	assert.Nil(t, tbl.Columns())
	assert.Nil(t, tbl.Floats(ColTime))
	assert.NoError(t, tbl.Err())
}

func TestLoadMalformedFile(t *testing.T) {
	tbl := Load(context.Background(), "testdata/malformed.csv")

	assert.Equal(t, types.StateParseError, tbl.State())
	assert.True(t, tbl.Empty())
	assert.Error(t, tbl.Err())
}

func TestLoadNormalizesColumns(t *testing.T) {
	tbl := Load(context.Background(), "testdata/tracking.csv")
	require.Equal(t, types.StateLoaded, tbl.State())
	require.False(t, tbl.Empty())

	// aliases renamed to canonical names
	assert.True(t, tbl.HasColumns(ColTime, ColEnergyLoad, ColEnergyPV, ColLoadVoltage))
	for _, alias := range []string{"time", "Pl/t", "Ppv/t", "Vload:1"} {
		assert.False(t, tbl.HasColumns(alias), "alias %s should be renamed", alias)
	}
	// unrecognized columns pass through unchanged
	assert.True(t, tbl.HasColumns(ColLoadPower, ColPanelPower, ColPVVoltage, ColLoadCurrent, ColPVCurrent))
}

func TestLoadConvertsTimeToHours(t *testing.T) {
	tbl := Load(context.Background(), "testdata/tracking.csv")
	require.Equal(t, types.StateLoaded, tbl.State())

	hours := tbl.Floats(ColTime)
	require.Len(t, hours, 5)

	// conversion is linear and reversible within float tolerance
	seconds := []float64{0, 3600, 7200, 10800, 14400}
	for i, h := range hours {
		assert.InDelta(t, seconds[i], h*3600, 1e-9)
	}
}

func TestLoadHandlesAlternateTimeColumn(t *testing.T) {
	tbl := Load(context.Background(), "testdata/weather.csv")
	require.Equal(t, types.StateLoaded, tbl.State())

	assert.True(t, tbl.HasColumns(ColTime, ColTemperature, ColGHI, ColDNI, ColDHI))
	assert.False(t, tbl.HasColumns("Time_Seconds"))

	hours := tbl.Floats(ColTime)
	require.Len(t, hours, 5)
	assert.InDelta(t, 4.0, hours[4], 1e-9)
}

func TestRenameIsIdempotent(t *testing.T) {
	f, err := os.Open("testdata/tracking.csv")
	require.NoError(t, err)
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.Float),
		dataframe.DetectTypes(false),
	)
	require.NoError(t, df.Err)

	once := renameColumns(df)
	twice := renameColumns(once)
	assert.Equal(t, once.Names(), twice.Names())
	assert.Equal(t, once.Col(ColTime).Float(), twice.Col(ColTime).Float())
}
