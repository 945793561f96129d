package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/helioview/helioview/pkg/dataset"
	"github.com/helioview/helioview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSeries(t *testing.T, rr *httptest.ResponseRecorder) seriesResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code)
	var resp seriesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHandleSeriesPower(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/series/power?scenario=clear", nil)
	rr := httptest.NewRecorder()
	s.handleSeriesPower(rr, req)

	resp := decodeSeries(t, rr)
	require.Len(t, resp.Series, 2)
	assert.Equal(t, "Tracking Output", resp.Series[0].Name)
	assert.Equal(t, "Fixed Output", resp.Series[1].Name)
	assert.Len(t, resp.Series[0].Points, 5)
	// X is in hours
	assert.InDelta(t, 4.0, resp.Series[0].Points[4].X, 1e-9)
	assert.Empty(t, resp.Message)
}

func TestHandleSeriesEnergy(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/series/energy?scenario=clear", nil)
	rr := httptest.NewRecorder()
	s.handleSeriesEnergy(rr, req)

	resp := decodeSeries(t, rr)
	require.Len(t, resp.Series, 2)
	// cumulative column tops out at the run totals
	assert.InDelta(t, 20.0, resp.Series[0].Points[4].Y, 1e-9)
	assert.InDelta(t, 16.0, resp.Series[1].Points[4].Y, 1e-9)
}

func TestHandleSeriesEfficiency(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/series/efficiency?scenario=clear", nil)
	rr := httptest.NewRecorder()
	s.handleSeriesEfficiency(rr, req)

	resp := decodeSeries(t, rr)
	require.Len(t, resp.Series, 1)
	// tracking fixture has three rows above the 1 W noise floor
	assert.Len(t, resp.Series[0].Points, 3)
}

func TestHandleSeriesWeather(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/series/weather?scenario=clear", nil)
	rr := httptest.NewRecorder()
	s.handleSeriesWeather(rr, req)

	resp := decodeSeries(t, rr)
	require.Len(t, resp.Series, 4)
	assert.Equal(t, "Temperature", resp.Series[0].Name)
	assert.Equal(t, "GHI", resp.Series[1].Name)
}

func TestHandleSeriesWeatherMissing(t *testing.T) {
	s := testServer(t)

	// the broken scenario has no weather trace: informational message, not
	// an error
	req := httptest.NewRequest("GET", "/api/series/weather?scenario=broken", nil)
	rr := httptest.NewRecorder()
	s.handleSeriesWeather(rr, req)

	resp := decodeSeries(t, rr)
	assert.Empty(t, resp.Series)
	assert.NotEmpty(t, resp.Message)
}

func TestHandleSeriesSkipsBlankSamples(t *testing.T) {
	// blank cells parse as NaN, which JSON cannot carry; those samples are
	// dropped instead of aborting the response
	s := &Server{store: dataset.NewStore("testdata", types.Catalog{
		Scenarios: []types.Scenario{{
			ID:           "gaps",
			Label:        "Gaps",
			TrackingPath: "gaps.csv",
			FixedPath:    "missing_fixed.csv",
		}},
	})}

	req := httptest.NewRequest("GET", "/api/series/power?scenario=gaps", nil)
	rr := httptest.NewRecorder()
	s.handleSeriesPower(rr, req)

	resp := decodeSeries(t, rr)
	require.Len(t, resp.Series, 1)
	require.Len(t, resp.Series[0].Points, 2)
	assert.InDelta(t, 0.0, resp.Series[0].Points[0].X, 1e-9)
	assert.InDelta(t, 2.0, resp.Series[0].Points[1].X, 1e-9)
}

func TestHandleSeriesPowerMissing(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/series/power?scenario=broken", nil)
	rr := httptest.NewRecorder()
	s.handleSeriesPower(rr, req)

	resp := decodeSeries(t, rr)
	assert.Empty(t, resp.Series)
	assert.NotEmpty(t, resp.Message)
}
