package server

import (
	"math"
	"net/http"

	"github.com/helioview/helioview/pkg/analytics"
	"github.com/helioview/helioview/pkg/dataset"
	"github.com/helioview/helioview/pkg/types"
)

// seriesResponse carries chart traces plus an informational message when a
// chart had to be omitted (e.g. weather columns missing).
type seriesResponse struct {
	Series  []types.Series `json:"series"`
	Message string         `json:"message,omitempty"`
}

// tableSeries extracts a named time series from a table, or nothing when the
// columns are absent. NaN samples (empty or non-numeric cells) are skipped:
// they are not representable in JSON.
func tableSeries(name string, t dataset.Table, yCol string) (types.Series, bool) {
	if !t.HasColumns(dataset.ColTime, yCol) {
		return types.Series{}, false
	}
	times := t.Floats(dataset.ColTime)
	ys := t.Floats(yCol)
	s := types.Series{Name: name, Points: make([]types.SeriesPoint, 0, len(times))}
	for i := range times {
		if math.IsNaN(times[i]) || math.IsNaN(ys[i]) {
			continue
		}
		s.Points = append(s.Points, types.SeriesPoint{X: times[i], Y: ys[i]})
	}
	return s, true
}

func (s *Server) handleSeriesPower(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	tracking, fixed, _ := s.store.ScenarioTables(r.Context(), sc)

	var resp seriesResponse
	if t, ok := tableSeries("Tracking Output", tracking, dataset.ColLoadPower); ok {
		resp.Series = append(resp.Series, t)
	}
	if f, ok := tableSeries("Fixed Output", fixed, dataset.ColLoadPower); ok {
		resp.Series = append(resp.Series, f)
	}
	if len(resp.Series) == 0 {
		resp.Message = "power data not available"
	}
	writeJSON(w, resp)
}

func (s *Server) handleSeriesEnergy(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	tracking, fixed, _ := s.store.ScenarioTables(r.Context(), sc)

	var resp seriesResponse
	if t, ok := tableSeries("Tracking Energy", tracking, dataset.ColEnergyLoad); ok {
		resp.Series = append(resp.Series, t)
	}
	if f, ok := tableSeries("Fixed Energy", fixed, dataset.ColEnergyLoad); ok {
		resp.Series = append(resp.Series, f)
	}
	if len(resp.Series) == 0 {
		resp.Message = "energy data not available"
	}
	writeJSON(w, resp)
}

func (s *Server) handleSeriesEfficiency(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	tracking, _, _ := s.store.ScenarioTables(r.Context(), sc)

	var resp seriesResponse
	eff := analytics.ConverterEfficiency(tracking)
	if len(eff.Points) > 0 {
		resp.Series = append(resp.Series, eff)
	} else {
		resp.Message = "efficiency data not available"
	}
	writeJSON(w, resp)
}

func (s *Server) handleSeriesWeather(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	_, _, weather := s.store.ScenarioTables(r.Context(), sc)

	var resp seriesResponse
	for _, col := range []string{
		dataset.ColTemperature,
		dataset.ColGHI,
		dataset.ColDNI,
		dataset.ColDHI,
	} {
		if t, ok := tableSeries(col, weather, col); ok {
			resp.Series = append(resp.Series, t)
		}
	}
	if len(resp.Series) == 0 {
		// informational, not an error: the weather charts are simply omitted
		resp.Message = "weather data (Temperature, GHI) not available or input data file not found"
	}
	writeJSON(w, resp)
}
